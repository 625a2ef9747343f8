package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type categoryRow struct {
	ID           int64    `gorm:"primaryKey;autoIncrement"`
	Name         string   `gorm:"size:120;not null"`
	NameKey      string   `gorm:"size:120;not null;uniqueIndex"`
	Icon         string   `gorm:"size:60"`
	AppliesTo    []string `gorm:"serializer:json"`
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (categoryRow) TableName() string { return "benefit_categories" }

// CategoryGormRepository persists BenefitCategory rows in SQL.
//
// NameKey holds the lower-cased name so uniqueness is case-insensitive.
type CategoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICategoryRepository = (*CategoryGormRepository)(nil)

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
	row := toCategoryRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.BenefitCategory{}, err
	}
	return fromCategoryRow(row), nil
}

func (r *CategoryGormRepository) GetByID(ctx context.Context, id int64) (entities.BenefitCategory, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.BenefitCategory{}, nil
	}
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	return fromCategoryRow(row), nil
}

func (r *CategoryGormRepository) GetByName(ctx context.Context, name string) (entities.BenefitCategory, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).Where("name_key = ?", nameKey(name)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.BenefitCategory{}, nil
	}
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	return fromCategoryRow(row), nil
}

func (r *CategoryGormRepository) List(ctx context.Context, includeInactive bool) ([]entities.BenefitCategory, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC").Order("name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var rows []categoryRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.BenefitCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCategoryRow(row))
	}
	return out, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
	var existing categoryRow
	err := r.db.WithContext(ctx).First(&existing, c.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.BenefitCategory{}, nil
	}
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	row := toCategoryRow(c)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.BenefitCategory{}, err
	}
	return fromCategoryRow(row), nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toCategoryRow(c entities.BenefitCategory) categoryRow {
	applies := make([]string, 0, len(c.AppliesTo))
	for _, t := range c.AppliesTo {
		applies = append(applies, string(t))
	}
	return categoryRow{
		ID:           c.ID,
		Name:         c.Name,
		NameKey:      nameKey(c.Name),
		Icon:         c.Icon,
		AppliesTo:    applies,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromCategoryRow(row categoryRow) entities.BenefitCategory {
	applies := make([]entities.TemplateType, 0, len(row.AppliesTo))
	for _, t := range row.AppliesTo {
		applies = append(applies, entities.TemplateType(t))
	}
	return entities.BenefitCategory{
		ID:           row.ID,
		Name:         row.Name,
		Icon:         row.Icon,
		AppliesTo:    applies,
		DisplayOrder: row.DisplayOrder,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
