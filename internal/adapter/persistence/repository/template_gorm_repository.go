package repository

import (
	"context"
	"errors"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type templateRow struct {
	ID            int64                      `gorm:"primaryKey;autoIncrement"`
	TemplateID    string                     `gorm:"size:36;not null;index;uniqueIndex:idx_one_active_version,where:status = 'active'"`
	CategoryID    int64                      `gorm:"not null;index"`
	Type          string                     `gorm:"size:20;not null;index"`
	Name          string                     `gorm:"size:200;not null"`
	Description   string                     `gorm:"type:text"`
	Version       string                     `gorm:"size:20;not null"`
	MajorVersion  int                        `gorm:"not null"`
	MinorVersion  int                        `gorm:"not null"`
	FieldSchema   []entities.FieldDefinition `gorm:"serializer:json"`
	DefaultValues map[string]any             `gorm:"serializer:json"`
	Status        string                     `gorm:"size:20;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (templateRow) TableName() string { return "benefit_templates" }

// TemplateGormRepository persists BenefitTemplate versions in SQL.
//
// A partial unique index on template_id (status = 'active') backs the
// one-active-version rule; multi-row changes run in a transaction that
// archives before it activates.
type TemplateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITemplateRepository = (*TemplateGormRepository)(nil)

func NewTemplateGormRepository(db *gorm.DB) *TemplateGormRepository {
	return &TemplateGormRepository{db: db}
}

// BenefitDesignerModels lists the tables of the benefit designer store.
func BenefitDesignerModels() []any {
	return []any{&categoryRow{}, &templateRow{}}
}

func (r *TemplateGormRepository) Create(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	var created templateRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if t.Status == entities.TemplateStatusActive {
			if err := archiveActive(tx, t.TemplateID, 0); err != nil {
				return err
			}
		}
		created = toTemplateRow(t)
		created.ID = 0
		return tx.Create(&created).Error
	})
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	return fromTemplateRow(created), nil
}

func (r *TemplateGormRepository) GetByID(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	row, err := findTemplate(r.db.WithContext(ctx), id)
	if err != nil || row.ID == 0 {
		return entities.BenefitTemplate{}, err
	}
	return fromTemplateRow(row), nil
}

func (r *TemplateGormRepository) List(ctx context.Context, filter entities.TemplateFilter) ([]entities.BenefitTemplate, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if filter.Type != "" {
		q = q.Where("type = ?", string(filter.Type))
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var rows []templateRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromTemplateRows(rows), nil
}

func (r *TemplateGormRepository) ListByTemplateID(ctx context.Context, templateID string) ([]entities.BenefitTemplate, error) {
	var rows []templateRow
	if err := r.db.WithContext(ctx).Where("template_id = ?", templateID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromTemplateRows(rows), nil
}

func (r *TemplateGormRepository) Update(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	var saved templateRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findTemplate(tx, t.ID)
		if err != nil || existing.ID == 0 {
			return err
		}
		saved = toTemplateRow(t)
		saved.TemplateID = existing.TemplateID
		saved.CreatedAt = existing.CreatedAt
		return tx.Save(&saved).Error
	})
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if saved.ID == 0 {
		return entities.BenefitTemplate{}, nil
	}
	return fromTemplateRow(saved), nil
}

func (r *TemplateGormRepository) CreateVersion(ctx context.Context, supersededID int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	var created templateRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&templateRow{}).
			Where("id = ? AND status = ?", supersededID, string(entities.TemplateStatusActive)).
			Updates(map[string]any{"status": string(entities.TemplateStatusArchived), "updated_at": time.Now().UTC()})
		if res.Error != nil {
			return res.Error
		}
		if next.Status == entities.TemplateStatusActive {
			if err := archiveActive(tx, next.TemplateID, 0); err != nil {
				return err
			}
		}
		created = toTemplateRow(next)
		created.ID = 0
		return tx.Create(&created).Error
	})
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	return fromTemplateRow(created), nil
}

func (r *TemplateGormRepository) Activate(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	var activated templateRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := findTemplate(tx, id)
		if err != nil || row.ID == 0 {
			return err
		}
		if err := archiveActive(tx, row.TemplateID, id); err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := tx.Model(&templateRow{}).Where("id = ?", id).
			Updates(map[string]any{"status": string(entities.TemplateStatusActive), "updated_at": now}).Error; err != nil {
			return err
		}
		row.Status = string(entities.TemplateStatusActive)
		row.UpdatedAt = now
		activated = row
		return nil
	})
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if activated.ID == 0 {
		return entities.BenefitTemplate{}, nil
	}
	return fromTemplateRow(activated), nil
}

func (r *TemplateGormRepository) UpdateStatus(ctx context.Context, id int64, status entities.TemplateStatus) (entities.BenefitTemplate, error) {
	res := r.db.WithContext(ctx).Model(&templateRow{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.BenefitTemplate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.BenefitTemplate{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *TemplateGormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&templateRow{}, id)
	return res.RowsAffected > 0, res.Error
}

// archiveActive archives every active row of templateID except keepID.
func archiveActive(tx *gorm.DB, templateID string, keepID int64) error {
	q := tx.Model(&templateRow{}).Where("template_id = ? AND status = ?", templateID, string(entities.TemplateStatusActive))
	if keepID != 0 {
		q = q.Where("id <> ?", keepID)
	}
	return q.Updates(map[string]any{"status": string(entities.TemplateStatusArchived), "updated_at": time.Now().UTC()}).Error
}

func findTemplate(db *gorm.DB, id int64) (templateRow, error) {
	var row templateRow
	err := db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateRow{}, nil
	}
	return row, err
}

func toTemplateRow(t entities.BenefitTemplate) templateRow {
	return templateRow{
		ID:            t.ID,
		TemplateID:    t.TemplateID,
		CategoryID:    t.CategoryID,
		Type:          string(t.Type),
		Name:          t.Name,
		Description:   t.Description,
		Version:       t.Version,
		MajorVersion:  t.MajorVersion,
		MinorVersion:  t.MinorVersion,
		FieldSchema:   t.FieldSchema,
		DefaultValues: t.DefaultValues,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func fromTemplateRow(row templateRow) entities.BenefitTemplate {
	fields := row.FieldSchema
	if fields == nil {
		fields = []entities.FieldDefinition{}
	}
	values := row.DefaultValues
	if values == nil {
		values = map[string]any{}
	}
	return entities.BenefitTemplate{
		ID:            row.ID,
		TemplateID:    row.TemplateID,
		CategoryID:    row.CategoryID,
		Type:          entities.TemplateType(row.Type),
		Name:          row.Name,
		Description:   row.Description,
		Version:       row.Version,
		MajorVersion:  row.MajorVersion,
		MinorVersion:  row.MinorVersion,
		FieldSchema:   fields,
		DefaultValues: values,
		Status:        entities.TemplateStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func fromTemplateRows(rows []templateRow) []entities.BenefitTemplate {
	out := make([]entities.BenefitTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTemplateRow(row))
	}
	return out
}
