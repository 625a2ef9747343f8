package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound  = errors.New("benefit category not found")
	ErrCategoryNameTaken = errors.New("benefit category name already exists")
)

// defaultCategories are created by SeedDefaultCategories when missing.
var defaultCategories = []entities.BenefitCategory{
	{Name: "Medical", Icon: "stethoscope", DisplayOrder: 1, AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup, entities.TemplateTypeIndividual}},
	{Name: "Dental", Icon: "tooth", DisplayOrder: 2, AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup, entities.TemplateTypeIndividual}},
	{Name: "Vision", Icon: "eye", DisplayOrder: 3, AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup, entities.TemplateTypeIndividual}},
	{Name: "Life", Icon: "heart", DisplayOrder: 4, AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup, entities.TemplateTypeIndividual}},
	{Name: "Disability", Icon: "wheelchair", DisplayOrder: 5, AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup}},
	{Name: "Critical Illness", Icon: "heartbeat", DisplayOrder: 6, AppliesTo: []entities.TemplateType{entities.TemplateTypeIndividual}},
}

// CategoryInput is the writable part of a category.
type CategoryInput struct {
	Name         string
	Icon         string
	AppliesTo    []entities.TemplateType
	DisplayOrder int
	IsActive     *bool
}

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, in CategoryInput) (entities.BenefitCategory, error)
	GetCategory(ctx context.Context, id int64) (entities.BenefitCategory, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]entities.BenefitCategory, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (entities.BenefitCategory, error)
	DeactivateCategory(ctx context.Context, id int64) (entities.BenefitCategory, error)
	SeedDefaultCategories(ctx context.Context) ([]entities.BenefitCategory, error)
}

type CategoryUseCase struct {
	repo   interfaces.ICategoryRepository
	logger *zap.Logger
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository, logger *zap.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, logger: logger}
}

func (u *CategoryUseCase) CreateCategory(ctx context.Context, in CategoryInput) (entities.BenefitCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateCategoryInput(in); err != nil {
		return entities.BenefitCategory{}, err
	}

	existing, err := u.repo.GetByName(ctx, in.Name)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	if existing.ID != 0 {
		return entities.BenefitCategory{}, ErrCategoryNameTaken
	}

	now := time.Now().UTC()
	c := entities.BenefitCategory{
		Name:         in.Name,
		Icon:         strings.TrimSpace(in.Icon),
		AppliesTo:    dedupeTypes(in.AppliesTo),
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	u.logger.Info("[category][usecase] created", zap.Int64("category_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *CategoryUseCase) GetCategory(ctx context.Context, id int64) (entities.BenefitCategory, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	if c.ID == 0 {
		return entities.BenefitCategory{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) ListCategories(ctx context.Context, includeInactive bool) ([]entities.BenefitCategory, error) {
	return u.repo.List(ctx, includeInactive)
}

func (u *CategoryUseCase) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (entities.BenefitCategory, error) {
	current, err := u.GetCategory(ctx, id)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateCategoryInput(in); err != nil {
		return entities.BenefitCategory{}, err
	}
	if !strings.EqualFold(in.Name, current.Name) {
		other, err := u.repo.GetByName(ctx, in.Name)
		if err != nil {
			return entities.BenefitCategory{}, err
		}
		if other.ID != 0 && other.ID != id {
			return entities.BenefitCategory{}, ErrCategoryNameTaken
		}
	}

	current.Name = in.Name
	current.Icon = strings.TrimSpace(in.Icon)
	current.AppliesTo = dedupeTypes(in.AppliesTo)
	current.DisplayOrder = in.DisplayOrder
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	current.UpdatedAt = time.Now().UTC()
	return u.save(ctx, current)
}

// DeactivateCategory is a soft delete; templates keep their category id.
func (u *CategoryUseCase) DeactivateCategory(ctx context.Context, id int64) (entities.BenefitCategory, error) {
	current, err := u.GetCategory(ctx, id)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	current.IsActive = false
	current.UpdatedAt = time.Now().UTC()
	return u.save(ctx, current)
}

// SeedDefaultCategories creates the default categories that do not exist yet.
// Running it twice creates nothing the second time.
func (u *CategoryUseCase) SeedDefaultCategories(ctx context.Context) ([]entities.BenefitCategory, error) {
	var created []entities.BenefitCategory
	for _, def := range defaultCategories {
		existing, err := u.repo.GetByName(ctx, def.Name)
		if err != nil {
			return nil, err
		}
		if existing.ID != 0 {
			continue
		}
		c, err := u.CreateCategory(ctx, CategoryInput{Name: def.Name, Icon: def.Icon, AppliesTo: def.AppliesTo, DisplayOrder: def.DisplayOrder})
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	u.logger.Info("[category][usecase] seeded defaults", zap.Int("created", len(created)))
	return created, nil
}

func (u *CategoryUseCase) save(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	if updated.ID == 0 {
		return entities.BenefitCategory{}, ErrCategoryNotFound
	}
	return updated, nil
}

func validateCategoryInput(in CategoryInput) error {
	if in.Name == "" {
		return newValidationError("Category name is required")
	}
	if len(in.AppliesTo) == 0 {
		return newValidationError("Category must apply to at least one template type")
	}
	for _, t := range in.AppliesTo {
		if !t.Valid() {
			return newValidationError("Unknown template type: " + string(t))
		}
	}
	return nil
}

func dedupeTypes(in []entities.TemplateType) []entities.TemplateType {
	seen := make(map[entities.TemplateType]bool, len(in))
	out := make([]entities.TemplateType, 0, len(in))
	for _, t := range in {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
