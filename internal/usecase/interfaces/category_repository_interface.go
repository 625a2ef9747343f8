package interfaces

import (
	"context"

	"insurance_portal/internal/domain/entities"
)

// ICategoryRepository persists benefit categories.
//
// Lookups return a zero BenefitCategory (ID == 0) when nothing matches.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error)
	GetByID(ctx context.Context, id int64) (entities.BenefitCategory, error)
	GetByName(ctx context.Context, name string) (entities.BenefitCategory, error)
	List(ctx context.Context, includeInactive bool) ([]entities.BenefitCategory, error)
	Update(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error)
}
