package interfaces

import (
	"context"

	"insurance_portal/internal/domain/entities"
)

// ITemplateRepository persists benefit template versions.
//
// Implementations must keep at most one active row per TemplateID:
//   - CreateVersion archives supersededID when it is active, archives every
//     other active row of next.TemplateID when next is active, and inserts
//     next, all atomically.
//   - Activate archives the other active rows of the same TemplateID and
//     activates id, atomically.
//
// Single-row lookups and updates return a zero BenefitTemplate (ID == 0)
// when the row does not exist.
type ITemplateRepository interface {
	Create(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error)
	GetByID(ctx context.Context, id int64) (entities.BenefitTemplate, error)
	List(ctx context.Context, filter entities.TemplateFilter) ([]entities.BenefitTemplate, error)
	ListByTemplateID(ctx context.Context, templateID string) ([]entities.BenefitTemplate, error)
	Update(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error)
	CreateVersion(ctx context.Context, supersededID int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error)
	Activate(ctx context.Context, id int64) (entities.BenefitTemplate, error)
	UpdateStatus(ctx context.Context, id int64, status entities.TemplateStatus) (entities.BenefitTemplate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
