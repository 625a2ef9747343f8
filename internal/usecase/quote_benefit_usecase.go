package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/domain/fieldschema"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBenefitNotFound    = errors.New("quote benefit not found")
	ErrTemplateNotActive  = errors.New("benefit template is not active")
	ErrBenefitsIndividual = errors.New("benefits can only be attached to individual quotes")
)

// IQuoteBenefitUseCase manages template instances attached to individual
// quotes. Values are validated against the template schema on attach and
// against the stored snapshot afterwards.
type IQuoteBenefitUseCase interface {
	ListAvailableTemplates(ctx context.Context, templateType entities.TemplateType) ([]entities.BenefitTemplate, error)
	ListBenefits(ctx context.Context, quoteID int64) ([]entities.QuoteBenefit, error)
	AttachBenefit(ctx context.Context, quoteID, templateDbID int64, values map[string]any) (entities.QuoteBenefit, error)
	UpdateBenefitValues(ctx context.Context, id int64, values map[string]any) (entities.QuoteBenefit, error)
	RemoveBenefit(ctx context.Context, id int64) error
}

type QuoteBenefitUseCase struct {
	quotes   interfaces.IQuoteRepository
	benefits interfaces.IQuoteBenefitRepository
	catalog  interfaces.ITemplateCatalog
	logger   *zap.Logger
}

var _ IQuoteBenefitUseCase = (*QuoteBenefitUseCase)(nil)

func NewQuoteBenefitUseCase(quotes interfaces.IQuoteRepository, benefits interfaces.IQuoteBenefitRepository, catalog interfaces.ITemplateCatalog, logger *zap.Logger) *QuoteBenefitUseCase {
	return &QuoteBenefitUseCase{quotes: quotes, benefits: benefits, catalog: catalog, logger: logger}
}

func (u *QuoteBenefitUseCase) ListAvailableTemplates(ctx context.Context, templateType entities.TemplateType) ([]entities.BenefitTemplate, error) {
	if templateType == "" {
		templateType = entities.TemplateTypeIndividual
	}
	if !templateType.Valid() {
		return nil, newValidationError("Template type must be group or individual")
	}
	return u.catalog.FetchTemplatesByType(ctx, templateType)
}

func (u *QuoteBenefitUseCase) ListBenefits(ctx context.Context, quoteID int64) ([]entities.QuoteBenefit, error) {
	if _, err := u.getQuote(ctx, quoteID); err != nil {
		return nil, err
	}
	return u.benefits.ListBenefits(ctx, quoteID)
}

// AttachBenefit snapshots the template name, version and schema and
// stores the defaults merged under values.
func (u *QuoteBenefitUseCase) AttachBenefit(ctx context.Context, quoteID, templateDbID int64, values map[string]any) (entities.QuoteBenefit, error) {
	q, err := u.getQuote(ctx, quoteID)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	if q.Type != entities.QuoteTypeIndividual {
		return entities.QuoteBenefit{}, ErrBenefitsIndividual
	}
	if q.Status == entities.QuoteStatusArchived {
		return entities.QuoteBenefit{}, ErrQuoteArchived
	}

	tpl, err := u.catalog.FetchTemplate(ctx, templateDbID)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	if tpl.ID == 0 {
		return entities.QuoteBenefit{}, ErrTemplateNotFound
	}
	if tpl.Status != entities.TemplateStatusActive {
		return entities.QuoteBenefit{}, ErrTemplateNotActive
	}
	if tpl.Type != entities.TemplateTypeIndividual {
		return entities.QuoteBenefit{}, newValidationError("Only individual templates can be attached to individual quotes")
	}

	merged := mergeValues(tpl.DefaultValues, values)
	if err := checkBenefitValues(tpl.FieldSchema, merged); err != nil {
		return entities.QuoteBenefit{}, err
	}

	max, err := u.benefits.MaxInstanceNumber(ctx, quoteID, tpl.TemplateID)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	now := time.Now().UTC()
	created, err := u.benefits.CreateBenefit(ctx, entities.QuoteBenefit{
		QuoteID:             quoteID,
		TemplateDbID:        tpl.ID,
		TemplateUUID:        tpl.TemplateID,
		TemplateName:        tpl.Name,
		TemplateVersion:     tpl.Version,
		FieldSchemaSnapshot: tpl.FieldSchema,
		ConfiguredValues:    merged,
		InstanceNumber:      max + 1,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	u.logger.Info("[benefit][usecase] attached",
		zap.Int64("quote_id", quoteID),
		zap.String("template_id", tpl.TemplateID),
		zap.String("version", tpl.Version),
		zap.Int("instance", created.InstanceNumber))
	return created, nil
}

// UpdateBenefitValues replaces the configured values. Validation uses the
// snapshot taken at attach time, not the current template.
func (u *QuoteBenefitUseCase) UpdateBenefitValues(ctx context.Context, id int64, values map[string]any) (entities.QuoteBenefit, error) {
	b, err := u.getBenefit(ctx, id)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	q, err := u.getQuote(ctx, b.QuoteID)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	if q.Status == entities.QuoteStatusArchived {
		return entities.QuoteBenefit{}, ErrQuoteArchived
	}
	if values == nil {
		values = map[string]any{}
	}
	if err := checkBenefitValues(b.FieldSchemaSnapshot, values); err != nil {
		return entities.QuoteBenefit{}, err
	}
	updated, err := u.benefits.UpdateBenefitValues(ctx, id, values)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	if updated.ID == 0 {
		return entities.QuoteBenefit{}, ErrBenefitNotFound
	}
	return updated, nil
}

func (u *QuoteBenefitUseCase) RemoveBenefit(ctx context.Context, id int64) error {
	b, err := u.getBenefit(ctx, id)
	if err != nil {
		return err
	}
	q, err := u.getQuote(ctx, b.QuoteID)
	if err != nil {
		return err
	}
	if q.Status == entities.QuoteStatusArchived {
		return ErrQuoteArchived
	}
	deleted, err := u.benefits.DeleteBenefit(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBenefitNotFound
	}
	return nil
}

func (u *QuoteBenefitUseCase) getQuote(ctx context.Context, id int64) (entities.Quote, error) {
	q, err := u.quotes.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteBenefitUseCase) getBenefit(ctx context.Context, id int64) (entities.QuoteBenefit, error) {
	b, err := u.benefits.GetBenefit(ctx, id)
	if err != nil {
		return entities.QuoteBenefit{}, err
	}
	if b.ID == 0 {
		return entities.QuoteBenefit{}, ErrBenefitNotFound
	}
	return b, nil
}

func checkBenefitValues(fields []entities.FieldDefinition, values map[string]any) error {
	if unknown := fieldschema.UnknownValueKeys(fields, values); len(unknown) > 0 {
		return newValidationError("Values reference unknown fields: " + strings.Join(unknown, ", "))
	}
	if errs := fieldschema.ValidateConfiguredValues(fields, values); len(errs) > 0 {
		return newFieldValidationError("Benefit values are invalid", errs)
	}
	return nil
}

// mergeValues layers values over defaults without touching either map.
func mergeValues(defaults, values map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(values))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range values {
		out[k] = v
	}
	return out
}
