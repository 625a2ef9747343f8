package interfaces

import (
	"context"

	"insurance_portal/internal/domain/entities"
)

// IQuoteGateway is the policy service's view of the quoting service.
type IQuoteGateway interface {
	// FetchQuoteDetail returns a zero detail (Quote.ID == 0) for unknown quotes.
	FetchQuoteDetail(ctx context.Context, quoteID int64) (entities.QuoteDetail, error)
	// ClaimQuote archives the quote only if it is still Ready for Sale and
	// reports whether this caller won the claim.
	ClaimQuote(ctx context.Context, quoteID int64) (bool, error)
	// ReleaseQuote undoes a claim after a failed conversion.
	ReleaseQuote(ctx context.Context, quoteID int64) error
}

// ITemplateCatalog is the quoting service's view of the benefit designer.
type ITemplateCatalog interface {
	// FetchTemplatesByType returns active, latest-version templates.
	FetchTemplatesByType(ctx context.Context, templateType entities.TemplateType) ([]entities.BenefitTemplate, error)
	// FetchTemplate returns a zero template (ID == 0) for unknown ids.
	FetchTemplate(ctx context.Context, id int64) (entities.BenefitTemplate, error)
}
