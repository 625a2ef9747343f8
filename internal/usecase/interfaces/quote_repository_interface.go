package interfaces

import (
	"context"

	"insurance_portal/internal/domain/entities"
)

// IQuoteRepository persists quotes and the rows they own.
//
// Single-row lookups return a zero value (ID == 0) when nothing matches and
// deletes report whether a row was removed.
type IQuoteRepository interface {
	CreateIndividualQuote(ctx context.Context, q entities.Quote, applicant entities.Applicant) (entities.QuoteDetail, error)
	CreateGroupQuote(ctx context.Context, q entities.Quote, group entities.Group) (entities.QuoteDetail, error)
	GetQuote(ctx context.Context, id int64) (entities.Quote, error)
	GetQuoteByGroupID(ctx context.Context, groupID int64) (entities.Quote, error)
	GetQuoteByApplicantID(ctx context.Context, applicantID int64) (entities.Quote, error)
	GetQuoteDetail(ctx context.Context, id int64) (entities.QuoteDetail, error)
	ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error)
	// TransitionQuoteStatus moves a quote from one status to another only if
	// it is still in from. It reports whether exactly one row changed.
	TransitionQuoteStatus(ctx context.Context, id int64, from, to entities.QuoteStatus) (bool, error)
	// DeleteQuoteCascade removes benefits, coverages, applicants, classes,
	// the group and the quote in one transaction.
	DeleteQuoteCascade(ctx context.Context, id int64) (bool, error)

	GetApplicant(ctx context.Context, id int64) (entities.Applicant, error)
	CreateApplicant(ctx context.Context, a entities.Applicant) (entities.Applicant, error)
	UpdateApplicant(ctx context.Context, a entities.Applicant) (entities.Applicant, error)
	DeleteApplicant(ctx context.Context, id int64) (bool, error)

	GetEmployeeClass(ctx context.Context, id int64) (entities.EmployeeClass, error)
	CreateEmployeeClass(ctx context.Context, c entities.EmployeeClass) (entities.EmployeeClass, error)
	UpdateEmployeeClass(ctx context.Context, c entities.EmployeeClass) (entities.EmployeeClass, error)
	// DeleteEmployeeClass fails with ErrStillReferenced while any applicant
	// points at the class.
	DeleteEmployeeClass(ctx context.Context, id int64) (bool, error)

	GetCoverage(ctx context.Context, id int64) (entities.Coverage, error)
	CreateCoverage(ctx context.Context, c entities.Coverage) (entities.Coverage, error)
	DeleteCoverage(ctx context.Context, id int64) (bool, error)
}

// IQuoteBenefitRepository persists template instances attached to quotes.
type IQuoteBenefitRepository interface {
	CreateBenefit(ctx context.Context, b entities.QuoteBenefit) (entities.QuoteBenefit, error)
	GetBenefit(ctx context.Context, id int64) (entities.QuoteBenefit, error)
	ListBenefits(ctx context.Context, quoteID int64) ([]entities.QuoteBenefit, error)
	UpdateBenefitValues(ctx context.Context, id int64, values map[string]any) (entities.QuoteBenefit, error)
	DeleteBenefit(ctx context.Context, id int64) (bool, error)
	MaxInstanceNumber(ctx context.Context, quoteID int64, templateUUID string) (int, error)
}
