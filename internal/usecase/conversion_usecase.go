package usecase

import (
	"context"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/infrastructure/metrics"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ConvertQuoteInput carries a conversion request. ClassDefinitions is
// required for group quotes and ignored for individual ones.
type ConvertQuoteInput struct {
	QuoteID          int64
	EffectiveDate    *time.Time
	ExpirationDate   *time.Time
	ClassDefinitions []entities.ClassDefinition
}

// IConversionUseCase turns a Ready for Sale quote into a policy.
//
// Order of work:
//   - every check that can fail runs before the first write;
//   - the quote is claimed (conditionally archived) before the policy is
//     written, so two concurrent conversions cannot both succeed;
//   - a failed policy write releases the claim.
type IConversionUseCase interface {
	ConvertQuote(ctx context.Context, in ConvertQuoteInput) (entities.ConversionResult, error)
}

type ConversionUseCase struct {
	quotes   interfaces.IQuoteGateway
	policies interfaces.IPolicyRepository
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(quotes interfaces.IQuoteGateway, policies interfaces.IPolicyRepository, logger *zap.Logger) *ConversionUseCase {
	return &ConversionUseCase{
		quotes:   quotes,
		policies: policies,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    randomSuffixSource,
	}
}

func (u *ConversionUseCase) ConvertQuote(ctx context.Context, in ConvertQuoteInput) (entities.ConversionResult, error) {
	log := u.logger.With(zap.Int64("quote_id", in.QuoteID))
	log.Info("[conversion][usecase] start")

	detail, err := u.quotes.FetchQuoteDetail(ctx, in.QuoteID)
	if err != nil {
		return entities.ConversionResult{}, err
	}
	if detail.Quote.ID == 0 {
		return entities.ConversionResult{}, ErrQuoteNotFound
	}
	quoteType := detail.Quote.Type
	if detail.Quote.Status != entities.QuoteStatusReadyForSale {
		u.count(quoteType, "rejected")
		log.Info("[conversion][usecase] quote not ready for sale", zap.String("status", string(detail.Quote.Status)))
		return entities.ConversionResult{}, ErrQuoteNotReadyForSale
	}
	if err := validateDates(in); err != nil {
		u.count(quoteType, "rejected")
		return entities.ConversionResult{}, err
	}

	switch quoteType {
	case entities.QuoteTypeIndividual:
		if detail.Applicant != nil && strings.TrimSpace(detail.Applicant.Email) == "" {
			u.count(quoteType, "rejected")
			return entities.ConversionResult{}, newFieldValidationError("Applicant email is required",
				map[string]string{"email": "Applicant email is required"})
		}
	case entities.QuoteTypeGroup:
		if err := validateClassDefinitions(in.ClassDefinitions); err != nil {
			u.count(quoteType, "rejected")
			return entities.ConversionResult{}, err
		}
	default:
		return entities.ConversionResult{}, newValidationError("Unknown quote type: " + string(quoteType))
	}

	claimed, err := u.quotes.ClaimQuote(ctx, in.QuoteID)
	if err != nil {
		return entities.ConversionResult{}, err
	}
	if !claimed {
		u.count(quoteType, "rejected")
		log.Info("[conversion][usecase] lost claim")
		return entities.ConversionResult{}, ErrQuoteNotReadyForSale
	}

	result, err := u.persist(ctx, detail, in)
	if err != nil {
		u.count(quoteType, "failed")
		log.Error("[conversion][usecase] persist failed, releasing quote", zap.Error(err))
		if relErr := u.quotes.ReleaseQuote(ctx, in.QuoteID); relErr != nil {
			log.Error("[conversion][usecase] release failed", zap.Error(relErr))
		}
		return entities.ConversionResult{}, err
	}

	u.count(quoteType, "success")
	log.Info("[conversion][usecase] done", zap.String("policy_number", result.PolicyNumber))
	return result, nil
}

func (u *ConversionUseCase) persist(ctx context.Context, detail entities.QuoteDetail, in ConvertQuoteInput) (entities.ConversionResult, error) {
	number, err := u.nextPolicyNumber(ctx, detail.Quote.Type)
	if err != nil {
		return entities.ConversionResult{}, err
	}
	now := u.now()

	if detail.Quote.Type == entities.QuoteTypeGroup {
		created, err := u.policies.CreateGroupPolicy(ctx, buildGroupPolicy(detail, in, number, now))
		if err != nil {
			return entities.ConversionResult{}, err
		}
		return entities.ConversionResult{PolicyNumber: number, Type: entities.QuoteTypeGroup, GroupPolicy: &created}, nil
	}

	created, err := u.policies.CreateIndividualPolicy(ctx, buildIndividualPolicy(detail, in, number, now))
	if err != nil {
		return entities.ConversionResult{}, err
	}
	return entities.ConversionResult{PolicyNumber: number, Type: entities.QuoteTypeIndividual, IndividualPolicy: &created}, nil
}

func (u *ConversionUseCase) count(t entities.QuoteType, outcome string) {
	metrics.PolicyConversions.WithLabelValues(string(t), outcome).Inc()
}

func validateDates(in ConvertQuoteInput) error {
	if in.EffectiveDate == nil || in.EffectiveDate.IsZero() {
		return newFieldValidationError("Effective date is required",
			map[string]string{"effective_date": "Effective date is required"})
	}
	if in.ExpirationDate != nil && in.ExpirationDate.Before(*in.EffectiveDate) {
		return newFieldValidationError("Expiration date must be after the effective date",
			map[string]string{"expiration_date": "Expiration date must be after the effective date"})
	}
	return nil
}

func validateClassDefinitions(defs []entities.ClassDefinition) error {
	if len(defs) == 0 {
		return newFieldValidationError("At least one class definition is required for group conversion",
			map[string]string{"class_definitions": "At least one class definition is required"})
	}
	for _, d := range defs {
		if strings.TrimSpace(d.ClassName) == "" {
			return newFieldValidationError("Class name is required",
				map[string]string{"class_definitions": "Every class needs a name"})
		}
		for _, c := range d.Coverages {
			if strings.TrimSpace(c.ProductType) == "" {
				return newFieldValidationError("Coverage product type is required",
					map[string]string{"class_definitions": "Every class coverage needs a product type"})
			}
		}
	}
	return nil
}

// buildIndividualPolicy copies the applicant into a holder and each quote
// coverage into a policy coverage. Premiums stay unset.
func buildIndividualPolicy(detail entities.QuoteDetail, in ConvertQuoteInput, number string, now time.Time) entities.IndividualPolicy {
	p := entities.IndividualPolicy{
		PolicyNumber:   number,
		SourceQuoteID:  detail.Quote.ID,
		EffectiveDate:  *in.EffectiveDate,
		ExpirationDate: in.ExpirationDate,
		Status:         entities.PolicyStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if a := detail.Applicant; a != nil {
		sourceID := a.ID
		p.Holder = &entities.PolicyHolder{
			SourceApplicantID: &sourceID,
			FirstName:         a.FirstName,
			MiddleName:        a.MiddleName,
			LastName:          a.LastName,
			Birthdate:         a.Birthdate,
			Email:             a.Email,
			Phone:             a.Phone,
			Address:           a.Address,
		}
	}
	for _, c := range detail.Coverages {
		p.Coverages = append(p.Coverages, entities.IndividualPolicyCoverage{ProductType: c.ProductType, Details: c.Details})
	}
	return p
}

const unknownGroupName = "Unknown Group"

// buildGroupPolicy creates one class per definition, in input order.
// Member ids that are not applicants of the group are skipped.
func buildGroupPolicy(detail entities.QuoteDetail, in ConvertQuoteInput, number string, now time.Time) entities.GroupPolicy {
	p := entities.GroupPolicy{
		PolicyNumber:   number,
		SourceQuoteID:  detail.Quote.ID,
		SourceGroupID:  detail.Quote.GroupID,
		EffectiveDate:  *in.EffectiveDate,
		ExpirationDate: in.ExpirationDate,
		Status:         entities.PolicyStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.GroupName = unknownGroupName
	if detail.Group != nil {
		p.GroupName = detail.Group.Name
	}

	applicants := make(map[int64]entities.Applicant, len(detail.GroupApplicants))
	for _, a := range detail.GroupApplicants {
		applicants[a.ID] = a
	}
	for _, def := range in.ClassDefinitions {
		class := entities.PolicyClass{
			ClassName:   strings.TrimSpace(def.ClassName),
			Description: strings.TrimSpace(def.Description),
		}
		for _, id := range def.MemberIDs {
			a, ok := applicants[id]
			if !ok {
				continue
			}
			class.Members = append(class.Members, entities.GroupMember{
				SourceApplicantID: a.ID,
				FirstName:         a.FirstName,
				MiddleName:        a.MiddleName,
				LastName:          a.LastName,
				Birthdate:         a.Birthdate,
				Email:             a.Email,
				Phone:             a.Phone,
			})
		}
		for _, c := range def.Coverages {
			class.Coverages = append(class.Coverages, entities.ClassCoverage{
				ProductType: strings.TrimSpace(c.ProductType),
				Details:     c.Details,
				Premium:     c.Premium,
			})
		}
		p.Classes = append(p.Classes, class)
	}
	return p
}
