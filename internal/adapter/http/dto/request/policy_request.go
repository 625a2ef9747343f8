package request

import (
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"
)

type ClassCoverageRequest struct {
	ProductType string   `json:"product_type"`
	Details     string   `json:"details"`
	Premium     *float64 `json:"premium"`
}

type ClassDefinitionRequest struct {
	ClassName   string                 `json:"class_name"`
	Description string                 `json:"description"`
	MemberIDs   []int64                `json:"member_ids"`
	Coverages   []ClassCoverageRequest `json:"coverages"`
}

type ConvertQuoteRequest struct {
	EffectiveDate    string                   `json:"effective_date"`
	ExpirationDate   string                   `json:"expiration_date"`
	ClassDefinitions []ClassDefinitionRequest `json:"class_definitions"`
}

func (r ConvertQuoteRequest) ToInput(quoteID int64) (usecase.ConvertQuoteInput, error) {
	effective, err := parseDate(r.EffectiveDate)
	if err != nil {
		return usecase.ConvertQuoteInput{}, err
	}
	expiration, err := parseDate(r.ExpirationDate)
	if err != nil {
		return usecase.ConvertQuoteInput{}, err
	}
	in := usecase.ConvertQuoteInput{QuoteID: quoteID, EffectiveDate: effective, ExpirationDate: expiration}
	for _, d := range r.ClassDefinitions {
		def := entities.ClassDefinition{
			ClassName:   cleanText(d.ClassName),
			Description: cleanText(d.Description),
			MemberIDs:   d.MemberIDs,
		}
		for _, c := range d.Coverages {
			def.Coverages = append(def.Coverages, entities.ClassCoverageInput{
				ProductType: cleanText(c.ProductType),
				Details:     cleanText(c.Details),
				Premium:     c.Premium,
			})
		}
		in.ClassDefinitions = append(in.ClassDefinitions, def)
	}
	return in, nil
}

type PolicyStatusRequest struct {
	Status entities.PolicyStatus `json:"status" binding:"required"`
}

type DependentRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Birthdate    string `json:"birthdate"`
	Relationship string `json:"relationship"`
}

func (r DependentRequest) ToInput() (usecase.DependentInput, error) {
	birth, err := parseDate(r.Birthdate)
	if err != nil {
		return usecase.DependentInput{}, err
	}
	return usecase.DependentInput{
		FirstName:    cleanText(r.FirstName),
		LastName:     cleanText(r.LastName),
		Birthdate:    birth,
		Relationship: cleanText(r.Relationship),
	}, nil
}

type BeneficiaryRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Relationship string  `json:"relationship"`
	Percentage   float64 `json:"percentage"`
}

func (r BeneficiaryRequest) ToInput() usecase.BeneficiaryInput {
	return usecase.BeneficiaryInput{
		FullName:     cleanText(r.FullName),
		Relationship: cleanText(r.Relationship),
		Percentage:   r.Percentage,
	}
}
