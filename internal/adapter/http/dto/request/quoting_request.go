package request

import (
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"
)

type AddressRequest struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (r AddressRequest) toAddress() entities.Address {
	return entities.Address{
		AddressLine1: cleanText(r.AddressLine1),
		AddressLine2: cleanText(r.AddressLine2),
		City:         cleanText(r.City),
		Province:     cleanText(r.Province),
		PostalCode:   cleanText(r.PostalCode),
		Country:      cleanText(r.Country),
	}
}

type ApplicantRequest struct {
	FirstName  string         `json:"first_name"`
	MiddleName string         `json:"middle_name"`
	LastName   string         `json:"last_name"`
	Birthdate  string         `json:"birthdate"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    AddressRequest `json:"address"`
	ClassID    *int64         `json:"class_id"`
}

func (r ApplicantRequest) ToInput() (usecase.ApplicantInput, error) {
	birth, err := parseDate(r.Birthdate)
	if err != nil {
		return usecase.ApplicantInput{}, err
	}
	return usecase.ApplicantInput{
		FirstName:  cleanText(r.FirstName),
		MiddleName: cleanText(r.MiddleName),
		LastName:   cleanText(r.LastName),
		Birthdate:  birth,
		Email:      cleanText(r.Email),
		Phone:      cleanText(r.Phone),
		Address:    r.Address.toAddress(),
		ClassID:    r.ClassID,
	}, nil
}

type GroupRequest struct {
	Name        string         `json:"name" binding:"required"`
	ContactName string         `json:"contact_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     AddressRequest `json:"address"`
}

func (r GroupRequest) ToInput() usecase.GroupInput {
	return usecase.GroupInput{
		Name:        cleanText(r.Name),
		ContactName: cleanText(r.ContactName),
		Email:       cleanText(r.Email),
		Phone:       cleanText(r.Phone),
		Address:     r.Address.toAddress(),
	}
}

type EmployeeClassRequest struct {
	ClassName   string `json:"class_name" binding:"required"`
	Description string `json:"description"`
}

func (r EmployeeClassRequest) ToInput() usecase.EmployeeClassInput {
	return usecase.EmployeeClassInput{ClassName: cleanText(r.ClassName), Description: cleanText(r.Description)}
}

type CoverageRequest struct {
	ProductType string `json:"product_type" binding:"required"`
	Details     string `json:"details"`
}

func (r CoverageRequest) ToInput() usecase.CoverageInput {
	return usecase.CoverageInput{ProductType: cleanText(r.ProductType), Details: cleanText(r.Details)}
}

type QuoteStatusRequest struct {
	Status entities.QuoteStatus `json:"status" binding:"required"`
}

type AttachBenefitRequest struct {
	TemplateDbID int64          `json:"template_db_id" binding:"required"`
	Values       map[string]any `json:"values"`
}
