package entities

import (
	"strings"
	"time"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - In Progress and Ready for Sale are set by users.
//   - Archived is terminal and is only reached by archiving or by a
//     successful policy conversion.
type QuoteStatus string

const (
	QuoteStatusInProgress   QuoteStatus = "In Progress"
	QuoteStatusReadyForSale QuoteStatus = "Ready for Sale"
	QuoteStatusArchived     QuoteStatus = "Archived"
)

type QuoteType string

const (
	QuoteTypeIndividual QuoteType = "Individual"
	QuoteTypeGroup      QuoteType = "Group"
)

// TemplateType maps a quote type to the template catalog it draws from.
func (t QuoteType) TemplateType() TemplateType {
	if t == QuoteTypeGroup {
		return TemplateTypeGroup
	}
	return TemplateTypeIndividual
}

type ApplicantStatus string

const (
	ApplicantStatusIncomplete ApplicantStatus = "Incomplete"
	ApplicantStatusComplete   ApplicantStatus = "Complete"
)

// Address is shared by applicants, groups and policy holders.
type Address struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     Address   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Applicant struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"first_name"`
	MiddleName string          `json:"middle_name"`
	LastName   string          `json:"last_name"`
	Birthdate  *time.Time      `json:"birthdate,omitempty"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    Address         `json:"address"`
	GroupID    *int64          `json:"group_id,omitempty"`
	ClassID    *int64          `json:"class_id,omitempty"`
	QuoteType  QuoteType       `json:"quote_type"`
	Status     ApplicantStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DeriveStatus is Complete once the fields a policy holder needs are present.
func (a Applicant) DeriveStatus() ApplicantStatus {
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" ||
		strings.TrimSpace(a.Email) == "" || a.Birthdate == nil {
		return ApplicantStatusIncomplete
	}
	return ApplicantStatusComplete
}

type EmployeeClass struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	ClassName   string    `json:"class_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Coverage struct {
	ID          int64     `json:"id"`
	QuoteID     int64     `json:"quote_id"`
	ProductType string    `json:"product_type"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
}

type Quote struct {
	ID          int64       `json:"id"`
	Status      QuoteStatus `json:"status"`
	Type        QuoteType   `json:"type"`
	ApplicantID *int64      `json:"applicant_id,omitempty"`
	GroupID     *int64      `json:"group_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// QuoteBenefit is a template instance attached to a quote. The template
// name, version and schema are snapshotted at attach time so later template
// revisions do not change what was quoted.
type QuoteBenefit struct {
	ID                  int64             `json:"id"`
	QuoteID             int64             `json:"quote_id"`
	TemplateDbID        int64             `json:"template_db_id"`
	TemplateUUID        string            `json:"template_uuid"`
	TemplateName        string            `json:"template_name"`
	TemplateVersion     string            `json:"template_version"`
	FieldSchemaSnapshot []FieldDefinition `json:"field_schema_snapshot"`
	ConfiguredValues    map[string]any    `json:"configured_values"`
	InstanceNumber      int               `json:"instance_number"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// QuoteDetail is the full read model of a quote, also served to the
// policy service for conversion.
type QuoteDetail struct {
	Quote           Quote           `json:"quote"`
	Applicant       *Applicant      `json:"applicant,omitempty"`
	Group           *Group          `json:"group,omitempty"`
	EmployeeClasses []EmployeeClass `json:"employee_classes"`
	GroupApplicants []Applicant     `json:"group_applicants"`
	Coverages       []Coverage      `json:"coverages"`
	Benefits        []QuoteBenefit  `json:"benefits"`
}

// QuoteFilter narrows ListQuotes. Zero values mean "any".
type QuoteFilter struct {
	Status QuoteStatus
	Type   QuoteType
}
