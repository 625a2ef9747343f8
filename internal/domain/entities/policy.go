package entities

import "time"

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "Active"
	PolicyStatusCancelled PolicyStatus = "Cancelled"
	PolicyStatusExpired   PolicyStatus = "Expired"
)

// CanTransitionTo allows only Active -> Cancelled|Expired.
func (s PolicyStatus) CanTransitionTo(next PolicyStatus) bool {
	return s == PolicyStatusActive && (next == PolicyStatusCancelled || next == PolicyStatusExpired)
}

type IndividualPolicy struct {
	ID             int64                      `json:"id"`
	PolicyNumber   string                     `json:"policy_number"`
	SourceQuoteID  int64                      `json:"source_quote_id"`
	EffectiveDate  time.Time                  `json:"effective_date"`
	ExpirationDate *time.Time                 `json:"expiration_date,omitempty"`
	Status         PolicyStatus               `json:"status"`
	Holder         *PolicyHolder              `json:"holder,omitempty"`
	Coverages      []IndividualPolicyCoverage `json:"coverages"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

type PolicyHolder struct {
	ID                int64         `json:"id"`
	PolicyID          int64         `json:"policy_id"`
	SourceApplicantID *int64        `json:"source_applicant_id,omitempty"`
	FirstName         string        `json:"first_name"`
	MiddleName        string        `json:"middle_name"`
	LastName          string        `json:"last_name"`
	Birthdate         *time.Time    `json:"birthdate,omitempty"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Address           Address       `json:"address"`
	Dependents        []Dependent   `json:"dependents"`
	Beneficiaries     []Beneficiary `json:"beneficiaries"`
}

type Dependent struct {
	ID             int64               `json:"id"`
	PolicyHolderID int64               `json:"policy_holder_id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Birthdate      *time.Time          `json:"birthdate,omitempty"`
	Relationship   string              `json:"relationship"`
	Coverages      []DependentCoverage `json:"coverages"`
}

type Beneficiary struct {
	ID             int64   `json:"id"`
	PolicyHolderID int64   `json:"policy_holder_id"`
	FullName       string  `json:"full_name"`
	Relationship   string  `json:"relationship"`
	Percentage     float64 `json:"percentage"`
}

// IndividualPolicyCoverage, ClassCoverage and DependentCoverage share a
// shape. Premium stays nil until underwriting prices the coverage.
type IndividualPolicyCoverage struct {
	ID          int64    `json:"id"`
	PolicyID    int64    `json:"policy_id"`
	ProductType string   `json:"product_type"`
	Details     string   `json:"details"`
	Premium     *float64 `json:"premium"`
}

type DependentCoverage struct {
	ID          int64    `json:"id"`
	DependentID int64    `json:"dependent_id"`
	ProductType string   `json:"product_type"`
	Details     string   `json:"details"`
	Premium     *float64 `json:"premium"`
}

type GroupPolicy struct {
	ID             int64         `json:"id"`
	PolicyNumber   string        `json:"policy_number"`
	SourceQuoteID  int64         `json:"source_quote_id"`
	SourceGroupID  *int64        `json:"source_group_id,omitempty"`
	GroupName      string        `json:"group_name"`
	EffectiveDate  time.Time     `json:"effective_date"`
	ExpirationDate *time.Time    `json:"expiration_date,omitempty"`
	Status         PolicyStatus  `json:"status"`
	Classes        []PolicyClass `json:"classes"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type PolicyClass struct {
	ID            int64           `json:"id"`
	GroupPolicyID int64           `json:"group_policy_id"`
	ClassName     string          `json:"class_name"`
	Description   string          `json:"description"`
	Members       []GroupMember   `json:"members"`
	Coverages     []ClassCoverage `json:"coverages"`
}

type GroupMember struct {
	ID                int64      `json:"id"`
	PolicyClassID     int64      `json:"policy_class_id"`
	SourceApplicantID int64      `json:"source_applicant_id"`
	FirstName         string     `json:"first_name"`
	MiddleName        string     `json:"middle_name"`
	LastName          string     `json:"last_name"`
	Birthdate         *time.Time `json:"birthdate,omitempty"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
}

type ClassCoverage struct {
	ID            int64    `json:"id"`
	PolicyClassID int64    `json:"policy_class_id"`
	ProductType   string   `json:"product_type"`
	Details       string   `json:"details"`
	Premium       *float64 `json:"premium"`
}

// ClassDefinition is the caller's input for one class of a group conversion.
type ClassDefinition struct {
	ClassName   string               `json:"class_name"`
	Description string               `json:"description"`
	MemberIDs   []int64              `json:"member_ids"`
	Coverages   []ClassCoverageInput `json:"coverages"`
}

type ClassCoverageInput struct {
	ProductType string   `json:"product_type"`
	Details     string   `json:"details"`
	Premium     *float64 `json:"premium"`
}

// ConversionResult carries exactly one of the two policy kinds.
type ConversionResult struct {
	PolicyNumber     string            `json:"policy_number"`
	Type             QuoteType         `json:"type"`
	IndividualPolicy *IndividualPolicy `json:"individual_policy,omitempty"`
	GroupPolicy      *GroupPolicy      `json:"group_policy,omitempty"`
}
