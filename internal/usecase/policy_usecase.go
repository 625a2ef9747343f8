package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/infrastructure/export"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPolicyNotFound          = errors.New("policy not found")
	ErrPolicyHolderNotFound    = errors.New("policy holder not found")
	ErrDependentNotFound       = errors.New("dependent not found")
	ErrBeneficiaryNotFound     = errors.New("beneficiary not found")
	ErrInvalidPolicyTransition = errors.New("invalid policy status transition")
)

type DependentInput struct {
	FirstName    string
	LastName     string
	Birthdate    *time.Time
	Relationship string
}

type BeneficiaryInput struct {
	FullName     string
	Relationship string
	Percentage   float64
}

type CensusFile struct {
	FileName string
	Content  *bytes.Buffer
}

type IPolicyUseCase interface {
	ListIndividualPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.IndividualPolicy, error)
	GetIndividualPolicy(ctx context.Context, id int64) (entities.IndividualPolicy, error)
	UpdateIndividualPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.IndividualPolicy, error)
	DeleteIndividualPolicy(ctx context.Context, id int64) error

	ListGroupPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.GroupPolicy, error)
	GetGroupPolicy(ctx context.Context, id int64) (entities.GroupPolicy, error)
	UpdateGroupPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.GroupPolicy, error)
	DeleteGroupPolicy(ctx context.Context, id int64) error
	ExportGroupCensus(ctx context.Context, id int64) (CensusFile, error)

	AddDependent(ctx context.Context, holderID int64, in DependentInput) (entities.Dependent, error)
	RemoveDependent(ctx context.Context, id int64) error
	AddDependentCoverage(ctx context.Context, dependentID int64, in CoverageInput) (entities.DependentCoverage, error)
	AddBeneficiary(ctx context.Context, holderID int64, in BeneficiaryInput) (entities.Beneficiary, error)
	RemoveBeneficiary(ctx context.Context, id int64) error
}

type PolicyUseCase struct {
	repo   interfaces.IPolicyRepository
	logger *zap.Logger
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, logger *zap.Logger) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, logger: logger}
}

func (u *PolicyUseCase) ListIndividualPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.IndividualPolicy, error) {
	return u.repo.ListIndividualPolicies(ctx, status)
}

func (u *PolicyUseCase) GetIndividualPolicy(ctx context.Context, id int64) (entities.IndividualPolicy, error) {
	p, err := u.repo.GetIndividualPolicy(ctx, id)
	if err != nil {
		return entities.IndividualPolicy{}, err
	}
	if p.ID == 0 {
		return entities.IndividualPolicy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) UpdateIndividualPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.IndividualPolicy, error) {
	p, err := u.GetIndividualPolicy(ctx, id)
	if err != nil {
		return entities.IndividualPolicy{}, err
	}
	if !p.Status.CanTransitionTo(status) {
		return entities.IndividualPolicy{}, ErrInvalidPolicyTransition
	}
	updated, err := u.repo.UpdateIndividualPolicyStatus(ctx, id, status)
	if err != nil {
		return entities.IndividualPolicy{}, err
	}
	if updated.ID == 0 {
		return entities.IndividualPolicy{}, ErrPolicyNotFound
	}
	u.logger.Info("[policy][usecase] individual status changed",
		zap.Int64("policy_id", id), zap.String("from", string(p.Status)), zap.String("to", string(status)))
	return updated, nil
}

func (u *PolicyUseCase) DeleteIndividualPolicy(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteIndividualPolicy(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPolicyNotFound
	}
	u.logger.Info("[policy][usecase] individual policy deleted", zap.Int64("policy_id", id))
	return nil
}

func (u *PolicyUseCase) ListGroupPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.GroupPolicy, error) {
	return u.repo.ListGroupPolicies(ctx, status)
}

func (u *PolicyUseCase) GetGroupPolicy(ctx context.Context, id int64) (entities.GroupPolicy, error) {
	p, err := u.repo.GetGroupPolicy(ctx, id)
	if err != nil {
		return entities.GroupPolicy{}, err
	}
	if p.ID == 0 {
		return entities.GroupPolicy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) UpdateGroupPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.GroupPolicy, error) {
	p, err := u.GetGroupPolicy(ctx, id)
	if err != nil {
		return entities.GroupPolicy{}, err
	}
	if !p.Status.CanTransitionTo(status) {
		return entities.GroupPolicy{}, ErrInvalidPolicyTransition
	}
	updated, err := u.repo.UpdateGroupPolicyStatus(ctx, id, status)
	if err != nil {
		return entities.GroupPolicy{}, err
	}
	if updated.ID == 0 {
		return entities.GroupPolicy{}, ErrPolicyNotFound
	}
	u.logger.Info("[policy][usecase] group status changed",
		zap.Int64("policy_id", id), zap.String("from", string(p.Status)), zap.String("to", string(status)))
	return updated, nil
}

func (u *PolicyUseCase) DeleteGroupPolicy(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteGroupPolicy(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPolicyNotFound
	}
	u.logger.Info("[policy][usecase] group policy deleted", zap.Int64("policy_id", id))
	return nil
}

func (u *PolicyUseCase) ExportGroupCensus(ctx context.Context, id int64) (CensusFile, error) {
	p, err := u.GetGroupPolicy(ctx, id)
	if err != nil {
		return CensusFile{}, err
	}
	buf, err := export.GroupCensus(p)
	if err != nil {
		u.logger.Error("[policy][usecase] census export failed", zap.Int64("policy_id", id), zap.Error(err))
		return CensusFile{}, err
	}
	return CensusFile{FileName: export.CensusFileName(p), Content: buf}, nil
}

func (u *PolicyUseCase) AddDependent(ctx context.Context, holderID int64, in DependentInput) (entities.Dependent, error) {
	if _, err := u.getHolder(ctx, holderID); err != nil {
		return entities.Dependent{}, err
	}
	fields := map[string]string{}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["first_name"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["last_name"] = "Last name is required"
	}
	if in.Birthdate != nil && in.Birthdate.After(time.Now()) {
		fields["birthdate"] = "Birthdate cannot be in the future"
	}
	if len(fields) > 0 {
		return entities.Dependent{}, newFieldValidationError("Dependent is invalid", fields)
	}
	return u.repo.AddDependent(ctx, entities.Dependent{
		PolicyHolderID: holderID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Birthdate:      in.Birthdate,
		Relationship:   strings.TrimSpace(in.Relationship),
	})
}

// RemoveDependent also removes the dependent's coverages.
func (u *PolicyUseCase) RemoveDependent(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteDependent(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDependentNotFound
	}
	return nil
}

func (u *PolicyUseCase) AddDependentCoverage(ctx context.Context, dependentID int64, in CoverageInput) (entities.DependentCoverage, error) {
	d, err := u.repo.GetDependent(ctx, dependentID)
	if err != nil {
		return entities.DependentCoverage{}, err
	}
	if d.ID == 0 {
		return entities.DependentCoverage{}, ErrDependentNotFound
	}
	if strings.TrimSpace(in.ProductType) == "" {
		return entities.DependentCoverage{}, newFieldValidationError("Product type is required",
			map[string]string{"product_type": "Product type is required"})
	}
	return u.repo.AddDependentCoverage(ctx, entities.DependentCoverage{
		DependentID: dependentID,
		ProductType: strings.TrimSpace(in.ProductType),
		Details:     in.Details,
	})
}

// AddBeneficiary keeps the holder's total allocation at or below 100%.
func (u *PolicyUseCase) AddBeneficiary(ctx context.Context, holderID int64, in BeneficiaryInput) (entities.Beneficiary, error) {
	h, err := u.getHolder(ctx, holderID)
	if err != nil {
		return entities.Beneficiary{}, err
	}
	fields := map[string]string{}
	if strings.TrimSpace(in.FullName) == "" {
		fields["full_name"] = "Full name is required"
	}
	if in.Percentage <= 0 || in.Percentage > 100 {
		fields["percentage"] = "Percentage must be greater than 0 and at most 100"
	}
	if len(fields) > 0 {
		return entities.Beneficiary{}, newFieldValidationError("Beneficiary is invalid", fields)
	}
	total := in.Percentage
	for _, b := range h.Beneficiaries {
		total += b.Percentage
	}
	if total > 100 {
		return entities.Beneficiary{}, newFieldValidationError("Beneficiary percentages cannot exceed 100",
			map[string]string{"percentage": "Total allocation would exceed 100%"})
	}
	return u.repo.AddBeneficiary(ctx, entities.Beneficiary{
		PolicyHolderID: holderID,
		FullName:       strings.TrimSpace(in.FullName),
		Relationship:   strings.TrimSpace(in.Relationship),
		Percentage:     in.Percentage,
	})
}

func (u *PolicyUseCase) RemoveBeneficiary(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteBeneficiary(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBeneficiaryNotFound
	}
	return nil
}

func (u *PolicyUseCase) getHolder(ctx context.Context, id int64) (entities.PolicyHolder, error) {
	h, err := u.repo.GetPolicyHolder(ctx, id)
	if err != nil {
		return entities.PolicyHolder{}, err
	}
	if h.ID == 0 {
		return entities.PolicyHolder{}, ErrPolicyHolderNotFound
	}
	return h, nil
}
