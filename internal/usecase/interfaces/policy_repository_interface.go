package interfaces

import (
	"context"

	"insurance_portal/internal/domain/entities"
)

// IPolicyRepository persists converted policies.
//
// Create* store a whole aggregate in one transaction and return it with
// identities assigned. Delete* remove the aggregate children-first in one
// transaction.
type IPolicyRepository interface {
	PolicyNumberExists(ctx context.Context, number string) (bool, error)

	CreateIndividualPolicy(ctx context.Context, p entities.IndividualPolicy) (entities.IndividualPolicy, error)
	GetIndividualPolicy(ctx context.Context, id int64) (entities.IndividualPolicy, error)
	ListIndividualPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.IndividualPolicy, error)
	UpdateIndividualPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.IndividualPolicy, error)
	DeleteIndividualPolicy(ctx context.Context, id int64) (bool, error)

	CreateGroupPolicy(ctx context.Context, p entities.GroupPolicy) (entities.GroupPolicy, error)
	GetGroupPolicy(ctx context.Context, id int64) (entities.GroupPolicy, error)
	ListGroupPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.GroupPolicy, error)
	UpdateGroupPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.GroupPolicy, error)
	DeleteGroupPolicy(ctx context.Context, id int64) (bool, error)

	GetPolicyHolder(ctx context.Context, id int64) (entities.PolicyHolder, error)
	AddDependent(ctx context.Context, d entities.Dependent) (entities.Dependent, error)
	GetDependent(ctx context.Context, id int64) (entities.Dependent, error)
	DeleteDependent(ctx context.Context, id int64) (bool, error)
	AddDependentCoverage(ctx context.Context, c entities.DependentCoverage) (entities.DependentCoverage, error)
	AddBeneficiary(ctx context.Context, b entities.Beneficiary) (entities.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id int64) (bool, error)
}
