package repository

import (
	"context"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPolicyRepo(t *testing.T) (*PolicyGormRepository, *gorm.DB) {
	db := setupTestDB(t, PolicyModels()...)
	return NewPolicyGormRepository(db), db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestPolicyRepository_IndividualAggregate(t *testing.T) {
	repo, db := newPolicyRepo(t)
	ctx := context.Background()
	applicantID := int64(7)
	effective := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateIndividualPolicy(ctx, entities.IndividualPolicy{
		PolicyNumber:  "IND-20250101-ABCDEF12",
		SourceQuoteID: 3,
		EffectiveDate: effective,
		Status:        entities.PolicyStatusActive,
		Holder: &entities.PolicyHolder{
			SourceApplicantID: &applicantID, FirstName: "Jo", LastName: "Doe", Email: "jo@x.test",
			Address: entities.Address{City: "Ottawa"},
		},
		Coverages: []entities.IndividualPolicyCoverage{{ProductType: "Dental", Details: "Basic"}, {ProductType: "Vision"}},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Holder)
	assert.Equal(t, created.ID, created.Holder.PolicyID)
	assert.Equal(t, "Ottawa", created.Holder.Address.City)
	require.Len(t, created.Coverages, 2)
	assert.Nil(t, created.Coverages[0].Premium)

	exists, err := repo.PolicyNumberExists(ctx, "IND-20250101-ABCDEF12")
	require.NoError(t, err)
	assert.True(t, exists)

	dep, err := repo.AddDependent(ctx, entities.Dependent{PolicyHolderID: created.Holder.ID, FirstName: "Kid", LastName: "Doe", Relationship: "child"})
	require.NoError(t, err)
	_, err = repo.AddDependentCoverage(ctx, entities.DependentCoverage{DependentID: dep.ID, ProductType: "Dental"})
	require.NoError(t, err)
	_, err = repo.AddBeneficiary(ctx, entities.Beneficiary{PolicyHolderID: created.Holder.ID, FullName: "Sam Doe", Percentage: 100})
	require.NoError(t, err)

	holder, err := repo.GetPolicyHolder(ctx, created.Holder.ID)
	require.NoError(t, err)
	require.Len(t, holder.Dependents, 1)
	require.Len(t, holder.Dependents[0].Coverages, 1)
	require.Len(t, holder.Beneficiaries, 1)

	deleted, err := repo.DeleteIndividualPolicy(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, model := range []any{&individualPolicyRow{}, &policyHolderRow{}, &dependentRow{}, &dependentCoverageRow{}, &beneficiaryRow{}, &individualCoverageRow{}} {
		assert.Zero(t, countRows(t, db, model))
	}
}

func TestPolicyRepository_GroupAggregate(t *testing.T) {
	repo, db := newPolicyRepo(t)
	ctx := context.Background()
	groupID := int64(11)

	created, err := repo.CreateGroupPolicy(ctx, entities.GroupPolicy{
		PolicyNumber:  "GRP-20250101-0011AA22",
		SourceQuoteID: 4,
		SourceGroupID: &groupID,
		GroupName:     "Acme",
		EffectiveDate: time.Now().UTC(),
		Status:        entities.PolicyStatusActive,
		Classes: []entities.PolicyClass{
			{
				ClassName: "Executives",
				Members:   []entities.GroupMember{{SourceApplicantID: 1, FirstName: "A"}, {SourceApplicantID: 2, FirstName: "B"}},
				Coverages: []entities.ClassCoverage{{ProductType: "Life"}},
			},
			{
				ClassName: "Staff",
				Members:   []entities.GroupMember{{SourceApplicantID: 3, FirstName: "C"}},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Classes, 2)
	assert.Equal(t, "Executives", created.Classes[0].ClassName)
	assert.Len(t, created.Classes[0].Members, 2)
	assert.Len(t, created.Classes[0].Coverages, 1)
	assert.Len(t, created.Classes[1].Members, 1)
	assert.Empty(t, created.Classes[1].Coverages)

	cancelled, err := repo.UpdateGroupPolicyStatus(ctx, created.ID, entities.PolicyStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStatusCancelled, cancelled.Status)

	list, err := repo.ListGroupPolicies(ctx, entities.PolicyStatusActive)
	require.NoError(t, err)
	assert.Empty(t, list)

	deleted, err := repo.DeleteGroupPolicy(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	for _, model := range []any{&groupPolicyRow{}, &policyClassRow{}, &groupMemberRow{}, &classCoverageRow{}} {
		assert.Zero(t, countRows(t, db, model))
	}

	again, err := repo.DeleteGroupPolicy(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestPolicyRepository_DuplicatePolicyNumberRollsBack(t *testing.T) {
	repo, db := newPolicyRepo(t)
	ctx := context.Background()
	p := entities.IndividualPolicy{
		PolicyNumber: "IND-20250101-DUPLICAT", SourceQuoteID: 1, EffectiveDate: time.Now().UTC(), Status: entities.PolicyStatusActive,
		Holder: &entities.PolicyHolder{FirstName: "A", Email: "a@x.test"},
	}
	_, err := repo.CreateIndividualPolicy(ctx, p)
	require.NoError(t, err)

	_, err = repo.CreateIndividualPolicy(ctx, p)
	assert.Error(t, err)
	assert.Equal(t, int64(1), countRows(t, db, &individualPolicyRow{}))
	assert.Equal(t, int64(1), countRows(t, db, &policyHolderRow{}))
}

func TestPolicyRepository_DeleteDependentCascades(t *testing.T) {
	repo, db := newPolicyRepo(t)
	ctx := context.Background()

	dep, err := repo.AddDependent(ctx, entities.Dependent{PolicyHolderID: 1, FirstName: "K", LastName: "D"})
	require.NoError(t, err)
	_, err = repo.AddDependentCoverage(ctx, entities.DependentCoverage{DependentID: dep.ID, ProductType: "Vision"})
	require.NoError(t, err)

	got, err := repo.GetDependent(ctx, dep.ID)
	require.NoError(t, err)
	require.Len(t, got.Coverages, 1)

	deleted, err := repo.DeleteDependent(ctx, dep.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Zero(t, countRows(t, db, &dependentCoverageRow{}))
}
