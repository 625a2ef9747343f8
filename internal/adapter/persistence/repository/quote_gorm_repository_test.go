package repository

import (
	"context"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteRepo(t *testing.T) *QuoteGormRepository {
	return NewQuoteGormRepository(setupTestDB(t, QuotingModels()...))
}

func seedGroupQuote(t *testing.T, repo *QuoteGormRepository) (entities.QuoteDetail, entities.EmployeeClass, entities.Applicant) {
	t.Helper()
	ctx := context.Background()
	detail, err := repo.CreateGroupQuote(ctx,
		entities.Quote{Status: entities.QuoteStatusInProgress, Type: entities.QuoteTypeGroup},
		entities.Group{Name: "Acme Corp", Email: "hr@acme.test"})
	require.NoError(t, err)

	class, err := repo.CreateEmployeeClass(ctx, entities.EmployeeClass{GroupID: *detail.Quote.GroupID, ClassName: "Executives"})
	require.NoError(t, err)
	member, err := repo.CreateApplicant(ctx, entities.Applicant{
		FirstName: "Ana", LastName: "Lima", GroupID: detail.Quote.GroupID, ClassID: &class.ID,
		QuoteType: entities.QuoteTypeGroup, Status: entities.ApplicantStatusIncomplete,
	})
	require.NoError(t, err)
	return detail, class, member
}

func TestQuoteRepository_CreateIndividualQuote(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	detail, err := repo.CreateIndividualQuote(ctx,
		entities.Quote{Status: entities.QuoteStatusInProgress, Type: entities.QuoteTypeIndividual},
		entities.Applicant{FirstName: "Jo", LastName: "Doe", Email: "jo@x.test", Birthdate: &birth,
			Address:   entities.Address{City: "Toronto", Province: "ON"},
			QuoteType: entities.QuoteTypeIndividual, Status: entities.ApplicantStatusComplete})
	require.NoError(t, err)

	require.NotNil(t, detail.Applicant)
	require.NotNil(t, detail.Quote.ApplicantID)
	assert.Equal(t, detail.Applicant.ID, *detail.Quote.ApplicantID)
	assert.Nil(t, detail.Quote.GroupID)

	loaded, err := repo.GetQuoteDetail(ctx, detail.Quote.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Applicant)
	assert.Equal(t, "Toronto", loaded.Applicant.Address.City)
	assert.Empty(t, loaded.Coverages)
	assert.NotNil(t, loaded.Benefits)
}

func TestQuoteRepository_GetQuoteDetailMissing(t *testing.T) {
	repo := newQuoteRepo(t)
	detail, err := repo.GetQuoteDetail(context.Background(), 404)
	require.NoError(t, err)
	assert.Zero(t, detail.Quote.ID)
}

func TestQuoteRepository_GroupDetailIncludesClassesAndMembers(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()
	detail, class, member := seedGroupQuote(t, repo)

	_, err := repo.CreateCoverage(ctx, entities.Coverage{QuoteID: detail.Quote.ID, ProductType: "Dental", Details: "Basic"})
	require.NoError(t, err)

	loaded, err := repo.GetQuoteDetail(ctx, detail.Quote.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Group)
	assert.Equal(t, "Acme Corp", loaded.Group.Name)
	require.Len(t, loaded.EmployeeClasses, 1)
	assert.Equal(t, class.ID, loaded.EmployeeClasses[0].ID)
	require.Len(t, loaded.GroupApplicants, 1)
	assert.Equal(t, member.ID, loaded.GroupApplicants[0].ID)
	require.Len(t, loaded.Coverages, 1)

	byGroup, err := repo.GetQuoteByGroupID(ctx, *detail.Quote.GroupID)
	require.NoError(t, err)
	assert.Equal(t, detail.Quote.ID, byGroup.ID)
}

func TestQuoteRepository_TransitionQuoteStatus(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()
	detail, err := repo.CreateGroupQuote(ctx,
		entities.Quote{Status: entities.QuoteStatusReadyForSale, Type: entities.QuoteTypeGroup},
		entities.Group{Name: "Beta"})
	require.NoError(t, err)

	won, err := repo.TransitionQuoteStatus(ctx, detail.Quote.ID, entities.QuoteStatusReadyForSale, entities.QuoteStatusArchived)
	require.NoError(t, err)
	assert.True(t, won)

	again, err := repo.TransitionQuoteStatus(ctx, detail.Quote.ID, entities.QuoteStatusReadyForSale, entities.QuoteStatusArchived)
	require.NoError(t, err)
	assert.False(t, again, "second claim must lose")

	q, err := repo.GetQuote(ctx, detail.Quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusArchived, q.Status)
}

func TestQuoteRepository_DeleteEmployeeClassWhileReferenced(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()
	_, class, member := seedGroupQuote(t, repo)

	deleted, err := repo.DeleteEmployeeClass(ctx, class.ID)
	assert.ErrorIs(t, err, interfaces.ErrStillReferenced)
	assert.False(t, deleted)

	still, err := repo.GetEmployeeClass(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, still.ID)

	_, err = repo.DeleteApplicant(ctx, member.ID)
	require.NoError(t, err)
	deleted, err = repo.DeleteEmployeeClass(ctx, class.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestQuoteRepository_DeleteQuoteCascade(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()
	detail, class, member := seedGroupQuote(t, repo)
	cov, err := repo.CreateCoverage(ctx, entities.Coverage{QuoteID: detail.Quote.ID, ProductType: "Life"})
	require.NoError(t, err)
	benefit, err := repo.CreateBenefit(ctx, entities.QuoteBenefit{QuoteID: detail.Quote.ID, TemplateUUID: "t-1", InstanceNumber: 1})
	require.NoError(t, err)

	deleted, err := repo.DeleteQuoteCascade(ctx, detail.Quote.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	q, _ := repo.GetQuote(ctx, detail.Quote.ID)
	assert.Zero(t, q.ID)
	c, _ := repo.GetEmployeeClass(ctx, class.ID)
	assert.Zero(t, c.ID)
	a, _ := repo.GetApplicant(ctx, member.ID)
	assert.Zero(t, a.ID)
	cv, _ := repo.GetCoverage(ctx, cov.ID)
	assert.Zero(t, cv.ID)
	b, _ := repo.GetBenefit(ctx, benefit.ID)
	assert.Zero(t, b.ID)

	again, err := repo.DeleteQuoteCascade(ctx, detail.Quote.ID)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestQuoteRepository_Benefits(t *testing.T) {
	repo := newQuoteRepo(t)
	ctx := context.Background()

	max, err := repo.MaxInstanceNumber(ctx, 1, "tpl")
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	schema := []entities.FieldDefinition{{ID: "deductible", Name: "Deductible", Type: entities.FieldTypeMoney}}
	for i := 1; i <= 2; i++ {
		_, err := repo.CreateBenefit(ctx, entities.QuoteBenefit{
			QuoteID: 1, TemplateUUID: "tpl", TemplateName: "Medical", TemplateVersion: "1.0",
			FieldSchemaSnapshot: schema, ConfiguredValues: map[string]any{"deductible": 500.0}, InstanceNumber: i,
		})
		require.NoError(t, err)
	}
	max, err = repo.MaxInstanceNumber(ctx, 1, "tpl")
	require.NoError(t, err)
	assert.Equal(t, 2, max)

	list, err := repo.ListBenefits(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, schema, list[0].FieldSchemaSnapshot)

	updated, err := repo.UpdateBenefitValues(ctx, list[0].ID, map[string]any{"deductible": 750.0})
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.ConfiguredValues["deductible"])
}
