package repository

import (
	"context"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateRepo(t *testing.T) *TemplateGormRepository {
	return NewTemplateGormRepository(setupTestDB(t, BenefitDesignerModels()...))
}

func templateVersion(templateID string, major, minor int, status entities.TemplateStatus) entities.BenefitTemplate {
	tpl := entities.BenefitTemplate{
		TemplateID: templateID,
		CategoryID: 1,
		Type:       entities.TemplateTypeIndividual,
		Name:       "Medical Plan",
		FieldSchema: []entities.FieldDefinition{
			{ID: "deductible", Name: "Deductible", Type: entities.FieldTypeMoney, Required: true},
		},
		DefaultValues: map[string]any{"deductible": 250.0},
		Status:        status,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	tpl.SetVersion(major, minor)
	return tpl
}

func activeCount(t *testing.T, repo *TemplateGormRepository, templateID string) int {
	t.Helper()
	rows, err := repo.ListByTemplateID(context.Background(), templateID)
	require.NoError(t, err)
	n := 0
	for _, r := range rows {
		if r.Status == entities.TemplateStatusActive {
			n++
		}
	}
	return n
}

func TestTemplateRepository_CreateAndGet(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, templateVersion("tpl-a", 1, 0, entities.TemplateStatusDraft))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.0", got.Version)
	require.Len(t, got.FieldSchema, 1)
	assert.Equal(t, entities.FieldTypeMoney, got.FieldSchema[0].Type)
	assert.Equal(t, 250.0, got.DefaultValues["deductible"])

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestTemplateRepository_CreateVersionArchivesActivePredecessor(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	v1, err := repo.Create(ctx, templateVersion("tpl-b", 1, 0, entities.TemplateStatusActive))
	require.NoError(t, err)

	v2, err := repo.CreateVersion(ctx, v1.ID, templateVersion("tpl-b", 1, 1, entities.TemplateStatusActive))
	require.NoError(t, err)
	assert.Equal(t, entities.TemplateStatusActive, v2.Status)

	old, err := repo.GetByID(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TemplateStatusArchived, old.Status)
	assert.Equal(t, 1, activeCount(t, repo, "tpl-b"))
}

func TestTemplateRepository_ActivateKeepsOneActive(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	v1, err := repo.Create(ctx, templateVersion("tpl-c", 1, 0, entities.TemplateStatusActive))
	require.NoError(t, err)
	v2, err := repo.Create(ctx, templateVersion("tpl-c", 2, 0, entities.TemplateStatusDraft))
	require.NoError(t, err)
	other, err := repo.Create(ctx, templateVersion("tpl-other", 1, 0, entities.TemplateStatusActive))
	require.NoError(t, err)

	activated, err := repo.Activate(ctx, v2.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TemplateStatusActive, activated.Status)

	old, _ := repo.GetByID(ctx, v1.ID)
	assert.Equal(t, entities.TemplateStatusArchived, old.Status)
	assert.Equal(t, 1, activeCount(t, repo, "tpl-c"))

	untouched, _ := repo.GetByID(ctx, other.ID)
	assert.Equal(t, entities.TemplateStatusActive, untouched.Status)

	back, err := repo.Activate(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TemplateStatusActive, back.Status)
	assert.Equal(t, 1, activeCount(t, repo, "tpl-c"))
}

func TestTemplateRepository_ListFilters(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, templateVersion("tpl-d", 1, 0, entities.TemplateStatusActive))
	require.NoError(t, err)
	group := templateVersion("tpl-e", 1, 0, entities.TemplateStatusDraft)
	group.Type = entities.TemplateTypeGroup
	_, err = repo.Create(ctx, group)
	require.NoError(t, err)

	active, err := repo.List(ctx, entities.TemplateFilter{Status: entities.TemplateStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "tpl-d", active[0].TemplateID)

	groups, err := repo.List(ctx, entities.TemplateFilter{Type: entities.TemplateTypeGroup})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "tpl-e", groups[0].TemplateID)
}

func TestTemplateRepository_UpdateAndDelete(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	draft, err := repo.Create(ctx, templateVersion("tpl-f", 1, 0, entities.TemplateStatusDraft))
	require.NoError(t, err)

	draft.Name = "Renamed"
	draft.TemplateID = "ignored"
	updated, err := repo.Update(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "tpl-f", updated.TemplateID)

	archived, err := repo.UpdateStatus(ctx, draft.ID, entities.TemplateStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, entities.TemplateStatusArchived, archived.Status)

	deleted, err := repo.Delete(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	ghost, err := repo.Update(ctx, draft)
	require.NoError(t, err)
	assert.Zero(t, ghost.ID)
}

func TestCategoryRepository_CaseInsensitiveName(t *testing.T) {
	repo := NewCategoryGormRepository(setupTestDB(t, BenefitDesignerModels()...))
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.BenefitCategory{
		Name: "Dental", AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup}, DisplayOrder: 2, IsActive: true,
	})
	require.NoError(t, err)

	found, err := repo.GetByName(ctx, "  DENTAL ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, []entities.TemplateType{entities.TemplateTypeGroup}, found.AppliesTo)

	_, err = repo.Create(ctx, entities.BenefitCategory{Name: "dental", IsActive: true})
	assert.Error(t, err)

	_, err = repo.Create(ctx, entities.BenefitCategory{Name: "Archive", DisplayOrder: 1, IsActive: false})
	require.NoError(t, err)
	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Archive", all[0].Name)
}
