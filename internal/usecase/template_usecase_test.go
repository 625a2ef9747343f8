package usecase

import (
	"context"
	"errors"
	"testing"

	"insurance_portal/internal/domain/entities"
	mock_interfaces "insurance_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func deductibleSchema() []entities.FieldDefinition {
	min, max := 0.0, 5000.0
	return []entities.FieldDefinition{
		{ID: "deductible", Name: "Deductible", Type: entities.FieldTypeMoney, Required: true, Validation: &entities.FieldValidation{Min: &min, Max: &max}},
		{ID: "notes", Name: "Notes", Type: entities.FieldTypeText},
	}
}

func medicalCategory() entities.BenefitCategory {
	return entities.BenefitCategory{ID: 1, Name: "Medical", IsActive: true, AppliesTo: []entities.TemplateType{entities.TemplateTypeIndividual}}
}

func storedTemplate(id int64, status entities.TemplateStatus, major, minor int) entities.BenefitTemplate {
	t := entities.BenefitTemplate{
		ID:            id,
		TemplateID:    "tpl-uuid",
		CategoryID:    1,
		Type:          entities.TemplateTypeIndividual,
		Name:          "Health Basic",
		FieldSchema:   deductibleSchema(),
		DefaultValues: map[string]any{"deductible": 250.0},
		Status:        status,
	}
	t.SetVersion(major, minor)
	return t
}

func TestTemplateUseCase_CreateTemplate(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateTemplate(context.Background(), CreateTemplateInput{Name: "  ", Type: entities.TemplateTypeIndividual})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("category does not apply to type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(medicalCategory(), nil)
		uc := NewTemplateUseCase(nil, categories, zap.NewNop())

		_, err := uc.CreateTemplate(context.Background(), CreateTemplateInput{CategoryID: 1, Name: "Group Life", Type: entities.TemplateTypeGroup})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("defaults reference unknown field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(medicalCategory(), nil)
		uc := NewTemplateUseCase(nil, categories, zap.NewNop())

		_, err := uc.CreateTemplate(context.Background(), CreateTemplateInput{
			CategoryID: 1, Name: "Health", Type: entities.TemplateTypeIndividual,
			FieldSchema: deductibleSchema(), DefaultValues: map[string]any{"copay": 10},
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("starts at 1.0 as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		categories.EXPECT().GetByID(gomock.Any(), int64(1)).Return(medicalCategory(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl entities.BenefitTemplate) (entities.BenefitTemplate, error) {
			tpl.ID = 7
			return tpl, nil
		})
		uc := NewTemplateUseCase(repo, categories, zap.NewNop())

		got, err := uc.CreateTemplate(context.Background(), CreateTemplateInput{
			CategoryID: 1, Name: " Health ", Type: entities.TemplateTypeIndividual, FieldSchema: deductibleSchema(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != "1.0" || got.MajorVersion != 1 || got.MinorVersion != 0 {
			t.Fatalf("expected version 1.0, got %s", got.Version)
		}
		if got.Status != entities.TemplateStatusDraft {
			t.Fatalf("expected draft, got %s", got.Status)
		}
		if got.TemplateID == "" || got.Name != "Health" {
			t.Fatalf("unexpected template: %+v", got)
		}
		if got.DefaultValues == nil {
			t.Fatalf("expected non nil defaults")
		}
	})
}

func TestTemplateUseCase_ReviseTemplate(t *testing.T) {
	newName := "Health Plus"

	t.Run("draft is edited in place and keeps its version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusDraft, 1, 2), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl entities.BenefitTemplate) (entities.BenefitTemplate, error) {
			return tpl, nil
		})
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		got, err := uc.ReviseTemplate(context.Background(), 3, entities.TemplatePatch{Name: &newName}, entities.VersionBumpMajor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 3 || got.Version != "1.2" || got.Name != newName {
			t.Fatalf("expected in-place edit at 1.2, got id=%d version=%s name=%s", got.ID, got.Version, got.Name)
		}
	})

	cases := []struct {
		name        string
		status      entities.TemplateStatus
		bump        entities.VersionBump
		wantVersion string
	}{
		{name: "active minor bump", status: entities.TemplateStatusActive, bump: entities.VersionBumpMinor, wantVersion: "1.3"},
		{name: "active major bump", status: entities.TemplateStatusActive, bump: entities.VersionBumpMajor, wantVersion: "2.0"},
		{name: "archived defaults to minor", status: entities.TemplateStatusArchived, bump: "", wantVersion: "1.3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITemplateRepository(ctrl)
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, tc.status, 1, 2), nil)
			repo.EXPECT().ListByTemplateID(gomock.Any(), "tpl-uuid").Return([]entities.BenefitTemplate{storedTemplate(3, tc.status, 1, 2)}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().CreateVersion(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error) {
				next.ID = 4
				return next, nil
			})
			uc := NewTemplateUseCase(repo, nil, zap.NewNop())

			got, err := uc.ReviseTemplate(context.Background(), 3, entities.TemplatePatch{Name: &newName}, tc.bump)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Version != tc.wantVersion {
				t.Fatalf("expected version %s, got %s", tc.wantVersion, got.Version)
			}
			if got.Status != entities.TemplateStatusDraft {
				t.Fatalf("expected new row to be draft, got %s", got.Status)
			}
			if got.TemplateID != "tpl-uuid" {
				t.Fatalf("expected shared template id, got %s", got.TemplateID)
			}
		})
	}

	t.Run("revision that activates passes status through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		active := entities.TemplateStatusActive
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusActive, 1, 0), nil)
		repo.EXPECT().ListByTemplateID(gomock.Any(), "tpl-uuid").Return(nil, nil)
		repo.EXPECT().CreateVersion(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error) {
			if next.Status != entities.TemplateStatusActive {
				t.Fatalf("expected active next row, got %s", next.Status)
			}
			next.ID = 4
			return next, nil
		})
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		if _, err := uc.ReviseTemplate(context.Background(), 3, entities.TemplatePatch{Status: &active}, entities.VersionBumpMinor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("older archived row bumps past the newest version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(storedTemplate(1, entities.TemplateStatusArchived, 1, 0), nil)
		repo.EXPECT().ListByTemplateID(gomock.Any(), "tpl-uuid").Return([]entities.BenefitTemplate{
			storedTemplate(2, entities.TemplateStatusActive, 1, 1),
			storedTemplate(1, entities.TemplateStatusArchived, 1, 0),
		}, nil)
		repo.EXPECT().CreateVersion(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error) {
			next.ID = 3
			return next, nil
		})
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		got, err := uc.ReviseTemplate(context.Background(), 1, entities.TemplatePatch{Name: &newName}, entities.VersionBumpMinor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != "1.2" {
			t.Fatalf("expected 1.2, got %s", got.Version)
		}
	})

	t.Run("unknown bump", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil, zap.NewNop())
		_, err := uc.ReviseTemplate(context.Background(), 3, entities.TemplatePatch{}, "patch")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.BenefitTemplate{}, nil)
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		_, err := uc.ReviseTemplate(context.Background(), 9, entities.TemplatePatch{}, entities.VersionBumpMinor)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestTemplateUseCase_SetTemplateStatus(t *testing.T) {
	t.Run("activate goes through Activate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusDraft, 1, 0), nil)
		repo.EXPECT().Activate(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusActive, 1, 0), nil)
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		got, err := uc.SetTemplateStatus(context.Background(), 3, entities.TemplateStatusActive)
		if err != nil || got.Status != entities.TemplateStatusActive {
			t.Fatalf("expected active template, got %+v err=%v", got, err)
		}
	})

	t.Run("archive goes through UpdateStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusActive, 1, 0), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), entities.TemplateStatusArchived).Return(storedTemplate(3, entities.TemplateStatusArchived, 1, 0), nil)
		uc := NewTemplateUseCase(repo, nil, zap.NewNop())

		if _, err := uc.SetTemplateStatus(context.Background(), 3, entities.TemplateStatusArchived); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil, zap.NewNop())
		_, err := uc.SetTemplateStatus(context.Background(), 3, "retired")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestTemplateUseCase_ListTemplates_LatestOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITemplateRepository(ctrl)
	a10 := storedTemplate(1, entities.TemplateStatusArchived, 1, 0)
	a11 := storedTemplate(2, entities.TemplateStatusActive, 1, 1)
	b := storedTemplate(3, entities.TemplateStatusActive, 3, 0)
	b.TemplateID = "other-uuid"
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.BenefitTemplate{a10, b, a11}, nil)
	uc := NewTemplateUseCase(repo, nil, zap.NewNop())

	got, err := uc.ListTemplates(context.Background(), entities.TemplateFilter{LatestOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected one row per template id, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("expected rows 2 and 3, got %d and %d", got[0].ID, got[1].ID)
	}
}

func TestTemplateUseCase_ListVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITemplateRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(storedTemplate(1, entities.TemplateStatusArchived, 1, 0), nil)
	repo.EXPECT().ListByTemplateID(gomock.Any(), "tpl-uuid").Return([]entities.BenefitTemplate{
		storedTemplate(1, entities.TemplateStatusArchived, 1, 0),
		storedTemplate(5, entities.TemplateStatusDraft, 2, 0),
		storedTemplate(2, entities.TemplateStatusActive, 1, 1),
	}, nil)
	uc := NewTemplateUseCase(repo, nil, zap.NewNop())

	got, err := uc.ListVersions(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2.0", "1.1", "1.0"}
	for i, v := range want {
		if got[i].Version != v {
			t.Fatalf("expected %v, got %s at %d", want, got[i].Version, i)
		}
	}
}

func TestTemplateUseCase_DeleteTemplate(t *testing.T) {
	cases := []struct {
		name    string
		stored  entities.BenefitTemplate
		deleted bool
		wantErr error
	}{
		{name: "draft deleted", stored: storedTemplate(3, entities.TemplateStatusDraft, 1, 0), deleted: true},
		{name: "active refused", stored: storedTemplate(3, entities.TemplateStatusActive, 1, 0), wantErr: ErrTemplateNotDraft},
		{name: "missing", stored: entities.BenefitTemplate{}, wantErr: ErrTemplateNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITemplateRepository(ctrl)
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(tc.stored, nil)
			if tc.deleted {
				repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
			}
			uc := NewTemplateUseCase(repo, nil, zap.NewNop())

			err := uc.DeleteTemplate(context.Background(), 3)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTemplateUseCase_ValidateValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITemplateRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storedTemplate(3, entities.TemplateStatusActive, 1, 0), nil).Times(2)
	uc := NewTemplateUseCase(repo, nil, zap.NewNop())

	errs, err := uc.ValidateValues(context.Background(), 3, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs["deductible"] != "Deductible is required" {
		t.Fatalf("expected required message, got %v", errs)
	}

	errs, _ = uc.ValidateValues(context.Background(), 3, map[string]any{"deductible": "250.00"})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
