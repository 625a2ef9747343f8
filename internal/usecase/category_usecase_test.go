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

func TestCategoryUseCase_CreateCategory(t *testing.T) {
	individual := []entities.TemplateType{entities.TemplateTypeIndividual}

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			in   CategoryInput
		}{
			{name: "blank name", in: CategoryInput{Name: " ", AppliesTo: individual}},
			{name: "no types", in: CategoryInput{Name: "Dental"}},
			{name: "unknown type", in: CategoryInput{Name: "Dental", AppliesTo: []entities.TemplateType{"family"}}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewCategoryUseCase(nil, zap.NewNop())
				if _, err := uc.CreateCategory(context.Background(), tc.in); !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByName(gomock.Any(), "Dental").Return(entities.BenefitCategory{ID: 2, Name: "dental"}, nil)
		uc := NewCategoryUseCase(repo, zap.NewNop())

		_, err := uc.CreateCategory(context.Background(), CategoryInput{Name: " Dental ", AppliesTo: individual})
		if !errors.Is(err, ErrCategoryNameTaken) {
			t.Fatalf("expected ErrCategoryNameTaken, got %v", err)
		}
	})

	t.Run("created active with deduplicated types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByName(gomock.Any(), "Dental").Return(entities.BenefitCategory{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
			c.ID = 5
			return c, nil
		})
		uc := NewCategoryUseCase(repo, zap.NewNop())

		got, err := uc.CreateCategory(context.Background(), CategoryInput{
			Name:      "Dental",
			AppliesTo: []entities.TemplateType{entities.TemplateTypeIndividual, entities.TemplateTypeIndividual},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsActive || len(got.AppliesTo) != 1 {
			t.Fatalf("unexpected category: %+v", got)
		}
	})
}

func TestCategoryUseCase_UpdateCategory(t *testing.T) {
	t.Run("rename to another category's name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.BenefitCategory{ID: 1, Name: "Medical", IsActive: true}, nil)
		repo.EXPECT().GetByName(gomock.Any(), "Vision").Return(entities.BenefitCategory{ID: 3, Name: "Vision"}, nil)
		uc := NewCategoryUseCase(repo, zap.NewNop())

		_, err := uc.UpdateCategory(context.Background(), 1, CategoryInput{Name: "Vision", AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup}})
		if !errors.Is(err, ErrCategoryNameTaken) {
			t.Fatalf("expected ErrCategoryNameTaken, got %v", err)
		}
	})

	t.Run("case change of own name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.BenefitCategory{ID: 1, Name: "Medical", IsActive: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
			return c, nil
		})
		uc := NewCategoryUseCase(repo, zap.NewNop())

		got, err := uc.UpdateCategory(context.Background(), 1, CategoryInput{Name: "MEDICAL", AppliesTo: []entities.TemplateType{entities.TemplateTypeGroup}})
		if err != nil || got.Name != "MEDICAL" {
			t.Fatalf("expected rename, got %+v err=%v", got, err)
		}
	})
}

func TestCategoryUseCase_DeactivateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.BenefitCategory{ID: 1, Name: "Medical", IsActive: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
		return c, nil
	})
	uc := NewCategoryUseCase(repo, zap.NewNop())

	got, err := uc.DeactivateCategory(context.Background(), 1)
	if err != nil || got.IsActive {
		t.Fatalf("expected inactive category, got %+v err=%v", got, err)
	}
}

func TestCategoryUseCase_SeedDefaultCategories(t *testing.T) {
	t.Run("creates only missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByName(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (entities.BenefitCategory, error) {
			if name == "Medical" {
				return entities.BenefitCategory{ID: 1, Name: "Medical"}, nil
			}
			return entities.BenefitCategory{}, nil
		}).AnyTimes()
		var id int64 = 10
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
			id++
			c.ID = id
			return c, nil
		}).Times(len(defaultCategories) - 1)
		uc := NewCategoryUseCase(repo, zap.NewNop())

		got, err := uc.SeedDefaultCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(defaultCategories)-1 {
			t.Fatalf("expected %d created, got %d", len(defaultCategories)-1, len(got))
		}
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		repo.EXPECT().GetByName(gomock.Any(), gomock.Any()).Return(entities.BenefitCategory{ID: 1}, nil).Times(len(defaultCategories))
		uc := NewCategoryUseCase(repo, zap.NewNop())

		got, err := uc.SeedDefaultCategories(context.Background())
		if err != nil || len(got) != 0 {
			t.Fatalf("expected nothing created, got %d err=%v", len(got), err)
		}
	})
}
