package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"
	mock_interfaces "insurance_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 { return &v }

func completeApplicant(id int64) entities.Applicant {
	birth := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	return entities.Applicant{
		ID: id, FirstName: "Ana", LastName: "Lima", Email: "ana@acme.test", Birthdate: &birth,
		QuoteType: entities.QuoteTypeIndividual, Status: entities.ApplicantStatusComplete,
	}
}

func TestQuoteUseCase_CreateIndividualQuote(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, zap.NewNop())
		_, err := uc.CreateIndividualQuote(context.Background(), ApplicantInput{FirstName: "Ana", Email: "not-an-email"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("future birthdate", func(t *testing.T) {
		future := time.Now().Add(48 * time.Hour)
		uc := NewQuoteUseCase(nil, zap.NewNop())
		_, err := uc.CreateIndividualQuote(context.Background(), ApplicantInput{FirstName: "Ana", Birthdate: &future})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("starts in progress with derived applicant status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().CreateIndividualQuote(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, a entities.Applicant) (entities.QuoteDetail, error) {
				if q.Status != entities.QuoteStatusInProgress || q.Type != entities.QuoteTypeIndividual {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if a.Status != entities.ApplicantStatusIncomplete {
					t.Fatalf("expected incomplete applicant, got %s", a.Status)
				}
				q.ID = 1
				a.ID = 2
				return entities.QuoteDetail{Quote: q, Applicant: &a}, nil
			})
		uc := NewQuoteUseCase(repo, zap.NewNop())

		got, err := uc.CreateIndividualQuote(context.Background(), ApplicantInput{FirstName: " Ana "})
		if err != nil || got.Quote.ID != 1 || got.Applicant.FirstName != "Ana" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestQuoteUseCase_UpdateQuoteStatus(t *testing.T) {
	individual := func(applicant *entities.Applicant, coverages int) entities.QuoteDetail {
		d := entities.QuoteDetail{
			Quote:     entities.Quote{ID: 1, Type: entities.QuoteTypeIndividual, Status: entities.QuoteStatusInProgress},
			Applicant: applicant,
		}
		for i := 0; i < coverages; i++ {
			d.Coverages = append(d.Coverages, entities.Coverage{ID: int64(i + 1), QuoteID: 1, ProductType: "Health"})
		}
		return d
	}
	incomplete := entities.Applicant{ID: 2, FirstName: "Ana", Status: entities.ApplicantStatusIncomplete}
	complete := completeApplicant(2)
	group := entities.QuoteDetail{
		Quote:     entities.Quote{ID: 1, Type: entities.QuoteTypeGroup, Status: entities.QuoteStatusInProgress},
		Coverages: []entities.Coverage{{ID: 1, ProductType: "Life"}},
	}
	archived := individual(&complete, 1)
	archived.Quote.Status = entities.QuoteStatusArchived

	cases := []struct {
		name    string
		detail  entities.QuoteDetail
		target  entities.QuoteStatus
		wantErr error
	}{
		{name: "incomplete applicant", detail: individual(&incomplete, 1), target: entities.QuoteStatusReadyForSale, wantErr: ErrValidation},
		{name: "no coverage", detail: individual(&complete, 0), target: entities.QuoteStatusReadyForSale, wantErr: ErrValidation},
		{name: "group without employees", detail: group, target: entities.QuoteStatusReadyForSale, wantErr: ErrValidation},
		{name: "archived is frozen", detail: archived, target: entities.QuoteStatusInProgress, wantErr: ErrQuoteArchived},
		{name: "ready individual", detail: individual(&complete, 1), target: entities.QuoteStatusReadyForSale},
		{name: "back to in progress needs nothing", detail: individual(nil, 0), target: entities.QuoteStatusInProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			repo.EXPECT().GetQuoteDetail(gomock.Any(), int64(1)).Return(tc.detail, nil)
			if tc.wantErr == nil {
				repo.EXPECT().UpdateQuoteStatus(gomock.Any(), int64(1), tc.target).Return(entities.Quote{ID: 1, Status: tc.target}, nil)
			}
			uc := NewQuoteUseCase(repo, zap.NewNop())

			got, err := uc.UpdateQuoteStatus(context.Background(), 1, tc.target)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got.Status != tc.target {
				t.Fatalf("expected status %s, got %+v err=%v", tc.target, got, err)
			}
		})
	}

	t.Run("archived cannot be set directly", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, zap.NewNop())
		if _, err := uc.UpdateQuoteStatus(context.Background(), 1, entities.QuoteStatusArchived); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestQuoteUseCase_ClaimQuote(t *testing.T) {
	t.Run("winner gets the archived quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().TransitionQuoteStatus(gomock.Any(), int64(1), entities.QuoteStatusReadyForSale, entities.QuoteStatusArchived).Return(true, nil)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Status: entities.QuoteStatusArchived}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		got, err := uc.ClaimQuote(context.Background(), 1)
		if err != nil || got.Status != entities.QuoteStatusArchived {
			t.Fatalf("expected archived quote, got %+v err=%v", got, err)
		}
	})

	t.Run("loser is told the quote is not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().TransitionQuoteStatus(gomock.Any(), int64(1), entities.QuoteStatusReadyForSale, entities.QuoteStatusArchived).Return(false, nil)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Status: entities.QuoteStatusArchived}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		if _, err := uc.ClaimQuote(context.Background(), 1); !errors.Is(err, ErrQuoteNotReadyForSale) {
			t.Fatalf("expected ErrQuoteNotReadyForSale, got %v", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().TransitionQuoteStatus(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().GetQuote(gomock.Any(), int64(9)).Return(entities.Quote{}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		if _, err := uc.ClaimQuote(context.Background(), 9); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_ReleaseQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().TransitionQuoteStatus(gomock.Any(), int64(1), entities.QuoteStatusArchived, entities.QuoteStatusReadyForSale).Return(false, nil)
	repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Status: entities.QuoteStatusInProgress}, nil)
	uc := NewQuoteUseCase(repo, zap.NewNop())

	if _, err := uc.ReleaseQuote(context.Background(), 1); !errors.Is(err, ErrQuoteNotArchived) {
		t.Fatalf("expected ErrQuoteNotArchived, got %v", err)
	}
}

func TestQuoteUseCase_DeleteEmployeeClass(t *testing.T) {
	class := entities.EmployeeClass{ID: 4, GroupID: 8, ClassName: "Executives"}

	cases := []struct {
		name      string
		quote     entities.Quote
		deleted   bool
		deleteErr error
		callsRepo bool
		wantErr   error
	}{
		{name: "referenced class", quote: entities.Quote{ID: 1}, deleteErr: interfaces.ErrStillReferenced, callsRepo: true, wantErr: ErrEmployeeClassInUse},
		{name: "archived quote", quote: entities.Quote{ID: 1, Status: entities.QuoteStatusArchived}, wantErr: ErrQuoteArchived},
		{name: "deleted", quote: entities.Quote{ID: 1, Status: entities.QuoteStatusInProgress}, deleted: true, callsRepo: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			repo.EXPECT().GetEmployeeClass(gomock.Any(), int64(4)).Return(class, nil)
			repo.EXPECT().GetQuoteByGroupID(gomock.Any(), int64(8)).Return(tc.quote, nil)
			if tc.callsRepo {
				repo.EXPECT().DeleteEmployeeClass(gomock.Any(), int64(4)).Return(tc.deleted, tc.deleteErr)
			}
			uc := NewQuoteUseCase(repo, zap.NewNop())

			err := uc.DeleteEmployeeClass(context.Background(), 4)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestQuoteUseCase_AddGroupApplicant(t *testing.T) {
	groupQuote := entities.Quote{ID: 1, Type: entities.QuoteTypeGroup, Status: entities.QuoteStatusInProgress, GroupID: int64Ptr(8)}

	t.Run("class from another group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(groupQuote, nil)
		repo.EXPECT().GetEmployeeClass(gomock.Any(), int64(4)).Return(entities.EmployeeClass{ID: 4, GroupID: 99}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		_, err := uc.AddGroupApplicant(context.Background(), 1, ApplicantInput{FirstName: "Bo", ClassID: int64Ptr(4)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("individual quote refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Type: entities.QuoteTypeIndividual}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		if _, err := uc.AddGroupApplicant(context.Background(), 1, ApplicantInput{FirstName: "Bo"}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("added to group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(groupQuote, nil)
		repo.EXPECT().GetEmployeeClass(gomock.Any(), int64(4)).Return(entities.EmployeeClass{ID: 4, GroupID: 8}, nil)
		repo.EXPECT().CreateApplicant(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Applicant) (entities.Applicant, error) {
			if a.GroupID == nil || *a.GroupID != 8 || a.QuoteType != entities.QuoteTypeGroup {
				t.Fatalf("unexpected applicant: %+v", a)
			}
			a.ID = 30
			return a, nil
		})
		uc := NewQuoteUseCase(repo, zap.NewNop())

		got, err := uc.AddGroupApplicant(context.Background(), 1, ApplicantInput{FirstName: "Bo", ClassID: int64Ptr(4)})
		if err != nil || got.ID != 30 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestQuoteUseCase_AddCoverage(t *testing.T) {
	t.Run("archived quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Status: entities.QuoteStatusArchived}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		if _, err := uc.AddCoverage(context.Background(), 1, CoverageInput{ProductType: "Dental"}); !errors.Is(err, ErrQuoteArchived) {
			t.Fatalf("expected ErrQuoteArchived, got %v", err)
		}
	})

	t.Run("product type required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuote(gomock.Any(), int64(1)).Return(entities.Quote{ID: 1, Status: entities.QuoteStatusInProgress}, nil)
		uc := NewQuoteUseCase(repo, zap.NewNop())

		if _, err := uc.AddCoverage(context.Background(), 1, CoverageInput{ProductType: " "}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().DeleteQuoteCascade(gomock.Any(), int64(1)).Return(false, nil)
	uc := NewQuoteUseCase(repo, zap.NewNop())

	if err := uc.DeleteQuote(context.Background(), 1); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}
