package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"
	mock_interfaces "insurance_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var conversionDay = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newConversionUseCase(ctrl *gomock.Controller, ids ...string) (*ConversionUseCase, *mock_interfaces.MockIQuoteGateway, *mock_interfaces.MockIPolicyRepository) {
	quotes := mock_interfaces.NewMockIQuoteGateway(ctrl)
	policies := mock_interfaces.NewMockIPolicyRepository(ctrl)
	uc := NewConversionUseCase(quotes, policies, zap.NewNop())
	uc.now = func() time.Time { return conversionDay }
	next := 0
	uc.newID = func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
	return uc, quotes, policies
}

func readyIndividualDetail() entities.QuoteDetail {
	a := completeApplicant(2)
	a.Phone = "555-0100"
	a.Address = entities.Address{City: "Toronto", Country: "CA"}
	return entities.QuoteDetail{
		Quote:     entities.Quote{ID: 1, Type: entities.QuoteTypeIndividual, Status: entities.QuoteStatusReadyForSale, ApplicantID: int64Ptr(2)},
		Applicant: &a,
		Coverages: []entities.Coverage{{ID: 1, ProductType: "Health", Details: "Basic"}, {ID: 2, ProductType: "Dental"}},
	}
}

func readyGroupDetail() entities.QuoteDetail {
	return entities.QuoteDetail{
		Quote: entities.Quote{ID: 5, Type: entities.QuoteTypeGroup, Status: entities.QuoteStatusReadyForSale, GroupID: int64Ptr(8)},
		Group: &entities.Group{ID: 8, Name: "Acme"},
		GroupApplicants: []entities.Applicant{
			{ID: 21, FirstName: "Ana", LastName: "Lima", Email: "ana@acme.test"},
			{ID: 22, FirstName: "Bo", LastName: "Chen"},
			{ID: 23, FirstName: "Cy", LastName: "Diaz"},
		},
		Coverages: []entities.Coverage{{ID: 1, ProductType: "Life"}},
	}
}

func TestConversionUseCase_Individual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, quotes, policies := newConversionUseCase(ctrl, "9f3a1c2e-0000-4000-8000-000000000000")
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		quotes.EXPECT().FetchQuoteDetail(gomock.Any(), int64(1)).Return(readyIndividualDetail(), nil),
		quotes.EXPECT().ClaimQuote(gomock.Any(), int64(1)).Return(true, nil),
		policies.EXPECT().PolicyNumberExists(gomock.Any(), "IND-20250314-9F3A1C2E").Return(false, nil),
		policies.EXPECT().CreateIndividualPolicy(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.IndividualPolicy) (entities.IndividualPolicy, error) {
			p.ID = 100
			return p, nil
		}),
	)

	got, err := uc.ConvertQuote(context.Background(), ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PolicyNumber != "IND-20250314-9F3A1C2E" || got.Type != entities.QuoteTypeIndividual {
		t.Fatalf("unexpected result: %+v", got)
	}
	p := got.IndividualPolicy
	if p == nil || got.GroupPolicy != nil {
		t.Fatalf("expected only an individual policy")
	}
	if p.Status != entities.PolicyStatusActive || p.SourceQuoteID != 1 || !p.EffectiveDate.Equal(effective) {
		t.Fatalf("unexpected policy: %+v", p)
	}
	if p.Holder == nil || p.Holder.Email != "ana@acme.test" || p.Holder.Address.City != "Toronto" || *p.Holder.SourceApplicantID != 2 {
		t.Fatalf("unexpected holder: %+v", p.Holder)
	}
	if len(p.Coverages) != 2 || p.Coverages[0].ProductType != "Health" || p.Coverages[0].Premium != nil {
		t.Fatalf("unexpected coverages: %+v", p.Coverages)
	}
}

func TestConversionUseCase_Group(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, quotes, policies := newConversionUseCase(ctrl, "abcdef12-3456-4000-8000-000000000000")
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	premium := 12.5

	quotes.EXPECT().FetchQuoteDetail(gomock.Any(), int64(5)).Return(readyGroupDetail(), nil)
	quotes.EXPECT().ClaimQuote(gomock.Any(), int64(5)).Return(true, nil)
	policies.EXPECT().PolicyNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	policies.EXPECT().CreateGroupPolicy(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.GroupPolicy) (entities.GroupPolicy, error) {
		p.ID = 200
		return p, nil
	})

	got, err := uc.ConvertQuote(context.Background(), ConvertQuoteInput{
		QuoteID:       5,
		EffectiveDate: &effective,
		ClassDefinitions: []entities.ClassDefinition{
			{ClassName: "Executives", MemberIDs: []int64{21, 999}, Coverages: []entities.ClassCoverageInput{{ProductType: "Life", Premium: &premium}}},
			{ClassName: "Staff", MemberIDs: []int64{22, 23}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got.PolicyNumber, "GRP-20250314-ABCDEF12") {
		t.Fatalf("unexpected policy number %s", got.PolicyNumber)
	}
	p := got.GroupPolicy
	if p == nil || got.IndividualPolicy != nil {
		t.Fatalf("expected only a group policy")
	}
	if p.GroupName != "Acme" || *p.SourceGroupID != 8 || len(p.Classes) != 2 {
		t.Fatalf("unexpected policy: %+v", p)
	}
	if p.Classes[0].ClassName != "Executives" || len(p.Classes[0].Members) != 1 || p.Classes[0].Members[0].SourceApplicantID != 21 {
		t.Fatalf("expected unknown member skipped, got %+v", p.Classes[0].Members)
	}
	if *p.Classes[0].Coverages[0].Premium != 12.5 {
		t.Fatalf("expected premium copied")
	}
	if len(p.Classes[1].Members) != 2 {
		t.Fatalf("expected two staff members, got %d", len(p.Classes[1].Members))
	}
}

func TestConversionUseCase_GroupWithoutGroupSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, quotes, policies := newConversionUseCase(ctrl, "abcdef12-3456-4000-8000-000000000000")
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	detail := readyGroupDetail()
	detail.Group = nil

	var written entities.GroupPolicy
	quotes.EXPECT().FetchQuoteDetail(gomock.Any(), int64(5)).Return(detail, nil)
	quotes.EXPECT().ClaimQuote(gomock.Any(), int64(5)).Return(true, nil)
	policies.EXPECT().PolicyNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	policies.EXPECT().CreateGroupPolicy(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.GroupPolicy) (entities.GroupPolicy, error) {
		written = p
		p.ID = 201
		return p, nil
	})

	_, err := uc.ConvertQuote(context.Background(), ConvertQuoteInput{
		QuoteID:          5,
		EffectiveDate:    &effective,
		ClassDefinitions: []entities.ClassDefinition{{ClassName: "Exec", MemberIDs: []int64{21}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written.GroupName != "Unknown Group" {
		t.Fatalf("expected fallback group name, got %q", written.GroupName)
	}
}

func TestConversionUseCase_RejectsBeforeWriting(t *testing.T) {
	effective := conversionDay
	before := conversionDay.Add(-24 * time.Hour)
	notReady := readyIndividualDetail()
	notReady.Quote.Status = entities.QuoteStatusInProgress
	noEmail := readyIndividualDetail()
	noEmail.Applicant.Email = " "

	cases := []struct {
		name    string
		in      ConvertQuoteInput
		detail  *entities.QuoteDetail
		wantErr error
	}{
		{name: "missing effective date", in: ConvertQuoteInput{QuoteID: 1}, detail: ptrDetail(readyIndividualDetail()), wantErr: ErrValidation},
		{name: "expiration before effective", in: ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective, ExpirationDate: &before}, detail: ptrDetail(readyIndividualDetail()), wantErr: ErrValidation},
		{name: "unknown quote", in: ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective}, detail: &entities.QuoteDetail{}, wantErr: ErrQuoteNotFound},
		{name: "unknown quote without dates", in: ConvertQuoteInput{QuoteID: 1}, detail: &entities.QuoteDetail{}, wantErr: ErrQuoteNotFound},
		{name: "not ready for sale", in: ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective}, detail: &notReady, wantErr: ErrQuoteNotReadyForSale},
		{name: "not ready for sale without dates", in: ConvertQuoteInput{QuoteID: 1}, detail: &notReady, wantErr: ErrQuoteNotReadyForSale},
		{name: "applicant without email", in: ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective}, detail: &noEmail, wantErr: ErrValidation},
		{name: "group without classes", in: ConvertQuoteInput{QuoteID: 5, EffectiveDate: &effective}, detail: ptrDetail(readyGroupDetail()), wantErr: ErrValidation},
		{name: "group class without name", in: ConvertQuoteInput{QuoteID: 5, EffectiveDate: &effective, ClassDefinitions: []entities.ClassDefinition{{ClassName: " "}}}, detail: ptrDetail(readyGroupDetail()), wantErr: ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, quotes, policies := newConversionUseCase(ctrl, "id")
			if tc.detail != nil {
				quotes.EXPECT().FetchQuoteDetail(gomock.Any(), tc.in.QuoteID).Return(*tc.detail, nil)
			}
			quotes.EXPECT().ClaimQuote(gomock.Any(), gomock.Any()).Times(0)
			policies.EXPECT().CreateIndividualPolicy(gomock.Any(), gomock.Any()).Times(0)
			policies.EXPECT().CreateGroupPolicy(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.ConvertQuote(context.Background(), tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func ptrDetail(d entities.QuoteDetail) *entities.QuoteDetail { return &d }

func TestConversionUseCase_LostClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, quotes, policies := newConversionUseCase(ctrl, "id")
	effective := conversionDay

	quotes.EXPECT().FetchQuoteDetail(gomock.Any(), int64(1)).Return(readyIndividualDetail(), nil)
	quotes.EXPECT().ClaimQuote(gomock.Any(), int64(1)).Return(false, nil)
	policies.EXPECT().CreateIndividualPolicy(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.ConvertQuote(context.Background(), ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective})
	if !errors.Is(err, ErrQuoteNotReadyForSale) {
		t.Fatalf("expected ErrQuoteNotReadyForSale, got %v", err)
	}
}

func TestConversionUseCase_ReleasesClaimOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, quotes, policies := newConversionUseCase(ctrl, "id")
	effective := conversionDay
	boom := errors.New("disk full")

	quotes.EXPECT().FetchQuoteDetail(gomock.Any(), int64(1)).Return(readyIndividualDetail(), nil)
	quotes.EXPECT().ClaimQuote(gomock.Any(), int64(1)).Return(true, nil)
	policies.EXPECT().PolicyNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	policies.EXPECT().CreateIndividualPolicy(gomock.Any(), gomock.Any()).Return(entities.IndividualPolicy{}, boom)
	quotes.EXPECT().ReleaseQuote(gomock.Any(), int64(1)).Return(nil)

	_, err := uc.ConvertQuote(context.Background(), ConvertQuoteInput{QuoteID: 1, EffectiveDate: &effective})
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestConversionUseCase_PolicyNumberCollisions(t *testing.T) {
	t.Run("retries until free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, policies := newConversionUseCase(ctrl, "aaaaaaaa", "bbbbbbbb")
		gomock.InOrder(
			policies.EXPECT().PolicyNumberExists(gomock.Any(), "IND-20250314-AAAAAAAA").Return(true, nil),
			policies.EXPECT().PolicyNumberExists(gomock.Any(), "IND-20250314-BBBBBBBB").Return(false, nil),
		)

		got, err := uc.nextPolicyNumber(context.Background(), entities.QuoteTypeIndividual)
		if err != nil || got != "IND-20250314-BBBBBBBB" {
			t.Fatalf("expected second candidate, got %s err=%v", got, err)
		}
	})

	t.Run("gives up after the attempt limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, policies := newConversionUseCase(ctrl, "aaaaaaaa")
		policies.EXPECT().PolicyNumberExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(policyNumberAttempts)

		if _, err := uc.nextPolicyNumber(context.Background(), entities.QuoteTypeGroup); !errors.Is(err, ErrPolicyNumberExhausted) {
			t.Fatalf("expected ErrPolicyNumberExhausted, got %v", err)
		}
	})
}

func TestFormatPolicyNumber(t *testing.T) {
	got := formatPolicyNumber("GRP", conversionDay, "0a1b2c3d-4e5f-6789-abcd-ef0123456789")
	if got != "GRP-20250314-0A1B2C3D" {
		t.Fatalf("unexpected policy number %s", got)
	}
}
