package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteArchived         = errors.New("quote is archived")
	ErrQuoteNotReadyForSale  = errors.New("quote is not ready for sale")
	ErrQuoteNotArchived      = errors.New("quote is not archived")
	ErrApplicantNotFound     = errors.New("applicant not found")
	ErrEmployeeClassNotFound = errors.New("employee class not found")
	ErrEmployeeClassInUse    = errors.New("employee class is assigned to applicants")
	ErrCoverageNotFound      = errors.New("coverage not found")
)

// ApplicantInput is the writable part of an applicant. ClassID only
// applies to group applicants.
type ApplicantInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Birthdate  *time.Time
	Email      string
	Phone      string
	Address    entities.Address
	ClassID    *int64
}

type GroupInput struct {
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     entities.Address
}

type EmployeeClassInput struct {
	ClassName   string
	Description string
}

type CoverageInput struct {
	ProductType string
	Details     string
}

// IQuoteUseCase exposes the quoting service operations.
//
// Status notes:
//   - In Progress and Ready for Sale are interchangeable through UpdateQuoteStatus.
//   - Archived is reached only through ArchiveQuote or ClaimQuote and freezes the quote.
type IQuoteUseCase interface {
	CreateIndividualQuote(ctx context.Context, in ApplicantInput) (entities.QuoteDetail, error)
	CreateGroupQuote(ctx context.Context, in GroupInput) (entities.QuoteDetail, error)
	GetQuoteDetail(ctx context.Context, id int64) (entities.QuoteDetail, error)
	ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error)
	ArchiveQuote(ctx context.Context, id int64) (entities.Quote, error)
	ClaimQuote(ctx context.Context, id int64) (entities.Quote, error)
	ReleaseQuote(ctx context.Context, id int64) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error

	UpdateApplicant(ctx context.Context, id int64, in ApplicantInput) (entities.Applicant, error)

	AddEmployeeClass(ctx context.Context, quoteID int64, in EmployeeClassInput) (entities.EmployeeClass, error)
	UpdateEmployeeClass(ctx context.Context, id int64, in EmployeeClassInput) (entities.EmployeeClass, error)
	DeleteEmployeeClass(ctx context.Context, id int64) error

	AddGroupApplicant(ctx context.Context, quoteID int64, in ApplicantInput) (entities.Applicant, error)
	UpdateGroupApplicant(ctx context.Context, id int64, in ApplicantInput) (entities.Applicant, error)
	RemoveGroupApplicant(ctx context.Context, id int64) error

	AddCoverage(ctx context.Context, quoteID int64, in CoverageInput) (entities.Coverage, error)
	RemoveCoverage(ctx context.Context, id int64) error
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	logger *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, logger: logger}
}

func (u *QuoteUseCase) CreateIndividualQuote(ctx context.Context, in ApplicantInput) (entities.QuoteDetail, error) {
	if err := validateApplicantInput(in); err != nil {
		return entities.QuoteDetail{}, err
	}
	now := time.Now().UTC()
	applicant := applyApplicantInput(entities.Applicant{QuoteType: entities.QuoteTypeIndividual, CreatedAt: now}, in, now)
	applicant.ClassID = nil

	detail, err := u.repo.CreateIndividualQuote(ctx,
		entities.Quote{Status: entities.QuoteStatusInProgress, Type: entities.QuoteTypeIndividual, CreatedAt: now, UpdatedAt: now},
		applicant)
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	u.logger.Info("[quote][usecase] individual quote created", zap.Int64("quote_id", detail.Quote.ID))
	return detail, nil
}

func (u *QuoteUseCase) CreateGroupQuote(ctx context.Context, in GroupInput) (entities.QuoteDetail, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.QuoteDetail{}, newValidationError("Group name is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return entities.QuoteDetail{}, err
	}
	now := time.Now().UTC()
	group := entities.Group{
		Name:        in.Name,
		ContactName: strings.TrimSpace(in.ContactName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	detail, err := u.repo.CreateGroupQuote(ctx,
		entities.Quote{Status: entities.QuoteStatusInProgress, Type: entities.QuoteTypeGroup, CreatedAt: now, UpdatedAt: now},
		group)
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	u.logger.Info("[quote][usecase] group quote created", zap.Int64("quote_id", detail.Quote.ID), zap.String("group", group.Name))
	return detail, nil
}

func (u *QuoteUseCase) GetQuoteDetail(ctx context.Context, id int64) (entities.QuoteDetail, error) {
	detail, err := u.repo.GetQuoteDetail(ctx, id)
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	if detail.Quote.ID == 0 {
		return entities.QuoteDetail{}, ErrQuoteNotFound
	}
	return detail, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	return u.repo.ListQuotes(ctx, filter)
}

// UpdateQuoteStatus moves a quote between In Progress and Ready for Sale.
// Ready for Sale requires a complete applicant (individual) or at least one
// employee (group), plus at least one coverage.
func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	switch status {
	case entities.QuoteStatusInProgress, entities.QuoteStatusReadyForSale:
	case entities.QuoteStatusArchived:
		return entities.Quote{}, newValidationError("Use the archive operation to archive a quote")
	default:
		return entities.Quote{}, newValidationError("Unknown quote status: " + string(status))
	}

	detail, err := u.GetQuoteDetail(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if detail.Quote.Status == entities.QuoteStatusArchived {
		return entities.Quote{}, ErrQuoteArchived
	}
	if status == entities.QuoteStatusReadyForSale {
		if err := checkReadyForSale(detail); err != nil {
			return entities.Quote{}, err
		}
	}

	updated, err := u.repo.UpdateQuoteStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("[quote][usecase] status updated", zap.Int64("quote_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *QuoteUseCase) ArchiveQuote(ctx context.Context, id int64) (entities.Quote, error) {
	q, err := u.getQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusArchived {
		return q, nil
	}
	ok, err := u.repo.TransitionQuoteStatus(ctx, id, q.Status, entities.QuoteStatusArchived)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ok {
		// status moved underneath us; report what is stored now
		return u.getQuote(ctx, id)
	}
	u.logger.Info("[quote][usecase] archived", zap.Int64("quote_id", id))
	return u.getQuote(ctx, id)
}

// ClaimQuote archives a Ready for Sale quote for conversion. Exactly one
// concurrent caller wins; the others get ErrQuoteNotReadyForSale.
func (u *QuoteUseCase) ClaimQuote(ctx context.Context, id int64) (entities.Quote, error) {
	ok, err := u.repo.TransitionQuoteStatus(ctx, id, entities.QuoteStatusReadyForSale, entities.QuoteStatusArchived)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.getQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ok {
		return entities.Quote{}, ErrQuoteNotReadyForSale
	}
	u.logger.Info("[quote][usecase] claimed for conversion", zap.Int64("quote_id", id))
	return q, nil
}

// ReleaseQuote undoes a claim after a failed conversion.
func (u *QuoteUseCase) ReleaseQuote(ctx context.Context, id int64) (entities.Quote, error) {
	ok, err := u.repo.TransitionQuoteStatus(ctx, id, entities.QuoteStatusArchived, entities.QuoteStatusReadyForSale)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.getQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ok {
		return entities.Quote{}, ErrQuoteNotArchived
	}
	u.logger.Warn("[quote][usecase] claim released", zap.Int64("quote_id", id))
	return q, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteQuoteCascade(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	u.logger.Info("[quote][usecase] deleted", zap.Int64("quote_id", id))
	return nil
}

func (u *QuoteUseCase) UpdateApplicant(ctx context.Context, id int64, in ApplicantInput) (entities.Applicant, error) {
	current, err := u.getApplicant(ctx, id)
	if err != nil {
		return entities.Applicant{}, err
	}
	if current.GroupID != nil {
		return u.UpdateGroupApplicant(ctx, id, in)
	}
	q, err := u.repo.GetQuoteByApplicantID(ctx, id)
	if err != nil {
		return entities.Applicant{}, err
	}
	if q.Status == entities.QuoteStatusArchived {
		return entities.Applicant{}, ErrQuoteArchived
	}
	if err := validateApplicantInput(in); err != nil {
		return entities.Applicant{}, err
	}
	in.ClassID = nil
	return u.saveApplicant(ctx, applyApplicantInput(current, in, time.Now().UTC()))
}

func (u *QuoteUseCase) AddEmployeeClass(ctx context.Context, quoteID int64, in EmployeeClassInput) (entities.EmployeeClass, error) {
	q, err := u.mutableGroupQuote(ctx, quoteID)
	if err != nil {
		return entities.EmployeeClass{}, err
	}
	in.ClassName = strings.TrimSpace(in.ClassName)
	if in.ClassName == "" {
		return entities.EmployeeClass{}, newValidationError("Class name is required")
	}
	created, err := u.repo.CreateEmployeeClass(ctx, entities.EmployeeClass{
		GroupID:     *q.GroupID,
		ClassName:   in.ClassName,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return entities.EmployeeClass{}, err
	}
	u.logger.Info("[quote][usecase] employee class added", zap.Int64("quote_id", quoteID), zap.Int64("class_id", created.ID))
	return created, nil
}

func (u *QuoteUseCase) UpdateEmployeeClass(ctx context.Context, id int64, in EmployeeClassInput) (entities.EmployeeClass, error) {
	class, err := u.getEmployeeClass(ctx, id)
	if err != nil {
		return entities.EmployeeClass{}, err
	}
	if err := u.checkGroupNotArchived(ctx, class.GroupID); err != nil {
		return entities.EmployeeClass{}, err
	}
	in.ClassName = strings.TrimSpace(in.ClassName)
	if in.ClassName == "" {
		return entities.EmployeeClass{}, newValidationError("Class name is required")
	}
	class.ClassName = in.ClassName
	class.Description = strings.TrimSpace(in.Description)
	updated, err := u.repo.UpdateEmployeeClass(ctx, class)
	if err != nil {
		return entities.EmployeeClass{}, err
	}
	if updated.ID == 0 {
		return entities.EmployeeClass{}, ErrEmployeeClassNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) DeleteEmployeeClass(ctx context.Context, id int64) error {
	class, err := u.getEmployeeClass(ctx, id)
	if err != nil {
		return err
	}
	if err := u.checkGroupNotArchived(ctx, class.GroupID); err != nil {
		return err
	}
	deleted, err := u.repo.DeleteEmployeeClass(ctx, id)
	if errors.Is(err, interfaces.ErrStillReferenced) {
		return ErrEmployeeClassInUse
	}
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEmployeeClassNotFound
	}
	u.logger.Info("[quote][usecase] employee class deleted", zap.Int64("class_id", id))
	return nil
}

func (u *QuoteUseCase) AddGroupApplicant(ctx context.Context, quoteID int64, in ApplicantInput) (entities.Applicant, error) {
	q, err := u.mutableGroupQuote(ctx, quoteID)
	if err != nil {
		return entities.Applicant{}, err
	}
	if err := validateApplicantInput(in); err != nil {
		return entities.Applicant{}, err
	}
	if err := u.checkClassInGroup(ctx, in.ClassID, *q.GroupID); err != nil {
		return entities.Applicant{}, err
	}
	now := time.Now().UTC()
	a := applyApplicantInput(entities.Applicant{QuoteType: entities.QuoteTypeGroup, GroupID: q.GroupID, CreatedAt: now}, in, now)
	created, err := u.repo.CreateApplicant(ctx, a)
	if err != nil {
		return entities.Applicant{}, err
	}
	u.logger.Info("[quote][usecase] group applicant added", zap.Int64("quote_id", quoteID), zap.Int64("applicant_id", created.ID))
	return created, nil
}

func (u *QuoteUseCase) UpdateGroupApplicant(ctx context.Context, id int64, in ApplicantInput) (entities.Applicant, error) {
	current, err := u.getApplicant(ctx, id)
	if err != nil {
		return entities.Applicant{}, err
	}
	if current.GroupID == nil {
		return entities.Applicant{}, newValidationError("Applicant does not belong to a group quote")
	}
	if err := u.checkGroupNotArchived(ctx, *current.GroupID); err != nil {
		return entities.Applicant{}, err
	}
	if err := validateApplicantInput(in); err != nil {
		return entities.Applicant{}, err
	}
	if err := u.checkClassInGroup(ctx, in.ClassID, *current.GroupID); err != nil {
		return entities.Applicant{}, err
	}
	return u.saveApplicant(ctx, applyApplicantInput(current, in, time.Now().UTC()))
}

func (u *QuoteUseCase) RemoveGroupApplicant(ctx context.Context, id int64) error {
	current, err := u.getApplicant(ctx, id)
	if err != nil {
		return err
	}
	if current.GroupID == nil {
		return newValidationError("Applicant does not belong to a group quote")
	}
	if err := u.checkGroupNotArchived(ctx, *current.GroupID); err != nil {
		return err
	}
	deleted, err := u.repo.DeleteApplicant(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrApplicantNotFound
	}
	return nil
}

func (u *QuoteUseCase) AddCoverage(ctx context.Context, quoteID int64, in CoverageInput) (entities.Coverage, error) {
	q, err := u.getQuote(ctx, quoteID)
	if err != nil {
		return entities.Coverage{}, err
	}
	if q.Status == entities.QuoteStatusArchived {
		return entities.Coverage{}, ErrQuoteArchived
	}
	in.ProductType = strings.TrimSpace(in.ProductType)
	if in.ProductType == "" {
		return entities.Coverage{}, newValidationError("Product type is required")
	}
	return u.repo.CreateCoverage(ctx, entities.Coverage{
		QuoteID:     quoteID,
		ProductType: in.ProductType,
		Details:     strings.TrimSpace(in.Details),
		CreatedAt:   time.Now().UTC(),
	})
}

func (u *QuoteUseCase) RemoveCoverage(ctx context.Context, id int64) error {
	c, err := u.repo.GetCoverage(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return ErrCoverageNotFound
	}
	q, err := u.getQuote(ctx, c.QuoteID)
	if err != nil {
		return err
	}
	if q.Status == entities.QuoteStatusArchived {
		return ErrQuoteArchived
	}
	if _, err := u.repo.DeleteCoverage(ctx, id); err != nil {
		return err
	}
	return nil
}

func (u *QuoteUseCase) getQuote(ctx context.Context, id int64) (entities.Quote, error) {
	q, err := u.repo.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) getApplicant(ctx context.Context, id int64) (entities.Applicant, error) {
	a, err := u.repo.GetApplicant(ctx, id)
	if err != nil {
		return entities.Applicant{}, err
	}
	if a.ID == 0 {
		return entities.Applicant{}, ErrApplicantNotFound
	}
	return a, nil
}

func (u *QuoteUseCase) getEmployeeClass(ctx context.Context, id int64) (entities.EmployeeClass, error) {
	c, err := u.repo.GetEmployeeClass(ctx, id)
	if err != nil {
		return entities.EmployeeClass{}, err
	}
	if c.ID == 0 {
		return entities.EmployeeClass{}, ErrEmployeeClassNotFound
	}
	return c, nil
}

func (u *QuoteUseCase) mutableGroupQuote(ctx context.Context, quoteID int64) (entities.Quote, error) {
	q, err := u.getQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Type != entities.QuoteTypeGroup || q.GroupID == nil {
		return entities.Quote{}, newValidationError("Employee classes and applicants can only be added to group quotes")
	}
	if q.Status == entities.QuoteStatusArchived {
		return entities.Quote{}, ErrQuoteArchived
	}
	return q, nil
}

func (u *QuoteUseCase) checkGroupNotArchived(ctx context.Context, groupID int64) error {
	q, err := u.repo.GetQuoteByGroupID(ctx, groupID)
	if err != nil {
		return err
	}
	if q.Status == entities.QuoteStatusArchived {
		return ErrQuoteArchived
	}
	return nil
}

func (u *QuoteUseCase) checkClassInGroup(ctx context.Context, classID *int64, groupID int64) error {
	if classID == nil {
		return nil
	}
	c, err := u.repo.GetEmployeeClass(ctx, *classID)
	if err != nil {
		return err
	}
	if c.ID == 0 || c.GroupID != groupID {
		return newFieldValidationError("Employee class does not belong to this group", map[string]string{"class_id": "Unknown class"})
	}
	return nil
}

func (u *QuoteUseCase) saveApplicant(ctx context.Context, a entities.Applicant) (entities.Applicant, error) {
	updated, err := u.repo.UpdateApplicant(ctx, a)
	if err != nil {
		return entities.Applicant{}, err
	}
	if updated.ID == 0 {
		return entities.Applicant{}, ErrApplicantNotFound
	}
	u.logger.Info("[quote][usecase] applicant updated", zap.Int64("applicant_id", updated.ID), zap.String("status", string(updated.Status)))
	return updated, nil
}

func checkReadyForSale(detail entities.QuoteDetail) error {
	fields := map[string]string{}
	switch detail.Quote.Type {
	case entities.QuoteTypeIndividual:
		if detail.Applicant == nil || detail.Applicant.Status != entities.ApplicantStatusComplete {
			fields["applicant"] = "Applicant must be complete"
		}
	case entities.QuoteTypeGroup:
		if len(detail.GroupApplicants) == 0 {
			fields["applicants"] = "At least one employee is required"
		}
	}
	if len(detail.Coverages) == 0 {
		fields["coverages"] = "At least one coverage is required"
	}
	if len(fields) > 0 {
		return newFieldValidationError("Quote is not ready for sale", fields)
	}
	return nil
}

func applyApplicantInput(a entities.Applicant, in ApplicantInput, now time.Time) entities.Applicant {
	a.FirstName = strings.TrimSpace(in.FirstName)
	a.MiddleName = strings.TrimSpace(in.MiddleName)
	a.LastName = strings.TrimSpace(in.LastName)
	a.Birthdate = in.Birthdate
	a.Email = strings.TrimSpace(in.Email)
	a.Phone = strings.TrimSpace(in.Phone)
	a.Address = in.Address
	a.ClassID = in.ClassID
	a.Status = a.DeriveStatus()
	a.UpdatedAt = now
	return a
}

func validateApplicantInput(in ApplicantInput) error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if in.Birthdate != nil && in.Birthdate.After(time.Now().UTC()) {
		return newFieldValidationError("Invalid applicant", map[string]string{"birthdate": "Birthdate cannot be in the future"})
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newFieldValidationError("Invalid email address", map[string]string{"email": "Invalid email address"})
	}
	return nil
}
