package handlers

import (
	"context"
	"errors"
	"net/http"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/adapter/http/dto/response"
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"
	"insurance_portal/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves quotes and their applicants, classes and coverages.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateIndividualQuote(c *gin.Context) {
	var payload request.ApplicantRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	detail, err := h.usecase.CreateIndividualQuote(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *QuoteHandler) CreateGroupQuote(c *gin.Context) {
	var payload request.GroupRequest
	if !bindJSON(c, &payload) {
		return
	}
	detail, err := h.usecase.CreateGroupQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), entities.QuoteFilter{
		Status: entities.QuoteStatus(c.Query("status")),
		Type:   entities.QuoteType(c.Query("type")),
	})
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.usecase.GetQuoteDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.QuoteStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	quote, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) ArchiveQuote(c *gin.Context) {
	h.transitionQuote(c, h.usecase.ArchiveQuote)
}

// ClaimQuote answers 409 when the quote is no longer Ready for Sale, which
// the policy service reads as a lost claim.
func (h *QuoteHandler) ClaimQuote(c *gin.Context) {
	h.transitionQuote(c, h.usecase.ClaimQuote)
}

func (h *QuoteHandler) ReleaseQuote(c *gin.Context) {
	h.transitionQuote(c, h.usecase.ReleaseQuote)
}

func (h *QuoteHandler) transitionQuote(c *gin.Context, transition func(ctx context.Context, id int64) (entities.Quote, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quote, err := transition(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	h.deleteByID(c, "quote_id", h.usecase.DeleteQuote)
}

func (h *QuoteHandler) UpdateApplicant(c *gin.Context) {
	h.saveApplicant(c, h.usecase.UpdateApplicant)
}

func (h *QuoteHandler) AddEmployeeClass(c *gin.Context) {
	h.saveEmployeeClass(c, "quote_id", h.usecase.AddEmployeeClass, http.StatusCreated)
}

func (h *QuoteHandler) UpdateEmployeeClass(c *gin.Context) {
	h.saveEmployeeClass(c, "class_id", h.usecase.UpdateEmployeeClass, http.StatusOK)
}

func (h *QuoteHandler) DeleteEmployeeClass(c *gin.Context) {
	h.deleteByID(c, "class_id", h.usecase.DeleteEmployeeClass)
}

func (h *QuoteHandler) AddGroupApplicant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ApplicantRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	applicant, err := h.usecase.AddGroupApplicant(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusCreated, applicant)
}

func (h *QuoteHandler) UpdateGroupApplicant(c *gin.Context) {
	h.saveApplicant(c, h.usecase.UpdateGroupApplicant)
}

func (h *QuoteHandler) RemoveGroupApplicant(c *gin.Context) {
	h.deleteByID(c, "applicant_id", h.usecase.RemoveGroupApplicant)
}

func (h *QuoteHandler) AddCoverage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CoverageRequest
	if !bindJSON(c, &payload) {
		return
	}
	coverage, err := h.usecase.AddCoverage(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusCreated, coverage)
}

func (h *QuoteHandler) RemoveCoverage(c *gin.Context) {
	h.deleteByID(c, "coverage_id", h.usecase.RemoveCoverage)
}

func (h *QuoteHandler) saveApplicant(c *gin.Context, save func(ctx context.Context, id int64, in usecase.ApplicantInput) (entities.Applicant, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ApplicantRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	applicant, err := save(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("applicant_id", id))
		return
	}
	c.JSON(http.StatusOK, applicant)
}

func (h *QuoteHandler) saveEmployeeClass(c *gin.Context, idKey string, save func(ctx context.Context, id int64, in usecase.EmployeeClassInput) (entities.EmployeeClass, error), status int) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.EmployeeClassRequest
	if !bindJSON(c, &payload) {
		return
	}
	class, err := save(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail(idKey, id))
		return
	}
	c.JSON(status, class)
}

func (h *QuoteHandler) deleteByID(c *gin.Context, idKey string, remove func(ctx context.Context, id int64) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		respondError(c, mapQuoteError(err).WithDetail(idKey, id))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr := commonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicantNotFound):
		return pkg.NewDomainErrorSimple("APPLICANT_NOT_FOUND", "Applicant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeClassNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_CLASS_NOT_FOUND", "Employee class not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCoverageNotFound):
		return pkg.NewDomainErrorSimple("COVERAGE_NOT_FOUND", "Coverage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBenefitNotFound):
		return pkg.NewDomainErrorSimple("BENEFIT_NOT_FOUND", "Quote benefit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Benefit template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeClassInUse):
		return pkg.NewDomainErrorSimple("EMPLOYEE_CLASS_IN_USE", "Employee class is assigned to applicants", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteArchived):
		return pkg.NewDomainErrorSimple("QUOTE_ARCHIVED", "Quote is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotReadyForSale):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY_FOR_SALE", "Quote is not ready for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotArchived):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ARCHIVED", "Quote is not archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrTemplateNotActive):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_ACTIVE", "Benefit template is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrBenefitsIndividual):
		return pkg.NewDomainErrorSimple("BENEFITS_INDIVIDUAL_ONLY", "Benefits can only be attached to individual quotes", http.StatusConflict)
	default:
		return internalError(err)
	}
}
