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

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PolicyHandler serves issued policies and their holder sub-resources.
type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

func (h *PolicyHandler) ListIndividualPolicies(c *gin.Context) {
	policies, err := h.usecase.ListIndividualPolicies(c.Request.Context(), entities.PolicyStatus(c.Query("status")))
	if err != nil {
		respondError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(policies))
}

func (h *PolicyHandler) GetIndividualPolicy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	policy, err := h.usecase.GetIndividualPolicy(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_id", id))
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) UpdateIndividualPolicyStatus(c *gin.Context) {
	id, status, ok := policyStatusRequest(c)
	if !ok {
		return
	}
	policy, err := h.usecase.UpdateIndividualPolicyStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_id", id))
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) DeleteIndividualPolicy(c *gin.Context) {
	h.deleteByID(c, "policy_id", h.usecase.DeleteIndividualPolicy)
}

func (h *PolicyHandler) ListGroupPolicies(c *gin.Context) {
	policies, err := h.usecase.ListGroupPolicies(c.Request.Context(), entities.PolicyStatus(c.Query("status")))
	if err != nil {
		respondError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(policies))
}

func (h *PolicyHandler) GetGroupPolicy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	policy, err := h.usecase.GetGroupPolicy(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_id", id))
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) UpdateGroupPolicyStatus(c *gin.Context) {
	id, status, ok := policyStatusRequest(c)
	if !ok {
		return
	}
	policy, err := h.usecase.UpdateGroupPolicyStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_id", id))
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) DeleteGroupPolicy(c *gin.Context) {
	h.deleteByID(c, "policy_id", h.usecase.DeleteGroupPolicy)
}

func (h *PolicyHandler) ExportGroupCensus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, err := h.usecase.ExportGroupCensus(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_id", id))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, file.Content.Bytes())
}

func (h *PolicyHandler) AddDependent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.DependentRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapPolicyError(err))
		return
	}
	dependent, err := h.usecase.AddDependent(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_holder_id", id))
		return
	}
	c.JSON(http.StatusCreated, dependent)
}

func (h *PolicyHandler) RemoveDependent(c *gin.Context) {
	h.deleteByID(c, "dependent_id", h.usecase.RemoveDependent)
}

func (h *PolicyHandler) AddDependentCoverage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CoverageRequest
	if !bindJSON(c, &payload) {
		return
	}
	coverage, err := h.usecase.AddDependentCoverage(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("dependent_id", id))
		return
	}
	c.JSON(http.StatusCreated, coverage)
}

func (h *PolicyHandler) AddBeneficiary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.BeneficiaryRequest
	if !bindJSON(c, &payload) {
		return
	}
	beneficiary, err := h.usecase.AddBeneficiary(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("policy_holder_id", id))
		return
	}
	c.JSON(http.StatusCreated, beneficiary)
}

func (h *PolicyHandler) RemoveBeneficiary(c *gin.Context) {
	h.deleteByID(c, "beneficiary_id", h.usecase.RemoveBeneficiary)
}

func (h *PolicyHandler) deleteByID(c *gin.Context, idKey string, remove func(ctx context.Context, id int64) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		respondError(c, mapPolicyError(err).WithDetail(idKey, id))
		return
	}
	c.Status(http.StatusNoContent)
}

func policyStatusRequest(c *gin.Context) (int64, entities.PolicyStatus, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, "", false
	}
	var payload request.PolicyStatusRequest
	if !bindJSON(c, &payload) {
		return 0, "", false
	}
	return id, payload.Status, true
}

func mapPolicyError(err error) *pkg.AppError {
	if appErr := commonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyHolderNotFound):
		return pkg.NewDomainErrorSimple("POLICY_HOLDER_NOT_FOUND", "Policy holder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDependentNotFound):
		return pkg.NewDomainErrorSimple("DEPENDENT_NOT_FOUND", "Dependent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBeneficiaryNotFound):
		return pkg.NewDomainErrorSimple("BENEFICIARY_NOT_FOUND", "Beneficiary not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotReadyForSale):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY_FOR_SALE", "Quote is not ready for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPolicyTransition):
		return pkg.NewDomainErrorSimple("INVALID_POLICY_TRANSITION", "Policy status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNumberExhausted):
		return pkg.NewDomainError("POLICY_NUMBER_UNAVAILABLE", "Could not allocate a policy number", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
