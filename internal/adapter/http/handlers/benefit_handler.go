package handlers

import (
	"net/http"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/adapter/http/dto/response"
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BenefitHandler attaches designer templates to individual quotes.
type BenefitHandler struct {
	usecase usecase.IQuoteBenefitUseCase
}

func NewBenefitHandler(uc usecase.IQuoteBenefitUseCase) *BenefitHandler {
	return &BenefitHandler{usecase: uc}
}

func (h *BenefitHandler) ListAvailableTemplates(c *gin.Context) {
	templates, err := h.usecase.ListAvailableTemplates(c.Request.Context(), entities.TemplateType(c.Query("type")))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(templates))
}

func (h *BenefitHandler) ListBenefits(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	benefits, err := h.usecase.ListBenefits(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusOK, response.NewList(benefits))
}

func (h *BenefitHandler) AttachBenefit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.AttachBenefitRequest
	if !bindJSON(c, &payload) {
		return
	}
	benefit, err := h.usecase.AttachBenefit(c.Request.Context(), id, payload.TemplateDbID, payload.Values)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusCreated, benefit)
}

func (h *BenefitHandler) UpdateBenefitValues(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ValuesRequest
	if !bindJSON(c, &payload) {
		return
	}
	benefit, err := h.usecase.UpdateBenefitValues(c.Request.Context(), id, payload.Values)
	if err != nil {
		respondError(c, mapQuoteError(err).WithDetail("benefit_id", id))
		return
	}
	c.JSON(http.StatusOK, benefit)
}

func (h *BenefitHandler) RemoveBenefit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.RemoveBenefit(c.Request.Context(), id); err != nil {
		respondError(c, mapQuoteError(err).WithDetail("benefit_id", id))
		return
	}
	c.Status(http.StatusNoContent)
}
