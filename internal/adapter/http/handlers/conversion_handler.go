package handlers

import (
	"net/http"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConversionHandler struct {
	usecase usecase.IConversionUseCase
}

func NewConversionHandler(uc usecase.IConversionUseCase) *ConversionHandler {
	return &ConversionHandler{usecase: uc}
}

// ConvertQuote turns a Ready for Sale quote into an individual or group policy.
func (h *ConversionHandler) ConvertQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ConvertQuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(id)
	if err != nil {
		respondError(c, mapPolicyError(err))
		return
	}
	result, err := h.usecase.ConvertQuote(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapPolicyError(err).WithDetail("quote_id", id))
		return
	}
	c.JSON(http.StatusCreated, result)
}
