package handlers

import (
	"errors"
	"net/http"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/adapter/http/dto/response"
	"insurance_portal/internal/usecase"
	"insurance_portal/pkg"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the benefit category catalog of the designer service.
type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if !bindJSON(c, &payload) {
		return
	}
	category, err := h.usecase.CreateCategory(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapDesignerError(err))
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		respondError(c, mapDesignerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.usecase.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("category_id", id))
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CategoryRequest
	if !bindJSON(c, &payload) {
		return
	}
	category, err := h.usecase.UpdateCategory(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("category_id", id))
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeactivateCategory is a soft delete.
func (h *CategoryHandler) DeactivateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.usecase.DeactivateCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("category_id", id))
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) SeedCategories(c *gin.Context) {
	created, err := h.usecase.SeedDefaultCategories(c.Request.Context())
	if err != nil {
		respondError(c, mapDesignerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(created))
}

func mapDesignerError(err error) *pkg.AppError {
	if appErr := commonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Benefit category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNameTaken):
		return pkg.NewDomainErrorSimple("CATEGORY_NAME_TAKEN", "A category with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Benefit template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotDraft):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_DRAFT", "Only draft templates can be deleted", http.StatusConflict)
	default:
		return internalError(err)
	}
}
