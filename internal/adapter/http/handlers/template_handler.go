package handlers

import (
	"net/http"
	"strconv"

	"insurance_portal/internal/adapter/http/dto/request"
	"insurance_portal/internal/adapter/http/dto/response"
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves versioned benefit templates. Every :id is a row id,
// so a path always addresses one concrete version.
type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var payload request.CreateTemplateRequest
	if !bindJSON(c, &payload) {
		return
	}
	tpl, err := h.usecase.CreateTemplate(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapDesignerError(err))
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// ListTemplates accepts type, category_id, status and latest_only filters.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	filter := entities.TemplateFilter{
		Type:       entities.TemplateType(c.Query("type")),
		Status:     entities.TemplateStatus(c.Query("status")),
		LatestOnly: c.Query("latest_only") == "true",
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, errInvalidID.WithDetail("category_id", raw))
			return
		}
		filter.CategoryID = id
	}
	templates, err := h.usecase.ListTemplates(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapDesignerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(templates))
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tpl, err := h.usecase.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) ListVersions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	versions, err := h.usecase.ListVersions(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, response.NewList(versions))
}

func (h *TemplateHandler) RenderForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := h.usecase.RenderForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, form)
}

// ReviseTemplate edits drafts in place and versions everything else.
// The bump query parameter picks major or minor and defaults to minor.
func (h *TemplateHandler) ReviseTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ReviseTemplateRequest
	if !bindJSON(c, &payload) {
		return
	}
	tpl, err := h.usecase.ReviseTemplate(c.Request.Context(), id, payload.ToPatch(), entities.VersionBump(c.Query("bump")))
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) SetTemplateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.TemplateStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	tpl, err := h.usecase.SetTemplateStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteTemplate(c.Request.Context(), id); err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateValues reports field errors with 200; only a missing template fails.
func (h *TemplateHandler) ValidateValues(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ValuesRequest
	if !bindJSON(c, &payload) {
		return
	}
	errs, err := h.usecase.ValidateValues(c.Request.Context(), id, payload.Values)
	if err != nil {
		respondError(c, mapDesignerError(err).WithDetail("template_db_id", id))
		return
	}
	c.JSON(http.StatusOK, response.NewValuesValidation(errs))
}
