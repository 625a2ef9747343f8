package routes

import (
	"insurance_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCategories = "/categories"
	PathTemplates  = "/templates"
)

func addCategoryRoutes(rg *gin.RouterGroup, h *handlers.CategoryHandler) {
	categories := rg.Group(PathCategories)
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.POST("/seed", h.SeedCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeactivateCategory)
	}
}

func addTemplateRoutes(rg *gin.RouterGroup, h *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.POST("", h.CreateTemplate)
		templates.GET("", h.ListTemplates)
		templates.GET("/:id", h.GetTemplate)
		templates.GET("/:id/versions", h.ListVersions)
		templates.GET("/:id/form", h.RenderForm)
		templates.PUT("/:id", h.ReviseTemplate)
		templates.PATCH("/:id/status", h.SetTemplateStatus)
		templates.DELETE("/:id", h.DeleteTemplate)
		templates.POST("/:id/validate", h.ValidateValues)
	}
}
