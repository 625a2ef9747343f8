package routes

import (
	"insurance_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/individual", h.CreateIndividualQuote)
		quotes.POST("/group", h.CreateGroupQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id/status", h.UpdateQuoteStatus)
		quotes.PATCH("/:id/archive", h.ArchiveQuote)
		// Called by the policy service during conversion.
		quotes.PATCH("/:id/claim", h.ClaimQuote)
		quotes.PATCH("/:id/release", h.ReleaseQuote)
		quotes.DELETE("/:id", h.DeleteQuote)

		quotes.POST("/:id/classes", h.AddEmployeeClass)
		quotes.POST("/:id/applicants", h.AddGroupApplicant)
		quotes.POST("/:id/coverages", h.AddCoverage)
	}

	rg.PUT("/applicants/:id", h.UpdateApplicant)
	rg.PUT("/classes/:id", h.UpdateEmployeeClass)
	rg.DELETE("/classes/:id", h.DeleteEmployeeClass)
	rg.PUT("/group-applicants/:id", h.UpdateGroupApplicant)
	rg.DELETE("/group-applicants/:id", h.RemoveGroupApplicant)
	rg.DELETE("/coverages/:id", h.RemoveCoverage)
}

func addBenefitRoutes(rg *gin.RouterGroup, h *handlers.BenefitHandler) {
	rg.GET("/benefit-templates", h.ListAvailableTemplates)
	rg.GET(PathQuotes+"/:id/benefits", h.ListBenefits)
	rg.POST(PathQuotes+"/:id/benefits", h.AttachBenefit)
	rg.PUT("/benefits/:id", h.UpdateBenefitValues)
	rg.DELETE("/benefits/:id", h.RemoveBenefit)
}
