package routes

import (
	"insurance_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIndividualPolicies = "/individual-policies"
	PathGroupPolicies      = "/group-policies"
)

func addConversionRoutes(rg *gin.RouterGroup, h *handlers.ConversionHandler) {
	rg.POST(PathQuotes+"/:id/convert", h.ConvertQuote)
}

func addPolicyRoutes(rg *gin.RouterGroup, h *handlers.PolicyHandler) {
	individual := rg.Group(PathIndividualPolicies)
	{
		individual.GET("", h.ListIndividualPolicies)
		individual.GET("/:id", h.GetIndividualPolicy)
		individual.PATCH("/:id/status", h.UpdateIndividualPolicyStatus)
		individual.DELETE("/:id", h.DeleteIndividualPolicy)
	}

	group := rg.Group(PathGroupPolicies)
	{
		group.GET("", h.ListGroupPolicies)
		group.GET("/:id", h.GetGroupPolicy)
		group.PATCH("/:id/status", h.UpdateGroupPolicyStatus)
		group.DELETE("/:id", h.DeleteGroupPolicy)
		group.GET("/:id/census", h.ExportGroupCensus)
	}

	rg.POST("/policy-holders/:id/dependents", h.AddDependent)
	rg.POST("/policy-holders/:id/beneficiaries", h.AddBeneficiary)
	rg.DELETE("/dependents/:id", h.RemoveDependent)
	rg.POST("/dependents/:id/coverages", h.AddDependentCoverage)
	rg.DELETE("/beneficiaries/:id", h.RemoveBeneficiary)
}
