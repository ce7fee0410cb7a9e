package routes

import (
	"hsj_mel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRules        = "/rules"
	PathAvailability = "/availability"
	PathSectors      = "/sectors"
	PathAlerts       = "/alerts"
	PathReconcile    = "/reconcile"
)

func addMelRoutes(rg *gin.RouterGroup, ruleHandler *handlers.MelRuleHandler, availabilityHandler *handlers.AvailabilityHandler, alertHandler *handlers.MelAlertHandler) {
	rules := rg.Group(PathRules)
	{
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.GET("/:sector_id/:group_key", ruleHandler.GetRule)
		rules.PUT("/:sector_id/:group_key", ruleHandler.UpdateRule)
		rules.DELETE("/:sector_id/:group_key", ruleHandler.DeleteRule)
	}

	availability := rg.Group(PathAvailability)
	{
		availability.GET("/:sector_id/:group_key", availabilityHandler.GetAvailability)
	}

	sectors := rg.Group(PathSectors)
	{
		sectors.GET("/:sector_id/groups", availabilityHandler.ListSectorGroups)
	}

	alerts := rg.Group(PathAlerts)
	{
		alerts.GET("", alertHandler.ListAlerts)
	}

	rg.POST(PathReconcile, alertHandler.Reconcile)
}
