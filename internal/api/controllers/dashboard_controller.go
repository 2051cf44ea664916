package controllers

import (
	"github.com/gin-gonic/gin"

	"sahlatrack/internal/services"
	"sahlatrack/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the tenant dashboard
// @Description Order totals, split by status, quota usage and recent orders
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}
