package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
)

// DashboardController handles dashboard rollup endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// AdminStats handles GET /dashboard/admin/stats
func (ctrl *DashboardController) AdminStats(c *gin.Context) {
	stats, err := ctrl.dashboardService.GetAdminStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, stats)
}

// VolunteerStats handles GET /dashboard/volunteer/stats
func (ctrl *DashboardController) VolunteerStats(c *gin.Context) {
	stats, err := ctrl.dashboardService.GetVolunteerStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, stats)
}
