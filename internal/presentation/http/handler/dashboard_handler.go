package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodbazar/retail-api/internal/application/service"
	"github.com/foodbazar/retail-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and report HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting the dashboard summary
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response.OK(c, "Dashboard stats retrieved successfully", h.dashboardService.Stats())
}

// GetReport handles getting the sales report for a time range
// (?range=7days|30days|90days|all, default all)
func (h *DashboardHandler) GetReport(c *gin.Context) {
	report, err := h.dashboardService.Report(c.Query("range"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", report)
}
