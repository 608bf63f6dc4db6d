package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns quote counts and revenue figures
// @Summary Dashboard Summary
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param months query int false "Trailing months for the booking chart"
// @Success 200 {object} response.APIResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	months := 6
	if m := c.Query("months"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 && parsed <= 24 {
			months = parsed
		}
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard retrieved successfully", summary)
}
