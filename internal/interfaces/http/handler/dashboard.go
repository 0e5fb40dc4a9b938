package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/chemstock/backend/internal/application/report"
)

// DashboardHandler handles the monthly dashboard endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SummaryRequest represents the dashboard period query
type SummaryRequest struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
}

// Summary returns the month's spend, payroll and sales figures plus the
// all-time mass balance
func (h *DashboardHandler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.dashboardService.Summarize(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
