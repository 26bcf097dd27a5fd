package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/trovehq/trove-backend/internal/core/ports/services"
	"github.com/trovehq/trove-backend/internal/dto"
	"github.com/trovehq/trove-backend/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getBalanceSummary)
		reports.GET("/daily", h.getActivityReport)
	}
}

// getBalanceSummary godoc
// @Summary Get the balance summary
// @Description Returns the total balance across all accounts plus per-type subtotals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getBalanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetBalanceSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build balance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(summary))
}

// getActivityReport godoc
// @Summary Get the daily activity report
// @Description Returns transactions in the optional date window grouped by calendar day, newest day first
// @Tags reports
// @Produce  json
// @Param   from query string false "Inclusive lower datetime bound (RFC3339)"
// @Param   to query string false "Inclusive upper datetime bound (RFC3339)"
// @Success 200 {object} dto.ActivityReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/daily [get]
func (h *reportingHandler) getActivityReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ActivityReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ActivityReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	groups, err := h.reportingService.GetActivityReport(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Error("Failed to build activity report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityReportResponse(groups))
}
