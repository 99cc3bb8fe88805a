package handlers

import (
	"net/http"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	settingsService  portssvc.SettingsSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, settingsService portssvc.SettingsSvc) {
	h := &dashboardHandler{dashboardService: dashboardService, settingsService: settingsService}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/recent", h.getRecentActivity)
		dashboard.GET("/monthly", h.getMonthlyOverview)
		dashboard.GET("/stats", h.getStats)
	}
}

// getSummary godoc
// @Summary Receivable, payable and net position
// @Description Entities whose ledger has unreadable rows are excluded and listed in failedEntities.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "compute dashboard summary")
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary, settings))
}

// getRecentActivity godoc
// @Summary Latest transactions across all ledgers
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum items (defaults to the configured limit)"
// @Success 200 {array} domain.ActivityItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent [get]
func (h *dashboardHandler) getRecentActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.RecentActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	items, err := h.dashboardService.GetRecentActivity(c.Request.Context(), params.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "list recent activity")
		return
	}
	if items == nil {
		items = []domain.ActivityItem{}
	}
	c.JSON(http.StatusOK, items)
}

// getMonthlyOverview godoc
// @Summary Debit and credit totals per month
// @Tags dashboard
// @Produce json
// @Param kind query string false "customer or supplier; both when omitted" Enums(customer, supplier)
// @Success 200 {object} domain.MonthlyOverview
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) getMonthlyOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var kind domain.EntityKind
	if raw := c.Query("kind"); raw != "" {
		parsed, err := domain.ParseEntityKind(raw)
		if err != nil {
			respondServiceError(c, logger, err, "compute monthly overview")
			return
		}
		kind = parsed
	}

	overview, err := h.dashboardService.GetMonthlyOverview(c.Request.Context(), kind)
	if err != nil {
		respondServiceError(c, logger, err, "compute monthly overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// getStats godoc
// @Summary Record counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DataStats
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "count records")
		return
	}
	c.JSON(http.StatusOK, stats)
}
