package handlers

import (
	"fmt"
	"net/http"
	"time"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for analytics and reporting
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetDashboard handles GET /api/v1/analytics/dashboard
// @Summary Get the analytics dashboard
// @Description Get revenue by month, pipeline, top advertisers, and campaign status counts
// @Tags analytics
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD), defaults to one year ago"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.DashboardResponse "Dashboard data"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), tn, from, to)
	if err != nil {
		respondError(c, err, "Failed to get dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// RecordMetric handles PUT /api/v1/campaigns/:id/metrics
// @Summary Record daily campaign metrics
// @Description Upsert a campaign's impressions, clicks, and spend for a date
// @Tags analytics
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param metric body service.RecordMetricRequest true "Metric data"
// @Success 200 {object} tenant.CampaignDailyMetric "Recorded metric"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/metrics [put]
func (h *AnalyticsHandler) RecordMetric(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	campaignID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	metric, err := h.service.RecordMetric(c.Request.Context(), tn, campaignID, &req)
	if err != nil {
		respondError(c, err, "Failed to record metric")
		return
	}

	c.JSON(http.StatusOK, metric)
}

// GetCampaignPerformance handles GET /api/v1/campaigns/:id/performance
// @Summary Get campaign performance
// @Description Get a campaign's daily metrics across a date range
// @Tags analytics
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param from query string false "Range start (YYYY-MM-DD), defaults to one year ago"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {array} tenant.CampaignDailyMetric "Daily metrics"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/performance [get]
func (h *AnalyticsHandler) GetCampaignPerformance(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	campaignID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	metrics, err := h.service.CampaignPerformance(c.Request.Context(), tn, campaignID, from, to)
	if err != nil {
		respondError(c, err, "Failed to get campaign performance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// ExportCampaignPerformance handles GET /api/v1/campaigns/:id/performance/export
// @Summary Export campaign performance as CSV
// @Description Download a campaign's daily metrics across a date range as a CSV file
// @Tags analytics
// @Accept json
// @Produce text/csv
// @Param id path string true "Campaign ID (UUID)"
// @Param from query string false "Range start (YYYY-MM-DD), defaults to one year ago"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string "CSV export"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/performance/export [get]
func (h *AnalyticsHandler) ExportCampaignPerformance(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	campaignID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	filename := fmt.Sprintf("campaign-%s-performance-%s.csv", campaignID, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportCampaignPerformanceCSV(c.Request.Context(), tn, campaignID, from, to, c.Writer); err != nil {
		respondError(c, err, "Failed to export campaign performance")
		return
	}
}
