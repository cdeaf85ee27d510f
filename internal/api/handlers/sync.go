package handlers

import (
	"context"
	"net/http"

	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SyncHandler handles HTTP requests for YouTube sync jobs
type SyncHandler struct {
	service service.YouTubeSyncServiceInterface
	log     *logger.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service service.YouTubeSyncServiceInterface, log *logger.Logger) *SyncHandler {
	return &SyncHandler{service: service, log: log.WithField("component", "SyncHandler")}
}

// StartSync handles POST /api/v1/sync/youtube
// @Summary Start a YouTube sync
// @Description Start an asynchronous sync of YouTube statistics for the organization's episodes
// @Tags sync
// @Accept json
// @Produce json
// @Success 202 {object} models.SyncJob "Sync job accepted"
// @Failure 409 {object} map[string]interface{} "A sync job is already running"
// @Failure 422 {object} map[string]interface{} "YouTube API key is not configured"
// @Security BearerAuth
// @Router /sync/youtube [post]
func (h *SyncHandler) StartSync(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	job, err := h.service.Start(c.Request.Context(), tn)
	if err != nil {
		respondError(c, err, "Failed to start sync")
		return
	}

	go h.runJob(tn, job.ID)

	c.JSON(http.StatusAccepted, job)
}

// runJob executes a sync job detached from the request context
func (h *SyncHandler) runJob(tn tenant.Tenant, jobID uuid.UUID) {
	if err := h.service.Run(context.Background(), tn, jobID); err != nil {
		h.log.WithError(err).WithField("job_id", jobID).Error("sync job failed")
	}
}

// GetSyncJob handles GET /api/v1/sync/jobs/:id
// @Summary Get sync job by ID
// @Description Get a specific sync job's state and counters
// @Tags sync
// @Accept json
// @Produce json
// @Param id path string true "Sync job ID (UUID)"
// @Success 200 {object} models.SyncJob "Successfully retrieved job"
// @Failure 404 {object} map[string]interface{} "Sync job not found"
// @Security BearerAuth
// @Router /sync/jobs/{id} [get]
func (h *SyncHandler) GetSyncJob(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.service.GetJob(id)
	if err != nil {
		respondError(c, err, "Failed to get sync job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListSyncJobs handles GET /api/v1/sync/jobs
// @Summary List sync jobs
// @Description Get the organization's sync jobs with pagination support
// @Tags sync
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved jobs"
// @Security BearerAuth
// @Router /sync/jobs [get]
func (h *SyncHandler) ListSyncJobs(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	jobs, total, err := h.service.GetJobs(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get sync jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
