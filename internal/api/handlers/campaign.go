package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles HTTP requests for campaigns
type CampaignHandler struct {
	service service.CampaignServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(service service.CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// CreateCampaign handles POST /api/v1/campaigns
// @Summary Create a new campaign
// @Description Create a campaign in draft status for an advertiser
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body service.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} tenant.Campaign "Successfully created campaign"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Campaign name already used for the advertiser"
// @Failure 422 {object} map[string]interface{} "Invalid flight dates or probability"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to create campaign")
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /api/v1/campaigns/:id
// @Summary Get campaign by ID
// @Description Get a specific campaign by its UUID
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} tenant.Campaign "Successfully retrieved campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ListCampaigns handles GET /api/v1/campaigns
// @Summary List campaigns
// @Description Get the organization's campaigns, optionally filtered by status
// @Tags campaigns
// @Accept json
// @Produce json
// @Param status query string false "Status filter (draft, active, paused, completed)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CampaignListResponse "Successfully retrieved campaigns"
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	campaigns, err := h.service.GetAll(c.Request.Context(), tn, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get campaigns")
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// ListAdvertiserCampaigns handles GET /api/v1/advertisers/:id/campaigns
// @Summary List an advertiser's campaigns
// @Description Get all campaigns belonging to an advertiser
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Advertiser ID (UUID)"
// @Success 200 {array} tenant.Campaign "Successfully retrieved campaigns"
// @Failure 404 {object} map[string]interface{} "Advertiser not found"
// @Security BearerAuth
// @Router /advertisers/{id}/campaigns [get]
func (h *CampaignHandler) ListAdvertiserCampaigns(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	advertiserID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	campaigns, err := h.service.GetByAdvertiser(c.Request.Context(), tn, advertiserID)
	if err != nil {
		respondError(c, err, "Failed to get campaigns")
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// UpdateCampaign handles PUT /api/v1/campaigns/:id
// @Summary Update campaign
// @Description Update an existing campaign's details
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param campaign body service.UpdateCampaignRequest true "Updated campaign data"
// @Success 200 {object} tenant.Campaign "Successfully updated campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	campaign, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaignStatus handles PATCH /api/v1/campaigns/:id/status
// @Summary Transition campaign status
// @Description Move a campaign along draft, active, paused, completed
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} tenant.Campaign "Successfully transitioned campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Failure 422 {object} map[string]interface{} "Invalid status transition"
// @Security BearerAuth
// @Router /campaigns/{id}/status [patch]
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	campaign, err := h.service.UpdateStatus(c.Request.Context(), tn, id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update campaign status")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/v1/campaigns/:id
// @Summary Delete campaign
// @Description Delete a draft campaign. Campaigns past draft cannot be deleted.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 204 "Successfully deleted campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Failure 422 {object} map[string]interface{} "Campaign is not in draft status"
// @Security BearerAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete campaign")
		return
	}

	c.Status(http.StatusNoContent)
}
