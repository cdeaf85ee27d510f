package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdvertiserHandler handles HTTP requests for advertisers
type AdvertiserHandler struct {
	service service.AdvertiserServiceInterface
}

// NewAdvertiserHandler creates a new advertiser handler
func NewAdvertiserHandler(service service.AdvertiserServiceInterface) *AdvertiserHandler {
	return &AdvertiserHandler{service: service}
}

// CreateAdvertiser handles POST /api/v1/advertisers
// @Summary Create a new advertiser
// @Description Create an advertiser in the caller's organization
// @Tags advertisers
// @Accept json
// @Produce json
// @Param advertiser body service.CreateAdvertiserRequest true "Advertiser data"
// @Success 201 {object} tenant.Advertiser "Successfully created advertiser"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Advertiser already exists"
// @Security BearerAuth
// @Router /advertisers [post]
func (h *AdvertiserHandler) CreateAdvertiser(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateAdvertiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	advertiser, err := h.service.Create(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to create advertiser")
		return
	}

	c.JSON(http.StatusCreated, advertiser)
}

// GetAdvertiser handles GET /api/v1/advertisers/:id
// @Summary Get advertiser by ID
// @Description Get a specific advertiser by its UUID
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path string true "Advertiser ID (UUID)"
// @Success 200 {object} tenant.Advertiser "Successfully retrieved advertiser"
// @Failure 404 {object} map[string]interface{} "Advertiser not found"
// @Security BearerAuth
// @Router /advertisers/{id} [get]
func (h *AdvertiserHandler) GetAdvertiser(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	advertiser, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get advertiser")
		return
	}

	c.JSON(http.StatusOK, advertiser)
}

// ListAdvertisers handles GET /api/v1/advertisers
// @Summary List advertisers
// @Description Search the organization's advertisers with pagination support
// @Tags advertisers
// @Accept json
// @Produce json
// @Param q query string false "Name search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AdvertiserListResponse "Successfully retrieved advertisers"
// @Security BearerAuth
// @Router /advertisers [get]
func (h *AdvertiserHandler) ListAdvertisers(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	advertisers, err := h.service.Search(c.Request.Context(), tn, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get advertisers")
		return
	}

	c.JSON(http.StatusOK, advertisers)
}

// ListAgencyAdvertisers handles GET /api/v1/agencies/:id/advertisers
// @Summary List an agency's advertisers
// @Description Get the advertisers assigned to an agency
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Success 200 {array} tenant.Advertiser "Successfully retrieved advertisers"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Security BearerAuth
// @Router /agencies/{id}/advertisers [get]
func (h *AdvertiserHandler) ListAgencyAdvertisers(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	agencyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	advertisers, err := h.service.GetByAgency(c.Request.Context(), tn, agencyID)
	if err != nil {
		respondError(c, err, "Failed to get advertisers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"advertisers": advertisers})
}

// UpdateAdvertiser handles PUT /api/v1/advertisers/:id
// @Summary Update advertiser
// @Description Update an existing advertiser by ID
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path string true "Advertiser ID (UUID)"
// @Param advertiser body service.UpdateAdvertiserRequest true "Updated advertiser data"
// @Success 200 {object} tenant.Advertiser "Successfully updated advertiser"
// @Failure 404 {object} map[string]interface{} "Advertiser not found"
// @Security BearerAuth
// @Router /advertisers/{id} [put]
func (h *AdvertiserHandler) UpdateAdvertiser(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAdvertiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	advertiser, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update advertiser")
		return
	}

	c.JSON(http.StatusOK, advertiser)
}

// DeleteAdvertiser handles DELETE /api/v1/advertisers/:id
// @Summary Delete advertiser
// @Description Delete an advertiser by ID
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path string true "Advertiser ID (UUID)"
// @Success 204 "Successfully deleted advertiser"
// @Failure 404 {object} map[string]interface{} "Advertiser not found"
// @Security BearerAuth
// @Router /advertisers/{id} [delete]
func (h *AdvertiserHandler) DeleteAdvertiser(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete advertiser")
		return
	}

	c.Status(http.StatusNoContent)
}
