package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AgencyHandler handles HTTP requests for agencies
type AgencyHandler struct {
	service service.AgencyServiceInterface
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(service service.AgencyServiceInterface) *AgencyHandler {
	return &AgencyHandler{service: service}
}

// CreateAgency handles POST /api/v1/agencies
// @Summary Create a new agency
// @Description Create an agency in the caller's organization
// @Tags agencies
// @Accept json
// @Produce json
// @Param agency body service.CreateAgencyRequest true "Agency data"
// @Success 201 {object} tenant.Agency "Successfully created agency"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Agency already exists"
// @Security BearerAuth
// @Router /agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agency, err := h.service.Create(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to create agency")
		return
	}

	c.JSON(http.StatusCreated, agency)
}

// GetAgency handles GET /api/v1/agencies/:id
// @Summary Get agency by ID
// @Description Get a specific agency by its UUID
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Success 200 {object} tenant.Agency "Successfully retrieved agency"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Security BearerAuth
// @Router /agencies/{id} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	agency, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get agency")
		return
	}

	c.JSON(http.StatusOK, agency)
}

// ListAgencies handles GET /api/v1/agencies
// @Summary List agencies
// @Description Search the organization's agencies with pagination support
// @Tags agencies
// @Accept json
// @Produce json
// @Param q query string false "Name search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AgencyListResponse "Successfully retrieved agencies"
// @Security BearerAuth
// @Router /agencies [get]
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	agencies, err := h.service.Search(c.Request.Context(), tn, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get agencies")
		return
	}

	c.JSON(http.StatusOK, agencies)
}

// UpdateAgency handles PUT /api/v1/agencies/:id
// @Summary Update agency
// @Description Update an existing agency by ID
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Param agency body service.UpdateAgencyRequest true "Updated agency data"
// @Success 200 {object} tenant.Agency "Successfully updated agency"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Security BearerAuth
// @Router /agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agency, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update agency")
		return
	}

	c.JSON(http.StatusOK, agency)
}

// DeleteAgency handles DELETE /api/v1/agencies/:id
// @Summary Delete agency
// @Description Delete an agency. Fails while advertisers are still assigned to it.
// @Tags agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID (UUID)"
// @Success 204 "Successfully deleted agency"
// @Failure 404 {object} map[string]interface{} "Agency not found"
// @Failure 422 {object} map[string]interface{} "Agency has advertisers assigned"
// @Security BearerAuth
// @Router /agencies/{id} [delete]
func (h *AgencyHandler) DeleteAgency(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete agency")
		return
	}

	c.Status(http.StatusNoContent)
}
