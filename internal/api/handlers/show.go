package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShowHandler handles HTTP requests for shows
type ShowHandler struct {
	service service.ShowServiceInterface
}

// NewShowHandler creates a new show handler
func NewShowHandler(service service.ShowServiceInterface) *ShowHandler {
	return &ShowHandler{service: service}
}

// CreateShow handles POST /api/v1/shows
// @Summary Create a new show
// @Description Create a show with its per-placement slot capacities
// @Tags shows
// @Accept json
// @Produce json
// @Param show body service.CreateShowRequest true "Show data"
// @Success 201 {object} tenant.Show "Successfully created show"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Show already exists"
// @Security BearerAuth
// @Router /shows [post]
func (h *ShowHandler) CreateShow(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	show, err := h.service.Create(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to create show")
		return
	}

	c.JSON(http.StatusCreated, show)
}

// GetShow handles GET /api/v1/shows/:id
// @Summary Get show by ID
// @Description Get a specific show by its UUID
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Success 200 {object} tenant.Show "Successfully retrieved show"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id} [get]
func (h *ShowHandler) GetShow(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	show, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get show")
		return
	}

	c.JSON(http.StatusOK, show)
}

// ListShows handles GET /api/v1/shows
// @Summary List shows
// @Description Get the organization's shows with pagination support
// @Tags shows
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShowListResponse "Successfully retrieved shows"
// @Security BearerAuth
// @Router /shows [get]
func (h *ShowHandler) ListShows(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	shows, err := h.service.GetAll(c.Request.Context(), tn, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get shows")
		return
	}

	c.JSON(http.StatusOK, shows)
}

// UpdateShow handles PUT /api/v1/shows/:id
// @Summary Update show
// @Description Update an existing show by ID
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param show body service.UpdateShowRequest true "Updated show data"
// @Success 200 {object} tenant.Show "Successfully updated show"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id} [put]
func (h *ShowHandler) UpdateShow(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	show, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update show")
		return
	}

	c.JSON(http.StatusOK, show)
}

// DeleteShow handles DELETE /api/v1/shows/:id
// @Summary Delete show
// @Description Delete a show. Fails while orders reference its episodes.
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Success 204 "Successfully deleted show"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Failure 422 {object} map[string]interface{} "Show has existing orders"
// @Security BearerAuth
// @Router /shows/{id} [delete]
func (h *ShowHandler) DeleteShow(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete show")
		return
	}

	c.Status(http.StatusNoContent)
}
