package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for ad inventory availability
type InventoryHandler struct {
	service service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// GetAvailability handles GET /api/v1/shows/:id/availability
// @Summary Get slot availability
// @Description Get per-episode remaining slots for a show's placement across a date range
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param placement query string true "Placement (preroll, midroll, postroll)"
// @Param from query string false "Range start (YYYY-MM-DD), defaults to one year ago"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {array} service.EpisodeAvailability "Per-episode availability"
// @Failure 400 {object} map[string]interface{} "Invalid placement or date"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id}/availability [get]
func (h *InventoryHandler) GetAvailability(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	availability, err := h.service.Availability(c.Request.Context(), tn, showID, c.Query("placement"), from, to)
	if err != nil {
		respondError(c, err, "Failed to get availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": availability})
}
