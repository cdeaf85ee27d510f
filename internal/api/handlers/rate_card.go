package handlers

import (
	"net/http"
	"time"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RateCardHandler handles HTTP requests for rate cards
type RateCardHandler struct {
	service service.RateCardServiceInterface
}

// NewRateCardHandler creates a new rate card handler
func NewRateCardHandler(service service.RateCardServiceInterface) *RateCardHandler {
	return &RateCardHandler{service: service}
}

// CreateRateCard handles POST /api/v1/shows/:id/rate-cards
// @Summary Create a new rate card
// @Description Create a rate card for a show's placement over an effective period
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param rate_card body service.CreateRateCardRequest true "Rate card data"
// @Success 201 {object} tenant.RateCard "Successfully created rate card"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Failure 422 {object} map[string]interface{} "Rate periods overlap"
// @Security BearerAuth
// @Router /shows/{id}/rate-cards [post]
func (h *RateCardHandler) CreateRateCard(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	card, err := h.service.Create(c.Request.Context(), tn, showID, &req)
	if err != nil {
		respondError(c, err, "Failed to create rate card")
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetRateCard handles GET /api/v1/rate-cards/:id
// @Summary Get rate card by ID
// @Description Get a specific rate card by its UUID
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID (UUID)"
// @Success 200 {object} tenant.RateCard "Successfully retrieved rate card"
// @Failure 404 {object} map[string]interface{} "Rate card not found"
// @Security BearerAuth
// @Router /rate-cards/{id} [get]
func (h *RateCardHandler) GetRateCard(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get rate card")
		return
	}

	c.JSON(http.StatusOK, card)
}

// ListShowRateCards handles GET /api/v1/shows/:id/rate-cards
// @Summary List a show's rate cards
// @Description Get all rate cards defined for a show
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Success 200 {array} tenant.RateCard "Successfully retrieved rate cards"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id}/rate-cards [get]
func (h *RateCardHandler) ListShowRateCards(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cards, err := h.service.GetByShow(c.Request.Context(), tn, showID)
	if err != nil {
		respondError(c, err, "Failed to get rate cards")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rate_cards": cards})
}

// GetEffectiveRate handles GET /api/v1/shows/:id/effective-rate
// @Summary Get the effective rate
// @Description Get the rate card effective for a show's placement on a date
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param placement query string true "Placement (preroll, midroll, postroll)"
// @Param on query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} tenant.RateCard "Effective rate card"
// @Failure 400 {object} map[string]interface{} "Invalid placement or date"
// @Failure 404 {object} map[string]interface{} "No rate card effective on the date"
// @Security BearerAuth
// @Router /shows/{id}/effective-rate [get]
func (h *RateCardHandler) GetEffectiveRate(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	on := time.Now()
	if v := c.Query("on"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid on date: expected YYYY-MM-DD"})
			return
		}
		on = parsed
	}

	card, err := h.service.EffectiveRate(c.Request.Context(), tn, showID, c.Query("placement"), on)
	if err != nil {
		respondError(c, err, "Failed to get effective rate")
		return
	}

	c.JSON(http.StatusOK, card)
}

// UpdateRateCard handles PUT /api/v1/rate-cards/:id
// @Summary Update rate card
// @Description Update an existing rate card by ID
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID (UUID)"
// @Param rate_card body service.UpdateRateCardRequest true "Updated rate card data"
// @Success 200 {object} tenant.RateCard "Successfully updated rate card"
// @Failure 404 {object} map[string]interface{} "Rate card not found"
// @Failure 422 {object} map[string]interface{} "Rate periods overlap"
// @Security BearerAuth
// @Router /rate-cards/{id} [put]
func (h *RateCardHandler) UpdateRateCard(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	card, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update rate card")
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteRateCard handles DELETE /api/v1/rate-cards/:id
// @Summary Delete rate card
// @Description Delete a rate card by ID
// @Tags rate-cards
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID (UUID)"
// @Success 204 "Successfully deleted rate card"
// @Failure 404 {object} map[string]interface{} "Rate card not found"
// @Security BearerAuth
// @Router /rate-cards/{id} [delete]
func (h *RateCardHandler) DeleteRateCard(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete rate card")
		return
	}

	c.Status(http.StatusNoContent)
}
