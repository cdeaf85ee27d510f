package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RevenueSharingHandler handles HTTP requests for revenue sharing agreements
type RevenueSharingHandler struct {
	service service.RevenueSharingServiceInterface
}

// NewRevenueSharingHandler creates a new revenue sharing handler
func NewRevenueSharingHandler(service service.RevenueSharingServiceInterface) *RevenueSharingHandler {
	return &RevenueSharingHandler{service: service}
}

// CreateAgreement handles POST /api/v1/shows/:id/revenue-sharing
// @Summary Create a revenue sharing agreement
// @Description Create a partner revenue share for a show over an effective period
// @Tags revenue-sharing
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param agreement body service.CreateAgreementRequest true "Agreement data"
// @Success 201 {object} tenant.RevenueSharingAgreement "Successfully created agreement"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Failure 422 {object} map[string]interface{} "Agreement periods overlap"
// @Security BearerAuth
// @Router /shows/{id}/revenue-sharing [post]
func (h *RevenueSharingHandler) CreateAgreement(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agreement, err := h.service.Create(c.Request.Context(), tn, showID, &req)
	if err != nil {
		respondError(c, err, "Failed to create agreement")
		return
	}

	c.JSON(http.StatusCreated, agreement)
}

// GetAgreement handles GET /api/v1/revenue-sharing/:id
// @Summary Get agreement by ID
// @Description Get a specific revenue sharing agreement by its UUID
// @Tags revenue-sharing
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID (UUID)"
// @Success 200 {object} tenant.RevenueSharingAgreement "Successfully retrieved agreement"
// @Failure 404 {object} map[string]interface{} "Agreement not found"
// @Security BearerAuth
// @Router /revenue-sharing/{id} [get]
func (h *RevenueSharingHandler) GetAgreement(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	agreement, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get agreement")
		return
	}

	c.JSON(http.StatusOK, agreement)
}

// ListShowAgreements handles GET /api/v1/shows/:id/revenue-sharing
// @Summary List a show's agreements
// @Description Get all revenue sharing agreements defined for a show
// @Tags revenue-sharing
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Success 200 {array} tenant.RevenueSharingAgreement "Successfully retrieved agreements"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id}/revenue-sharing [get]
func (h *RevenueSharingHandler) ListShowAgreements(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	agreements, err := h.service.GetByShow(c.Request.Context(), tn, showID)
	if err != nil {
		respondError(c, err, "Failed to get agreements")
		return
	}

	c.JSON(http.StatusOK, gin.H{"agreements": agreements})
}

// UpdateAgreement handles PUT /api/v1/revenue-sharing/:id
// @Summary Update agreement
// @Description Update an existing revenue sharing agreement by ID
// @Tags revenue-sharing
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID (UUID)"
// @Param agreement body service.UpdateAgreementRequest true "Updated agreement data"
// @Success 200 {object} tenant.RevenueSharingAgreement "Successfully updated agreement"
// @Failure 404 {object} map[string]interface{} "Agreement not found"
// @Failure 422 {object} map[string]interface{} "Agreement periods overlap"
// @Security BearerAuth
// @Router /revenue-sharing/{id} [put]
func (h *RevenueSharingHandler) UpdateAgreement(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agreement, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update agreement")
		return
	}

	c.JSON(http.StatusOK, agreement)
}

// DeleteAgreement handles DELETE /api/v1/revenue-sharing/:id
// @Summary Delete agreement
// @Description Delete a revenue sharing agreement by ID
// @Tags revenue-sharing
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID (UUID)"
// @Success 204 "Successfully deleted agreement"
// @Failure 404 {object} map[string]interface{} "Agreement not found"
// @Security BearerAuth
// @Router /revenue-sharing/{id} [delete]
func (h *RevenueSharingHandler) DeleteAgreement(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete agreement")
		return
	}

	c.Status(http.StatusNoContent)
}
