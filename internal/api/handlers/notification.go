package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notification deliveries
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListDeliveries handles GET /api/v1/notifications
// @Summary List notification deliveries
// @Description Get the organization's notification delivery records with pagination support
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved deliveries"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListDeliveries(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	deliveries, total, err := h.service.GetDeliveries(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get deliveries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveries": deliveries,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}
