package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for ad inventory orders
type OrderHandler struct {
	service service.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrder handles POST /api/v1/orders
// @Summary Create a new order
// @Description Create a draft order with its items, pricing each item from the effective rate card
// @Tags orders
// @Accept json
// @Produce json
// @Param order body service.CreateOrderRequest true "Order data"
// @Success 201 {object} service.OrderResponse "Successfully created order"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Campaign or episode not found"
// @Failure 422 {object} map[string]interface{} "Insufficient inventory"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.service.Create(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/orders/:id
// @Summary Get order by ID
// @Description Get an order with its items and total
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} service.OrderResponse "Successfully retrieved order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders
// @Summary List orders
// @Description Get the organization's orders, optionally filtered by status
// @Tags orders
// @Accept json
// @Produce json
// @Param status query string false "Status filter (draft, approved, booked, cancelled)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrderListResponse "Successfully retrieved orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	orders, err := h.service.GetAll(c.Request.Context(), tn, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListCampaignOrders handles GET /api/v1/campaigns/:id/orders
// @Summary List a campaign's orders
// @Description Get all orders placed under a campaign
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {array} tenant.Order "Successfully retrieved orders"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/orders [get]
func (h *OrderHandler) ListCampaignOrders(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	campaignID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.service.GetByCampaign(c.Request.Context(), tn, campaignID)
	if err != nil {
		respondError(c, err, "Failed to get orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// AddOrderItem handles POST /api/v1/orders/:id/items
// @Summary Add an order item
// @Description Add an item to a draft order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param item body service.OrderItemRequest true "Item data"
// @Success 200 {object} service.OrderResponse "Order with the new item"
// @Failure 404 {object} map[string]interface{} "Order or episode not found"
// @Failure 422 {object} map[string]interface{} "Order is no longer editable or inventory is insufficient"
// @Security BearerAuth
// @Router /orders/{id}/items [post]
func (h *OrderHandler) AddOrderItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.service.AddItem(c.Request.Context(), tn, orderID, &req)
	if err != nil {
		respondError(c, err, "Failed to add order item")
		return
	}

	c.JSON(http.StatusOK, order)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId
// @Summary Remove an order item
// @Description Remove an item from a draft order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param itemId path string true "Order item ID (UUID)"
// @Success 200 {object} service.OrderResponse "Order without the removed item"
// @Failure 404 {object} map[string]interface{} "Order or item not found"
// @Failure 422 {object} map[string]interface{} "Order is no longer editable"
// @Security BearerAuth
// @Router /orders/{id}/items/{itemId} [delete]
func (h *OrderHandler) RemoveOrderItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	order, err := h.service.RemoveItem(c.Request.Context(), tn, orderID, itemID)
	if err != nil {
		respondError(c, err, "Failed to remove order item")
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status
// @Summary Transition order status
// @Description Move an order along draft, approved, booked, cancelled. Approval re-validates inventory.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} service.OrderResponse "Successfully transitioned order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Failure 422 {object} map[string]interface{} "Invalid transition or insufficient inventory"
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
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

	order, err := h.service.UpdateStatus(c.Request.Context(), tn, id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
// @Summary Delete order
// @Description Delete a draft order and its items
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 204 "Successfully deleted order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Failure 422 {object} map[string]interface{} "Order is not in draft status"
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}

	c.Status(http.StatusNoContent)
}
