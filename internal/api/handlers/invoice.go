package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for tenant invoices
type InvoiceHandler struct {
	service service.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service service.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// GenerateInvoice handles POST /api/v1/invoices
// @Summary Generate an invoice
// @Description Generate a draft invoice covering a campaign's booked order items
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body service.GenerateInvoiceRequest true "Invoice parameters"
// @Success 201 {object} tenant.Invoice "Successfully generated invoice"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Failure 422 {object} map[string]interface{} "Campaign has no booked items"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.service.Generate(c.Request.Context(), tn, &req)
	if err != nil {
		respondError(c, err, "Failed to generate invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Description Get a specific invoice by its UUID
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} tenant.Invoice "Successfully retrieved invoice"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListInvoices handles GET /api/v1/invoices
// @Summary List invoices
// @Description Get the organization's invoices, optionally filtered by status
// @Tags invoices
// @Accept json
// @Produce json
// @Param status query string false "Status filter (draft, sent, paid, void)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.InvoiceListResponse "Successfully retrieved invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	invoices, err := h.service.GetAll(c.Request.Context(), tn, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// ListCampaignInvoices handles GET /api/v1/campaigns/:id/invoices
// @Summary List a campaign's invoices
// @Description Get all invoices generated for a campaign
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {array} tenant.Invoice "Successfully retrieved invoices"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/invoices [get]
func (h *InvoiceHandler) ListCampaignInvoices(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	campaignID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoices, err := h.service.GetByCampaign(c.Request.Context(), tn, campaignID)
	if err != nil {
		respondError(c, err, "Failed to get invoices")
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// UpdateInvoiceStatus handles PATCH /api/v1/invoices/:id/status
// @Summary Transition invoice status
// @Description Move an invoice along draft, sent, paid, void
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} tenant.Invoice "Successfully transitioned invoice"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Failure 422 {object} map[string]interface{} "Invalid status transition"
// @Security BearerAuth
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
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

	invoice, err := h.service.UpdateStatus(c.Request.Context(), tn, id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update invoice status")
		return
	}

	c.JSON(http.StatusOK, invoice)
}
