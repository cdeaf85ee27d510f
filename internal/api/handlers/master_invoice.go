package handlers

import (
	"net/http"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MasterInvoiceHandler handles HTTP requests for platform billing
type MasterInvoiceHandler struct {
	service service.MasterInvoiceServiceInterface
}

// NewMasterInvoiceHandler creates a new master invoice handler
func NewMasterInvoiceHandler(service service.MasterInvoiceServiceInterface) *MasterInvoiceHandler {
	return &MasterInvoiceHandler{service: service}
}

// GenerateMasterInvoice handles POST /api/v1/master-invoices
// @Summary Generate a platform invoice
// @Description Generate an organization's subscription invoice for a billing month
// @Tags master-invoices
// @Accept json
// @Produce json
// @Param invoice body service.GenerateMasterInvoiceRequest true "Billing parameters"
// @Success 201 {object} models.MasterInvoice "Successfully generated invoice"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Invoice already exists for the period"
// @Security BearerAuth
// @Router /master-invoices [post]
func (h *MasterInvoiceHandler) GenerateMasterInvoice(c *gin.Context) {
	var req service.GenerateMasterInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.service.Generate(&req)
	if err != nil {
		respondError(c, err, "Failed to generate master invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetMasterInvoice handles GET /api/v1/master-invoices/:id
// @Summary Get platform invoice by ID
// @Description Get a specific platform invoice by its UUID
// @Tags master-invoices
// @Accept json
// @Produce json
// @Param id path string true "Master invoice ID (UUID)"
// @Success 200 {object} models.MasterInvoice "Successfully retrieved invoice"
// @Failure 404 {object} map[string]interface{} "Master invoice not found"
// @Security BearerAuth
// @Router /master-invoices/{id} [get]
func (h *MasterInvoiceHandler) GetMasterInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get master invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListOrganizationMasterInvoices handles GET /api/v1/organizations/:id/master-invoices
// @Summary List an organization's platform invoices
// @Description Get the platform invoices billed to an organization
// @Tags master-invoices
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MasterInvoiceListResponse "Successfully retrieved invoices"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/master-invoices [get]
func (h *MasterInvoiceHandler) ListOrganizationMasterInvoices(c *gin.Context) {
	orgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	invoices, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get master invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// UpdateMasterInvoiceStatus handles PATCH /api/v1/master-invoices/:id/status
// @Summary Transition platform invoice status
// @Description Move a platform invoice along draft, sent, paid, void
// @Tags master-invoices
// @Accept json
// @Produce json
// @Param id path string true "Master invoice ID (UUID)"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} models.MasterInvoice "Successfully transitioned invoice"
// @Failure 404 {object} map[string]interface{} "Master invoice not found"
// @Failure 422 {object} map[string]interface{} "Invalid status transition"
// @Security BearerAuth
// @Router /master-invoices/{id}/status [patch]
func (h *MasterInvoiceHandler) UpdateMasterInvoiceStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.service.UpdateStatus(id, models.MasterInvoiceStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update master invoice status")
		return
	}

	c.JSON(http.StatusOK, invoice)
}
