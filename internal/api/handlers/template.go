package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler handles HTTP requests for email templates
type TemplateHandler struct {
	service service.TemplateServiceInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service service.TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// CreateTemplateOverride handles POST /api/v1/templates
// @Summary Create a template override
// @Description Create an organization override for a system email template
// @Tags templates
// @Accept json
// @Produce json
// @Param template body service.CreateTemplateRequest true "Template data"
// @Success 201 {object} models.EmailTemplate "Successfully created template"
// @Failure 400 {object} map[string]interface{} "Invalid request body or unknown event key"
// @Failure 409 {object} map[string]interface{} "Template already exists for the key"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplateOverride(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}

	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tpl, err := h.service.CreateOverride(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

// ListTemplates handles GET /api/v1/templates
// @Summary List templates
// @Description Get the organization's template overrides
// @Tags templates
// @Accept json
// @Produce json
// @Success 200 {array} models.EmailTemplate "Successfully retrieved templates"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}

	templates, err := h.service.GetByOrganization(orgID)
	if err != nil {
		respondError(c, err, "Failed to get templates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// ResolveTemplate handles GET /api/v1/templates/resolve/:key
// @Summary Resolve a template
// @Description Resolve the template effective for the organization and event key, falling back to the system default
// @Tags templates
// @Accept json
// @Produce json
// @Param key path string true "Event key"
// @Success 200 {object} models.EmailTemplate "Resolved template"
// @Failure 404 {object} map[string]interface{} "No template for the key"
// @Security BearerAuth
// @Router /templates/resolve/{key} [get]
func (h *TemplateHandler) ResolveTemplate(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}

	tpl, err := h.service.Resolve(orgID, c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to resolve template")
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// UpdateTemplate handles PUT /api/v1/templates/:id
// @Summary Update template
// @Description Update an existing template override by ID
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param template body service.UpdateTemplateRequest true "Updated template data"
// @Success 200 {object} models.EmailTemplate "Successfully updated template"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tpl, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate handles DELETE /api/v1/templates/:id
// @Summary Delete template
// @Description Delete an organization's template override. System defaults cannot be deleted.
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 204 "Successfully deleted template"
// @Failure 400 {object} map[string]interface{} "System default templates cannot be deleted"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete template")
		return
	}

	c.Status(http.StatusNoContent)
}
