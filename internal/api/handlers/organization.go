package handlers

import (
	"net/http"
	"strconv"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization and provision its tenant schema
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetOrganizationBySlug handles GET /api/v1/organizations/by-slug/:slug
// @Summary Get organization by slug
// @Description Get a specific organization by its slug
// @Tags organizations
// @Accept json
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/by-slug/{slug} [get]
func (h *OrganizationHandler) GetOrganizationBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization slug is required"})
		return
	}

	org, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List all organizations
// @Description Get all organizations with pagination support
// @Tags organizations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, pageSize := pagination(c)

	orgs, err := h.service.GetAll(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Description Update an existing organization by ID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Description Delete an organization. Pass drop_schema=true to also drop its tenant schema.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param drop_schema query bool false "Drop the tenant schema and all its data" default(false)
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	dropSchema, _ := strconv.ParseBool(c.DefaultQuery("drop_schema", "false"))

	if err := h.service.Delete(c.Request.Context(), id, dropSchema); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}
