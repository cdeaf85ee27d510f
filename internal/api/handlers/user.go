package handlers

import (
	"net/http"

	"podcastflow-backend/internal/auth"
	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// callerOrgID returns the organization scope for the request. Master accounts
// may target another organization via the organization_id query parameter.
func callerOrgID(c *gin.Context) (uuid.UUID, bool) {
	claims := auth.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return uuid.Nil, false
	}
	if claims.Role == string(models.UserRoleMaster) {
		if v := c.Query("organization_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id: invalid UUID format"})
				return uuid.Nil, false
			}
			return id, true
		}
	}
	return claims.OrganizationID, true
}

// InviteUser handles POST /api/v1/users
// @Summary Invite a user
// @Description Create a user in the caller's organization and send the invitation email
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.InviteUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully invited user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) InviteUser(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}

	var req service.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Invite(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to invite user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Description Get a specific user by its UUID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/v1/users
// @Summary List organization users
// @Description Get the caller's organization users with pagination support
// @Tags users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	orgID, ok := callerOrgID(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	users, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /api/v1/users/:id
// @Summary Update user
// @Description Update an existing user's profile, role, or active flag
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Updated user data"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete user
// @Description Delete a user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 204 "Successfully deleted user"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
