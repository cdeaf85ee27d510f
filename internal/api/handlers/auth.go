package handlers

import (
	"net/http"

	"podcastflow-backend/internal/auth"
	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	auth  *auth.Service
	users service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, users service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{auth: authService, users: users}
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token string                `json:"token"`
	User  *service.UserResponse `json:"user"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and issue an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	resp, err := h.users.GetByID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: resp})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Get the profile of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Authenticated user"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := auth.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	resp, err := h.users.GetByID(claims.UserID)
	if err != nil {
		respondError(c, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, resp)
}
