package handlers

import (
	"net/http"

	"podcastflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EpisodeHandler handles HTTP requests for episodes
type EpisodeHandler struct {
	service service.EpisodeServiceInterface
}

// NewEpisodeHandler creates a new episode handler
func NewEpisodeHandler(service service.EpisodeServiceInterface) *EpisodeHandler {
	return &EpisodeHandler{service: service}
}

// CreateEpisode handles POST /api/v1/shows/:id/episodes
// @Summary Create a new episode
// @Description Create an episode under a show
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param episode body service.CreateEpisodeRequest true "Episode data"
// @Success 201 {object} tenant.Episode "Successfully created episode"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Failure 409 {object} map[string]interface{} "Episode number already exists in the show"
// @Security BearerAuth
// @Router /shows/{id}/episodes [post]
func (h *EpisodeHandler) CreateEpisode(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	episode, err := h.service.Create(c.Request.Context(), tn, showID, &req)
	if err != nil {
		respondError(c, err, "Failed to create episode")
		return
	}

	c.JSON(http.StatusCreated, episode)
}

// GetEpisode handles GET /api/v1/episodes/:id
// @Summary Get episode by ID
// @Description Get a specific episode by its UUID
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID (UUID)"
// @Success 200 {object} tenant.Episode "Successfully retrieved episode"
// @Failure 404 {object} map[string]interface{} "Episode not found"
// @Security BearerAuth
// @Router /episodes/{id} [get]
func (h *EpisodeHandler) GetEpisode(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	episode, err := h.service.GetByID(c.Request.Context(), tn, id)
	if err != nil {
		respondError(c, err, "Failed to get episode")
		return
	}

	c.JSON(http.StatusOK, episode)
}

// ListShowEpisodes handles GET /api/v1/shows/:id/episodes
// @Summary List a show's episodes
// @Description Get a show's episodes with pagination support
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Show ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EpisodeListResponse "Successfully retrieved episodes"
// @Failure 404 {object} map[string]interface{} "Show not found"
// @Security BearerAuth
// @Router /shows/{id}/episodes [get]
func (h *EpisodeHandler) ListShowEpisodes(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	showID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	episodes, err := h.service.GetByShow(c.Request.Context(), tn, showID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get episodes")
		return
	}

	c.JSON(http.StatusOK, episodes)
}

// UpdateEpisode handles PUT /api/v1/episodes/:id
// @Summary Update episode
// @Description Update an existing episode by ID
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID (UUID)"
// @Param episode body service.UpdateEpisodeRequest true "Updated episode data"
// @Success 200 {object} tenant.Episode "Successfully updated episode"
// @Failure 404 {object} map[string]interface{} "Episode not found"
// @Security BearerAuth
// @Router /episodes/{id} [put]
func (h *EpisodeHandler) UpdateEpisode(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	episode, err := h.service.Update(c.Request.Context(), tn, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update episode")
		return
	}

	c.JSON(http.StatusOK, episode)
}

// DeleteEpisode handles DELETE /api/v1/episodes/:id
// @Summary Delete episode
// @Description Delete an episode by ID
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID (UUID)"
// @Success 204 "Successfully deleted episode"
// @Failure 404 {object} map[string]interface{} "Episode not found"
// @Security BearerAuth
// @Router /episodes/{id} [delete]
func (h *EpisodeHandler) DeleteEpisode(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tn, id); err != nil {
		respondError(c, err, "Failed to delete episode")
		return
	}

	c.Status(http.StatusNoContent)
}
