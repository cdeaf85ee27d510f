package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EpisodeService handles business logic for show episodes
type EpisodeService struct {
	repo      repository.EpisodeRepositoryInterface
	showRepo  repository.ShowRepositoryInterface
	validator *validator.Validate
}

// NewEpisodeService creates a new episode service
func NewEpisodeService(repo repository.EpisodeRepositoryInterface, showRepo repository.ShowRepositoryInterface, validator *validator.Validate) *EpisodeService {
	return &EpisodeService{repo: repo, showRepo: showRepo, validator: validator}
}

// CreateEpisodeRequest represents the request to create an episode
type CreateEpisodeRequest struct {
	Number         int        `json:"number" validate:"required,min=1"`
	Title          string     `json:"title" validate:"required,min=1,max=300"`
	AirDate        *time.Time `json:"air_date,omitempty"`
	YouTubeVideoID string     `json:"youtube_video_id" validate:"omitempty,max=20"`
}

// UpdateEpisodeRequest represents the request to update an episode
type UpdateEpisodeRequest struct {
	Number         int        `json:"number" validate:"required,min=1"`
	Title          string     `json:"title" validate:"required,min=1,max=300"`
	AirDate        *time.Time `json:"air_date,omitempty"`
	YouTubeVideoID string     `json:"youtube_video_id" validate:"omitempty,max=20"`
}

// EpisodeListResponse represents a paginated list of episodes
type EpisodeListResponse struct {
	Episodes []tenant.Episode `json:"episodes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new episode under a show. Episode numbers are unique
// within a show.
func (s *EpisodeService) Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateEpisodeRequest) (*tenant.Episode, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.showRepo.GetByID(ctx, tn.Schema, showID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to check show: %w", err)
	}

	existing, err := s.repo.GetByShowAndNumber(ctx, tn.Schema, showID, req.Number)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing episode: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEpisodeExists
	}

	episode := &tenant.Episode{
		ShowID:         showID,
		Number:         req.Number,
		Title:          req.Title,
		AirDate:        req.AirDate,
		YouTubeVideoID: req.YouTubeVideoID,
	}
	created, err := s.repo.Create(ctx, tn.Schema, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}
	return created, nil
}

// GetByID retrieves an episode by ID
func (s *EpisodeService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Episode, error) {
	episode, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}
	return episode, nil
}

// GetByShow retrieves a show's episodes with pagination
func (s *EpisodeService) GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, page, pageSize int) (*EpisodeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.showRepo.GetByID(ctx, tn.Schema, showID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to check show: %w", err)
	}

	episodes, total, err := s.repo.GetByShowID(ctx, tn.Schema, showID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}
	return &EpisodeListResponse{Episodes: episodes, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates an episode
func (s *EpisodeService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateEpisodeRequest) (*tenant.Episode, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	episode, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	if req.Number != episode.Number {
		existing, err := s.repo.GetByShowAndNumber(ctx, tn.Schema, episode.ShowID, req.Number)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to check existing episode: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrEpisodeExists
		}
	}

	episode.Number = req.Number
	episode.Title = req.Title
	episode.AirDate = req.AirDate
	episode.YouTubeVideoID = req.YouTubeVideoID
	episode.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to update episode: %w", err)
	}
	return updated, nil
}

// Delete deletes an episode
func (s *EpisodeService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEpisodeNotFound
		}
		return fmt.Errorf("failed to delete episode: %w", err)
	}
	return nil
}
