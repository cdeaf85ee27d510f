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

// ShowService handles business logic for podcast shows
type ShowService struct {
	repo      repository.ShowRepositoryInterface
	validator *validator.Validate
}

// NewShowService creates a new show service
func NewShowService(repo repository.ShowRepositoryInterface, validator *validator.Validate) *ShowService {
	return &ShowService{repo: repo, validator: validator}
}

// CreateShowRequest represents the request to create a show
type CreateShowRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	ReleaseCadence string `json:"release_cadence" validate:"omitempty,oneof=daily weekly biweekly monthly"`
	PrerollSlots   int    `json:"preroll_slots" validate:"min=0,max=10"`
	MidrollSlots   int    `json:"midroll_slots" validate:"min=0,max=10"`
	PostrollSlots  int    `json:"postroll_slots" validate:"min=0,max=10"`
}

// UpdateShowRequest represents the request to update a show
type UpdateShowRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	ReleaseCadence string `json:"release_cadence" validate:"omitempty,oneof=daily weekly biweekly monthly"`
	PrerollSlots   int    `json:"preroll_slots" validate:"min=0,max=10"`
	MidrollSlots   int    `json:"midroll_slots" validate:"min=0,max=10"`
	PostrollSlots  int    `json:"postroll_slots" validate:"min=0,max=10"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// ShowListResponse represents a paginated list of shows
type ShowListResponse struct {
	Shows    []tenant.Show `json:"shows"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a new show
func (s *ShowService) Create(ctx context.Context, tn tenant.Tenant, req *CreateShowRequest) (*tenant.Show, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(ctx, tn.Schema, req.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing show: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrShowExists
	}

	show := &tenant.Show{
		Name:           req.Name,
		Description:    req.Description,
		ReleaseCadence: req.ReleaseCadence,
		PrerollSlots:   req.PrerollSlots,
		MidrollSlots:   req.MidrollSlots,
		PostrollSlots:  req.PostrollSlots,
		IsActive:       true,
	}
	created, err := s.repo.Create(ctx, tn.Schema, show)
	if err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}
	return created, nil
}

// GetByID retrieves a show by ID
func (s *ShowService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Show, error) {
	show, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}
	return show, nil
}

// GetAll retrieves shows with pagination
func (s *ShowService) GetAll(ctx context.Context, tn tenant.Tenant, page, pageSize int) (*ShowListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	shows, total, err := s.repo.GetAll(ctx, tn.Schema, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get shows: %w", err)
	}
	return &ShowListResponse{Shows: shows, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a show. Slot counts can shrink below what existing orders
// hold; availability math then reports the placement as oversold rather than
// invalidating the orders.
func (s *ShowService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateShowRequest) (*tenant.Show, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	show, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	show.Name = req.Name
	show.Description = req.Description
	show.ReleaseCadence = req.ReleaseCadence
	show.PrerollSlots = req.PrerollSlots
	show.MidrollSlots = req.MidrollSlots
	show.PostrollSlots = req.PostrollSlots
	if req.IsActive != nil {
		show.IsActive = *req.IsActive
	}
	show.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, show)
	if err != nil {
		return nil, fmt.Errorf("failed to update show: %w", err)
	}
	return updated, nil
}

// Delete deletes a show. A show referenced by order items cannot be deleted.
func (s *ShowService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	_, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrShowNotFound
		}
		return fmt.Errorf("failed to get show: %w", err)
	}

	orders, err := s.repo.CountOrders(ctx, tn.Schema, id)
	if err != nil {
		return fmt.Errorf("failed to count show orders: %w", err)
	}
	if orders > 0 {
		return apperrors.ErrShowHasOrders
	}

	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrShowNotFound
		}
		return fmt.Errorf("failed to delete show: %w", err)
	}
	return nil
}
