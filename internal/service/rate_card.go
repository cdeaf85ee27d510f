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

// RateCardService handles business logic for rate cards
type RateCardService struct {
	repo      repository.RateCardRepositoryInterface
	showRepo  repository.ShowRepositoryInterface
	validator *validator.Validate
}

// NewRateCardService creates a new rate card service
func NewRateCardService(repo repository.RateCardRepositoryInterface, showRepo repository.ShowRepositoryInterface, validator *validator.Validate) *RateCardService {
	return &RateCardService{repo: repo, showRepo: showRepo, validator: validator}
}

// CreateRateCardRequest represents the request to create a rate card
type CreateRateCardRequest struct {
	Placement     string    `json:"placement" validate:"required,oneof=preroll midroll postroll"`
	RateCents     int64     `json:"rate_cents" validate:"required,min=1"`
	EffectiveFrom time.Time `json:"effective_from" validate:"required"`
	EffectiveTo   time.Time `json:"effective_to" validate:"required"`
}

// UpdateRateCardRequest represents the request to update a rate card
type UpdateRateCardRequest struct {
	Placement     string    `json:"placement" validate:"required,oneof=preroll midroll postroll"`
	RateCents     int64     `json:"rate_cents" validate:"required,min=1"`
	EffectiveFrom time.Time `json:"effective_from" validate:"required"`
	EffectiveTo   time.Time `json:"effective_to" validate:"required"`
}

// Create creates a rate card. For a given show and placement, effective
// periods must not overlap.
func (s *RateCardService) Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateRateCardRequest) (*tenant.RateCard, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EffectiveTo.After(req.EffectiveFrom) {
		return nil, apperrors.NewValidationError("effective_to", "must be after effective_from")
	}

	if _, err := s.showRepo.GetByID(ctx, tn.Schema, showID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to check show: %w", err)
	}

	overlaps, err := s.repo.CountOverlapping(ctx, tn.Schema, showID, req.Placement, req.EffectiveFrom, req.EffectiveTo, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping rate cards: %w", err)
	}
	if overlaps > 0 {
		return nil, apperrors.ErrRatePeriodOverlap
	}

	rc := &tenant.RateCard{
		ShowID:        showID,
		Placement:     req.Placement,
		RateCents:     req.RateCents,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	}
	created, err := s.repo.Create(ctx, tn.Schema, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate card: %w", err)
	}
	return created, nil
}

// GetByID retrieves a rate card by ID
func (s *RateCardService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.RateCard, error) {
	rc, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateCardNotFound
		}
		return nil, fmt.Errorf("failed to get rate card: %w", err)
	}
	return rc, nil
}

// GetByShow retrieves a show's rate cards
func (s *RateCardService) GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID) ([]tenant.RateCard, error) {
	if _, err := s.showRepo.GetByID(ctx, tn.Schema, showID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to check show: %w", err)
	}
	return s.repo.GetByShowID(ctx, tn.Schema, showID)
}

// EffectiveRate returns the rate covering a placement on the given date
func (s *RateCardService) EffectiveRate(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, placement string, on time.Time) (*tenant.RateCard, error) {
	if !tenant.ValidPlacement(placement) {
		return nil, apperrors.NewValidationError("placement", fmt.Sprintf("unknown placement %q", placement))
	}
	rc, err := s.repo.EffectiveRate(ctx, tn.Schema, showID, placement, on)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateCardNotFound
		}
		return nil, fmt.Errorf("failed to get effective rate: %w", err)
	}
	return rc, nil
}

// Update updates a rate card, re-checking period overlap against its siblings
func (s *RateCardService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateRateCardRequest) (*tenant.RateCard, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EffectiveTo.After(req.EffectiveFrom) {
		return nil, apperrors.NewValidationError("effective_to", "must be after effective_from")
	}

	rc, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateCardNotFound
		}
		return nil, fmt.Errorf("failed to get rate card: %w", err)
	}

	overlaps, err := s.repo.CountOverlapping(ctx, tn.Schema, rc.ShowID, req.Placement, req.EffectiveFrom, req.EffectiveTo, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping rate cards: %w", err)
	}
	if overlaps > 0 {
		return nil, apperrors.ErrRatePeriodOverlap
	}

	rc.Placement = req.Placement
	rc.RateCents = req.RateCents
	rc.EffectiveFrom = req.EffectiveFrom
	rc.EffectiveTo = req.EffectiveTo
	rc.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to update rate card: %w", err)
	}
	return updated, nil
}

// Delete deletes a rate card
func (s *RateCardService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRateCardNotFound
		}
		return fmt.Errorf("failed to delete rate card: %w", err)
	}
	return nil
}
