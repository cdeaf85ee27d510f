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

// RevenueSharingService handles business logic for revenue sharing agreements
type RevenueSharingService struct {
	repo      repository.RevenueSharingRepositoryInterface
	showRepo  repository.ShowRepositoryInterface
	validator *validator.Validate
}

// NewRevenueSharingService creates a new revenue sharing service
func NewRevenueSharingService(repo repository.RevenueSharingRepositoryInterface, showRepo repository.ShowRepositoryInterface, validator *validator.Validate) *RevenueSharingService {
	return &RevenueSharingService{repo: repo, showRepo: showRepo, validator: validator}
}

// CreateAgreementRequest represents the request to create an agreement
type CreateAgreementRequest struct {
	PartnerName   string    `json:"partner_name" validate:"required,min=1,max=200"`
	Percentage    float64   `json:"percentage" validate:"required,gt=0,lte=100"`
	EffectiveFrom time.Time `json:"effective_from" validate:"required"`
	EffectiveTo   time.Time `json:"effective_to" validate:"required"`
}

// UpdateAgreementRequest represents the request to update an agreement
type UpdateAgreementRequest struct {
	PartnerName   string    `json:"partner_name" validate:"required,min=1,max=200"`
	Percentage    float64   `json:"percentage" validate:"required,gt=0,lte=100"`
	EffectiveFrom time.Time `json:"effective_from" validate:"required"`
	EffectiveTo   time.Time `json:"effective_to" validate:"required"`
}

// Create creates an agreement. For the same show and partner, effective
// periods must not overlap.
func (s *RevenueSharingService) Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateAgreementRequest) (*tenant.RevenueSharingAgreement, error) {
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

	overlaps, err := s.repo.CountOverlapping(ctx, tn.Schema, showID, req.PartnerName, req.EffectiveFrom, req.EffectiveTo, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping agreements: %w", err)
	}
	if overlaps > 0 {
		return nil, apperrors.ErrRevenueSharePeriodOverlap
	}

	agreement := &tenant.RevenueSharingAgreement{
		ShowID:        showID,
		PartnerName:   req.PartnerName,
		Percentage:    req.Percentage,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	}
	created, err := s.repo.Create(ctx, tn.Schema, agreement)
	if err != nil {
		return nil, fmt.Errorf("failed to create agreement: %w", err)
	}
	return created, nil
}

// GetByID retrieves an agreement by ID
func (s *RevenueSharingService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.RevenueSharingAgreement, error) {
	agreement, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRevenueSharingNotFound
		}
		return nil, fmt.Errorf("failed to get agreement: %w", err)
	}
	return agreement, nil
}

// GetByShow retrieves a show's agreements
func (s *RevenueSharingService) GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID) ([]tenant.RevenueSharingAgreement, error) {
	if _, err := s.showRepo.GetByID(ctx, tn.Schema, showID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to check show: %w", err)
	}
	return s.repo.GetByShowID(ctx, tn.Schema, showID)
}

// Update updates an agreement, re-checking period overlap
func (s *RevenueSharingService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAgreementRequest) (*tenant.RevenueSharingAgreement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EffectiveTo.After(req.EffectiveFrom) {
		return nil, apperrors.NewValidationError("effective_to", "must be after effective_from")
	}

	agreement, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRevenueSharingNotFound
		}
		return nil, fmt.Errorf("failed to get agreement: %w", err)
	}

	overlaps, err := s.repo.CountOverlapping(ctx, tn.Schema, agreement.ShowID, req.PartnerName, req.EffectiveFrom, req.EffectiveTo, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping agreements: %w", err)
	}
	if overlaps > 0 {
		return nil, apperrors.ErrRevenueSharePeriodOverlap
	}

	agreement.PartnerName = req.PartnerName
	agreement.Percentage = req.Percentage
	agreement.EffectiveFrom = req.EffectiveFrom
	agreement.EffectiveTo = req.EffectiveTo
	agreement.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, agreement)
	if err != nil {
		return nil, fmt.Errorf("failed to update agreement: %w", err)
	}
	return updated, nil
}

// Delete deletes an agreement
func (s *RevenueSharingService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRevenueSharingNotFound
		}
		return fmt.Errorf("failed to delete agreement: %w", err)
	}
	return nil
}
