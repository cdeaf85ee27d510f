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

// AdvertiserService handles business logic for advertisers
type AdvertiserService struct {
	repo       repository.AdvertiserRepositoryInterface
	agencyRepo repository.AgencyRepositoryInterface
	validator  *validator.Validate
}

// NewAdvertiserService creates a new advertiser service
func NewAdvertiserService(repo repository.AdvertiserRepositoryInterface, agencyRepo repository.AgencyRepositoryInterface, validator *validator.Validate) *AdvertiserService {
	return &AdvertiserService{repo: repo, agencyRepo: agencyRepo, validator: validator}
}

// CreateAdvertiserRequest represents the request to create an advertiser
type CreateAdvertiserRequest struct {
	AgencyID     *uuid.UUID `json:"agency_id,omitempty"`
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	ContactName  string     `json:"contact_name" validate:"omitempty,max=200"`
	ContactEmail string     `json:"contact_email" validate:"omitempty,email"`
	Phone        string     `json:"phone" validate:"omitempty,max=40"`
	Industry     string     `json:"industry" validate:"omitempty,max=100"`
}

// UpdateAdvertiserRequest represents the request to update an advertiser
type UpdateAdvertiserRequest struct {
	AgencyID     *uuid.UUID `json:"agency_id,omitempty"`
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	ContactName  string     `json:"contact_name" validate:"omitempty,max=200"`
	ContactEmail string     `json:"contact_email" validate:"omitempty,email"`
	Phone        string     `json:"phone" validate:"omitempty,max=40"`
	Industry     string     `json:"industry" validate:"omitempty,max=100"`
}

// AdvertiserListResponse represents a paginated list of advertisers
type AdvertiserListResponse struct {
	Advertisers []tenant.Advertiser `json:"advertisers"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// Create creates a new advertiser, checking the agency reference when set
func (s *AdvertiserService) Create(ctx context.Context, tn tenant.Tenant, req *CreateAdvertiserRequest) (*tenant.Advertiser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.AgencyID != nil {
		if _, err := s.agencyRepo.GetByID(ctx, tn.Schema, *req.AgencyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrAgencyNotFound
			}
			return nil, fmt.Errorf("failed to check agency: %w", err)
		}
	}

	existing, err := s.repo.GetByName(ctx, tn.Schema, req.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing advertiser: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAdvertiserExists
	}

	adv := &tenant.Advertiser{
		AgencyID:     req.AgencyID,
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Industry:     req.Industry,
	}
	created, err := s.repo.Create(ctx, tn.Schema, adv)
	if err != nil {
		return nil, fmt.Errorf("failed to create advertiser: %w", err)
	}
	return created, nil
}

// GetByID retrieves an advertiser by ID
func (s *AdvertiserService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Advertiser, error) {
	adv, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertiserNotFound
		}
		return nil, fmt.Errorf("failed to get advertiser: %w", err)
	}
	return adv, nil
}

// Search retrieves advertisers matching a query with pagination
func (s *AdvertiserService) Search(ctx context.Context, tn tenant.Tenant, query string, page, pageSize int) (*AdvertiserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	advertisers, total, err := s.repo.Search(ctx, tn.Schema, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search advertisers: %w", err)
	}
	return &AdvertiserListResponse{Advertisers: advertisers, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetByAgency retrieves all advertisers under an agency
func (s *AdvertiserService) GetByAgency(ctx context.Context, tn tenant.Tenant, agencyID uuid.UUID) ([]tenant.Advertiser, error) {
	if _, err := s.agencyRepo.GetByID(ctx, tn.Schema, agencyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to check agency: %w", err)
	}
	return s.repo.GetByAgencyID(ctx, tn.Schema, agencyID)
}

// Update updates an advertiser
func (s *AdvertiserService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAdvertiserRequest) (*tenant.Advertiser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	adv, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertiserNotFound
		}
		return nil, fmt.Errorf("failed to get advertiser: %w", err)
	}

	if req.AgencyID != nil {
		if _, err := s.agencyRepo.GetByID(ctx, tn.Schema, *req.AgencyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrAgencyNotFound
			}
			return nil, fmt.Errorf("failed to check agency: %w", err)
		}
	}

	adv.AgencyID = req.AgencyID
	adv.Name = req.Name
	adv.ContactName = req.ContactName
	adv.ContactEmail = req.ContactEmail
	adv.Phone = req.Phone
	adv.Industry = req.Industry
	adv.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, adv)
	if err != nil {
		return nil, fmt.Errorf("failed to update advertiser: %w", err)
	}
	return updated, nil
}

// Delete deletes an advertiser
func (s *AdvertiserService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAdvertiserNotFound
		}
		return fmt.Errorf("failed to delete advertiser: %w", err)
	}
	return nil
}
