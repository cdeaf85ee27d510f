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

// AgencyService handles business logic for advertising agencies
type AgencyService struct {
	repo      repository.AgencyRepositoryInterface
	validator *validator.Validate
}

// NewAgencyService creates a new agency service
func NewAgencyService(repo repository.AgencyRepositoryInterface, validator *validator.Validate) *AgencyService {
	return &AgencyService{repo: repo, validator: validator}
}

// CreateAgencyRequest represents the request to create an agency
type CreateAgencyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" validate:"omitempty,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=40"`
	Website      string `json:"website" validate:"omitempty,url,max=300"`
}

// UpdateAgencyRequest represents the request to update an agency
type UpdateAgencyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" validate:"omitempty,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=40"`
	Website      string `json:"website" validate:"omitempty,url,max=300"`
}

// AgencyListResponse represents a paginated list of agencies
type AgencyListResponse struct {
	Agencies []tenant.Agency `json:"agencies"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new agency in the tenant schema
func (s *AgencyService) Create(ctx context.Context, tn tenant.Tenant, req *CreateAgencyRequest) (*tenant.Agency, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(ctx, tn.Schema, req.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing agency: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAgencyExists
	}

	agency := &tenant.Agency{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Website:      req.Website,
	}
	created, err := s.repo.Create(ctx, tn.Schema, agency)
	if err != nil {
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}
	return created, nil
}

// GetByID retrieves an agency by ID
func (s *AgencyService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Agency, error) {
	agency, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}
	return agency, nil
}

// Search retrieves agencies matching a query with pagination
func (s *AgencyService) Search(ctx context.Context, tn tenant.Tenant, query string, page, pageSize int) (*AgencyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	agencies, total, err := s.repo.Search(ctx, tn.Schema, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search agencies: %w", err)
	}
	return &AgencyListResponse{Agencies: agencies, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates an agency
func (s *AgencyService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAgencyRequest) (*tenant.Agency, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agency, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	agency.Name = req.Name
	agency.ContactName = req.ContactName
	agency.ContactEmail = req.ContactEmail
	agency.Phone = req.Phone
	agency.Website = req.Website
	agency.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, agency)
	if err != nil {
		return nil, fmt.Errorf("failed to update agency: %w", err)
	}
	return updated, nil
}

// Delete deletes an agency. An agency still holding advertisers cannot be
// deleted; the advertisers must be reassigned or removed first.
func (s *AgencyService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	_, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAgencyNotFound
		}
		return fmt.Errorf("failed to get agency: %w", err)
	}

	count, err := s.repo.CountAdvertisers(ctx, tn.Schema, id)
	if err != nil {
		return fmt.Errorf("failed to count agency advertisers: %w", err)
	}
	if count > 0 {
		return apperrors.ErrAgencyHasAdvertisers
	}

	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAgencyNotFound
		}
		return fmt.Errorf("failed to delete agency: %w", err)
	}
	return nil
}
