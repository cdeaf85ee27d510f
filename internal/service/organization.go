package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations, including
// provisioning and dropping the tenant schema that backs each one
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	manager   *tenant.Manager
	resolver  *tenant.Resolver
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, manager *tenant.Manager, resolver *tenant.Resolver, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		manager:   manager,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Slug         string `json:"slug" validate:"required,min=2,max=59"`
	BillingEmail string `json:"billing_email" validate:"required,email"`
	Plan         string `json:"plan" validate:"omitempty,oneof=standard professional enterprise"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	BillingEmail string `json:"billing_email" validate:"required,email"`
	Plan         string `json:"plan" validate:"omitempty,oneof=standard professional enterprise"`
	Status       string `json:"status" validate:"omitempty,oneof=active suspended"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	BillingEmail string    `json:"billing_email"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	SchemaName   string    `json:"schema_name"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization and provisions its tenant schema
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !tenant.ValidSlug(req.Slug) {
		return nil, apperrors.ErrInvalidSlug
	}

	existingByName, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existingByName != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	existingBySlug, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by slug: %w", err)
	}
	if existingBySlug != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	plan := req.Plan
	if plan == "" {
		plan = "standard"
	}

	org := &models.Organization{
		Name:         req.Name,
		Slug:         req.Slug,
		BillingEmail: req.BillingEmail,
		Plan:         plan,
		Status:       models.OrganizationStatusActive,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	// Schema provisioning happens after the platform row exists. A failure
	// here leaves the org visible but unprovisioned; reads degrade to empty
	// and provisioning can be retried.
	if err := s.manager.CreateSchema(ctx, req.Slug); err != nil {
		return nil, fmt.Errorf("failed to provision tenant schema: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetBySlug retrieves an organization by slug
func (s *OrganizationService) GetBySlug(ctx context.Context, slug string) (*OrganizationResponse, error) {
	org, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(ctx context.Context, page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates an organization's mutable fields. The slug, and with it the
// schema name, is immutable after creation.
func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.Name = req.Name
	org.BillingEmail = req.BillingEmail
	if req.Plan != "" {
		org.Plan = req.Plan
	}
	if req.Status != "" {
		org.Status = models.OrganizationStatus(req.Status)
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.resolver.Invalidate(org.ID)
	return s.toResponse(org), nil
}

// Delete deletes an organization. When dropSchema is true the tenant schema
// and all data inside it are dropped as well; callers must pass an explicit
// confirmation flag through to get here.
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID, dropSchema bool) error {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if dropSchema {
		if err := s.manager.DropSchema(ctx, org.Slug); err != nil {
			return fmt.Errorf("failed to drop tenant schema: %w", err)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.resolver.Invalidate(id)
	return nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		BillingEmail: org.BillingEmail,
		Plan:         org.Plan,
		Status:       string(org.Status),
		SchemaName:   org.SchemaName(),
		CreatedAt:    org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    org.UpdatedAt.Format(time.RFC3339),
	}
}
