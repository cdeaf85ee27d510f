package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"podcastflow-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// validProbabilities are the allowed pipeline probability steps
var validProbabilities = map[int]bool{10: true, 35: true, 65: true, 90: true, 100: true}

// campaignTransitions enumerates the legal status moves. Completed is terminal.
var campaignTransitions = map[string][]string{
	tenant.CampaignStatusDraft:  {tenant.CampaignStatusActive},
	tenant.CampaignStatusActive: {tenant.CampaignStatusPaused, tenant.CampaignStatusCompleted},
	tenant.CampaignStatusPaused: {tenant.CampaignStatusActive, tenant.CampaignStatusCompleted},
}

func campaignTransitionAllowed(from, to string) bool {
	for _, next := range campaignTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CampaignService handles business logic for campaigns
type CampaignService struct {
	repo           repository.CampaignRepositoryInterface
	advertiserRepo repository.AdvertiserRepositoryInterface
	dispatcher     NotificationDispatcherInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(repo repository.CampaignRepositoryInterface, advertiserRepo repository.AdvertiserRepositoryInterface, dispatcher NotificationDispatcherInterface, validator *validator.Validate, log *logger.Logger) *CampaignService {
	return &CampaignService{
		repo:           repo,
		advertiserRepo: advertiserRepo,
		dispatcher:     dispatcher,
		validator:      validator,
		log:            log.WithField("component", "CampaignService"),
	}
}

// CreateCampaignRequest represents the request to create a campaign
type CreateCampaignRequest struct {
	AdvertiserID uuid.UUID `json:"advertiser_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=200"`
	BudgetCents  int64     `json:"budget_cents" validate:"required,min=1"`
	Probability  int       `json:"probability" validate:"required"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required"`
}

// UpdateCampaignRequest represents the request to update a campaign's
// commercial terms. Status moves go through UpdateStatus.
type UpdateCampaignRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	BudgetCents int64     `json:"budget_cents" validate:"required,min=1"`
	Probability int       `json:"probability" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
}

// CampaignListResponse represents a paginated list of campaigns
type CampaignListResponse struct {
	Campaigns []tenant.Campaign `json:"campaigns"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a campaign in draft status
func (s *CampaignService) Create(ctx context.Context, tn tenant.Tenant, req *CreateCampaignRequest) (*tenant.Campaign, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.ErrInvalidFlightDates
	}
	if !validProbabilities[req.Probability] {
		return nil, apperrors.ErrInvalidProbability
	}

	if _, err := s.advertiserRepo.GetByID(ctx, tn.Schema, req.AdvertiserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertiserNotFound
		}
		return nil, fmt.Errorf("failed to check advertiser: %w", err)
	}

	existing, err := s.repo.GetByAdvertiserAndName(ctx, tn.Schema, req.AdvertiserID, req.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing campaign: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCampaignExists
	}

	c := &tenant.Campaign{
		AdvertiserID: req.AdvertiserID,
		Name:         req.Name,
		Status:       tenant.CampaignStatusDraft,
		BudgetCents:  req.BudgetCents,
		Probability:  req.Probability,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	created, err := s.repo.Create(ctx, tn.Schema, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return created, nil
}

// GetByID retrieves a campaign by ID
func (s *CampaignService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Campaign, error) {
	c, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// GetAll retrieves campaigns with optional status filter and pagination
func (s *CampaignService) GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*CampaignListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if status != "" && !campaignStatusKnown(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown campaign status %q", status))
	}

	campaigns, total, err := s.repo.GetAll(ctx, tn.Schema, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	return &CampaignListResponse{Campaigns: campaigns, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetByAdvertiser retrieves an advertiser's campaigns
func (s *CampaignService) GetByAdvertiser(ctx context.Context, tn tenant.Tenant, advertiserID uuid.UUID) ([]tenant.Campaign, error) {
	if _, err := s.advertiserRepo.GetByID(ctx, tn.Schema, advertiserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertiserNotFound
		}
		return nil, fmt.Errorf("failed to check advertiser: %w", err)
	}
	return s.repo.GetByAdvertiserID(ctx, tn.Schema, advertiserID)
}

// Update updates a campaign's commercial terms
func (s *CampaignService) Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateCampaignRequest) (*tenant.Campaign, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.ErrInvalidFlightDates
	}
	if !validProbabilities[req.Probability] {
		return nil, apperrors.ErrInvalidProbability
	}

	c, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	c.Name = req.Name
	c.BudgetCents = req.BudgetCents
	c.Probability = req.Probability
	c.StartDate = req.StartDate
	c.EndDate = req.EndDate
	c.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return updated, nil
}

// UpdateStatus moves a campaign through its lifecycle and notifies on success
func (s *CampaignService) UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*tenant.Campaign, error) {
	if !campaignStatusKnown(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown campaign status %q", status))
	}

	c, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	if !campaignTransitionAllowed(c.Status, status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	previous := c.Status
	c.Status = status
	c.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, tn.Schema, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if err := s.dispatcher.Dispatch(tn.OrganizationID, models.EventCampaignStatusChanged, map[string]any{
		"campaign_name":   updated.Name,
		"previous_status": previous,
		"new_status":      updated.Status,
	}); err != nil {
		s.log.WithError(err).WithField("campaign_id", id).Warn("failed to dispatch campaign status notification")
	}

	return updated, nil
}

// Delete deletes a draft campaign. Campaigns past draft carry commercial
// history and cannot be deleted.
func (s *CampaignService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCampaignNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}
	if c.Status != tenant.CampaignStatusDraft {
		return apperrors.ErrInvalidStatus
	}

	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCampaignNotFound
		}
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

func campaignStatusKnown(status string) bool {
	switch status {
	case tenant.CampaignStatusDraft, tenant.CampaignStatusActive, tenant.CampaignStatusPaused, tenant.CampaignStatusCompleted:
		return true
	}
	return false
}
