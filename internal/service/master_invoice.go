package service

import (
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// planPriceCents is the monthly platform fee per plan
var planPriceCents = map[string]int64{
	"standard":     9900,
	"professional": 29900,
	"enterprise":   99900,
}

// MasterInvoiceService handles platform billing of organizations
type MasterInvoiceService struct {
	repo      repository.MasterInvoiceRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewMasterInvoiceService creates a new master invoice service
func NewMasterInvoiceService(repo repository.MasterInvoiceRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate, log *logger.Logger) *MasterInvoiceService {
	return &MasterInvoiceService{
		repo:      repo,
		orgRepo:   orgRepo,
		validator: validator,
		log:       log.WithField("component", "MasterInvoiceService"),
	}
}

// GenerateMasterInvoiceRequest represents the request to bill an organization
// for one calendar month
type GenerateMasterInvoiceRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Year           int       `json:"year" validate:"required,min=2020,max=2100"`
	Month          int       `json:"month" validate:"required,min=1,max=12"`
}

// MasterInvoiceListResponse represents a paginated list of master invoices
type MasterInvoiceListResponse struct {
	Invoices []models.MasterInvoice `json:"invoices"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// Generate bills an organization its plan fee for one month. At most one
// master invoice exists per organization and period.
func (s *MasterInvoiceService) Generate(req *GenerateMasterInvoiceRequest) (*models.MasterInvoice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgRepo.GetByID(req.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Second)

	exists, err := s.repo.ExistsForPeriod(req.OrganizationID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invoice: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMasterInvoiceExists
	}

	amount, ok := planPriceCents[org.Plan]
	if !ok {
		return nil, apperrors.NewValidationError("plan", fmt.Sprintf("organization plan %q has no price", org.Plan))
	}

	number, err := s.repo.NextNumber(req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now()
	invoice := &models.MasterInvoice{
		OrganizationID: req.OrganizationID,
		Number:         number,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		AmountCents:    amount,
		Currency:       "USD",
		Status:         models.MasterInvoiceStatusDraft,
		IssuedAt:       &now,
	}
	if err := s.repo.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create master invoice: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": req.OrganizationID,
		"number":          number,
		"amount_cents":    amount,
	}).Info("master invoice generated")
	return invoice, nil
}

// GetByID retrieves a master invoice by ID
func (s *MasterInvoiceService) GetByID(id uuid.UUID) (*models.MasterInvoice, error) {
	invoice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMasterInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get master invoice: %w", err)
	}
	return invoice, nil
}

// GetByOrganization retrieves an organization's master invoices with pagination
func (s *MasterInvoiceService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*MasterInvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	invoices, total, err := s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get master invoices: %w", err)
	}
	return &MasterInvoiceListResponse{Invoices: invoices, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateStatus moves a master invoice through its lifecycle, stamping paid_at
// when it becomes paid
func (s *MasterInvoiceService) UpdateStatus(id uuid.UUID, status models.MasterInvoiceStatus) (*models.MasterInvoice, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown master invoice status %q", status))
	}

	invoice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMasterInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get master invoice: %w", err)
	}

	if invoice.Status == models.MasterInvoiceStatusPaid || invoice.Status == models.MasterInvoiceStatusVoid {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	invoice.Status = status
	if status == models.MasterInvoiceStatusPaid {
		now := time.Now()
		invoice.PaidAt = &now
	}

	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("failed to update master invoice: %w", err)
	}
	return invoice, nil
}
