package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// invoiceTransitions enumerates the legal status moves. Paid and void are
// terminal.
var invoiceTransitions = map[string][]string{
	tenant.InvoiceStatusDraft: {tenant.InvoiceStatusSent, tenant.InvoiceStatusVoid},
	tenant.InvoiceStatusSent:  {tenant.InvoiceStatusPaid, tenant.InvoiceStatusVoid},
}

func invoiceTransitionAllowed(from, to string) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvoiceService handles business logic for tenant invoices
type InvoiceService struct {
	repo         repository.InvoiceRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	orderRepo    repository.OrderRepositoryInterface
	dispatcher   NotificationDispatcherInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	repo repository.InvoiceRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	orderRepo repository.OrderRepositoryInterface,
	dispatcher NotificationDispatcherInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:         repo,
		campaignRepo: campaignRepo,
		orderRepo:    orderRepo,
		dispatcher:   dispatcher,
		validator:    validator,
		log:          log.WithField("component", "InvoiceService"),
	}
}

// GenerateInvoiceRequest represents the request to generate a campaign invoice
type GenerateInvoiceRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Currency   string    `json:"currency" validate:"omitempty,len=3"`
	DueInDays  int       `json:"due_in_days" validate:"omitempty,min=1,max=180"`
}

// InvoiceListResponse represents a paginated list of invoices
type InvoiceListResponse struct {
	Invoices []tenant.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Generate creates an invoice covering a campaign's booked order items. The
// amount is the sum of quantity times rate across booked orders; a campaign
// with nothing booked cannot be invoiced.
func (s *InvoiceService) Generate(ctx context.Context, tn tenant.Tenant, req *GenerateInvoiceRequest) (*tenant.Invoice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, tn.Schema, req.CampaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	amount, err := s.orderRepo.BookedTotalForCampaign(ctx, tn.Schema, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute booked total: %w", err)
	}
	if amount == 0 {
		return nil, apperrors.ErrNoBookedItems
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	dueInDays := req.DueInDays
	if dueInDays == 0 {
		dueInDays = 30
	}

	now := time.Now()
	due := now.AddDate(0, 0, dueInDays)
	invoice := &tenant.Invoice{
		CampaignID:  req.CampaignID,
		Status:      tenant.InvoiceStatusDraft,
		AmountCents: amount,
		Currency:    currency,
		IssuedAt:    &now,
		DueDate:     &due,
	}
	created, err := s.repo.Create(ctx, tn.Schema, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := s.dispatcher.Dispatch(tn.OrganizationID, models.EventInvoiceGenerated, map[string]any{
		"invoice_number": created.Number,
		"campaign_name":  campaign.Name,
		"amount_cents":   created.AmountCents,
		"currency":       created.Currency,
	}); err != nil {
		s.log.WithError(err).WithField("invoice_id", created.ID).Warn("failed to dispatch invoice notification")
	}

	return created, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// GetAll retrieves invoices with optional status filter and pagination
func (s *InvoiceService) GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	invoices, total, err := s.repo.GetAll(ctx, tn.Schema, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return &InvoiceListResponse{Invoices: invoices, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetByCampaign retrieves a campaign's invoices
func (s *InvoiceService) GetByCampaign(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID) ([]tenant.Invoice, error) {
	if _, err := s.campaignRepo.GetByID(ctx, tn.Schema, campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to check campaign: %w", err)
	}
	return s.repo.GetByCampaignID(ctx, tn.Schema, campaignID)
}

// UpdateStatus moves an invoice through its lifecycle
func (s *InvoiceService) UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*tenant.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if !invoiceTransitionAllowed(invoice.Status, status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, tn.Schema, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return updated, nil
}
