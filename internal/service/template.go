package service

import (
	"errors"
	"fmt"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultTemplates are the system fallbacks seeded at startup, one per
// notification event. Organizations override them by creating a template with
// the same key.
var defaultTemplates = []models.EmailTemplate{
	{
		Key:      string(models.EventCampaignStatusChanged),
		Subject:  "Campaign {{.campaign_name}} is now {{.new_status}}",
		HTMLBody: "<p>The campaign <strong>{{.campaign_name}}</strong> moved from {{.previous_status}} to {{.new_status}}.</p>",
		TextBody: "The campaign {{.campaign_name}} moved from {{.previous_status}} to {{.new_status}}.",
		IsActive: true,
	},
	{
		Key:      string(models.EventOrderApproved),
		Subject:  "Order approved",
		HTMLBody: "<p>Order {{.order_id}} was approved with a total of {{.total_cents}} cents.</p>",
		TextBody: "Order {{.order_id}} was approved with a total of {{.total_cents}} cents.",
		IsActive: true,
	},
	{
		Key:      string(models.EventInvoiceGenerated),
		Subject:  "Invoice {{.invoice_number}} generated",
		HTMLBody: "<p>Invoice <strong>{{.invoice_number}}</strong> for campaign {{.campaign_name}} was generated: {{.amount_cents}} cents {{.currency}}.</p>",
		TextBody: "Invoice {{.invoice_number}} for campaign {{.campaign_name}} was generated: {{.amount_cents}} cents {{.currency}}.",
		IsActive: true,
	},
	{
		Key:      string(models.EventUserInvited),
		Subject:  "You have been invited to {{.organization_name}}",
		HTMLBody: "<p>Hello {{.full_name}}, you have been invited to join <strong>{{.organization_name}}</strong> as {{.role}}.</p>",
		TextBody: "Hello {{.full_name}}, you have been invited to join {{.organization_name}} as {{.role}}.",
		IsActive: true,
	},
	{
		Key:      string(models.EventYouTubeSyncCompleted),
		Subject:  "YouTube sync completed",
		HTMLBody: "<p>The YouTube sync finished: {{.processed}} episodes updated, {{.failed}} failed.</p>",
		TextBody: "The YouTube sync finished: {{.processed}} episodes updated, {{.failed}} failed.",
		IsActive: true,
	},
}

// TemplateService handles business logic for email templates
type TemplateService struct {
	repo      repository.EmailTemplateRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(repo repository.EmailTemplateRepositoryInterface, validator *validator.Validate, log *logger.Logger) *TemplateService {
	return &TemplateService{
		repo:      repo,
		validator: validator,
		log:       log.WithField("component", "TemplateService"),
	}
}

// CreateTemplateRequest represents the request to create an org template override
type CreateTemplateRequest struct {
	Key      string `json:"key" validate:"required,max=100"`
	Subject  string `json:"subject" validate:"required,max=500"`
	HTMLBody string `json:"html_body" validate:"required"`
	TextBody string `json:"text_body"`
}

// UpdateTemplateRequest represents the request to update a template
type UpdateTemplateRequest struct {
	Subject  string `json:"subject" validate:"required,max=500"`
	HTMLBody string `json:"html_body" validate:"required"`
	TextBody string `json:"text_body"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// SeedDefaults inserts any missing system default templates. Existing rows
// are left untouched so operator edits survive restarts.
func (s *TemplateService) SeedDefaults() error {
	for _, tpl := range defaultTemplates {
		existing, err := s.repo.Lookup(uuid.Nil, tpl.Key)
		if err == nil && existing != nil {
			continue
		}
		if err != nil && !apperrors.IsNotFound(err) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check template %s: %w", tpl.Key, err)
		}

		row := tpl
		if err := s.repo.Create(&row); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", tpl.Key, err)
		}
		s.log.WithField("key", tpl.Key).Info("seeded default email template")
	}
	return nil
}

// CreateOverride creates an organization-specific template override
func (s *TemplateService) CreateOverride(orgID uuid.UUID, req *CreateTemplateRequest) (*models.EmailTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.NotificationEvent(req.Key).IsValid() {
		return nil, apperrors.NewValidationError("key", fmt.Sprintf("unknown template key %q", req.Key))
	}

	tpl := &models.EmailTemplate{
		OrganizationID: &orgID,
		Key:            req.Key,
		Subject:        req.Subject,
		HTMLBody:       req.HTMLBody,
		TextBody:       req.TextBody,
		IsActive:       true,
	}
	if err := s.repo.Create(tpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

// GetByOrganization lists an organization's template overrides
func (s *TemplateService) GetByOrganization(orgID uuid.UUID) ([]models.EmailTemplate, error) {
	return s.repo.GetByOrganizationID(orgID)
}

// Resolve returns the template that would render for an org and key,
// falling back to the system default
func (s *TemplateService) Resolve(orgID uuid.UUID, key string) (*models.EmailTemplate, error) {
	tpl, err := s.repo.Lookup(orgID, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || apperrors.IsNotFound(err) {
			return nil, apperrors.ErrEmailTemplateNotFound
		}
		return nil, fmt.Errorf("failed to resolve template: %w", err)
	}
	return tpl, nil
}

// Update updates a template
func (s *TemplateService) Update(id uuid.UUID, req *UpdateTemplateRequest) (*models.EmailTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tpl, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	tpl.Subject = req.Subject
	tpl.HTMLBody = req.HTMLBody
	tpl.TextBody = req.TextBody
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	if err := s.repo.Update(tpl); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return tpl, nil
}

// Delete deletes an organization template override. System defaults cannot
// be deleted.
func (s *TemplateService) Delete(id uuid.UUID) error {
	tpl, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}
	if tpl.OrganizationID == nil {
		return apperrors.NewValidationError("id", "system default templates cannot be deleted")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
