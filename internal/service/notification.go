package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"

	"github.com/google/uuid"
)

// eventRecipientRoles maps each notification event to the platform roles that
// should receive it. The user_invited event is special cased: it goes to the
// address carried in the event data, not to a role group.
var eventRecipientRoles = map[models.NotificationEvent][]models.UserRole{
	models.EventCampaignStatusChanged: {models.UserRoleAdmin, models.UserRoleSales},
	models.EventOrderApproved:         {models.UserRoleAdmin, models.UserRoleSales},
	models.EventInvoiceGenerated:      {models.UserRoleAdmin},
	models.EventYouTubeSyncCompleted:  {models.UserRoleAdmin, models.UserRoleProducer},
}

// NotificationService turns domain events into rendered, queued emails and a
// delivery record. Sending happens later in the queue worker; dispatch only
// writes rows.
type NotificationService struct {
	users         repository.UserRepositoryInterface
	templates     repository.EmailTemplateRepositoryInterface
	queue         repository.EmailQueueRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	log           *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	users repository.UserRepositoryInterface,
	templates repository.EmailTemplateRepositoryInterface,
	queue repository.EmailQueueRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	log *logger.Logger,
) *NotificationService {
	return &NotificationService{
		users:         users,
		templates:     templates,
		queue:         queue,
		notifications: notifications,
		log:           log.WithField("component", "NotificationService"),
	}
}

// Dispatch resolves recipients for the event, renders the template once per
// recipient and enqueues the results. A dispatch with no recipients is not an
// error; it logs and returns.
func (s *NotificationService) Dispatch(orgID uuid.UUID, event models.NotificationEvent, data map[string]any) error {
	if !event.IsValid() {
		return apperrors.NewValidationError("event", fmt.Sprintf("unknown notification event %q", event))
	}

	recipients, err := s.resolveRecipients(orgID, event, data)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		s.log.WithFields(map[string]interface{}{
			"organization_id": orgID,
			"event":           event,
		}).Info("no recipients for event, skipping dispatch")
		return nil
	}

	tpl, err := s.templates.Lookup(orgID, string(event))
	if err != nil {
		return fmt.Errorf("failed to look up template for event %s: %w", event, err)
	}

	subject, htmlBody, textBody, err := renderTemplate(tpl, data)
	if err != nil {
		return fmt.Errorf("failed to render template %s: %w", tpl.Key, err)
	}

	messages := make([]*models.EmailQueue, len(recipients))
	for i, rcpt := range recipients {
		messages[i] = &models.EmailQueue{
			OrganizationID: &orgID,
			Recipient:      rcpt,
			Subject:        subject,
			HTMLBody:       htmlBody,
			TextBody:       textBody,
			TemplateKey:    tpl.Key,
			Status:         models.EmailStatusPending,
		}
	}
	if err := s.queue.Enqueue(messages...); err != nil {
		return fmt.Errorf("failed to enqueue notification emails: %w", err)
	}

	queueIDs := make([]uuid.UUID, len(messages))
	for i, m := range messages {
		queueIDs[i] = m.ID
	}
	recipientsJSON, _ := json.Marshal(recipients)
	queueIDsJSON, _ := json.Marshal(queueIDs)

	delivery := &models.NotificationDelivery{
		OrganizationID: orgID,
		Event:          event,
		Recipients:     recipientsJSON,
		QueueIDs:       queueIDsJSON,
		TemplateKey:    tpl.Key,
	}
	if err := s.notifications.Create(delivery); err != nil {
		return fmt.Errorf("failed to record notification delivery: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"event":           event,
		"recipients":      len(recipients),
	}).Info("notification dispatched")
	return nil
}

// GetDeliveries retrieves notification delivery records for an organization
func (s *NotificationService) GetDeliveries(orgID uuid.UUID, page, pageSize int) ([]models.NotificationDelivery, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.notifications.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
}

func (s *NotificationService) resolveRecipients(orgID uuid.UUID, event models.NotificationEvent, data map[string]any) ([]string, error) {
	if event == models.EventUserInvited {
		addr, _ := data["recipient"].(string)
		if addr == "" {
			return nil, apperrors.NewValidationError("recipient", "user_invited event requires a recipient address")
		}
		return []string{addr}, nil
	}

	roles := eventRecipientRoles[event]
	users, err := s.users.GetActiveByRoles(orgID, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, u.Email)
	}
	return recipients, nil
}

// renderTemplate executes a template's subject and text parts with
// text/template and its HTML part with html/template, so HTML output is
// escaped against injection from event data.
func renderTemplate(tpl *models.EmailTemplate, data map[string]any) (subject, htmlBody, textBody string, err error) {
	subjTpl, err := texttemplate.New("subject").Parse(tpl.Subject)
	if err != nil {
		return "", "", "", fmt.Errorf("parse subject: %w", err)
	}
	var subjBuf bytes.Buffer
	if err := subjTpl.Execute(&subjBuf, data); err != nil {
		return "", "", "", fmt.Errorf("execute subject: %w", err)
	}

	htmlTpl, err := htmltemplate.New("html").Parse(tpl.HTMLBody)
	if err != nil {
		return "", "", "", fmt.Errorf("parse html body: %w", err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTpl.Execute(&htmlBuf, data); err != nil {
		return "", "", "", fmt.Errorf("execute html body: %w", err)
	}

	var textBuf bytes.Buffer
	if tpl.TextBody != "" {
		textTpl, err := texttemplate.New("text").Parse(tpl.TextBody)
		if err != nil {
			return "", "", "", fmt.Errorf("parse text body: %w", err)
		}
		if err := textTpl.Execute(&textBuf, data); err != nil {
			return "", "", "", fmt.Errorf("execute text body: %w", err)
		}
	}

	return subjBuf.String(), htmlBuf.String(), textBuf.String(), nil
}
