package repository

import (
	"errors"
	"time"

	"podcastflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmailQueueRepository handles database operations for the outbound email queue
type EmailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository
func NewEmailQueueRepository(db *gorm.DB) *EmailQueueRepository {
	return &EmailQueueRepository{db: db}
}

// Enqueue inserts messages as pending queue rows
func (r *EmailQueueRepository) Enqueue(messages ...*models.EmailQueue) error {
	if len(messages) == 0 {
		return nil
	}
	for _, m := range messages {
		if m.ScheduledFor.IsZero() {
			m.ScheduledFor = time.Now()
		}
		if m.MaxAttempts == 0 {
			m.MaxAttempts = 3
		}
		m.Status = models.EmailStatusPending
	}
	return r.db.Create(messages).Error
}

// GetByID retrieves a queued email by ID
func (r *EmailQueueRepository) GetByID(id uuid.UUID) (*models.EmailQueue, error) {
	var msg models.EmailQueue
	err := r.db.First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ClaimDue atomically claims up to limit due pending rows and marks them
// processing. FOR UPDATE SKIP LOCKED lets concurrent workers poll the same
// table without handing out the same row twice.
func (r *EmailQueueRepository) ClaimDue(limit int) ([]models.EmailQueue, error) {
	var claimed []models.EmailQueue

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var due []models.EmailQueue
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND scheduled_for <= ?", models.EmailStatusPending, time.Now()).
			Order("scheduled_for").
			Limit(limit).
			Find(&due).Error
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(due))
		for i, m := range due {
			ids[i] = m.ID
		}
		if err := tx.Model(&models.EmailQueue{}).
			Where("id IN ?", ids).
			Update("status", models.EmailStatusProcessing).Error; err != nil {
			return err
		}

		for i := range due {
			due[i].Status = models.EmailStatusProcessing
		}
		claimed = due
		return nil
	})

	return claimed, err
}

// MarkSent records a successful delivery and writes the email log row
func (r *EmailQueueRepository) MarkSent(id uuid.UUID, providerMessageID string) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var msg models.EmailQueue
		if err := tx.First(&msg, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":              models.EmailStatusSent,
			"sent_at":             now,
			"provider_message_id": providerMessageID,
			"attempts":            gorm.Expr("attempts + 1"),
			"last_error":          "",
		}
		if err := tx.Model(&models.EmailQueue{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		log := &models.EmailLog{
			QueueID:           msg.ID,
			OrganizationID:    msg.OrganizationID,
			Recipient:         msg.Recipient,
			Subject:           msg.Subject,
			TemplateKey:       msg.TemplateKey,
			ProviderMessageID: providerMessageID,
			SentAt:            now,
		}
		return tx.Create(log).Error
	})
}

// MarkFailed records a delivery failure. Below the attempt budget the row
// goes back to pending with the next attempt time; at the budget it becomes
// terminally failed.
func (r *EmailQueueRepository) MarkFailed(id uuid.UUID, errMsg string, retryAt time.Time) (terminal bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var msg models.EmailQueue
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&msg, "id = ?", id).Error; err != nil {
			return err
		}

		msg.Attempts++
		msg.LastError = errMsg
		if msg.Attempts >= msg.MaxAttempts {
			msg.Status = models.EmailStatusFailed
			terminal = true
		} else {
			msg.Status = models.EmailStatusPending
			msg.ScheduledFor = retryAt
		}
		return tx.Save(&msg).Error
	})
	return terminal, err
}

// CountByStatus returns the number of queue rows in a given status
func (r *EmailQueueRepository) CountByStatus(status models.EmailStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmailQueue{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// GetByOrganizationID retrieves queue rows for an organization with pagination
func (r *EmailQueueRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.EmailQueue, int64, error) {
	var rows []models.EmailQueue
	var total int64

	if err := r.db.Model(&models.EmailQueue{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// EmailTemplateRepository handles database operations for email templates
type EmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

// Create creates a new template
func (r *EmailTemplateRepository) Create(tpl *models.EmailTemplate) error {
	return r.db.Create(tpl).Error
}

// GetByID retrieves a template by ID
func (r *EmailTemplateRepository) GetByID(id uuid.UUID) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	err := r.db.First(&tpl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Lookup finds the template for a key, preferring the organization override
// and falling back to the system default (organization_id IS NULL)
func (r *EmailTemplateRepository) Lookup(orgID uuid.UUID, key string) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	err := r.db.First(&tpl, "organization_id = ? AND key = ? AND is_active = ?", orgID, key, true).Error
	if err == nil {
		return &tpl, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.First(&tpl, "organization_id IS NULL AND key = ? AND is_active = ?", key, true).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetByOrganizationID retrieves all templates visible to an organization
func (r *EmailTemplateRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.EmailTemplate, error) {
	var tpls []models.EmailTemplate
	err := r.db.Where("organization_id = ? OR organization_id IS NULL", orgID).
		Order("key").Find(&tpls).Error
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

// Update updates a template
func (r *EmailTemplateRepository) Update(tpl *models.EmailTemplate) error {
	return r.db.Save(tpl).Error
}

// Delete deletes a template
func (r *EmailTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailTemplate{}, "id = ?", id).Error
}

// NotificationRepository handles database operations for notification deliveries
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create records a dispatched notification
func (r *NotificationRepository) Create(delivery *models.NotificationDelivery) error {
	return r.db.Create(delivery).Error
}

// GetByOrganizationID retrieves deliveries for an organization with pagination
func (r *NotificationRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.NotificationDelivery, int64, error) {
	var rows []models.NotificationDelivery
	var total int64

	if err := r.db.Model(&models.NotificationDelivery{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
