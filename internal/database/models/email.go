package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EmailQueue is a durable outbound email awaiting delivery. Rows are claimed
// by the queue worker with FOR UPDATE SKIP LOCKED, so multiple workers can
// poll the same table safely.
type EmailQueue struct {
	BaseModel
	OrganizationID    *uuid.UUID  `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Recipient         string      `json:"recipient" gorm:"not null;size:200" validate:"required,email"`
	Subject           string      `json:"subject" gorm:"not null;size:500"`
	HTMLBody          string      `json:"html_body" gorm:"type:text"`
	TextBody          string      `json:"text_body" gorm:"type:text"`
	TemplateKey       string      `json:"template_key" gorm:"size:100;index"`
	Status            EmailStatus `json:"status" gorm:"size:20;default:'pending';index:idx_email_queue_due"`
	Attempts          int         `json:"attempts" gorm:"default:0"`
	MaxAttempts       int         `json:"max_attempts" gorm:"default:3"`
	LastError         string      `json:"last_error,omitempty" gorm:"type:text"`
	ScheduledFor      time.Time   `json:"scheduled_for" gorm:"not null;index:idx_email_queue_due"`
	SentAt            *time.Time  `json:"sent_at,omitempty"`
	ProviderMessageID string      `json:"provider_message_id,omitempty" gorm:"size:200"`
}

// TableName returns the table name for EmailQueue
func (EmailQueue) TableName() string {
	return "email_queue"
}

// EmailLog records a successfully delivered email
type EmailLog struct {
	BaseModel
	QueueID           uuid.UUID  `json:"queue_id" gorm:"type:uuid;not null;index"`
	OrganizationID    *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Recipient         string     `json:"recipient" gorm:"not null;size:200"`
	Subject           string     `json:"subject" gorm:"size:500"`
	TemplateKey       string     `json:"template_key" gorm:"size:100"`
	ProviderMessageID string     `json:"provider_message_id" gorm:"size:200"`
	SentAt            time.Time  `json:"sent_at" gorm:"not null"`
}

// TableName returns the table name for EmailLog
func (EmailLog) TableName() string {
	return "email_logs"
}

// EmailTemplate holds a renderable template. A nil OrganizationID marks the
// system default; an organization row with the same key overrides it.
type EmailTemplate struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_email_templates_org_key"`
	Key            string     `json:"key" gorm:"not null;size:100;uniqueIndex:idx_email_templates_org_key" validate:"required,max=100"`
	Subject        string     `json:"subject" gorm:"not null;size:500" validate:"required,max=500"`
	HTMLBody       string     `json:"html_body" gorm:"type:text" validate:"required"`
	TextBody       string     `json:"text_body" gorm:"type:text"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for EmailTemplate
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// NotificationDelivery links a dispatched event to the queue rows it produced
type NotificationDelivery struct {
	BaseModel
	OrganizationID uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index"`
	Event          NotificationEvent `json:"event" gorm:"not null;size:60;index"`
	Recipients     json.RawMessage   `json:"recipients" gorm:"type:jsonb"`
	QueueIDs       json.RawMessage   `json:"queue_ids" gorm:"type:jsonb"`
	TemplateKey    string            `json:"template_key" gorm:"size:100"`
}

// TableName returns the table name for NotificationDelivery
func (NotificationDelivery) TableName() string {
	return "notification_deliveries"
}
