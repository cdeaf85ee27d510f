package models

import (
	"time"

	"github.com/google/uuid"
)

// MasterInvoice is a platform-level billing invoice issued to an organization
// for its subscription period. Tenant-level campaign invoices live in the
// per-organization schemas instead.
type MasterInvoice struct {
	BaseModel
	OrganizationID uuid.UUID           `json:"organization_id" gorm:"type:uuid;not null;index"`
	Number         string              `json:"number" gorm:"uniqueIndex;not null;size:40"`
	PeriodStart    time.Time           `json:"period_start" gorm:"not null"`
	PeriodEnd      time.Time           `json:"period_end" gorm:"not null"`
	AmountCents    int64               `json:"amount_cents" gorm:"not null"`
	Currency       string              `json:"currency" gorm:"size:3;default:'USD'"`
	Status         MasterInvoiceStatus `json:"status" gorm:"size:20;default:'draft'"`
	IssuedAt       *time.Time          `json:"issued_at,omitempty"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for MasterInvoice
func (MasterInvoice) TableName() string {
	return "master_invoices"
}
