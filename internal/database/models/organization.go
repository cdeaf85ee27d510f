package models

import (
	"encoding/json"
)

// Organization represents the root entity for multi-tenancy. Tenant-scoped
// tables for an organization live in the Postgres schema named by SchemaName.
type Organization struct {
	BaseModel
	Name         string             `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Slug         string             `json:"slug" gorm:"uniqueIndex;not null;size:63" validate:"required,min=2,max=63"`
	BillingEmail string             `json:"billing_email" gorm:"size:200" validate:"omitempty,email"`
	Plan         string             `json:"plan" gorm:"size:40;default:'standard'"`
	Status       OrganizationStatus `json:"status" gorm:"size:20;default:'active'"`
	Metadata     json.RawMessage    `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// SchemaName returns the Postgres schema holding this organization's tenant tables
func (o *Organization) SchemaName() string {
	return "org_" + o.Slug
}
