package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform user scoped to an organization
type User struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	FullName       string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PasswordHash   string     `json:"-" gorm:"not null;size:100"`
	Role           UserRole   `json:"role" gorm:"not null;size:20" validate:"required"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
