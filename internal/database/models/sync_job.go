package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncJob tracks a background synchronization run for one organization.
// State is persisted so progress survives a process restart.
type SyncJob struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	Kind           string        `json:"kind" gorm:"not null;size:40;default:'youtube'"`
	Status         SyncJobStatus `json:"status" gorm:"size:20;default:'pending';index"`
	StartedAt      *time.Time    `json:"started_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	Processed      int           `json:"processed" gorm:"default:0"`
	Failed         int           `json:"failed" gorm:"default:0"`
	LastError      string        `json:"last_error,omitempty" gorm:"type:text"`
}

// TableName returns the table name for SyncJob
func (SyncJob) TableName() string {
	return "sync_jobs"
}
