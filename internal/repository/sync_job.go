package repository

import (
	"time"

	"podcastflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncJobRepository handles database operations for background sync jobs
type SyncJobRepository struct {
	db *gorm.DB
}

// NewSyncJobRepository creates a new sync job repository
func NewSyncJobRepository(db *gorm.DB) *SyncJobRepository {
	return &SyncJobRepository{db: db}
}

// Create creates a new sync job
func (r *SyncJobRepository) Create(job *models.SyncJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a sync job by ID
func (r *SyncJobRepository) GetByID(id uuid.UUID) (*models.SyncJob, error) {
	var job models.SyncJob
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetRunning returns the running job for an organization and kind, if any
func (r *SyncJobRepository) GetRunning(orgID uuid.UUID, kind string) (*models.SyncJob, error) {
	var job models.SyncJob
	err := r.db.First(&job, "organization_id = ? AND kind = ? AND status IN ?",
		orgID, kind, []models.SyncJobStatus{models.SyncJobStatusPending, models.SyncJobStatusRunning}).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByOrganizationID retrieves sync jobs for an organization with pagination
func (r *SyncJobRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.SyncJob, int64, error) {
	var jobs []models.SyncJob
	var total int64

	if err := r.db.Model(&models.SyncJob{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// MarkRunning transitions a job to running
func (r *SyncJobRepository) MarkRunning(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.SyncJob{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.SyncJobStatusRunning,
		"started_at": now,
	}).Error
}

// MarkCompleted transitions a job to a terminal state with its counters
func (r *SyncJobRepository) MarkCompleted(id uuid.UUID, processed, failed int, lastError string) error {
	now := time.Now()
	status := models.SyncJobStatusCompleted
	if lastError != "" {
		status = models.SyncJobStatusFailed
	}
	return r.db.Model(&models.SyncJob{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": now,
		"processed":    processed,
		"failed":       failed,
		"last_error":   lastError,
	}).Error
}
