package service

import (
	"context"
	"errors"
	"fmt"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncKindYouTube is the job kind written for YouTube statistics syncs
const syncKindYouTube = "youtube"

// YouTubeSyncService walks a tenant's episodes that carry video IDs, fetches
// fresh statistics and writes them back. Every run is recorded as a durable
// SyncJob row so operators can see history and failures.
type YouTubeSyncService struct {
	jobs        repository.SyncJobRepositoryInterface
	episodeRepo repository.EpisodeRepositoryInterface
	youtube     YouTubeStatsFetcherInterface
	dispatcher  NotificationDispatcherInterface
	log         *logger.Logger
}

// NewYouTubeSyncService creates a new YouTube sync service
func NewYouTubeSyncService(
	jobs repository.SyncJobRepositoryInterface,
	episodeRepo repository.EpisodeRepositoryInterface,
	youtube YouTubeStatsFetcherInterface,
	dispatcher NotificationDispatcherInterface,
	log *logger.Logger,
) *YouTubeSyncService {
	return &YouTubeSyncService{
		jobs:        jobs,
		episodeRepo: episodeRepo,
		youtube:     youtube,
		dispatcher:  dispatcher,
		log:         log.WithField("component", "YouTubeSyncService"),
	}
}

// Start begins a sync for an organization. Only one sync per organization may
// run at a time.
func (s *YouTubeSyncService) Start(ctx context.Context, tn tenant.Tenant) (*models.SyncJob, error) {
	running, err := s.jobs.GetRunning(tn.OrganizationID, syncKindYouTube)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check running jobs: %w", err)
	}
	if running != nil {
		return nil, apperrors.ErrSyncAlreadyRunning
	}

	job := &models.SyncJob{
		OrganizationID: tn.OrganizationID,
		Kind:           syncKindYouTube,
		Status:         models.SyncJobStatusPending,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create sync job: %w", err)
	}
	return job, nil
}

// Run executes a pending sync job to completion. It is called by the
// background worker, not the request path.
func (s *YouTubeSyncService) Run(ctx context.Context, tn tenant.Tenant, jobID uuid.UUID) error {
	if err := s.jobs.MarkRunning(jobID); err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}

	processed, failed, runErr := s.sync(ctx, tn)

	lastError := ""
	if runErr != nil {
		lastError = runErr.Error()
	}
	if err := s.jobs.MarkCompleted(jobID, processed, failed, lastError); err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}

	if err := s.dispatcher.Dispatch(tn.OrganizationID, models.EventYouTubeSyncCompleted, map[string]any{
		"processed": processed,
		"failed":    failed,
	}); err != nil {
		s.log.WithError(err).WithField("job_id", jobID).Warn("failed to dispatch sync notification")
	}

	return runErr
}

func (s *YouTubeSyncService) sync(ctx context.Context, tn tenant.Tenant) (processed, failed int, err error) {
	episodes, err := s.episodeRepo.GetWithVideoIDs(ctx, tn.Schema)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list episodes: %w", err)
	}
	if len(episodes) == 0 {
		return 0, 0, nil
	}

	videoIDs := make([]string, len(episodes))
	for i, ep := range episodes {
		videoIDs[i] = ep.YouTubeVideoID
	}

	stats, err := s.youtube.GetVideoStats(ctx, videoIDs)
	if err != nil {
		return 0, 0, err
	}

	for _, ep := range episodes {
		st, ok := stats[ep.YouTubeVideoID]
		if !ok {
			failed++
			s.log.WithFields(map[string]interface{}{
				"episode_id": ep.ID,
				"video_id":   ep.YouTubeVideoID,
			}).Warn("video not found in API response")
			continue
		}
		if err := s.episodeRepo.UpdateYouTubeStats(ctx, tn.Schema, ep.ID, st.Views, st.Likes, st.Comments); err != nil {
			failed++
			s.log.WithError(err).WithField("episode_id", ep.ID).Warn("failed to update episode stats")
			continue
		}
		processed++
	}
	return processed, failed, nil
}

// GetJob retrieves a sync job by ID
func (s *YouTubeSyncService) GetJob(id uuid.UUID) (*models.SyncJob, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSyncJobNotFound
		}
		return nil, fmt.Errorf("failed to get sync job: %w", err)
	}
	return job, nil
}

// GetJobs retrieves an organization's sync jobs with pagination
func (s *YouTubeSyncService) GetJobs(orgID uuid.UUID, page, pageSize int) ([]models.SyncJob, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.jobs.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
}
