package service

import (
	"context"
	"errors"
	"time"

	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
)

const schedulerPageSize = 100

// YouTubeScheduler sweeps active organizations on an interval and runs a
// YouTube sync for each one
type YouTubeScheduler struct {
	orgs     repository.OrganizationRepositoryInterface
	resolver *tenant.Resolver
	sync     YouTubeSyncServiceInterface
	apiKey   string
	interval time.Duration
	log      *logger.Logger
}

// NewYouTubeScheduler creates a new scheduler
func NewYouTubeScheduler(orgs repository.OrganizationRepositoryInterface, resolver *tenant.Resolver, sync YouTubeSyncServiceInterface, cfg *config.Config, log *logger.Logger) *YouTubeScheduler {
	return &YouTubeScheduler{
		orgs:     orgs,
		resolver: resolver,
		sync:     sync,
		apiKey:   cfg.YouTubeAPIKey,
		interval: cfg.YouTubeSyncDuration(),
		log:      log.WithField("component", "YouTubeScheduler"),
	}
}

// Run sweeps until the context is cancelled
func (s *YouTubeScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.WithField("interval", s.interval.String()).Info("youtube sync scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("youtube sync scheduler stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one sync pass over every active organization. Without an API key
// no sync can succeed, so the sweep is skipped before any job row is written.
func (s *YouTubeScheduler) Sweep(ctx context.Context) {
	if s.apiKey == "" {
		s.log.Debug("youtube API key not configured, skipping sweep")
		return
	}

	for offset := 0; ; offset += schedulerPageSize {
		orgs, _, err := s.orgs.GetAll(schedulerPageSize, offset)
		if err != nil {
			s.log.WithError(err).Error("failed to list organizations for sync sweep")
			return
		}
		if len(orgs) == 0 {
			return
		}

		for _, org := range orgs {
			if org.Status != models.OrganizationStatusActive {
				continue
			}
			s.syncOrganization(ctx, org.ID)
		}

		if len(orgs) < schedulerPageSize {
			return
		}
	}
}

func (s *YouTubeScheduler) syncOrganization(ctx context.Context, orgID uuid.UUID) {
	tn, err := s.resolver.Resolve(orgID)
	if err != nil {
		s.log.WithError(err).WithField("organization_id", orgID).Warn("failed to resolve tenant for sync")
		return
	}

	job, err := s.sync.Start(ctx, *tn)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSyncAlreadyRunning):
			s.log.WithField("organization_id", orgID).Debug("sync already running, skipping")
		default:
			s.log.WithError(err).WithField("organization_id", orgID).Warn("failed to start sync job")
		}
		return
	}

	if err := s.sync.Run(ctx, *tn, job.ID); err != nil {
		s.log.WithError(err).WithField("job_id", job.ID).Error("scheduled sync failed")
	}
}
