package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DashboardResponse bundles the aggregates the overview dashboard renders
type DashboardResponse struct {
	RevenueByMonth []repository.MonthlyRevenue    `json:"revenue_by_month"`
	Pipeline       []repository.PipelineSlice     `json:"pipeline"`
	TopAdvertisers []repository.AdvertiserRevenue `json:"top_advertisers"`
	StatusCounts   []repository.StatusCount       `json:"status_counts"`
}

// RecordMetricRequest represents one day of campaign delivery to record
type RecordMetricRequest struct {
	MetricDate  time.Time `json:"metric_date" validate:"required"`
	Impressions int64     `json:"impressions" validate:"min=0"`
	Clicks      int64     `json:"clicks" validate:"min=0"`
	SpendCents  int64     `json:"spend_cents" validate:"min=0"`
}

// AnalyticsService aggregates tenant data for dashboards and CSV exports
type AnalyticsService struct {
	repo         repository.AnalyticsRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	validator    *validator.Validate
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.AnalyticsRepositoryInterface, campaignRepo repository.CampaignRepositoryInterface, validator *validator.Validate) *AnalyticsService {
	return &AnalyticsService{repo: repo, campaignRepo: campaignRepo, validator: validator}
}

// Dashboard assembles the overview aggregates for a date range
func (s *AnalyticsService) Dashboard(ctx context.Context, tn tenant.Tenant, from, to time.Time) (*DashboardResponse, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationError("to", "must be after from")
	}

	revenue, err := s.repo.RevenueByMonth(ctx, tn.Schema, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue by month: %w", err)
	}
	pipeline, err := s.repo.Pipeline(ctx, tn.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	top, err := s.repo.TopAdvertisers(ctx, tn.Schema, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to get top advertisers: %w", err)
	}
	counts, err := s.repo.CampaignStatusCounts(ctx, tn.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	return &DashboardResponse{
		RevenueByMonth: revenue,
		Pipeline:       pipeline,
		TopAdvertisers: top,
		StatusCounts:   counts,
	}, nil
}

// RecordMetric upserts one day of campaign delivery
func (s *AnalyticsService) RecordMetric(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, req *RecordMetricRequest) (*tenant.CampaignDailyMetric, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.campaignRepo.GetByID(ctx, tn.Schema, campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to check campaign: %w", err)
	}

	metric := &tenant.CampaignDailyMetric{
		CampaignID:  campaignID,
		MetricDate:  req.MetricDate,
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		SpendCents:  req.SpendCents,
	}
	stored, err := s.repo.UpsertDailyMetric(ctx, tn.Schema, metric)
	if err != nil {
		return nil, fmt.Errorf("failed to record metric: %w", err)
	}
	return stored, nil
}

// CampaignPerformance retrieves a campaign's daily delivery rows
func (s *AnalyticsService) CampaignPerformance(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, from, to time.Time) ([]tenant.CampaignDailyMetric, error) {
	if _, err := s.campaignRepo.GetByID(ctx, tn.Schema, campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to check campaign: %w", err)
	}
	return s.repo.DailyMetrics(ctx, tn.Schema, campaignID, from, to)
}

// ExportCampaignPerformanceCSV streams a campaign's daily metrics as CSV
func (s *AnalyticsService) ExportCampaignPerformanceCSV(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, from, to time.Time, w io.Writer) error {
	metrics, err := s.CampaignPerformance(ctx, tn, campaignID, from, to)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "impressions", "clicks", "spend_cents", "ctr"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, m := range metrics {
		ctr := 0.0
		if m.Impressions > 0 {
			ctr = float64(m.Clicks) / float64(m.Impressions)
		}
		record := []string{
			m.MetricDate.Format("2006-01-02"),
			strconv.FormatInt(m.Impressions, 10),
			strconv.FormatInt(m.Clicks, 10),
			strconv.FormatInt(m.SpendCents, 10),
			strconv.FormatFloat(ctr, 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
