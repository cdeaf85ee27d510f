package repository

import (
	"context"
	"time"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MonthlyRevenue is one month of billed revenue
type MonthlyRevenue struct {
	Month        time.Time `json:"month"`
	RevenueCents int64     `json:"revenue_cents"`
	InvoiceCount int64     `json:"invoice_count"`
}

// PipelineSlice is a probability bucket of the campaign pipeline
type PipelineSlice struct {
	Probability   int   `json:"probability"`
	CampaignCount int64 `json:"campaign_count"`
	BudgetCents   int64 `json:"budget_cents"`
	WeightedCents int64 `json:"weighted_cents"`
}

// AdvertiserRevenue ranks an advertiser by billed revenue
type AdvertiserRevenue struct {
	AdvertiserID   uuid.UUID `json:"advertiser_id"`
	AdvertiserName string    `json:"advertiser_name"`
	RevenueCents   int64     `json:"revenue_cents"`
	CampaignCount  int64     `json:"campaign_count"`
}

// StatusCount is a count of campaigns in one status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository aggregates tenant data for dashboards and exports. All
// reads use the degrading collect path so a freshly provisioned tenant sees
// empty dashboards instead of errors.
type AnalyticsRepository struct {
	gw *tenant.Gateway
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(gw *tenant.Gateway) *AnalyticsRepository {
	return &AnalyticsRepository{gw: gw}
}

// RevenueByMonth sums non-void invoice amounts per calendar month
func (r *AnalyticsRepository) RevenueByMonth(ctx context.Context, schema string, from, to time.Time) ([]MonthlyRevenue, error) {
	query := `
		SELECT date_trunc('month', issued_at) AS month,
		       COALESCE(SUM(amount_cents), 0),
		       count(*)
		FROM {{schema}}.invoices
		WHERE status <> $1 AND issued_at IS NOT NULL AND issued_at BETWEEN $2 AND $3
		GROUP BY 1 ORDER BY 1`
	return tenant.SafeCollect(ctx, r.gw, schema, query,
		[]any{tenant.InvoiceStatusVoid, from, to},
		func(row pgx.CollectableRow) (MonthlyRevenue, error) {
			var m MonthlyRevenue
			err := row.Scan(&m.Month, &m.RevenueCents, &m.InvoiceCount)
			return m, err
		})
}

// Pipeline buckets open campaigns by probability with budget and weighted value
func (r *AnalyticsRepository) Pipeline(ctx context.Context, schema string) ([]PipelineSlice, error) {
	query := `
		SELECT probability,
		       count(*),
		       COALESCE(SUM(budget_cents), 0),
		       COALESCE(SUM(budget_cents * probability / 100), 0)
		FROM {{schema}}.campaigns
		WHERE status IN ($1, $2)
		GROUP BY probability ORDER BY probability`
	return tenant.SafeCollect(ctx, r.gw, schema, query,
		[]any{tenant.CampaignStatusDraft, tenant.CampaignStatusActive},
		func(row pgx.CollectableRow) (PipelineSlice, error) {
			var p PipelineSlice
			err := row.Scan(&p.Probability, &p.CampaignCount, &p.BudgetCents, &p.WeightedCents)
			return p, err
		})
}

// TopAdvertisers ranks advertisers by billed revenue
func (r *AnalyticsRepository) TopAdvertisers(ctx context.Context, schema string, limit int) ([]AdvertiserRevenue, error) {
	query := `
		SELECT a.id, a.name,
		       COALESCE(SUM(i.amount_cents), 0),
		       count(DISTINCT c.id)
		FROM {{schema}}.advertisers a
		JOIN {{schema}}.campaigns c ON c.advertiser_id = a.id
		JOIN {{schema}}.invoices i ON i.campaign_id = c.id AND i.status <> $1
		GROUP BY a.id, a.name
		ORDER BY 3 DESC
		LIMIT $2`
	return tenant.SafeCollect(ctx, r.gw, schema, query,
		[]any{tenant.InvoiceStatusVoid, limit},
		func(row pgx.CollectableRow) (AdvertiserRevenue, error) {
			var a AdvertiserRevenue
			err := row.Scan(&a.AdvertiserID, &a.AdvertiserName, &a.RevenueCents, &a.CampaignCount)
			return a, err
		})
}

// CampaignStatusCounts counts campaigns per status
func (r *AnalyticsRepository) CampaignStatusCounts(ctx context.Context, schema string) ([]StatusCount, error) {
	query := `SELECT status, count(*) FROM {{schema}}.campaigns GROUP BY status ORDER BY status`
	return tenant.SafeCollect(ctx, r.gw, schema, query, nil,
		func(row pgx.CollectableRow) (StatusCount, error) {
			var s StatusCount
			err := row.Scan(&s.Status, &s.Count)
			return s, err
		})
}

func scanDailyMetric(row pgx.CollectableRow) (tenant.CampaignDailyMetric, error) {
	var m tenant.CampaignDailyMetric
	err := row.Scan(&m.ID, &m.CampaignID, &m.MetricDate, &m.Impressions, &m.Clicks, &m.SpendCents, &m.CreatedAt)
	return m, err
}

const dailyMetricColumns = "id, campaign_id, metric_date, impressions, clicks, spend_cents, created_at"

// UpsertDailyMetric records one day of campaign delivery, replacing any
// existing row for the same campaign and date
func (r *AnalyticsRepository) UpsertDailyMetric(ctx context.Context, schema string, m *tenant.CampaignDailyMetric) (*tenant.CampaignDailyMetric, error) {
	query := `
		INSERT INTO {{schema}}.campaign_daily_metrics (campaign_id, metric_date, impressions, clicks, spend_cents)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (campaign_id, metric_date)
		DO UPDATE SET impressions = EXCLUDED.impressions, clicks = EXCLUDED.clicks, spend_cents = EXCLUDED.spend_cents
		RETURNING ` + dailyMetricColumns
	stored, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{m.CampaignID, m.MetricDate, m.Impressions, m.Clicks, m.SpendCents}, scanDailyMetric)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// DailyMetrics retrieves a campaign's delivery rows within [from, to]
func (r *AnalyticsRepository) DailyMetrics(ctx context.Context, schema string, campaignID uuid.UUID, from, to time.Time) ([]tenant.CampaignDailyMetric, error) {
	query := `SELECT ` + dailyMetricColumns + ` FROM {{schema}}.campaign_daily_metrics
		WHERE campaign_id = $1 AND metric_date BETWEEN $2 AND $3 ORDER BY metric_date`
	return tenant.SafeCollect(ctx, r.gw, schema, query, []any{campaignID, from, to}, scanDailyMetric)
}
