package repository

import (
	"context"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const campaignColumns = "id, advertiser_id, name, status, budget_cents, probability, start_date, end_date, created_at, updated_at"

func scanCampaign(row pgx.CollectableRow) (tenant.Campaign, error) {
	var c tenant.Campaign
	err := row.Scan(&c.ID, &c.AdvertiserID, &c.Name, &c.Status, &c.BudgetCents, &c.Probability, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CampaignRepository handles tenant-schema operations for campaigns
type CampaignRepository struct {
	gw *tenant.Gateway
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(gw *tenant.Gateway) *CampaignRepository {
	return &CampaignRepository{gw: gw}
}

// Create inserts a campaign and returns the stored row
func (r *CampaignRepository) Create(ctx context.Context, schema string, c *tenant.Campaign) (*tenant.Campaign, error) {
	query := `
		INSERT INTO {{schema}}.campaigns (advertiser_id, name, status, budget_cents, probability, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + campaignColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{c.AdvertiserID, c.Name, c.Status, c.BudgetCents, c.Probability, c.StartDate, c.EndDate}, scanCampaign)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM {{schema}}.campaigns WHERE id = $1`
	c, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanCampaign)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByAdvertiserAndName retrieves a campaign by name within an advertiser
func (r *CampaignRepository) GetByAdvertiserAndName(ctx context.Context, schema string, advertiserID uuid.UUID, name string) (*tenant.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM {{schema}}.campaigns WHERE advertiser_id = $1 AND name = $2`
	c, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{advertiserID, name}, scanCampaign)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves campaigns with optional status filter and pagination
func (r *CampaignRepository) GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Campaign, int64, error) {
	countQuery := `SELECT count(*) FROM {{schema}}.campaigns WHERE ($1 = '' OR status = $1)`
	countRow, err := r.gw.QueryRow(ctx, schema, countQuery, status)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + campaignColumns + ` FROM {{schema}}.campaigns
		WHERE ($1 = '' OR status = $1)
		ORDER BY start_date DESC LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{status, limit, offset}, scanCampaign)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByAdvertiserID retrieves campaigns for an advertiser
func (r *CampaignRepository) GetByAdvertiserID(ctx context.Context, schema string, advertiserID uuid.UUID) ([]tenant.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM {{schema}}.campaigns
		WHERE advertiser_id = $1 ORDER BY start_date DESC`
	return tenant.Collect(ctx, r.gw, schema, query, []any{advertiserID}, scanCampaign)
}

// Update updates a campaign and returns the stored row
func (r *CampaignRepository) Update(ctx context.Context, schema string, c *tenant.Campaign) (*tenant.Campaign, error) {
	query := `
		UPDATE {{schema}}.campaigns
		SET name = $2, status = $3, budget_cents = $4, probability = $5, start_date = $6, end_date = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + campaignColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{c.ID, c.Name, c.Status, c.BudgetCents, c.Probability, c.StartDate, c.EndDate}, scanCampaign)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
