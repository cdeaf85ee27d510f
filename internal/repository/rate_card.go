package repository

import (
	"context"
	"time"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rateCardColumns = "id, show_id, placement, rate_cents, effective_from, effective_to, created_at, updated_at"

func scanRateCard(row pgx.CollectableRow) (tenant.RateCard, error) {
	var rc tenant.RateCard
	err := row.Scan(&rc.ID, &rc.ShowID, &rc.Placement, &rc.RateCents, &rc.EffectiveFrom, &rc.EffectiveTo, &rc.CreatedAt, &rc.UpdatedAt)
	return rc, err
}

// RateCardRepository handles tenant-schema operations for rate cards
type RateCardRepository struct {
	gw *tenant.Gateway
}

// NewRateCardRepository creates a new rate card repository
func NewRateCardRepository(gw *tenant.Gateway) *RateCardRepository {
	return &RateCardRepository{gw: gw}
}

// Create inserts a rate card and returns the stored row
func (r *RateCardRepository) Create(ctx context.Context, schema string, rc *tenant.RateCard) (*tenant.RateCard, error) {
	query := `
		INSERT INTO {{schema}}.rate_cards (show_id, placement, rate_cents, effective_from, effective_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rateCardColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{rc.ShowID, rc.Placement, rc.RateCents, rc.EffectiveFrom, rc.EffectiveTo}, scanRateCard)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a rate card by ID
func (r *RateCardRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.RateCard, error) {
	query := `SELECT ` + rateCardColumns + ` FROM {{schema}}.rate_cards WHERE id = $1`
	rc, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanRateCard)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// GetByShowID retrieves all rate cards for a show
func (r *RateCardRepository) GetByShowID(ctx context.Context, schema string, showID uuid.UUID) ([]tenant.RateCard, error) {
	query := `SELECT ` + rateCardColumns + ` FROM {{schema}}.rate_cards
		WHERE show_id = $1 ORDER BY placement, effective_from`
	return tenant.Collect(ctx, r.gw, schema, query, []any{showID}, scanRateCard)
}

// CountOverlapping counts rate cards for the same show and placement whose
// effective period intersects [from, to], excluding excludeID (uuid.Nil to
// exclude nothing)
func (r *RateCardRepository) CountOverlapping(ctx context.Context, schema string, showID uuid.UUID, placement string, from, to time.Time, excludeID uuid.UUID) (int64, error) {
	query := `
		SELECT count(*) FROM {{schema}}.rate_cards
		WHERE show_id = $1 AND placement = $2
		  AND effective_from <= $4 AND effective_to >= $3
		  AND id <> $5`
	row, err := r.gw.QueryRow(ctx, schema, query, showID, placement, from, to, excludeID)
	if err != nil {
		return 0, err
	}
	var count int64
	err = row.Scan(&count)
	return count, err
}

// EffectiveRate returns the rate card covering a placement on a date
func (r *RateCardRepository) EffectiveRate(ctx context.Context, schema string, showID uuid.UUID, placement string, on time.Time) (*tenant.RateCard, error) {
	query := `SELECT ` + rateCardColumns + ` FROM {{schema}}.rate_cards
		WHERE show_id = $1 AND placement = $2 AND effective_from <= $3 AND effective_to >= $3
		ORDER BY effective_from DESC LIMIT 1`
	rc, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{showID, placement, on}, scanRateCard)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// Update updates a rate card and returns the stored row
func (r *RateCardRepository) Update(ctx context.Context, schema string, rc *tenant.RateCard) (*tenant.RateCard, error) {
	query := `
		UPDATE {{schema}}.rate_cards
		SET placement = $2, rate_cents = $3, effective_from = $4, effective_to = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + rateCardColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{rc.ID, rc.Placement, rc.RateCents, rc.EffectiveFrom, rc.EffectiveTo}, scanRateCard)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a rate card
func (r *RateCardRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.rate_cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
