package repository

import (
	"context"
	"time"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const revenueSharingColumns = "id, show_id, partner_name, percentage, effective_from, effective_to, created_at, updated_at"

func scanRevenueSharing(row pgx.CollectableRow) (tenant.RevenueSharingAgreement, error) {
	var a tenant.RevenueSharingAgreement
	err := row.Scan(&a.ID, &a.ShowID, &a.PartnerName, &a.Percentage, &a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// RevenueSharingRepository handles tenant-schema operations for revenue
// sharing agreements
type RevenueSharingRepository struct {
	gw *tenant.Gateway
}

// NewRevenueSharingRepository creates a new revenue sharing repository
func NewRevenueSharingRepository(gw *tenant.Gateway) *RevenueSharingRepository {
	return &RevenueSharingRepository{gw: gw}
}

// Create inserts an agreement and returns the stored row
func (r *RevenueSharingRepository) Create(ctx context.Context, schema string, a *tenant.RevenueSharingAgreement) (*tenant.RevenueSharingAgreement, error) {
	query := `
		INSERT INTO {{schema}}.revenue_sharing_agreements (show_id, partner_name, percentage, effective_from, effective_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + revenueSharingColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.ShowID, a.PartnerName, a.Percentage, a.EffectiveFrom, a.EffectiveTo}, scanRevenueSharing)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an agreement by ID
func (r *RevenueSharingRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.RevenueSharingAgreement, error) {
	query := `SELECT ` + revenueSharingColumns + ` FROM {{schema}}.revenue_sharing_agreements WHERE id = $1`
	a, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanRevenueSharing)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByShowID retrieves agreements for a show
func (r *RevenueSharingRepository) GetByShowID(ctx context.Context, schema string, showID uuid.UUID) ([]tenant.RevenueSharingAgreement, error) {
	query := `SELECT ` + revenueSharingColumns + ` FROM {{schema}}.revenue_sharing_agreements
		WHERE show_id = $1 ORDER BY effective_from`
	return tenant.Collect(ctx, r.gw, schema, query, []any{showID}, scanRevenueSharing)
}

// CountOverlapping counts agreements for the same show and partner whose
// period intersects [from, to], excluding excludeID
func (r *RevenueSharingRepository) CountOverlapping(ctx context.Context, schema string, showID uuid.UUID, partnerName string, from, to time.Time, excludeID uuid.UUID) (int64, error) {
	query := `
		SELECT count(*) FROM {{schema}}.revenue_sharing_agreements
		WHERE show_id = $1 AND partner_name = $2
		  AND effective_from <= $4 AND effective_to >= $3
		  AND id <> $5`
	row, err := r.gw.QueryRow(ctx, schema, query, showID, partnerName, from, to, excludeID)
	if err != nil {
		return 0, err
	}
	var count int64
	err = row.Scan(&count)
	return count, err
}

// Update updates an agreement and returns the stored row
func (r *RevenueSharingRepository) Update(ctx context.Context, schema string, a *tenant.RevenueSharingAgreement) (*tenant.RevenueSharingAgreement, error) {
	query := `
		UPDATE {{schema}}.revenue_sharing_agreements
		SET partner_name = $2, percentage = $3, effective_from = $4, effective_to = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + revenueSharingColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.ID, a.PartnerName, a.Percentage, a.EffectiveFrom, a.EffectiveTo}, scanRevenueSharing)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes an agreement
func (r *RevenueSharingRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.revenue_sharing_agreements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
