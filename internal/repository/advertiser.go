package repository

import (
	"context"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const advertiserColumns = "id, agency_id, name, contact_name, contact_email, phone, industry, created_at, updated_at"

func scanAdvertiser(row pgx.CollectableRow) (tenant.Advertiser, error) {
	var a tenant.Advertiser
	err := row.Scan(&a.ID, &a.AgencyID, &a.Name, &a.ContactName, &a.ContactEmail, &a.Phone, &a.Industry, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// AdvertiserRepository handles tenant-schema operations for advertisers
type AdvertiserRepository struct {
	gw *tenant.Gateway
}

// NewAdvertiserRepository creates a new advertiser repository
func NewAdvertiserRepository(gw *tenant.Gateway) *AdvertiserRepository {
	return &AdvertiserRepository{gw: gw}
}

// Create inserts an advertiser and returns the stored row
func (r *AdvertiserRepository) Create(ctx context.Context, schema string, a *tenant.Advertiser) (*tenant.Advertiser, error) {
	query := `
		INSERT INTO {{schema}}.advertisers (agency_id, name, contact_name, contact_email, phone, industry)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + advertiserColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.AgencyID, a.Name, a.ContactName, a.ContactEmail, a.Phone, a.Industry}, scanAdvertiser)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an advertiser by ID
func (r *AdvertiserRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Advertiser, error) {
	query := `SELECT ` + advertiserColumns + ` FROM {{schema}}.advertisers WHERE id = $1`
	a, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanAdvertiser)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByName retrieves an advertiser by name
func (r *AdvertiserRepository) GetByName(ctx context.Context, schema, name string) (*tenant.Advertiser, error) {
	query := `SELECT ` + advertiserColumns + ` FROM {{schema}}.advertisers WHERE name = $1`
	a, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{name}, scanAdvertiser)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Search retrieves advertisers matching the query with pagination
func (r *AdvertiserRepository) Search(ctx context.Context, schema, search string, limit, offset int) ([]tenant.Advertiser, int64, error) {
	pattern := "%" + search + "%"

	countRow, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.advertisers WHERE name ILIKE $1 OR industry ILIKE $1`, pattern)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + advertiserColumns + ` FROM {{schema}}.advertisers
		WHERE name ILIKE $1 OR industry ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{pattern, limit, offset}, scanAdvertiser)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByAgencyID retrieves advertisers for an agency
func (r *AdvertiserRepository) GetByAgencyID(ctx context.Context, schema string, agencyID uuid.UUID) ([]tenant.Advertiser, error) {
	query := `SELECT ` + advertiserColumns + ` FROM {{schema}}.advertisers WHERE agency_id = $1 ORDER BY name`
	return tenant.Collect(ctx, r.gw, schema, query, []any{agencyID}, scanAdvertiser)
}

// Update updates an advertiser and returns the stored row
func (r *AdvertiserRepository) Update(ctx context.Context, schema string, a *tenant.Advertiser) (*tenant.Advertiser, error) {
	query := `
		UPDATE {{schema}}.advertisers
		SET agency_id = $2, name = $3, contact_name = $4, contact_email = $5, phone = $6, industry = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + advertiserColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.ID, a.AgencyID, a.Name, a.ContactName, a.ContactEmail, a.Phone, a.Industry}, scanAdvertiser)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes an advertiser
func (r *AdvertiserRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.advertisers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
