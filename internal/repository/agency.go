package repository

import (
	"context"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const agencyColumns = "id, name, contact_name, contact_email, phone, website, created_at, updated_at"

func scanAgency(row pgx.CollectableRow) (tenant.Agency, error) {
	var a tenant.Agency
	err := row.Scan(&a.ID, &a.Name, &a.ContactName, &a.ContactEmail, &a.Phone, &a.Website, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// AgencyRepository handles tenant-schema operations for agencies
type AgencyRepository struct {
	gw *tenant.Gateway
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(gw *tenant.Gateway) *AgencyRepository {
	return &AgencyRepository{gw: gw}
}

// Create inserts an agency and returns the stored row
func (r *AgencyRepository) Create(ctx context.Context, schema string, a *tenant.Agency) (*tenant.Agency, error) {
	query := `
		INSERT INTO {{schema}}.agencies (name, contact_name, contact_email, phone, website)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + agencyColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.Name, a.ContactName, a.ContactEmail, a.Phone, a.Website}, scanAgency)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an agency by ID
func (r *AgencyRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM {{schema}}.agencies WHERE id = $1`
	a, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanAgency)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByName retrieves an agency by name
func (r *AgencyRepository) GetByName(ctx context.Context, schema, name string) (*tenant.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM {{schema}}.agencies WHERE name = $1`
	a, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{name}, scanAgency)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Search retrieves agencies matching the query with pagination
func (r *AgencyRepository) Search(ctx context.Context, schema, search string, limit, offset int) ([]tenant.Agency, int64, error) {
	pattern := "%" + search + "%"

	countRow, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.agencies WHERE name ILIKE $1`, pattern)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + agencyColumns + ` FROM {{schema}}.agencies
		WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{pattern, limit, offset}, scanAgency)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountAdvertisers returns how many advertisers reference the agency
func (r *AgencyRepository) CountAdvertisers(ctx context.Context, schema string, agencyID uuid.UUID) (int64, error) {
	row, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.advertisers WHERE agency_id = $1`, agencyID)
	if err != nil {
		return 0, err
	}
	var count int64
	err = row.Scan(&count)
	return count, err
}

// Update updates an agency and returns the stored row
func (r *AgencyRepository) Update(ctx context.Context, schema string, a *tenant.Agency) (*tenant.Agency, error) {
	query := `
		UPDATE {{schema}}.agencies
		SET name = $2, contact_name = $3, contact_email = $4, phone = $5, website = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + agencyColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{a.ID, a.Name, a.ContactName, a.ContactEmail, a.Phone, a.Website}, scanAgency)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes an agency
func (r *AgencyRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.agencies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
