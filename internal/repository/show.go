package repository

import (
	"context"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const showColumns = "id, name, description, release_cadence, preroll_slots, midroll_slots, postroll_slots, is_active, created_at, updated_at"

func scanShow(row pgx.CollectableRow) (tenant.Show, error) {
	var s tenant.Show
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.ReleaseCadence,
		&s.PrerollSlots, &s.MidrollSlots, &s.PostrollSlots, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ShowRepository handles tenant-schema operations for shows
type ShowRepository struct {
	gw *tenant.Gateway
}

// NewShowRepository creates a new show repository
func NewShowRepository(gw *tenant.Gateway) *ShowRepository {
	return &ShowRepository{gw: gw}
}

// Create inserts a show and returns the stored row
func (r *ShowRepository) Create(ctx context.Context, schema string, s *tenant.Show) (*tenant.Show, error) {
	query := `
		INSERT INTO {{schema}}.shows (name, description, release_cadence, preroll_slots, midroll_slots, postroll_slots, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + showColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{s.Name, s.Description, s.ReleaseCadence, s.PrerollSlots, s.MidrollSlots, s.PostrollSlots, s.IsActive}, scanShow)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a show by ID
func (r *ShowRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Show, error) {
	query := `SELECT ` + showColumns + ` FROM {{schema}}.shows WHERE id = $1`
	s, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanShow)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByName retrieves a show by name
func (r *ShowRepository) GetByName(ctx context.Context, schema, name string) (*tenant.Show, error) {
	query := `SELECT ` + showColumns + ` FROM {{schema}}.shows WHERE name = $1`
	s, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{name}, scanShow)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves shows with pagination
func (r *ShowRepository) GetAll(ctx context.Context, schema string, limit, offset int) ([]tenant.Show, int64, error) {
	countRow, err := r.gw.QueryRow(ctx, schema, `SELECT count(*) FROM {{schema}}.shows`)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + showColumns + ` FROM {{schema}}.shows ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{limit, offset}, scanShow)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountOrders returns the number of orders holding inventory on the show
func (r *ShowRepository) CountOrders(ctx context.Context, schema string, showID uuid.UUID) (int64, error) {
	query := `
		SELECT count(DISTINCT oi.order_id)
		FROM {{schema}}.order_items oi
		JOIN {{schema}}.episodes e ON e.id = oi.episode_id
		WHERE e.show_id = $1`
	row, err := r.gw.QueryRow(ctx, schema, query, showID)
	if err != nil {
		return 0, err
	}
	var count int64
	err = row.Scan(&count)
	return count, err
}

// Update updates a show and returns the stored row
func (r *ShowRepository) Update(ctx context.Context, schema string, s *tenant.Show) (*tenant.Show, error) {
	query := `
		UPDATE {{schema}}.shows
		SET name = $2, description = $3, release_cadence = $4, preroll_slots = $5,
		    midroll_slots = $6, postroll_slots = $7, is_active = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + showColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{s.ID, s.Name, s.Description, s.ReleaseCadence, s.PrerollSlots, s.MidrollSlots, s.PostrollSlots, s.IsActive}, scanShow)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a show
func (r *ShowRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.shows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
