package repository

import (
	"context"
	"time"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const episodeColumns = "id, show_id, number, title, air_date, youtube_video_id, youtube_views, youtube_likes, youtube_comments, youtube_synced_at, created_at, updated_at"

func scanEpisode(row pgx.CollectableRow) (tenant.Episode, error) {
	var e tenant.Episode
	err := row.Scan(&e.ID, &e.ShowID, &e.Number, &e.Title, &e.AirDate,
		&e.YouTubeVideoID, &e.YouTubeViews, &e.YouTubeLikes, &e.YouTubeComments,
		&e.YouTubeSyncedAt, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// EpisodeRepository handles tenant-schema operations for episodes
type EpisodeRepository struct {
	gw *tenant.Gateway
}

// NewEpisodeRepository creates a new episode repository
func NewEpisodeRepository(gw *tenant.Gateway) *EpisodeRepository {
	return &EpisodeRepository{gw: gw}
}

// Create inserts an episode and returns the stored row
func (r *EpisodeRepository) Create(ctx context.Context, schema string, e *tenant.Episode) (*tenant.Episode, error) {
	query := `
		INSERT INTO {{schema}}.episodes (show_id, number, title, air_date, youtube_video_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + episodeColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{e.ShowID, e.Number, e.Title, e.AirDate, e.YouTubeVideoID}, scanEpisode)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an episode by ID
func (r *EpisodeRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM {{schema}}.episodes WHERE id = $1`
	e, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanEpisode)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByShowID retrieves episodes of a show with pagination
func (r *EpisodeRepository) GetByShowID(ctx context.Context, schema string, showID uuid.UUID, limit, offset int) ([]tenant.Episode, int64, error) {
	countRow, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.episodes WHERE show_id = $1`, showID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + episodeColumns + ` FROM {{schema}}.episodes
		WHERE show_id = $1 ORDER BY number DESC LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{showID, limit, offset}, scanEpisode)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByShowAndNumber retrieves an episode by its number within a show
func (r *EpisodeRepository) GetByShowAndNumber(ctx context.Context, schema string, showID uuid.UUID, number int) (*tenant.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM {{schema}}.episodes WHERE show_id = $1 AND number = $2`
	e, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{showID, number}, scanEpisode)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetInDateRange retrieves episodes of a show airing within [from, to]
func (r *EpisodeRepository) GetInDateRange(ctx context.Context, schema string, showID uuid.UUID, from, to time.Time) ([]tenant.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM {{schema}}.episodes
		WHERE show_id = $1 AND air_date BETWEEN $2 AND $3 ORDER BY air_date`
	return tenant.Collect(ctx, r.gw, schema, query, []any{showID, from, to}, scanEpisode)
}

// GetWithVideoIDs retrieves episodes carrying a YouTube video ID
func (r *EpisodeRepository) GetWithVideoIDs(ctx context.Context, schema string) ([]tenant.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM {{schema}}.episodes
		WHERE youtube_video_id <> '' ORDER BY show_id, number`
	// Safe variant: a tenant provisioned without content yet should sync as empty, not fail.
	return tenant.SafeCollect(ctx, r.gw, schema, query, nil, scanEpisode)
}

// Update updates an episode and returns the stored row
func (r *EpisodeRepository) Update(ctx context.Context, schema string, e *tenant.Episode) (*tenant.Episode, error) {
	query := `
		UPDATE {{schema}}.episodes
		SET number = $2, title = $3, air_date = $4, youtube_video_id = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + episodeColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{e.ID, e.Number, e.Title, e.AirDate, e.YouTubeVideoID}, scanEpisode)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateYouTubeStats writes fresh video statistics onto an episode
func (r *EpisodeRepository) UpdateYouTubeStats(ctx context.Context, schema string, id uuid.UUID, views, likes, comments int64) error {
	query := `
		UPDATE {{schema}}.episodes
		SET youtube_views = $2, youtube_likes = $3, youtube_comments = $4, youtube_synced_at = now(), updated_at = now()
		WHERE id = $1`
	tag, err := r.gw.Exec(ctx, schema, query, id, views, likes, comments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete deletes an episode
func (r *EpisodeRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema, `DELETE FROM {{schema}}.episodes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
