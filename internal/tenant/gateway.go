package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
)

// schemaPlaceholder marks the spots in tenant SQL where the sanitized schema
// identifier is substituted. Values never travel this path; they are always
// bound parameters.
const schemaPlaceholder = "{{schema}}"

// Gateway issues parameterized SQL against a dynamically selected tenant
// schema. The schema name is validated and quoted before it is ever placed in
// identifier position, so callers cannot smuggle SQL through it.
type Gateway struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewGateway creates a new schema query gateway
func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{
		pool: pool,
		log:  logger.New().WithField("component", "tenant.Gateway"),
	}
}

// Pool exposes the underlying connection pool for transaction management
func (g *Gateway) Pool() *pgxpool.Pool {
	return g.pool
}

// Expand validates the schema name and substitutes it into the query text
func (g *Gateway) Expand(schema, query string) (string, error) {
	if !ValidSchemaName(schema) {
		return "", apperrors.ErrTenantSchemaNotFound
	}
	return strings.ReplaceAll(query, schemaPlaceholder, pgx.Identifier{schema}.Sanitize()), nil
}

// Query runs a tenant-scoped query and returns the raw rows
func (g *Gateway) Query(ctx context.Context, schema, query string, args ...any) (pgx.Rows, error) {
	expanded, err := g.Expand(schema, query)
	if err != nil {
		return nil, err
	}
	return g.pool.Query(ctx, expanded, args...)
}

// QueryRow runs a tenant-scoped query expected to return a single row
func (g *Gateway) QueryRow(ctx context.Context, schema, query string, args ...any) (pgx.Row, error) {
	expanded, err := g.Expand(schema, query)
	if err != nil {
		return nil, err
	}
	return g.pool.QueryRow(ctx, expanded, args...), nil
}

// Exec runs a tenant-scoped statement
func (g *Gateway) Exec(ctx context.Context, schema, query string, args ...any) (pgconn.CommandTag, error) {
	expanded, err := g.Expand(schema, query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return g.pool.Exec(ctx, expanded, args...)
}

// WithTx runs fn inside a transaction on the gateway's pool. fn should use
// ExpandTx helpers for tenant-scoped statements.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Collect runs a tenant-scoped query and maps every row through fn
func Collect[T any](ctx context.Context, g *Gateway, schema, query string, args []any, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := g.Query(ctx, schema, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fn)
}

// CollectOne runs a tenant-scoped query expected to return exactly one row
func CollectOne[T any](ctx context.Context, g *Gateway, schema, query string, args []any, fn pgx.RowToFunc[T]) (T, error) {
	var zero T
	rows, err := g.Query(ctx, schema, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, fn)
}

// SafeCollect is the degrading variant of Collect: when the failure is a
// missing tenant schema or table it logs a warning and returns an empty
// result instead of an error, so read paths render empty dashboards rather
// than 500s for half-provisioned tenants. All other errors propagate.
func SafeCollect[T any](ctx context.Context, g *Gateway, schema, query string, args []any, fn pgx.RowToFunc[T]) ([]T, error) {
	out, err := Collect(ctx, g, schema, query, args, fn)
	if err != nil {
		if IsMissingTenantRelation(err) {
			g.log.WithField("schema", schema).WithError(err).Warn("tenant relation missing, returning empty result")
			return []T{}, nil
		}
		return nil, err
	}
	return out, nil
}

// IsMissingTenantRelation reports whether err means the tenant schema or one
// of its tables does not exist (SQLSTATE 3F000 / 42P01)
func IsMissingTenantRelation(err error) bool {
	if errors.Is(err, apperrors.ErrTenantSchemaNotFound) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "3F000" || pgErr.Code == "42P01"
}
