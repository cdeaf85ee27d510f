package tenant

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"podcastflow-backend/internal/tenant/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
)

const schemaPrefix = "org_"

// migrationsTable keeps tenant migration bookkeeping out of the public
// schema_migrations table GORM-adjacent tooling might expect.
const migrationsTable = "tenant_schema_migrations"

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,58}$`)

// ValidSlug reports whether slug may be used to derive a tenant schema name
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// SchemaFor returns the schema name for an organization slug
func SchemaFor(slug string) (string, error) {
	if !ValidSlug(slug) {
		return "", apperrors.ErrInvalidSlug
	}
	return schemaPrefix + slug, nil
}

// ValidSchemaName reports whether name is a well-formed tenant schema name.
// Everything that reaches SQL identifier position must pass this first.
func ValidSchemaName(name string) bool {
	if len(name) <= len(schemaPrefix) || len(name) > 63 {
		return false
	}
	return name[:len(schemaPrefix)] == schemaPrefix && ValidSlug(name[len(schemaPrefix):])
}

// Manager provisions and removes per-organization schemas
type Manager struct {
	pool    *pgxpool.Pool
	baseDSN string
	log     *logger.Logger
}

// NewManager creates a new schema manager
func NewManager(pool *pgxpool.Pool, databaseURL string) *Manager {
	return &Manager{
		pool:    pool,
		baseDSN: databaseURL,
		log:     logger.New().WithField("component", "tenant.Manager"),
	}
}

// CreateSchema creates the org_<slug> schema and applies all embedded tenant
// migrations into it. Safe to call again for an existing tenant; migrate
// no-ops when the schema is current.
func (m *Manager) CreateSchema(ctx context.Context, slug string) error {
	schema, err := SchemaFor(slug)
	if err != nil {
		return err
	}

	ident := pgx.Identifier{schema}.Sanitize()
	if _, err := m.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+ident); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	if err := m.migrateSchema(schema); err != nil {
		return fmt.Errorf("migrate schema %s: %w", schema, err)
	}

	m.log.WithField("schema", schema).Info("tenant schema provisioned")
	return nil
}

// DropSchema removes a tenant schema and everything in it
func (m *Manager) DropSchema(ctx context.Context, slug string) error {
	schema, err := SchemaFor(slug)
	if err != nil {
		return err
	}

	ident := pgx.Identifier{schema}.Sanitize()
	if _, err := m.pool.Exec(ctx, "DROP SCHEMA IF EXISTS "+ident+" CASCADE"); err != nil {
		return fmt.Errorf("drop schema %s: %w", schema, err)
	}

	m.log.WithField("schema", schema).Info("tenant schema dropped")
	return nil
}

func (m *Manager) migrateSchema(schema string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	dsn, err := schemaScopedDSN(m.baseDSN, schema)
	if err != nil {
		return err
	}

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("tenant schema %s is in dirty migration state", schema)
	}

	if err := mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// schemaScopedDSN rewrites the database URL so the migrate connection runs
// with search_path pinned to the tenant schema and keeps its version table
// there too.
func schemaScopedDSN(base, schema string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	q.Set("x-migrations-table", migrationsTable)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
