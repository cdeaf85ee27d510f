package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
)

// Tenant is the resolved identity of an organization's data namespace
type Tenant struct {
	OrganizationID uuid.UUID
	Slug           string
	Schema         string
}

// Resolver maps an authenticated user's organization to its tenant schema.
// Lookups hit the organizations table once and are then served from an
// in-process cache until the entry expires or is invalidated.
type Resolver struct {
	db    *gorm.DB
	cache *gocache.Cache
}

// NewResolver creates a new tenant resolver
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:    db,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Resolve returns the tenant for an organization ID
func (r *Resolver) Resolve(orgID uuid.UUID) (*Tenant, error) {
	key := orgID.String()
	if cached, found := r.cache.Get(key); found {
		return cached.(*Tenant), nil
	}

	var org models.Organization
	if err := r.db.First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	schema, err := SchemaFor(org.Slug)
	if err != nil {
		return nil, err
	}

	t := &Tenant{
		OrganizationID: org.ID,
		Slug:           org.Slug,
		Schema:         schema,
	}
	r.cache.SetDefault(key, t)
	return t, nil
}

// Invalidate drops the cached entry for an organization. Call after slug
// changes or organization deletion.
func (r *Resolver) Invalidate(orgID uuid.UUID) {
	r.cache.Delete(orgID.String())
}
