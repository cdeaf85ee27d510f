package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	gocache "github.com/patrickmn/go-cache"
)

// EpisodeAvailability is the sellable state of one placement on one episode
type EpisodeAvailability struct {
	EpisodeID uuid.UUID `json:"episode_id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Placement string    `json:"placement"`
	Slots     int       `json:"slots"`
	Held      int       `json:"held"`
	Available int       `json:"available"`
}

// InventoryService computes slot availability from show configuration and
// held order items. Results are cached briefly; a hold made through another
// worker shows up after the cache entry expires.
type InventoryService struct {
	showRepo    repository.ShowRepositoryInterface
	episodeRepo repository.EpisodeRepositoryInterface
	orderRepo   repository.OrderRepositoryInterface
	cache       *gocache.Cache
}

// NewInventoryService creates a new inventory service
func NewInventoryService(showRepo repository.ShowRepositoryInterface, episodeRepo repository.EpisodeRepositoryInterface, orderRepo repository.OrderRepositoryInterface) *InventoryService {
	return &InventoryService{
		showRepo:    showRepo,
		episodeRepo: episodeRepo,
		orderRepo:   orderRepo,
		cache:       gocache.New(60*time.Second, 5*time.Minute),
	}
}

// Availability lists per-episode availability of one placement on a show
// within a date range
func (s *InventoryService) Availability(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, placement string, from, to time.Time) ([]EpisodeAvailability, error) {
	if !tenant.ValidPlacement(placement) {
		return nil, apperrors.NewValidationError("placement", fmt.Sprintf("unknown placement %q", placement))
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%s:%s", tn.Schema, showID, placement, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]EpisodeAvailability), nil
	}

	show, err := s.showRepo.GetByID(ctx, tn.Schema, showID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	episodes, err := s.episodeRepo.GetInDateRange(ctx, tn.Schema, showID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}

	slots := show.SlotsFor(placement)
	out := make([]EpisodeAvailability, 0, len(episodes))
	for _, ep := range episodes {
		held, err := s.orderRepo.CountBookedSlots(ctx, tn.Schema, ep.ID, placement)
		if err != nil {
			return nil, fmt.Errorf("failed to count held slots: %w", err)
		}
		available := slots - held
		if available < 0 {
			available = 0
		}
		out = append(out, EpisodeAvailability{
			EpisodeID: ep.ID,
			Number:    ep.Number,
			Title:     ep.Title,
			Placement: placement,
			Slots:     slots,
			Held:      held,
			Available: available,
		})
	}

	s.cache.Set(cacheKey, out, gocache.DefaultExpiration)
	return out, nil
}

// CheckAvailable verifies that an episode placement still has quantity free.
// Used by order creation before inserting items.
func (s *InventoryService) CheckAvailable(ctx context.Context, tn tenant.Tenant, episodeID uuid.UUID, placement string, quantity int) error {
	if !tenant.ValidPlacement(placement) {
		return apperrors.NewValidationError("placement", fmt.Sprintf("unknown placement %q", placement))
	}

	episode, err := s.episodeRepo.GetByID(ctx, tn.Schema, episodeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEpisodeNotFound
		}
		return fmt.Errorf("failed to get episode: %w", err)
	}

	show, err := s.showRepo.GetByID(ctx, tn.Schema, episode.ShowID)
	if err != nil {
		return fmt.Errorf("failed to get show: %w", err)
	}

	held, err := s.orderRepo.CountBookedSlots(ctx, tn.Schema, episodeID, placement)
	if err != nil {
		return fmt.Errorf("failed to count held slots: %w", err)
	}

	if held+quantity > show.SlotsFor(placement) {
		return apperrors.ErrInsufficientInventory
	}
	return nil
}

// Invalidate drops cached availability for a tenant after a hold changes
func (s *InventoryService) Invalidate(tn tenant.Tenant) {
	for key := range s.cache.Items() {
		if len(key) >= len(tn.Schema) && key[:len(tn.Schema)] == tn.Schema {
			s.cache.Delete(key)
		}
	}
}
