package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// orderTransitions enumerates the legal status moves. Cancelled and booked
// are terminal, except that an approved order may still be cancelled.
var orderTransitions = map[string][]string{
	tenant.OrderStatusDraft:    {tenant.OrderStatusApproved, tenant.OrderStatusCancelled},
	tenant.OrderStatusApproved: {tenant.OrderStatusBooked, tenant.OrderStatusCancelled},
}

func orderTransitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService handles business logic for inventory orders
type OrderService struct {
	repo         repository.OrderRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	rateCardRepo repository.RateCardRepositoryInterface
	episodeRepo  repository.EpisodeRepositoryInterface
	inventory    *InventoryService
	dispatcher   NotificationDispatcherInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	repo repository.OrderRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	rateCardRepo repository.RateCardRepositoryInterface,
	episodeRepo repository.EpisodeRepositoryInterface,
	inventory *InventoryService,
	dispatcher NotificationDispatcherInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		repo:         repo,
		campaignRepo: campaignRepo,
		rateCardRepo: rateCardRepo,
		episodeRepo:  episodeRepo,
		inventory:    inventory,
		dispatcher:   dispatcher,
		validator:    validator,
		log:          log.WithField("component", "OrderService"),
	}
}

// OrderItemRequest represents one line in an order request
type OrderItemRequest struct {
	EpisodeID uuid.UUID `json:"episode_id" validate:"required"`
	Placement string    `json:"placement" validate:"required,oneof=preroll midroll postroll"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=10"`
}

// CreateOrderRequest represents the request to create an order
type CreateOrderRequest struct {
	CampaignID uuid.UUID          `json:"campaign_id" validate:"required"`
	Notes      string             `json:"notes" validate:"omitempty,max=2000"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderResponse represents an order with its items and total
type OrderResponse struct {
	Order      tenant.Order       `json:"order"`
	Items      []tenant.OrderItem `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

// OrderListResponse represents a paginated list of orders
type OrderListResponse struct {
	Orders   []tenant.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a draft order. Each item is priced from the rate card in
// effect on the episode's air date and checked against remaining inventory.
func (s *OrderService) Create(ctx context.Context, tn tenant.Tenant, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, tn.Schema, req.CampaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Status == tenant.CampaignStatusCompleted {
		return nil, apperrors.ErrInvalidStatus
	}

	items := make([]tenant.OrderItem, 0, len(req.Items))
	for _, ir := range req.Items {
		episode, err := s.episodeRepo.GetByID(ctx, tn.Schema, ir.EpisodeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrEpisodeNotFound
			}
			return nil, fmt.Errorf("failed to get episode: %w", err)
		}

		if err := s.inventory.CheckAvailable(ctx, tn, ir.EpisodeID, ir.Placement, ir.Quantity); err != nil {
			return nil, err
		}

		pricingDate := time.Now()
		if episode.AirDate != nil {
			pricingDate = *episode.AirDate
		}
		rate, err := s.rateCardRepo.EffectiveRate(ctx, tn.Schema, episode.ShowID, ir.Placement, pricingDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrRateCardNotFound
			}
			return nil, fmt.Errorf("failed to get effective rate: %w", err)
		}

		items = append(items, tenant.OrderItem{
			EpisodeID: ir.EpisodeID,
			Placement: ir.Placement,
			Quantity:  ir.Quantity,
			RateCents: rate.RateCents,
		})
	}

	order := &tenant.Order{
		CampaignID: req.CampaignID,
		Status:     tenant.OrderStatusDraft,
		Notes:      req.Notes,
	}
	created, err := s.repo.Create(ctx, tn.Schema, order, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return s.toResponse(ctx, tn, created)
}

// GetByID retrieves an order with its items and total
func (s *OrderService) GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return s.toResponse(ctx, tn, order)
}

// GetAll retrieves orders with optional status filter and pagination
func (s *OrderService) GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := s.repo.GetAll(ctx, tn.Schema, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return &OrderListResponse{Orders: orders, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetByCampaign retrieves a campaign's orders
func (s *OrderService) GetByCampaign(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID) ([]tenant.Order, error) {
	if _, err := s.campaignRepo.GetByID(ctx, tn.Schema, campaignID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to check campaign: %w", err)
	}
	return s.repo.GetByCampaignID(ctx, tn.Schema, campaignID)
}

// AddItem adds an item to a draft order
func (s *OrderService) AddItem(ctx context.Context, tn tenant.Tenant, orderID uuid.UUID, req *OrderItemRequest) (*OrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.repo.GetByID(ctx, tn.Schema, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != tenant.OrderStatusDraft {
		return nil, apperrors.ErrOrderNotEditable
	}

	episode, err := s.episodeRepo.GetByID(ctx, tn.Schema, req.EpisodeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	if err := s.inventory.CheckAvailable(ctx, tn, req.EpisodeID, req.Placement, req.Quantity); err != nil {
		return nil, err
	}

	pricingDate := time.Now()
	if episode.AirDate != nil {
		pricingDate = *episode.AirDate
	}
	rate, err := s.rateCardRepo.EffectiveRate(ctx, tn.Schema, episode.ShowID, req.Placement, pricingDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateCardNotFound
		}
		return nil, fmt.Errorf("failed to get effective rate: %w", err)
	}

	if _, err := s.repo.AddItem(ctx, tn.Schema, &tenant.OrderItem{
		OrderID:   orderID,
		EpisodeID: req.EpisodeID,
		Placement: req.Placement,
		Quantity:  req.Quantity,
		RateCents: rate.RateCents,
	}); err != nil {
		return nil, fmt.Errorf("failed to add order item: %w", err)
	}

	return s.toResponse(ctx, tn, order)
}

// RemoveItem removes an item from a draft order
func (s *OrderService) RemoveItem(ctx context.Context, tn tenant.Tenant, orderID, itemID uuid.UUID) (*OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, tn.Schema, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != tenant.OrderStatusDraft {
		return nil, apperrors.ErrOrderNotEditable
	}

	if err := s.repo.RemoveItem(ctx, tn.Schema, orderID, itemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to remove order item: %w", err)
	}
	return s.toResponse(ctx, tn, order)
}

// UpdateStatus moves an order through its lifecycle. Approval re-validates
// inventory for every item and dispatches a notification; booking consumes
// the held slots permanently.
func (s *OrderService) UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !orderTransitionAllowed(order.Status, status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if status == tenant.OrderStatusApproved {
		items, err := s.repo.GetItems(ctx, tn.Schema, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get order items: %w", err)
		}
		if len(items) == 0 {
			return nil, apperrors.NewValidationError("items", "order has no items")
		}
		for _, item := range items {
			if err := s.inventory.CheckAvailable(ctx, tn, item.EpisodeID, item.Placement, item.Quantity); err != nil {
				return nil, err
			}
		}
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	updated, err := s.repo.Update(ctx, tn.Schema, order)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.inventory.Invalidate(tn)

	if status == tenant.OrderStatusApproved {
		total, err := s.repo.ItemTotal(ctx, tn.Schema, id)
		if err != nil {
			s.log.WithError(err).WithField("order_id", id).Warn("failed to compute order total for notification")
		}
		if err := s.dispatcher.Dispatch(tn.OrganizationID, models.EventOrderApproved, map[string]any{
			"order_id":    updated.ID.String(),
			"total_cents": total,
		}); err != nil {
			s.log.WithError(err).WithField("order_id", id).Warn("failed to dispatch order approval notification")
		}
	}

	return s.toResponse(ctx, tn, updated)
}

// Delete deletes a draft order and its items
func (s *OrderService) Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error {
	order, err := s.repo.GetByID(ctx, tn.Schema, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != tenant.OrderStatusDraft {
		return apperrors.ErrOrderNotEditable
	}

	if err := s.repo.Delete(ctx, tn.Schema, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *OrderService) toResponse(ctx context.Context, tn tenant.Tenant, order *tenant.Order) (*OrderResponse, error) {
	items, err := s.repo.GetItems(ctx, tn.Schema, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.RateCents
	}
	return &OrderResponse{Order: *order, Items: items, TotalCents: total}, nil
}
