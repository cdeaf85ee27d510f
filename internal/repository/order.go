package repository

import (
	"context"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, campaign_id, status, notes, created_at, updated_at"
const orderItemColumns = "id, order_id, episode_id, placement, quantity, rate_cents, created_at"

func scanOrder(row pgx.CollectableRow) (tenant.Order, error) {
	var o tenant.Order
	err := row.Scan(&o.ID, &o.CampaignID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanOrderItem(row pgx.CollectableRow) (tenant.OrderItem, error) {
	var i tenant.OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.EpisodeID, &i.Placement, &i.Quantity, &i.RateCents, &i.CreatedAt)
	return i, err
}

// OrderRepository handles tenant-schema operations for orders and their items
type OrderRepository struct {
	gw *tenant.Gateway
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(gw *tenant.Gateway) *OrderRepository {
	return &OrderRepository{gw: gw}
}

// Create inserts an order together with its items in one transaction
func (r *OrderRepository) Create(ctx context.Context, schema string, o *tenant.Order, items []tenant.OrderItem) (*tenant.Order, error) {
	insertOrder, err := r.gw.Expand(schema, `
		INSERT INTO {{schema}}.orders (campaign_id, status, notes)
		VALUES ($1, $2, $3)
		RETURNING `+orderColumns)
	if err != nil {
		return nil, err
	}
	insertItem, err := r.gw.Expand(schema, `
		INSERT INTO {{schema}}.order_items (order_id, episode_id, placement, quantity, rate_cents)
		VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return nil, err
	}

	var created tenant.Order
	err = r.gw.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, insertOrder, o.CampaignID, o.Status, o.Notes)
		if err != nil {
			return err
		}
		created, err = pgx.CollectOneRow(rows, scanOrder)
		if err != nil {
			return err
		}
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem, created.ID, item.EpisodeID, item.Placement, item.Quantity, item.RateCents); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM {{schema}}.orders WHERE id = $1`
	o, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanOrder)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetItems retrieves the items of an order
func (r *OrderRepository) GetItems(ctx context.Context, schema string, orderID uuid.UUID) ([]tenant.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM {{schema}}.order_items
		WHERE order_id = $1 ORDER BY created_at`
	return tenant.Collect(ctx, r.gw, schema, query, []any{orderID}, scanOrderItem)
}

// GetByCampaignID retrieves orders for a campaign
func (r *OrderRepository) GetByCampaignID(ctx context.Context, schema string, campaignID uuid.UUID) ([]tenant.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM {{schema}}.orders
		WHERE campaign_id = $1 ORDER BY created_at DESC`
	return tenant.Collect(ctx, r.gw, schema, query, []any{campaignID}, scanOrder)
}

// GetAll retrieves orders with optional status filter and pagination
func (r *OrderRepository) GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Order, int64, error) {
	countRow, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.orders WHERE ($1 = '' OR status = $1)`, status)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM {{schema}}.orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{status, limit, offset}, scanOrder)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update updates an order's status and notes and returns the stored row
func (r *OrderRepository) Update(ctx context.Context, schema string, o *tenant.Order) (*tenant.Order, error) {
	query := `
		UPDATE {{schema}}.orders
		SET status = $2, notes = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{o.ID, o.Status, o.Notes}, scanOrder)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddItem inserts one item onto a draft order and returns the stored row
func (r *OrderRepository) AddItem(ctx context.Context, schema string, item *tenant.OrderItem) (*tenant.OrderItem, error) {
	query := `
		INSERT INTO {{schema}}.order_items (order_id, episode_id, placement, quantity, rate_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderItemColumns
	created, err := tenant.CollectOne(ctx, r.gw, schema, query,
		[]any{item.OrderID, item.EpisodeID, item.Placement, item.Quantity, item.RateCents}, scanOrderItem)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveItem deletes one item from an order
func (r *OrderRepository) RemoveItem(ctx context.Context, schema string, orderID, itemID uuid.UUID) error {
	tag, err := r.gw.Exec(ctx, schema,
		`DELETE FROM {{schema}}.order_items WHERE id = $1 AND order_id = $2`, itemID, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ItemTotal sums quantity * rate over the order's items
func (r *OrderRepository) ItemTotal(ctx context.Context, schema string, orderID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity * rate_cents), 0)
		FROM {{schema}}.order_items WHERE order_id = $1`
	row, err := r.gw.QueryRow(ctx, schema, query, orderID)
	if err != nil {
		return 0, err
	}
	var total int64
	err = row.Scan(&total)
	return total, err
}

// CountBookedSlots sums the quantities already held on an episode placement by
// orders in approved or booked status
func (r *OrderRepository) CountBookedSlots(ctx context.Context, schema string, episodeID uuid.UUID, placement string) (int, error) {
	query := `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM {{schema}}.order_items oi
		JOIN {{schema}}.orders o ON o.id = oi.order_id
		WHERE oi.episode_id = $1 AND oi.placement = $2
		  AND o.status IN ($3, $4)`
	row, err := r.gw.QueryRow(ctx, schema, query, episodeID, placement, tenant.OrderStatusApproved, tenant.OrderStatusBooked)
	if err != nil {
		return 0, err
	}
	var held int
	err = row.Scan(&held)
	return held, err
}

// BookedTotalForCampaign sums booked order item value across a campaign
func (r *OrderRepository) BookedTotalForCampaign(ctx context.Context, schema string, campaignID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(oi.quantity * oi.rate_cents), 0)
		FROM {{schema}}.order_items oi
		JOIN {{schema}}.orders o ON o.id = oi.order_id
		WHERE o.campaign_id = $1 AND o.status = $2`
	row, err := r.gw.QueryRow(ctx, schema, query, campaignID, tenant.OrderStatusBooked)
	if err != nil {
		return 0, err
	}
	var total int64
	err = row.Scan(&total)
	return total, err
}

// Delete deletes an order and its items
func (r *OrderRepository) Delete(ctx context.Context, schema string, id uuid.UUID) error {
	deleteItems, err := r.gw.Expand(schema, `DELETE FROM {{schema}}.order_items WHERE order_id = $1`)
	if err != nil {
		return err
	}
	deleteOrder, err := r.gw.Expand(schema, `DELETE FROM {{schema}}.orders WHERE id = $1`)
	if err != nil {
		return err
	}
	return r.gw.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteItems, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, deleteOrder, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}
