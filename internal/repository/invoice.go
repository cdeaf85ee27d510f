package repository

import (
	"context"
	"fmt"
	"time"

	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = "id, campaign_id, number, status, amount_cents, currency, issued_at, due_date, paid_at, created_at, updated_at"

func scanInvoice(row pgx.CollectableRow) (tenant.Invoice, error) {
	var inv tenant.Invoice
	err := row.Scan(&inv.ID, &inv.CampaignID, &inv.Number, &inv.Status, &inv.AmountCents,
		&inv.Currency, &inv.IssuedAt, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

// InvoiceRepository handles tenant-schema operations for invoices
type InvoiceRepository struct {
	gw *tenant.Gateway
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(gw *tenant.Gateway) *InvoiceRepository {
	return &InvoiceRepository{gw: gw}
}

// Create draws the next number from the tenant sequence and inserts the
// invoice in one transaction
func (r *InvoiceRepository) Create(ctx context.Context, schema string, inv *tenant.Invoice) (*tenant.Invoice, error) {
	nextNumber, err := r.gw.Expand(schema, `SELECT nextval('{{schema}}.invoice_number_seq')`)
	if err != nil {
		return nil, err
	}
	insert, err := r.gw.Expand(schema, `
		INSERT INTO {{schema}}.invoices (campaign_id, number, status, amount_cents, currency, issued_at, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+invoiceColumns)
	if err != nil {
		return nil, err
	}

	var created tenant.Invoice
	err = r.gw.WithTx(ctx, func(tx pgx.Tx) error {
		var seq int64
		if err := tx.QueryRow(ctx, nextNumber).Scan(&seq); err != nil {
			return err
		}
		number := fmt.Sprintf("INV-%d-%05d", time.Now().UTC().Year(), seq)

		rows, err := tx.Query(ctx, insert, inv.CampaignID, number, inv.Status, inv.AmountCents, inv.Currency, inv.IssuedAt, inv.DueDate)
		if err != nil {
			return err
		}
		created, err = pgx.CollectOneRow(rows, scanInvoice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM {{schema}}.invoices WHERE id = $1`
	inv, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id}, scanInvoice)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByNumber retrieves an invoice by its number
func (r *InvoiceRepository) GetByNumber(ctx context.Context, schema, number string) (*tenant.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM {{schema}}.invoices WHERE number = $1`
	inv, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{number}, scanInvoice)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByCampaignID retrieves invoices for a campaign
func (r *InvoiceRepository) GetByCampaignID(ctx context.Context, schema string, campaignID uuid.UUID) ([]tenant.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM {{schema}}.invoices
		WHERE campaign_id = $1 ORDER BY created_at DESC`
	return tenant.Collect(ctx, r.gw, schema, query, []any{campaignID}, scanInvoice)
}

// GetAll retrieves invoices with optional status filter and pagination
func (r *InvoiceRepository) GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Invoice, int64, error) {
	countRow, err := r.gw.QueryRow(ctx, schema,
		`SELECT count(*) FROM {{schema}}.invoices WHERE ($1 = '' OR status = $1)`, status)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + invoiceColumns + ` FROM {{schema}}.invoices
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := tenant.Collect(ctx, r.gw, schema, query, []any{status, limit, offset}, scanInvoice)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatus moves an invoice to a new status, stamping paid_at when paid
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, schema string, id uuid.UUID, status string) (*tenant.Invoice, error) {
	query := `
		UPDATE {{schema}}.invoices
		SET status = $2,
		    paid_at = CASE WHEN $2 = 'paid' THEN now() ELSE paid_at END,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + invoiceColumns
	updated, err := tenant.CollectOne(ctx, r.gw, schema, query, []any{id, status}, scanInvoice)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
