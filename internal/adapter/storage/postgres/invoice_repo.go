package postgres

import (
	"context"
	"fmt"

	"webhook-reconciler/internal/core/domain"
)

// InvoiceRepo implements ports.InvoiceRepository.
type InvoiceRepo struct {
	pool Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(pool Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create inserts the invoice unless one exists for the same order and PSP reference.
func (r *InvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) (bool, error) {
	query := `INSERT INTO invoices (id, order_id, psp_reference, amount, currency, capture_requested, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id, psp_reference) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		inv.ID, inv.OrderID, inv.PSPReference, inv.Amount, inv.Currency,
		inv.CaptureRequested, inv.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert invoice: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
