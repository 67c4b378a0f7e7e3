package postgres

import (
	"context"
	"fmt"
	"time"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/google/uuid"
)

// LedgerRepo implements ports.LedgerWriter over the order_payments table.
// Rows are unique per (order_id, psp_reference) so replays do not add up.
type LedgerRepo struct {
	pool     Pool
	currency ports.CurrencyConverter
	now      func() time.Time
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool, currency ports.CurrencyConverter) *LedgerRepo {
	return &LedgerRepo{pool: pool, currency: currency, now: func() time.Time { return time.Now().UTC() }}
}

// Record stores the notification's authorized amount against the order.
func (r *LedgerRepo) Record(ctx context.Context, order domain.Order, n domain.Notification, autoCapture bool) error {
	e := domain.LedgerEntry{
		ID:            uuid.New(),
		OrderID:       order.ID,
		PSPReference:  n.PSPReference,
		PaymentMethod: n.PaymentMethod,
		Amount:        domain.FromMinorUnits(n.Amount, n.Currency),
		Currency:      n.Currency,
		AutoCapture:   autoCapture,
		CreatedAt:     r.now(),
	}

	query := `INSERT INTO order_payments (id, order_id, psp_reference, payment_method, amount, currency, auto_capture, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id, psp_reference) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.OrderID, e.PSPReference, e.PaymentMethod,
		e.Amount, e.Currency, e.AutoCapture, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order payment: %w", err)
	}
	return nil
}

// IsFullyAuthorized compares the cumulative authorized amount in the
// charged currency with the order total.
func (r *LedgerRepo) IsFullyAuthorized(ctx context.Context, order domain.Order) (bool, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::text FROM order_payments WHERE order_id = $1 AND currency = $2`
	return r.covers(ctx, order, query)
}

// IsFullyFinalized only counts rows recorded with automatic capture, so an
// order authorized partly through a manual-capture method stays unfinalized.
func (r *LedgerRepo) IsFullyFinalized(ctx context.Context, order domain.Order) (bool, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::text FROM order_payments WHERE order_id = $1 AND currency = $2 AND auto_capture`
	return r.covers(ctx, order, query)
}

func (r *LedgerRepo) covers(ctx context.Context, order domain.Order, query string) (bool, error) {
	charged := r.currency.ChargedAmount(order)

	var sum string
	if err := r.pool.QueryRow(ctx, query, order.ID, charged.Currency).Scan(&sum); err != nil {
		return false, fmt.Errorf("sum order payments: %w", err)
	}
	total, err := parseAmount(sum)
	if err != nil {
		return false, fmt.Errorf("parse payment sum: %w", err)
	}
	return total.GreaterThanOrEqual(charged.Value), nil
}
