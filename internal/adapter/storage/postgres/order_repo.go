package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, increment_id, store_id, status, state, payment_method, payment_channel,
		psp_reference, captured, previous_event_code, has_invoice, can_cancel, can_hold, email_sent,
		currency, grand_total::text, base_currency, base_grand_total::text, authorized_amount::text,
		hold_before_state, hold_before_status, history, version, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
	now  func() time.Time
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

// GetByIncrementID fetches an order by its merchant reference.
func (r *OrderRepo) GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE increment_id = $1`
	return r.scanOrder(r.pool.QueryRow(ctx, query, incrementID))
}

// Save writes the snapshot guarded by its version. A stale version yields
// ORD_002 and nothing is written.
func (r *OrderRepo) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	history, err := json.Marshal(historyOrEmpty(o.History))
	if err != nil {
		return o, fmt.Errorf("marshal order history: %w", err)
	}

	now := r.now()
	query := `UPDATE orders SET status = $1, state = $2, payment_method = $3, psp_reference = $4,
		captured = $5, previous_event_code = $6, has_invoice = $7, can_cancel = $8, can_hold = $9,
		email_sent = $10, authorized_amount = $11, hold_before_state = $12, hold_before_status = $13,
		history = $14, version = version + 1, updated_at = $15
		WHERE id = $16 AND version = $17`

	tag, err := r.pool.Exec(ctx, query,
		o.Status, string(o.State), o.PaymentMethod, o.PSPReference,
		o.Captured, o.PreviousEventCode, o.HasInvoice, o.CanCancel, o.CanHold,
		o.EmailSent, o.AuthorizedAmount, string(o.HoldBeforeState), o.HoldBeforeStatus,
		history, now, o.ID, o.Version,
	)
	if err != nil {
		return o, apperror.ErrDatabaseError(fmt.Errorf("update order: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return o, apperror.ErrConcurrentUpdate()
	}

	saved := o.Clone()
	saved.Version++
	saved.UpdatedAt = now
	return saved, nil
}

func (r *OrderRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o                                 domain.Order
		state, channel, holdState         string
		grandTotal, baseTotal, authorized string
		history                           []byte
	)
	err := row.Scan(
		&o.ID, &o.IncrementID, &o.StoreID, &o.Status, &state, &o.PaymentMethod, &channel,
		&o.PSPReference, &o.Captured, &o.PreviousEventCode, &o.HasInvoice, &o.CanCancel, &o.CanHold, &o.EmailSent,
		&o.Currency, &grandTotal, &o.BaseCurrency, &baseTotal, &authorized,
		&holdState, &o.HoldBeforeStatus, &history, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	o.State = domain.OrderState(state)
	o.PaymentChannel = domain.PaymentChannel(channel)
	o.HoldBeforeState = domain.OrderState(holdState)

	if o.GrandTotal, err = parseAmount(grandTotal); err != nil {
		return nil, fmt.Errorf("parse grand_total: %w", err)
	}
	if o.BaseGrandTotal, err = parseAmount(baseTotal); err != nil {
		return nil, fmt.Errorf("parse base_grand_total: %w", err)
	}
	if o.AuthorizedAmount, err = parseAmount(authorized); err != nil {
		return nil, fmt.Errorf("parse authorized_amount: %w", err)
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &o.History); err != nil {
			return nil, fmt.Errorf("unmarshal order history: %w", err)
		}
	}
	return &o, nil
}

// parseAmount reads a NUMERIC rendered as text; empty means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func historyOrEmpty(h []domain.StatusComment) []domain.StatusComment {
	if h == nil {
		return []domain.StatusComment{}
	}
	return h
}
