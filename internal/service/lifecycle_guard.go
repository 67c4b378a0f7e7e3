package service

import (
	"context"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// holdAction is the payment_cancelled value that selects hold over cancel.
const holdAction = domain.StatusHolded

const (
	commentCancelDisabled = "Order cannot be canceled based on the plugin configuration"
	commentCannotCancel   = "Order can not be canceled"
	commentCannotHold     = "Order can not be held"
)

// OrderLifecycleGuard decides whether a failed payment holds, cancels or
// leaves an order alone.
type OrderLifecycleGuard struct {
	mutator ports.OrderMutator
	cfg     ports.ConfigSource
	sink    ports.DecisionSink
	log     zerolog.Logger
}

// NewOrderLifecycleGuard creates a new OrderLifecycleGuard.
func NewOrderLifecycleGuard(mutator ports.OrderMutator, cfg ports.ConfigSource, sink ports.DecisionSink, log zerolog.Logger) *OrderLifecycleGuard {
	return &OrderLifecycleGuard{mutator: mutator, cfg: cfg, sink: sink, log: log}
}

// HoldOrCancel holds or cancels order according to the store's configured
// action. When the capability is missing, or an invoice exists and
// ignoreHasInvoice is false, the order only gets an explanatory comment.
func (g *OrderLifecycleGuard) HoldOrCancel(ctx context.Context, order domain.Order, n domain.Notification, ignoreHasInvoice bool) (domain.Order, error) {
	if !g.cfg.Flag(config.KeyNotificationsCanCancel, config.ScopeAbstract, order.StoreID) {
		return g.leave(ctx, order, n, "notifications_cannot_cancel", commentCancelDisabled)
	}

	invoiceAllows := ignoreHasInvoice || !order.HasInvoice
	action := g.cfg.Get(config.KeyPaymentCancelled, config.ScopeAbstract, order.StoreID)

	if action == holdAction {
		if !order.CanHold || !invoiceAllows {
			return g.leave(ctx, order, n, "cannot_hold", commentCannotHold)
		}
		held, err := g.mutator.Hold(ctx, order)
		if err != nil {
			return order, orderUpdateFailed("hold order", err)
		}
		g.sink.Record(ctx, domain.NewDecision(held, n, domain.DecisionOrderHeld, "hold", ""))
		return held, nil
	}

	if !order.CanCancel || !invoiceAllows {
		return g.leave(ctx, order, n, "cannot_cancel", commentCannotCancel)
	}
	cancelled, err := g.mutator.Cancel(ctx, order)
	if err != nil {
		return order, orderUpdateFailed("cancel order", err)
	}
	g.sink.Record(ctx, domain.NewDecision(cancelled, n, domain.DecisionOrderCancelled, "cancel", ""))
	return cancelled, nil
}

func (g *OrderLifecycleGuard) leave(ctx context.Context, order domain.Order, n domain.Notification, reason, comment string) (domain.Order, error) {
	g.log.Info().
		Str("increment_id", order.IncrementID).
		Str("reason", reason).
		Bool("can_cancel", order.CanCancel).
		Bool("can_hold", order.CanHold).
		Bool("has_invoice", order.HasInvoice).
		Msg("order left unchanged")

	out, err := g.mutator.AddStatusHistoryComment(ctx, order, comment)
	if err != nil {
		return order, orderUpdateFailed("add status comment", err)
	}
	g.sink.Record(ctx, domain.NewDecision(out, n, domain.DecisionOrderUnchanged, reason, comment))
	return out, nil
}
