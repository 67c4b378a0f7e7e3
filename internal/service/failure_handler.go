package service

import (
	"context"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// failureGuard is one early-exit check of the failure path. When match
// returns true the order is returned unchanged.
type failureGuard struct {
	name  string
	match func(order domain.Order, n domain.Notification) bool
}

// Guard names, as recorded in decision events.
const (
	GuardAPIChannel       = "api_channel_exemption"
	GuardAlreadySucceeded = "already_succeeded"
	GuardAlreadyTerminal  = "already_terminal"
)

// failureGuards are evaluated in order; the first match wins.
var failureGuards = []failureGuard{
	{name: GuardAPIChannel, match: isAPIChannelAuthorisation},
	{name: GuardAlreadySucceeded, match: alreadySucceeded},
	{name: GuardAlreadyTerminal, match: alreadyTerminal},
}

// isAPIChannelAuthorisation matches failed authorisations for payments the
// merchant's own API call already confirmed.
func isAPIChannelAuthorisation(order domain.Order, n domain.Notification) bool {
	return n.EventCode == domain.EventCodeAuthorisation && order.PaymentChannel == domain.PaymentChannelAPI
}

// alreadySucceeded matches orders that saw a successful authorisation or
// captured funds before this failure arrived.
func alreadySucceeded(order domain.Order, _ domain.Notification) bool {
	return order.PreviousEventCode == domain.PreviousEventAuthorised || order.Captured
}

func alreadyTerminal(order domain.Order, _ domain.Notification) bool {
	return order.IsCanceled() || order.IsHeld()
}

// FailedAuthorizationHandler handles notifications whose transition state is FAILED.
type FailedAuthorizationHandler struct {
	guard   *OrderLifecycleGuard
	mutator ports.OrderMutator
	cfg     ports.ConfigSource
	sink    ports.DecisionSink
	log     zerolog.Logger
}

// NewFailedAuthorizationHandler creates a new FailedAuthorizationHandler.
func NewFailedAuthorizationHandler(
	guard *OrderLifecycleGuard,
	mutator ports.OrderMutator,
	cfg ports.ConfigSource,
	sink ports.DecisionSink,
	log zerolog.Logger,
) *FailedAuthorizationHandler {
	return &FailedAuthorizationHandler{guard: guard, mutator: mutator, cfg: cfg, sink: sink, log: log}
}

// HandleFailure cancels or holds the order unless a guard exempts it.
func (h *FailedAuthorizationHandler) HandleFailure(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error) {
	for _, g := range failureGuards {
		if g.match(order, n) {
			h.log.Info().
				Str("increment_id", order.IncrementID).
				Str("guard", g.name).
				Str("event", n.EventLabel()).
				Msg("failure notification ignored")
			h.sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionGuardMatched, g.name, ""))
			return order, nil
		}
	}

	// Invoices only block cancellation for failed authorisations; other
	// failures (offer closed) ignore them.
	ignoreHasInvoice := n.EventCode != domain.EventCodeAuthorisation

	if !order.CanCancel && h.cfg.Flag(config.KeyNotificationsCanCancel, config.ScopeAbstract, order.StoreID) {
		from := order.State
		repaired, err := h.mutator.SetState(ctx, order, domain.OrderStateNew)
		if err != nil {
			return order, orderUpdateFailed("reset order state", err)
		}
		h.sink.Record(ctx, domain.NewDecision(repaired, n, domain.DecisionStateRepaired, "reset_to_new", string(from)))
		order = repaired
	}

	return h.guard.HoldOrCancel(ctx, order, n, ignoreHasInvoice)
}
