package service

import (
	"context"
	"fmt"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

type successPath interface {
	HandleSuccess(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error)
}

type failurePath interface {
	HandleFailure(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error)
}

// WebhookOutcomeRouter implements ports.WebhookRouter.
type WebhookOutcomeRouter struct {
	success successPath
	failure failurePath
	sink    ports.DecisionSink
	log     zerolog.Logger
}

// NewWebhookOutcomeRouter creates a new WebhookOutcomeRouter.
func NewWebhookOutcomeRouter(success successPath, failure failurePath, sink ports.DecisionSink, log zerolog.Logger) *WebhookOutcomeRouter {
	return &WebhookOutcomeRouter{success: success, failure: failure, sink: sink, log: log}
}

// Handle dispatches to exactly one path. Transition states other than PAID
// and FAILED return the order unchanged.
func (r *WebhookOutcomeRouter) Handle(ctx context.Context, order domain.Order, n domain.Notification, transition domain.TransitionState) (domain.Order, error) {
	switch transition {
	case domain.TransitionPaid:
		r.sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionRouted, "success", string(transition)))
		return r.success.HandleSuccess(ctx, order, n)
	case domain.TransitionFailed:
		r.sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionRouted, "failure", string(transition)))
		return r.failure.HandleFailure(ctx, order, n)
	default:
		r.log.Debug().
			Str("increment_id", order.IncrementID).
			Str("transition", string(transition)).
			Str("event", n.EventLabel()).
			Msg("transition ignored")
		r.sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionTransitionIgnored, "noop", string(transition)))
		return order, nil
	}
}

// orderUpdateFailed converts a collaborator failure into ORD_001. The cause
// stays reachable through errors.As.
func orderUpdateFailed(step string, err error) error {
	if apperror.HasCode(err, apperror.CodeOrderUpdateFailed) {
		return err
	}
	return apperror.ErrOrderUpdateFailed(fmt.Errorf("%s: %w", step, err))
}
