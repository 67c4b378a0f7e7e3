package domain

import (
	"time"

	"github.com/google/uuid"
)

// DecisionKind classifies a reconciliation decision.
type DecisionKind string

const (
	DecisionRouted             DecisionKind = "ROUTED"
	DecisionTransitionIgnored  DecisionKind = "TRANSITION_IGNORED"
	DecisionGuardMatched       DecisionKind = "GUARD_MATCHED"
	DecisionPartialAuthorized  DecisionKind = "PARTIAL_AUTHORIZATION"
	DecisionCaptureMode        DecisionKind = "CAPTURE_MODE"
	DecisionCollaboratorCalled DecisionKind = "COLLABORATOR_INVOKED"
	DecisionOrderCancelled     DecisionKind = "ORDER_CANCELLED"
	DecisionOrderHeld          DecisionKind = "ORDER_HELD"
	DecisionOrderUnchanged     DecisionKind = "ORDER_UNCHANGED"
	DecisionStateRepaired      DecisionKind = "STATE_REPAIRED"
)

// DecisionEvent records one decision taken while reconciling a notification.
type DecisionEvent struct {
	ID           uuid.UUID    `json:"id"`
	OrderID      uuid.UUID    `json:"order_id"`
	IncrementID  string       `json:"increment_id"`
	PSPReference string       `json:"psp_reference"`
	EventCode    EventCode    `json:"event_code"`
	Kind         DecisionKind `json:"kind"`
	Name         string       `json:"name"`
	Detail       string       `json:"detail,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewDecision builds a decision event for the given order and notification.
func NewDecision(order Order, n Notification, kind DecisionKind, name, detail string) DecisionEvent {
	return DecisionEvent{
		ID:           uuid.New(),
		OrderID:      order.ID,
		IncrementID:  order.IncrementID,
		PSPReference: n.PSPReference,
		EventCode:    n.EventCode,
		Kind:         kind,
		Name:         name,
		Detail:       detail,
		CreatedAt:    time.Now().UTC(),
	}
}
