package ports

import (
	"context"

	"webhook-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// OrderRepository loads and stores order snapshots.
type OrderRepository interface {
	// GetByIncrementID returns nil, nil when no order carries the reference.
	GetByIncrementID(ctx context.Context, incrementID string) (*domain.Order, error)
	// Save writes the snapshot if its Version still matches the stored row
	// and returns the snapshot with the incremented version.
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
}

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	// Create returns false when an invoice for the same order and PSP reference exists.
	Create(ctx context.Context, invoice *domain.Invoice) (bool, error)
}

// CaseRepository persists fraud review cases.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.FraudCase) error
}

// ShipmentRepository persists shipment requests.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
}

// NotificationRepository keeps the log of received notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

// DecisionRepository persists reconciliation decisions.
type DecisionRepository interface {
	Create(ctx context.Context, e *domain.DecisionEvent) error
}
