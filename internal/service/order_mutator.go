package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// statusMaintain keeps the current status and state when finalizing.
const statusMaintain = "maintain"

const (
	commentPreAuthorized = "Payment is authorised waiting for capture"
	commentFinalized     = "Payment is authorised"
	commentMaintained    = "Maintaining the current status"
	commentCancelled     = "Order cancelled by payment notification"
	commentHeld          = "Order held by payment notification"
	commentShipment      = "Shipment created"
	commentPartialFormat = "Partial capture of %s %s was done"
)

// OrderMutatorService implements ports.OrderMutator. It only changes the
// snapshot; persistence happens once per notification in the processor.
type OrderMutatorService struct {
	cfg       ports.ConfigSource
	ledger    ports.LedgerWriter
	shipments ports.ShipmentRepository
	mailer    ports.Mailer
	now       func() time.Time
	log       zerolog.Logger
}

// NewOrderMutator creates a new OrderMutatorService.
func NewOrderMutator(cfg ports.ConfigSource, ledger ports.LedgerWriter, shipments ports.ShipmentRepository, mailer ports.Mailer, log zerolog.Logger) *OrderMutatorService {
	return &OrderMutatorService{
		cfg:       cfg,
		ledger:    ledger,
		shipments: shipments,
		mailer:    mailer,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// SetPrePaymentAuthorized applies the configured pre-authorized status, if any.
func (m *OrderMutatorService) SetPrePaymentAuthorized(_ context.Context, order domain.Order) (domain.Order, error) {
	status := m.cfg.Get(config.KeyPaymentPreAuthorized, config.ScopeAbstract, order.StoreID)
	if status == "" {
		m.log.Debug().Str("increment_id", order.IncrementID).Msg("no pre-authorized status configured")
		return order, nil
	}
	return order.WithStatus(status).WithComment(commentPreAuthorized, m.now()), nil
}

// UpdatePaymentDetails copies the provider reference onto the order.
func (m *OrderMutatorService) UpdatePaymentDetails(_ context.Context, order domain.Order, n domain.Notification) (domain.Order, error) {
	out := order.Clone()
	out.PSPReference = n.PSPReference
	if out.PaymentMethod == "" {
		out.PaymentMethod = n.PaymentMethod
	}
	return out, nil
}

// AddWebhookStatusComment appends a summary of the notification to the history.
func (m *OrderMutatorService) AddWebhookStatusComment(_ context.Context, order domain.Order, n domain.Notification) (domain.Order, error) {
	return order.WithComment(webhookComment(n), m.now()), nil
}

// AddStatusHistoryComment appends comment to the history.
func (m *OrderMutatorService) AddStatusHistoryComment(_ context.Context, order domain.Order, comment string) (domain.Order, error) {
	return order.WithComment(comment, m.now()), nil
}

// SendConfirmationMail queues the order confirmation mail.
func (m *OrderMutatorService) SendConfirmationMail(ctx context.Context, order domain.Order) (domain.Order, error) {
	msg := domain.MailMessage{
		ID:            uuid.New(),
		OrderID:       order.ID,
		IncrementID:   order.IncrementID,
		StoreID:       order.StoreID,
		Template:      domain.MailTemplateOrderConfirmation,
		AttachInvoice: order.HasInvoice,
		QueuedAt:      m.now(),
	}
	if err := m.mailer.Enqueue(ctx, msg); err != nil {
		return order, fmt.Errorf("enqueue confirmation mail: %w", err)
	}
	out := order.Clone()
	out.EmailSent = true
	return out, nil
}

// CreateShipment records a shipment request for the order.
func (m *OrderMutatorService) CreateShipment(ctx context.Context, order domain.Order) (domain.Order, error) {
	s := &domain.Shipment{ID: uuid.New(), OrderID: order.ID, CreatedAt: m.now()}
	if err := m.shipments.Create(ctx, s); err != nil {
		return order, fmt.Errorf("create shipment: %w", err)
	}
	return order.WithComment(commentShipment, m.now()), nil
}

// SetState moves the order to state, recomputing its capabilities.
func (m *OrderMutatorService) SetState(_ context.Context, order domain.Order, state domain.OrderState) (domain.Order, error) {
	return order.WithState(state), nil
}

// Cancel moves the order to CANCELLED.
func (m *OrderMutatorService) Cancel(_ context.Context, order domain.Order) (domain.Order, error) {
	if !order.CanCancel {
		return order, fmt.Errorf("order %s cannot be cancelled from state %s", order.IncrementID, order.State)
	}
	return order.
		WithState(domain.OrderStateCancelled).
		WithStatus(domain.StatusCanceled).
		WithComment(commentCancelled, m.now()), nil
}

// Hold moves the order to HOLDED, remembering where it came from.
func (m *OrderMutatorService) Hold(_ context.Context, order domain.Order) (domain.Order, error) {
	if !order.CanHold {
		return order, fmt.Errorf("order %s cannot be held from state %s", order.IncrementID, order.State)
	}
	out := order.WithState(domain.OrderStateHolded).WithStatus(domain.StatusHolded)
	out.HoldBeforeState = order.State
	out.HoldBeforeStatus = order.Status
	return out.WithComment(commentHeld, m.now()), nil
}

// Finalize applies the configured authorized status and moves the order to
// PROCESSING once the auto-captured amount covers the order total. Until then
// only a partial capture comment is added. The status "maintain" leaves state
// and status untouched.
func (m *OrderMutatorService) Finalize(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error) {
	finalized, err := m.ledger.IsFullyFinalized(ctx, order)
	if err != nil {
		return order, fmt.Errorf("check finalized amount: %w", err)
	}
	if !finalized {
		m.log.Info().
			Str("increment_id", order.IncrementID).
			Str("psp_reference", n.PSPReference).
			Msg("partial capture, order not finalized")
		return order.WithComment(fmt.Sprintf(commentPartialFormat, formatNotificationAmount(n), n.Currency), m.now()), nil
	}

	status := m.cfg.Get(config.KeyPaymentAuthorized, config.ScopeAbstract, order.StoreID)
	if strings.EqualFold(status, statusMaintain) {
		return order.WithComment(commentMaintained, m.now()), nil
	}
	if status == "" {
		status = domain.StatusProcessing
	}
	m.log.Info().
		Str("increment_id", order.IncrementID).
		Str("status", status).
		Str("psp_reference", n.PSPReference).
		Msg("order finalized")
	return order.
		WithState(domain.OrderStateProcessing).
		WithStatus(status).
		WithComment(commentFinalized, m.now()), nil
}

func webhookComment(n domain.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Adyen notification: eventCode %s, success %t, pspReference %s", n.EventCode, n.Success, n.PSPReference)
	if n.PaymentMethod != "" {
		fmt.Fprintf(&b, ", paymentMethod %s", n.PaymentMethod)
	}
	if variant := domain.ParseAdditionalData(n.AdditionalData).Get(domain.KeyPaymentMethodType); variant != "" {
		fmt.Fprintf(&b, " (%s)", variant)
	}
	if n.Amount != 0 {
		fmt.Fprintf(&b, ", amount %s %s", formatNotificationAmount(n), n.Currency)
	}
	if n.Reason != "" {
		fmt.Fprintf(&b, ", reason %s", n.Reason)
	}
	return b.String()
}

func formatNotificationAmount(n domain.Notification) string {
	return domain.FromMinorUnits(n.Amount, n.Currency).StringFixed(domain.CurrencyExponent(n.Currency))
}
