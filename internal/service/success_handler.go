package service

import (
	"context"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

const commentManualCapture = "Capture Mode set to Manual"

// SuccessDeps groups the collaborators of the success path.
type SuccessDeps struct {
	Capture  *CaptureModeResolver
	Ledger   ports.LedgerWriter
	Reviews  ports.ReviewPolicy
	Invoices ports.InvoiceService
	Cases    ports.CaseService
	Mutator  ports.OrderMutator
	Currency ports.CurrencyConverter
	Config   ports.ConfigSource
	Methods  domain.MethodCapabilityTable
	Sink     ports.DecisionSink
}

// SuccessfulAuthorizationHandler handles notifications whose transition state is PAID.
type SuccessfulAuthorizationHandler struct {
	deps SuccessDeps
	log  zerolog.Logger
}

// NewSuccessfulAuthorizationHandler creates a new SuccessfulAuthorizationHandler.
func NewSuccessfulAuthorizationHandler(deps SuccessDeps, log zerolog.Logger) *SuccessfulAuthorizationHandler {
	return &SuccessfulAuthorizationHandler{deps: deps, log: log}
}

// HandleSuccess records the authorisation and, once the order total is
// covered, captures or parks the payment and confirms the order.
func (h *SuccessfulAuthorizationHandler) HandleSuccess(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error) {
	d := h.deps
	autoCapture := d.Capture.Resolve(order, n.PaymentMethod)
	d.Sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionCaptureMode, captureModeName(autoCapture), n.PaymentMethod))

	// The flag must be on the snapshot before the ledger write so that a
	// concurrent OFFER_CLOSED observes it.
	if n.Success && autoCapture {
		order = order.Clone()
		order.Captured = true
	}

	if err := d.Ledger.Record(ctx, order, n, autoCapture); err != nil {
		return order, orderUpdateFailed("record ledger entry", err)
	}
	fullyAuthorized, err := d.Ledger.IsFullyAuthorized(ctx, order)
	if err != nil {
		return order, orderUpdateFailed("check authorized amount", err)
	}

	caps := d.Methods.Lookup(n.PaymentMethod)

	if fullyAuthorized {
		if order, err = h.confirm(ctx, order, n, autoCapture, caps); err != nil {
			return order, err
		}
	} else {
		h.log.Info().
			Str("increment_id", order.IncrementID).
			Str("psp_reference", n.PSPReference).
			Int64("amount", n.Amount).
			Msg("partial authorization recorded")
		d.Sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionPartialAuthorized, "partial", ""))
		if order, err = d.Mutator.AddWebhookStatusComment(ctx, order, n); err != nil {
			return order, orderUpdateFailed("add webhook comment", err)
		}
	}

	charged := d.Currency.ChargedAmount(order)
	order = order.Clone()
	order.AuthorizedAmount = charged.Value

	if caps.CashChannel && d.Config.Flag(config.KeyCreateShipment, caps.ShipmentScope, order.StoreID) {
		if order, err = d.Mutator.CreateShipment(ctx, order); err != nil {
			return order, orderUpdateFailed("create shipment", err)
		}
		d.Sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionCollaboratorCalled, "create_shipment", caps.ShipmentScope))
	}

	return order, nil
}

// confirm runs the fully-authorized branch: pre-authorized status, payment
// details, capture sub-flow and confirmation mail.
func (h *SuccessfulAuthorizationHandler) confirm(ctx context.Context, order domain.Order, n domain.Notification, autoCapture bool, caps domain.MethodCapabilities) (domain.Order, error) {
	d := h.deps
	out, err := d.Mutator.SetPrePaymentAuthorized(ctx, order)
	if err != nil {
		return order, orderUpdateFailed("set pre-payment authorized", err)
	}
	if out, err = d.Mutator.UpdatePaymentDetails(ctx, out, n); err != nil {
		return order, orderUpdateFailed("update payment details", err)
	}

	needsReview := d.Reviews.RequiresManualReview(domain.ParseAdditionalData(n.AdditionalData))

	if autoCapture {
		out, err = h.autoCapture(ctx, out, n, needsReview)
	} else {
		out, err = h.manualCapture(ctx, out, n, needsReview)
	}
	if err != nil {
		return order, err
	}

	// Mail-deferred methods confirm at order creation. The mail goes out
	// after invoicing so the invoice can be attached.
	if !caps.MailDeferred && !out.EmailSent {
		if out, err = d.Mutator.SendConfirmationMail(ctx, out); err != nil {
			return order, orderUpdateFailed("send confirmation mail", err)
		}
		d.Sink.Record(ctx, domain.NewDecision(out, n, domain.DecisionCollaboratorCalled, "confirmation_mail", ""))
	}
	return out, nil
}

func (h *SuccessfulAuthorizationHandler) autoCapture(ctx context.Context, order domain.Order, n domain.Notification, needsReview bool) (domain.Order, error) {
	d := h.deps
	if !order.HasInvoice {
		if err := d.Invoices.CreateInvoice(ctx, order, n, true); err != nil {
			return order, orderUpdateFailed("create invoice", err)
		}
		order = order.Clone()
		order.HasInvoice = true
		d.Sink.Record(ctx, domain.NewDecision(order, n, domain.DecisionCollaboratorCalled, "create_invoice", ""))
	}

	if needsReview {
		out, err := d.Cases.MarkPendingReview(ctx, order, n.PSPReference, true)
		if err != nil {
			return order, orderUpdateFailed("mark pending review", err)
		}
		d.Sink.Record(ctx, domain.NewDecision(out, n, domain.DecisionCollaboratorCalled, "pending_review", string(domain.CaseKindCapturePendingReview)))
		return out, nil
	}

	out, err := d.Mutator.Finalize(ctx, order, n)
	if err != nil {
		return order, orderUpdateFailed("finalize order", err)
	}
	return out, nil
}

func (h *SuccessfulAuthorizationHandler) manualCapture(ctx context.Context, order domain.Order, n domain.Notification, needsReview bool) (domain.Order, error) {
	d := h.deps
	if needsReview {
		out, err := d.Cases.MarkPendingReview(ctx, order, n.PSPReference, false)
		if err != nil {
			return order, orderUpdateFailed("mark pending review", err)
		}
		d.Sink.Record(ctx, domain.NewDecision(out, n, domain.DecisionCollaboratorCalled, "pending_review", string(domain.CaseKindManualReview)))
		return out, nil
	}

	out, err := d.Mutator.AddWebhookStatusComment(ctx, order, n)
	if err != nil {
		return order, orderUpdateFailed("add webhook comment", err)
	}
	if out, err = d.Mutator.AddStatusHistoryComment(ctx, out, commentManualCapture); err != nil {
		return order, orderUpdateFailed("add status comment", err)
	}
	h.log.Info().Str("increment_id", order.IncrementID).Msg("capture mode is set to manual")
	return out, nil
}

func captureModeName(auto bool) string {
	if auto {
		return "auto"
	}
	return captureModeManual
}
