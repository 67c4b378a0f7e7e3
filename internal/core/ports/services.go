package ports

import (
	"context"
	"time"

	"webhook-reconciler/internal/core/domain"
)

// --- Collaborators of the reconciliation core ---

// LedgerWriter records authorizations against the order's payment ledger.
type LedgerWriter interface {
	Record(ctx context.Context, order domain.Order, n domain.Notification, autoCapture bool) error
	// IsFullyAuthorized reports whether the cumulative authorized amount
	// covers the order total.
	IsFullyAuthorized(ctx context.Context, order domain.Order) (bool, error)
	// IsFullyFinalized reports whether the auto-captured part of the ledger
	// covers the order total.
	IsFullyFinalized(ctx context.Context, order domain.Order) (bool, error)
}

// CaptureModePolicy decides whether a payment method captures automatically.
type CaptureModePolicy interface {
	IsAutoCapture(order domain.Order, paymentMethod string) bool
}

// ReviewPolicy decides whether provider risk fields demand manual fraud review.
type ReviewPolicy interface {
	RequiresManualReview(data domain.AdditionalData) bool
}

// InvoiceService creates invoices.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, order domain.Order, n domain.Notification, captureRequested bool) error
}

// CaseService opens fraud review cases.
type CaseService interface {
	MarkPendingReview(ctx context.Context, order domain.Order, pspReference string, autoCapture bool) (domain.Order, error)
}

// OrderMutator applies administrative transitions and side effects to an order.
// Every method returns the updated snapshot; the input is never modified.
type OrderMutator interface {
	SetPrePaymentAuthorized(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdatePaymentDetails(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error)
	AddWebhookStatusComment(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error)
	AddStatusHistoryComment(ctx context.Context, order domain.Order, comment string) (domain.Order, error)
	SendConfirmationMail(ctx context.Context, order domain.Order) (domain.Order, error)
	CreateShipment(ctx context.Context, order domain.Order) (domain.Order, error)
	SetState(ctx context.Context, order domain.Order, state domain.OrderState) (domain.Order, error)
	Cancel(ctx context.Context, order domain.Order) (domain.Order, error)
	Hold(ctx context.Context, order domain.Order) (domain.Order, error)
	Finalize(ctx context.Context, order domain.Order, n domain.Notification) (domain.Order, error)
}

// ConfigSource resolves per-store feature toggles.
type ConfigSource interface {
	Get(key, scope string, storeID int64) string
	Flag(key, scope string, storeID int64) bool
	List(key, scope string, storeID int64) []string
}

// CurrencyConverter returns the order total in the currency the shopper was charged in.
type CurrencyConverter interface {
	ChargedAmount(order domain.Order) domain.Amount
}

// DecisionSink receives structured reconciliation decisions.
type DecisionSink interface {
	Record(ctx context.Context, event domain.DecisionEvent)
}

// --- Infrastructure ---

// Mailer queues outbound order e-mails.
type Mailer interface {
	Enqueue(ctx context.Context, msg domain.MailMessage) error
}

// OrderLock serializes notification processing per order.
type OrderLock interface {
	// Acquire blocks until the lock is held or ctx is done. The returned
	// function releases the lock.
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}

// SignatureService verifies notification HMAC signatures.
type SignatureService interface {
	Sign(hexKey string, payload string) (string, error)
	Verify(hexKey string, payload string, signature string) bool
	BuildCanonicalString(n domain.Notification) string
}

// --- Service Ports (Business Logic) ---

// WebhookRouter dispatches a notification to the success or failure path.
type WebhookRouter interface {
	Handle(ctx context.Context, order domain.Order, n domain.Notification, transition domain.TransitionState) (domain.Order, error)
}

// NotificationProcessor reconciles one stored notification end to end.
type NotificationProcessor interface {
	Process(ctx context.Context, n domain.Notification) (domain.Order, error)
}
