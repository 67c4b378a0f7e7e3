package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one authorization recorded against an order.
type LedgerEntry struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	PSPReference  string          `json:"psp_reference"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AutoCapture   bool            `json:"auto_capture"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Invoice is a billing document created when funds are captured.
type Invoice struct {
	ID               uuid.UUID       `json:"id"`
	OrderID          uuid.UUID       `json:"order_id"`
	PSPReference     string          `json:"psp_reference"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	CaptureRequested bool            `json:"capture_requested"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CaseKind distinguishes fraud review cases.
type CaseKind string

const (
	CaseKindCapturePendingReview CaseKind = "CAPTURE_PENDING_REVIEW"
	CaseKindManualReview         CaseKind = "MANUAL_REVIEW"
)

// FraudCase is an open manual-review ticket for an order.
type FraudCase struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	PSPReference string    `json:"psp_reference"`
	Kind         CaseKind  `json:"kind"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Shipment is a shipment request raised for an order.
type Shipment struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MailMessage is an outbound order e-mail waiting for delivery.
type MailMessage struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	IncrementID   string    `json:"increment_id"`
	StoreID       int64     `json:"store_id"`
	Template      string    `json:"template"`
	AttachInvoice bool      `json:"attach_invoice"`
	QueuedAt      time.Time `json:"queued_at"`
}

// MailTemplateOrderConfirmation is the template used for order confirmation mails.
const MailTemplateOrderConfirmation = "order_confirmation"
