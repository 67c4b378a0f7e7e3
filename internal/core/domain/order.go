package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderState is the coarse lifecycle state of an order.
type OrderState string

const (
	OrderStateNew           OrderState = "NEW"
	OrderStatePendingReview OrderState = "PENDING_REVIEW"
	OrderStateProcessing    OrderState = "PROCESSING"
	OrderStateHolded        OrderState = "HOLDED"
	OrderStateCancelled     OrderState = "CANCELLED"
	OrderStateClosed        OrderState = "CLOSED"
)

// Status labels used when configuration does not name one.
const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusPaymentReview = "payment_review"
	StatusHolded        = "holded"
	StatusCanceled      = "canceled"
)

// PaymentChannel identifies how the shopper's payment was initiated.
type PaymentChannel string

const (
	PaymentChannelAPI      PaymentChannel = "api"
	PaymentChannelRedirect PaymentChannel = "redirect"
)

// StatusComment is one entry of the order's status history.
type StatusComment struct {
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the snapshot under reconciliation. It is loaded fresh for every
// notification and written back once; Version guards the write.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	IncrementID       string          `json:"increment_id"` // merchant reference
	StoreID           int64           `json:"store_id"`
	Status            string          `json:"status"`
	State             OrderState      `json:"state"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentChannel    PaymentChannel  `json:"payment_channel"`
	PSPReference      string          `json:"psp_reference,omitempty"`
	Captured          bool            `json:"captured"`
	PreviousEventCode string          `json:"previous_event_code,omitempty"`
	HasInvoice        bool            `json:"has_invoice"`
	CanCancel         bool            `json:"can_cancel"`
	CanHold           bool            `json:"can_hold"`
	EmailSent         bool            `json:"email_sent"`
	Currency          string          `json:"currency"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	BaseCurrency      string          `json:"base_currency"`
	BaseGrandTotal    decimal.Decimal `json:"base_grand_total"`
	AuthorizedAmount  decimal.Decimal `json:"authorized_amount"`
	HoldBeforeState   OrderState      `json:"hold_before_state,omitempty"`
	HoldBeforeStatus  string          `json:"hold_before_status,omitempty"`
	History           []StatusComment `json:"history"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsCanceled returns true if the order has been cancelled.
func (o Order) IsCanceled() bool {
	return o.State == OrderStateCancelled
}

// IsHeld returns true if the order is on hold.
func (o Order) IsHeld() bool {
	return o.State == OrderStateHolded
}

// Clone returns a copy that shares no mutable memory with o.
func (o Order) Clone() Order {
	c := o
	c.History = append([]StatusComment(nil), o.History...)
	return c
}

// WithState returns a copy in state s with the capability flags recomputed.
func (o Order) WithState(s OrderState) Order {
	c := o.Clone()
	c.State = s
	c.CanCancel, c.CanHold = CanCancelFrom(s), CanHoldFrom(s)
	return c
}

// WithStatus returns a copy carrying the given status label.
func (o Order) WithStatus(status string) Order {
	c := o.Clone()
	c.Status = status
	return c
}

// WithComment returns a copy with comment appended to the status history.
func (o Order) WithComment(comment string, at time.Time) Order {
	c := o.Clone()
	c.History = append(c.History, StatusComment{
		Comment:   comment,
		Status:    c.Status,
		CreatedAt: at,
	})
	return c
}

// CanCancelFrom reports whether the lifecycle allows cancelling from s.
func CanCancelFrom(s OrderState) bool {
	return s == OrderStateNew || s == OrderStateProcessing
}

// CanHoldFrom reports whether the lifecycle allows holding from s.
func CanHoldFrom(s OrderState) bool {
	return s == OrderStateNew || s == OrderStateProcessing
}
