package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventCode is the provider's event vocabulary. Only a subset is reconciled;
// unknown codes are carried through untouched.
type EventCode string

const (
	EventCodeAuthorisation EventCode = "AUTHORISATION"
	EventCodeOfferClosed   EventCode = "OFFER_CLOSED"
	EventCodeCapture       EventCode = "CAPTURE"
	EventCodeCancellation  EventCode = "CANCELLATION"
	EventCodeRefund        EventCode = "REFUND"
)

// PreviousEventAuthorised is the event label remembered on an order after a
// successful authorisation.
const PreviousEventAuthorised = "AUTHORISATION : TRUE"

// NotificationStatus is the processing state of a received notification.
type NotificationStatus string

const (
	NotificationStatusReceived  NotificationStatus = "RECEIVED"
	NotificationStatusProcessed NotificationStatus = "PROCESSED"
	NotificationStatusFailed    NotificationStatus = "FAILED"
)

// Notification is one immutable provider event.
type Notification struct {
	ID                uuid.UUID `json:"id"`
	EventCode         EventCode `json:"event_code"`
	Success           bool      `json:"success"`
	PSPReference      string    `json:"psp_reference"`
	OriginalReference string    `json:"original_reference,omitempty"`
	MerchantAccount   string    `json:"merchant_account"`
	MerchantReference string    `json:"merchant_reference"`
	PaymentMethod     string    `json:"payment_method"`
	Amount            int64     `json:"amount"` // minor units
	Currency          string    `json:"currency"`
	Reason            string    `json:"reason,omitempty"`
	AdditionalData    []byte    `json:"additional_data,omitempty"` // raw JSON object, may be empty
	Live              bool      `json:"live"`
	EventDate         time.Time `json:"event_date"`
}

// EventLabel formats the outcome as it is remembered on the order,
// e.g. "AUTHORISATION : TRUE".
func (n Notification) EventLabel() string {
	return fmt.Sprintf("%s : %s", n.EventCode, strings.ToUpper(fmt.Sprint(n.Success)))
}

// TransitionState is the payment-state transition derived from a notification.
type TransitionState string

const (
	TransitionPaid   TransitionState = "PAID"
	TransitionFailed TransitionState = "FAILED"
	TransitionNone   TransitionState = "NONE"
)

// DeriveTransitionState maps a notification to the payment-state transition it implies.
func DeriveTransitionState(n Notification) TransitionState {
	switch n.EventCode {
	case EventCodeAuthorisation:
		if n.Success {
			return TransitionPaid
		}
		return TransitionFailed
	case EventCodeOfferClosed:
		if n.Success {
			return TransitionFailed
		}
	}
	return TransitionNone
}
