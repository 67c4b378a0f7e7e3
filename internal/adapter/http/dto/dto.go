package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"webhook-reconciler/internal/core/domain"
)

// NotificationBatch is the request body the payment provider posts to the
// notification endpoint.
type NotificationBatch struct {
	Live              string                 `json:"live" binding:"omitempty,bool_string"`
	NotificationItems []NotificationItemWrap `json:"notificationItems" binding:"required,min=1,dive"`
}

// NotificationItemWrap mirrors the provider's single-key item envelope.
type NotificationItemWrap struct {
	Item NotificationRequestItem `json:"NotificationRequestItem"`
}

// NotificationRequestItem is one provider event.
type NotificationRequestItem struct {
	EventCode           string             `json:"eventCode" binding:"required,max=64"`
	Success             string             `json:"success" binding:"required,bool_string"`
	PSPReference        string             `json:"pspReference" binding:"required,max=64"`
	OriginalReference   string             `json:"originalReference,omitempty" binding:"max=64"`
	MerchantAccountCode string             `json:"merchantAccountCode" binding:"required,max=100"`
	MerchantReference   string             `json:"merchantReference" binding:"required,safe_id,max=100"`
	PaymentMethod       string             `json:"paymentMethod,omitempty" binding:"max=64"`
	Amount              NotificationAmount `json:"amount"`
	Reason              string             `json:"reason,omitempty"`
	EventDate           string             `json:"eventDate,omitempty"`
	AdditionalData      map[string]any     `json:"additionalData,omitempty"`
}

// NotificationAmount is an amount in minor units.
type NotificationAmount struct {
	Value    int64  `json:"value" binding:"gte=0"`
	Currency string `json:"currency" binding:"omitempty,currency_code"`
}

// IsLive reports whether the batch came from the live environment.
func (b NotificationBatch) IsLive() bool {
	return strings.EqualFold(b.Live, "true")
}

// Signature returns the HMAC signature carried in additionalData, if any.
func (i NotificationRequestItem) Signature() string {
	s, _ := i.AdditionalData[domain.KeyHMACSignature].(string)
	return s
}

// ToDomain converts the item into a domain notification.
func (i NotificationRequestItem) ToDomain(live bool) (domain.Notification, error) {
	n := domain.Notification{
		EventCode:         domain.EventCode(strings.ToUpper(strings.TrimSpace(i.EventCode))),
		Success:           strings.EqualFold(i.Success, "true"),
		PSPReference:      i.PSPReference,
		OriginalReference: i.OriginalReference,
		MerchantAccount:   i.MerchantAccountCode,
		MerchantReference: i.MerchantReference,
		PaymentMethod:     i.PaymentMethod,
		Amount:            i.Amount.Value,
		Currency:          strings.ToUpper(i.Amount.Currency),
		Reason:            i.Reason,
		Live:              live,
	}

	if i.EventDate != "" {
		t, err := time.Parse(time.RFC3339, i.EventDate)
		if err != nil {
			return domain.Notification{}, fmt.Errorf("invalid eventDate %q: %w", i.EventDate, err)
		}
		n.EventDate = t.UTC()
	}

	if len(i.AdditionalData) > 0 {
		raw, err := json.Marshal(i.AdditionalData)
		if err != nil {
			return domain.Notification{}, fmt.Errorf("encode additionalData: %w", err)
		}
		n.AdditionalData = raw
	}
	return n, nil
}
