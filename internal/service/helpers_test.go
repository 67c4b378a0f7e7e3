package service

import (
	"context"
	"io"
	"sync"
	"time"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// recordingSink collects decisions for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.DecisionEvent
}

func (s *recordingSink) Record(_ context.Context, e domain.DecisionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) names(kind domain.DecisionKind) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		if e.Kind == kind {
			out = append(out, e.Name)
		}
	}
	return out
}

func newTestOrder() domain.Order {
	return domain.Order{
		ID:             uuid.New(),
		IncrementID:    "000000100",
		StoreID:        1,
		Status:         domain.StatusPending,
		State:          domain.OrderStateNew,
		PaymentMethod:  "adyen_cc",
		PaymentChannel: domain.PaymentChannelRedirect,
		CanCancel:      true,
		CanHold:        true,
		Currency:       "EUR",
		GrandTotal:     decimal.RequireFromString("100.00"),
		BaseCurrency:   "USD",
		BaseGrandTotal: decimal.RequireFromString("110.00"),
		Version:        1,
	}
}

func newTestNotification(code domain.EventCode, success bool) domain.Notification {
	return domain.Notification{
		ID:                uuid.New(),
		EventCode:         code,
		Success:           success,
		PSPReference:      "8815000000000001",
		MerchantAccount:   "TestMerchant",
		MerchantReference: "000000100",
		PaymentMethod:     "adyen_cc",
		Amount:            10000,
		Currency:          "EUR",
	}
}

// newTestConfig returns a store config with the default-store keys in
// settings, keyed as "<scope>.<key>".
func newTestConfig(settings map[string]any) *config.StoreSource {
	v := viper.New()
	v.Set("stores.default.adyen_abstract.notifications_can_cancel", true)
	v.Set("stores.default.adyen_abstract.payment_cancelled", domain.StatusCanceled)
	for k, val := range settings {
		v.Set("stores.default."+k, val)
	}
	return config.NewStoreSource(v)
}
