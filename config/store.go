package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Configuration scopes.
const (
	ScopeAbstract = "adyen_abstract"
	ScopeCash     = "adyen_cash"
)

// Per-store keys.
const (
	KeyPaymentPreAuthorized    = "payment_pre_authorized"
	KeyPaymentAuthorized       = "payment_authorized"
	KeyPaymentCancelled        = "payment_cancelled"
	KeyNotificationsCanCancel  = "notifications_can_cancel"
	KeyFraudManualReviewStatus = "fraud_manual_review_status"
	KeyCaptureMode             = "capture_mode"
	KeyAutoCaptureMethods      = "auto_capture_methods"
	KeyManualCaptureMethods    = "manual_capture_methods"
	KeyChargedCurrency         = "charged_currency"
	KeyCreateShipment          = "create_shipment"
)

// defaultStore is the scope consulted when a store has no override.
const defaultStore = "default"

func setStoreDefaults(v *viper.Viper) {
	base := "stores." + defaultStore + "."
	v.SetDefault(base+ScopeAbstract+"."+KeyPaymentPreAuthorized, "")
	v.SetDefault(base+ScopeAbstract+"."+KeyPaymentAuthorized, "processing")
	v.SetDefault(base+ScopeAbstract+"."+KeyPaymentCancelled, "canceled")
	v.SetDefault(base+ScopeAbstract+"."+KeyNotificationsCanCancel, true)
	v.SetDefault(base+ScopeAbstract+"."+KeyFraudManualReviewStatus, "payment_review")
	v.SetDefault(base+ScopeAbstract+"."+KeyCaptureMode, "auto")
	v.SetDefault(base+ScopeAbstract+"."+KeyAutoCaptureMethods, []string{})
	v.SetDefault(base+ScopeAbstract+"."+KeyManualCaptureMethods, []string{})
	v.SetDefault(base+ScopeAbstract+"."+KeyChargedCurrency, "display")
	v.SetDefault(base+ScopeCash+"."+KeyCreateShipment, false)
}

// StoreSource implements ports.ConfigSource over viper. A key is resolved as
// stores.<storeID>.<scope>.<key>, falling back to stores.default.<scope>.<key>.
type StoreSource struct {
	v *viper.Viper
}

// NewStoreSource creates a StoreSource. A nil viper yields an empty source.
func NewStoreSource(v *viper.Viper) *StoreSource {
	if v == nil {
		v = viper.New()
	}
	return &StoreSource{v: v}
}

func (s *StoreSource) resolve(key, scope string, storeID int64) string {
	k := fmt.Sprintf("stores.%s.%s.%s", strconv.FormatInt(storeID, 10), scope, key)
	if s.v.IsSet(k) {
		return k
	}
	return fmt.Sprintf("stores.%s.%s.%s", defaultStore, scope, key)
}

// Get returns a string setting.
func (s *StoreSource) Get(key, scope string, storeID int64) string {
	return s.v.GetString(s.resolve(key, scope, storeID))
}

// Flag returns a boolean setting.
func (s *StoreSource) Flag(key, scope string, storeID int64) bool {
	return s.v.GetBool(s.resolve(key, scope, storeID))
}

// List returns a list setting. A plain string is split on whitespace.
func (s *StoreSource) List(key, scope string, storeID int64) []string {
	return s.v.GetStringSlice(s.resolve(key, scope, storeID))
}
