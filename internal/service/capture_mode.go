package service

import (
	"slices"
	"strings"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
)

const captureModeManual = "manual"

// CaptureModeResolver yields the capture mode of a notification's payment method.
type CaptureModeResolver struct {
	policy ports.CaptureModePolicy
}

// NewCaptureModeResolver creates a resolver backed by policy.
func NewCaptureModeResolver(policy ports.CaptureModePolicy) *CaptureModeResolver {
	return &CaptureModeResolver{policy: policy}
}

// Resolve returns true when paymentMethod captures automatically for order.
func (r *CaptureModeResolver) Resolve(order domain.Order, paymentMethod string) bool {
	return r.policy.IsAutoCapture(order, paymentMethod)
}

// ConfigCapturePolicy implements ports.CaptureModePolicy from per-store settings.
// Method lists take precedence over the store-wide capture_mode.
type ConfigCapturePolicy struct {
	cfg ports.ConfigSource
}

// NewConfigCapturePolicy creates a new ConfigCapturePolicy.
func NewConfigCapturePolicy(cfg ports.ConfigSource) *ConfigCapturePolicy {
	return &ConfigCapturePolicy{cfg: cfg}
}

// IsAutoCapture implements ports.CaptureModePolicy.
// Method names compare case-insensitively on both sides.
func (p *ConfigCapturePolicy) IsAutoCapture(order domain.Order, paymentMethod string) bool {
	listed := func(key string) bool {
		return slices.ContainsFunc(p.cfg.List(key, config.ScopeAbstract, order.StoreID), func(m string) bool {
			return strings.EqualFold(strings.TrimSpace(m), paymentMethod)
		})
	}
	if listed(config.KeyManualCaptureMethods) {
		return false
	}
	if listed(config.KeyAutoCaptureMethods) {
		return true
	}
	return !strings.EqualFold(p.cfg.Get(config.KeyCaptureMode, config.ScopeAbstract, order.StoreID), captureModeManual)
}
