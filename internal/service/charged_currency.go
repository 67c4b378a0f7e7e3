package service

import (
	"strings"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
)

const chargedCurrencyBase = "base"

// ChargedCurrencyService implements ports.CurrencyConverter. Stores charge
// either in the display currency or in the base currency.
type ChargedCurrencyService struct {
	cfg ports.ConfigSource
}

// NewChargedCurrencyService creates a new ChargedCurrencyService.
func NewChargedCurrencyService(cfg ports.ConfigSource) *ChargedCurrencyService {
	return &ChargedCurrencyService{cfg: cfg}
}

// ChargedAmount returns the order total in the charged currency.
func (s *ChargedCurrencyService) ChargedAmount(order domain.Order) domain.Amount {
	mode := s.cfg.Get(config.KeyChargedCurrency, config.ScopeAbstract, order.StoreID)
	if strings.EqualFold(mode, chargedCurrencyBase) && order.BaseCurrency != "" {
		return domain.Amount{Value: order.BaseGrandTotal, Currency: order.BaseCurrency}
	}
	return domain.Amount{Value: order.GrandTotal, Currency: order.Currency}
}
