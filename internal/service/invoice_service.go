package service

import (
	"context"
	"fmt"
	"time"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	repo     ports.InvoiceRepository
	currency ports.CurrencyConverter
	now      func() time.Time
	log      zerolog.Logger
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(repo ports.InvoiceRepository, currency ports.CurrencyConverter, log zerolog.Logger) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		repo:     repo,
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// CreateInvoice invoices the order's charged amount. A second invoice for the
// same order and PSP reference is not created.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, order domain.Order, n domain.Notification, captureRequested bool) error {
	amount := s.currency.ChargedAmount(order)
	inv := &domain.Invoice{
		ID:               uuid.New(),
		OrderID:          order.ID,
		PSPReference:     n.PSPReference,
		Amount:           amount.Value,
		Currency:         amount.Currency,
		CaptureRequested: captureRequested,
		CreatedAt:        s.now(),
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	if !created {
		s.log.Warn().
			Str("increment_id", order.IncrementID).
			Str("psp_reference", n.PSPReference).
			Msg("invoice already exists, skipped")
		return nil
	}

	s.log.Info().
		Str("increment_id", order.IncrementID).
		Str("invoice_id", inv.ID.String()).
		Str("amount", amount.Value.String()).
		Str("currency", amount.Currency).
		Bool("capture_requested", captureRequested).
		Msg("invoice created")
	return nil
}
