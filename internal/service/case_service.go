package service

import (
	"context"
	"fmt"
	"time"

	"webhook-reconciler/config"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CaseManagementService implements ports.CaseService.
type CaseManagementService struct {
	repo ports.CaseRepository
	cfg  ports.ConfigSource
	now  func() time.Time
	log  zerolog.Logger
}

// NewCaseManagementService creates a new CaseManagementService.
func NewCaseManagementService(repo ports.CaseRepository, cfg ports.ConfigSource, log zerolog.Logger) *CaseManagementService {
	return &CaseManagementService{
		repo: repo,
		cfg:  cfg,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

// MarkPendingReview opens a review case and applies the configured review
// status. Manual-capture reviews also move the order to PENDING_REVIEW.
func (s *CaseManagementService) MarkPendingReview(ctx context.Context, order domain.Order, pspReference string, autoCapture bool) (domain.Order, error) {
	kind := domain.CaseKindManualReview
	comment := fmt.Sprintf("Manual review required for order w/ pspReference: %s. Please check the Adyen platform.", pspReference)
	if autoCapture {
		kind = domain.CaseKindCapturePendingReview
		comment = fmt.Sprintf("Manual review required for order w/ pspReference: %s. Capture will follow once the review is accepted.", pspReference)
	}

	c := &domain.FraudCase{
		ID:           uuid.New(),
		OrderID:      order.ID,
		PSPReference: pspReference,
		Kind:         kind,
		Comment:      comment,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return order, fmt.Errorf("create review case: %w", err)
	}

	status := s.cfg.Get(config.KeyFraudManualReviewStatus, config.ScopeAbstract, order.StoreID)
	if status == "" {
		status = domain.StatusPaymentReview
	}

	out := order
	if !autoCapture {
		out = out.WithState(domain.OrderStatePendingReview)
	}
	out = out.WithStatus(status).WithComment(comment, s.now())

	s.log.Info().
		Str("increment_id", order.IncrementID).
		Str("psp_reference", pspReference).
		Str("kind", string(kind)).
		Msg("order marked for manual review")
	return out, nil
}
