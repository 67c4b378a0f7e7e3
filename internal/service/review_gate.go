package service

import (
	"webhook-reconciler/internal/core/domain"
)

// ManualReviewGate implements ports.ReviewPolicy over provider risk fields.
type ManualReviewGate struct{}

// NewManualReviewGate creates a new ManualReviewGate.
func NewManualReviewGate() *ManualReviewGate {
	return &ManualReviewGate{}
}

// RequiresManualReview reports whether the provider flagged the payment for
// manual fraud review. An empty bag never requires review.
func (g *ManualReviewGate) RequiresManualReview(data domain.AdditionalData) bool {
	return data.Flag(domain.KeyFraudManualReview)
}
