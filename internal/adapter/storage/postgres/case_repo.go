package postgres

import (
	"context"
	"fmt"

	"webhook-reconciler/internal/core/domain"
)

// CaseRepo implements ports.CaseRepository.
type CaseRepo struct {
	pool Pool
}

// NewCaseRepo creates a new CaseRepo.
func NewCaseRepo(pool Pool) *CaseRepo {
	return &CaseRepo{pool: pool}
}

// Create inserts a fraud review case.
func (r *CaseRepo) Create(ctx context.Context, c *domain.FraudCase) error {
	query := `INSERT INTO fraud_cases (id, order_id, psp_reference, kind, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, c.ID, c.OrderID, c.PSPReference, string(c.Kind), c.Comment, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert fraud case: %w", err)
	}
	return nil
}
