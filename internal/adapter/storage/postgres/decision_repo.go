package postgres

import (
	"context"

	"webhook-reconciler/internal/core/domain"
)

// DecisionRepo implements ports.DecisionRepository.
type DecisionRepo struct {
	pool Pool
}

// NewDecisionRepo creates a PostgreSQL-backed DecisionRepository.
func NewDecisionRepo(pool Pool) *DecisionRepo {
	return &DecisionRepo{pool: pool}
}

func (r *DecisionRepo) Create(ctx context.Context, e *domain.DecisionEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_decisions
		(id, order_id, increment_id, psp_reference, event_code, kind, name, detail, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.OrderID, e.IncrementID, e.PSPReference, string(e.EventCode),
		string(e.Kind), e.Name, e.Detail, e.CreatedAt,
	)
	return err
}
