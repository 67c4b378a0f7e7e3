package postgres

import (
	"context"
	"fmt"

	"webhook-reconciler/internal/core/domain"
)

// ShipmentRepo implements ports.ShipmentRepository.
type ShipmentRepo struct {
	pool Pool
}

// NewShipmentRepo creates a new ShipmentRepo.
func NewShipmentRepo(pool Pool) *ShipmentRepo {
	return &ShipmentRepo{pool: pool}
}

// Create inserts a shipment request. One shipment per order.
func (r *ShipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	query := `INSERT INTO shipments (id, order_id, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, s.ID, s.OrderID, s.CreatedAt); err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}
