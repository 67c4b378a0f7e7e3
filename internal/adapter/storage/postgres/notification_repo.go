package postgres

import (
	"context"
	"time"

	"webhook-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	pool Pool
	now  func() time.Time
}

// NewNotificationRepo creates a PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(pool Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	now := r.now()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications
		(id, event_code, success, psp_reference, original_reference, merchant_account, merchant_reference,
		 payment_method, amount, currency, reason, additional_data, live, event_date, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		n.ID, string(n.EventCode), n.Success, n.PSPReference, n.OriginalReference, n.MerchantAccount,
		n.MerchantReference, n.PaymentMethod, n.Amount, n.Currency, n.Reason, n.AdditionalData,
		n.Live, n.EventDate, string(domain.NotificationStatusReceived), now, now,
	)
	return err
}

func (r *NotificationRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET status=$1, last_error=NULL, updated_at=$2 WHERE id=$3`,
		string(domain.NotificationStatusProcessed), r.now(), id,
	)
	return err
}

func (r *NotificationRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET status=$1, last_error=$2, attempts=attempts+1, updated_at=$3 WHERE id=$4`,
		string(domain.NotificationStatusFailed), reason, r.now(), id,
	)
	return err
}
