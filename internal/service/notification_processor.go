package service

import (
	"context"
	"fmt"
	"time"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultLockTTL  = 30 * time.Second
	defaultLockWait = 10 * time.Second
)

// ProcessorOptions tune the per-order lock.
type ProcessorOptions struct {
	LockTTL  time.Duration
	LockWait time.Duration
}

// NotificationProcessorService implements ports.NotificationProcessor.
type NotificationProcessorService struct {
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	router        ports.WebhookRouter
	lock          ports.OrderLock
	opts          ProcessorOptions
	log           zerolog.Logger
}

// NewNotificationProcessor creates a new NotificationProcessorService.
func NewNotificationProcessor(
	orders ports.OrderRepository,
	notifications ports.NotificationRepository,
	router ports.WebhookRouter,
	lock ports.OrderLock,
	opts ProcessorOptions,
	log zerolog.Logger,
) *NotificationProcessorService {
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}
	if opts.LockWait <= 0 {
		opts.LockWait = defaultLockWait
	}
	return &NotificationProcessorService{
		orders:        orders,
		notifications: notifications,
		router:        router,
		lock:          lock,
		opts:          opts,
		log:           log,
	}
}

// Process logs the notification, reconciles it against its order under the
// per-order lock and writes the resulting snapshot once. On error nothing is
// saved and the notification is marked failed.
func (p *NotificationProcessorService) Process(ctx context.Context, n domain.Notification) (domain.Order, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if err := p.notifications.Create(ctx, &n); err != nil {
		return domain.Order{}, apperror.ErrDatabaseError(fmt.Errorf("store notification: %w", err))
	}

	order, err := p.reconcile(ctx, n)
	if err != nil {
		if markErr := p.notifications.MarkFailed(context.WithoutCancel(ctx), n.ID, err.Error()); markErr != nil {
			p.log.Warn().Err(markErr).Str("notification_id", n.ID.String()).Msg("failed to mark notification failed")
		}
		return domain.Order{}, err
	}

	if err := p.notifications.MarkProcessed(ctx, n.ID); err != nil {
		p.log.Warn().Err(err).Str("notification_id", n.ID.String()).Msg("failed to mark notification processed")
	}
	return order, nil
}

func (p *NotificationProcessorService) reconcile(ctx context.Context, n domain.Notification) (domain.Order, error) {
	lockCtx, cancel := context.WithTimeout(ctx, p.opts.LockWait)
	defer cancel()

	release, err := p.lock.Acquire(lockCtx, orderLockKey(n.MerchantReference), p.opts.LockTTL)
	if err != nil {
		return domain.Order{}, apperror.ErrLockTimeout(err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			p.log.Warn().Err(err).Str("merchant_reference", n.MerchantReference).Msg("failed to release order lock")
		}
	}()

	current, err := p.orders.GetByIncrementID(ctx, n.MerchantReference)
	if err != nil {
		return domain.Order{}, apperror.ErrDatabaseError(fmt.Errorf("load order: %w", err))
	}
	if current == nil {
		return domain.Order{}, apperror.ErrOrderNotFound(n.MerchantReference)
	}

	transition := domain.DeriveTransitionState(n)
	updated, err := p.router.Handle(ctx, current.Clone(), n, transition)
	if err != nil {
		return domain.Order{}, err
	}

	updated = rememberEvent(updated, n)

	saved, err := p.orders.Save(ctx, updated)
	if err != nil {
		return domain.Order{}, err
	}

	p.log.Info().
		Str("increment_id", saved.IncrementID).
		Str("event", n.EventLabel()).
		Str("transition", string(transition)).
		Str("state", string(saved.State)).
		Str("status", saved.Status).
		Int64("version", saved.Version).
		Msg("notification reconciled")
	return saved, nil
}

// rememberEvent records the outcome of an authorisation on the order. A
// successful authorisation is never overwritten by a later failure.
func rememberEvent(order domain.Order, n domain.Notification) domain.Order {
	if n.EventCode != domain.EventCodeAuthorisation {
		return order
	}
	if order.PreviousEventCode == domain.PreviousEventAuthorised && !n.Success {
		return order
	}
	out := order.Clone()
	out.PreviousEventCode = n.EventLabel()
	return out
}

func orderLockKey(incrementID string) string {
	return "order:" + incrementID
}
