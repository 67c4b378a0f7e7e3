package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"webhook-reconciler/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultMailQueueKey is the list consumed by the mail delivery worker.
const DefaultMailQueueKey = "mail:outbox"

// MailQueue implements ports.Mailer by pushing messages onto a Redis list.
type MailQueue struct {
	client *goredis.Client
	key    string
}

// NewMailQueue creates a new Redis-backed mail queue. An empty key selects
// DefaultMailQueueKey.
func NewMailQueue(client *goredis.Client, key string) *MailQueue {
	if key == "" {
		key = DefaultMailQueueKey
	}
	return &MailQueue{client: client, key: key}
}

// Enqueue appends msg to the outbox.
func (q *MailQueue) Enqueue(ctx context.Context, msg domain.MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail message: %w", err)
	}
	if err := q.client.RPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("redis mail enqueue: %w", err)
	}
	return nil
}
