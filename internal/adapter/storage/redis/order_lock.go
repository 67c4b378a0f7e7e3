package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrLockNotHeld is returned on release when the lease expired and another
// holder took the lock.
var ErrLockNotHeld = errors.New("order lock not held")

const lockRetryInterval = 50 * time.Millisecond

// releaseScript deletes the key only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// OrderLock implements ports.OrderLock using Redis SET NX with a lease.
type OrderLock struct {
	client *goredis.Client
	prefix string
}

// NewOrderLock creates a new Redis-backed order lock.
func NewOrderLock(client *goredis.Client) *OrderLock {
	return &OrderLock{
		client: client,
		prefix: "lock:",
	}
}

// Acquire retries SET NX until the key is free or ctx is done.
func (l *OrderLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.tryAcquire(ctx, fullKey, token, ttl)
		if err != nil {
			return nil, err
		}
		if ok {
			return func(ctx context.Context) error {
				return l.release(ctx, fullKey, token)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire %s: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *OrderLock) tryAcquire(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			// Held by someone else
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return result == "OK", nil
}

func (l *OrderLock) release(ctx context.Context, key, token string) error {
	n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}
