package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunLocker implements usecase.RunLocker using Redis. The lock is a SetNX
// key with a TTL, so a crashed run releases itself when the TTL expires.
type RunLocker struct {
	client *redis.Client
	prefix string
}

// NewRunLocker creates a new RunLocker.
func NewRunLocker(client *redis.Client) *RunLocker {
	return &RunLocker{
		client: client,
		prefix: "runlock:",
	}
}

// Acquire takes the lock if nobody holds it. Returns false when another run
// got there first.
func (l *RunLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+key, "running", ttl).Result()
}

// Release frees the lock.
func (l *RunLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
