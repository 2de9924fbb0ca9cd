package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "netbill:idempotency:"

// Store claims request idempotency keys in Redis. A key is claimed with
// SETNX and held for the configured TTL; a second request presenting the
// same key within that window is rejected as a replay.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Claim attempts to claim the key. It returns true when the key was free and
// is now held by this request, false when another request already holds it.
func (s *Store) Claim(ctx context.Context, key string) (bool, error) {
	redisKey := idempotencyKeyPrefix + key

	claimed, err := s.client.SetNX(ctx, redisKey, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	return claimed, nil
}

// Release frees a claimed key so the client may retry, used when the guarded
// operation fails before committing.
func (s *Store) Release(ctx context.Context, key string) error {
	redisKey := idempotencyKeyPrefix + key

	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
