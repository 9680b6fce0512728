package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// placeholder value stored while the original request is still in flight.
const inFlightMarker = "in-flight"

// IdempotencyStore implements usecase.IdempotencyStore using Redis. It
// lets the HTTP layer replay the stored response for a repeated
// Idempotency-Key instead of running the transfer again.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idem:",
	}
}

// CheckAndSet atomically checks whether key already has a recorded
// response and claims it otherwise. It returns (true, response, nil)
// when the key was seen before; the response may be nil if the first
// request is still in flight.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	if response != nil {
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err == nil {
			return true, existing, nil
		}
		if err != redis.Nil {
			return false, nil, err
		}

		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}

		return false, nil, nil
	}

	claimed, err := s.client.SetNX(ctx, fullKey, inFlightMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if claimed {
		return false, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil && err != redis.Nil {
		return false, nil, err
	}
	if string(existing) == inFlightMarker {
		existing = nil
	}

	return true, existing, nil
}

// Update records the final response for a previously claimed key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
