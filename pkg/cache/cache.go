package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a TTL cache for JSON-serializable values. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get unmarshals the cached value into out. The bool reports a hit;
	// expired entries count as misses.
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Len(ctx context.Context) int
}

// New returns a Redis-backed store when a client is available, otherwise a
// bounded in-memory store.
func New(client *redis.Client, memoryCapacity int) Store {
	if client != nil {
		return &redisStore{client: client, prefix: "extjobs:"}
	}
	return NewMemoryStore(memoryCapacity)
}

type redisStore struct {
	client *redis.Client
	prefix string
}

func (s *redisStore) Get(ctx context.Context, key string, out any) (bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+key, b, ttl).Err()
}

func (s *redisStore) Len(ctx context.Context) int {
	var count int
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}
