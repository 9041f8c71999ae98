// Package cache provides the small read-through cache used by tax lookups.
// Redis backs it when REDIS_URL is configured; otherwise an in-process TTL
// map does, which is plenty for a single-instance deployment.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a string cache with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// NewRedis creates a redis-backed store from a redis URL.
func NewRedis(redisURL string) (Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &redisStore{client: redis.NewClient(opts)}, nil
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	// Cache writes are best effort; a lost entry just means another lookup.
	_ = s.client.Set(ctx, key, value, ttl).Err()
}

// NewMemory creates an in-process store.
func NewMemory() Store {
	return &memoryStore{entries: map[string]memoryEntry{}}
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	// Opportunistic sweep so the map doesn't grow without bound.
	if len(s.entries) > 4096 {
		now := time.Now()
		for k, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, k)
			}
		}
	}
}
