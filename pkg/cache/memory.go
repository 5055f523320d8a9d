package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const DefaultMemoryCapacity = 512

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
	storedAt  time.Time
}

// MemoryStore is a bounded, mutex-guarded TTL map. When full it evicts the
// oldest entry by insertion time. Values round-trip through JSON so the
// store behaves identically to the Redis implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	capacity int
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{
		entries:  make(map[string]memoryEntry),
		capacity: capacity,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock: another goroutine may have
		// refreshed the key.
		if cur, ok := s.entries[key]; ok && time.Now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop expired entries first so they free capacity before eviction.
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		s.evictOldestLocked()
	}

	s.entries[key] = memoryEntry{
		data:      b,
		expiresAt: now.Add(ttl),
		storedAt:  now,
	}
	return nil
}

func (s *MemoryStore) Len(_ context.Context) int {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, e := range s.entries {
		if now.Before(e.expiresAt) {
			count++
		}
	}
	return count
}

func (s *MemoryStore) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range s.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.storedAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}
