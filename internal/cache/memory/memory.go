// Package memory implements the snapshot cache as a process-local map.
package memory

import (
	"context"
	"sync"
	"time"

	"environment-deployments/internal/entities"

	"go.uber.org/zap"
)

// Memory is the reference cache backend: a process-wide map with lazy
// expiry on read and no background eviction. Entries live until they
// are replaced or the process exits.
type Memory struct {
	log *zap.SugaredLogger
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entities.CacheEntry
}

// New creates a memory cache with the given validity window.
func New(log *zap.SugaredLogger, ttl time.Duration) *Memory {
	return &Memory{
		log:     log.Named("cache.memory"),
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entities.CacheEntry),
	}
}

// OnStart is a no-op; the map is ready at construction.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op; entries are torn down with the process.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// Get returns the entry for a repository key, or entities.ErrCacheMiss
// when absent or older than the validity window. Expired entries stay
// in the map until the next Put replaces them.
func (m *Memory) Get(_ context.Context, key entities.RepoKey) (*entities.CacheEntry, error) {
	m.mu.RLock()
	entry, ok := m.entries[key.String()]
	m.mu.RUnlock()

	if !ok || m.now().Sub(entry.FetchedAt) >= m.ttl {
		return nil, entities.ErrCacheMiss
	}
	return &entry, nil
}

// Put stores a fresh entry for the key, replacing any previous one.
func (m *Memory) Put(_ context.Context, key entities.RepoKey, data []entities.EnvironmentSnapshot) error {
	entry := entities.CacheEntry{Data: data, FetchedAt: m.now()}

	m.mu.Lock()
	m.entries[key.String()] = entry
	m.mu.Unlock()

	m.log.Debugw("cache put", "repo", key.String(), "environments", len(data))
	return nil
}
