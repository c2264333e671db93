// Package cache provides factory for snapshot cache backends.
package cache

import (
	"context"
	"fmt"

	"environment-deployments/config"
	"environment-deployments/internal/cache/memory"
	"environment-deployments/internal/cache/redis"
	"environment-deployments/internal/entities"

	"go.uber.org/zap"
)

// Store keeps one environment list per repository key inside a fixed
// validity window. Put replaces the whole entry atomically; Get returns
// entities.ErrCacheMiss for absent or expired entries.
type Store interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	Get(ctx context.Context, key entities.RepoKey) (*entities.CacheEntry, error)
	Put(ctx context.Context, key entities.RepoKey, data []entities.EnvironmentSnapshot) error
}

// New constructs a cache backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch name {
	case "memory":
		return memory.New(log, cfg.Cache.TTL), nil
	case "redis":
		return redis.New(ctx, log, cfg.Redis, cfg.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", name)
	}
}
