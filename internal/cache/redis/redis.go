// Package redis implements the snapshot cache against a shared Redis instance.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"environment-deployments/config"
	"environment-deployments/internal/entities"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "envdeploy:"

// Redis is the opt-in shared cache backend for multi-replica
// deployments. Entries are JSON-encoded and carry the validity window
// as a native TTL, so expiry is enforced by the store itself.
type Redis struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.RedisConfig
	ttl     time.Duration
	client  *redis.Client
}

// New creates a Redis cache instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.RedisConfig, ttl time.Duration) *Redis {
	return &Redis{
		baseCtx: ctx,
		log:     log.Named("cache.redis"),
		cfg:     cfg,
		ttl:     ttl,
	}
}

// OnStart establishes the connection and verifies it with a ping.
func (r *Redis) OnStart(_ context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:        r.cfg.Addr(),
		Password:    r.cfg.Password,
		DB:          r.cfg.DB,
		DialTimeout: r.cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(r.baseCtx, r.cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	r.client = client
	r.log.Infow("redis ready", "addr", r.cfg.Addr())
	return nil
}

// OnStop closes the connection.
func (r *Redis) OnStop(_ context.Context) error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Get returns the entry for a repository key, or entities.ErrCacheMiss
// once the TTL has elapsed and the store dropped the key.
func (r *Redis) Get(ctx context.Context, key entities.RepoKey) (*entities.CacheEntry, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, entities.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry entities.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	return &entry, nil
}

// Put stores a fresh entry under the key with the validity window as TTL.
func (r *Redis) Put(ctx context.Context, key entities.RepoKey, data []entities.EnvironmentSnapshot) error {
	entry := entities.CacheEntry{Data: data, FetchedAt: time.Now()}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+key.String(), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	r.log.Debugw("cache put", "repo", key.String(), "environments", len(data))
	return nil
}
