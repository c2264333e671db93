// Package domain contains application services orchestrating deployment aggregation.
package domain

import (
	"context"
	"errors"
	"fmt"

	"environment-deployments/internal/entities"
)

// GetEnvironments returns the latest deployment per environment of a
// repository. Fresh cache entries are served without network calls;
// otherwise one fetch cycle runs and its result replaces the entry.
// Fetch failures degrade to an empty list and are only logged.
func (u *Usecase) GetEnvironments(ctx context.Context, key entities.RepoKey) ([]entities.EnvironmentSnapshot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if key.Owner == "" || key.Name == "" {
		return nil, fmt.Errorf("%w: owner and name are required", entities.ErrInvalidArgument)
	}

	entry, err := u.store.Get(ctx, key)
	if err == nil {
		return entry.Data, nil
	}
	if !errors.Is(err, entities.ErrCacheMiss) {
		u.log.Warnw("cache read failed", "repo", key.String(), "error", err)
	}

	snapshots := u.fetchEnvironments(ctx, key)

	if err := u.store.Put(ctx, key, snapshots); err != nil {
		u.log.Warnw("cache write failed", "repo", key.String(), "error", err)
	}

	return snapshots, nil
}
