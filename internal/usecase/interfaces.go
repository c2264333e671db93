package usecase

import (
	"context"

	"environment-deployments/internal/entities"
)

// EnvironmentsUsecaseInterface abstracts the aggregation engine for the delivery layer.
type EnvironmentsUsecaseInterface interface {
	// GetEnvironments returns the latest deployment per environment of a
	// repository. Fetch failures never surface; the only possible error
	// is entities.ErrInvalidArgument for an empty repository key.
	GetEnvironments(ctx context.Context, key entities.RepoKey) ([]entities.EnvironmentSnapshot, error)
}
