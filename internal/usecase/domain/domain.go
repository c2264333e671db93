package domain

import (
	"context"
	"time"

	"environment-deployments/internal/cache"
	"environment-deployments/internal/github"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	api      github.API
	store    cache.Store
	timeout  time.Duration
	pageSize int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	api github.API,
	store cache.Store,
	timeout time.Duration,
	pageSize int,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		api:      api,
		store:    store,
		timeout:  timeout,
		pageSize: pageSize,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
