package usecase

import (
	"context"
	"time"

	"environment-deployments/internal/cache"
	"environment-deployments/internal/github"
	"environment-deployments/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	EnvironmentsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, api github.API, store cache.Store, timeout time.Duration, pageSize int) InterfaceUsecase {
	return domain.New(log, ctx, api, store, timeout, pageSize)
}
