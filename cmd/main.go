// Package main wires the HTTP server for the deployment aggregation service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"environment-deployments/internal/transport/http/server/handlers-fiber"
	"environment-deployments/internal/usecase"

	"environment-deployments/config"
	"environment-deployments/internal/api"
	"environment-deployments/internal/cache"
	"environment-deployments/internal/github"
	"environment-deployments/internal/transport/http/middleware"
	"environment-deployments/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	store, err := cache.New(ctx, cfg.Cache.Backend, log, cfg)
	if err != nil {
		log.Errorw("cache initialization error", "error", err)
		return
	}
	if err := store.OnStart(ctx); err != nil {
		log.Errorw("cache start error", "error", err)
		return
	}
	defer func() {
		_ = store.OnStop(context.Background())
	}()

	client := github.NewClient(log, cfg.GitHub)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, client, store, timeout, cfg.GitHub.PageSize)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
