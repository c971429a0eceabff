package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"charity/internal/platform/config"
	"charity/internal/platform/httpserver"
	"charity/internal/platform/logger"
)

// main loads configuration, builds the application and runs the HTTP server
// and the announcement worker until SIGINT or SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	a, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.auth.SeedStaff(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return err
	}

	srv := httpserver.New(cfg.Server.Addr, a.router(cfg, log))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(ctx, srv, log)
	})
	if a.consumer != nil {
		g.Go(func() error {
			log.Info("announcement worker started", "topic", cfg.Kafka.AnnouncementTopic)
			if err := a.consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
