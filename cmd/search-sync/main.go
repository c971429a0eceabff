// Command search-sync rebuilds the search indexes from the database.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	bservice "charity/internal/beneficiary/service"
	bstore "charity/internal/beneficiary/store"
	"charity/internal/charity"
	"charity/internal/location"
	"charity/internal/platform/config"
	"charity/internal/platform/logger"
	"charity/internal/platform/postgres"
	rservice "charity/internal/request/service"
	rstore "charity/internal/request/store"
	"charity/internal/search"
)

func main() {
	index := flag.String("index", "all", "index to rebuild: beneficiaries, requests or all")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *index, log); err != nil {
		log.Error("search sync failed", "index", *index, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, index string, log *slog.Logger) error {
	client := search.NewClient(cfg.Search)
	if client == nil {
		return errors.New("SEARCH_URL is not set")
	}
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("DATABASE_URL is not set")
	}
	defer db.Close()

	locations := location.NewService(location.NewPostgres(db), log)
	beneficiaries := bservice.NewService(bstore.NewPostgres(db), locations, bservice.WithLogger(log))
	requests := rservice.NewService(rstore.NewPostgres(db), beneficiaries,
		charity.NewService(charity.NewPostgres(db), log),
		rservice.WithLogger(log),
	)

	return search.NewSyncer(client, beneficiaries, requests, log).Sync(ctx, index)
}
