// Command load-locations seeds provinces and cities from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"charity/internal/location"
	"charity/internal/platform/config"
	"charity/internal/platform/logger"
	"charity/internal/platform/postgres"
)

func main() {
	file := flag.String("file", "province_city.json", "path to the province/city JSON file")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(context.Background(), cfg, *file, log); err != nil {
		log.Error("location load failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, file string, log *slog.Logger) error {
	entries, err := readEntries(file)
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("DATABASE_URL is not set")
	}
	defer db.Close()
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	res, err := location.NewService(location.NewPostgres(db), log).Load(ctx, entries)
	if err != nil {
		return err
	}
	log.Info("locations loaded",
		"provinces_created", res.ProvincesCreated,
		"cities_created", res.CitiesCreated,
	)
	return nil
}

func readEntries(file string) ([]location.Entry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var entries []location.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return entries, nil
}
