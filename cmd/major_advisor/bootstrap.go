package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/config"
	"github.com/jonathan/major-advisor/internal/db"
	"github.com/jonathan/major-advisor/internal/logger"
)

// bootstrap wires config, logging, the optional primary store and the asset
// loader, and performs the initial snapshot load. The returned cleanup closes
// the database pool and flushes the logger.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *assets.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var primary assets.Source
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			if cfg.Strict {
				_ = log.Sync()
				return nil, nil, nil, nil, fmt.Errorf("strict mode: primary store unavailable: %w", err)
			}
			log.Warn("primary store unavailable, relying on bundled fallback", zap.Error(err))
		} else {
			primary = assets.NewDBSource(database)
		}
	}

	loader := &assets.Loader{
		ModelPath: cfg.ModelPath,
		Primary:   primary,
		Fallback:  assets.NewCSVSource(cfg.AssetDir),
		Strict:    cfg.Strict,
		Logger:    log,
	}
	store := assets.NewStore(loader)

	cleanup := func() {
		if database != nil {
			database.Close()
		}
		_ = log.Sync()
	}

	// The process must not become ready on a failed load.
	if _, err := store.Reload(ctx); err != nil {
		cleanup()
		return nil, nil, nil, nil, fmt.Errorf("asset load failed: %w", err)
	}

	return cfg, log, store, cleanup, nil
}
