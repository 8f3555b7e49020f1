// Package config provides environment-driven configuration for the service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default artifact file name inside the asset directory.
const defaultModelFile = "job_model.json"

// Config holds everything the server and CLI need. All fields come from
// environment variables; the .env file is loaded by main before this runs.
type Config struct {
	// Port is the HTTP listen port (PORT, default 8080).
	Port int

	// DatabaseURL is the primary structured store (DATABASE_URL). Empty
	// means no primary source: the loader goes straight to the fallback.
	DatabaseURL string

	// AssetDir holds the model artifact and the bundled CSV fallback
	// dataset (ASSET_DIR, default "ml_assets").
	AssetDir string

	// ModelPath overrides the artifact location (MODEL_PATH, default
	// AssetDir/job_model.json).
	ModelPath string

	// Strict disallows the CSV fallback (STRICT_ASSETS). When unset it is
	// auto-enabled whenever a primary store is configured, so a live store
	// is never silently shadowed by stale bundled data.
	Strict bool

	// ResolveThreshold is the minimum fuzzy-match score (RESOLVE_THRESHOLD,
	// default 70).
	ResolveThreshold int

	// WeightLevelOffset and WeightMax parameterize the legacy weight
	// policy (WEIGHT_LEVEL_OFFSET default 1, WEIGHT_MAX default 6).
	WeightLevelOffset float64
	WeightMax         float64

	// LogJSON selects JSON log output (LOG_JSON); Debug lowers the log
	// level (DEBUG).
	LogJSON bool
	Debug   bool
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              8080,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AssetDir:          "ml_assets",
		ModelPath:         os.Getenv("MODEL_PATH"),
		ResolveThreshold:  70,
		WeightLevelOffset: 1,
		WeightMax:         6,
		LogJSON:           boolEnv("LOG_JSON", false),
		Debug:             boolEnv("DEBUG", false),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = filepath.Join(cfg.AssetDir, defaultModelFile)
	}
	if v := os.Getenv("RESOLVE_THRESHOLD"); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid RESOLVE_THRESHOLD %q: %w", v, err)
		}
		cfg.ResolveThreshold = threshold
	}
	if v := os.Getenv("WEIGHT_LEVEL_OFFSET"); v != "" {
		offset, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid WEIGHT_LEVEL_OFFSET %q: %w", v, err)
		}
		cfg.WeightLevelOffset = offset
	}
	if v := os.Getenv("WEIGHT_MAX"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid WEIGHT_MAX %q: %w", v, err)
		}
		cfg.WeightMax = max
	}

	// Strict defaults to "primary store configured".
	if v := os.Getenv("STRICT_ASSETS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid STRICT_ASSETS %q: %w", v, err)
		}
		cfg.Strict = strict
	} else {
		cfg.Strict = cfg.DatabaseURL != ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside the pipeline.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.ResolveThreshold < 0 || c.ResolveThreshold > 100 {
		return fmt.Errorf("config error: resolve threshold %d out of range 0-100", c.ResolveThreshold)
	}
	if c.WeightMax <= 0 {
		return fmt.Errorf("config error: weight max must be positive")
	}
	if c.WeightLevelOffset <= 0 {
		return fmt.Errorf("config error: weight level offset must be positive")
	}
	return nil
}

func boolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
