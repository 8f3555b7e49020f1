package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "ASSET_DIR", "MODEL_PATH", "STRICT_ASSETS",
		"RESOLVE_THRESHOLD", "WEIGHT_LEVEL_OFFSET", "WEIGHT_MAX", "LOG_JSON", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "ml_assets", cfg.AssetDir)
	assert.Equal(t, filepath.Join("ml_assets", "job_model.json"), cfg.ModelPath)
	assert.Equal(t, 70, cfg.ResolveThreshold)
	assert.Equal(t, 1.0, cfg.WeightLevelOffset)
	assert.Equal(t, 6.0, cfg.WeightMax)
	assert.False(t, cfg.Strict)
}

func TestLoad_StrictAutoEnabledWithDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/advisor")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_StrictExplicitOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/advisor")
	t.Setenv("STRICT_ASSETS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Strict)
}

func TestLoad_ModelPathFollowsAssetDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSET_DIR", "/data/assets")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/assets", "job_model.json"), cfg.ModelPath)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_ThresholdOutOfRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESOLVE_THRESHOLD", "150")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_WeightPolicyOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEIGHT_LEVEL_OFFSET", "2")
	t.Setenv("WEIGHT_MAX", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.WeightLevelOffset)
	assert.Equal(t, 12.0, cfg.WeightMax)
}
