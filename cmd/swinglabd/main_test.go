package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swinglab/swinglab/internal/ingestion"
	"github.com/swinglab/swinglab/pkg/config"
	"github.com/swinglab/swinglab/pkg/scoring"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SWINGLAB_TEST_SET", "value")
	assert.Equal(t, "value", envOrDefault("SWINGLAB_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", envOrDefault("SWINGLAB_TEST_UNSET", "fallback"))
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("STORAGE_BUCKET", "swings")
	t.Setenv("SKIP_MIGRATIONS", "1")

	cfg := loadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "swings", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, scoring.Defaults().Sequence, cfg.Policy.Sequence)
}

func TestLoadConfigCarriesFilePolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  pillar_weights:\n    anchor: 1\n    stability: 1\n    whip: 1\n"), 0o644))
	t.Setenv("SWINGLAB_CONFIG", path)

	cfg := loadConfig()
	assert.Equal(t, scoring.PillarWeights{Anchor: 1, Stability: 1, Whip: 1}, cfg.Policy.Pillars)

	an, err := buildAnalyzer(cfg)
	require.NoError(t, err)
	require.NotNil(t, an)
}

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	s, err := newStorage(ctx, daemonConfig{Storage: config.StorageConfig{Backend: "local", LocalPath: t.TempDir()}})
	require.NoError(t, err)
	assert.IsType(t, &ingestion.LocalStorage{}, s)

	_, err = newStorage(ctx, daemonConfig{Storage: config.StorageConfig{Backend: "ftp"}})
	assert.Error(t, err)
}

func TestBuildAnalyzerDefaultCatalog(t *testing.T) {
	an, err := buildAnalyzer(daemonConfig{Policy: scoring.Defaults()})
	require.NoError(t, err)
	require.NotNil(t, an)
}
