package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
mapgen:
  seed: 42
  water_level: 3
  lighting_engine: legacy
  flags: "trees,nocaves"
metrics:
  port: 9200
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, int64(42), cfg.Mapgen.Seed)
	assert.Equal(t, 3, cfg.Mapgen.WaterLevel)
	assert.Equal(t, "legacy", cfg.Mapgen.LightingEngine)
	assert.Equal(t, "trees,nocaves", cfg.Mapgen.Flags)
	assert.Equal(t, 9200, cfg.Metrics.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestLoadNoPathNoEnv(t *testing.T) {
	t.Setenv("MAPGEN_CONFIG", "")

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("mapgen:\n  seed: 7\n"), 0644))
	t.Setenv("MAPGEN_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, int64(7), cfg.Mapgen.Seed)
}

func TestSeedEnvFallback(t *testing.T) {
	m := &MapgenConfig{}

	t.Setenv("MAPGEN_SEED", "")
	assert.Equal(t, int64(1337), m.GetSeed(), "дефолтный сид")

	t.Setenv("MAPGEN_SEED", "90001")
	assert.Equal(t, int64(90001), m.GetSeed(), "сид из окружения")

	m.Seed = 5
	assert.Equal(t, int64(5), m.GetSeed(), "конфиг имеет приоритет над окружением")
}

func TestLightingEngineEnvFallback(t *testing.T) {
	m := &MapgenConfig{}

	t.Setenv("MAPGEN_LIGHTING_ENGINE", "")
	assert.Equal(t, "simplified", m.GetLightingEngine())

	t.Setenv("MAPGEN_LIGHTING_ENGINE", "legacy")
	assert.Equal(t, "legacy", m.GetLightingEngine())

	m.LightingEngine = "simplified"
	assert.Equal(t, "simplified", m.GetLightingEngine())
}

func TestMetricsPortEnvFallback(t *testing.T) {
	mc := &MetricsConfig{}

	t.Setenv("MAPGEN_METRICS_PORT", "")
	assert.Equal(t, 2112, mc.GetMetricsPort())

	t.Setenv("MAPGEN_METRICS_PORT", "8081")
	assert.Equal(t, 8081, mc.GetMetricsPort())

	t.Setenv("MAPGEN_METRICS_PORT", "not-a-port")
	assert.Equal(t, 2112, mc.GetMetricsPort())

	mc.Port = 9100
	assert.Equal(t, 9100, mc.GetMetricsPort())
}
