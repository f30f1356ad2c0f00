package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MAPS_API_KEY", "")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ProviderGoogle, cfg.Maps.Provider)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 43.0, cfg.Maps.DefaultLat)
	assert.Equal(t, -80.0, cfg.Maps.DefaultLng)
	assert.Equal(t, 10, cfg.Maps.DefaultZoom)
	assert.Equal(t, time.Hour, cfg.Cache.DirectionsTTL)
	assert.Equal(t, "commute_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Worker.CachePurgeInterval)
	assert.False(t, cfg.HasMapsCredential())
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "MAPS_PROVIDER=mapbox\nMAPS_API_KEY=file-key\nAPI_PORT=9090\nCACHE_BACKEND=none\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("API_PORT", "9191")

	cfg, err := load(viper.New(), envFile)
	require.NoError(t, err)

	assert.Equal(t, ProviderMapbox, cfg.Maps.Provider)
	assert.Equal(t, "file-key", cfg.Maps.APIKey)
	assert.Equal(t, "file-key", cfg.Maps.BrowserKey)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, CacheBackendNone, cfg.Cache.Backend)
	assert.True(t, cfg.HasMapsCredential())
	assert.Equal(t, "0.0.0.0:9191", cfg.GetServerAddr())
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("MAPS_PROVIDER", "bing")

	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAPS_PROVIDER")
}

func TestLoad_RejectsUnknownCacheBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
}
