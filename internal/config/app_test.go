package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInit_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9000"
preferences:
  backend: postgres
db_server:
  host: db
  port: "5432"
  user: gold
  pass: secret
  name: goldprice
scheduler:
  refresh_interval_sec: 15
pricing:
  timezone: Africa/Casablanca
`)

	cfg, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.HTTPServer.Port)
	require.Equal(t, BackendPostgres, cfg.Preferences.Backend)
	require.Equal(t, "user=gold password=secret host=db port=5432 dbname=goldprice sslmode=disable", cfg.DbServer.DSN())
	require.Equal(t, int32(10), cfg.DbServer.MaxConns)
	require.Equal(t, 15*time.Second, cfg.Scheduler.RefreshInterval())

	loc, err := cfg.Pricing.Location()
	require.NoError(t, err)
	require.Equal(t, "Africa/Casablanca", loc.String())
}

func TestInit_Defaults(t *testing.T) {
	cfg, err := Init(writeConfig(t, "{}"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, BackendMemory, cfg.Preferences.Backend)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, int64(1000), cfg.Cache.HistoryMaxItems)
	require.Equal(t, time.Minute, cfg.Scheduler.RefreshInterval())
	require.Equal(t, "UTC", cfg.Pricing.Timezone)
}

func TestInit_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9000"
`)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("PREFERENCES_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REFRESH_INTERVAL_SEC", "5")

	cfg, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.HTTPServer.Port)
	require.Equal(t, BackendRedis, cfg.Preferences.Backend)
	require.Equal(t, "cache:6380", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, 5*time.Second, cfg.Scheduler.RefreshInterval())
}

func TestInit_MissingExplicitFile(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInit_UnknownBackend(t *testing.T) {
	_, err := Init(writeConfig(t, `
preferences:
  backend: sqlite
`))
	require.ErrorContains(t, err, `unknown preferences backend "sqlite"`)
}

func TestPricing_InvalidTimezone(t *testing.T) {
	_, err := Pricing{Timezone: "Mars/Olympus"}.Location()
	require.Error(t, err)
}
