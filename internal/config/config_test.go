package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[booking]
max_normal_per_day = 6
urgent_reference_hour = 10
enforce_urgent_cap = true

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "orders-test"

[redis]
ttl_seconds = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.Booking.Rules()
	assert.Equal(t, 6, rules.MaxNormalPerDay)
	assert.Equal(t, 10, rules.UrgentReferenceHour)
	assert.True(t, rules.EnforceUrgentCap)
	// untouched keys keep their defaults
	assert.Equal(t, 36, rules.UrgentMinHours)
	assert.Equal(t, 30, rules.AdvancePaymentPercent)

	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "orders-test", cfg.Metrics.ServiceName)
	assert.Equal(t, 30, cfg.Redis.TTLSeconds)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[database]
host = "db.local"
password = "from-file"
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "")
	writeFile(t, dir, ".env", "LOG_LEVEL=debug\n")
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "")
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_InvalidRules(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[booking]
max_normal_per_day = 0
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[booking]
timezone = "Mars/Olympus"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "sliques", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=sliques sslmode=disable", d.DSN())
}
