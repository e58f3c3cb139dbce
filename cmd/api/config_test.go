package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadsafety-dashboard/roadsafety/internal/appconf"
)

func noEnv(string) string { return "" }

func TestParseConfigDefaults(t *testing.T) {
	cfg, dataCfg, err := parseConfig(nil, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, appconf.Development, cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, "merged_dataset.csv", dataCfg.DataPath)
	assert.Empty(t, dataCfg.DBPath)
	assert.True(t, dataCfg.Verbose)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, dataCfg, err := parseConfig([]string{
		"-port", "8080",
		"-env", "production",
		"-api-keys", " alpha, ,beta ",
		"-data", "https://example.org/data.csv",
		"-db", "snapshot.db",
		"-rate-limit", "-1",
		"-cache-ttl", "5m",
	}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, appconf.Production, cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, -1, cfg.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "https://example.org/data.csv", dataCfg.DataPath)
	assert.Equal(t, "snapshot.db", dataCfg.DBPath)
	assert.False(t, dataCfg.Verbose)
}

func TestParseConfigEnvironmentDefaults(t *testing.T) {
	env := map[string]string{
		"ROADSAFETY_PORT":       "9000",
		"ROADSAFETY_API_KEYS":   "from-env",
		"ROADSAFETY_LOG_LEVEL":  "debug",
		"ROADSAFETY_CACHE_TTL":  "not-a-duration",
		"ROADSAFETY_RATE_LIMIT": "7",
	}
	getenv := func(name string) string { return env[name] }

	cfg, _, err := parseConfig([]string{"-port", "9100"}, getenv)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port, "flags override the environment")
	assert.Equal(t, []string{"from-env"}, cfg.ApiKeys)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.RateLimit)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	_, _, err := parseConfig([]string{"-port", "70000"}, noEnv)
	assert.Error(t, err)

	_, _, err = parseConfig([]string{"-data", ""}, noEnv)
	assert.Error(t, err)

	_, _, err = parseConfig([]string{"-unknown"}, noEnv)
	assert.Error(t, err)
}
