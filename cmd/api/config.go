package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roadsafety-dashboard/roadsafety/internal/appconf"
	"github.com/roadsafety-dashboard/roadsafety/internal/dataset"
)

const envPrefix = "ROADSAFETY_"

// parseConfig reads command-line flags. Each flag takes its default from the
// matching ROADSAFETY_* environment variable when one is set.
func parseConfig(args []string, getenv func(string) string) (appconf.Config, dataset.Config, error) {
	var cfg appconf.Config
	var dataCfg dataset.Config
	var envFlag, apiKeysFlag string

	fs := flag.NewFlagSet("roadsafety", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", envInt(getenv, "PORT", 4000), "API server port")
	fs.StringVar(&envFlag, "env", envString(getenv, "ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", envString(getenv, "API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	fs.StringVar(&dataCfg.DataPath, "data", envString(getenv, "DATA", "merged_dataset.csv"), "Path or URL of the indicator CSV, or a .db snapshot")
	fs.StringVar(&dataCfg.DBPath, "db", envString(getenv, "DB", ""), "Optional SQLite snapshot written after loading the CSV")
	fs.IntVar(&cfg.RateLimit, "rate-limit", envInt(getenv, "RATE_LIMIT", 100), "Requests per second per API key (negative disables limiting)")
	fs.StringVar(&cfg.LogLevel, "log-level", envString(getenv, "LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", envDuration(getenv, "CACHE_TTL", 0), "Profile cache TTL (0 caches forever, negative disables)")

	if err := fs.Parse(args); err != nil {
		return cfg, dataCfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	dataCfg.Verbose = cfg.Env == appconf.Development

	if apiKeysFlag != "" {
		for _, key := range strings.Split(apiKeysFlag, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.ApiKeys = append(cfg.ApiKeys, key)
			}
		}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, dataCfg, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if dataCfg.DataPath == "" {
		return cfg, dataCfg, fmt.Errorf("no data source given")
	}

	return cfg, dataCfg, nil
}

func envString(getenv func(string) string, name, fallback string) string {
	if v := getenv(envPrefix + name); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, name string, fallback int) int {
	if n, err := strconv.Atoi(getenv(envPrefix + name)); err == nil {
		return n
	}
	return fallback
}

func envDuration(getenv func(string) string, name string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getenv(envPrefix + name)); err == nil {
		return d
	}
	return fallback
}
