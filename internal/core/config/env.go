package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: INCSTATE_[SECTION]_[KEY] (e.g., INCSTATE_STORE_PATH).
func ApplyEnvOverrides(cfg *Config) {
	// Rewrite
	setEnvList(&cfg.Rewrite.Roots, "INCSTATE_REWRITE_ROOTS")
	setEnvList(&cfg.Rewrite.StripTimestamps, "INCSTATE_REWRITE_STRIP_TIMESTAMPS")

	setEnvInt(&cfg.Cache.Size, "INCSTATE_CACHE_SIZE")

	// Store
	setEnvBool(&cfg.Store.Enabled, "INCSTATE_STORE_ENABLED")
	setEnvString(&cfg.Store.Path, "INCSTATE_STORE_PATH")
	setEnvString(&cfg.Store.ProjectKey, "INCSTATE_STORE_PROJECT_KEY")
	setEnvDuration(&cfg.Store.BusyTimeout, "INCSTATE_STORE_BUSY_TIMEOUT")

	// Watch
	setEnvDuration(&cfg.Watch.Debounce, "INCSTATE_WATCH_DEBOUNCE")
	setEnvFloat64(&cfg.Watch.RateLimit, "INCSTATE_WATCH_RATE_LIMIT")

	// Telemetry
	setEnvString(&cfg.Telemetry.MetricsAddr, "INCSTATE_TELEMETRY_METRICS_ADDR")
	setEnvString(&cfg.Telemetry.OTLPEndpoint, "INCSTATE_TELEMETRY_OTLP_ENDPOINT")
	setEnvString(&cfg.Telemetry.ServiceName, "INCSTATE_TELEMETRY_SERVICE_NAME")
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

// setEnvList splits on the OS path list separator.
func setEnvList(target *[]string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		var out []string
		for _, part := range strings.Split(val, string(os.PathListSeparator)) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*target = out
	}
}

func setEnvInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", i)
			*target = i
		} else {
			slog.Warn("invalid integer env override", "key", key, "value", val, "error", err)
		}
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", b)
			*target = b
		} else {
			slog.Warn("invalid boolean env override", "key", key, "value", val, "error", err)
		}
	}
}

func setEnvFloat64(target *float64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			slog.Debug("applying env override", "key", key, "value", f)
			*target = f
		} else {
			slog.Warn("invalid float env override", "key", key, "value", val, "error", err)
		}
	}
}

func setEnvDuration(target *time.Duration, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", d)
			*target = d
		} else {
			slog.Warn("invalid duration env override", "key", key, "value", val, "error", err)
		}
	}
}
