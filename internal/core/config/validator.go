package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/gobwas/glob"
)

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateRewrite(cfg *Config) error {
	for i, root := range cfg.Rewrite.Roots {
		if root == "" {
			return fmt.Errorf("rewrite.roots[%d] must not be empty", i)
		}
	}
	for i, pattern := range cfg.Rewrite.StripTimestamps {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("rewrite.strip_timestamps[%d] %q: %w", i, pattern, err)
		}
	}
	return nil
}

func validateCache(cfg *Config) error {
	if cfg.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0, got %d", cfg.Cache.Size)
	}
	return nil
}

func validateStore(cfg *Config) error {
	if !cfg.Store.Enabled {
		return nil
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if cfg.Store.BusyTimeout < 0 {
		return fmt.Errorf("store.busy_timeout must be >= 0")
	}
	return nil
}

func validateWatch(cfg *Config) error {
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0")
	}
	if cfg.Watch.RateLimit < 0 {
		return fmt.Errorf("watch.rate_limit must be >= 0")
	}
	for i, pattern := range cfg.Watch.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("watch.exclude[%d] %q: %w", i, pattern, err)
		}
	}
	return nil
}

func validateTelemetry(cfg *Config) error {
	if addr := strings.TrimSpace(cfg.Telemetry.MetricsAddr); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("telemetry.metrics_addr %q: %w", addr, err)
		}
	}
	return nil
}
