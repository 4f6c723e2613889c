package config

import "time"

// Config is the incstate.toml layout.
type Config struct {
	Version   int       `toml:"version"`
	Rewrite   Rewrite   `toml:"rewrite"`
	Cache     Cache     `toml:"cache"`
	Store     Store     `toml:"store"`
	Watch     Watch     `toml:"watch"`
	Telemetry Telemetry `toml:"telemetry"`
}

// Rewrite configures the Relocator applied while reading analysis files.
type Rewrite struct {
	// Roots are machine-specific directories; index n replaces ${ROOT_n}.
	Roots []string `toml:"roots"`
	// StripTimestamps lists glob patterns of binaries whose last-modified
	// stamps are dropped.
	StripTimestamps []string `toml:"strip_timestamps"`
}

type Cache struct {
	Size int `toml:"size"`
}

type Store struct {
	Enabled     bool          `toml:"enabled"`
	Path        string        `toml:"path"`
	ProjectKey  string        `toml:"project_key"`
	BusyTimeout time.Duration `toml:"busy_timeout"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RateLimit caps re-decodes per second; zero disables the limit.
	RateLimit float64  `toml:"rate_limit"`
	Exclude   []string `toml:"exclude"`
}

type Telemetry struct {
	MetricsAddr  string `toml:"metrics_addr"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
	ServiceName  string `toml:"service_name"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
