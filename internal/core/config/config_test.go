package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incstate.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[rewrite]
roots = ["/home/ci/project ", "/home/ci/.cache"]
strip_timestamps = ["**/*.jar", "  "]

[cache]
size = 8

[store]
enabled = true
path = "state/incstate.db"
project_key = "core"

[watch]
debounce = "2s"
rate_limit = 4.5
exclude = ["*.tmp"]

[telemetry]
metrics_addr = ":9464"
otlp_endpoint = "localhost:4317"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{"/home/ci/project", "/home/ci/.cache"}, cfg.Rewrite.Roots)
	assert.Equal(t, []string{"**/*.jar"}, cfg.Rewrite.StripTimestamps)
	assert.Equal(t, 8, cfg.Cache.Size)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "state/incstate.db", cfg.Store.Path)
	assert.Equal(t, "core", cfg.Store.ProjectKey)
	assert.Equal(t, 5*time.Second, cfg.Store.BusyTimeout)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.InDelta(t, 4.5, cfg.Watch.RateLimit, 1e-9)
	assert.Equal(t, []string{"*.tmp"}, cfg.Watch.Exclude)
	assert.Equal(t, ":9464", cfg.Telemetry.MetricsAddr)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, DefaultServiceName, cfg.Telemetry.ServiceName)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultCacheSize, cfg.Cache.Size)
	assert.Equal(t, DefaultStorePath, cfg.Store.Path)
	assert.Equal(t, DefaultProjectKey, cfg.Store.ProjectKey)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.False(t, cfg.Store.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"version", "version = 3", "unsupported config version 3"},
		{"empty root", "[rewrite]\nroots = [\"/a\", \" \"]", "rewrite.roots[1]"},
		{"bad glob", "[rewrite]\nstrip_timestamps = [\"[oops\"]", "rewrite.strip_timestamps[0]"},
		{"cache size", "[cache]\nsize = -1", "cache.size"},
		{"debounce", "[watch]\ndebounce = \"-1s\"", "watch.debounce"},
		{"rate limit", "[watch]\nrate_limit = -2.0", "watch.rate_limit"},
		{"metrics addr", "[telemetry]\nmetrics_addr = \"nocolon\"", "telemetry.metrics_addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("INCSTATE_REWRITE_ROOTS", "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv("INCSTATE_CACHE_SIZE", "3")
	t.Setenv("INCSTATE_STORE_ENABLED", "true")
	t.Setenv("INCSTATE_WATCH_DEBOUNCE", "250ms")
	t.Setenv("INCSTATE_WATCH_RATE_LIMIT", "1.5")
	t.Setenv("INCSTATE_TELEMETRY_SERVICE_NAME", "ci")
	t.Setenv("INCSTATE_STORE_BUSY_TIMEOUT", "not-a-duration")

	cfg := Default()
	ApplyEnvOverrides(cfg)

	assert.Equal(t, []string{"/a", "/b"}, cfg.Rewrite.Roots)
	assert.Equal(t, 3, cfg.Cache.Size)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.InDelta(t, 1.5, cfg.Watch.RateLimit, 1e-9)
	assert.Equal(t, "ci", cfg.Telemetry.ServiceName)
	assert.Equal(t, 5*time.Second, cfg.Store.BusyTimeout)
}

func TestWatcher_Reload(t *testing.T) {
	path := writeConfig(t, "[cache]\nsize = 1\n")

	got := make(chan *Config, 16)
	w := NewWatcher(path, func(cfg *Config) { got <- cfg })
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Start(t.Context()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[cache]\nsize = 2\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Cache.Size == 2 {
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for reload")
		}
	}
}
