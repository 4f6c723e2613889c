package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreapp "incstate/internal/core/app"
	"incstate/internal/core/config"
	"incstate/internal/core/ports"
	"incstate/internal/data/store"
)

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "incstate v%s\n", versionString)
		return 0
	}

	configureLogging(stderr, opts.verbose)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		slog.Error("failed to load config", "path", opts.configPath, "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if endpoint := strings.TrimSpace(cfg.Telemetry.OTLPEndpoint); endpoint != "" {
		shutdown, err := setupTracing(ctx, endpoint, cfg.Telemetry.ServiceName)
		if err != nil {
			slog.Error("failed to set up tracing", "endpoint", endpoint, "error", err)
			return 1
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Warn("tracer shutdown failed", "error", err)
			}
		}()
	}

	if addr := strings.TrimSpace(cfg.Telemetry.MetricsAddr); addr != "" {
		srv := NewObservabilityServer(addr)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Stop(shutdownCtx)
		}()
	}

	var analysisStore ports.AnalysisStore
	if cfg.Store.Enabled {
		st, err := store.Open(cfg.Store.Path, cfg.Store.BusyTimeout)
		if err != nil {
			slog.Error("failed to open store", "path", cfg.Store.Path, "error", err)
			if store.IsCorruptError(err) {
				slog.Error("store file is not a usable database; remove it to rebuild the index", "path", cfg.Store.Path)
			}
			return 1
		}
		defer st.Close()
		analysisStore = st
	}

	a, err := coreapp.New(cfg, analysisStore)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer a.Close()

	switch {
	case opts.defines != "":
		return runDefines(ctx, a, opts.defines, stdout)
	case opts.watch:
		return runWatch(ctx, a, opts, stdout)
	}
	return runOnce(ctx, a, opts, stdout)
}

func runOnce(ctx context.Context, a *coreapp.App, opts cliOptions, stdout io.Writer) int {
	code := 0
	for _, file := range opts.files {
		switch {
		case opts.names != "":
			names, err := a.ClassNames(ctx, file, opts.names)
			if err != nil {
				slog.Error("failed to collect names", "file", file, "class", opts.names, "error", err)
				code = 1
				continue
			}
			printNames(stdout, names)
		case opts.indexed:
			snap, err := a.Indexed(ctx, file)
			if err != nil {
				slog.Error("failed to load indexed analysis", "file", file, "error", err)
				code = 1
				continue
			}
			printSnapshot(stdout, snap)
		case opts.apis:
			loaded, err := a.LoadAPIs(ctx, file)
			if err != nil {
				slog.Error("failed to decode apis", "file", file, "error", err)
				code = 1
				continue
			}
			printAPIs(stdout, loaded)
		default:
			loaded, err := a.LoadAnalysis(ctx, file)
			if err != nil {
				slog.Error("failed to decode analysis", "file", file, "error", err)
				code = 1
				continue
			}
			printAnalysis(stdout, loaded)
		}
	}
	return code
}

func runDefines(ctx context.Context, a *coreapp.App, class string, stdout io.Writer) int {
	files, err := a.FilesDefining(ctx, class)
	if err != nil {
		slog.Error("failed to find class", "class", class, "error", err)
		return 1
	}
	fmt.Fprintln(stdout, strings.Join(files, "\n"))
	return 0
}

func runWatch(ctx context.Context, a *coreapp.App, opts cliOptions, stdout io.Writer) int {
	if opts.configPath != "" {
		if _, err := os.Stat(opts.configPath); err == nil {
			w := config.NewWatcher(opts.configPath, func(next *config.Config) {
				if err := a.SetRewrite(next.Rewrite); err != nil {
					slog.Error("failed to apply rewrite settings", "error", err)
				}
			})
			if err := w.Start(ctx); err != nil {
				slog.Warn("config watcher unavailable", "error", err)
			} else {
				defer w.Stop()
			}
		}
	}

	req := ports.WatchRequest{Analyses: opts.files}
	if opts.apis {
		req = ports.WatchRequest{APIs: opts.files}
	}
	if err := a.Watch(ctx, req, func(u ports.WatchUpdate) { printUpdate(stdout, u) }); err != nil {
		slog.Error("watch failed", "error", err)
		return 1
	}
	return 0
}

func configureLogging(out io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
}

// loadConfig falls back to defaults when the default config path is absent.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	config.ApplyEnvOverrides(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
