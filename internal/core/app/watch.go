package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"incstate/internal/core/ports"
	"incstate/internal/core/watcher"
)

// Watch decodes every requested file once, then again whenever it changes,
// until ctx is done. Re-decodes of one file are throttled by
// watch.rate_limit. handler runs on one goroutine at a time.
func (a *App) Watch(ctx context.Context, req ports.WatchRequest, handler func(ports.WatchUpdate)) error {
	kinds := make(map[string]ports.FileKind, len(req.Analyses)+len(req.APIs))
	var files []string
	for _, p := range req.Analyses {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		kinds[abs] = ports.AnalysisKind
		files = append(files, abs)
	}
	for _, p := range req.APIs {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		kinds[abs] = ports.APIsKind
		files = append(files, abs)
	}

	var handlerMu sync.Mutex
	emit := func(u ports.WatchUpdate) {
		handlerMu.Lock()
		defer handlerMu.Unlock()
		handler(u)
	}

	w, err := watcher.NewWatcher(a.Config.Watch.Debounce, a.Config.Watch.Exclude, func(paths []string) {
		for _, path := range paths {
			if err := a.limiters.Get(path).Wait(ctx); err != nil {
				return
			}
			emit(a.reload(ctx, path, kinds[path]))
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	// Register before the initial decode so a write landing during it is
	// reported as a change.
	if err := w.Watch(files); err != nil {
		return err
	}
	slog.Info("watching", "files", len(files))

	for _, path := range files {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			slog.Info("waiting for file", "path", path)
			continue
		}
		emit(a.reload(ctx, path, kinds[path]))
	}
	<-ctx.Done()
	return nil
}

func (a *App) reload(ctx context.Context, path string, kind ports.FileKind) ports.WatchUpdate {
	update := ports.WatchUpdate{Path: path, Kind: kind}
	switch kind {
	case ports.APIsKind:
		update.APIs, update.Err = a.LoadAPIs(ctx, path)
	default:
		update.Analysis, update.Err = a.LoadAnalysis(ctx, path)
	}
	return update
}
