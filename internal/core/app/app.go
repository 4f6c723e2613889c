// Package app wires configuration, decoding, caching, indexing and watching
// into the state service used by the command line.
package app

import (
	"sync"
	"time"

	"incstate/internal/core/config"
	"incstate/internal/core/ports"
	"incstate/internal/engine/decode"
	"incstate/internal/engine/rewrite"
	"incstate/internal/shared/util"

	lru "github.com/hashicorp/golang-lru/v2"
)

type App struct {
	Config *config.Config
	store  ports.AnalysisStore

	// readerMu guards reader and generation. Cache writes hold it for
	// reading so a result decoded under a replaced reader is never added.
	readerMu   sync.RWMutex
	reader     *decode.Reader
	generation uint64

	// Keyed by content digest; nil when cache.size is 0.
	analyses *lru.Cache[string, *ports.LoadedAnalysis]
	apis     *lru.Cache[string, *ports.LoadedAPIs]

	limiters *util.LimiterRegistry
}

// New builds an App. store may be nil, in which case nothing is indexed.
func New(cfg *config.Config, store ports.AnalysisStore) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	reader, err := newReader(cfg.Rewrite)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		store:    store,
		reader:   reader,
		limiters: util.NewLimiterRegistry(cfg.Watch.RateLimit, 1, 10*time.Minute),
	}
	if cfg.Cache.Size > 0 {
		if a.analyses, err = lru.New[string, *ports.LoadedAnalysis](cfg.Cache.Size); err != nil {
			return nil, err
		}
		if a.apis, err = lru.New[string, *ports.LoadedAPIs](cfg.Cache.Size); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func newReader(cfg config.Rewrite) (*decode.Reader, error) {
	if len(cfg.Roots) == 0 && len(cfg.StripTimestamps) == 0 {
		return decode.NewReader(nil), nil
	}
	relocator, err := rewrite.NewRelocator(cfg.Roots, cfg.StripTimestamps)
	if err != nil {
		return nil, err
	}
	return decode.NewReader(relocator), nil
}

// SetRewrite swaps the rewrite settings and drops every cached result,
// since cached graphs were produced under the old mapping.
func (a *App) SetRewrite(cfg config.Rewrite) error {
	reader, err := newReader(cfg)
	if err != nil {
		return err
	}
	a.readerMu.Lock()
	defer a.readerMu.Unlock()
	a.reader = reader
	a.generation++
	a.Config.Rewrite = cfg
	if a.analyses != nil {
		a.analyses.Purge()
		a.apis.Purge()
	}
	return nil
}

// currentReader returns the reader together with the generation it belongs
// to; pass the generation back to cacheAnalysis or cacheAPIs.
func (a *App) currentReader() (*decode.Reader, uint64) {
	a.readerMu.RLock()
	defer a.readerMu.RUnlock()
	return a.reader, a.generation
}

func (a *App) cacheAnalysis(generation uint64, loaded *ports.LoadedAnalysis) bool {
	if a.analyses == nil {
		return false
	}
	a.readerMu.RLock()
	defer a.readerMu.RUnlock()
	if generation != a.generation {
		return false
	}
	a.analyses.Add(loaded.Digest, loaded)
	return true
}

func (a *App) cacheAPIs(generation uint64, loaded *ports.LoadedAPIs) bool {
	if a.apis == nil {
		return false
	}
	a.readerMu.RLock()
	defer a.readerMu.RUnlock()
	if generation != a.generation {
		return false
	}
	a.apis.Add(loaded.Digest, loaded)
	return true
}

func (a *App) Close() {
	a.limiters.Close()
}
