package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	derrors "incstate/internal/core/errors"
	"incstate/internal/core/ports"
	"incstate/internal/data/schema"
	"incstate/internal/data/store"
	"incstate/internal/engine/traverse"
	"incstate/internal/shared/observability"
	"incstate/internal/shared/util"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.StateService = (*App)(nil)

func readDigest(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", derrors.AddContext(derrors.Wrap(err, derrors.CodeNotFound, "file not found"), derrors.CtxFile, path)
	}
	if err != nil {
		return nil, "", derrors.AddContext(derrors.Wrap(err, derrors.CodeInternal, "read file"), derrors.CtxFile, path)
	}
	sum := sha256.Sum256(data)
	return data, hex.EncodeToString(sum[:]), nil
}

func errorCode(err error) string {
	var de *derrors.DomainError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return string(derrors.CodeInternal)
}

func fail(span trace.Span, err error) {
	observability.DecodeErrorsTotal.WithLabelValues(errorCode(err)).Inc()
	if tag, ok := derrors.TagOf(err); ok {
		span.SetAttributes(attribute.Int("tag", int(tag)))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// LoadAnalysis decodes the analysis file at path, serving repeated content
// from the cache.
func (a *App) LoadAnalysis(ctx context.Context, path string) (*ports.LoadedAnalysis, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.LoadAnalysis", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, digest, err := readDigest(path)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	if a.analyses != nil {
		if hit, ok := a.analyses.Get(digest); ok {
			observability.CacheHitsTotal.Inc()
			slog.Debug("analysis cache hit", "path", path, "digest", digest)
			out := *hit
			out.Path = path
			out.Cached = true
			return &out, nil
		}
	}

	slog.Debug("decoding analysis", "path", path, "bytes", len(data))
	started := time.Now()
	file, err := schema.UnmarshalAnalysisFile(data)
	if err != nil {
		err = derrors.AddContext(err, derrors.CtxFile, path)
		fail(span, err)
		return nil, err
	}
	reader, generation := a.currentReader()
	result, setup, version, err := reader.ReadAnalysisFile(file)
	if err != nil {
		err = derrors.AddContext(err, derrors.CtxFile, path)
		fail(span, err)
		slog.Error("decode analysis failed", "path", path, "error", err)
		return nil, err
	}
	observability.DecodeDuration.WithLabelValues(string(ports.AnalysisKind)).Observe(time.Since(started).Seconds())
	slog.Debug("decoded analysis",
		"path", path,
		"version", version,
		"sources", len(result.Stamps.Source),
		"duration", time.Since(started),
		"heap_mb", util.HeapAllocMB(),
	)

	loaded := &ports.LoadedAnalysis{
		Path:     path,
		Digest:   digest,
		Version:  version,
		Analysis: result,
		Setup:    setup,
	}
	if !a.cacheAnalysis(generation, loaded) && a.analyses != nil {
		slog.Debug("rewrite changed during decode; result not cached", "path", path)
	}
	a.indexAnalysis(ctx, loaded)
	return loaded, nil
}

// LoadAPIs decodes the APIs file at path, serving repeated content from the
// cache.
func (a *App) LoadAPIs(ctx context.Context, path string) (*ports.LoadedAPIs, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.LoadAPIs", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, digest, err := readDigest(path)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	if a.apis != nil {
		if hit, ok := a.apis.Get(digest); ok {
			observability.CacheHitsTotal.Inc()
			slog.Debug("apis cache hit", "path", path, "digest", digest)
			out := *hit
			out.Path = path
			out.Cached = true
			return &out, nil
		}
	}

	started := time.Now()
	file, err := schema.UnmarshalAPIsFile(data)
	if err != nil {
		err = derrors.AddContext(err, derrors.CtxFile, path)
		fail(span, err)
		return nil, err
	}
	reader, generation := a.currentReader()
	apis, version, err := reader.ReadAPIsFile(file)
	if err != nil {
		err = derrors.AddContext(err, derrors.CtxFile, path)
		fail(span, err)
		slog.Error("decode apis failed", "path", path, "error", err)
		return nil, err
	}
	classes := len(apis.Internal) + len(apis.External)
	observability.DecodeDuration.WithLabelValues(string(ports.APIsKind)).Observe(time.Since(started).Seconds())
	observability.DecodedClassesTotal.Add(float64(classes))
	slog.Debug("decoded apis", "path", path, "version", version, "classes", classes, "duration", time.Since(started))

	loaded := &ports.LoadedAPIs{Path: path, Digest: digest, Version: version, APIs: apis}
	if !a.cacheAPIs(generation, loaded) && a.apis != nil {
		slog.Debug("rewrite changed during decode; result not cached", "path", path)
	}
	a.indexAPIs(ctx, loaded)
	return loaded, nil
}

// ClassNames walks the class and object API of class in the APIs file at
// path and returns the definition and parameter names in visit order.
// Internal classes are preferred over external ones of the same name.
func (a *App) ClassNames(ctx context.Context, path, class string) ([]string, error) {
	loaded, err := a.LoadAPIs(ctx, path)
	if err != nil {
		return nil, err
	}

	analyzed, ok := loaded.APIs.Internal[class]
	if !ok {
		analyzed, ok = loaded.APIs.External[class]
	}
	if !ok {
		err := derrors.New(derrors.CodeNotFound, fmt.Sprintf("class %q not found", class))
		return nil, derrors.AddContext(err, derrors.CtxFile, path)
	}

	collector := &traverse.NameCollector{}
	traverse.WalkAnalyzedClass(collector, analyzed)
	return collector.Names, nil
}

func (a *App) indexAnalysis(ctx context.Context, loaded *ports.LoadedAnalysis) {
	if a.store == nil {
		return
	}
	_, span := observability.Tracer.Start(ctx, "app.indexAnalysis")
	defer span.End()

	snap := store.NewSnapshot(loaded.Path, loaded.Digest, int32(loaded.Version), loaded.Analysis, loaded.Setup)
	snap.ProjectKey = a.Config.Store.ProjectKey
	if err := a.store.SaveAnalysis(snap); err != nil {
		span.RecordError(err)
		slog.Warn("index analysis failed", "path", loaded.Path, "error", err)
		return
	}
	observability.StoreWritesTotal.Inc()
}

func (a *App) indexAPIs(ctx context.Context, loaded *ports.LoadedAPIs) {
	if a.store == nil {
		return
	}
	_, span := observability.Tracer.Start(ctx, "app.indexAPIs")
	defer span.End()

	if err := a.store.SaveClasses(a.Config.Store.ProjectKey, loaded.Path, store.ClassRows(loaded.APIs)); err != nil {
		span.RecordError(err)
		slog.Warn("index apis failed", "path", loaded.Path, "error", err)
		return
	}
	observability.StoreWritesTotal.Inc()
}
