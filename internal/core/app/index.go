package app

import (
	"context"
	"fmt"

	derrors "incstate/internal/core/errors"
	"incstate/internal/data/store"
	"incstate/internal/shared/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (a *App) requireStore(op string) error {
	if a.store != nil {
		return nil
	}
	err := derrors.New(derrors.CodeValidationError, "store is disabled")
	return derrors.AddContext(err, derrors.CtxOperation, op)
}

// Indexed returns the stored summary of the analysis file at path, as it was
// recorded by the last successful LoadAnalysis.
func (a *App) Indexed(ctx context.Context, path string) (store.Snapshot, error) {
	_, span := observability.Tracer.Start(ctx, "app.Indexed", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := a.requireStore("indexed"); err != nil {
		return store.Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}
	snap, err := a.store.LoadAnalysis(a.Config.Store.ProjectKey, path)
	if err != nil {
		fail(span, err)
		return store.Snapshot{}, err
	}
	return snap, nil
}

// FilesDefining lists the indexed APIs files that declare class as internal.
func (a *App) FilesDefining(ctx context.Context, class string) ([]string, error) {
	_, span := observability.Tracer.Start(ctx, "app.FilesDefining", trace.WithAttributes(attribute.String("class", class)))
	defer span.End()

	if err := a.requireStore("defines"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := a.store.FilesDefining(a.Config.Store.ProjectKey, class)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	if len(files) == 0 {
		err := derrors.New(derrors.CodeNotFound, fmt.Sprintf("class %q is not indexed", class))
		return nil, derrors.AddContext(err, derrors.CtxOperation, "defines")
	}
	return files, nil
}
