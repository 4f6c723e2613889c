// Package ports declares the boundaries between the app service, its
// storage adapter and its driving adapters.
package ports

import (
	"context"

	"incstate/internal/data/schema"
	"incstate/internal/data/store"
	"incstate/internal/engine/analysis"
)

// AnalysisStore persists summaries of decoded files.
type AnalysisStore interface {
	SaveAnalysis(snapshot store.Snapshot) error
	LoadAnalysis(projectKey, file string) (store.Snapshot, error)
	SaveClasses(projectKey, file string, classes []store.ClassRow) error
	FilesDefining(projectKey, name string) ([]string, error)
}

// LoadedAnalysis is a decoded analysis file.
type LoadedAnalysis struct {
	Path     string
	Digest   string
	Version  schema.Version
	Analysis *analysis.Analysis
	Setup    *analysis.MiniSetup
	Cached   bool
}

// LoadedAPIs is a decoded APIs file.
type LoadedAPIs struct {
	Path    string
	Digest  string
	Version schema.Version
	APIs    *analysis.APIs
	Cached  bool
}

// FileKind tells the service which record a watched file holds.
type FileKind string

const (
	AnalysisKind FileKind = "analysis"
	APIsKind     FileKind = "apis"
)

// WatchRequest lists the files to decode on every change.
type WatchRequest struct {
	Analyses []string
	APIs     []string
}

// WatchUpdate carries the result of one re-decode. Exactly one of Analysis,
// APIs and Err is set.
type WatchUpdate struct {
	Path     string
	Kind     FileKind
	Analysis *LoadedAnalysis
	APIs     *LoadedAPIs
	Err      error
}

// StateService is the surface driving adapters use.
type StateService interface {
	LoadAnalysis(ctx context.Context, path string) (*LoadedAnalysis, error)
	LoadAPIs(ctx context.Context, path string) (*LoadedAPIs, error)
	ClassNames(ctx context.Context, path, class string) ([]string, error)
	Watch(ctx context.Context, req WatchRequest, handler func(WatchUpdate)) error
	Indexed(ctx context.Context, path string) (store.Snapshot, error)
	FilesDefining(ctx context.Context, class string) ([]string, error)
}
