// Package decode turns wire messages from the schema package into the
// domain model of the api and analysis packages.
//
// Decoding is eager: every lazy cell of the resulting graph is already
// evaluated when an entry point returns, so a structural violation anywhere
// in the input is reported before any value is handed out. Three error
// codes are produced:
//
//   - MALFORMED_MESSAGE when a field the domain requires is absent
//   - UNRECOGNIZED_VARIANT when an enumeration carries an unknown tag
//   - UNSUPPORTED_EMPTY_PAYLOAD when a union holds none of its members
//
// Every file identity, stamp and compiler option passes through the
// Reader's rewrite.Mapper. A stamp is rewritten after its file and
// receives the rewritten file.
package decode

import (
	derrors "incstate/internal/core/errors"
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/rewrite"
)

type Reader struct {
	mapper rewrite.Mapper
}

// NewReader returns a Reader applying mapper. A nil mapper means
// rewrite.Identity.
func NewReader(mapper rewrite.Mapper) *Reader {
	if mapper == nil {
		mapper = rewrite.Identity{}
	}
	return &Reader{mapper: mapper}
}

// ReadAPIsFile decodes the per-class API record of a project. The version
// tag is returned as written.
func (r *Reader) ReadAPIsFile(f *schema.APIsFile) (*analysis.APIs, schema.Version, error) {
	if f == nil {
		return nil, 0, derrors.New(derrors.CodeMalformedMessage, "nil APIsFile")
	}
	if f.Apis == nil {
		return nil, f.Version, derrors.MissingField("APIsFile", "apis")
	}
	apis, err := r.apis(f.Apis)
	if err != nil {
		return nil, f.Version, err
	}
	return apis, f.Version, nil
}

// ReadAnalysisFile decodes a full analysis record together with the setup
// it was produced under. The version tag is returned as written.
func (r *Reader) ReadAnalysisFile(f *schema.AnalysisFile) (*analysis.Analysis, *analysis.MiniSetup, schema.Version, error) {
	if f == nil {
		return nil, nil, 0, derrors.New(derrors.CodeMalformedMessage, "nil AnalysisFile")
	}
	if f.Analysis == nil {
		return nil, nil, f.Version, derrors.MissingField("AnalysisFile", "analysis")
	}
	if f.MiniSetup == nil {
		return nil, nil, f.Version, derrors.MissingField("AnalysisFile", "miniSetup")
	}

	a, err := r.analysis(f.Analysis)
	if err != nil {
		return nil, nil, f.Version, err
	}
	setup, err := r.miniSetup(f.MiniSetup)
	if err != nil {
		return nil, nil, f.Version, err
	}
	return a, setup, f.Version, nil
}

// ReadAPIsFile decodes f without rewriting anything.
func ReadAPIsFile(f *schema.APIsFile) (*analysis.APIs, schema.Version, error) {
	return NewReader(nil).ReadAPIsFile(f)
}

// ReadAnalysisFile decodes f without rewriting anything.
func ReadAnalysisFile(f *schema.AnalysisFile) (*analysis.Analysis, *analysis.MiniSetup, schema.Version, error) {
	return NewReader(nil).ReadAnalysisFile(f)
}

// each converts every element of the repeated field shape.field with fn,
// stopping at the first error. A nil element is a missing field. An empty
// input yields nil.
func each[S, D any](shape, field string, in []*S, fn func(*S) (D, error)) ([]D, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]D, 0, len(in))
	for _, s := range in {
		if s == nil {
			return nil, derrors.MissingField(shape, field)
		}
		d, err := fn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
