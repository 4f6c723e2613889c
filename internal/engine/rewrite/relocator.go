package rewrite

import (
	"fmt"
	"strings"

	derrors "incstate/internal/core/errors"
	"incstate/internal/engine/analysis"

	"github.com/gobwas/glob"
)

// Relocator expands ${ROOT_n} placeholders written by a machine-independent
// build into local directories. Binary and product files matching one of
// the volatile patterns lose their LastModified stamp, since a timestamp
// taken on another machine says nothing about the local copy.
type Relocator struct {
	Identity
	roots    *strings.Replacer
	volatile []glob.Glob
}

var _ Mapper = (*Relocator)(nil)

// RootPlaceholder is the token substituted by the n-th configured root.
func RootPlaceholder(n int) string {
	return fmt.Sprintf("${ROOT_%d}", n)
}

func NewRelocator(roots, stripTimestamps []string) (*Relocator, error) {
	pairs := make([]string, 0, 2*len(roots))
	for i, root := range roots {
		pairs = append(pairs, RootPlaceholder(i), strings.TrimRight(root, "/"))
	}

	volatile := make([]glob.Glob, 0, len(stripTimestamps))
	for _, pattern := range stripTimestamps {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			wrapped := derrors.Wrap(err, derrors.CodeValidationError, "invalid strip_timestamps pattern")
			return nil, derrors.AddContext(wrapped, "pattern", pattern)
		}
		volatile = append(volatile, g)
	}

	return &Relocator{
		roots:    strings.NewReplacer(pairs...),
		volatile: volatile,
	}, nil
}

func (r *Relocator) expand(f analysis.FileRef) analysis.FileRef {
	return analysis.FileRef(r.roots.Replace(string(f)))
}

func (r *Relocator) MapSourceFile(f analysis.FileRef) analysis.FileRef     { return r.expand(f) }
func (r *Relocator) MapBinaryFile(f analysis.FileRef) analysis.FileRef     { return r.expand(f) }
func (r *Relocator) MapProductFile(f analysis.FileRef) analysis.FileRef    { return r.expand(f) }
func (r *Relocator) MapClasspathEntry(f analysis.FileRef) analysis.FileRef { return r.expand(f) }
func (r *Relocator) MapOutputDir(f analysis.FileRef) analysis.FileRef      { return r.expand(f) }
func (r *Relocator) MapSourceDir(f analysis.FileRef) analysis.FileRef      { return r.expand(f) }

func (r *Relocator) MapCompilerOption(opt string) string {
	return r.roots.Replace(opt)
}

func (r *Relocator) MapBinaryStamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp {
	return r.stripTimestamp(f, s)
}

func (r *Relocator) MapProductStamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp {
	return r.stripTimestamp(f, s)
}

func (r *Relocator) stripTimestamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp {
	if _, ok := s.(analysis.LastModified); !ok {
		return s
	}
	for _, g := range r.volatile {
		if g.Match(string(f)) {
			return analysis.EmptyStamp{}
		}
	}
	return s
}
