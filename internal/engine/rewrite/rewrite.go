// Package rewrite translates file identities, fingerprints and compiler
// options while an analysis is being decoded, e.g. to move a build from
// one machine to another.
package rewrite

import "incstate/internal/engine/analysis"

// Mapper is consulted for every decoded file, stamp and option. Each method
// must be deterministic and free of side effects. Stamp and classpath hash
// methods receive the file after it was rewritten.
type Mapper interface {
	MapSourceFile(f analysis.FileRef) analysis.FileRef
	MapBinaryFile(f analysis.FileRef) analysis.FileRef
	MapProductFile(f analysis.FileRef) analysis.FileRef
	MapClasspathEntry(f analysis.FileRef) analysis.FileRef
	MapOutputDir(f analysis.FileRef) analysis.FileRef
	MapSourceDir(f analysis.FileRef) analysis.FileRef
	MapCompilerOption(opt string) string

	MapSourceStamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp
	MapBinaryStamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp
	MapProductStamp(f analysis.FileRef, s analysis.Stamp) analysis.Stamp
	MapClasspathHash(f analysis.FileRef, hash int32) int32

	MapMiniSetup(s *analysis.MiniSetup) *analysis.MiniSetup
}

// Identity leaves everything as it was written.
type Identity struct{}

var _ Mapper = Identity{}

func (Identity) MapSourceFile(f analysis.FileRef) analysis.FileRef     { return f }
func (Identity) MapBinaryFile(f analysis.FileRef) analysis.FileRef     { return f }
func (Identity) MapProductFile(f analysis.FileRef) analysis.FileRef    { return f }
func (Identity) MapClasspathEntry(f analysis.FileRef) analysis.FileRef { return f }
func (Identity) MapOutputDir(f analysis.FileRef) analysis.FileRef      { return f }
func (Identity) MapSourceDir(f analysis.FileRef) analysis.FileRef      { return f }
func (Identity) MapCompilerOption(opt string) string                  { return opt }

func (Identity) MapSourceStamp(_ analysis.FileRef, s analysis.Stamp) analysis.Stamp  { return s }
func (Identity) MapBinaryStamp(_ analysis.FileRef, s analysis.Stamp) analysis.Stamp  { return s }
func (Identity) MapProductStamp(_ analysis.FileRef, s analysis.Stamp) analysis.Stamp { return s }
func (Identity) MapClasspathHash(_ analysis.FileRef, hash int32) int32              { return hash }

func (Identity) MapMiniSetup(s *analysis.MiniSetup) *analysis.MiniSetup { return s }
