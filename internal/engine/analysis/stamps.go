// Package analysis models the persisted incremental-build state: file
// fingerprints, dependency relations, diagnostics, compile history and the
// compiler setup snapshot the state was produced under.
package analysis

import "fmt"

// FileRef is the identity of a file as recorded by the build tool. It is
// opaque to this package; rewrite hooks decide how it maps to disk.
type FileRef string

func (f FileRef) ID() string { return string(f) }

// Stamp is a per-file staleness signal.
type Stamp interface {
	isStamp()
	String() string
}

type EmptyStamp struct{}

// Hash is a content fingerprint, hex encoded.
type Hash struct {
	Value string
}

type LastModified struct {
	Millis int64
}

func (EmptyStamp) isStamp()   {}
func (Hash) isStamp()         {}
func (LastModified) isStamp() {}

func (EmptyStamp) String() string     { return "absent" }
func (h Hash) String() string         { return "hash(" + h.Value + ")" }
func (l LastModified) String() string { return fmt.Sprintf("lastModified(%d)", l.Millis) }

// Stamps holds three independent fingerprint maps.
type Stamps struct {
	Binary  map[FileRef]Stamp
	Source  map[FileRef]Stamp
	Product map[FileRef]Stamp
}

func NewStamps() Stamps {
	return Stamps{
		Binary:  make(map[FileRef]Stamp),
		Source:  make(map[FileRef]Stamp),
		Product: make(map[FileRef]Stamp),
	}
}

// StampCategory names one of the three stamp maps.
type StampCategory string

const (
	BinaryStamps  StampCategory = "binary"
	SourceStamps  StampCategory = "source"
	ProductStamps StampCategory = "product"
)

func (s Stamps) ByCategory(c StampCategory) map[FileRef]Stamp {
	switch c {
	case BinaryStamps:
		return s.Binary
	case SourceStamps:
		return s.Source
	case ProductStamps:
		return s.Product
	default:
		return nil
	}
}
