package store

import (
	"strconv"
	"time"

	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"
	"incstate/internal/shared/util"
)

const SchemaVersion = 2

// Snapshot summarizes one decoded analysis file.
type Snapshot struct {
	ProjectKey       string
	File             string
	Digest           string
	FormatVersion    int32
	DecodedAt        time.Time
	CompilerVersion  string
	CompileOrder     string
	SourceCount      int
	BinaryCount      int
	ProductCount     int
	ProblemCount     int
	CompilationCount int
	Stamps           []StampRow
}

// StampRow is one entry of one of the three stamp maps.
type StampRow struct {
	Category analysis.StampCategory
	Path     string
	Kind     string
	Value    string
}

// ClassRow is the stored summary of an analyzed class.
type ClassRow struct {
	Name                 string
	External             bool
	APIHash              int32
	ExtraHash            int32
	HasMacro             bool
	CompilationTimestamp int64
	Provenance           string
}

// NewSnapshot flattens a decoded analysis into a Snapshot. Stamps are
// ordered by category and then path.
func NewSnapshot(file, digest string, version int32, a *analysis.Analysis, setup *analysis.MiniSetup) Snapshot {
	snap := Snapshot{
		File:             file,
		Digest:           digest,
		FormatVersion:    version,
		SourceCount:      len(a.Stamps.Source),
		BinaryCount:      len(a.Stamps.Binary),
		ProductCount:     len(a.Stamps.Product),
		ProblemCount:     a.SourceInfos.ProblemCount(),
		CompilationCount: len(a.Compilations),
	}
	if setup != nil {
		snap.CompilerVersion = setup.CompilerVersion
		snap.CompileOrder = setup.Order.String()
	}

	for _, category := range []analysis.StampCategory{analysis.BinaryStamps, analysis.ProductStamps, analysis.SourceStamps} {
		stamps := a.Stamps.ByCategory(category)
		keys := make(map[string]analysis.Stamp, len(stamps))
		for f, s := range stamps {
			keys[f.ID()] = s
		}
		for _, path := range util.SortedStringKeys(keys) {
			kind, value := stampColumns(keys[path])
			snap.Stamps = append(snap.Stamps, StampRow{Category: category, Path: path, Kind: kind, Value: value})
		}
	}
	return snap
}

func stampColumns(s analysis.Stamp) (kind, value string) {
	switch s := s.(type) {
	case analysis.Hash:
		return "hash", s.Value
	case analysis.LastModified:
		return "lastModified", strconv.FormatInt(s.Millis, 10)
	default:
		return "absent", ""
	}
}

// StampFromColumns is the inverse of the stored kind/value pair.
func StampFromColumns(kind, value string) (analysis.Stamp, error) {
	switch kind {
	case "hash":
		return analysis.Hash{Value: value}, nil
	case "lastModified":
		millis, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return analysis.LastModified{Millis: millis}, nil
	default:
		return analysis.EmptyStamp{}, nil
	}
}

func (r StampRow) Stamp() (analysis.Stamp, error) {
	return StampFromColumns(r.Kind, r.Value)
}

// ClassRows lists internal then external classes, each sorted by name.
func ClassRows(apis *analysis.APIs) []ClassRow {
	var rows []ClassRow
	add := func(classes map[string]*api.AnalyzedClass, external bool) {
		for _, name := range util.SortedStringKeys(classes) {
			c := classes[name]
			rows = append(rows, ClassRow{
				Name:                 name,
				External:             external,
				APIHash:              c.APIHash,
				ExtraHash:            c.ExtraHash,
				HasMacro:             c.HasMacro,
				CompilationTimestamp: c.CompilationTimestamp,
				Provenance:           c.Provenance,
			})
		}
	}
	add(apis.Internal, false)
	add(apis.External, true)
	return rows
}
