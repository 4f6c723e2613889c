package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	derrors "incstate/internal/core/errors"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "incstate.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleAnalysis() *analysis.Analysis {
	stamps := analysis.NewStamps()
	stamps.Source["/src/B.scala"] = analysis.Hash{Value: "beef"}
	stamps.Source["/src/A.scala"] = analysis.Hash{Value: "dead"}
	stamps.Binary["/lib/x.jar"] = analysis.LastModified{Millis: 1700000000000}
	stamps.Product["/out/A.class"] = analysis.EmptyStamp{}

	return &analysis.Analysis{
		Stamps:    stamps,
		Relations: analysis.NewRelations(),
		SourceInfos: analysis.SourceInfos{
			"/src/A.scala": {
				ReportedProblems:   []analysis.Problem{{Message: "unused", Severity: analysis.Warn}},
				UnreportedProblems: []analysis.Problem{{Message: "deprecated", Severity: analysis.Info}},
			},
		},
		Compilations: []analysis.Compilation{{StartTime: 1, Output: &analysis.SingleOutput{OutputDir: "/out"}}},
	}
}

func TestNewSnapshot(t *testing.T) {
	setup := &analysis.MiniSetup{CompilerVersion: "2.13.12", Order: analysis.JavaThenScala}
	snap := NewSnapshot("/t/inc_compile.zip", "abc", 3, sampleAnalysis(), setup)

	assert.Equal(t, 2, snap.SourceCount)
	assert.Equal(t, 1, snap.BinaryCount)
	assert.Equal(t, 1, snap.ProductCount)
	assert.Equal(t, 2, snap.ProblemCount)
	assert.Equal(t, 1, snap.CompilationCount)
	assert.Equal(t, "JavaThenScala", snap.CompileOrder)
	assert.Equal(t, []StampRow{
		{Category: analysis.BinaryStamps, Path: "/lib/x.jar", Kind: "lastModified", Value: "1700000000000"},
		{Category: analysis.ProductStamps, Path: "/out/A.class", Kind: "absent"},
		{Category: analysis.SourceStamps, Path: "/src/A.scala", Kind: "hash", Value: "dead"},
		{Category: analysis.SourceStamps, Path: "/src/B.scala", Kind: "hash", Value: "beef"},
	}, snap.Stamps)
}

func TestStampFromColumns(t *testing.T) {
	for _, s := range []analysis.Stamp{analysis.Hash{Value: "ff"}, analysis.LastModified{Millis: 42}, analysis.EmptyStamp{}} {
		kind, value := stampColumns(s)
		got, err := StampFromColumns(kind, value)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := StampFromColumns("lastModified", "soon")
	assert.Error(t, err)
}

func TestStore_SaveLoadAnalysis(t *testing.T) {
	s := openTestStore(t)

	decodedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot("/t/inc_compile.zip", "abc", 3, sampleAnalysis(), nil)
	snap.DecodedAt = decodedAt
	require.NoError(t, s.SaveAnalysis(snap))

	got, err := s.LoadAnalysis("", "/t/inc_compile.zip")
	require.NoError(t, err)
	assert.Equal(t, "default", got.ProjectKey)
	assert.Equal(t, "abc", got.Digest)
	assert.Equal(t, int32(3), got.FormatVersion)
	assert.Equal(t, decodedAt, got.DecodedAt)
	assert.Equal(t, snap.Stamps, got.Stamps)

	// A second save replaces the stamps rather than appending.
	smaller := snap
	smaller.Digest = "def"
	smaller.Stamps = snap.Stamps[:1]
	require.NoError(t, s.SaveAnalysis(smaller))

	got, err = s.LoadAnalysis("default", "/t/inc_compile.zip")
	require.NoError(t, err)
	assert.Equal(t, "def", got.Digest)
	assert.Len(t, got.Stamps, 1)
}

func TestStore_LoadAnalysisNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadAnalysis("default", "/missing.zip")
	require.Error(t, err)
	assert.True(t, derrors.IsCode(err, derrors.CodeNotFound))
	path, ok := derrors.ContextValue(err, derrors.CtxPath)
	require.True(t, ok)
	assert.Equal(t, "/missing.zip", path)
}

func TestStore_SaveAnalysisRequiresFile(t *testing.T) {
	s := openTestStore(t)
	err := s.SaveAnalysis(Snapshot{})
	assert.True(t, derrors.IsCode(err, derrors.CodeValidationError))
}

func TestStore_ProjectIsolation(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveAnalysis(Snapshot{ProjectKey: "a", File: "f", Digest: "1"}))
	require.NoError(t, s.SaveAnalysis(Snapshot{ProjectKey: "b", File: "f", Digest: "2"}))

	a, err := s.LoadAnalysis("a", "f")
	require.NoError(t, err)
	b, err := s.LoadAnalysis("b", "f")
	require.NoError(t, err)
	assert.Equal(t, "1", a.Digest)
	assert.Equal(t, "2", b.Digest)
}

func TestStore_Classes(t *testing.T) {
	s := openTestStore(t)

	internal := api.NewAnalyzedClass("a.A", api.Strict(api.Companions{}))
	internal.APIHash = 11
	external := api.NewAnalyzedClass("a.A", api.Strict(api.Companions{}))
	rows := ClassRows(&analysis.APIs{
		Internal: map[string]*api.AnalyzedClass{"a.A": internal},
		External: map[string]*api.AnalyzedClass{"a.A": external},
	})
	require.Len(t, rows, 2)
	assert.False(t, rows[0].External)
	assert.True(t, rows[1].External)

	require.NoError(t, s.SaveClasses("p", "/one/apis.zip", rows))
	require.NoError(t, s.SaveClasses("p", "/two/apis.zip", rows[1:]))

	files, err := s.FilesDefining("p", "a.A")
	require.NoError(t, err)
	assert.Equal(t, []string{"/one/apis.zip"}, files)

	require.NoError(t, s.SaveClasses("p", "/one/apis.zip", nil))
	files, err = s.FilesDefining("p", "a.A")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStore_OpenRejectsDirectoryPath(t *testing.T) {
	_, err := Open(t.TempDir(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestStore_OpenCorruptDBPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incstate.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not sqlite"), 0o644))

	_, err := Open(path, 0)
	require.Error(t, err)
	lower := strings.ToLower(err.Error())
	assert.True(t, strings.Contains(lower, "not a database") || strings.Contains(lower, "schema"), err.Error())
}

func TestEnsureSchema_DetectsNewerVersionDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incstate.db")
	s, err := Open(path, 0)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.db.Exec(`INSERT OR REPLACE INTO schema_migrations(version) VALUES (?)`, SchemaVersion+1)
	require.NoError(t, err)

	db, err := sql.Open(driverName, "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	err = EnsureSchema(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestIsCorruptError(t *testing.T) {
	assert.True(t, IsCorruptError(errors.New("database disk image is malformed")))
	assert.False(t, IsCorruptError(nil))
	assert.False(t, isLockError(errors.New("constraint failed")))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
}
