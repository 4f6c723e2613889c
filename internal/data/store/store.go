// Package store indexes decoded analysis files in SQLite: one summary row
// per analysis file, its stamps, and the analyzed classes of its APIs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	derrors "incstate/internal/core/errors"
	"incstate/internal/engine/analysis"
	"incstate/internal/shared/util"

	_ "modernc.org/sqlite"
)

const (
	driverName        = "sqlite"
	maxAttempts       = 5
	defaultProjectKey = "default"
)

type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

func Open(path string, busyTimeout time.Duration) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("store path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("store path %q is a directory, expected file", cleanPath)
	}
	if err := util.EnsureParentDir(cleanPath); err != nil {
		return nil, fmt.Errorf("create store directory for %q: %w", cleanPath, err)
	}
	if busyTimeout <= 0 {
		busyTimeout = 2 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)",
		cleanPath, busyTimeout.Milliseconds())
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store %q: %w", cleanPath, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}

	return &Store{path: cleanPath, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func projectKeyOrDefault(key string) string {
	if key = strings.TrimSpace(key); key == "" {
		return defaultProjectKey
	}
	return key
}

// SaveAnalysis upserts the summary row and replaces the stamps of snap.File.
func (s *Store) SaveAnalysis(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.ProjectKey = projectKeyOrDefault(snap.ProjectKey)
	if strings.TrimSpace(snap.File) == "" {
		return derrors.New(derrors.CodeValidationError, "snapshot file must not be empty")
	}
	if snap.DecodedAt.IsZero() {
		snap.DecodedAt = time.Now().UTC()
	}

	return s.withRetry("save analysis", func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if err := saveAnalysisTx(tx, snap); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}

func saveAnalysisTx(tx *sql.Tx, snap Snapshot) error {
	_, err := tx.Exec(`
INSERT INTO analyses (
  project_key, file, digest, format_version, decoded_at_utc, compiler_version, compile_order,
  source_count, binary_count, product_count, problem_count, compilation_count
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(project_key, file) DO UPDATE SET
  digest=excluded.digest,
  format_version=excluded.format_version,
  decoded_at_utc=excluded.decoded_at_utc,
  compiler_version=excluded.compiler_version,
  compile_order=excluded.compile_order,
  source_count=excluded.source_count,
  binary_count=excluded.binary_count,
  product_count=excluded.product_count,
  problem_count=excluded.problem_count,
  compilation_count=excluded.compilation_count
`,
		snap.ProjectKey,
		snap.File,
		snap.Digest,
		snap.FormatVersion,
		snap.DecodedAt.UTC().Format(time.RFC3339Nano),
		snap.CompilerVersion,
		snap.CompileOrder,
		snap.SourceCount,
		snap.BinaryCount,
		snap.ProductCount,
		snap.ProblemCount,
		snap.CompilationCount,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM stamps WHERE project_key = ? AND file = ?`, snap.ProjectKey, snap.File); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO stamps (project_key, file, category, path, kind, value) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, row := range snap.Stamps {
		if _, err := stmt.Exec(snap.ProjectKey, snap.File, string(row.Category), row.Path, row.Kind, row.Value); err != nil {
			return err
		}
	}
	return nil
}

// LoadAnalysis returns the stored snapshot of file, stamps included.
func (s *Store) LoadAnalysis(projectKey, file string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectKey = projectKeyOrDefault(projectKey)
	var (
		snap  Snapshot
		tsRaw string
	)
	err := s.withRetry("load analysis", func() error {
		return s.db.QueryRow(`
SELECT
  project_key, file, digest, format_version, decoded_at_utc, compiler_version, compile_order,
  source_count, binary_count, product_count, problem_count, compilation_count
FROM analyses WHERE project_key = ? AND file = ?
`, projectKey, file).Scan(
			&snap.ProjectKey,
			&snap.File,
			&snap.Digest,
			&snap.FormatVersion,
			&tsRaw,
			&snap.CompilerVersion,
			&snap.CompileOrder,
			&snap.SourceCount,
			&snap.BinaryCount,
			&snap.ProductCount,
			&snap.ProblemCount,
			&snap.CompilationCount,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, derrors.AddContext(
			derrors.New(derrors.CodeNotFound, "analysis not indexed"), derrors.CtxPath, file)
	}
	if err != nil {
		return Snapshot{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, tsRaw)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse decoded timestamp %q: %w", tsRaw, err)
	}
	snap.DecodedAt = ts.UTC()

	rows, err := s.db.Query(`
SELECT category, path, kind, value FROM stamps
WHERE project_key = ? AND file = ?
ORDER BY category ASC, path ASC
`, projectKey, file)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load stamps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row      StampRow
			category string
		)
		if err := rows.Scan(&category, &row.Path, &row.Kind, &row.Value); err != nil {
			return Snapshot{}, fmt.Errorf("scan stamp row: %w", err)
		}
		row.Category = analysis.StampCategory(category)
		if _, err := row.Stamp(); err != nil {
			return Snapshot{}, fmt.Errorf("stamp row %s: %w", row.Path, err)
		}
		snap.Stamps = append(snap.Stamps, row)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("iterate stamp rows: %w", err)
	}
	return snap, nil
}

// SaveClasses replaces the class rows of file.
func (s *Store) SaveClasses(projectKey, file string, classes []ClassRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectKey = projectKeyOrDefault(projectKey)
	return s.withRetry("save classes", func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if err := saveClassesTx(tx, projectKey, file, classes); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}

func saveClassesTx(tx *sql.Tx, projectKey, file string, classes []ClassRow) error {
	if _, err := tx.Exec(`DELETE FROM classes WHERE project_key = ? AND file = ?`, projectKey, file); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
INSERT INTO classes (project_key, file, name, external, api_hash, extra_hash, has_macro, compilation_ts, provenance)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range classes {
		if _, err := stmt.Exec(projectKey, file, c.Name, c.External, c.APIHash, c.ExtraHash, c.HasMacro, c.CompilationTimestamp, c.Provenance); err != nil {
			return err
		}
	}
	return nil
}

// FilesDefining returns the APIs files that record class name as internal.
func (s *Store) FilesDefining(projectKey, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectKey = projectKeyOrDefault(projectKey)
	var rows *sql.Rows
	err := s.withRetry("find class", func() error {
		var qErr error
		rows, qErr = s.db.Query(`
SELECT file FROM classes
WHERE project_key = ? AND name = ? AND external = 0
ORDER BY file ASC
`, projectKey, name)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []string
	for rows.Next() {
		var file string
		if err := rows.Scan(&file); err != nil {
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

func (s *Store) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		lastErr = err
		if !isLockError(err) || attempt == maxAttempts {
			break
		}
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

func isLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}

func IsCorruptError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "malformed") || strings.Contains(msg, "not a database") || errors.Is(err, os.ErrInvalid)
}
