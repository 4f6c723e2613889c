package store

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS analyses (
  project_key TEXT NOT NULL DEFAULT 'default',
  file TEXT NOT NULL,
  digest TEXT NOT NULL,
  format_version INTEGER NOT NULL,
  decoded_at_utc TEXT NOT NULL,
  compiler_version TEXT NOT NULL DEFAULT '',
  compile_order TEXT NOT NULL DEFAULT '',
  source_count INTEGER NOT NULL DEFAULT 0,
  binary_count INTEGER NOT NULL DEFAULT 0,
  product_count INTEGER NOT NULL DEFAULT 0,
  problem_count INTEGER NOT NULL DEFAULT 0,
  compilation_count INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (project_key, file)
);
CREATE TABLE IF NOT EXISTS stamps (
  project_key TEXT NOT NULL,
  file TEXT NOT NULL,
  category TEXT NOT NULL,
  path TEXT NOT NULL,
  kind TEXT NOT NULL,
  value TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (project_key, file, category, path),
  FOREIGN KEY (project_key, file) REFERENCES analyses(project_key, file) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_stamps_path ON stamps(path);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS classes (
  project_key TEXT NOT NULL,
  file TEXT NOT NULL,
  name TEXT NOT NULL,
  external INTEGER NOT NULL DEFAULT 0,
  api_hash INTEGER NOT NULL,
  extra_hash INTEGER NOT NULL DEFAULT 0,
  has_macro INTEGER NOT NULL DEFAULT 0,
  compilation_ts INTEGER NOT NULL DEFAULT 0,
  provenance TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (project_key, file, external, name)
);
CREATE INDEX IF NOT EXISTS idx_classes_name ON classes(name);
`,
	},
}

func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at_utc TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema_migrations version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return err
		}
	}
	return nil
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %d: %w", m.version, err)
	}
	if _, err := tx.Exec(m.sql); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %d: %w", m.version, err)
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?)`, m.version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %d: %w", m.version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %d: %w", m.version, err)
	}
	return nil
}
