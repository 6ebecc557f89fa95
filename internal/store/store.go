// Package store opens and migrates the ember SQLite database.
package store

import (
	"database/sql"
	"fmt"

	"github.com/embertrack/ember/internal/config"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the ember database.
func Open() (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}

	conn, err := sql.Open("sqlite", paths.DBFile+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Migrate applies the schema to an arbitrary connection. Exposed so tests
// can run against :memory: databases.
func Migrate(conn *sql.DB) error {
	return (&DB{conn: conn}).migrate()
}

// migrate runs all schema migrations.
func (db *DB) migrate() error {
	migrations := []string{
		// One row per tracked activity type, with its streak rules.
		`CREATE TABLE IF NOT EXISTS activity_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			label TEXT DEFAULT '',
			grace_days INTEGER NOT NULL DEFAULT 0,
			weekend_grace INTEGER NOT NULL DEFAULT 0,
			count_future INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		// One row per (type, day). The UNIQUE constraint makes same-day
		// re-logs a no-op before they ever reach the streak math.
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			type_id INTEGER NOT NULL REFERENCES activity_types(id) ON DELETE CASCADE,
			day TEXT NOT NULL,
			note TEXT DEFAULT '',
			logged_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(type_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_type_day ON activities(type_id, day)`,
		// Key-value store for misc state
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
