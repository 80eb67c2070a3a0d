package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// ResultRepo returns a ResultRepo backed by this store.
func (s *Store) ResultRepo() ResultRepo {
	return &resultRepo{drv: s.drv}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrations are applied in order; user_version records how many steps
// ran. Each step commits together with its version bump.
var migrations = [][]string{
	{`CREATE TABLE IF NOT EXISTS results (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id   TEXT    NOT NULL UNIQUE,
		category     TEXT    NOT NULL,
		tally        TEXT    NOT NULL,
		started_at   INTEGER NOT NULL,
		completed_at INTEGER NOT NULL
	)`},
	{`CREATE INDEX IF NOT EXISTS idx_results_completed_at ON results (completed_at)`},
}

func migrate(ctx context.Context, drv *entsql.Driver) error {
	var rows entsql.Rows
	if err := drv.Query(ctx, "PRAGMA user_version", []any{}, &rows); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	version, err := scanInt(&rows)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if err := migrateStep(ctx, drv, i); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

func migrateStep(ctx context.Context, drv *entsql.Driver, i int) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return err
	}
	for _, stmt := range migrations[i] {
		if err := tx.Exec(ctx, stmt, []any{}, nil); err != nil {
			tx.Rollback()
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if err := tx.Exec(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1), []any{}, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("set user_version: %w", err)
	}
	return tx.Commit()
}

func scanInt(rows *entsql.Rows) (int, error) {
	defer rows.Close()
	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return n, rows.Err()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PLANTQUIZ_DB environment variable
// 2. $XDG_DATA_HOME/plantquiz/plantquiz.db
// 3. ~/.local/share/plantquiz/plantquiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PLANTQUIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "plantquiz", "plantquiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
