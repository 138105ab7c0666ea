// Package store persists tasks, notes, journal entries and notebooks in a
// SQLite database.
//
// Items belong to at most one notebook. Archived items stay in the database
// but are left out of listings.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row with the requested id does not exist.
var ErrNotFound = errors.New("store: not found")

// timeLayout is how created_at / updated_at are stored.
const timeLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    due_date TEXT,
    status TEXT NOT NULL DEFAULT 'todo',
    tags TEXT,
    "order" INTEGER NOT NULL DEFAULT 0,
    archived INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT,
    tags TEXT,
    archived INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS journals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    title TEXT,
    content TEXT,
    tags TEXT,
    archived INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notebooks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
CREATE INDEX IF NOT EXISTS idx_tasks_title ON tasks(title);
CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
CREATE INDEX IF NOT EXISTS idx_journals_date ON journals(date);
CREATE INDEX IF NOT EXISTS idx_journals_title ON journals(title);
CREATE INDEX IF NOT EXISTS idx_notebooks_name ON notebooks(name);
`

// itemTables gained notebook_id after the first release; older databases
// are migrated on open.
var itemTables = []string{"tasks", "notes", "journals"}

// Store is safe for concurrent use; database/sql pools the connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and brings its
// schema up to date.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases coherent and serializes
	// writers, which SQLite does anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := migrateNotebookColumns(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Store: opened %s", path)
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func migrateNotebookColumns(ctx context.Context, db *sql.DB) error {
	for _, table := range itemTables {
		var n int
		err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = 'notebook_id'", table).Scan(&n)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", table, err)
		}
		if n == 0 {
			if _, err := db.ExecContext(ctx, "ALTER TABLE "+table+" ADD COLUMN notebook_id INTEGER"); err != nil {
				return fmt.Errorf("failed to migrate %s: %w", table, err)
			}
			log.Printf("Store: added notebook_id to %s", table)
		}
		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_notebook_id ON %s(notebook_id)", table, table)
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to index %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) timestamp() string {
	return s.now().Format(timeLayout)
}

func parseTime(v string) time.Time {
	t, err := time.ParseInLocation(timeLayout, v, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

// notebookClause returns the WHERE fragment selecting items of a notebook,
// or items outside any notebook when id is nil.
func notebookClause(id *int64) (string, []any) {
	if id == nil {
		return "notebook_id IS NULL", nil
	}
	return "notebook_id = ?", []any{*id}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// checkAffected turns an UPDATE/DELETE that matched nothing into ErrNotFound.
func checkAffected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("%s %d: %w", what, id, err)
}
