// Package sqlite provides a SQLite-backed press history store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dontpressbutton/dontpress/internal/domain"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS press_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	kind TEXT NOT NULL,
	click_count INTEGER NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_press_events_session ON press_events(session);
CREATE INDEX IF NOT EXISTS idx_press_events_kind ON press_events(kind);
`

// SQLiteStorage implements the domain.Repository interface using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

var _ domain.Repository = (*SQLiteStorage)(nil)

// NewSQLiteStorage creates a SQLite-backed history store at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	s := &SQLiteStorage{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// AppendEvent records an event and returns its generated ID.
func (s *SQLiteStorage) AppendEvent(e domain.Event) (string, error) {
	if !domain.ValidKind(e.Kind) {
		return "", fmt.Errorf("sqlite storage: invalid event kind %q", e.Kind)
	}
	if e.Timestamp == "" {
		e.Timestamp = domain.UTCNow()
	}

	res, err := s.db.ExecContext(context.Background(),
		`INSERT INTO press_events (session, kind, click_count, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Session, e.Kind, e.ClickCount, e.Message, e.Timestamp)
	if err != nil {
		return "", fmt.Errorf("sqlite storage: append event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("sqlite storage: last insert id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

// ListEvents returns events matching the filter, oldest first.
func (s *SQLiteStorage) ListEvents(f domain.Filter) ([]domain.Event, error) {
	query := `SELECT id, session, kind, click_count, message, created_at
		FROM press_events`
	var conds []string
	var args []any
	if f.Session != "" {
		conds = append(conds, "session = ?")
		args = append(args, f.Session)
	}
	if f.Kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, f.Kind)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var id int64
		if err := rows.Scan(&id, &e.Session, &e.Kind, &e.ClickCount, &e.Message, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan event: %w", err)
		}
		e.ID = strconv.FormatInt(id, 10)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: iterate events: %w", err)
	}

	if f.Limit > 0 && len(events) > f.Limit {
		events = events[len(events)-f.Limit:]
	}
	return events, nil
}

// Clear removes all recorded events.
func (s *SQLiteStorage) Clear() error {
	if _, err := s.db.Exec("DELETE FROM press_events"); err != nil {
		return fmt.Errorf("sqlite storage: clear: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
