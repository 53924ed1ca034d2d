package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/xXJSONDeruloXx/Allium/internal/logging/events"
)

// SQLiteHistory stores launch history in a SQLite database. Args are kept
// JSON-encoded in a single column; the table is small and only ever read
// back whole rows.
type SQLiteHistory struct {
	db  *sql.DB
	now func() time.Time
}

const historySchema = `
CREATE TABLE IF NOT EXISTS history (
	path        TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	core        TEXT NOT NULL,
	command     TEXT NOT NULL,
	args        TEXT NOT NULL,
	has_menu    INTEGER NOT NULL,
	needs_swap  INTEGER NOT NULL,
	last_played INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS history_last_played ON history (last_played);
`

// OpenSQLiteHistory opens (creating when needed) the history database at
// path. Use ":memory:" for tests.
func OpenSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &SQLiteHistory{db: db, now: time.Now}, nil
}

// Touch implements HistoryStore.
func (s *SQLiteHistory) Touch(e HistoryEntry) error {
	args, err := json.Marshal(e.Args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	last := e.LastPlayed
	if last == 0 {
		last = s.now().Unix()
	}
	_, err = s.db.Exec(`
		INSERT INTO history (path, name, core, command, args, has_menu, needs_swap, last_played)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			core = excluded.core,
			command = excluded.command,
			args = excluded.args,
			has_menu = excluded.has_menu,
			needs_swap = excluded.needs_swap,
			last_played = excluded.last_played`,
		e.Path, e.Name, e.Core, e.Command, string(args), e.HasMenu, e.NeedsSwap, last)
	if err != nil {
		return fmt.Errorf("touch history: %w", err)
	}
	events.History.Touch(e.Path)
	return nil
}

// Recent implements HistoryStore.
func (s *SQLiteHistory) Recent(limit int, exclude string) ([]HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT path, name, core, command, args, has_menu, needs_swap, last_played
		FROM history
		WHERE path != ?
		ORDER BY last_played DESC
		LIMIT ?`, exclude, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var args string
		if err := rows.Scan(&e.Path, &e.Name, &e.Core, &e.Command, &args,
			&e.HasMenu, &e.NeedsSwap, &e.LastPlayed); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(args), &e.Args); err != nil {
			// tolerate a bad row rather than blanking the switcher
			e.Args = nil
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Evict implements HistoryStore.
func (s *SQLiteHistory) Evict(capacity int) error {
	res, err := s.db.Exec(`
		DELETE FROM history WHERE path NOT IN (
			SELECT path FROM history ORDER BY last_played DESC LIMIT ?
		)`, capacity)
	if err != nil {
		return fmt.Errorf("evict history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		events.History.Evict(int(n))
	}
	return nil
}

// Clear implements HistoryStore.
func (s *SQLiteHistory) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	return err
}

// Close implements HistoryStore.
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}
