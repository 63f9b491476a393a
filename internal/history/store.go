// Package history persists completed agent runs to a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ChamsBouzaiene/scout/internal/engine"
)

// Record is one completed run.
type Record struct {
	RunID       string
	Question    string
	Answer      string
	ErrorMsg    string
	Success     bool
	Steps       int
	TotalTokens int
	DurationMS  int64
	Transcript  []engine.ScratchEntry
	CreatedAt   time.Time
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at dbPath and ensures the schema.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	// modernc.org/sqlite serializes writers; a single connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history db: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	question     TEXT NOT NULL,
	answer       TEXT NOT NULL DEFAULT '',
	error_msg    TEXT NOT NULL DEFAULT '',
	success      INTEGER NOT NULL,
	steps        INTEGER NOT NULL,
	total_tokens INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	transcript   TEXT NOT NULL DEFAULT '[]',
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing history schema: %w", err)
	}
	return nil
}

// Save inserts one run record.
func (s *Store) Save(ctx context.Context, r Record) error {
	transcript, err := json.Marshal(r.Transcript)
	if err != nil {
		return fmt.Errorf("marshaling transcript: %w", err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs (run_id, question, answer, error_msg, success, steps, total_tokens, duration_ms, transcript, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Question, r.Answer, r.ErrorMsg, boolToInt(r.Success),
		r.Steps, r.TotalTokens, r.DurationMS, string(transcript), r.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", r.RunID, err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT run_id, question, answer, error_msg, success, steps, total_tokens, duration_ms, transcript, created_at
FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var success int
		var transcript string
		if err := rows.Scan(&r.RunID, &r.Question, &r.Answer, &r.ErrorMsg, &success,
			&r.Steps, &r.TotalTokens, &r.DurationMS, &transcript, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		r.Success = success != 0
		if err := json.Unmarshal([]byte(transcript), &r.Transcript); err != nil {
			return nil, fmt.Errorf("unmarshaling transcript for %s: %w", r.RunID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
