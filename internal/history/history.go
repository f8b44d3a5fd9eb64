// Package history is the local SQLite-backed record of past `bidi test`
// invocations, used for the `bidi history` command's pass-rate trend
// report only -- it is never consulted by the resolution algorithm. It is
// grounded on the teacher codebase's own internal/database, trimmed from a
// general multi-backend connection manager down to a single embedded file
// opened once per command invocation.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"bidi/internal/bidierr"
)

// Run is one recorded `bidi test` invocation.
type Run struct {
	ID        string
	Timestamp time.Time
	File      string
	Passed    int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

// Store wraps the embedded SQLite database the history table lives in.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	file      TEXT NOT NULL,
	passed    INTEGER NOT NULL,
	failed    INTEGER NOT NULL,
	skipped   INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);`

// Open opens (creating if necessary) the SQLite file at path and ensures
// the runs table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening history store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stamps run with a fresh UUID and timestamp and persists it.
func (s *Store) Record(ctx context.Context, file string, passed, failed, skipped int, duration time.Duration) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		File:      file,
		Passed:    passed,
		Failed:    failed,
		Skipped:   skipped,
		Duration:  duration,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, timestamp, file, passed, failed, skipped, duration_ms) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.Unix(), run.File, run.Passed, run.Failed, run.Skipped, run.Duration.Milliseconds(),
	)
	if err != nil {
		return Run{}, bidierr.NewInternal(fmt.Sprintf("recording history: %v", err))
	}
	return run, nil
}

// Recent returns up to limit most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, file, passed, failed, skipped, duration_ms FROM runs ORDER BY timestamp DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var ts int64
		var durMS int64
		if err := rows.Scan(&r.ID, &ts, &r.File, &r.Passed, &r.Failed, &r.Skipped, &durMS); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0)
		r.Duration = time.Duration(durMS) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// PassRate returns Passed / (Passed+Failed) over r's own counts, 1.0 if no
// cases ran at all (vacuously all passed).
func (r Run) PassRate() float64 {
	total := r.Passed + r.Failed
	if total == 0 {
		return 1
	}
	return float64(r.Passed) / float64(total)
}
