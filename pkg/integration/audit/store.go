// Package audit persists integration call outcomes to a local SQLite
// database. Records carry correlation IDs and outcome classifications
// only; no credentials or payloads are ever stored.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"opencrms/engine/pkg/integration"
)

// Store is the SQLite-backed call audit log. It implements
// integration.Recorder.
//
// The store uses a write-ahead log for concurrent read performance and a
// single writer connection, which is all SQLite supports anyway.
type Store struct {
	db        *sql.DB
	path      string
	mu        sync.RWMutex
	closeOnce sync.Once

	insertStmt *sql.Stmt
	recentStmt *sql.Stmt
}

// Open creates or opens the audit database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("audit: db path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("audit: create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, path: path}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: prepare statements: %w", err)
	}

	return s, nil
}

// initSchema creates the audit table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS integration_calls (
		request_id TEXT NOT NULL PRIMARY KEY,
		integration TEXT NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		retryable INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		started_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calls_started_at ON integration_calls(started_at);
	CREATE INDEX IF NOT EXISTS idx_calls_integration ON integration_calls(integration);
	`

	_, err := s.db.Exec(schema)
	return err
}

// prepareStatements prepares SQL statements for reuse.
func (s *Store) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO integration_calls
			(request_id, integration, method, path, status_code, outcome, retryable, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}

	s.recentStmt, err = s.db.Prepare(`
		SELECT request_id, integration, method, path, status_code, outcome, retryable, duration_ms, started_at
		FROM integration_calls
		ORDER BY started_at DESC, request_id
		LIMIT ?
	`)
	if err != nil {
		return fmt.Errorf("prepare recent: %w", err)
	}

	return nil
}

// Record persists one call outcome.
func (s *Store) Record(ctx context.Context, record integration.CallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	retryable := 0
	if record.Retryable {
		retryable = 1
	}

	_, err := s.insertStmt.ExecContext(ctx,
		record.RequestID,
		record.Slot,
		record.Method,
		record.Path,
		record.StatusCode,
		record.Outcome,
		retryable,
		record.Duration.Milliseconds(),
		record.StartedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("audit: insert record: %w", err)
	}

	return nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]integration.CallRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.recentStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query records: %w", err)
	}
	defer rows.Close()

	var records []integration.CallRecord
	for rows.Next() {
		var (
			record     integration.CallRecord
			retryable  int
			durationMS int64
			startedAt  int64
		)
		if err := rows.Scan(
			&record.RequestID,
			&record.Slot,
			&record.Method,
			&record.Path,
			&record.StatusCode,
			&record.Outcome,
			&retryable,
			&durationMS,
			&startedAt,
		); err != nil {
			return nil, fmt.Errorf("audit: scan row: %w", err)
		}
		record.Retryable = retryable == 1
		record.Duration = time.Duration(durationMS) * time.Millisecond
		record.StartedAt = time.Unix(startedAt, 0)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: iterate rows: %w", err)
	}

	return records, nil
}

// Prune removes records older than the cutoff and returns how many were
// deleted.
func (s *Store) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM integration_calls WHERE started_at < ?", olderThan.Unix())
	if err != nil {
		return 0, fmt.Errorf("audit: prune: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("audit: rows affected: %w", err)
	}

	return int(deleted), nil
}

// Close releases database resources. Close is idempotent.
func (s *Store) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		if s.insertStmt != nil {
			s.insertStmt.Close()
		}
		if s.recentStmt != nil {
			s.recentStmt.Close()
		}
		if s.db != nil {
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = s.db.Close()
		}
	})

	return closeErr
}
