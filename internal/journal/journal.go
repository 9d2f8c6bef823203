// Package journal records conversion runs in a SQLite database. Batch mode
// uses it to skip unchanged inputs and the history command reads it back.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	input_file   TEXT NOT NULL,
	output_file  TEXT NOT NULL,
	sha256       TEXT NOT NULL,
	size_bytes   INTEGER NOT NULL,
	status       TEXT NOT NULL,
	message      TEXT NOT NULL DEFAULT '',
	duration_ms  INTEGER NOT NULL DEFAULT 0,
	processed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_conversions_input ON conversions(input_file, sha256);
`

// Statuses recorded for a conversion.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is one recorded conversion.
type Entry struct {
	ID          int64
	InputFile   string
	OutputFile  string
	SHA256      string
	SizeBytes   int64
	Status      string
	Message     string
	Duration    time.Duration
	ProcessedAt time.Time
}

// Journal is a handle on the conversion history database.
type Journal struct {
	db   *sql.DB
	path string
}

// Open opens or creates the journal database at the given path, creating
// parent directories and the schema as needed.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure journal database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{db: db, path: path}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends a conversion entry.
func (j *Journal) Record(e Entry) error {
	_, err := j.db.Exec(
		`INSERT INTO conversions (input_file, output_file, sha256, size_bytes, status, message, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.InputFile, e.OutputFile, e.SHA256, e.SizeBytes, e.Status, e.Message,
		e.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// Seen reports whether a successful conversion of this exact input content
// has already been recorded.
func (j *Journal) Seen(inputFile, sha256 string) (bool, error) {
	var count int
	err := j.db.QueryRow(
		`SELECT COUNT(*) FROM conversions WHERE input_file = ? AND sha256 = ? AND status = ?`,
		inputFile, sha256, StatusOK,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query journal: %w", err)
	}
	return count > 0, nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, input_file, output_file, sha256, size_bytes, status, message, duration_ms, processed_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.InputFile, &e.OutputFile, &e.SHA256, &e.SizeBytes,
			&e.Status, &e.Message, &durationMs, &e.ProcessedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
