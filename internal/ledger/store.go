package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Job statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job is one prompt generation attempt for a reference clip.
type Job struct {
	ID           string
	SourcePath   string
	Voice        string
	Emotion      string
	Status       string
	OutputPath   string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store manages prompt job persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}

// Completed reports whether a clip already produced a prompt file.
func (s *Store) Completed(ctx context.Context, sourcePath string) (bool, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT status FROM prompt_jobs WHERE source_path = ?", sourcePath,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query job for %s: %w", sourcePath, err)
	}
	return status == StatusCompleted, nil
}

// RecordSuccess upserts a completed job for the clip.
func (s *Store) RecordSuccess(ctx context.Context, sourcePath, voice, emotion, outputPath string) error {
	return s.upsert(ctx, Job{
		SourcePath: sourcePath,
		Voice:      voice,
		Emotion:    emotion,
		Status:     StatusCompleted,
		OutputPath: outputPath,
	})
}

// RecordFailure upserts a failed job for the clip so a later run retries it.
func (s *Store) RecordFailure(ctx context.Context, sourcePath, voice, emotion string, cause error) error {
	message := ""
	if cause != nil {
		message = cause.Error()
	}
	return s.upsert(ctx, Job{
		SourcePath:   sourcePath,
		Voice:        voice,
		Emotion:      emotion,
		Status:       StatusFailed,
		ErrorMessage: message,
	})
}

func (s *Store) upsert(ctx context.Context, job Job) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prompt_jobs (
            id, source_path, voice, emotion, status,
            output_path, error_message, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(source_path) DO UPDATE SET
            voice = excluded.voice,
            emotion = excluded.emotion,
            status = excluded.status,
            output_path = excluded.output_path,
            error_message = excluded.error_message,
            updated_at = excluded.updated_at`,
		uuid.NewString(),
		job.SourcePath,
		job.Voice,
		job.Emotion,
		job.Status,
		job.OutputPath,
		job.ErrorMessage,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upsert job for %s: %w", job.SourcePath, err)
	}
	return nil
}

// List returns all jobs ordered by most recent update.
func (s *Store) List(ctx context.Context) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, voice, emotion, status,
                output_path, error_message, created_at, updated_at
         FROM prompt_jobs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		var createdAt, updatedAt string
		if err := rows.Scan(
			&job.ID, &job.SourcePath, &job.Voice, &job.Emotion, &job.Status,
			&job.OutputPath, &job.ErrorMessage, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		job.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		job.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
