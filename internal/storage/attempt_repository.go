package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Attempt is one recorded practice run.
type Attempt struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	AudioDir  string    `json:"audio_dir,omitempty"`
	Metadata  string    `json:"metadata"` // JSON-encoded field mapping
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// AttemptRepository is the data access layer for practice attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create inserts a new attempt. A missing ID is generated.
func (r *AttemptRepository) Create(ctx context.Context, attempt *Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, filename, audio_dir, metadata, feedback, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		attempt.ID, attempt.Filename, attempt.AudioDir, attempt.Metadata, attempt.Feedback, attempt.CreatedAt,
	)
	return err
}

// GetByID returns an attempt by ID, or nil if it does not exist.
func (r *AttemptRepository) GetByID(ctx context.Context, id string) (*Attempt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, filename, audio_dir, metadata, feedback, created_at
		 FROM attempts WHERE id = ?`, id)

	var a Attempt
	err := row.Scan(&a.ID, &a.Filename, &a.AudioDir, &a.Metadata, &a.Feedback, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListRecent returns the most recent attempts, newest first.
func (r *AttemptRepository) ListRecent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, filename, audio_dir, metadata, feedback, created_at
		 FROM attempts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Filename, &a.AudioDir, &a.Metadata, &a.Feedback, &a.CreatedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// CleanupOlderThan deletes attempts created before the cutoff and
// returns their audio directories so the caller can remove the files.
func (r *AttemptRepository) CleanupOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT audio_dir FROM attempts WHERE created_at < ? AND audio_dir != ''`, cutoff)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for rows.Next() {
		var dir string
		if err := rows.Scan(&dir); err != nil {
			rows.Close()
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts WHERE created_at < ?`, cutoff); err != nil {
		return nil, err
	}
	return dirs, nil
}
