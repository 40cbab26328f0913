package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// EvalRun is one recorded evaluation outcome.
type EvalRun struct {
	ID        string
	TrainFile string
	TestFile  string
	Correct   int
	Total     int
	Accuracy  float64
	CreatedAt time.Time
}

type RunStore interface {
	SaveRun(ctx context.Context, run EvalRun) error
	ListRuns(ctx context.Context, limit int) ([]EvalRun, error)
}

type SQLRunStore struct {
	db *sql.DB
}

func NewSQLRunStore(db *sql.DB) RunStore {
	return &SQLRunStore{db: db}
}

// SaveRun inserts the run, retrying transient write failures with Fibonacci
// backoff. An empty ID is assigned here; a zero CreatedAt becomes now.
func (s *SQLRunStore) SaveRun(ctx context.Context, run EvalRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	b := retry.NewFibonacci(100 * time.Millisecond)
	err := retry.Do(ctx, retry.WithMaxRetries(3, b), func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO runs (id, train_file, test_file, correct, total, accuracy, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, run.TrainFile, run.TestFile, run.Correct, run.Total, run.Accuracy, run.CreatedAt.Unix())
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save evaluation run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first.
func (s *SQLRunStore) ListRuns(ctx context.Context, limit int) ([]EvalRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, train_file, test_file, correct, total, accuracy, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []EvalRun
	for rows.Next() {
		var r EvalRun
		var created int64
		if err := rows.Scan(&r.ID, &r.TrainFile, &r.TestFile, &r.Correct, &r.Total, &r.Accuracy, &created); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(created, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
