// Package store persists verification run records for batch pipelines.
// The core facade never touches a store; only the batch runner and CLIs
// do.
package store

import (
	"context"
	"time"
)

// Store is the interface for persisting and querying run records.
type Store interface {
	Close() error

	RecordRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Run is one recorded verification outcome.
type Run struct {
	ID        string // ULID
	Source    string // file path, or "<inline>" for literal text
	Dialect   string
	Status    string
	Model     string
	Learned   []string
	Duration  time.Duration
	CreatedAt time.Time
}
