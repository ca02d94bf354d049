// Package memstore provides an in-memory Store, used by tests and by
// batch runs that do not need durability.
package memstore

import (
	"context"
	"sync"

	"github.com/hornlab/hornet/pkg/hornet/store"
)

type memStore struct {
	mu   sync.RWMutex
	runs []store.Run
	byID map[string]int
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{byID: make(map[string]int)}
}

func (m *memStore) Close() error {
	return nil
}

func (m *memStore) RecordRun(ctx context.Context, r store.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx, ok := m.byID[r.ID]; ok {
		m.runs[idx] = r
		return nil
	}
	m.byID[r.ID] = len(m.runs)
	m.runs = append(m.runs, r)
	return nil
}

func (m *memStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.byID[id]
	if !ok {
		return store.Run{}, false, nil
	}
	return m.runs[idx], true, nil
}

// ListRuns returns the most recent runs first.
func (m *memStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.runs)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]store.Run, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

func (m *memStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range m.runs {
		counts[r.Status]++
	}
	return counts, nil
}
