// Package store keeps the latest run result for the API surface, either in
// memory or in Redis.
package store

import (
	"context"
	"errors"
	"sync"

	"newsharvest/types"
)

// ErrNoRuns is returned by Latest before any run has completed.
var ErrNoRuns = errors.New("no runs recorded")

// Store persists the most recent run result.
type Store interface {
	Save(ctx context.Context, result *types.RunResult) error
	Latest(ctx context.Context) (*types.RunResult, error)
}

// Memory is the default in-process store.
type Memory struct {
	mu   sync.RWMutex
	last *types.RunResult
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save replaces the stored result.
func (m *Memory) Save(_ context.Context, result *types.RunResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = result
	return nil
}

// Latest returns the stored result or ErrNoRuns.
func (m *Memory) Latest(_ context.Context) (*types.RunResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return nil, ErrNoRuns
	}
	return m.last, nil
}
