// Package keystats defines the per-key statistics store and attributes
// typed characters to key labels.
package keystats

import (
	"context"
	"sync"

	"github.com/verte-zerg/keyheat/internal/keys"
	"github.com/verte-zerg/keyheat/internal/model"
)

// Outcome selects which counters a bump increments.
type Outcome struct {
	Hit   bool
	Error bool
}

// Store persists per-label counters.
type Store interface {
	Get(ctx context.Context, label string) (model.KeyStats, error)
	Set(ctx context.Context, label string, stats model.KeyStats) error
	Bump(ctx context.Context, label string, outcome Outcome) error
	All(ctx context.Context) (map[string]model.KeyStats, error)
	Reset(ctx context.Context) error
}

// Apply returns stats with the outcome's counters incremented.
func Apply(stats model.KeyStats, outcome Outcome) model.KeyStats {
	if outcome.Hit {
		stats.Hits++
	}
	if outcome.Error {
		stats.Errors++
	}
	return stats
}

// Memory is an in-memory Store safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	stats map[string]model.KeyStats
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{stats: map[string]model.KeyStats{}}
}

// Get returns the counters for label, zero when absent.
func (m *Memory) Get(_ context.Context, label string) (model.KeyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats[label], nil
}

// Set replaces the counters for label.
func (m *Memory) Set(_ context.Context, label string, stats model.KeyStats) error {
	if label == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[label] = stats
	return nil
}

// Bump increments counters for label. An empty label is ignored.
func (m *Memory) Bump(_ context.Context, label string, outcome Outcome) error {
	if label == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[label] = Apply(m.stats[label], outcome)
	return nil
}

// All returns a copy of every stored record.
func (m *Memory) All(_ context.Context) (map[string]model.KeyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]model.KeyStats, len(m.stats))
	for label, stats := range m.stats {
		out[label] = stats
	}
	return out, nil
}

// Reset drops every record.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = map[string]model.KeyStats{}
	return nil
}

// Recorder attributes typed characters to the key that should have been
// pressed.
type Recorder struct {
	store Store
}

// NewRecorder wraps a store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record counts a hit when typed matches expected and an error otherwise,
// both against the label of the expected character.
func (r *Recorder) Record(ctx context.Context, expected, typed rune) error {
	label := keys.CharLabel(expected)
	if typed == expected {
		return r.store.Bump(ctx, label, Outcome{Hit: true})
	}
	return r.store.Bump(ctx, label, Outcome{Error: true})
}
