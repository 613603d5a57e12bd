// Package snapshot persists the authenticated part of a session state
// (session plus profile) so it survives restarts of the service.
package snapshot

import (
	"context"
	"sync"

	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Snapshot is the persisted subset of a session state.
type Snapshot struct {
	Session *store.Session        `json:"session"`
	Profile *profileModel.Profile `json:"profile"`
}

// Store reads and writes snapshots by name.
type Store interface {
	// Load returns nil, nil when nothing was saved under name.
	Load(ctx context.Context, name string) (*Snapshot, error)
	Save(ctx context.Context, name string, snap Snapshot) error
}

// Memory keeps snapshots in process memory.
type Memory struct {
	mu    sync.RWMutex
	items map[string]Snapshot
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]Snapshot)}
}

// Load implements Store.
func (m *Memory) Load(_ context.Context, name string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.items[name]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, name string, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[name] = snap
	return nil
}
