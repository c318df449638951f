package session

import (
	"context"
	"sync"
)

// Memory is an in-process Store for tests and development.
type Memory struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the stored snapshot.
func (m *Memory) Load(_ context.Context) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySnapshot(m.snap), nil
}

// Save replaces the snapshot atomically.
func (m *Memory) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = copySnapshot(snap)
	return nil
}

// Clear drops all stored state.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = Snapshot{}
	return nil
}

func copySnapshot(snap Snapshot) Snapshot {
	out := Snapshot{
		AccessToken:  snap.AccessToken,
		RefreshToken: snap.RefreshToken,
	}
	if len(snap.UserJSON) > 0 {
		out.UserJSON = append([]byte(nil), snap.UserJSON...)
	}
	return out
}

// MemoryFactory hands out per-session-id memory stores from one shared map.
type MemoryFactory struct {
	mu     sync.Mutex
	stores map[string]*Memory
}

// NewMemoryFactory builds an empty factory.
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{stores: make(map[string]*Memory)}
}

// Store returns the store for the session id, creating it on first use.
func (f *MemoryFactory) Store(sessionID string) Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	store, ok := f.stores[sessionID]
	if !ok {
		store = NewMemory()
		f.stores[sessionID] = store
	}
	return store
}
