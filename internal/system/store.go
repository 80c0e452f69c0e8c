package system

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store persists generated systems. Lookups of unknown IDs return nil
// without an error.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Texture(ctx context.Context, id uuid.UUID, index int) ([]byte, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemoryStore keeps systems in process memory. It backs the service when
// persistence is disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]*Record)}
}

func (m *MemoryStore) Save(_ context.Context, rec *Record) error {
	cp := *rec
	cp.Planets = slices.Clone(rec.Planets)
	cp.Textures = slices.Clone(rec.Textures)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = &cp
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Planets = slices.Clone(rec.Planets)
	cp.Textures = nil
	return &cp, nil
}

func (m *MemoryStore) Texture(_ context.Context, id uuid.UUID, index int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok || index < 0 || index >= len(rec.Textures) {
		return nil, nil
	}
	return rec.Textures[index], nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}
