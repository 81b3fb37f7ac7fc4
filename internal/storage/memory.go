package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory TokenStore used in tests and anywhere a
// throwaway session is acceptable.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

var _ TokenStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", nil
	}
	return m.token, nil
}

func (m *MemoryStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
