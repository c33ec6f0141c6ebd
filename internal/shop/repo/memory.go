package repo

import (
	"context"
	"sync"

	"github.com/storefront-poc-v1/client/internal/shop/session"
)

// MemorySessionStorage is a process-local session store. Useful in tests
// and for one-shot runs where persistence is unwanted.
type MemorySessionStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{data: make(map[string]string)}
}

func (m *MemorySessionStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemorySessionStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *MemorySessionStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

var _ session.Storage = (*MemorySessionStorage)(nil)
