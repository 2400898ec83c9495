package repository

import (
	"context"
	"sync"

	"github.com/AdwaitMishr/vitmart/internal/port"
)

// memoryKV keeps entries in process memory. It is the stand-in for the
// browser local storage the storefront originally persisted to, and the
// default backend for tests and dev.
type memoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKV() port.KV {
	return &memoryKV{entries: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *memoryKV) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range entries {
		m.entries[key] = value
	}
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
