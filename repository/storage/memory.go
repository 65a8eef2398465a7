package storage

import (
	"context"
	"sync"
)

type memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStorage returns a process-local Storage. Contents are lost on exit.
func NewMemoryStorage() Storage {
	return &memory{data: make(map[string]string)}
}

func (m *memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
