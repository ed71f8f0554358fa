package slot

import (
	"context"
	"sync"
)

type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (m *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
