package kv

import (
	"context"
	"sync"
)

type memorySubstrate struct {
	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewMemory returns a Substrate that keeps everything in process memory.
func NewMemory() Substrate {
	return &memorySubstrate{items: make(map[string]string)}
}

func (m *memorySubstrate) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memorySubstrate) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.items[key] = value
	return nil
}

func (m *memorySubstrate) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	delete(m.items, key)
	return nil
}

func (m *memorySubstrate) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
