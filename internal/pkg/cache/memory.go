package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory is a mutex-guarded TTL map. Expiry is wall-clock based and entries
// are dropped lazily on read; the key space here (feed URLs) is small and
// bounded, so there is no capacity limit.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, dest any) error {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return ErrMiss
	}
	if !entry.expiresAt.After(m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return ErrMiss
	}
	return sonic.Unmarshal(entry.payload, dest)
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	payload, err := sonic.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{payload: payload, expiresAt: m.now().Add(ttl)}
	return nil
}
