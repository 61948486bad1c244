package sessionstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no value is stored under a key.
var ErrNotFound = errors.New("session key not found")

// Store is the persistence port for the mock session state. The browser
// localStorage of the original product maps onto a single key holding the
// serialized signed-in user.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// MemoryStore implements Store with an in-process map.
// This can be swapped for the Redis-based implementation when session state
// must survive restarts.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	return value, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
