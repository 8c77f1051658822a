package repository

import (
	"context"
	"sync"

	domainRepo "ayurcare/internal/domain/repository"
)

// memoryStore is a non-durable driver for tests and throwaway sessions.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() domainRepo.KeyValueStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, domainRepo.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}
