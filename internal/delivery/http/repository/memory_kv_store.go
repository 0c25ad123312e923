package repository

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string][]byte)}
}

func (s *memoryKeyValueStore) Get(ctx context.Context, userID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[userID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *memoryKeyValueStore) Set(ctx context.Context, userID string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = append([]byte(nil), value...)
	return nil
}

func (s *memoryKeyValueStore) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
	return nil
}

func (s *memoryKeyValueStore) GetAndDelete(ctx context.Context, userID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[userID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	delete(s.items, userID)
	return v, nil
}
