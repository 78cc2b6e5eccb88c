package credentials

import (
	"context"
	"sync"
)

// MemoryStore is an in-process credential store. Suitable for single-instance
// deployments and tests; tokens are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[Service]map[string]string
}

// NewMemoryStore creates an empty in-memory credential store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[Service]map[string]string),
	}
}

// Get returns the stored value and whether it was present
func (s *MemoryStore) Get(ctx context.Context, service Service, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.slots[service]
	if !ok {
		return "", false, nil
	}
	value, ok := ns[key]
	return value, ok, nil
}

// Set stores a value under the service namespace
func (s *MemoryStore) Set(ctx context.Context, service Service, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.slots[service]
	if !ok {
		ns = make(map[string]string)
		s.slots[service] = ns
	}
	ns[key] = value
	return nil
}

// Delete removes the given keys from the service namespace
func (s *MemoryStore) Delete(ctx context.Context, service Service, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.slots[service]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(ns, key)
	}
	return nil
}

// Clear removes every key in the service namespace
func (s *MemoryStore) Clear(ctx context.Context, service Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, service)
	return nil
}
