package repository

import (
	"context"
	"sync"
)

// MemoryStateRepository keeps state in process memory only
type MemoryStateRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStateRepository creates an empty in-process repository
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (r *MemoryStateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value
func (r *MemoryStateRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (r *MemoryStateRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
