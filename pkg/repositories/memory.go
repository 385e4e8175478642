package repositories

import (
	"context"
	"sync"
)

// MemoryRepository keeps preferences for the lifetime of the process.
type MemoryRepository struct {
	lock        sync.RWMutex
	preferences map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		preferences: make(map[string]string),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) GetPreference(ctx context.Context, key string) (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	value, ok := r.preferences[key]
	if !ok {
		return "", &ErrNotFound{}
	}
	return value, nil
}

func (r *MemoryRepository) SetPreference(ctx context.Context, key string, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.preferences[key] = value
	return nil
}
