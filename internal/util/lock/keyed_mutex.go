package lock_utils

import "sync"

// KeyedMutex serializes operations that share the same string key.
// Locks are created lazily and never evicted; the key space here is
// bounded by the number of live projects.
type KeyedMutex struct {
	mutexes sync.Map
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

func (m *KeyedMutex) Lock(key string) {
	mu, _ := m.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (m *KeyedMutex) Unlock(key string) {
	mu, ok := m.mutexes.Load(key)
	if !ok {
		return
	}
	mu.(*sync.Mutex).Unlock()
}
