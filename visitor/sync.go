package visitor

import "sync"

// SyncMap is a thread-safe map
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// GetOrCreate returns cached value, or stores and returns the one created by supplied function
func (m *SyncMap[K, V]) GetOrCreate(k K, create func() V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if v, ok := m.m[k]; ok {
		return v
	}
	v := create()
	m.m[k] = v
	return v
}

// Len returns number of cached entries
func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
