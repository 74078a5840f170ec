package cache

import "sync"

// Map is a thread-safe, read-mostly memo map. Entries are never evicted.
// The zero value is ready to use.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok
}

// GetOrCompute returns the value stored under key, computing and storing it on a miss.
// compute runs without holding any lock, so concurrent misses for the same key may
// compute more than once; the first stored value wins and is returned to every caller.
// Errors returned by compute are passed through and nothing is stored.
func (m *Map[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if winner, ok := m.items[key]; ok {
		return winner, nil
	}
	if m.items == nil {
		m.items = make(map[K]V)
	}
	m.items[key] = v

	return v, nil
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Keys returns a snapshot of the stored keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}
