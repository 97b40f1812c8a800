// Package dynmap provides a hash map keyed by dynamic values. Go's native
// maps compare keys with ==, which for ched.Object would mean box identity
// rather than payload equality; Map restores native map semantics by
// bucketing on Object.Sum64 and resolving collisions with Object.Equal.
//
// Map is not safe for concurrent use, matching the native map contract.
package dynmap

import "github.com/obsidiandynamics/vtable/ched"

// Map associates values of type V with ched.Object keys.
type Map[V any] struct {
	buckets map[uint64][]entry[V]
	size    int
}

type entry[V any] struct {
	key   ched.Object
	value V
}

// New returns an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]entry[V])}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Put associates value with key. If an equal key was already present its
// value is overwritten and the previous value returned.
func (m *Map[V]) Put(key ched.Object, value V) (prev V, replaced bool) {
	sum := key.Sum64()
	bucket := m.buckets[sum]
	for i, e := range bucket {
		if e.key.Equal(key) {
			prev = e.value
			bucket[i] = entry[V]{key: key, value: value}
			return prev, true
		}
	}
	m.buckets[sum] = append(bucket, entry[V]{key: key, value: value})
	m.size++
	return prev, false
}

// Get returns the value associated with key, if any.
func (m *Map[V]) Get(key ched.Object) (V, bool) {
	for _, e := range m.buckets[key.Sum64()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key, reporting whether it was present.
func (m *Map[V]) Delete(key ched.Object) bool {
	sum := key.Sum64()
	bucket := m.buckets[sum]
	for i, e := range bucket {
		if e.key.Equal(key) {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			if len(bucket) == 0 {
				delete(m.buckets, sum)
			} else {
				m.buckets[sum] = bucket
			}
			m.size--
			return true
		}
	}
	return false
}

// Range calls fn for each entry until fn returns false. Iteration order is
// unspecified.
func (m *Map[V]) Range(fn func(key ched.Object, value V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}
