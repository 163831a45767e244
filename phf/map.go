package phf

import "iter"

// Entry is one key/value pair of a table
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Map is an unordered perfect-hash map. Entries are stored in slot order.
type Map[K Key, V any] struct {
	Seed    uint64
	Disps   []Disp
	Entries []Entry[K, V]
}

// Len returns the number of entries
func (m *Map[K, V]) Len() int { return len(m.Entries) }

// GetEntry returns the stored entry for key
func (m *Map[K, V]) GetEntry(key K) (*Entry[K, V], bool) {
	i, ok := index(key, m.Seed, m.Disps, len(m.Entries))
	if !ok || m.Entries[i].Key != key {
		return nil, false
	}
	return &m.Entries[i], true
}

// All iterates entries in table order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.Entries {
			if !yield(m.Entries[i].Key, m.Entries[i].Value) {
				return
			}
		}
	}
}

// OrderedMap is a perfect-hash map that iterates in insertion order.
// Idxs maps a hash slot to the position in Entries.
type OrderedMap[K Key, V any] struct {
	Seed    uint64
	Disps   []Disp
	Idxs    []uint32
	Entries []Entry[K, V]
}

// Len returns the number of entries
func (m *OrderedMap[K, V]) Len() int { return len(m.Entries) }

// Index returns the insertion position of key
func (m *OrderedMap[K, V]) Index(key K) (int, bool) {
	slot, ok := index(key, m.Seed, m.Disps, len(m.Idxs))
	if !ok {
		return 0, false
	}
	i := int(m.Idxs[slot])
	if m.Entries[i].Key != key {
		return 0, false
	}
	return i, true
}

// GetEntry returns the stored entry for key
func (m *OrderedMap[K, V]) GetEntry(key K) (*Entry[K, V], bool) {
	i, ok := m.Index(key)
	if !ok {
		return nil, false
	}
	return &m.Entries[i], true
}

// All iterates entries in insertion order
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.Entries {
			if !yield(m.Entries[i].Key, m.Entries[i].Value) {
				return
			}
		}
	}
}
