package rt

import (
	"iter"

	"github.com/teranos/bakein/phf"
)

// Map is an immutable map backed by a compile-time perfect-hash table
type Map[K phf.Key, V any] struct {
	table phf.Map[K, V]
}

// NewMap wraps a generated table. Generated code calls it; the table must
// not be modified afterwards.
func NewMap[K phf.Key, V any](table phf.Map[K, V]) Map[K, V] {
	return Map[K, V]{table: table}
}

// Len returns the number of entries
func (m Map[K, V]) Len() int { return m.table.Len() }

// IsEmpty reports whether the map has no entries
func (m Map[K, V]) IsEmpty() bool { return m.table.Len() == 0 }

// ContainsKey reports whether key is present
func (m Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.table.GetEntry(key)
	return ok
}

// Get returns the value for key
func (m Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// GetKey returns the stored key equal to key
func (m Map[K, V]) GetKey(key K) (K, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zero K
		return zero, false
	}
	return e.Key, true
}

// GetEntry returns the stored key and value for key
func (m Map[K, V]) GetEntry(key K) (K, V, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return e.Key, e.Value, true
}

// All iterates the entries in unspecified order
func (m Map[K, V]) All() iter.Seq2[K, V] { return m.table.All() }

// Keys iterates the keys in unspecified order
func (m Map[K, V]) Keys() iter.Seq[K] { return keys(m.table.All()) }

// Values iterates the values in unspecified order
func (m Map[K, V]) Values() iter.Seq[V] { return values(m.table.All()) }

// OrderedMap is an immutable map that iterates in insertion order
type OrderedMap[K phf.Key, V any] struct {
	table phf.OrderedMap[K, V]
}

// NewOrderedMap wraps a generated table
func NewOrderedMap[K phf.Key, V any](table phf.OrderedMap[K, V]) OrderedMap[K, V] {
	return OrderedMap[K, V]{table: table}
}

// Len returns the number of entries
func (m OrderedMap[K, V]) Len() int { return m.table.Len() }

// IsEmpty reports whether the map has no entries
func (m OrderedMap[K, V]) IsEmpty() bool { return m.table.Len() == 0 }

// ContainsKey reports whether key is present
func (m OrderedMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.table.Index(key)
	return ok
}

// Get returns the value for key
func (m OrderedMap[K, V]) Get(key K) (V, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// GetKey returns the stored key equal to key
func (m OrderedMap[K, V]) GetKey(key K) (K, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zero K
		return zero, false
	}
	return e.Key, true
}

// GetEntry returns the stored key and value for key
func (m OrderedMap[K, V]) GetEntry(key K) (K, V, bool) {
	e, ok := m.table.GetEntry(key)
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return e.Key, e.Value, true
}

// Index returns the insertion position of key
func (m OrderedMap[K, V]) Index(key K) (int, bool) { return m.table.Index(key) }

// At returns the entry at insertion position i
func (m OrderedMap[K, V]) At(i int) (K, V, bool) {
	if i < 0 || i >= m.table.Len() {
		var zk K
		var zv V
		return zk, zv, false
	}
	e := m.table.Entries[i]
	return e.Key, e.Value, true
}

// All iterates the entries in insertion order
func (m OrderedMap[K, V]) All() iter.Seq2[K, V] { return m.table.All() }

// Keys iterates the keys in insertion order
func (m OrderedMap[K, V]) Keys() iter.Seq[K] { return keys(m.table.All()) }

// Values iterates the values in insertion order
func (m OrderedMap[K, V]) Values() iter.Seq[V] { return values(m.table.All()) }

func keys[K, V any](all iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range all {
			if !yield(k) {
				return
			}
		}
	}
}

func values[K, V any](all iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}
}
