package rt

import (
	"iter"

	"github.com/teranos/bakein/phf"
)

// Set is an immutable set backed by a compile-time perfect-hash table
type Set[K phf.Key] struct {
	table phf.Set[K]
}

// NewSet wraps a generated table
func NewSet[K phf.Key](table phf.Set[K]) Set[K] {
	return Set[K]{table: table}
}

// Len returns the number of keys
func (s Set[K]) Len() int { return s.table.Len() }

// IsEmpty reports whether the set has no keys
func (s Set[K]) IsEmpty() bool { return s.table.Len() == 0 }

// Contains reports whether key is present
func (s Set[K]) Contains(key K) bool {
	_, ok := s.table.GetKey(key)
	return ok
}

// GetKey returns the stored key equal to key
func (s Set[K]) GetKey(key K) (K, bool) { return s.table.GetKey(key) }

// All iterates the keys in unspecified order
func (s Set[K]) All() iter.Seq[K] { return s.table.All() }

// OrderedSet is an immutable set that iterates in insertion order
type OrderedSet[K phf.Key] struct {
	table phf.OrderedSet[K]
}

// NewOrderedSet wraps a generated table
func NewOrderedSet[K phf.Key](table phf.OrderedSet[K]) OrderedSet[K] {
	return OrderedSet[K]{table: table}
}

// Len returns the number of keys
func (s OrderedSet[K]) Len() int { return s.table.Len() }

// IsEmpty reports whether the set has no keys
func (s OrderedSet[K]) IsEmpty() bool { return s.table.Len() == 0 }

// Contains reports whether key is present
func (s OrderedSet[K]) Contains(key K) bool {
	_, ok := s.table.Index(key)
	return ok
}

// GetKey returns the stored key equal to key
func (s OrderedSet[K]) GetKey(key K) (K, bool) {
	i, ok := s.table.Index(key)
	if !ok {
		var zero K
		return zero, false
	}
	return s.table.Keys[i], true
}

// Index returns the insertion position of key
func (s OrderedSet[K]) Index(key K) (int, bool) { return s.table.Index(key) }

// At returns the key at insertion position i
func (s OrderedSet[K]) At(i int) (K, bool) {
	if i < 0 || i >= s.table.Len() {
		var zero K
		return zero, false
	}
	return s.table.Keys[i], true
}

// All iterates the keys in insertion order
func (s OrderedSet[K]) All() iter.Seq[K] { return s.table.All() }
