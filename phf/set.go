package phf

import "iter"

// Set is an unordered perfect-hash set. Keys are stored in slot order.
type Set[K Key] struct {
	Seed  uint64
	Disps []Disp
	Keys  []K
}

// Len returns the number of keys
func (s *Set[K]) Len() int { return len(s.Keys) }

// GetKey returns the stored key equal to key
func (s *Set[K]) GetKey(key K) (K, bool) {
	i, ok := index(key, s.Seed, s.Disps, len(s.Keys))
	if !ok || s.Keys[i] != key {
		var zero K
		return zero, false
	}
	return s.Keys[i], true
}

// All iterates keys in table order
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.Keys {
			if !yield(k) {
				return
			}
		}
	}
}

// OrderedSet is a perfect-hash set that iterates in insertion order
type OrderedSet[K Key] struct {
	Seed  uint64
	Disps []Disp
	Idxs  []uint32
	Keys  []K
}

// Len returns the number of keys
func (s *OrderedSet[K]) Len() int { return len(s.Keys) }

// Index returns the insertion position of key
func (s *OrderedSet[K]) Index(key K) (int, bool) {
	slot, ok := index(key, s.Seed, s.Disps, len(s.Idxs))
	if !ok {
		return 0, false
	}
	i := int(s.Idxs[slot])
	if s.Keys[i] != key {
		return 0, false
	}
	return i, true
}

// All iterates keys in insertion order
func (s *OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.Keys {
			if !yield(k) {
				return
			}
		}
	}
}
