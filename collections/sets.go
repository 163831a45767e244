package collections

import (
	"reflect"

	"github.com/teranos/bakein/phf"
	"github.com/teranos/bakein/tokens"
)

// SetBuilder builds an rt.Set
type SetBuilder[K phf.Key] struct {
	c           *core[K]
	maxAttempts int
}

// NewSetBuilder returns an empty set builder
func NewSetBuilder[K phf.Key]() *SetBuilder[K] {
	return &SetBuilder[K]{c: newCore[K]("Set", nil)}
}

// MaxAttempts bounds the seeds tried by the hash generator
func (b *SetBuilder[K]) MaxAttempts(n int) *SetBuilder[K] {
	b.maxAttempts = n
	return b
}

// DefaultMaxAttempts sets the seed budget used when MaxAttempts was not
// called. bake applies the generator's hash.max_attempts through it.
func (b *SetBuilder[K]) DefaultMaxAttempts(n int) {
	b.c.fallbackAttempts = n
}

// Entry adds a key
func (b *SetBuilder[K]) Entry(key K) error {
	return b.c.entry(key, nil, nil)
}

// Build renders rt.NewSet(phf.Set[K]{...})
func (b *SetBuilder[K]) Build() (*tokens.Stream, error) {
	return b.c.build(b.maxAttempts)
}

// ToTokens renders the built set
func (b *SetBuilder[K]) ToTokens(s *tokens.Stream) error {
	return b.c.render(s, b.maxAttempts)
}

// GoType spells rt.Set[K]
func (b *SetBuilder[K]) GoType() string {
	return b.c.goType(reflect.TypeFor[K]())
}

// OrderedSetBuilder builds an rt.OrderedSet that iterates in insertion order
type OrderedSetBuilder[K phf.Key] struct {
	c           *core[K]
	maxAttempts int
}

// NewOrderedSetBuilder returns an empty ordered set builder
func NewOrderedSetBuilder[K phf.Key]() *OrderedSetBuilder[K] {
	return &OrderedSetBuilder[K]{c: newCore[K]("OrderedSet", nil)}
}

// MaxAttempts bounds the seeds tried by the hash generator
func (b *OrderedSetBuilder[K]) MaxAttempts(n int) *OrderedSetBuilder[K] {
	b.maxAttempts = n
	return b
}

// DefaultMaxAttempts sets the seed budget used when MaxAttempts was not
// called. bake applies the generator's hash.max_attempts through it.
func (b *OrderedSetBuilder[K]) DefaultMaxAttempts(n int) {
	b.c.fallbackAttempts = n
}

// Entry adds a key in insertion order
func (b *OrderedSetBuilder[K]) Entry(key K) error {
	return b.c.entry(key, nil, nil)
}

// Build renders rt.NewOrderedSet(phf.OrderedSet[K]{...})
func (b *OrderedSetBuilder[K]) Build() (*tokens.Stream, error) {
	return b.c.build(b.maxAttempts)
}

// ToTokens renders the built set
func (b *OrderedSetBuilder[K]) ToTokens(s *tokens.Stream) error {
	return b.c.render(s, b.maxAttempts)
}

// GoType spells rt.OrderedSet[K]
func (b *OrderedSetBuilder[K]) GoType() string {
	return b.c.goType(reflect.TypeFor[K]())
}
