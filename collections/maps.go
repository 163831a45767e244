package collections

import (
	"reflect"

	"github.com/teranos/bakein/phf"
	"github.com/teranos/bakein/tokens"
)

// MapBuilder builds an rt.Map with unspecified iteration order
type MapBuilder[K phf.Key, V any] struct {
	c           *core[K]
	maxAttempts int
}

// NewMapBuilder returns an empty map builder
func NewMapBuilder[K phf.Key, V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{c: newCore[K]("Map", reflect.TypeFor[V]())}
}

// MaxAttempts bounds the seeds tried by the hash generator
func (b *MapBuilder[K, V]) MaxAttempts(n int) *MapBuilder[K, V] {
	b.maxAttempts = n
	return b
}

// DefaultMaxAttempts sets the seed budget used when MaxAttempts was not
// called. bake applies the generator's hash.max_attempts through it.
func (b *MapBuilder[K, V]) DefaultMaxAttempts(n int) {
	b.c.fallbackAttempts = n
}

// Entry adds a key and value. The value is rendered immediately.
func (b *MapBuilder[K, V]) Entry(key K, value V) error {
	return b.c.entry(key, value, reflect.TypeFor[V]())
}

// Build renders rt.NewMap(phf.Map[K, V]{...}). A builder builds once.
func (b *MapBuilder[K, V]) Build() (*tokens.Stream, error) {
	return b.c.build(b.maxAttempts)
}

// ToTokens renders the built map, so the builder can be passed directly
// as a declaration value
func (b *MapBuilder[K, V]) ToTokens(s *tokens.Stream) error {
	return b.c.render(s, b.maxAttempts)
}

// GoType spells the generated container type, rt.Map[K, V]
func (b *MapBuilder[K, V]) GoType() string {
	return b.c.goType(reflect.TypeFor[K](), reflect.TypeFor[V]())
}

// OrderedMapBuilder builds an rt.OrderedMap that iterates in insertion order
type OrderedMapBuilder[K phf.Key, V any] struct {
	c           *core[K]
	maxAttempts int
}

// NewOrderedMapBuilder returns an empty ordered map builder
func NewOrderedMapBuilder[K phf.Key, V any]() *OrderedMapBuilder[K, V] {
	return &OrderedMapBuilder[K, V]{c: newCore[K]("OrderedMap", reflect.TypeFor[V]())}
}

// MaxAttempts bounds the seeds tried by the hash generator
func (b *OrderedMapBuilder[K, V]) MaxAttempts(n int) *OrderedMapBuilder[K, V] {
	b.maxAttempts = n
	return b
}

// DefaultMaxAttempts sets the seed budget used when MaxAttempts was not
// called. bake applies the generator's hash.max_attempts through it.
func (b *OrderedMapBuilder[K, V]) DefaultMaxAttempts(n int) {
	b.c.fallbackAttempts = n
}

// Entry adds a key and value in insertion order
func (b *OrderedMapBuilder[K, V]) Entry(key K, value V) error {
	return b.c.entry(key, value, reflect.TypeFor[V]())
}

// Build renders rt.NewOrderedMap(phf.OrderedMap[K, V]{...})
func (b *OrderedMapBuilder[K, V]) Build() (*tokens.Stream, error) {
	return b.c.build(b.maxAttempts)
}

// ToTokens renders the built map
func (b *OrderedMapBuilder[K, V]) ToTokens(s *tokens.Stream) error {
	return b.c.render(s, b.maxAttempts)
}

// GoType spells rt.OrderedMap[K, V]
func (b *OrderedMapBuilder[K, V]) GoType() string {
	return b.c.goType(reflect.TypeFor[K](), reflect.TypeFor[V]())
}
