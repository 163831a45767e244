// Package rt is the runtime imported by bakein-generated code.
//
// It provides the value shapes Go lacks a literal for (optional values and
// tuples) and immutable wrappers around compile-time perfect-hash tables.
// Each type renders itself through tokens, so a generation program can
// pass these values straight to the declaration writers.
package rt

import (
	"reflect"

	"github.com/teranos/bakein/tokens"
)

// PkgPath is the import path generated code uses for this package
var PkgPath = reflect.TypeFor[Option[int]]().PkgPath()

// Option is a value that may be absent
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns an absent Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// IsSome reports whether the value is present
func (o Option[T]) IsSome() bool { return o.Valid }

// OrElse returns the value if present, def otherwise
func (o Option[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

// GoTypeName spells rt.Option[T]
func (o Option[T]) GoTypeName(s *tokens.Stream) (string, error) {
	return s.Generic(PkgPath, "Option", reflect.TypeFor[T]())
}

// ToTokens renders rt.Option[T]{Value: v, Valid: true} or rt.Option[T]{}
func (o Option[T]) ToTokens(s *tokens.Stream) error {
	name, err := o.GoTypeName(s)
	if err != nil {
		return err
	}
	return s.Literal(name, func() error {
		if !o.Valid {
			return nil
		}
		s.WriteString("Value: ")
		if err := s.AppendField(o.Value, reflect.TypeFor[T]()); err != nil {
			return err
		}
		s.WriteString(", Valid: true")
		return nil
	})
}

// Ptr returns a pointer to a copy of v. Generated code uses it for
// pointers to values that have no addressable literal form.
func Ptr[T any](v T) *T {
	return &v
}
