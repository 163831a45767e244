// Package tokens renders in-memory Go values as Go expression text.
//
// Scalars, strings, arrays, slices, maps and pointers are rendered from
// their reflected shape. Structs never are: a struct participates only by
// implementing ToTokens, so its own package decides how it is constructed.
package tokens

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ToTokens is implemented by types that can render themselves as a Go
// expression.
//
// Implementations should consult Elide: inside the elements of an array,
// slice or map literal the type of a composite literal may be omitted.
// Writing the full type anyway is always valid.
type ToTokens interface {
	ToTokens(s *Stream) error
}

// TypeNamer is implemented by types that spell their own Go type
// expression, which generic types must do because reflection does not
// expose their type arguments in a usable form.
type TypeNamer interface {
	GoTypeName(s *Stream) (string, error)
}

// Stream accumulates expression text together with the import paths the
// text refers to.
type Stream struct {
	buf     strings.Builder
	imports map[string]struct{}

	// nonConst is set once anything that is not a Go constant expression
	// has been written
	nonConst bool

	// elide is the context handed to a ToTokens implementation
	elide bool
}

// NewStream returns an empty stream
func NewStream() *Stream {
	return &Stream{imports: make(map[string]struct{})}
}

// child shares the import set of s but has its own text
func (s *Stream) child() *Stream {
	return &Stream{imports: s.imports}
}

// WriteString appends raw text
func (s *Stream) WriteString(str string) {
	s.buf.WriteString(str)
}

// Printf appends formatted raw text
func (s *Stream) Printf(format string, args ...any) {
	fmt.Fprintf(&s.buf, format, args...)
}

// Import records an import path referenced by the text
func (s *Stream) Import(path string) {
	if path != "" {
		s.imports[path] = struct{}{}
	}
}

// Imports returns the recorded import paths, sorted
func (s *Stream) Imports() []string {
	return slices.Sorted(maps.Keys(s.imports))
}

// MarkNonConstant records that the text is not a constant expression
func (s *Stream) MarkNonConstant() {
	s.nonConst = true
}

// Constant reports whether the text written so far is a Go constant
// expression and may therefore initialize a const declaration
func (s *Stream) Constant() bool {
	return !s.nonConst
}

// Elide reports whether a composite literal written now may omit its type
func (s *Stream) Elide() bool {
	return s.elide
}

// String returns the expression text
func (s *Stream) String() string {
	return s.buf.String()
}

// Len returns the length of the expression text in bytes
func (s *Stream) Len() int {
	return s.buf.Len()
}

// Merge appends the text of other and takes over its imports and constness
func (s *Stream) Merge(other *Stream) {
	s.buf.WriteString(other.String())
	for path := range other.imports {
		s.imports[path] = struct{}{}
	}
	if other.nonConst {
		s.nonConst = true
	}
}

// Literal writes a composite literal: the type (unless elided) and the
// braces around whatever body writes.
func (s *Stream) Literal(typeName string, body func() error) error {
	elide := s.elide
	s.elide = false
	s.nonConst = true

	if !elide {
		s.WriteString(typeName)
	}
	s.WriteString("{")
	if err := body(); err != nil {
		return err
	}
	s.WriteString("}")
	return nil
}
