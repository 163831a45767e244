// Package dims derives Go types for nested arrays and slices from sample
// data, and writes the matching literals.
//
// An array type must state every level's length, so the lengths are read
// off the sample: level 0 takes len(sample), level 1 takes len(sample[0]),
// and so on down to the requested dimension.
package dims

import (
	"go/parser"
	"reflect"
	"strconv"
	"strings"

	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/tokens"
)

// MaxDim is the deepest supported nesting
const MaxDim = 16

// Kind selects the container family
type Kind int

const (
	Array Kind = iota
	Slice
)

func (k Kind) String() string {
	if k == Array {
		return "array"
	}
	return "slice"
}

func checkDim(dim int) error {
	if dim < 1 || dim > MaxDim {
		return errors.NewShapeError("dimension %d outside 1..%d", dim, MaxDim)
	}
	return nil
}

// sequence unwraps interfaces and pointers and reports whether v is an
// array or slice
func sequence(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return v, false
	}
	return v, v.Kind() == reflect.Array || v.Kind() == reflect.Slice
}

// AssertShape checks that sample nests at least dim levels deep and that
// every level above the leaf is non-empty along the first-element path.
func AssertShape(dim int, sample any) error {
	if err := checkDim(dim); err != nil {
		return err
	}
	_, err := lengths(dim, reflect.ValueOf(sample))
	return err
}

// lengths walks the first-element path and returns the length per level
func lengths(dim int, v reflect.Value) ([]int, error) {
	lens := make([]int, 0, dim)
	for level := range dim {
		seq, ok := sequence(v)
		if !ok {
			return nil, errors.WithDetailf(
				errors.NewShapeError("sample too shallow: level %d of %d is not an array or slice", level, dim),
				"found %s", describe(v))
		}
		n := seq.Len()
		lens = append(lens, n)
		if level == dim-1 {
			break
		}
		if n == 0 {
			return nil, errors.WithHint(
				errors.NewShapeError("sample too shallow: empty at level %d of %d", level, dim),
				"every level above the leaf needs at least one element to infer the type")
		}
		v = seq.Index(0)
	}
	return lens, nil
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

// checkRegular verifies that every container at each level has the
// length the type states for that level
func checkRegular(v reflect.Value, lens []int, level int) error {
	seq, ok := sequence(v)
	if !ok {
		return errors.NewShapeError("level %d: expected a sequence, found %s", level, describe(v))
	}
	if seq.Len() != lens[level] {
		return errors.NewShapeError("ragged sample: level %d has length %d, expected %d", level, seq.Len(), lens[level])
	}
	if level == len(lens)-1 {
		return nil
	}
	for i := range seq.Len() {
		if err := checkRegular(seq.Index(i), lens, level+1); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	return nil
}

func checkElem(elem string) error {
	if _, err := parser.ParseExpr(elem); err != nil {
		return errors.Mark(errors.Wrapf(err, "element type %q does not parse", elem), errors.ErrInvalidDeclaration)
	}
	return nil
}

// leafType returns the static element type at the leaf level
func leafType(dim int, v reflect.Value) reflect.Type {
	t := v.Type()
	for range dim {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Array && t.Kind() != reflect.Slice {
			return nil
		}
		t = t.Elem()
	}
	return t
}

// ElemType spells the leaf element type of sample, for callers that do
// not name it themselves
func ElemType(s *tokens.Stream, dim int, sample any) (string, error) {
	if err := AssertShape(dim, sample); err != nil {
		return "", err
	}
	lt := leafType(dim, reflect.ValueOf(sample))
	if lt == nil {
		return "", errors.NewShapeError("cannot determine the element type of %T at depth %d", sample, dim)
	}
	return s.TypeName(lt)
}

// ArrayType returns the nested array type for sample, e.g. [2][3]uint32
func ArrayType(elem string, dim int, sample any) (string, error) {
	if err := checkElem(elem); err != nil {
		return "", err
	}
	if err := checkDim(dim); err != nil {
		return "", err
	}
	lens, err := lengths(dim, reflect.ValueOf(sample))
	if err != nil {
		return "", err
	}
	return arrayType(elem, lens), nil
}

func arrayType(elem string, lens []int) string {
	var b strings.Builder
	for _, n := range lens {
		b.WriteString("[")
		b.WriteString(strconv.Itoa(n))
		b.WriteString("]")
	}
	b.WriteString(elem)
	return b.String()
}

// SliceType returns the nested slice type, e.g. [][]uint32
func SliceType(elem string, dim int) (string, error) {
	if err := checkElem(elem); err != nil {
		return "", err
	}
	if err := checkDim(dim); err != nil {
		return "", err
	}
	return strings.Repeat("[]", dim) + elem, nil
}

// Type returns the container type of the given kind for sample
func Type(kind Kind, elem string, dim int, sample any) (string, error) {
	if kind == Array {
		return ArrayType(elem, dim, sample)
	}
	if err := AssertShape(dim, sample); err != nil {
		return "", err
	}
	return SliceType(elem, dim)
}

// Write appends the full literal for sample to s and returns its type.
// Array literals additionally require a regular (non-ragged) sample.
func Write(s *tokens.Stream, kind Kind, elem string, dim int, sample any) (string, error) {
	typ, err := Type(kind, elem, dim, sample)
	if err != nil {
		return "", err
	}

	v := reflect.ValueOf(sample)
	if kind == Array {
		lens, err := lengths(dim, v)
		if err != nil {
			return "", err
		}
		if err := checkRegular(v, lens, 0); err != nil {
			return "", err
		}
	}

	s.MarkNonConstant()
	s.WriteString(typ)
	if err := writeLevel(s, v, dim, isInterface(elem)); err != nil {
		return "", err
	}
	return typ, nil
}

func isInterface(elem string) bool {
	return elem == "any" || strings.HasPrefix(elem, "interface")
}

// writeLevel writes the braces of one level; inner levels elide their type.
// Leaves held in interface-typed samples are written as their dynamic
// type unless the declared element type is itself an interface.
func writeLevel(s *tokens.Stream, v reflect.Value, remaining int, ifaceElem bool) error {
	seq, _ := sequence(v)
	n := seq.Len()

	s.WriteString("{")
	if remaining > 1 {
		for i := range n {
			s.WriteString("\n")
			if err := writeLevel(s, seq.Index(i), remaining-1, ifaceElem); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
			s.WriteString(",")
		}
		if n > 0 {
			s.WriteString("\n")
		}
	} else {
		et := seq.Type().Elem()
		for i := range n {
			if i > 0 {
				s.WriteString(", ")
			}
			leaf := seq.Index(i).Interface()
			static := et
			if et.Kind() == reflect.Interface && !ifaceElem && leaf != nil {
				static = reflect.TypeOf(leaf)
			}
			if err := s.AppendElem(leaf, static); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
	}
	s.WriteString("}")
	return nil
}
