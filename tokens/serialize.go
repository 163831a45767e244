package tokens

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/teranos/bakein/errors"
)

// Char renders as a rune literal ('x') instead of an int32 conversion
type Char rune

// rtPath is the import path of the runtime package referenced by
// generated pointer expressions
const rtPath = "github.com/teranos/bakein/rt"

// multiLine is the element count above which literals are written one
// element per line
const multiLine = 8

// mode describes what the position being written already knows about
// the value's type
type mode uint8

const (
	// bare: the static type is known, so untyped constants need no conversion
	bare mode = 1 << iota
	// elide: element of an array, slice or map literal; composite types may be omitted
	elide
)

// modeFor returns the mode for a slot of static type t. inLiteral is true
// for array, slice and map elements, false for struct fields and
// conversion arguments.
func modeFor(t reflect.Type, inLiteral bool) mode {
	if t == nil || t.Kind() == reflect.Interface {
		return 0
	}
	if inLiteral {
		return bare | elide
	}
	return bare
}

var (
	toTokensType  = reflect.TypeFor[ToTokens]()
	typeNamerType = reflect.TypeFor[TypeNamer]()
	charType      = reflect.TypeFor[Char]()
)

// Serialize renders v as a self-describing expression: the result can
// initialize an untyped var declaration.
func Serialize(v any) (*Stream, error) {
	s := NewStream()
	if err := s.Append(v); err != nil {
		return nil, err
	}
	return s, nil
}

// SerializeElem renders v for a slot of static type t inside an array,
// slice or map literal.
func SerializeElem(v any, t reflect.Type) (*Stream, error) {
	s := NewStream()
	if err := s.AppendElem(v, t); err != nil {
		return nil, err
	}
	return s, nil
}

// SerializeField renders v for a struct field of static type t.
func SerializeField(v any, t reflect.Type) (*Stream, error) {
	s := NewStream()
	if err := s.AppendField(v, t); err != nil {
		return nil, err
	}
	return s, nil
}

// Expr renders v as a self-describing expression and returns only its text
func Expr(v any) (string, error) {
	s, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Append writes v as a self-describing expression
func (s *Stream) Append(v any) error {
	return s.value(reflect.ValueOf(v), nil, 0)
}

// AppendElem writes v as an element of an array, slice or map literal
// whose element type is t
func (s *Stream) AppendElem(v any, t reflect.Type) error {
	return s.value(reflect.ValueOf(v), t, modeFor(t, true))
}

// AppendField writes v as the value of a struct field of type t
func (s *Stream) AppendField(v any, t reflect.Type) error {
	return s.value(reflect.ValueOf(v), t, modeFor(t, false))
}

// Typed pairs a value with the static type of the slot it fills
type Typed struct {
	Value any
	Type  reflect.Type
}

// Of captures v together with its static type T, which survives even
// when T is an interface type
func Of[T any](v T) Typed {
	return Typed{Value: v, Type: reflect.TypeFor[T]()}
}

// Positional writes comma-separated struct field values in order, as in
// an unkeyed struct literal
func (s *Stream) Positional(items ...Typed) error {
	for i, it := range items {
		if i > 0 {
			s.WriteString(", ")
		}
		if err := s.AppendField(it.Value, it.Type); err != nil {
			return errors.Wrapf(err, "field %d", i)
		}
	}
	return nil
}

// Field names one value of a keyed struct literal
type Field struct {
	Name  string
	Value any
}

// Struct writes a keyed composite literal of v's type. Field types are
// looked up on v's type, so the values may be given untyped.
func (s *Stream) Struct(v any, fields ...Field) error {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return errors.NewUnsupportedValueError("Struct needs a struct value, got %T", v)
	}

	name := ""
	if !s.elide {
		var err error
		if name, err = s.TypeName(t); err != nil {
			return err
		}
	}

	return s.Literal(name, func() error {
		for i, f := range fields {
			sf, ok := t.FieldByName(f.Name)
			if !ok {
				return errors.NewUnsupportedValueError("%s has no field %s", t, f.Name)
			}
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(f.Name)
			s.WriteString(": ")
			if err := s.AppendField(f.Value, sf.Type); err != nil {
				return errors.Wrapf(err, "field %s.%s", t.Name(), f.Name)
			}
		}
		return nil
	})
}

func (s *Stream) value(rv reflect.Value, static reflect.Type, m mode) error {
	if !rv.IsValid() {
		if static != nil && nilable(static.Kind()) {
			s.WriteString("nil")
			return nil
		}
		return errors.NewUnsupportedValueError("cannot render untyped nil")
	}

	t := rv.Type()

	if tt, ok := asToTokens(rv); ok {
		return s.delegate(tt, t, m)
	}

	if t == charType {
		s.WriteString(strconv.QuoteRune(rune(rv.Int())))
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return s.scalar(t, strconv.FormatBool(rv.Bool()), m)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.scalar(t, strconv.FormatInt(rv.Int(), 10), m)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.scalar(t, strconv.FormatUint(rv.Uint(), 10), m)

	case reflect.Float32, reflect.Float64:
		lit, err := formatFloat(rv.Float(), t.Bits())
		if err != nil {
			return err
		}
		return s.scalar(t, lit, m)

	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		bits := t.Bits() / 2
		re, err := formatFloat(real(c), bits)
		if err != nil {
			return err
		}
		im, err := formatFloat(imag(c), bits)
		if err != nil {
			return err
		}
		return s.scalar(t, "complex("+re+", "+im+")", m)

	case reflect.String:
		return s.scalar(t, strconv.Quote(rv.String()), m)

	case reflect.Slice:
		if rv.IsNil() {
			return s.nilOf(t, m)
		}
		return s.sequence(rv, t, m)

	case reflect.Array:
		return s.sequence(rv, t, m)

	case reflect.Map:
		if rv.IsNil() {
			return s.nilOf(t, m)
		}
		return s.mapLiteral(rv, t, m)

	case reflect.Pointer:
		if rv.IsNil() {
			return s.nilOf(t, m)
		}
		return s.pointer(rv, t, m)

	case reflect.Interface:
		if rv.IsNil() {
			s.WriteString("nil")
			return nil
		}
		return s.value(rv.Elem(), nil, 0)

	case reflect.Struct:
		return errors.WithHint(
			errors.NewUnsupportedValueError("struct type %s does not implement tokens.ToTokens", t),
			"implement ToTokens(*tokens.Stream) error on the type, using Stream.Struct for keyed literals")

	default:
		return errors.NewUnsupportedValueError("cannot render value of kind %s (%s)", t.Kind(), t)
	}
}

func asToTokens(rv reflect.Value) (ToTokens, bool) {
	t := rv.Type()
	switch t.Kind() {
	case reflect.Interface:
		return nil, false
	case reflect.Pointer:
		// Only pointer-receiver implementations render through the pointer.
		// A *T whose T renders itself is a pointer to that value.
		if rv.IsNil() || !t.Implements(toTokensType) || t.Elem().Implements(toTokensType) {
			return nil, false
		}
		return rv.Interface().(ToTokens), true
	}
	if t.Implements(toTokensType) {
		return rv.Interface().(ToTokens), true
	}
	if reflect.PointerTo(t).Implements(toTokensType) {
		p := reflect.New(t)
		p.Elem().Set(rv)
		return p.Interface().(ToTokens), true
	}
	return nil, false
}

// delegate hands the stream to a ToTokens implementation. Its output is
// treated as non-constant.
func (s *Stream) delegate(tt ToTokens, t reflect.Type, m mode) error {
	prev := s.elide
	s.elide = m&elide != 0
	err := tt.ToTokens(s)
	s.elide = prev
	s.nonConst = true
	if err != nil {
		return errors.Wrapf(err, "%s.ToTokens", t)
	}
	return nil
}

// scalar writes a literal, converting it to its type when the context
// would otherwise give it a different default type.
func (s *Stream) scalar(t reflect.Type, lit string, m mode) error {
	if m&bare != 0 || isDefaultType(t) {
		s.WriteString(lit)
		return nil
	}
	name, err := s.TypeName(t)
	if err != nil {
		return err
	}
	s.WriteString(name)
	s.WriteString("(")
	s.WriteString(lit)
	s.WriteString(")")
	return nil
}

// isDefaultType reports whether an untyped constant literal of t's kind
// already has type t
func isDefaultType(t reflect.Type) bool {
	if t.PkgPath() != "" {
		return false
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Float64, reflect.String, reflect.Complex128:
		return true
	}
	return false
}

func formatFloat(f float64, bits int) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", errors.NewUnsupportedValueError("non-finite float %v has no literal form", f)
	}
	lit := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(lit, ".eE") {
		lit += ".0"
	}
	return lit, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func (s *Stream) nilOf(t reflect.Type, m mode) error {
	if m&bare != 0 {
		s.WriteString("nil")
		return nil
	}
	name, err := s.TypeName(t)
	if err != nil {
		return err
	}
	s.nonConst = true
	if t.Kind() == reflect.Pointer {
		s.WriteString("(" + name + ")(nil)")
	} else {
		s.WriteString(name + "(nil)")
	}
	return nil
}

// compositeKind reports whether literals of kind k are composite literals
func compositeKind(k reflect.Kind) bool {
	return k == reflect.Array || k == reflect.Slice || k == reflect.Map
}

func (s *Stream) sequence(rv reflect.Value, t reflect.Type, m mode) error {
	name := ""
	if m&elide == 0 {
		var err error
		if name, err = s.TypeName(t); err != nil {
			return err
		}
	}

	et := t.Elem()
	em := modeFor(et, true)
	n := rv.Len()
	broken := n > multiLine || (n > 1 && compositeKind(et.Kind()))

	s.elide = m&elide != 0
	return s.Literal(name, func() error {
		for i := range n {
			if broken {
				s.WriteString("\n")
			} else if i > 0 {
				s.WriteString(", ")
			}
			if err := s.value(rv.Index(i), et, em); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
			if broken {
				s.WriteString(",")
			}
		}
		if broken {
			s.WriteString("\n")
		}
		return nil
	})
}

func (s *Stream) mapLiteral(rv reflect.Value, t reflect.Type, m mode) error {
	name := ""
	if m&elide == 0 {
		var err error
		if name, err = s.TypeName(t); err != nil {
			return err
		}
	}

	kt, vt := t.Key(), t.Elem()
	type pair struct{ key, val string }
	pairs := make([]pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		ks := s.child()
		if err := ks.value(iter.Key(), kt, modeFor(kt, true)); err != nil {
			return errors.Wrap(err, "map key")
		}
		vs := s.child()
		if err := vs.value(iter.Value(), vt, modeFor(vt, true)); err != nil {
			return errors.Wrapf(err, "map value for key %s", ks.String())
		}
		pairs = append(pairs, pair{ks.String(), vs.String()})
	}

	// Map iteration order is random; sort on the rendered key so output
	// is stable across runs.
	slices.SortFunc(pairs, func(a, b pair) int { return strings.Compare(a.key, b.key) })

	s.elide = m&elide != 0
	return s.Literal(name, func() error {
		for _, p := range pairs {
			s.WriteString("\n")
			s.WriteString(p.key)
			s.WriteString(": ")
			s.WriteString(p.val)
			s.WriteString(",")
		}
		if len(pairs) > 0 {
			s.WriteString("\n")
		}
		return nil
	})
}

// pointer writes &T{...} for pointers to composite literals and
// rt.Ptr[T](x) for everything else.
func (s *Stream) pointer(rv reflect.Value, t reflect.Type, m mode) error {
	s.nonConst = true
	elem := rv.Elem()
	et := t.Elem()

	addressable := et.Kind() == reflect.Array ||
		((et.Kind() == reflect.Slice || et.Kind() == reflect.Map) && !elem.IsNil())

	if addressable {
		if m&elide != 0 {
			return s.value(elem, et, bare|elide)
		}
		s.WriteString("&")
		return s.value(elem, et, 0)
	}

	name, err := s.TypeName(et)
	if err != nil {
		return err
	}
	s.Import(rtPath)
	s.WriteString("rt.Ptr[" + name + "](")
	if err := s.value(elem, et, modeFor(et, false)); err != nil {
		return err
	}
	s.WriteString(")")
	return nil
}
