package tokens_test

import (
	"go/parser"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/rt"
	"github.com/teranos/bakein/tokens"
)

const selfPath = "github.com/teranos/bakein/tokens_test"

type point struct{ X, Y int }

func (p point) ToTokens(s *tokens.Stream) error {
	return s.Struct(p, tokens.Field{Name: "X", Value: p.X}, tokens.Field{Name: "Y", Value: p.Y})
}

var errBoom = errors.New("boom")

type broken struct{}

func (broken) ToTokens(*tokens.Stream) error { return errBoom }

type box[T any] struct{ V T }

func (b box[T]) ToTokens(s *tokens.Stream) error {
	return s.Struct(b, tokens.Field{Name: "V", Value: b.V})
}

func mustExpr(t *testing.T, v any) string {
	t.Helper()
	text, err := tokens.Expr(v)
	require.NoError(t, err)
	_, err = parser.ParseExpr(text)
	require.NoError(t, err, "rendered text must parse: %s", text)
	return text
}

func TestExpr_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int32", int32(42), "int32(42)"},
		{"uint8", uint8(255), "uint8(255)"},
		{"uint64 max", uint64(math.MaxUint64), "uint64(18446744073709551615)"},
		{"float64", 1.5, "1.5"},
		{"whole float64 keeps its point", 2.0, "2.0"},
		{"float32", float32(0.1), "float32(0.1)"},
		{"large float", 1e300, "1e+300"},
		{"bool", true, "true"},
		{"string", "hi\n\"there\"", `"hi\n\"there\""`},
		{"char", tokens.Char('x'), "'x'"},
		{"unicode char", tokens.Char('λ'), "'λ'"},
		{"complex128", complex(1, 2), "complex(1.0, 2.0)"},
		{"complex64", complex64(complex(1.5, 0)), "complex64(complex(1.5, 0.0))"},
		{"named scalar", time.Duration(5), "time.Duration(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustExpr(t, tt.in))
		})
	}
}

func TestExpr_NonFiniteFloat(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := tokens.Expr(f)
		require.Error(t, err)
		assert.True(t, errors.IsUnsupportedValueError(err))
	}
}

func TestExpr_Sequences(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"slice", []int32{1, 2, 3}, "[]int32{1, 2, 3}"},
		{"empty slice", []string{}, "[]string{}"},
		{"nil slice", []string(nil), "[]string(nil)"},
		{"array", [3]uint8{1, 2, 3}, "[3]uint8{1, 2, 3}"},
		{"nested array", [2][2]uint32{{0, 1}, {1, 2}}, "[2][2]uint32{\n{0, 1},\n{1, 2},\n}"},
		{"interface elements", []any{1, "x", int8(3), nil}, `[]any{1, "x", int8(3), nil}`},
		{"named elements stay bare", []time.Duration{1, 2}, "[]time.Duration{1, 2}"},
		{"long slice breaks lines", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, "[]int{\n1,\n2,\n3,\n4,\n5,\n6,\n7,\n8,\n9,\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustExpr(t, tt.in))
		})
	}
}

func TestExpr_PreservesOrder(t *testing.T) {
	assert.Equal(t, `[]string{"c", "a", "b"}`, mustExpr(t, []string{"c", "a", "b"}))
}

func TestExpr_MapIsSortedByKey(t *testing.T) {
	got := mustExpr(t, map[string]int{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, "map[string]int{\n\"a\": 1,\n\"b\": 2,\n\"c\": 3,\n}", got)

	assert.Equal(t, "map[int][]int{\n1: {1},\n}", mustExpr(t, map[int][]int{1: {1}}))
	assert.Equal(t, "map[string]int(nil)", mustExpr(t, map[string]int(nil)))
}

func TestExpr_Pointers(t *testing.T) {
	x := int32(5)
	assert.Equal(t, "rt.Ptr[int32](5)", mustExpr(t, &x))
	assert.Equal(t, "&[]int{1}", mustExpr(t, &[]int{1}))
	assert.Equal(t, "(*int)(nil)", mustExpr(t, (*int)(nil)))

	arr := [2]int{1, 2}
	assert.Equal(t, "[]*[2]int{{1, 2}, nil}", mustExpr(t, []*[2]int{&arr, nil}))

	s, err := tokens.Serialize(&x)
	require.NoError(t, err)
	assert.Equal(t, []string{rt.PkgPath}, s.Imports())
	assert.False(t, s.Constant())
}

func TestExpr_Option(t *testing.T) {
	assert.Equal(t, "rt.Option[int32]{Value: 42, Valid: true}", mustExpr(t, rt.Some(int32(42))))
	assert.Equal(t, "rt.Option[int32]{}", mustExpr(t, rt.None[int32]()))
	assert.Equal(t, "rt.Option[[]string]{Value: []string{\"a\"}, Valid: true}", mustExpr(t, rt.Some([]string{"a"})))
	assert.Equal(t, "[]rt.Option[int]{{Value: 1, Valid: true}, {}}",
		mustExpr(t, []rt.Option[int]{rt.Some(1), rt.None[int]()}))
}

func TestExpr_Tuples(t *testing.T) {
	assert.Equal(t, `rt.Tuple2[string, uint32]{"a", 1}`, mustExpr(t, rt.NewTuple2("a", uint32(1))))
	assert.Equal(t, `[]rt.Tuple2[string, uint32]{{"a", 1}, {"b", 2}}`,
		mustExpr(t, []rt.Tuple2[string, uint32]{rt.NewTuple2("a", uint32(1)), rt.NewTuple2("b", uint32(2))}))

	got := mustExpr(t, rt.NewTuple12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11))
	assert.Equal(t,
		"rt.Tuple12[int, int, int, int, int, int, int, int, int, int, int, int]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}",
		got)

	// interface-typed slots render self-describing values
	assert.Equal(t, `rt.Tuple2[any, int8]{int8(1), 2}`, mustExpr(t, rt.NewTuple2[any, int8](int8(1), 2)))
}

func TestExpr_ToTokensDelegation(t *testing.T) {
	s, err := tokens.Serialize(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "tokens_test.point{X: 1, Y: 2}", s.String())
	assert.Equal(t, []string{selfPath}, s.Imports())

	assert.Equal(t, "[]tokens_test.point{{X: 1, Y: 2}}", mustExpr(t, []point{{1, 2}}))
	assert.Equal(t, "rt.Ptr[tokens_test.point](tokens_test.point{X: 3, Y: 4})", mustExpr(t, &point{3, 4}))
}

func TestExpr_DelegatedErrorPropagates(t *testing.T) {
	_, err := tokens.Expr([]broken{{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
	assert.Contains(t, err.Error(), "element 0")
}

func TestExpr_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"plain struct", struct{ A int }{1}},
		{"channel", make(chan int)},
		{"func", func() {}},
		{"untyped nil", nil},
		{"generic without TypeNamer", box[int]{V: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Expr(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsUnsupportedValueError(err), "%v", err)
		})
	}
}

func TestStream_Constant(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{int32(4), true},
		{"text", true},
		{time.Duration(3), true},
		{complex(1, 1), true},
		{[]int{1}, false},
		{rt.Some(1), false},
		{point{}, false},
	}
	for _, tt := range tests {
		s, err := tokens.Serialize(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Constant(), "%T", tt.in)
	}
}

func TestSerializeElem(t *testing.T) {
	s, err := tokens.SerializeElem(int32(7), reflect.TypeFor[int32]())
	require.NoError(t, err)
	assert.Equal(t, "7", s.String())

	s, err = tokens.SerializeElem([]int{1}, reflect.TypeFor[[]int]())
	require.NoError(t, err)
	assert.Equal(t, "{1}", s.String())

	s, err = tokens.SerializeField([]int{1}, reflect.TypeFor[[]int]())
	require.NoError(t, err)
	assert.Equal(t, "[]int{1}", s.String(), "struct fields cannot elide composite types")

	s, err = tokens.SerializeElem(int32(7), reflect.TypeFor[any]())
	require.NoError(t, err)
	assert.Equal(t, "int32(7)", s.String())
}
