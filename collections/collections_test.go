package collections_test

import (
	"fmt"
	"go/parser"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/bakein/collections"
	"github.com/teranos/bakein/errors"
	bakeintest "github.com/teranos/bakein/internal/testing"
	"github.com/teranos/bakein/logger"
	"github.com/teranos/bakein/rt"
	"github.com/teranos/bakein/tokens"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const phfImport = "github.com/teranos/bakein/phf"

func parses(t *testing.T, expr string) {
	t.Helper()
	_, err := parser.ParseExpr(expr)
	require.NoError(t, err, "generated text:\n%s", expr)
}

func TestMapBuilder(t *testing.T) {
	b := collections.NewMapBuilder[string, int32]()
	require.NoError(t, b.Entry("a", 1))
	require.NoError(t, b.Entry("b", 2))

	assert.Equal(t, "rt.Map[string, int32]", b.GoType())

	s, err := b.Build()
	require.NoError(t, err)

	text := s.String()
	assert.True(t, strings.HasPrefix(text, "rt.NewMap(phf.Map[string, int32]{\nSeed: "), text)
	assert.True(t, strings.HasSuffix(text, ")"))
	assert.Contains(t, text, `{Key: "a", Value: 1},`)
	assert.Contains(t, text, `{Key: "b", Value: 2},`)
	assert.NotContains(t, text, "Idxs")
	assert.False(t, s.Constant())
	assert.Equal(t, []string{phfImport, rt.PkgPath}, s.Imports())
	parses(t, text)
}

func TestMapBuilder_Deterministic(t *testing.T) {
	build := func() string {
		b := collections.NewMapBuilder[string, int32]()
		for i, k := range []string{"north", "south", "east", "west", "up", "down"} {
			require.NoError(t, b.Entry(k, int32(i)))
		}
		s, err := b.Build()
		require.NoError(t, err)
		return s.String()
	}
	assert.Equal(t, build(), build())
}

func TestOrderedMapBuilder(t *testing.T) {
	b := collections.NewOrderedMapBuilder[uint8, rt.Option[int32]]()
	require.NoError(t, b.Entry(3, rt.Some[int32](30)))
	require.NoError(t, b.Entry(1, rt.None[int32]()))

	assert.Equal(t, "rt.OrderedMap[uint8, rt.Option[int32]]", b.GoType())

	s, err := b.Build()
	require.NoError(t, err)

	text := s.String()
	assert.True(t, strings.HasPrefix(text, "rt.NewOrderedMap(phf.OrderedMap[uint8, rt.Option[int32]]{"), text)
	assert.Contains(t, text, "Idxs: []uint32{")

	// entries keep insertion order
	first := strings.Index(text, "{Key: 3, Value: rt.Option[int32]{Value: 30, Valid: true}},")
	second := strings.Index(text, "{Key: 1, Value: rt.Option[int32]{}},")
	require.NotEqual(t, -1, first, text)
	require.NotEqual(t, -1, second, text)
	assert.Less(t, first, second)
	parses(t, text)
}

func TestSetBuilders(t *testing.T) {
	set := collections.NewSetBuilder[int64]()
	ordered := collections.NewOrderedSetBuilder[string]()
	for _, k := range []int64{10, 20, 30} {
		require.NoError(t, set.Entry(k))
	}
	for _, k := range []string{"x", "y"} {
		require.NoError(t, ordered.Entry(k))
	}

	assert.Equal(t, "rt.Set[int64]", set.GoType())
	assert.Equal(t, "rt.OrderedSet[string]", ordered.GoType())

	s, err := set.Build()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.String(), "rt.NewSet(phf.Set[int64]{"))
	assert.Contains(t, s.String(), "Keys: []int64{\n")
	parses(t, s.String())

	s, err = ordered.Build()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.String(), "rt.NewOrderedSet(phf.OrderedSet[string]{"))
	assert.Contains(t, s.String(), "Keys: []string{\n\"x\",\n\"y\",\n}")
	parses(t, s.String())
}

func TestEmptyBuilders(t *testing.T) {
	s, err := collections.NewMapBuilder[string, bool]().Build()
	require.NoError(t, err)
	assert.Contains(t, s.String(), "Disps: []phf.Disp{},")
	parses(t, s.String())

	s, err = collections.NewSetBuilder[string]().Build()
	require.NoError(t, err)
	parses(t, s.String())
}

func TestBuilderConsumed(t *testing.T) {
	b := collections.NewSetBuilder[string]()
	require.NoError(t, b.Entry("a"))
	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.True(t, errors.Is(err, errors.ErrBuilderConsumed))

	err = b.Entry("b")
	assert.True(t, errors.Is(err, errors.ErrBuilderConsumed))
}

func TestDuplicateKey(t *testing.T) {
	b := collections.NewMapBuilder[string, int]()
	require.NoError(t, b.Entry("a", 1))
	require.NoError(t, b.Entry("a", 2))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.IsHashConstructionError(err))
}

type point struct{ X, Y int }

func TestUnsupportedValue(t *testing.T) {
	b := collections.NewMapBuilder[string, point]()
	err := b.Entry("origin", point{})
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedValueError(err))
}

func TestToTokens(t *testing.T) {
	b := collections.NewSetBuilder[rune]()
	require.NoError(t, b.Entry('a'))

	s := tokens.NewStream()
	require.NoError(t, s.Append(b))
	assert.True(t, strings.HasPrefix(s.String(), "rt.NewSet(phf.Set[int32]{"), s.String())
	assert.Contains(t, s.Imports(), rt.PkgPath)
	assert.False(t, s.Constant())

	// the builder has been consumed by rendering
	_, err := b.Build()
	assert.True(t, errors.Is(err, errors.ErrBuilderConsumed))
}

func TestBuiltMapLooksUpEveryKey(t *testing.T) {
	b := collections.NewMapBuilder[string, int32]()
	cities := []string{"oslo", "lima", "kyiv", "rome", "doha", "baku", "riga", "bern", "lome", "suva"}
	for i, c := range cities {
		require.NoError(t, b.Entry(c, int32(i+1)))
	}

	s, err := b.Build()
	require.NoError(t, err)

	m := bakeintest.Map(t, bakeintest.DecodeTable(t, s.String()), strconv.Unquote)
	require.Equal(t, len(cities), m.Len())
	for i, c := range cities {
		e, ok := m.GetEntry(c)
		require.True(t, ok, "key %q", c)
		assert.Equal(t, strconv.Itoa(i+1), e.Value)
	}
	_, ok := m.GetEntry("paris")
	assert.False(t, ok)
}

func TestBuiltOrderedSetKeepsInsertionOrder(t *testing.T) {
	b := collections.NewOrderedSetBuilder[int32]()
	keys := []int32{9, 3, 200, 0, -4, 71, 18, 5}
	for _, k := range keys {
		require.NoError(t, b.Entry(k))
	}

	s, err := b.Build()
	require.NoError(t, err)

	set := bakeintest.OrderedSet(t, bakeintest.DecodeTable(t, s.String()), bakeintest.Int32Key)
	assert.Equal(t, keys, slices.Collect(set.All()))
	for i, k := range keys {
		idx, ok := set.Index(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, i, idx)
	}
	_, ok := set.Index(1)
	assert.False(t, ok)
}

func TestBuiltSetAndOrderedMapLookUp(t *testing.T) {
	keys := make([]string, 8)
	for i := range keys {
		keys[i] = fmt.Sprintf("tag-%d", i)
	}

	sb := collections.NewSetBuilder[string]()
	ob := collections.NewOrderedMapBuilder[string, bool]()
	for i, k := range keys {
		require.NoError(t, sb.Entry(k))
		require.NoError(t, ob.Entry(k, i%2 == 0))
	}

	ss, err := sb.Build()
	require.NoError(t, err)
	set := bakeintest.Set(t, bakeintest.DecodeTable(t, ss.String()), strconv.Unquote)
	for _, k := range keys {
		_, ok := set.GetKey(k)
		assert.True(t, ok, "key %q", k)
	}
	_, ok := set.GetKey("tag-8")
	assert.False(t, ok)

	obuilt, err := ob.Build()
	require.NoError(t, err)
	om := bakeintest.OrderedMap(t, bakeintest.DecodeTable(t, obuilt.String()), strconv.Unquote)
	for i, k := range keys {
		e, ok := om.GetEntry(k)
		require.True(t, ok, "key %q", k)
		assert.Equal(t, strconv.FormatBool(i%2 == 0), e.Value)
	}
	var order []string
	for k := range om.All() {
		order = append(order, k)
	}
	assert.Equal(t, keys, order)
}

func TestBuild_LogsTableStatsWhenVerbose(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prevLogger, prevVerbosity := logger.Logger, logger.Verbosity
	t.Cleanup(func() { logger.Logger, logger.Verbosity = prevLogger, prevVerbosity })
	logger.Logger = zap.New(core).Sugar()

	build := func() {
		b := collections.NewSetBuilder[string]().MaxAttempts(8)
		for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
			require.NoError(t, b.Entry(k))
		}
		_, err := b.Build()
		require.NoError(t, err)
	}

	logger.Verbosity = 1
	build()
	assert.Zero(t, logs.FilterMessage("built perfect hash table").Len())

	logger.Verbosity = 2
	build()
	stats := logs.FilterMessage("built perfect hash table").All()
	require.Len(t, stats, 1)
	fields := stats[0].ContextMap()
	assert.Equal(t, "Set", fields[logger.FieldKind])
	assert.EqualValues(t, 6, fields[logger.FieldCount])
	assert.Contains(t, fields["layout"], "slots=6")
}
