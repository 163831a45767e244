package phf_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/bakein/phf"
	"github.com/teranos/bakein/phf/phfgen"
)

type color string

func mapOf[K phf.Key, V any](t *testing.T, keys []K, values []V) *phf.Map[K, V] {
	t.Helper()
	st, err := phfgen.Generate(keys, 0)
	require.NoError(t, err)

	m := &phf.Map[K, V]{Seed: st.Seed, Disps: st.Disps}
	for _, idx := range st.Map {
		m.Entries = append(m.Entries, phf.Entry[K, V]{Key: keys[idx], Value: values[idx]})
	}
	return m
}

func orderedSetOf[K phf.Key](t *testing.T, keys []K) *phf.OrderedSet[K] {
	t.Helper()
	st, err := phfgen.Generate(keys, 0)
	require.NoError(t, err)

	s := &phf.OrderedSet[K]{Seed: st.Seed, Disps: st.Disps, Keys: keys}
	for _, idx := range st.Map {
		s.Idxs = append(s.Idxs, uint32(idx))
	}
	return s
}

func TestMap_Lookup(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e", "f", "g"}
	values := []int{1, 2, 3, 4, 5, 6, 7}
	m := mapOf(t, keys, values)

	assert.Equal(t, len(keys), m.Len())
	for i, k := range keys {
		e, ok := m.GetEntry(k)
		require.True(t, ok, k)
		assert.Equal(t, values[i], e.Value)
	}

	_, ok := m.GetEntry("zz")
	assert.False(t, ok)

	got := maps.Collect(m.All())
	assert.Len(t, got, len(keys))
}

func TestMap_Empty(t *testing.T) {
	m := &phf.Map[string, int]{}
	_, ok := m.GetEntry("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMap_NamedAndBoolKeys(t *testing.T) {
	m := mapOf(t, []color{"red", "green"}, []int{1, 2})
	e, ok := m.GetEntry("green")
	require.True(t, ok)
	assert.Equal(t, 2, e.Value)

	b := mapOf(t, []bool{true, false}, []string{"yes", "no"})
	e2, ok := b.GetEntry(false)
	require.True(t, ok)
	assert.Equal(t, "no", e2.Value)
}

func TestOrderedSet_InsertionOrder(t *testing.T) {
	keys := make([]uint16, 0, 40)
	for i := 40; i > 0; i-- {
		keys = append(keys, uint16(i*7))
	}
	s := orderedSetOf(t, keys)

	assert.Equal(t, keys, slices.Collect(s.All()))
	for i, k := range keys {
		idx, ok := s.Index(k)
		require.True(t, ok, fmt.Sprint(k))
		assert.Equal(t, i, idx)
	}
	_, ok := s.Index(1)
	assert.False(t, ok)
}

func TestHash_SeedChangesHashes(t *testing.T) {
	assert.NotEqual(t, phf.Hash("key", 1), phf.Hash("key", 2))
	assert.Equal(t, phf.Hash("key", 1), phf.Hash("key", 1))
	assert.Equal(t, phf.Hash(color("key"), 9), phf.Hash("key", 9), "named string types hash like their underlying type")
}
