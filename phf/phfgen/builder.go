package phfgen

import (
	"strconv"
	"strings"

	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/phf"
)

// Variant selects which phf table a Builder emits
type Variant int

const (
	VariantMap Variant = iota
	VariantOrderedMap
	VariantSet
	VariantOrderedSet
)

func (v Variant) String() string {
	switch v {
	case VariantMap:
		return "Map"
	case VariantOrderedMap:
		return "OrderedMap"
	case VariantSet:
		return "Set"
	case VariantOrderedSet:
		return "OrderedSet"
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

func (v Variant) hasValues() bool { return v == VariantMap || v == VariantOrderedMap }
func (v Variant) ordered() bool   { return v == VariantOrderedMap || v == VariantOrderedSet }

// Builder accumulates keys with their literal text (and value text for
// maps) and renders a phf table literal. It never sees the values
// themselves, only their Go expression text.
type Builder[K phf.Key] struct {
	variant     Variant
	keyType     string
	valueType   string
	keys        []K
	keyText     []string
	valueText   []string
	maxAttempts int
}

// NewMap starts an unordered map table with the given Go type spellings
func NewMap[K phf.Key](keyType, valueType string) *Builder[K] {
	return &Builder[K]{variant: VariantMap, keyType: keyType, valueType: valueType}
}

// NewOrderedMap starts an insertion-ordered map table
func NewOrderedMap[K phf.Key](keyType, valueType string) *Builder[K] {
	return &Builder[K]{variant: VariantOrderedMap, keyType: keyType, valueType: valueType}
}

// NewSet starts an unordered set table
func NewSet[K phf.Key](keyType string) *Builder[K] {
	return &Builder[K]{variant: VariantSet, keyType: keyType}
}

// NewOrderedSet starts an insertion-ordered set table
func NewOrderedSet[K phf.Key](keyType string) *Builder[K] {
	return &Builder[K]{variant: VariantOrderedSet, keyType: keyType}
}

// MaxAttempts overrides the seed budget
func (b *Builder[K]) MaxAttempts(n int) *Builder[K] {
	b.maxAttempts = n
	return b
}

// Entry adds a key with its literal text and, for maps, the value's
// expression text. valueText is ignored for sets.
func (b *Builder[K]) Entry(key K, keyText, valueText string) {
	b.keys = append(b.keys, key)
	b.keyText = append(b.keyText, keyText)
	b.valueText = append(b.valueText, valueText)
}

// Len returns the number of entries added so far
func (b *Builder[K]) Len() int { return len(b.keys) }

// TypeName returns the phf table type, e.g. phf.Map[string, int32]
func (b *Builder[K]) TypeName() string {
	if b.variant.hasValues() {
		return "phf." + b.variant.String() + "[" + b.keyType + ", " + b.valueType + "]"
	}
	return "phf." + b.variant.String() + "[" + b.keyType + "]"
}

// Build solves the layout and renders the table literal
func (b *Builder[K]) Build() (string, *HashState, error) {
	st, err := Generate(b.keys, b.maxAttempts)
	if err != nil {
		return "", nil, errors.Wrapf(err, "building %s", b.TypeName())
	}

	var w strings.Builder
	w.WriteString(b.TypeName())
	w.WriteString("{\nSeed: ")
	w.WriteString(strconv.FormatUint(st.Seed, 10))
	w.WriteString(",\nDisps: []phf.Disp{")
	for i, d := range st.Disps {
		if i%4 == 0 {
			w.WriteString("\n")
		} else {
			w.WriteString(" ")
		}
		w.WriteString("{D1: ")
		w.WriteString(strconv.FormatUint(uint64(d.D1), 10))
		w.WriteString(", D2: ")
		w.WriteString(strconv.FormatUint(uint64(d.D2), 10))
		w.WriteString("},")
	}
	if len(st.Disps) > 0 {
		w.WriteString("\n")
	}
	w.WriteString("},\n")

	// order lists entry indexes in the order they are stored
	order := st.Map
	if b.variant.ordered() {
		w.WriteString("Idxs: []uint32{")
		for slot, idx := range st.Map {
			if slot > 0 {
				w.WriteString(", ")
			}
			w.WriteString(strconv.Itoa(idx))
		}
		w.WriteString("},\n")

		order = make([]int, len(b.keys))
		for i := range order {
			order[i] = i
		}
	}

	if b.variant.hasValues() {
		w.WriteString("Entries: []phf.Entry[" + b.keyType + ", " + b.valueType + "]{\n")
		for _, i := range order {
			w.WriteString("{Key: ")
			w.WriteString(b.keyText[i])
			w.WriteString(", Value: ")
			w.WriteString(b.valueText[i])
			w.WriteString("},\n")
		}
	} else {
		w.WriteString("Keys: []" + b.keyType + "{\n")
		for _, i := range order {
			w.WriteString(b.keyText[i])
			w.WriteString(",\n")
		}
	}
	w.WriteString("},\n}")

	return w.String(), st, nil
}
