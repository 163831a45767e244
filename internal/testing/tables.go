package testing

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/teranos/bakein/phf"
)

// Table is a rendered phf table literal read back into its parts. Keys and
// Values hold the expression text of each entry in stored order.
type Table struct {
	Seed   uint64
	Disps  []phf.Disp
	Idxs   []uint32
	Keys   []string
	Values []string
}

// DecodeTable parses the text of a phf table literal, optionally wrapped in
// a single-argument constructor call such as rt.NewMap(...).
func DecodeTable(t *testing.T, src string) *Table {
	t.Helper()

	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "table.go", src, 0)
	if err != nil {
		t.Fatalf("table does not parse: %v\n%s", err, src)
	}
	if call, ok := expr.(*ast.CallExpr); ok && len(call.Args) == 1 {
		expr = call.Args[0]
	}
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		t.Fatalf("expected a composite literal, got %T", expr)
	}

	text := func(e ast.Node) string {
		return src[fset.Position(e.Pos()).Offset:fset.Position(e.End()).Offset]
	}

	tb := &Table{}
	for _, field := range keyed(t, lit) {
		switch field.name {
		case "Seed":
			tb.Seed = parseUint(t, text(field.value), 64)
		case "Disps":
			for _, elt := range composite(t, field.value).Elts {
				var d phf.Disp
				for _, kv := range keyed(t, composite(t, elt)) {
					v := uint32(parseUint(t, text(kv.value), 32))
					switch kv.name {
					case "D1":
						d.D1 = v
					case "D2":
						d.D2 = v
					}
				}
				tb.Disps = append(tb.Disps, d)
			}
		case "Idxs":
			for _, elt := range composite(t, field.value).Elts {
				tb.Idxs = append(tb.Idxs, uint32(parseUint(t, text(elt), 32)))
			}
		case "Entries":
			for _, elt := range composite(t, field.value).Elts {
				for _, kv := range keyed(t, composite(t, elt)) {
					switch kv.name {
					case "Key":
						tb.Keys = append(tb.Keys, text(kv.value))
					case "Value":
						tb.Values = append(tb.Values, text(kv.value))
					}
				}
			}
		case "Keys":
			for _, elt := range composite(t, field.value).Elts {
				tb.Keys = append(tb.Keys, text(elt))
			}
		default:
			t.Fatalf("unexpected table field %s", field.name)
		}
	}
	return tb
}

// Map rebuilds an unordered map table, decoding key text with key.
// Values stay expression text.
func Map[K phf.Key](t *testing.T, tb *Table, key func(string) (K, error)) *phf.Map[K, string] {
	t.Helper()
	m := &phf.Map[K, string]{Seed: tb.Seed, Disps: tb.Disps}
	for i, k := range decodeKeys(t, tb, key) {
		m.Entries = append(m.Entries, phf.Entry[K, string]{Key: k, Value: tb.Values[i]})
	}
	return m
}

// OrderedMap rebuilds an insertion-ordered map table
func OrderedMap[K phf.Key](t *testing.T, tb *Table, key func(string) (K, error)) *phf.OrderedMap[K, string] {
	t.Helper()
	m := &phf.OrderedMap[K, string]{Seed: tb.Seed, Disps: tb.Disps, Idxs: tb.Idxs}
	for i, k := range decodeKeys(t, tb, key) {
		m.Entries = append(m.Entries, phf.Entry[K, string]{Key: k, Value: tb.Values[i]})
	}
	return m
}

// Set rebuilds an unordered set table
func Set[K phf.Key](t *testing.T, tb *Table, key func(string) (K, error)) *phf.Set[K] {
	t.Helper()
	return &phf.Set[K]{Seed: tb.Seed, Disps: tb.Disps, Keys: decodeKeys(t, tb, key)}
}

// OrderedSet rebuilds an insertion-ordered set table
func OrderedSet[K phf.Key](t *testing.T, tb *Table, key func(string) (K, error)) *phf.OrderedSet[K] {
	t.Helper()
	return &phf.OrderedSet[K]{Seed: tb.Seed, Disps: tb.Disps, Idxs: tb.Idxs, Keys: decodeKeys(t, tb, key)}
}

// Int32Key decodes an integer key literal such as -7
func Int32Key(text string) (int32, error) {
	v, err := strconv.ParseInt(text, 0, 32)
	return int32(v), err
}

func decodeKeys[K phf.Key](t *testing.T, tb *Table, key func(string) (K, error)) []K {
	t.Helper()
	keys := make([]K, 0, len(tb.Keys))
	for _, text := range tb.Keys {
		k, err := key(text)
		if err != nil {
			t.Fatalf("key %s: %v", text, err)
		}
		keys = append(keys, k)
	}
	return keys
}

type keyedField struct {
	name  string
	value ast.Expr
}

func keyed(t *testing.T, lit *ast.CompositeLit) []keyedField {
	t.Helper()
	fields := make([]keyedField, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			t.Fatalf("expected a keyed element, got %T", elt)
		}
		ident, ok := kv.Key.(*ast.Ident)
		if !ok {
			t.Fatalf("expected a field name, got %T", kv.Key)
		}
		fields = append(fields, keyedField{name: ident.Name, value: kv.Value})
	}
	return fields
}

func composite(t *testing.T, e ast.Expr) *ast.CompositeLit {
	t.Helper()
	lit, ok := e.(*ast.CompositeLit)
	if !ok {
		t.Fatalf("expected a composite literal, got %T", e)
	}
	return lit
}

func parseUint(t *testing.T, text string, bits int) uint64 {
	t.Helper()
	v, err := strconv.ParseUint(text, 0, bits)
	if err != nil {
		t.Fatalf("bad number %s: %v", text, err)
	}
	return v
}
