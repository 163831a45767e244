package emit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
	"github.com/teranos/bakein/rt"
	"github.com/teranos/bakein/tokens"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	namer   *artifact.Namer
	store   *artifact.Store
	emitter *emit.Emitter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	namer, err := artifact.NewNamer("/out", "example.com/consumer")
	require.NoError(t, err)
	store := artifact.NewStore(afero.NewMemMapFs())
	return &fixture{namer: namer, store: store, emitter: emit.New(namer, store)}
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	src, err := f.store.Read(path, "test")
	require.NoError(t, err)
	return string(src)
}

func expr(t *testing.T, v any) *tokens.Stream {
	t.Helper()
	s, err := tokens.Serialize(v)
	require.NoError(t, err)
	return s
}

func raw(text string) *tokens.Stream {
	s := tokens.NewStream()
	s.WriteString(text)
	return s
}

func TestEmit_Var(t *testing.T) {
	f := newFixture(t)

	path, err := f.emitter.Emit(emit.Artifact{
		Symbol: "ANSWER",
		Kind:   artifact.KindVar,
		Decls: []emit.Decl{{
			Kind:  artifact.KindVar,
			Name:  "ANSWER",
			Type:  "rt.Option[int32]",
			Value: expr(t, rt.Some[int32](42)),
		}},
	})
	require.NoError(t, err)

	want := `// Code generated by bakein. DO NOT EDIT.
// bakein:artifact symbol=ANSWER kind=var visibility=private

package artifact

import "github.com/teranos/bakein/rt"

var ANSWER rt.Option[int32] = rt.Option[int32]{Value: 42, Valid: true}
`
	if diff := cmp.Diff(want, f.read(t, path)); diff != "" {
		t.Errorf("artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_Idempotent(t *testing.T) {
	f := newFixture(t)
	a := emit.Artifact{
		Symbol: "weights",
		Kind:   artifact.KindVar,
		Decls:  []emit.Decl{{Kind: artifact.KindVar, Name: "weights", Value: expr(t, []float32{0.5, 1, 2.25})}},
	}

	path, err := f.emitter.Emit(a)
	require.NoError(t, err)
	first := f.read(t, path)

	a.Decls[0].Value = expr(t, []float32{0.5, 1, 2.25})
	again, err := f.emitter.Emit(a)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, first, f.read(t, path))
}

func TestEmit_ConstAndFunc(t *testing.T) {
	f := newFixture(t)

	path, err := f.emitter.Emit(emit.Artifact{
		Symbol: "limits",
		Kind:   artifact.KindGroup,
		Decls: []emit.Decl{
			{Kind: artifact.KindConst, Name: "maxDepth", Type: "int", Value: raw("16")},
			{Kind: artifact.KindFunc, Name: "names", Type: "[]string", Value: expr(t, []string{"a", "b"})},
		},
	})
	require.NoError(t, err)

	src := f.read(t, path)
	assert.Contains(t, src, "// bakein:artifact symbol=limits kind=group visibility=private")
	assert.Contains(t, src, "const maxDepth int = 16\n")
	assert.Contains(t, src, "func names() []string {\n\treturn []string{\"a\", \"b\"}\n}\n")
}

func TestEmit_TypeDefinition(t *testing.T) {
	f := newFixture(t)

	path, err := f.emitter.Emit(emit.Artifact{
		Symbol: "Point",
		Kind:   artifact.KindType,
		Decls: []emit.Decl{{
			Kind: artifact.KindType,
			Name: "Point",
			Fields: []emit.Field{
				{Public: true, Name: "X", Type: "int32"},
				{Public: false, Name: "cache", Type: "[]string"},
			},
		}},
	})
	require.NoError(t, err)

	src := f.read(t, path)
	assert.Contains(t, src, "type Point struct {\n")
	assert.Contains(t, src, "\tX     int32\n")
	assert.Contains(t, src, "\tcache []string\n")
}

func TestEmit_InitGoesToInitPath(t *testing.T) {
	f := newFixture(t)

	path, err := f.emitter.Emit(emit.Artifact{
		Symbol: "Point",
		Kind:   artifact.KindInit,
		Decls:  []emit.Decl{{Kind: artifact.KindInit, Name: "Point", Value: raw("Point{X: 1}")}},
	})
	require.NoError(t, err)

	want, err := f.namer.InitPath("Point")
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Contains(t, f.read(t, path), "var _ = Point{X: 1}\n")
}

func TestEmit_ParseFailureLeavesEvidence(t *testing.T) {
	f := newFixture(t)

	path, err := f.emitter.Emit(emit.Artifact{
		Symbol: "broken",
		Kind:   artifact.KindVar,
		Decls:  []emit.Decl{{Kind: artifact.KindVar, Name: "broken", Type: "int", Value: raw("1 +")}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))

	details := errors.GetAllDetails(err)
	assert.Contains(t, details, "symbol: broken")
	assert.Contains(t, details, "path: "+path)

	// the raw, unformatted text is still written
	assert.Contains(t, f.read(t, path), "var broken int = 1 +\n")
}

func TestEmit_InvalidDeclarations(t *testing.T) {
	tests := []struct {
		name string
		a    emit.Artifact
	}{
		{
			name: "non-constant const",
			a: emit.Artifact{Symbol: "xs", Kind: artifact.KindConst, Decls: []emit.Decl{
				{Kind: artifact.KindConst, Name: "xs", Value: tokensOf([]int{1})},
			}},
		},
		{
			name: "public unexported name",
			a: emit.Artifact{Symbol: "grid", Kind: artifact.KindVar, Visibility: artifact.Public, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "grid", Value: raw("1")},
			}},
		},
		{
			name: "bad identifier",
			a: emit.Artifact{Symbol: "x", Kind: artifact.KindGroup, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "2x", Value: raw("1")},
			}},
		},
		{
			name: "bad type",
			a: emit.Artifact{Symbol: "x", Kind: artifact.KindVar, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "x", Type: "[2", Value: raw("1")},
			}},
		},
		{
			name: "missing value",
			a: emit.Artifact{Symbol: "x", Kind: artifact.KindVar, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "x"},
			}},
		},
		{
			name: "func without result type",
			a: emit.Artifact{Symbol: "x", Kind: artifact.KindFunc, Decls: []emit.Decl{
				{Kind: artifact.KindFunc, Name: "x", Value: raw("1")},
			}},
		},
		{
			name: "public field unexported",
			a: emit.Artifact{Symbol: "T", Kind: artifact.KindType, Decls: []emit.Decl{
				{Kind: artifact.KindType, Name: "T", Fields: []emit.Field{{Public: true, Name: "x", Type: "int"}}},
			}},
		},
		{
			name: "private field exported",
			a: emit.Artifact{Symbol: "T", Kind: artifact.KindType, Decls: []emit.Decl{
				{Kind: artifact.KindType, Name: "T", Fields: []emit.Field{{Name: "X", Type: "int"}}},
			}},
		},
		{
			name: "symbol mismatch",
			a: emit.Artifact{Symbol: "a", Kind: artifact.KindVar, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "b", Value: raw("1")},
			}},
		},
		{
			name: "type in group",
			a: emit.Artifact{Symbol: "g", Kind: artifact.KindGroup, Decls: []emit.Decl{
				{Kind: artifact.KindType, Name: "T"},
			}},
		},
		{
			name: "duplicate in group",
			a: emit.Artifact{Symbol: "g", Kind: artifact.KindGroup, Decls: []emit.Decl{
				{Kind: artifact.KindVar, Name: "a", Value: raw("1")},
				{Kind: artifact.KindVar, Name: "a", Value: raw("2")},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.emitter.Emit(tt.a)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidDeclarationError(err), "got %v", err)

			path, perr := f.emitter.Path(tt.a)
			if perr == nil {
				assert.False(t, f.store.Exists(path), "nothing is written for an invalid declaration")
			}
		})
	}
}

func tokensOf(v any) *tokens.Stream {
	s, err := tokens.Serialize(v)
	if err != nil {
		panic(err)
	}
	return s
}

func TestImportSpec(t *testing.T) {
	assert.Equal(t, `"github.com/teranos/bakein/rt"`, emit.ImportSpec("github.com/teranos/bakein/rt"))
	assert.Equal(t, `yaml "gopkg.in/yaml.v3"`, emit.ImportSpec("gopkg.in/yaml.v3"))
	assert.Equal(t, `toml "github.com/pelletier/go-toml/v2"`, emit.ImportSpec("github.com/pelletier/go-toml/v2"))
}

func TestEmit_LogsComposedSourceAtTraceVerbosity(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prevLogger, prevVerbosity := logger.Logger, logger.Verbosity
	t.Cleanup(func() { logger.Logger, logger.Verbosity = prevLogger, prevVerbosity })
	logger.Logger = zap.New(core).Sugar()

	f := newFixture(t)
	decl := emit.Artifact{
		Symbol: "answer",
		Kind:   artifact.KindVar,
		Decls:  []emit.Decl{{Kind: artifact.KindVar, Name: "answer", Type: "int", Value: expr(t, 42)}},
	}

	logger.Verbosity = 2
	_, err := f.emitter.Emit(decl)
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessageSnippet("composed answer").Len())

	logger.Verbosity = 3
	_, err = f.emitter.Emit(decl)
	require.NoError(t, err)
	composed := logs.FilterMessageSnippet("composed answer").All()
	require.Len(t, composed, 1)
	assert.Contains(t, composed[0].Message, "var answer int = 42")
}
