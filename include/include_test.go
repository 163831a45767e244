package include_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/include"
	"github.com/teranos/bakein/tokens"
)

const rtImport = `"github.com/teranos/bakein/rt"`

type fixture struct {
	store    *artifact.Store
	emitter  *emit.Emitter
	includer *include.Includer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	namer, err := artifact.NewNamer("/out", "example.com/consumer")
	require.NoError(t, err)
	store := artifact.NewStore(afero.NewMemMapFs())
	return &fixture{
		store:    store,
		emitter:  emit.New(namer, store),
		includer: include.New(namer, store, "consumer"),
	}
}

func raw(text string, imports ...string) *tokens.Stream {
	s := tokens.NewStream()
	s.WriteString(text)
	for _, p := range imports {
		s.Import(p)
	}
	return s
}

func (f *fixture) emitVar(t *testing.T, name, typ, value string, imports ...string) {
	t.Helper()
	_, err := f.emitter.Emit(emit.Artifact{
		Symbol: name,
		Kind:   artifact.KindVar,
		Decls:  []emit.Decl{{Kind: artifact.KindVar, Name: name, Type: typ, Value: raw(value, imports...)}},
	})
	require.NoError(t, err)
}

func TestAssemble_Import(t *testing.T) {
	f := newFixture(t)
	f.emitVar(t, "ANSWER", "rt.Option[int32]", "rt.Option[int32]{Value: 42, Valid: true}",
		"github.com/teranos/bakein/rt")

	out, err := f.includer.Assemble(include.Import("ANSWER"))
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, artifact.Header+"\n"), src)
	assert.Contains(t, src, "\npackage consumer\n")
	assert.Contains(t, src, rtImport)
	assert.Contains(t, src, "var ANSWER rt.Option[int32] = rt.Option[int32]{Value: 42, Valid: true}\n")
	assert.NotContains(t, src, "bakein:artifact", "artifact meta lines stay in the artifacts")
	assert.NotContains(t, src, "package artifact")
}

func TestAssemble_MergesImportsInRequestOrder(t *testing.T) {
	f := newFixture(t)
	f.emitVar(t, "a", "", "rt.Some(1)", "github.com/teranos/bakein/rt")
	f.emitVar(t, "b", "", "rt.Some(2)", "github.com/teranos/bakein/rt")

	out, err := f.includer.Assemble(include.Import("b"), include.Import("a"))
	require.NoError(t, err)

	src := string(out)
	assert.Equal(t, 1, strings.Count(src, rtImport))
	assert.Less(t, strings.Index(src, "var b = "), strings.Index(src, "var a = "))
}

func TestAssemble_Export(t *testing.T) {
	f := newFixture(t)
	f.emitVar(t, "grid", "[2]uint32", "[2]uint32{0, 1}")

	_, err := f.includer.Assemble(include.Export("grid"))
	require.Error(t, err)
	assert.True(t, errors.IsArtifactMissingError(err))
	assert.Contains(t, errors.FlattenHints(err), "AllowExport")

	_, err = f.emitter.AllowExport("grid")
	require.NoError(t, err)

	for _, symbol := range []string{"grid", "Grid"} {
		out, err := f.includer.Assemble(include.Export(symbol))
		require.NoError(t, err)
		assert.Contains(t, string(out), "var Grid [2]uint32 = [2]uint32{0, 1}\n")
	}
}

func TestAssemble_Init(t *testing.T) {
	f := newFixture(t)
	_, err := f.emitter.Emit(emit.Artifact{
		Symbol: "Point",
		Kind:   artifact.KindInit,
		Decls:  []emit.Decl{{Kind: artifact.KindInit, Name: "Point", Value: raw("Point{X: 1, Y: 2}")}},
	})
	require.NoError(t, err)

	out, err := f.includer.Assemble(include.Init("Point", "origin"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "var origin = Point{X: 1, Y: 2}\n")

	_, err = f.includer.Assemble(include.Import("Point"))
	assert.True(t, errors.IsArtifactMissingError(err), "initializers live apart from private artifacts")

	_, err = f.includer.Assemble(include.Init("Point", "_"))
	assert.True(t, errors.IsInvalidDeclarationError(err))
}

func TestAssemble_Missing(t *testing.T) {
	f := newFixture(t)

	_, err := f.includer.Assemble(include.Import("nowhere"))
	require.Error(t, err)
	assert.True(t, errors.IsArtifactMissingError(err))
	assert.Contains(t, err.Error(), `artifact "nowhere" not found`)
}

func TestAssemble_BrokenArtifact(t *testing.T) {
	f := newFixture(t)
	_, err := f.emitter.Emit(emit.Artifact{
		Symbol: "broken",
		Kind:   artifact.KindVar,
		Decls:  []emit.Decl{{Kind: artifact.KindVar, Name: "broken", Value: raw("{")}},
	})
	require.True(t, errors.IsParseError(err))

	_, err = f.includer.Assemble(include.Import("broken"))
	assert.True(t, errors.IsParseError(err))
}

func TestAssemble_DuplicateDeclaration(t *testing.T) {
	f := newFixture(t)
	_, err := f.emitter.Emit(emit.Artifact{
		Symbol: "first",
		Kind:   artifact.KindGroup,
		Decls: []emit.Decl{
			{Kind: artifact.KindConst, Name: "shared", Value: raw("1")},
		},
	})
	require.NoError(t, err)
	f.emitVar(t, "shared", "", "2")

	_, err = f.includer.Assemble(include.Import("first", "shared"))
	assert.True(t, errors.IsInvalidDeclarationError(err))
}

func TestAssemble_PackageRequired(t *testing.T) {
	namer, err := artifact.NewNamer("/out", "example.com/consumer")
	require.NoError(t, err)
	in := include.New(namer, artifact.NewStore(afero.NewMemMapFs()), "")

	_, err = in.Assemble()
	assert.True(t, errors.IsInvalidDeclarationError(err))
}

func TestFromConfig_EmptyPackageFailsAtAssembly(t *testing.T) {
	cfg := &config.Config{
		OutDir: "/out",
		Unit:   "example.com/consumer",
		Hash:   config.HashConfig{MaxAttempts: config.DefaultMaxAttempts},
	}
	require.NoError(t, cfg.Validate(), "an empty package is valid configuration")

	in, err := include.FromConfig(cfg, artifact.NewStore(afero.NewMemMapFs()))
	require.NoError(t, err)

	_, err = in.Assemble(include.Import("answer"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDeclarationError(err))
	assert.False(t, errors.IsArtifactMissingError(err), "the package is checked before any artifact is read")
	assert.Contains(t, errors.FlattenHints(err), "GOPACKAGE")
}

func TestWriteFile(t *testing.T) {
	f := newFixture(t)
	f.emitVar(t, "answer", "int32", "42")

	require.NoError(t, f.includer.WriteFile("/src/consumer/tables_gen.go", include.Import("answer")))

	src, err := afero.ReadFile(f.store.Fs(), "/src/consumer/tables_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(src), "var answer int32 = 42\n")
}
