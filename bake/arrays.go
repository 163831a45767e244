package bake

import (
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/dims"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/logger"
	"github.com/teranos/bakein/tokens"
)

func (g *Generator) writeDims(kind artifact.Kind, dk dims.Kind, name, elem string, sample any, opts []Option) error {
	o := collect(opts)
	s := tokens.NewStream()
	if elem == "" {
		inferred, err := dims.ElemType(s, o.dim, sample)
		if err != nil {
			return symbolError(err, name)
		}
		elem = inferred
	}
	typ, err := dims.Write(s, dk, elem, o.dim, sample)
	if err != nil {
		return symbolError(err, name)
	}
	g.log.Debugw("inferred type",
		logger.FieldSymbol, name,
		logger.FieldDimension, o.dim,
		"type", typ)

	return g.emit(emit.Artifact{
		Symbol:  name,
		Kind:    kind,
		Decls:   []emit.Decl{{Kind: kind, Name: name, Type: typ, Value: s}},
		Imports: o.imports,
	})
}

// WriteArray writes var NAME [N]...[M]ELEM = {...}. The lengths of every
// level are taken from sample, which must be non-empty down to the
// requested dimension. An empty elem is spelled from the sample's leaf
// type. Go has no constant arrays; the variable is the
// static binding.
func (g *Generator) WriteArray(name, elem string, sample any, opts ...Option) error {
	return g.writeDims(artifact.KindVar, dims.Array, name, elem, sample, opts)
}

// WriteArrayFunc writes func NAME() [N]...ELEM returning the array
func (g *Generator) WriteArrayFunc(name, elem string, sample any, opts ...Option) error {
	return g.writeDims(artifact.KindFunc, dims.Array, name, elem, sample, opts)
}

// WriteSliceFunc writes func NAME() []...ELEM returning a freshly
// allocated slice on every call
func (g *Generator) WriteSliceFunc(name, elem string, sample any, opts ...Option) error {
	return g.writeDims(artifact.KindFunc, dims.Slice, name, elem, sample, opts)
}
