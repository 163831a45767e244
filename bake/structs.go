package bake

import (
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/emit"
)

// WriteStruct writes a struct type definition from field triples
func (g *Generator) WriteStruct(vis Visibility, name string, fields []Field, opts ...Option) error {
	o := collect(opts)
	return g.emit(emit.Artifact{
		Symbol:     name,
		Kind:       artifact.KindType,
		Visibility: vis,
		Decls:      []emit.Decl{{Kind: artifact.KindType, Name: name, Fields: fields}},
		Imports:    o.imports,
	})
}

// WriteUniformStruct writes a struct whose fields all share one type and
// one visibility
func (g *Generator) WriteUniformStruct(vis Visibility, name string, public bool, typ string, fieldNames []string, opts ...Option) error {
	fields := make([]Field, len(fieldNames))
	for i, n := range fieldNames {
		fields[i] = Field{Public: public, Name: n, Type: typ}
	}
	return g.WriteStruct(vis, name, fields, opts...)
}
