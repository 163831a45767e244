package bake

import (
	"reflect"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/tokens"
)

// hashBudgeted is implemented by the collections builders
type hashBudgeted interface {
	DefaultMaxAttempts(n int)
}

// serialize renders value for a declaration of type typ. When typ spells
// the value's own type, scalars are written without a conversion.
// A collections builder passed as the value takes the generator's
// hash.max_attempts unless it set its own.
func (g *Generator) serialize(value any, typ string) (*tokens.Stream, error) {
	if b, ok := value.(hashBudgeted); ok {
		b.DefaultMaxAttempts(g.cfg.Hash.MaxAttempts)
	}
	s := tokens.NewStream()
	if t := reflect.TypeOf(value); t != nil && typ != "" {
		if name, err := tokens.NewStream().TypeName(t); err == nil && name == typ {
			return s, s.AppendField(value, t)
		}
	}
	return s, s.Append(value)
}

func symbolError(err error, symbol string) error {
	return errors.WithDetailf(errors.Wrapf(err, "writing %s", symbol), "symbol: %s", symbol)
}

func (g *Generator) writeOne(kind artifact.Kind, name, typ string, value any, opts []Option) error {
	o := collect(opts)
	s, err := g.serialize(value, typ)
	if err != nil {
		return symbolError(err, name)
	}
	return g.emit(emit.Artifact{
		Symbol:  name,
		Kind:    kind,
		Decls:   []emit.Decl{{Kind: kind, Name: name, Type: typ, Value: s}},
		Imports: o.imports,
	})
}

// WriteConst writes const NAME TYPE = VALUE. The value must serialize to a
// constant expression; typ may be empty.
func (g *Generator) WriteConst(name, typ string, value any, opts ...Option) error {
	return g.writeOne(artifact.KindConst, name, typ, value, opts)
}

// WriteVar writes var NAME TYPE = VALUE, the static binding. typ may be
// empty when the serialized value names its own type.
func (g *Generator) WriteVar(name, typ string, value any, opts ...Option) error {
	return g.writeOne(artifact.KindVar, name, typ, value, opts)
}

// WriteFunc writes func NAME() TYPE { return VALUE }. Each call of the
// function returns a fresh copy of the value.
func (g *Generator) WriteFunc(name, typ string, value any, opts ...Option) error {
	if typ == "" {
		return symbolError(errors.NewInvalidDeclarationError("function needs a result type"), name)
	}
	return g.writeOne(artifact.KindFunc, name, typ, value, opts)
}

func (g *Generator) writeGroup(vis Visibility, kind artifact.Kind, group, typ string, items []Named, opts []Option) error {
	o := collect(opts)
	a := emit.Artifact{Symbol: group, Kind: artifact.KindGroup, Visibility: vis, Imports: o.imports}
	for _, it := range items {
		s, err := g.serialize(it.Value, typ)
		if err != nil {
			return symbolError(errors.Wrapf(err, "member %s", it.Name), group)
		}
		a.Decls = append(a.Decls, emit.Decl{Kind: kind, Name: it.Name, Type: typ, Value: s})
	}
	if len(a.Decls) == 0 {
		return symbolError(errors.NewInvalidDeclarationError("group has no members"), group)
	}
	return g.emit(a)
}

// WriteConsts writes a named group of constants of one type
func (g *Generator) WriteConsts(vis Visibility, group, typ string, items []Named, opts ...Option) error {
	return g.writeGroup(vis, artifact.KindConst, group, typ, items, opts)
}

// WriteVars writes a named group of variables of one type
func (g *Generator) WriteVars(vis Visibility, group, typ string, items []Named, opts ...Option) error {
	return g.writeGroup(vis, artifact.KindVar, group, typ, items, opts)
}

// WriteFuncs writes a named group of getter functions with one result type
func (g *Generator) WriteFuncs(vis Visibility, group, typ string, items []Named, opts ...Option) error {
	if typ == "" {
		return symbolError(errors.NewInvalidDeclarationError("functions need a result type"), group)
	}
	return g.writeGroup(vis, artifact.KindFunc, group, typ, items, opts)
}

// WriteStructInit writes an initializer expression for a struct. The
// import phase includes it as var ALIAS = VALUE.
func (g *Generator) WriteStructInit(structName string, value any, opts ...Option) error {
	o := collect(opts)
	s, err := g.serialize(value, "")
	if err != nil {
		return symbolError(err, structName)
	}
	return g.emit(emit.Artifact{
		Symbol:  structName,
		Kind:    artifact.KindInit,
		Decls:   []emit.Decl{{Kind: artifact.KindInit, Name: structName, Value: s}},
		Imports: o.imports,
	})
}

// Literal renders typeName{Field: value, ...}. It spells values of types
// the generation program cannot import, such as structs written by
// WriteStruct.
func Literal(typeName string, fields ...tokens.Field) tokens.ToTokens {
	return literal{typeName: typeName, fields: fields}
}

type literal struct {
	typeName string
	fields   []tokens.Field
}

func (l literal) ToTokens(s *tokens.Stream) error {
	return s.Literal(l.typeName, func() error {
		for i, f := range l.fields {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(f.Name)
			s.WriteString(": ")
			if err := s.Append(f.Value); err != nil {
				return errors.Wrapf(err, "field %s", f.Name)
			}
		}
		return nil
	})
}
