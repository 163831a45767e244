package emit

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/internal/util"
	"github.com/teranos/bakein/logger"
)

// AllowExport re-emits the private artifact of symbol as a public one:
// every top-level identifier it declares is renamed to its exported form,
// together with the references to it. The public artifact is stored under
// the exported symbol name and its path is returned.
//
// The private artifact must have been emitted first.
func (e *Emitter) AllowExport(symbol string) (string, error) {
	privPath, err := e.namer.Path(symbol, artifact.Private)
	if err != nil {
		return "", err
	}
	src, err := e.store.Read(privPath, symbol)
	if err != nil {
		return "", errors.WithHint(err, "emit the private artifact before calling AllowExport")
	}

	meta, err := artifact.ParseMeta(src)
	if err != nil {
		return "", errors.WithDetailf(err, "path: %s", privPath)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, privPath, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return "", parseFailure(symbol, privPath, err)
	}

	renames, err := exportedNames(f)
	if err != nil {
		return "", errors.WithDetailf(err, "symbol: %s", symbol)
	}
	rename(f, renames)

	public := util.ToExported(symbol)
	if !token.IsIdentifier(public) || !util.IsExported(public) {
		return "", errors.WithDetailf(
			errors.NewInvalidDeclarationError("symbol %s has no exported form", symbol),
			"symbol: %s", symbol)
	}
	meta.Symbol = public
	meta.Visibility = artifact.Public
	setMeta(f, meta)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return "", errors.Wrapf(err, "failed to format public artifact %s", public)
	}

	pubPath, err := e.namer.Path(public, artifact.Public)
	if err != nil {
		return "", err
	}
	if err := e.claim(pubPath, owner{symbol: public, from: symbol}); err != nil {
		return "", err
	}
	if err := e.store.Write(pubPath, buf.Bytes()); err != nil {
		return "", err
	}

	e.log.Debugw("exported artifact",
		logger.FieldSymbol, public,
		logger.FieldPath, pubPath,
		logger.FieldCount, len(renames))
	return pubPath, nil
}

// exportedNames maps each unexported top-level name of f to its exported form
func exportedNames(f *ast.File) (map[string]string, error) {
	declared := make(map[string]bool)
	for _, decl := range f.Decls {
		for _, id := range declaredIdents(decl) {
			declared[id.Name] = true
		}
	}

	renames := make(map[string]string)
	taken := make(map[string]string)
	for name := range declared {
		to := util.ToExported(name)
		if to == name {
			continue
		}
		if !token.IsIdentifier(to) || !util.IsExported(to) {
			return nil, errors.NewInvalidDeclarationError("%s has no exported form", name)
		}
		if declared[to] {
			return nil, errors.NewInvalidDeclarationError("exporting %s collides with declared %s", name, to)
		}
		if other, ok := taken[to]; ok {
			return nil, errors.NewInvalidDeclarationError("%s and %s both export as %s", name, other, to)
		}
		taken[to] = name
		renames[name] = to
	}
	return renames, nil
}

func declaredIdents(decl ast.Decl) []*ast.Ident {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv == nil {
			return []*ast.Ident{d.Name}
		}
	case *ast.GenDecl:
		var ids []*ast.Ident
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				for _, n := range s.Names {
					if n.Name != "_" {
						ids = append(ids, n)
					}
				}
			case *ast.TypeSpec:
				ids = append(ids, s.Name)
			}
		}
		return ids
	}
	return nil
}

// rename applies renames to every identifier that can refer to a
// top-level declaration. Selectors, struct field names and keys of
// non-map composite literals name fields, not declarations.
func rename(f *ast.File, renames map[string]string) {
	if len(renames) == 0 {
		return
	}

	fieldIdents := make(map[*ast.Ident]bool)
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ImportSpec:
			return false
		case *ast.SelectorExpr:
			fieldIdents[n.Sel] = true
		case *ast.StructType:
			for _, field := range n.Fields.List {
				for _, name := range field.Names {
					fieldIdents[name] = true
				}
			}
		case *ast.CompositeLit:
			if _, isMap := n.Type.(*ast.MapType); isMap {
				break
			}
			for _, elt := range n.Elts {
				if kv, ok := elt.(*ast.KeyValueExpr); ok {
					if id, ok := kv.Key.(*ast.Ident); ok {
						fieldIdents[id] = true
					}
				}
			}
		}
		return true
	})

	ast.Inspect(f, func(n ast.Node) bool {
		if _, ok := n.(*ast.ImportSpec); ok {
			return false
		}
		if id, ok := n.(*ast.Ident); ok && !fieldIdents[id] {
			if to, ok := renames[id.Name]; ok {
				id.Name = to
			}
		}
		return true
	})
}

func setMeta(f *ast.File, meta artifact.Meta) {
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if artifact.IsMetaLine(c.Text) {
				c.Text = meta.String()
				return
			}
		}
	}
}
