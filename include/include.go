// Package include is the import phase: it assembles previously generated
// artifacts into one Go file of the consumer package.
//
// The consumer package names the artifacts it needs in a go:generate line,
//
//	//go:generate bakein import -o tables_gen.go ANSWER GRID lookup
//
// and the declarations of those artifacts become part of the package when
// it is built.
package include

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/tools/imports"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/internal/util"
	"github.com/teranos/bakein/logger"
)

type partKind int

const (
	partImport partKind = iota
	partExport
	partInit
)

func (k partKind) String() string {
	switch k {
	case partExport:
		return "export"
	case partInit:
		return "init"
	}
	return "import"
}

// Part selects artifacts to include
type Part struct {
	kind    partKind
	symbols []string
	alias   string
}

// Import includes the private artifacts of symbols
func Import(symbols ...string) Part {
	return Part{kind: partImport, symbols: symbols}
}

// Export includes the public artifacts of symbols. The symbols may be
// given in their private or exported spelling.
func Export(symbols ...string) Part {
	return Part{kind: partExport, symbols: symbols}
}

// Init includes the initializer artifact of structName as a variable
// named alias
func Init(structName, alias string) Part {
	return Part{kind: partInit, symbols: []string{structName}, alias: alias}
}

// Includer assembles artifacts of one compilation unit
type Includer struct {
	namer      *artifact.Namer
	store      *artifact.Store
	pkg        string
	fixImports bool
}

// New returns an includer writing files of package pkg
func New(namer *artifact.Namer, store *artifact.Store, pkg string) *Includer {
	return &Includer{namer: namer, store: store, pkg: pkg}
}

// FromConfig returns an includer for the configured unit and package
func FromConfig(cfg *config.Config, store *artifact.Store) (*Includer, error) {
	namer, err := artifact.NamerFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(namer, store, cfg.Package).FixImports(cfg.FixImports), nil
}

// FixImports lets goimports add missing and remove unused imports instead
// of only formatting the assembled file
func (in *Includer) FixImports(on bool) *Includer {
	in.fixImports = on
	return in
}

// included is one artifact ready for assembly
type included struct {
	symbol  string
	path    string
	body    string
	names   []string
	imports map[string]string // import path -> explicit name or ""
}

// Assemble reads the artifacts selected by parts and returns the
// assembled file
func (in *Includer) Assemble(parts ...Part) ([]byte, error) {
	return in.assemble("", parts)
}

// WriteFile assembles parts and writes the result to path
func (in *Includer) WriteFile(path string, parts ...Part) error {
	src, err := in.assemble(path, parts)
	if err != nil {
		return err
	}
	if err := in.store.Write(path, src); err != nil {
		return err
	}
	logger.Infow("assembled artifacts",
		logger.FieldPath, path,
		logger.FieldPackage, in.pkg,
		logger.FieldUnit, in.namer.Unit)
	return nil
}

func (in *Includer) assemble(filename string, parts []Part) ([]byte, error) {
	if !token.IsIdentifier(in.pkg) {
		return nil, errors.WithHint(
			errors.NewInvalidDeclarationError("package name %q is not a Go identifier", in.pkg),
			"run from go generate, which sets GOPACKAGE, or pass --package")
	}

	var all []included
	for _, p := range parts {
		for _, symbol := range p.symbols {
			inc, err := in.read(p, symbol)
			if err != nil {
				return nil, err
			}
			all = append(all, inc)
		}
	}

	importNames := make(map[string]string)
	declaredBy := make(map[string]string)
	for _, inc := range all {
		for path, name := range inc.imports {
			if prev, ok := importNames[path]; ok && prev != name {
				return nil, errors.WithDetailf(
					errors.NewInvalidDeclarationError("%s imports %s as %q, another artifact as %q", inc.symbol, path, name, prev),
					"symbol: %s", inc.symbol)
			}
			importNames[path] = name
		}
		for _, name := range inc.names {
			if other, ok := declaredBy[name]; ok {
				return nil, errors.WithDetailf(
					errors.NewInvalidDeclarationError("%s is declared by both %s and %s", name, other, inc.symbol),
					"symbol: %s", inc.symbol)
			}
			declaredBy[name] = inc.symbol
		}
	}

	var b bytes.Buffer
	b.WriteString(artifact.Header)
	b.WriteString("\n\npackage ")
	b.WriteString(in.pkg)
	b.WriteString("\n")

	paths := slices.Sorted(maps.Keys(importNames))
	switch len(paths) {
	case 0:
	case 1:
		b.WriteString("\nimport ")
		writeImport(&b, importNames[paths[0]], paths[0])
		b.WriteString("\n")
	default:
		b.WriteString("\nimport (\n")
		for _, p := range paths {
			b.WriteString("\t")
			writeImport(&b, importNames[p], p)
			b.WriteString("\n")
		}
		b.WriteString(")\n")
	}

	for _, inc := range all {
		b.WriteString("\n")
		b.WriteString(inc.body)
		b.WriteString("\n")
	}

	out, err := imports.Process(filename, b.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: !in.fixImports,
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "assembled file for package %s does not parse", in.pkg), errors.ErrParse)
	}

	logger.Debugw("assembled file",
		logger.FieldPackage, in.pkg,
		logger.FieldCount, len(all),
		logger.FieldBytes, len(out))
	return out, nil
}

func writeImport(b *bytes.Buffer, name, path string) {
	if name != "" {
		b.WriteString(name)
		b.WriteString(" ")
	}
	b.WriteString(strconv.Quote(path))
}

func (in *Includer) read(p Part, symbol string) (included, error) {
	path, err := in.path(p, symbol)
	if err != nil {
		return included{}, err
	}

	src, err := in.store.Read(path, symbol)
	if err != nil {
		switch p.kind {
		case partExport:
			err = errors.WithHintf(err, "call AllowExport(%q) in the generation program", symbol)
		default:
			err = errors.WithHint(err, "run the generation program before go generate includes its artifacts")
		}
		return included{}, err
	}

	meta, err := artifact.ParseMeta(src)
	if err != nil {
		return included{}, errors.WithDetailf(err, "path: %s", path)
	}
	if (meta.Kind == artifact.KindInit) != (p.kind == partInit) {
		return included{}, errors.WithDetailf(
			errors.NewInvalidDeclarationError("%s artifact %s cannot be included by %s", meta.Kind, symbol, p.kind),
			"path: %s", path)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		perr := errors.Mark(errors.Wrapf(err, "artifact %s does not parse", symbol), errors.ErrParse)
		perr = errors.WithDetailf(perr, "path: %s", path)
		return included{}, errors.WithHint(perr, "the generation run that wrote it failed; fix and rerun it")
	}

	inc := included{symbol: symbol, path: path, imports: make(map[string]string)}
	for _, spec := range f.Imports {
		ipath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return included{}, errors.Mark(errors.Wrapf(err, "artifact %s", symbol), errors.ErrParse)
		}
		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		}
		inc.imports[ipath] = name
	}

	if p.kind == partInit {
		inc.body, err = initBody(fset, f, p.alias)
		if err != nil {
			return included{}, errors.WithDetailf(err, "symbol: %s", symbol)
		}
		inc.names = []string{p.alias}
		return inc, nil
	}

	// everything after the package clause and imports is included verbatim
	end := f.Name.End()
	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			end = gd.End()
			continue
		}
		inc.names = append(inc.names, topLevelNames(decl)...)
	}
	inc.body = string(bytes.TrimSpace(src[fset.Position(end).Offset:]))
	return inc, nil
}

func (in *Includer) path(p Part, symbol string) (string, error) {
	switch p.kind {
	case partExport:
		return in.namer.Path(util.ToExported(symbol), artifact.Public)
	case partInit:
		if !token.IsIdentifier(p.alias) || p.alias == "_" {
			return "", errors.NewInvalidDeclarationError("init alias %q is not a Go identifier", p.alias)
		}
		return in.namer.InitPath(symbol)
	}
	return in.namer.Path(symbol, artifact.Private)
}

// initBody renames the blank initializer variable to alias
func initBody(fset *token.FileSet, f *ast.File, alias string) (string, error) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR || len(gd.Specs) != 1 {
			continue
		}
		vs := gd.Specs[0].(*ast.ValueSpec)
		if len(vs.Names) != 1 || vs.Names[0].Name != "_" {
			continue
		}
		vs.Names[0].Name = alias

		var buf bytes.Buffer
		if err := format.Node(&buf, fset, gd); err != nil {
			return "", errors.Wrap(err, "failed to print initializer")
		}
		return buf.String(), nil
	}
	return "", errors.Mark(errors.New("initializer artifact has no initializer"), errors.ErrParse)
}

func topLevelNames(decl ast.Decl) []string {
	var names []string
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv == nil && d.Name.Name != "init" {
			names = append(names, d.Name.Name)
		}
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				for _, n := range s.Names {
					if n.Name != "_" {
						names = append(names, n.Name)
					}
				}
			case *ast.TypeSpec:
				names = append(names, s.Name.Name)
			}
		}
	}
	return names
}
