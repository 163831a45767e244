package emit

import (
	"path"
	"slices"
	"strings"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/tokens"
)

func compose(a Artifact) string {
	var b strings.Builder
	b.WriteString(artifact.Header)
	b.WriteString("\n")
	b.WriteString(artifact.Meta{Symbol: a.Symbol, Kind: a.Kind, Visibility: a.Visibility}.String())
	b.WriteString("\n\n")
	b.WriteString(artifact.PackageClause)
	b.WriteString("\n")

	imports := a.imports()
	switch len(imports) {
	case 0:
	case 1:
		b.WriteString("\nimport ")
		b.WriteString(ImportSpec(imports[0]))
		b.WriteString("\n")
	default:
		b.WriteString("\nimport (\n")
		for _, p := range imports {
			b.WriteString("\t")
			b.WriteString(ImportSpec(p))
			b.WriteString("\n")
		}
		b.WriteString(")\n")
	}

	for _, d := range a.Decls {
		b.WriteString("\n")
		writeDecl(&b, d)
		b.WriteString("\n")
	}
	return b.String()
}

// ImportSpec renders an import of p, naming it explicitly when the package
// name assumed by generated code differs from the last path element
func ImportSpec(p string) string {
	quoted := `"` + p + `"`
	if name := tokens.PackageName(p); name != path.Base(p) {
		return name + " " + quoted
	}
	return quoted
}

func (a Artifact) imports() []string {
	all := slices.Clone(a.Imports)
	for _, d := range a.Decls {
		if d.Value != nil {
			all = append(all, d.Value.Imports()...)
		}
	}
	slices.Sort(all)
	return slices.Compact(all)
}

func writeDecl(b *strings.Builder, d Decl) {
	switch d.Kind {
	case artifact.KindConst, artifact.KindVar:
		if d.Kind == artifact.KindConst {
			b.WriteString("const ")
		} else {
			b.WriteString("var ")
		}
		b.WriteString(d.Name)
		if d.Type != "" {
			b.WriteString(" ")
			b.WriteString(d.Type)
		}
		b.WriteString(" = ")
		b.WriteString(d.Value.String())

	case artifact.KindFunc:
		b.WriteString("func ")
		b.WriteString(d.Name)
		b.WriteString("() ")
		b.WriteString(d.Type)
		b.WriteString(" {\n\treturn ")
		b.WriteString(d.Value.String())
		b.WriteString("\n}")

	case artifact.KindType:
		b.WriteString("type ")
		b.WriteString(d.Name)
		if len(d.Fields) == 0 {
			b.WriteString(" struct{}")
			return
		}
		b.WriteString(" struct {\n")
		for _, f := range d.Fields {
			b.WriteString("\t")
			b.WriteString(f.Name)
			b.WriteString(" ")
			b.WriteString(f.Type)
			b.WriteString("\n")
		}
		b.WriteString("}")

	case artifact.KindInit:
		// the import phase renames _ to the requested alias
		b.WriteString("var _ = ")
		b.WriteString(d.Value.String())
	}
}
