// Command gentuple writes rt/tuple.go: the Tuple2..Tuple12 types with
// their constructors and token rendering.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const (
	minArity = 2
	maxArity = 12
)

func main() {
	out := flag.String("o", "tuple.go", "output file")
	flag.Parse()

	src, err := format.Source([]byte(generate()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generate() string {
	var b strings.Builder
	b.WriteString("// Code generated by gentuple. DO NOT EDIT.\n\n")
	b.WriteString("package rt\n\n")
	b.WriteString("import (\n\t\"reflect\"\n\n\t\"github.com/teranos/bakein/tokens\"\n)\n")

	for n := minArity; n <= maxArity; n++ {
		writeTuple(&b, n)
	}
	return b.String()
}

func writeTuple(b *strings.Builder, n int) {
	params := make([]string, n)
	values := make([]string, n)
	fields := make([]string, n)
	typeFors := make([]string, n)
	ofs := make([]string, n)
	for i := range n {
		params[i] = string(rune('A' + i))
		values[i] = fmt.Sprintf("v%d", i)
		fields[i] = fmt.Sprintf("v%d %s", i, params[i])
		typeFors[i] = fmt.Sprintf("reflect.TypeFor[%s]()", params[i])
		ofs[i] = fmt.Sprintf("tokens.Of(t.V%d)", i)
	}
	args := strings.Join(params, ", ")
	decl := args + " any"
	name := fmt.Sprintf("Tuple%d", n)

	fmt.Fprintf(b, "\n// %s is an ordered group of %d values\n", name, n)
	fmt.Fprintf(b, "type %s[%s] struct {\n", name, decl)
	for i, p := range params {
		fmt.Fprintf(b, "\tV%d %s\n", i, p)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// New%s returns a %s\n", name, name)
	fmt.Fprintf(b, "func New%s[%s](%s) %s[%s] {\n", name, decl, strings.Join(fields, ", "), name, args)
	fmt.Fprintf(b, "\treturn %s[%s]{%s}\n}\n\n", name, args, strings.Join(values, ", "))

	fmt.Fprintf(b, "// GoTypeName spells rt.%s[...]\n", name)
	fmt.Fprintf(b, "func (t %s[%s]) GoTypeName(s *tokens.Stream) (string, error) {\n", name, args)
	fmt.Fprintf(b, "\treturn s.Generic(PkgPath, %q,\n\t\t%s)\n}\n\n", name, strings.Join(typeFors, ", "))

	fmt.Fprintf(b, "// ToTokens renders an unkeyed rt.%s literal\n", name)
	fmt.Fprintf(b, "func (t %s[%s]) ToTokens(s *tokens.Stream) error {\n", name, args)
	b.WriteString("\tname, err := t.GoTypeName(s)\n\tif err != nil {\n\t\treturn err\n\t}\n")
	b.WriteString("\treturn s.Literal(name, func() error {\n")
	fmt.Fprintf(b, "\t\treturn s.Positional(%s)\n\t})\n}\n", strings.Join(ofs, ", "))
}
