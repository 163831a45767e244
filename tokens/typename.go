package tokens

import (
	"path"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/bakein/errors"
)

// TypeName returns the Go spelling of t as seen from a file that imports
// t's package under its assumed name, and records that import.
func (s *Stream) TypeName(t reflect.Type) (string, error) {
	if t == charType {
		return "rune", nil
	}

	if k := t.Kind(); k != reflect.Interface && k != reflect.Pointer && t.Implements(typeNamerType) {
		return reflect.Zero(t).Interface().(TypeNamer).GoTypeName(s)
	}

	if t.Name() != "" {
		return s.namedType(t)
	}

	switch t.Kind() {
	case reflect.Slice:
		elem, err := s.TypeName(t.Elem())
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil

	case reflect.Array:
		elem, err := s.TypeName(t.Elem())
		if err != nil {
			return "", err
		}
		return "[" + strconv.Itoa(t.Len()) + "]" + elem, nil

	case reflect.Map:
		key, err := s.TypeName(t.Key())
		if err != nil {
			return "", err
		}
		elem, err := s.TypeName(t.Elem())
		if err != nil {
			return "", err
		}
		return "map[" + key + "]" + elem, nil

	case reflect.Pointer:
		elem, err := s.TypeName(t.Elem())
		if err != nil {
			return "", err
		}
		return "*" + elem, nil

	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any", nil
		}

	case reflect.Struct:
		if t.NumField() == 0 {
			return "struct{}", nil
		}
	}

	return "", errors.WithHint(
		errors.NewUnsupportedValueError("anonymous type %s has no spelling in generated code", t),
		"declare a named type for it")
}

func (s *Stream) namedType(t reflect.Type) (string, error) {
	pkg := t.PkgPath()
	if pkg == "" {
		// predeclared: int, string, error, ...
		return t.Name(), nil
	}
	if pkg == "main" {
		return "", errors.WithHint(
			errors.NewUnsupportedValueError("type %s is declared in package main and cannot be referenced", t.Name()),
			"move the type into an importable package")
	}
	if strings.ContainsRune(t.Name(), '[') {
		return "", errors.WithHint(
			errors.NewUnsupportedValueError("generic type %s must spell itself", t),
			"implement tokens.TypeNamer, using Stream.Generic")
	}
	s.Import(pkg)
	return PackageName(pkg) + "." + t.Name(), nil
}

// Generic spells an instantiation of the generic type name declared in
// package pkgPath and records the imports of the package and its type
// arguments.
func (s *Stream) Generic(pkgPath, name string, args ...reflect.Type) (string, error) {
	var b strings.Builder
	s.Import(pkgPath)
	b.WriteString(PackageName(pkgPath))
	b.WriteString(".")
	b.WriteString(name)
	b.WriteString("[")
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		an, err := s.TypeName(a)
		if err != nil {
			return "", errors.Wrapf(err, "type argument %d of %s", i, name)
		}
		b.WriteString(an)
	}
	b.WriteString("]")
	return b.String(), nil
}

// PackageName returns the name a package is assumed to declare, derived
// from its import path the same way goimports guesses it:
//
//	github.com/teranos/bakein/rt -> rt
//	gopkg.in/yaml.v3             -> yaml
//	example.com/lib/v2           -> lib
//	github.com/x/go-toml         -> toml
func PackageName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}
	return base
}

func notIdentifier(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		'0' <= ch && ch <= '9' ||
		ch == '_' ||
		ch >= utf8.RuneSelf && (unicode.IsLetter(ch) || unicode.IsDigit(ch)))
}
