// Package artifact names, stores and describes generated declaration files.
//
// One artifact file exists per (unit, symbol, visibility). Paths are a pure
// function of those three values, so a rerun of the generation program
// overwrites exactly the files it wrote last time:
//
//	<out_dir>/<unit import path>/private/<symbol>.gofrag
//	<out_dir>/<unit import path>/public/<symbol>.gofrag
//	<out_dir>/<unit import path>/init/<struct>.gofrag
//
// An artifact is a complete Go file in package artifact, so that it can be
// parsed and formatted on its own before the import phase splices its
// declarations into the consumer package.
package artifact

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/teranos/bakein/errors"
)

// Ext is the file extension of artifact files. It is not .go so that the
// artifact tree is never mistaken for a package.
const Ext = ".gofrag"

// Header is the first line of every artifact and every assembled file
const Header = "// Code generated by bakein. DO NOT EDIT."

// PackageClause is the package clause of artifact files
const PackageClause = "package artifact"

const metaPrefix = "// bakein:artifact "

// Visibility decides who may include an artifact
type Visibility int

const (
	// Private artifacts are included by the unit that generated them
	Private Visibility = iota
	// Public artifacts are re-exported with exported identifiers
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}

// ParseVisibility parses "private" or "public"
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "private":
		return Private, nil
	case "public":
		return Public, nil
	}
	return Private, errors.NewInvalidDeclarationError("unknown visibility %q", s)
}

// Kind is the syntactic shape of an artifact's declarations
type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindFunc
	KindGroup // several const, var or func declarations under one symbol
	KindType
	KindInit // a struct initializer expression, included under an alias
)

var kindNames = []string{"const", "var", "func", "group", "type", "init"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses the String form of a Kind
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, errors.NewInvalidDeclarationError("unknown artifact kind %q", s)
}

// Meta is the description recorded in an artifact's second line
type Meta struct {
	Symbol     string
	Kind       Kind
	Visibility Visibility
}

// String renders the meta comment line
func (m Meta) String() string {
	return fmt.Sprintf("%ssymbol=%s kind=%s visibility=%s", metaPrefix, m.Symbol, m.Kind, m.Visibility)
}

// IsMetaLine reports whether line is a meta comment line
func IsMetaLine(line string) bool {
	return strings.HasPrefix(line, metaPrefix)
}

// ParseMeta reads the meta comment line of an artifact
func ParseMeta(src []byte) (Meta, error) {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if IsMetaLine(line) {
			return parseMetaLine(strings.TrimPrefix(line, metaPrefix))
		}
		if strings.HasPrefix(line, "package ") {
			break
		}
	}
	return Meta{}, errors.Mark(errors.New("artifact has no bakein:artifact line"), errors.ErrParse)
}

func parseMetaLine(fields string) (Meta, error) {
	var m Meta
	var seen int
	for _, f := range strings.Fields(fields) {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return m, errors.Mark(errors.Newf("malformed meta field %q", f), errors.ErrParse)
		}

		var err error
		switch key {
		case "symbol":
			m.Symbol = value
		case "kind":
			m.Kind, err = ParseKind(value)
		case "visibility":
			m.Visibility, err = ParseVisibility(value)
		default:
			continue
		}
		if err != nil {
			return m, errors.Mark(err, errors.ErrParse)
		}
		seen++
	}
	if seen != 3 || m.Symbol == "" {
		return m, errors.Mark(errors.Newf("incomplete meta line %q", fields), errors.ErrParse)
	}
	return m, nil
}
