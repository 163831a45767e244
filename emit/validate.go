package emit

import (
	"go/parser"
	"go/token"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/internal/util"
)

func (a Artifact) validate() error {
	if len(a.Decls) == 0 {
		return errors.NewInvalidDeclarationError("no declarations")
	}

	switch a.Kind {
	case artifact.KindGroup:
		for _, d := range a.Decls {
			if d.Kind != artifact.KindConst && d.Kind != artifact.KindVar && d.Kind != artifact.KindFunc {
				return errors.NewInvalidDeclarationError("a group holds const, var or func declarations, got %s", d.Kind)
			}
		}
	case artifact.KindConst, artifact.KindVar, artifact.KindFunc, artifact.KindType, artifact.KindInit:
		if len(a.Decls) != 1 || a.Decls[0].Kind != a.Kind {
			return errors.NewInvalidDeclarationError("a %s artifact holds exactly one %s declaration", a.Kind, a.Kind)
		}
		if a.Decls[0].Name != a.Symbol {
			return errors.NewInvalidDeclarationError("declaration %s does not match symbol %s", a.Decls[0].Name, a.Symbol)
		}
	default:
		return errors.NewInvalidDeclarationError("unknown artifact kind %s", a.Kind)
	}

	names := make(map[string]bool, len(a.Decls))
	for _, d := range a.Decls {
		if names[d.Name] {
			return errors.NewInvalidDeclarationError("%s is declared twice", d.Name)
		}
		names[d.Name] = true
		if err := d.validate(a.Visibility); err != nil {
			return errors.Wrapf(err, "%s %s", d.Kind, d.Name)
		}
	}
	return nil
}

func (d Decl) validate(vis artifact.Visibility) error {
	if !token.IsIdentifier(d.Name) || d.Name == "_" {
		return errors.NewInvalidDeclarationError("name %q is not a Go identifier", d.Name)
	}
	if vis == artifact.Public && d.Kind != artifact.KindInit && !util.IsExported(d.Name) {
		return errors.WithHint(
			errors.NewInvalidDeclarationError("public declaration %s is not exported", d.Name),
			"emit it privately and call AllowExport, or capitalize the name")
	}

	if d.Kind == artifact.KindType {
		return validateFields(d.Fields)
	}

	if d.Type == "" && d.Kind == artifact.KindFunc {
		return errors.NewInvalidDeclarationError("function needs a result type")
	}
	if d.Type != "" {
		if err := checkType(d.Type); err != nil {
			return err
		}
	}
	if d.Value == nil || d.Value.Len() == 0 {
		return errors.NewInvalidDeclarationError("missing value")
	}
	if d.Kind == artifact.KindConst && !d.Value.Constant() {
		return errors.WithHint(
			errors.NewInvalidDeclarationError("value is not a constant expression"),
			"composite values need a var binding or a function")
	}
	return nil
}

func validateFields(fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !token.IsIdentifier(f.Name) {
			return errors.NewInvalidDeclarationError("field name %q is not a Go identifier", f.Name)
		}
		if f.Name != "_" {
			if seen[f.Name] {
				return errors.NewInvalidDeclarationError("field %s is declared twice", f.Name)
			}
			seen[f.Name] = true
			if f.Public != util.IsExported(f.Name) {
				return errors.NewInvalidDeclarationError("field %s: %s fields must be %s",
					f.Name, visibilityWord(f.Public), exportWord(f.Public))
			}
		}
		if err := checkType(f.Type); err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
	}
	return nil
}

func checkType(typ string) error {
	if _, err := parser.ParseExpr(typ); err != nil {
		return errors.NewInvalidDeclarationError("type %q does not parse: %v", typ, err)
	}
	return nil
}

func visibilityWord(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

func exportWord(public bool) string {
	if public {
		return "exported"
	}
	return "unexported"
}
