package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToPascalCase converts snake_case or kebab-case to PascalCase
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			// Capitalize first letter, keep rest as-is
			runes := []rune(part)
			result.WriteRune(unicode.ToUpper(runes[0]))
			result.WriteString(string(runes[1:]))
		}
	}

	return result.String()
}

// IsExported reports whether name starts with an upper-case letter
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ToExported returns the exported spelling of a Go identifier.
// Already exported names are unchanged, so SCREAMING_CASE survives:
//
//	grid        -> Grid
//	lookup_tbl  -> LookupTbl
//	_scratch    -> Scratch
//	GRID_SIZE   -> GRID_SIZE
//	_           -> _
func ToExported(name string) string {
	if name == "_" || name == "" || IsExported(name) {
		return name
	}
	if strings.ContainsAny(name, "_-") {
		if p := ToPascalCase(name); p != "" {
			return p
		}
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
