// Package errors provides error handling for bakein.
//
// It re-exports github.com/cockroachdb/errors so that every diagnostic
// raised during a generation run carries a stack, optional user hints and
// details naming the offending symbol and artifact path.
//
//	if err := store.Write(path, src); err != nil {
//	    return errors.Wrapf(err, "failed to write artifact %s", symbol)
//	}
//
//	return errors.WithHint(err, "call AllowExport after the private write")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the failure classes of a generation run.
// Wrap these (or Mark a fresh error with them) to add context while keeping
// errors.Is working.
var (
	// ErrShape indicates a sample whose nesting does not match the declared
	// dimension, or a dimension outside the supported range
	ErrShape = New("shape mismatch")

	// ErrHashConstruction indicates the perfect-hash generator could not
	// build a table (duplicate keys, or no seed produced a valid displacement)
	ErrHashConstruction = New("perfect hash construction failed")

	// ErrParse indicates composed declaration text that is not valid Go
	ErrParse = New("generated text does not parse")

	// ErrArtifactMissing indicates an artifact that was never written
	ErrArtifactMissing = New("artifact missing")

	// ErrUnsupportedValue indicates a value the expression serializer cannot
	// render as a Go literal
	ErrUnsupportedValue = New("unsupported value")

	// ErrInvalidDeclaration indicates a bad identifier, type expression or
	// visibility combination in a declaration request
	ErrInvalidDeclaration = New("invalid declaration")

	// ErrBuilderConsumed indicates a collection builder used after Build
	ErrBuilderConsumed = New("builder already built")
)

// IsShapeError checks if an error is or wraps ErrShape
func IsShapeError(err error) bool {
	return err != nil && Is(err, ErrShape)
}

// IsHashConstructionError checks if an error is or wraps ErrHashConstruction
func IsHashConstructionError(err error) bool {
	return err != nil && Is(err, ErrHashConstruction)
}

// IsParseError checks if an error is or wraps ErrParse
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsArtifactMissingError checks if an error is or wraps ErrArtifactMissing
func IsArtifactMissingError(err error) bool {
	return err != nil && Is(err, ErrArtifactMissing)
}

// IsUnsupportedValueError checks if an error is or wraps ErrUnsupportedValue
func IsUnsupportedValueError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedValue)
}

// IsInvalidDeclarationError checks if an error is or wraps ErrInvalidDeclaration
func IsInvalidDeclarationError(err error) bool {
	return err != nil && Is(err, ErrInvalidDeclaration)
}

// NewShapeError creates a shape error with a formatted message
func NewShapeError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrShape)
}

// NewUnsupportedValueError creates an unsupported-value error with a formatted message
func NewUnsupportedValueError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrUnsupportedValue)
}

// NewInvalidDeclarationError creates an invalid-declaration error with a formatted message
func NewInvalidDeclarationError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidDeclaration)
}

// NewHashConstructionError creates a hash-construction error with a formatted message
func NewHashConstructionError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrHashConstruction)
}

// WrapArtifactMissing marks err as a missing-artifact error for symbol
func WrapArtifactMissing(err error, symbol string) error {
	return WithDetailf(Mark(Wrapf(err, "artifact %q not found", symbol), ErrArtifactMissing),
		"symbol: %s", symbol)
}
