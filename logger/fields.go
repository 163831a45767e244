package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging across bakein.
const (
	FieldSymbol     = "symbol"
	FieldKind       = "kind"
	FieldVisibility = "visibility"
	FieldPath       = "path"
	FieldUnit       = "unit"
	FieldPackage    = "package"
	FieldDimension  = "dimension"
	FieldCount      = "count"
	FieldAttempts   = "attempts"
	FieldBytes      = "bytes"
	FieldError      = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
//	type Emitter struct {
//	    log *zap.SugaredLogger
//	}
//
//	func NewEmitter() *Emitter {
//	    return &Emitter{log: logger.ComponentLogger("emit")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
