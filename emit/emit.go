// Package emit composes declarations into artifact files.
//
// Every artifact is parsed before it is written. Text that parses is
// written gofmt-formatted; text that does not is written exactly as
// composed, so the bad output can be inspected, and the emission fails
// with errors.ErrParse.
package emit

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"sync"

	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
	"github.com/teranos/bakein/tokens"
	"go.uber.org/zap"
)

// Field is one field of a struct type definition
type Field struct {
	Public bool
	Name   string
	Type   string
}

// Decl is one top-level declaration
type Decl struct {
	Kind artifact.Kind // KindConst, KindVar, KindFunc, KindType or KindInit
	Name string

	// Type is the declared type (const, var), the result type (func) or
	// empty to let the value decide
	Type string

	// Value is the initializer or returned expression
	Value *tokens.Stream

	// Fields of a KindType declaration
	Fields []Field
}

// Artifact is everything written to one artifact file
type Artifact struct {
	Symbol     string
	Kind       artifact.Kind
	Visibility artifact.Visibility
	Decls      []Decl

	// Imports referenced by type expressions. Imports of values are taken
	// from their streams.
	Imports []string
}

// Emitter writes artifacts of one compilation unit
type Emitter struct {
	namer *artifact.Namer
	store *artifact.Store
	log   *zap.SugaredLogger

	mu sync.Mutex
	// owners maps a lower-cased artifact path to the artifact that wrote
	// it during this run
	owners map[string]owner
}

// owner identifies the artifact holding a path. from is the private
// symbol of an artifact published by AllowExport.
type owner struct {
	symbol string
	from   string
}

func (o owner) String() string {
	if o.from != "" {
		return o.symbol + " (exported from " + o.from + ")"
	}
	return o.symbol
}

// New returns an emitter writing through store at paths chosen by namer
func New(namer *artifact.Namer, store *artifact.Store) *Emitter {
	return &Emitter{
		namer:  namer,
		store:  store,
		log:    logger.ComponentLogger("emit"),
		owners: make(map[string]owner),
	}
}

// claim reserves path for o. Paths that differ only in case name the same
// file on case-insensitive filesystems, so they count as one path.
// Rewriting an artifact with the same owner is allowed.
func (e *Emitter) claim(path string, o owner) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := strings.ToLower(path)
	if prev, ok := e.owners[key]; ok && prev != o {
		err := errors.NewInvalidDeclarationError("artifact %s would overwrite artifact %s", o, prev)
		err = errors.WithDetailf(err, "symbol: %s", o.symbol)
		err = errors.WithDetailf(err, "path: %s", path)
		return errors.WithHint(err, "artifact names must differ by more than letter case")
	}
	e.owners[key] = o
	return nil
}

// Path returns the path a would be written to
func (e *Emitter) Path(a Artifact) (string, error) {
	if a.Kind == artifact.KindInit {
		return e.namer.InitPath(a.Symbol)
	}
	return e.namer.Path(a.Symbol, a.Visibility)
}

// Emit validates, composes and writes a, returning the artifact path
func (e *Emitter) Emit(a Artifact) (string, error) {
	if err := a.validate(); err != nil {
		return "", errors.WithDetailf(errors.Wrapf(err, "artifact %s", a.Symbol), "symbol: %s", a.Symbol)
	}
	path, err := e.Path(a)
	if err != nil {
		return "", err
	}
	if err := e.claim(path, owner{symbol: a.Symbol}); err != nil {
		return "", err
	}

	src := compose(a)
	if logger.ShouldOutput(logger.Verbosity, logger.OutputSource) {
		logger.Debugf("composed %s (%s):\n%s", a.Symbol, path, src)
	}
	out, err := Format(path, []byte(src))
	if err != nil {
		perr := parseFailure(a.Symbol, path, err)
		if werr := e.store.Write(path, []byte(src)); werr != nil {
			perr = errors.WithSecondaryError(perr, werr)
		}
		e.log.Errorw("artifact does not parse",
			logger.FieldSymbol, a.Symbol,
			logger.FieldPath, path,
			logger.FieldError, err.Error())
		return path, perr
	}

	if err := e.store.Write(path, out); err != nil {
		return "", errors.WithDetailf(err, "symbol: %s", a.Symbol)
	}
	e.log.Debugw("emitted artifact",
		logger.FieldSymbol, a.Symbol,
		logger.FieldKind, a.Kind.String(),
		logger.FieldVisibility, a.Visibility.String(),
		logger.FieldPath, path)
	return path, nil
}

// Format parses src as a Go file and returns it gofmt-formatted
func Format(filename string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseFailure(symbol, path string, err error) error {
	perr := errors.Mark(errors.Wrapf(err, "generated text for %s does not parse", symbol), errors.ErrParse)
	perr = errors.WithDetailf(perr, "symbol: %s", symbol)
	perr = errors.WithDetailf(perr, "path: %s", path)
	return errors.WithHint(perr, "the unformatted text was written to the path for inspection")
}
