// Package bake is the generation-phase API. A generation program, run by
// go generate before the consumer package is built, computes its data and
// writes it out as declarations:
//
//	func main() {
//	    gen, err := bake.Default()
//	    bake.Must(err)
//
//	    bake.Must(gen.WriteVar("ANSWER", "rt.Option[int32]", rt.Some[int32](42)))
//	    bake.Must(gen.WriteArray("GRID", "uint32", [][]int{{0, 1}, {1, 2}}, bake.Dim(2)))
//	}
//
// Every writer validates, parses and writes one artifact. Any failure is
// meant to end the run: Must and Fatal report the diagnostic and exit.
package bake

import (
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
	"go.uber.org/zap"
)

// Visibility of a written declaration
type Visibility = artifact.Visibility

const (
	Private = artifact.Private
	Public  = artifact.Public
)

// Field is one field of a struct written by WriteStruct
type Field = emit.Field

// Named is one member of a declaration group
type Named struct {
	Name  string
	Value any
}

// Generator writes the artifacts of one compilation unit
type Generator struct {
	cfg     *config.Config
	namer   *artifact.Namer
	store   *artifact.Store
	emitter *emit.Emitter
	log     *zap.SugaredLogger
}

// Default loads the configuration, initializes logging and returns a
// generator writing to the real filesystem
func Default() (*Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	logger.SetTheme(cfg.Log.Theme)
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return nil, err
	}
	return New(cfg)
}

// New returns a generator for cfg writing to the real filesystem
func New(cfg *config.Config) (*Generator, error) {
	return NewWithStore(cfg, artifact.NewOSStore())
}

// NewWithStore returns a generator for cfg writing through store
func NewWithStore(cfg *config.Config, store *artifact.Store) (*Generator, error) {
	namer, err := artifact.NamerFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:     cfg,
		namer:   namer,
		store:   store,
		emitter: emit.New(namer, store),
		log:     logger.ComponentLogger("bake"),
	}, nil
}

// Unit returns the compilation unit artifacts are written for
func (g *Generator) Unit() string {
	return g.namer.Unit
}

// Namer returns the path scheme of the generator's unit
func (g *Generator) Namer() *artifact.Namer {
	return g.namer
}

// Store returns the artifact store
func (g *Generator) Store() *artifact.Store {
	return g.store
}

// Option adjusts a single write
type Option func(*options)

type options struct {
	dim     int
	imports []string
}

// Dim sets the nesting dimension of array and slice writers. The default
// is 1.
func Dim(n int) Option {
	return func(o *options) { o.dim = n }
}

// Imports adds import paths referenced by type expressions, which the
// serialized values cannot report themselves
func Imports(paths ...string) Option {
	return func(o *options) { o.imports = append(o.imports, paths...) }
}

func collect(opts []Option) options {
	o := options{dim: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (g *Generator) emit(a emit.Artifact) error {
	path, err := g.emitter.Emit(a)
	if err != nil {
		return err
	}
	if logger.ShouldOutput(g.cfg.Log.Verbosity, logger.OutputArtifacts) {
		g.log.Infow("wrote artifact",
			logger.FieldSymbol, a.Symbol,
			logger.FieldKind, a.Kind.String(),
			logger.FieldPath, path)
	}
	return nil
}

// AllowExport publishes the private artifact of symbol under its exported
// name. The artifact must have been written earlier in the run.
func (g *Generator) AllowExport(symbol string) error {
	path, err := g.emitter.AllowExport(symbol)
	if err != nil {
		return err
	}
	g.log.Infow("exported artifact", logger.FieldSymbol, symbol, logger.FieldPath, path)
	return nil
}
