// Package collections builds perfect-hash maps and sets at generation time
// and renders them as ready-to-use rt containers.
//
//	b := collections.NewMapBuilder[string, int32]()
//	_ = b.Entry("a", 1)
//	_ = b.Entry("b", 2)
//	err := gen.WriteVar("lookup", b.GoType(), b)
//
// The generated declaration is
//
//	var lookup rt.Map[string, int32] = rt.NewMap(phf.Map[string, int32]{...})
package collections

import (
	"reflect"

	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
	"github.com/teranos/bakein/phf"
	"github.com/teranos/bakein/phf/phfgen"
	"github.com/teranos/bakein/rt"
	"github.com/teranos/bakein/tokens"
)

var phfPath = reflect.TypeFor[phf.Disp]().PkgPath()

// core is shared by the four builder variants
type core[K phf.Key] struct {
	wrapper string // rt constructor and type name: Map, OrderedMap, ...
	gen     *phfgen.Builder[K]
	types   *tokens.Stream // collects imports of the key and value types
	built   bool
	err     error

	// fallbackAttempts applies when the builder's own MaxAttempts is unset
	fallbackAttempts int
}

func newCore[K phf.Key](wrapper string, valueType reflect.Type) *core[K] {
	c := &core[K]{wrapper: wrapper, types: tokens.NewStream()}

	keyType, err := c.types.TypeName(reflect.TypeFor[K]())
	if err != nil {
		c.err = err
		keyType = "invalid"
	}

	switch wrapper {
	case "Map", "OrderedMap":
		valueName, err := c.types.TypeName(valueType)
		if err != nil && c.err == nil {
			c.err = err
		}
		if wrapper == "Map" {
			c.gen = phfgen.NewMap[K](keyType, valueName)
		} else {
			c.gen = phfgen.NewOrderedMap[K](keyType, valueName)
		}
	case "Set":
		c.gen = phfgen.NewSet[K](keyType)
	default:
		c.gen = phfgen.NewOrderedSet[K](keyType)
	}
	return c
}

func (c *core[K]) entry(key K, value any, valueType reflect.Type) error {
	if c.built {
		return errors.Wrapf(errors.ErrBuilderConsumed, "%s entry after Build", c.wrapper)
	}
	if c.err != nil {
		return c.err
	}

	ks, err := tokens.SerializeElem(key, reflect.TypeFor[K]())
	if err != nil {
		return errors.Wrapf(err, "%s key %v", c.wrapper, key)
	}
	c.absorb(ks)

	valueText := ""
	if valueType != nil {
		vs, err := tokens.SerializeField(value, valueType)
		if err != nil {
			return errors.Wrapf(err, "%s value for key %v", c.wrapper, key)
		}
		c.absorb(vs)
		valueText = vs.String()
	}

	c.gen.Entry(key, ks.String(), valueText)
	return nil
}

func (c *core[K]) absorb(s *tokens.Stream) {
	for _, path := range s.Imports() {
		c.types.Import(path)
	}
}

func (c *core[K]) build(maxAttempts int) (*tokens.Stream, error) {
	if c.built {
		return nil, errors.Wrapf(errors.ErrBuilderConsumed, "%s built twice", c.wrapper)
	}
	if c.err != nil {
		return nil, c.err
	}
	c.built = true

	if maxAttempts <= 0 {
		maxAttempts = c.fallbackAttempts
	}
	if maxAttempts <= 0 {
		maxAttempts = configuredAttempts()
	}
	c.gen.MaxAttempts(maxAttempts)
	table, st, err := c.gen.Build()
	if err != nil {
		return nil, err
	}
	if logger.ShouldOutput(logger.Verbosity, logger.OutputTableStats) {
		logger.Debugw("built perfect hash table",
			logger.FieldKind, c.wrapper,
			logger.FieldCount, c.gen.Len(),
			logger.FieldAttempts, st.Attempts,
			"layout", st.String())
	}

	s := tokens.NewStream()
	s.Merge(c.types)
	s.Import(rt.PkgPath)
	s.Import(phfPath)
	s.MarkNonConstant()
	s.WriteString("rt.New" + c.wrapper + "(")
	s.WriteString(table)
	s.WriteString(")")
	return s, nil
}

// configuredAttempts reads hash.max_attempts for builders used outside a
// bake.Generator, falling back to the generator default when no
// configuration can be loaded
func configuredAttempts() int {
	cfg, err := config.Load()
	if err != nil {
		logger.Warnw("hash.max_attempts unavailable, using default",
			logger.FieldAttempts, phfgen.DefaultMaxAttempts,
			logger.FieldError, err.Error())
		return phfgen.DefaultMaxAttempts
	}
	return cfg.Hash.MaxAttempts
}

// render writes the built container into a stream owned by a caller
func (c *core[K]) render(s *tokens.Stream, maxAttempts int) error {
	built, err := c.build(maxAttempts)
	if err != nil {
		return err
	}
	s.Merge(built)
	return nil
}

func (c *core[K]) goType(args ...reflect.Type) string {
	s := tokens.NewStream()
	name, err := s.Generic(rt.PkgPath, c.wrapper, args...)
	if err != nil {
		return "rt." + c.wrapper
	}
	return name
}
