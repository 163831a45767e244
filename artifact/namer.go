package artifact

import (
	"go/token"
	"path"
	"path/filepath"
	"strings"

	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
)

const initDir = "init"

// Namer computes artifact paths for one compilation unit
type Namer struct {
	OutDir string
	Unit   string
}

// NewNamer validates outDir and unit. unit is the consumer package's import
// path; it becomes a relative directory below outDir.
func NewNamer(outDir, unit string) (*Namer, error) {
	if outDir == "" {
		return nil, errors.WithHint(errors.New("artifact output directory is empty"),
			"set BAKEIN_OUT_DIR or out_dir in bakein.toml")
	}
	if unit == "" {
		return nil, errors.WithHint(errors.New("compilation unit is empty"),
			"set BAKEIN_UNIT or run from inside the consumer package")
	}
	clean := path.Clean(unit)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") || clean != unit {
		return nil, errors.Newf("compilation unit %q must be a clean relative import path", unit)
	}
	return &Namer{OutDir: outDir, Unit: unit}, nil
}

// NamerFromConfig builds a namer from the configured output directory and
// unit, resolving the unit from the working directory when unset
func NamerFromConfig(cfg *config.Config) (*Namer, error) {
	unit := cfg.Unit
	if unit == "" {
		var err error
		if unit, err = ResolveUnit("."); err != nil {
			return nil, err
		}
	}
	return NewNamer(cfg.OutDir, unit)
}

// UnitDir is the directory holding every artifact of the unit
func (n *Namer) UnitDir() string {
	return filepath.Join(n.OutDir, filepath.FromSlash(n.Unit))
}

// Path returns the artifact path of symbol with the given visibility
func (n *Namer) Path(symbol string, vis Visibility) (string, error) {
	if err := checkSymbol(symbol); err != nil {
		return "", err
	}
	return filepath.Join(n.UnitDir(), vis.String(), symbol+Ext), nil
}

// InitPath returns the path of the initializer artifact of a struct
func (n *Namer) InitPath(structName string) (string, error) {
	if err := checkSymbol(structName); err != nil {
		return "", err
	}
	return filepath.Join(n.UnitDir(), initDir, structName+Ext), nil
}

func checkSymbol(symbol string) error {
	if !token.IsIdentifier(symbol) || symbol == "_" {
		return errors.WithDetailf(
			errors.NewInvalidDeclarationError("symbol %q is not a Go identifier", symbol),
			"symbol: %s", symbol)
	}
	return nil
}
