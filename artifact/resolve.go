package artifact

import (
	"golang.org/x/tools/go/packages"

	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
)

// ResolveUnit returns the import path of the package in dir. It is the
// compilation-unit identity used when none is configured.
func ResolveUnit(dir string) (string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", errors.Wrapf(err, "failed to load package in %s", dir)
	}
	if len(pkgs) == 0 || pkgs[0].PkgPath == "" {
		return "", errors.WithHint(errors.Newf("no package found in %s", dir),
			"set BAKEIN_UNIT to the consumer package import path")
	}

	// go generate commonly runs while the package does not build yet, so
	// errors are reported but do not hide an import path that is known
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		logger.Warnw("package has errors", logger.FieldPath, dir, logger.FieldError, pkg.Errors[0].Error())
	}

	logger.Debugw("resolved compilation unit", logger.FieldUnit, pkg.PkgPath, logger.FieldPath, dir)
	return pkg.PkgPath, nil
}
