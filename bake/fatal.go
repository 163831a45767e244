package bake

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
)

// exit is replaced in tests
var exit = os.Exit

// Fatal reports err with its hints and details and ends the generation
// run. A failed run must not leave the consumer compiling against a
// partial artifact set.
func Fatal(err error) {
	logger.Errorw("generation failed", logger.FieldError, err.Error())

	pterm.Error.Printf("%v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Printf("%s\n", hint)
	}
	for _, detail := range errors.GetAllDetails(err) {
		pterm.Printf("  %s\n", pterm.Gray(detail))
	}

	logger.Cleanup()
	exit(1)
}

// Must calls Fatal when err is not nil
func Must(err error) {
	if err != nil {
		Fatal(err)
	}
}
