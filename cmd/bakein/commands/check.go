package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/emit"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
)

// CheckCmd re-parses every artifact of the unit
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every artifact of the package parses",
	Long: `Re-parse every artifact of the consumer package. An artifact that does
not parse was left behind by a failed generation run.

Exit codes:
  0 - All artifacts parse
  1 - Some artifacts do not parse (listed)`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult holds the outcome of checking one unit
type CheckResult struct {
	Checked int
	Broken  map[string]string // path -> parser message
}

// CheckArtifacts parses every artifact listed for namer in store
func CheckArtifacts(store *artifact.Store, namer *artifact.Namer) (*CheckResult, error) {
	entries, err := store.List(namer)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Broken: make(map[string]string)}
	for _, e := range entries {
		result.Checked++
		if e.Err != nil {
			result.Broken[e.Path] = e.Err.Error()
			continue
		}
		src, err := afero.ReadFile(store.Fs(), e.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", e.Path)
		}
		if _, err := emit.Format(e.Path, src); err != nil {
			result.Broken[e.Path] = err.Error()
		}
	}
	return result, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	namer, err := artifact.NamerFromConfig(cfg)
	if err != nil {
		return err
	}

	result, err := CheckArtifacts(artifact.NewOSStore(), namer)
	if err != nil {
		return err
	}

	if len(result.Broken) == 0 {
		pterm.Success.Printf("%d artifacts of %s parse\n", result.Checked, namer.Unit)
		return nil
	}

	pterm.Error.Printf("%d of %d artifacts do not parse\n", len(result.Broken), result.Checked)
	for path, msg := range result.Broken {
		pterm.Printf("  %s\n    %s\n", path, pterm.Gray(msg))
		logger.Debugw("broken artifact", logger.FieldPath, path, logger.FieldError, msg)
	}
	return errors.WithHint(errors.Newf("%d artifacts do not parse", len(result.Broken)),
		"rerun the generation program after fixing the reported declarations")
}
