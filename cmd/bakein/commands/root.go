// Package commands holds the bakein command tree.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
)

// RootCmd is the bakein command
var RootCmd = &cobra.Command{
	Use:   "bakein",
	Short: "Include generated Go declarations in a package",
	Long: `bakein assembles declarations written by a generation program into
a Go file of the consumer package.

A generation program uses the bake package to write artifacts. The consumer
package includes them with go:generate lines:

  //go:generate go run ./internal/gen
  //go:generate bakein import -o tables_gen.go ANSWER GRID lookup
  //go:generate bakein export -o public_gen.go Limits

Configuration is read from bakein.toml (searched upward from the working
directory) and BAKEIN_* environment variables. go generate provides
GOPACKAGE, which becomes the package of assembled files.

Examples:
  bakein list                       # Artifacts of the current package
  bakein check                      # Re-parse every artifact
  bakein import -o - ANSWER         # Print the assembled file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.SetTheme(cfg.Log.Theme)
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		if logger.ShouldOutput(cfg.Log.Verbosity, logger.OutputConfig) {
			logger.Debugw("configuration",
				"out_dir", cfg.OutDir,
				logger.FieldUnit, cfg.Unit,
				logger.FieldPackage, cfg.Package)
		}
		return nil
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("out-dir", "", "Artifact root directory (default: <user cache dir>/bakein)")
	flags.String("unit", "", "Import path of the consumer package (default: resolved from the working directory)")
	flags.Bool("json", false, "Log as JSON")
	flags.CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	v := config.GetViper()
	_ = v.BindPFlag("out_dir", flags.Lookup("out-dir"))
	_ = v.BindPFlag("unit", flags.Lookup("unit"))
	_ = v.BindPFlag("log.json", flags.Lookup("json"))
	_ = v.BindPFlag("log.verbosity", flags.Lookup("verbose"))

	RootCmd.AddCommand(ImportCmd)
	RootCmd.AddCommand(ExportCmd)
	RootCmd.AddCommand(InitCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(ListCmd)
	RootCmd.AddCommand(VersionCmd)
}
