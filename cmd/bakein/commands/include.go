package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/include"
	"github.com/teranos/bakein/logger"
)

const defaultOutput = "bakein_gen.go"

// ImportCmd assembles private artifacts
var ImportCmd = &cobra.Command{
	Use:   "import SYMBOL...",
	Short: "Include private artifacts in the consumer package",
	Long: `Assemble the private artifacts of the named symbols into one Go file of
the consumer package. Declarations appear in the order given.

Examples:
  bakein import ANSWER GRID                 # writes bakein_gen.go
  bakein import -o tables_gen.go lookup     # explicit output file
  bakein import -o - ANSWER                 # print to stdout`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInclude(cmd, include.Import(args...))
	},
}

// ExportCmd assembles public artifacts
var ExportCmd = &cobra.Command{
	Use:   "export SYMBOL...",
	Short: "Include public artifacts published with AllowExport",
	Long: `Assemble the public artifacts of the named symbols. A symbol may be
given in its private or exported spelling; the generation program must have
called AllowExport for it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInclude(cmd, include.Export(args...))
	},
}

// InitCmd includes a struct initializer under an alias
var InitCmd = &cobra.Command{
	Use:   "init STRUCT ALIAS",
	Short: "Include a struct initializer as var ALIAS",
	Long: `Include the initializer written by WriteStructInit for STRUCT as
var ALIAS = <initializer>.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInclude(cmd, include.Init(args[0], args[1]))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{ImportCmd, ExportCmd, InitCmd} {
		cmd.Flags().StringP("output", "o", defaultOutput, "Output file, or - for stdout")
		cmd.Flags().String("package", "", "Package clause of the output (default: $GOPACKAGE)")
		cmd.Flags().Bool("fix-imports", false, "Add missing and remove unused imports")
	}
}

func runInclude(cmd *cobra.Command, part include.Part) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg := *loaded

	if pkg, _ := cmd.Flags().GetString("package"); pkg != "" {
		cfg.Package = pkg
	}
	if cmd.Flags().Changed("fix-imports") {
		cfg.FixImports, _ = cmd.Flags().GetBool("fix-imports")
	}

	includer, err := include.FromConfig(&cfg, artifact.NewOSStore())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		src, err := includer.Assemble(part)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	if err := includer.WriteFile(output, part); err != nil {
		return err
	}
	if logger.ShouldOutput(cfg.Log.Verbosity, logger.OutputResults) {
		pterm.Success.Printf("Wrote %s\n", output)
	}
	return nil
}
