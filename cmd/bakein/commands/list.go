package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/bakein/artifact"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
)

// ListCmd lists the artifacts of the unit
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the artifacts of the package",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	ListCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

type listedArtifact struct {
	Symbol     string `json:"symbol"`
	Kind       string `json:"kind"`
	Visibility string `json:"visibility"`
	Path       string `json:"path"`
	Error      string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	namer, err := artifact.NamerFromConfig(cfg)
	if err != nil {
		return err
	}

	entries, err := artifact.NewOSStore().List(namer)
	if err != nil {
		return err
	}

	listed := make([]listedArtifact, 0, len(entries))
	for _, e := range entries {
		la := listedArtifact{Path: e.Path}
		if e.Err != nil {
			la.Error = e.Err.Error()
		} else {
			la.Symbol = e.Meta.Symbol
			la.Kind = e.Meta.Kind.String()
			la.Visibility = e.Meta.Visibility.String()
		}
		listed = append(listed, la)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		output, err := json.MarshalIndent(listed, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format JSON")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	if len(listed) == 0 {
		pterm.Info.Printf("No artifacts for %s in %s\n", namer.Unit, cfg.OutDir)
		return nil
	}
	for _, la := range listed {
		if la.Error != "" {
			pterm.Printf("%s  %s\n", pterm.Red("invalid"), filepath.Base(la.Path))
			continue
		}
		pterm.Printf("%-7s %-8s %s\n", la.Kind, pterm.Gray(la.Visibility), la.Symbol)
	}
	return nil
}
