package main

import (
	"encoding/json"
	"fmt"
	"io"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/spf13/cobra"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

type rootOptions struct {
	tiersPath string
	format    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tierprobe",
		Short: "Inspect capability tier selection without starting the game",
		Long: `tierprobe runs the capability tier tables used by gfxtier from the command line.

Examples:
  tierprobe select --score 14532
  tierprobe snap --target 1700x950 --mode 1280x720 --mode 1920x1080
  tierprobe parse "RTX 3070 (3DMARK-14000)"
  tierprobe tables --tiers tiers.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.tiersPath, "tiers", "", "YAML file overriding the built-in tier tables")
	cmd.PersistentFlags().StringVar(&opts.format, "format", string(FormatHuman), "Output format (json, human)")

	cmd.AddCommand(
		newSelectCmd(opts),
		newSnapCmd(opts),
		newParseCmd(opts),
		newTablesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadTiers() (cfg.TierConfig, error) {
	return cfg.LoadTiers(o.tiersPath)
}

// write prints resp as JSON or with human, depending on --format.
func (o *rootOptions) write(w io.Writer, resp interface{}, human func(io.Writer)) error {
	switch OutputFormat(o.format) {
	case FormatJSON:
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatHuman:
		human(w)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", o.format)
	}
}
