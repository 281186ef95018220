package main

import (
	"fmt"
	"io"

	"github.com/automoto/gfxtier/tier"
	"github.com/spf13/cobra"
)

// ParseResponse is the score embedded in a device name
type ParseResponse struct {
	Device string  `json:"device"`
	Found  bool    `json:"found"`
	Score  float64 `json:"score"`
}

func newParseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse DEVICE_NAME",
		Short: "Extract the embedded 3DMARK score from a device name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, found, err := tier.ParseEmbeddedCapabilityScore(args[0])
			if err != nil {
				return err
			}
			resp := ParseResponse{Device: args[0], Found: found, Score: float64(score)}
			return root.write(cmd.OutOrStdout(), resp, func(w io.Writer) {
				if !found {
					fmt.Fprintln(w, "none")
					return
				}
				fmt.Fprintf(w, "%g\n", resp.Score)
			})
		},
	}
}
