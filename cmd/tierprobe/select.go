package main

import (
	"fmt"
	"io"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/spf13/cobra"
)

// SelectResponse is the result of a tier selection
type SelectResponse struct {
	Score       float64 `json:"score"`
	Selected    bool    `json:"selected"`
	Quality     int     `json:"quality"`
	QualityName string  `json:"qualityName,omitempty"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
}

func newSelectCmd(root *rootOptions) *cobra.Command {
	var score float64

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the quality level and resolution for a capability score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := root.loadTiers()
			if err != nil {
				return err
			}
			resp := selectTiers(tier.Score(score), tiers)
			return root.write(cmd.OutOrStdout(), resp, func(w io.Writer) {
				if !resp.Selected {
					fmt.Fprintf(w, "score %g: no selection (unknown score)\n", resp.Score)
					return
				}
				fmt.Fprintf(w, "score %g: quality %d (%s), resolution %dx%d\n",
					resp.Score, resp.Quality, resp.QualityName, resp.Width, resp.Height)
			})
		},
	}

	cmd.Flags().Float64Var(&score, "score", 0, "Capability score (<= 0 means unknown)")
	return cmd
}

func selectTiers(score tier.Score, tiers cfg.TierConfig) SelectResponse {
	resp := SelectResponse{Score: float64(score)}
	level, ok := tier.SelectQualityTier(score, tiers.Quality)
	if !ok {
		return resp
	}
	mode, _ := tier.SelectResolutionTier(score, tiers.Resolution)

	resp.Selected = true
	resp.Quality = level
	resp.QualityName = cfg.QualityName(level)
	resp.Width = mode.Width
	resp.Height = mode.Height
	return resp
}
