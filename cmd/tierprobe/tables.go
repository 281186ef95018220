package main

import (
	"fmt"
	"io"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/spf13/cobra"
)

// TablesResponse lists the active tier tables
type TablesResponse struct {
	Quality    []QualityRow    `json:"quality"`
	Resolution []ResolutionRow `json:"resolution"`
}

type QualityRow struct {
	Level     int     `json:"level"`
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
	Range     string  `json:"range"`
}

type ResolutionRow struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Threshold float64 `json:"threshold"`
	Range     string  `json:"range"`
}

func newTablesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the active tier tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := root.loadTiers()
			if err != nil {
				return err
			}
			resp := tablesResponse(tiers)
			return root.write(cmd.OutOrStdout(), resp, func(w io.Writer) {
				fmt.Fprintln(w, "Quality:")
				for _, q := range resp.Quality {
					fmt.Fprintf(w, "  %-8s level %d  %s\n", q.Name, q.Level, q.Range)
				}
				fmt.Fprintln(w, "Resolution:")
				for _, r := range resp.Resolution {
					fmt.Fprintf(w, "  %dx%d  %s\n", r.Width, r.Height, r.Range)
				}
			})
		},
	}
}

func tablesResponse(tiers cfg.TierConfig) TablesResponse {
	var resp TablesResponse

	quality := tiers.Quality.Tiers()
	thresholds := make([]tier.Score, len(quality))
	for i, q := range quality {
		thresholds[i] = q.Threshold
	}
	for i, q := range quality {
		resp.Quality = append(resp.Quality, QualityRow{
			Level:     q.Level,
			Name:      cfg.QualityName(q.Level),
			Threshold: float64(q.Threshold),
			Range:     scoreRange(thresholds, i),
		})
	}

	resolution := tiers.Resolution.Tiers()
	thresholds = make([]tier.Score, len(resolution))
	for i, r := range resolution {
		thresholds[i] = r.Threshold
	}
	for i, r := range resolution {
		resp.Resolution = append(resp.Resolution, ResolutionRow{
			Width:     r.Width,
			Height:    r.Height,
			Threshold: float64(r.Threshold),
			Range:     scoreRange(thresholds, i),
		})
	}
	return resp
}

// scoreRange describes the scores that select entry i. An entry covers
// (thresholds[i-1], thresholds[i]]; the first one also takes every lower
// known score and the last one every higher score.
func scoreRange(thresholds []tier.Score, i int) string {
	last := len(thresholds) - 1
	switch {
	case last == 0:
		return "score > 0"
	case i == 0:
		return fmt.Sprintf("score <= %g", float64(thresholds[0]))
	case i == last:
		return fmt.Sprintf("score > %g", float64(thresholds[i-1]))
	default:
		return fmt.Sprintf("%g < score <= %g", float64(thresholds[i-1]), float64(thresholds[i]))
	}
}
