package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/gfxtier/tier"
	"github.com/spf13/cobra"
)

// SnapResponse is the result of snapping a target to the supported modes
type SnapResponse struct {
	Target string `json:"target"`
	Mode   string `json:"mode"`
}

func newSnapCmd(root *rootOptions) *cobra.Command {
	var target string
	var modes []string

	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Snap a target resolution to the best supported display mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseMode(target)
			if err != nil {
				return fmt.Errorf("--target: %w", err)
			}
			candidates := make([]tier.Mode, 0, len(modes))
			for _, m := range modes {
				c, err := parseMode(m)
				if err != nil {
					return fmt.Errorf("--mode: %w", err)
				}
				candidates = append(candidates, c)
			}

			best, err := tier.SnapToNearestSupported(t, candidates)
			if err != nil {
				return err
			}
			resp := SnapResponse{Target: t.String(), Mode: best.String()}
			return root.write(cmd.OutOrStdout(), resp, func(w io.Writer) {
				fmt.Fprintf(w, "%s -> %s\n", resp.Target, resp.Mode)
			})
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Desired resolution, WIDTHxHEIGHT")
	cmd.Flags().StringArrayVar(&modes, "mode", nil, "Supported display mode, WIDTHxHEIGHT (repeatable)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// parseMode parses "1920x1080".
func parseMode(s string) (tier.Mode, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return tier.Mode{}, fmt.Errorf("invalid mode %q, want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return tier.Mode{}, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return tier.Mode{}, fmt.Errorf("invalid height in %q", s)
	}
	return tier.Mode{Width: width, Height: height}, nil
}
