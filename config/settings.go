package config

import "github.com/automoto/gfxtier/tier"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Mode converts the option to a tier.Mode.
func (r Resolution) Mode() tier.Mode {
	return tier.Mode{Width: r.Width, Height: r.Height}
}

// DisplayConfig lists the window sizes offered on top of the native
// monitor size
type DisplayConfig struct {
	Resolutions []Resolution
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1366, Height: 768, Label: "1366 x 768"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
			{Width: 3840, Height: 2160, Label: "3840 x 2160"},
		},
	}
}
