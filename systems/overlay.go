package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/gfxtier/components"
	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

var (
	overlayTitleColor = color.RGBA{255, 200, 80, 255}
	overlayTextColor  = color.RGBA{220, 220, 220, 255}
	overlayHintColor  = color.RGBA{140, 140, 140, 255}
)

const overlayLineHeight = 18

// DrawOptions renders the current options and version info.
func DrawOptions(e *ecs.ECS, screen *ebiten.Image) {
	opts := GetOrCreateOptions(e)
	face := fonts.Overlay.Get()

	text.Draw(screen, "GRAPHICS OPTIONS", fonts.OverlayTitle.Get(), 16, 28, overlayTitleColor)

	y := 56
	for _, line := range optionLines(opts) {
		text.Draw(screen, line, face, 16, y, overlayTextColor)
		y += overlayLineHeight
	}

	y += overlayLineHeight
	text.Draw(screen, "F1 Upsampling  F2 Keys  F3 Window  -/= Screen %  F5 Re-detect", face, 16, y, overlayHintColor)

	height := screen.Bounds().Dy()
	for i, line := range strings.Split(VersionText(), "\n") {
		text.Draw(screen, line, face, 16, height-12-overlayLineHeight*(1-i), overlayHintColor)
	}
}

// optionLines formats the overlay rows for opts
func optionLines(opts *components.OptionsData) []string {
	device := opts.DeviceName
	if device == "" {
		device = "unknown"
	}
	score := "none"
	if opts.Score.Known() {
		score = fmt.Sprintf("%.0f", float64(opts.Score))
	}
	upsampling := opts.Upsampling.String()
	if opts.DLSS {
		upsampling += fmt.Sprintf(" (sharpness %.2f)", cfg.Options.DLSSSharpness)
	}
	resolution := "unchanged"
	if opts.Resolution.Width > 0 {
		resolution = opts.Resolution.String()
	}
	keys := opts.Keys
	return []string{
		fmt.Sprintf("GPU:          %s", device),
		fmt.Sprintf("Score:        %s", score),
		fmt.Sprintf("Quality:      %d (%s)", opts.Quality, cfg.QualityName(opts.Quality)),
		fmt.Sprintf("Resolution:   %s", resolution),
		fmt.Sprintf("Screen:       %d%%", opts.ScreenPercentage),
		fmt.Sprintf("Upsampling:   %s", upsampling),
		fmt.Sprintf("Keyboard:     %s (%s %s %s %s)", opts.Keyboard, keys.Forward, keys.Left, keys.Back, keys.Right),
		fmt.Sprintf("Window:       %s", opts.WindowMode),
	}
}
