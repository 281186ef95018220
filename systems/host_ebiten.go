package systems

import (
	"os"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenHost implements the option collaborators on top of ebiten.
// Quality and upscaling have no ebiten counterpart; they are recorded for
// the renderer and the overlay.
type EbitenHost struct {
	Quality          int
	Upscaling        UpscaleSettings
	ScreenPercentage int
	Fullscreen       bool

	monitors []*ebiten.MonitorType
}

// NewEbitenHost returns a host with the configured fallback settings.
func NewEbitenHost() *EbitenHost {
	return &EbitenHost{ScreenPercentage: cfg.Options.DefaultScreenPercentage}
}

// Host wraps h as every collaborator.
func (h *EbitenHost) Host() Host {
	return Host{Device: h, Modes: h, Sink: h}
}

// DeviceName reads the adapter name from the environment; ebiten does not
// expose the GPU name.
func (h *EbitenHost) DeviceName() string {
	return os.Getenv(cfg.Options.DeviceNameEnv)
}

// SupportedModes returns each monitor's native size plus the configured
// window sizes that fit on the largest monitor.
func (h *EbitenHost) SupportedModes() []tier.Mode {
	h.monitors = ebiten.AppendMonitors(h.monitors[:0])

	var largest tier.Mode
	var modes []tier.Mode
	seen := map[tier.Mode]bool{}
	add := func(m tier.Mode) {
		if m.Width <= 0 || m.Height <= 0 || seen[m] {
			return
		}
		seen[m] = true
		modes = append(modes, m)
	}

	for _, mon := range h.monitors {
		w, hgt := mon.Size()
		m := tier.Mode{Width: w, Height: hgt}
		add(m)
		if m.Pixels() > largest.Pixels() {
			largest = m
		}
	}
	for _, r := range cfg.Display.Resolutions {
		if largest.Pixels() == 0 || (r.Width <= largest.Width && r.Height <= largest.Height) {
			add(r.Mode())
		}
	}
	return modes
}

// SetWindowMode applies fullscreen, maximized or windowed presentation.
func (h *EbitenHost) SetWindowMode(mode cfg.WindowMode) {
	switch mode {
	case cfg.WindowFullscreen:
		h.Fullscreen = true
		ebiten.SetFullscreen(true)
	case cfg.WindowMaximized:
		h.Fullscreen = false
		ebiten.SetFullscreen(false)
		ebiten.MaximizeWindow()
	default:
		h.Fullscreen = false
		ebiten.SetFullscreen(false)
		ebiten.RestoreWindow()
	}
}

// SetResolution resizes the window. Ignored in fullscreen, where the
// monitor decides the size.
func (h *EbitenHost) SetResolution(mode tier.Mode) {
	if h.Fullscreen {
		return
	}
	ebiten.SetWindowSize(mode.Width, mode.Height)
}

func (h *EbitenHost) SetQuality(level int) {
	h.Quality = level
}

func (h *EbitenHost) SetUpscaling(u UpscaleSettings) {
	h.Upscaling = u
}

func (h *EbitenHost) SetScreenPercentage(pct int) {
	h.ScreenPercentage = pct
}

// RenderSize scales an outside size by the screen percentage, the way a
// dynamic resolution render target would.
func (h *EbitenHost) RenderSize(outsideWidth, outsideHeight int) (int, int) {
	pct := h.ScreenPercentage
	if pct <= 0 {
		pct = cfg.Options.DefaultScreenPercentage
	}
	w := outsideWidth * pct / 100
	ht := outsideHeight * pct / 100
	if w < 1 {
		w = 1
	}
	if ht < 1 {
		ht = 1
	}
	return w, ht
}
