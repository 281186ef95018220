package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer for the options overlay
const Default ecs.LayerID = 0

// UpsamplingMethod selects the upscale filter used with dynamic resolution
type UpsamplingMethod int

const (
	UpsamplingCatmullRom UpsamplingMethod = iota
	UpsamplingCAS
	UpsamplingTAAU
	UpsamplingEASU // FidelityFX Super Resolution 1.0
	UpsamplingDLSS
)

var upsamplingNames = [...]string{"Catmull-Rom", "CAS", "TAAU", "FSR", "DLSS"}

func (u UpsamplingMethod) String() string {
	if u >= 0 && int(u) < len(upsamplingNames) {
		return upsamplingNames[u]
	}
	return "Unknown"
}

// Valid reports whether u is a known method.
func (u UpsamplingMethod) Valid() bool {
	return u >= UpsamplingCatmullRom && u <= UpsamplingDLSS
}

// KeyboardScheme selects the movement key layout
type KeyboardScheme int

const (
	KeyboardWASD KeyboardScheme = iota
	KeyboardIJKL
	KeyboardZQSD
)

var keyboardNames = [...]string{"WASD", "IJKL", "ZQSD"}

func (k KeyboardScheme) String() string {
	if k >= 0 && int(k) < len(keyboardNames) {
		return keyboardNames[k]
	}
	return "Unknown"
}

// WindowMode selects how the game window is presented
type WindowMode int

const (
	WindowFullscreen WindowMode = iota // borderless fullscreen window
	WindowMaximized
	WindowWindowed
)

var windowModeNames = [...]string{"Full Screen (Windowed)", "Maximized Window", "Window"}

func (w WindowMode) String() string {
	if w >= 0 && int(w) < len(windowModeNames) {
		return windowModeNames[w]
	}
	return "Unknown"
}

// Valid reports whether w is a known mode.
func (w WindowMode) Valid() bool {
	return w >= WindowFullscreen && w <= WindowWindowed
}

// OptionsConfig contains defaults and limits for the graphics options
type OptionsConfig struct {
	DefaultScreenPercentage int
	MinScreenPercentage     int
	MaxScreenPercentage     int
	DefaultUpsampling       UpsamplingMethod
	DefaultKeyboard         KeyboardScheme
	DefaultWindowMode       WindowMode

	// DLSS tuning applied when UpsamplingDLSS is selected
	DLSSQuality   int
	DLSSSharpness float64

	// Window size used before any resolution has been selected
	FallbackWidth  int
	FallbackHeight int

	// Environment variable carrying the adapter name, e.g. "RTX 3070 (3DMARK-14000)"
	DeviceNameEnv string
	// Environment variable pointing at a YAML tier override file
	TierFileEnv string
	// Environment variable pointing at a TTF font for the overlay
	FontFileEnv string

	// gdata application name and item key
	AppName  string
	SaveItem string
}

// Options is the global options configuration
var Options OptionsConfig

func init() {
	Options = OptionsConfig{
		DefaultScreenPercentage: 100,
		MinScreenPercentage:     50,
		MaxScreenPercentage:     200,
		DefaultUpsampling:       UpsamplingEASU,
		DefaultKeyboard:         KeyboardWASD,
		DefaultWindowMode:       WindowWindowed,
		DLSSQuality:             0,
		DLSSSharpness:           0.5,
		FallbackWidth:           1280,
		FallbackHeight:          720,
		DeviceNameEnv:           "GFXTIER_DEVICE_NAME",
		TierFileEnv:             "GFXTIER_TIERS",
		FontFileEnv:             "GFXTIER_FONT",
		AppName:                 "gfxtier",
		SaveItem:                "options",
	}
}

// ClampScreenPercentage keeps p inside the configured range
func ClampScreenPercentage(p int) int {
	if p < Options.MinScreenPercentage {
		return Options.MinScreenPercentage
	}
	if p > Options.MaxScreenPercentage {
		return Options.MaxScreenPercentage
	}
	return p
}
