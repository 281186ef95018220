package systems

import (
	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
)

// DeviceNameProvider reports the graphics adapter name, which may embed a
// benchmark score.
type DeviceNameProvider interface {
	DeviceName() string
}

// ModeEnumerator lists the display modes supported by the active output.
type ModeEnumerator interface {
	SupportedModes() []tier.Mode
}

// UpscaleFilter is the filter used to upscale the dynamic resolution
// render target
type UpscaleFilter int

const (
	FilterCatmullRom UpscaleFilter = iota
	FilterContrastAdaptiveSharpen
	FilterTAAU
	FilterEdgeAdaptiveScalingUpres
)

var upscaleFilterNames = [...]string{"CatmullRom", "ContrastAdaptiveSharpen", "TAAU", "EdgeAdaptiveScalingUpres"}

func (f UpscaleFilter) String() string {
	if f >= 0 && int(f) < len(upscaleFilterNames) {
		return upscaleFilterNames[f]
	}
	return "Unknown"
}

// UpscaleSettings is what the renderer needs to configure upscaling.
// Filter is ignored while DLSS is set.
type UpscaleSettings struct {
	Filter        UpscaleFilter
	DLSS          bool
	DLSSQuality   int
	DLSSSharpness float64
}

// SettingsSink applies selected options to the rendering backend
type SettingsSink interface {
	SetWindowMode(mode cfg.WindowMode)
	SetResolution(mode tier.Mode)
	SetQuality(level int)
	SetUpscaling(u UpscaleSettings)
	SetScreenPercentage(pct int)
}

// Host groups the collaborators ApplyOptions talks to.
type Host struct {
	Device DeviceNameProvider
	Modes  ModeEnumerator
	Sink   SettingsSink
}
