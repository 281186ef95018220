package systems

import (
	"errors"
	"log"

	"github.com/automoto/gfxtier/components"
	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/yohamta/donburi/ecs"
)

// upscaleFilters maps the user-facing method to the render filter.
// DLSS is handled separately because it replaces the filter pass.
var upscaleFilters = map[cfg.UpsamplingMethod]UpscaleFilter{
	cfg.UpsamplingCatmullRom: FilterCatmullRom,
	cfg.UpsamplingCAS:        FilterContrastAdaptiveSharpen,
	cfg.UpsamplingTAAU:       FilterTAAU,
	cfg.UpsamplingEASU:       FilterEdgeAdaptiveScalingUpres,
}

// ApplyOptions pushes the current options through host. On the first call
// it also detects the capability score and auto-selects resolution and
// quality from the configured tiers.
func ApplyOptions(e *ecs.ECS, host Host) {
	opts := GetOrCreateOptions(e)

	if !opts.Initialized {
		score := detectScore(opts, host.Device)
		updateRenderTargetResolution(opts, score, host.Modes)
		updateQualityLevel(opts, score)
		opts.Initialized = true
	}

	updateUpscalingMethod(opts)
	opts.ScreenPercentage = cfg.ClampScreenPercentage(opts.ScreenPercentage)
	opts.Keys = cfg.KeysFor(opts.Keyboard)

	log.Printf("Applying graphics options")

	sink := host.Sink
	sink.SetWindowMode(opts.WindowMode)
	if opts.Resolution.Width > 0 && opts.Resolution.Height > 0 {
		sink.SetResolution(opts.Resolution)
	}
	sink.SetQuality(opts.Quality)
	sink.SetUpscaling(upscaleSettings(opts))
	sink.SetScreenPercentage(opts.ScreenPercentage)

	log.Printf("Options: quality=%d (%s) resolution=%s upsampling=%s keyboard=%s window=%s screen=%d%%",
		opts.Quality, cfg.QualityName(opts.Quality), opts.Resolution, opts.Upsampling,
		opts.Keyboard, opts.WindowMode, opts.ScreenPercentage)
}

// detectScore reads the adapter name and extracts its embedded score.
// A malformed score is reported and treated as unknown.
func detectScore(opts *components.OptionsData, device DeviceNameProvider) tier.Score {
	if device == nil {
		return 0
	}
	name := device.DeviceName()
	score, _, err := tier.ParseEmbeddedCapabilityScore(name)
	if err != nil {
		var perr *tier.ParseError
		if errors.As(err, &perr) {
			log.Printf("Warning: Could not parse GPU score %q: %v", perr.Fragment, perr.Err)
		} else {
			log.Printf("Warning: Could not parse GPU score: %v", err)
		}
		score = 0
	}
	opts.DeviceName = name
	opts.Score = score
	log.Printf("GPU: %s - %v", name, score)
	return score
}

// updateRenderTargetResolution auto-selects the best known resolution for
// score and snaps it to a mode the display supports.
func updateRenderTargetResolution(opts *components.OptionsData, score tier.Score, modes ModeEnumerator) {
	target, ok := tier.SelectResolutionTier(score, cfg.Tiers.Resolution)
	if !ok {
		return
	}
	log.Printf("Auto selected resolution: %s", target)

	var candidates []tier.Mode
	if modes != nil {
		candidates = modes.SupportedModes()
	}
	best, err := tier.SnapToNearestSupported(target, candidates)
	if err != nil {
		log.Printf("Warning: Could not match resolution %s: %v", target, err)
		return
	}
	opts.Resolution = best
	log.Printf("Best matched resolution: %s", best)
}

// updateQualityLevel auto-selects the quality level for score.
func updateQualityLevel(opts *components.OptionsData, score tier.Score) {
	level, ok := tier.SelectQualityTier(score, cfg.Tiers.Quality)
	if !ok {
		return
	}
	opts.Quality = level
	log.Printf("Auto selected quality level: %d (%s)", level, cfg.QualityName(level))
}

// updateUpscalingMethod resolves DLSS and repairs unknown methods.
func updateUpscalingMethod(opts *components.OptionsData) {
	if !opts.Upsampling.Valid() {
		log.Printf("Warning: Unknown upsampling method %d, using %s", int(opts.Upsampling), cfg.Options.DefaultUpsampling)
		opts.Upsampling = cfg.Options.DefaultUpsampling
	}
	opts.DLSS = opts.Upsampling >= cfg.UpsamplingDLSS
}

func upscaleSettings(opts *components.OptionsData) UpscaleSettings {
	if opts.DLSS {
		return UpscaleSettings{
			Filter:        upscaleFilters[cfg.Options.DefaultUpsampling],
			DLSS:          true,
			DLSSQuality:   cfg.Options.DLSSQuality,
			DLSSSharpness: cfg.Options.DLSSSharpness,
		}
	}
	return UpscaleSettings{Filter: upscaleFilters[opts.Upsampling]}
}

// GetOrCreateOptions returns the singleton Options component, creating it
// with defaults if needed.
func GetOrCreateOptions(e *ecs.ECS) *components.OptionsData {
	if _, ok := components.Options.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Options))
		components.Options.SetValue(ent, defaultOptions())
	}

	ent, _ := components.Options.First(e.World)
	return components.Options.Get(ent)
}

func defaultOptions() components.OptionsData {
	return components.OptionsData{
		ScreenPercentage: cfg.Options.DefaultScreenPercentage,
		Upsampling:       cfg.Options.DefaultUpsampling,
		Keyboard:         cfg.Options.DefaultKeyboard,
		WindowMode:       cfg.Options.DefaultWindowMode,
		Keys:             cfg.KeysFor(cfg.Options.DefaultKeyboard),
	}
}

// RedetectOptions clears the initialized latch so the next apply runs
// capability detection again.
func RedetectOptions(e *ecs.ECS) {
	GetOrCreateOptions(e).Initialized = false
}
