package systems

import (
	"github.com/automoto/gfxtier/components"
	cfg "github.com/automoto/gfxtier/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const screenPercentageStep = 10

// optionKeys are the keys polled by the options system, in handling order.
var optionKeys = []ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF5,
	ebiten.KeyMinus, ebiten.KeyEqual,
}

// NewUpdateOptions returns the system that applies options on the first
// frame and again after every change made from the keyboard.
func NewUpdateOptions(host Host) ecs.System {
	pending := true
	return func(e *ecs.ECS) {
		opts := GetOrCreateOptions(e)

		for _, key := range optionKeys {
			if inpututil.IsKeyJustPressed(key) && handleOptionKey(e, opts, key) {
				pending = true
			}
		}

		if pending {
			ApplyOptions(e, host)
			SaveCurrentOptions(opts)
			pending = false
		}
	}
}

// handleOptionKey changes one option for key. It reports whether the
// options need to be applied again.
func handleOptionKey(e *ecs.ECS, opts *components.OptionsData, key ebiten.Key) bool {
	switch key {
	case ebiten.KeyF1:
		opts.Upsampling = (opts.Upsampling + 1) % (cfg.UpsamplingDLSS + 1)
	case ebiten.KeyF2:
		n := cfg.KeyboardScheme(len(cfg.Input.Schemes))
		opts.Keyboard = (opts.Keyboard + 1) % n
	case ebiten.KeyF3:
		opts.WindowMode = (opts.WindowMode + 1) % (cfg.WindowWindowed + 1)
	case ebiten.KeyF5:
		RedetectOptions(e)
	case ebiten.KeyMinus:
		opts.ScreenPercentage = cfg.ClampScreenPercentage(opts.ScreenPercentage - screenPercentageStep)
	case ebiten.KeyEqual:
		opts.ScreenPercentage = cfg.ClampScreenPercentage(opts.ScreenPercentage + screenPercentageStep)
	default:
		return false
	}
	return true
}
