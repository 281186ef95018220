package components

import (
	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/tier"
	"github.com/yohamta/donburi"
)

// OptionsData stores the graphics options owned by the running game
type OptionsData struct {
	// Initialized gates capability based auto-selection so it only runs
	// on the first apply.
	Initialized bool

	// Detection results from the first apply
	DeviceName string
	Score      tier.Score

	// Current settings values
	Quality          int
	Resolution       tier.Mode
	ScreenPercentage int
	Upsampling       cfg.UpsamplingMethod
	Keyboard         cfg.KeyboardScheme
	WindowMode       cfg.WindowMode

	// Derived on every apply
	Keys cfg.MovementKeys
	DLSS bool
}

// Options is the component type for graphics options state
var Options = donburi.NewComponentType[OptionsData]()
