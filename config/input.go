package config

import "github.com/hajimehoshi/ebiten/v2"

// MovementKeys holds the first-person movement bindings for one scheme
type MovementKeys struct {
	Forward ebiten.Key
	Left    ebiten.Key
	Back    ebiten.Key
	Right   ebiten.Key
}

// InputConfig holds the keyboard scheme layouts
type InputConfig struct {
	Schemes map[KeyboardScheme]MovementKeys
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Schemes: map[KeyboardScheme]MovementKeys{
			KeyboardWASD: {Forward: ebiten.KeyW, Left: ebiten.KeyA, Back: ebiten.KeyS, Right: ebiten.KeyD},
			KeyboardIJKL: {Forward: ebiten.KeyI, Left: ebiten.KeyJ, Back: ebiten.KeyK, Right: ebiten.KeyL},
			// AZERTY layout
			KeyboardZQSD: {Forward: ebiten.KeyZ, Left: ebiten.KeyQ, Back: ebiten.KeyS, Right: ebiten.KeyD},
		},
	}
}

// KeysFor returns the bindings for scheme, falling back to WASD for
// unknown values.
func KeysFor(scheme KeyboardScheme) MovementKeys {
	if keys, ok := Input.Schemes[scheme]; ok {
		return keys
	}
	return Input.Schemes[KeyboardWASD]
}
