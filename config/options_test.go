package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestKeysFor(t *testing.T) {
	require.Equal(t, ebiten.KeyW, KeysFor(KeyboardWASD).Forward)
	require.Equal(t, ebiten.KeyJ, KeysFor(KeyboardIJKL).Left)
	require.Equal(t, ebiten.KeyQ, KeysFor(KeyboardZQSD).Left)
	require.Equal(t, KeysFor(KeyboardWASD), KeysFor(KeyboardScheme(42)))
}

func TestClampScreenPercentage(t *testing.T) {
	require.Equal(t, 50, ClampScreenPercentage(10))
	require.Equal(t, 100, ClampScreenPercentage(100))
	require.Equal(t, 200, ClampScreenPercentage(500))
}

func TestEnumNames(t *testing.T) {
	require.Equal(t, "FSR", UpsamplingEASU.String())
	require.Equal(t, "Unknown", UpsamplingMethod(9).String())
	require.False(t, UpsamplingMethod(-1).Valid())
	require.Equal(t, "ZQSD", KeyboardZQSD.String())
	require.Equal(t, "Maximized Window", WindowMaximized.String())
	require.False(t, WindowMode(3).Valid())
	require.Equal(t, "High", QualityName(2))
	require.Equal(t, "Unknown", QualityName(-1))
}

func TestDefaultTiersAreValid(t *testing.T) {
	cfg := DefaultTiers()
	require.Equal(t, 3, cfg.Quality.Len())
	require.Equal(t, 5, cfg.Resolution.Len())
	require.Len(t, QualityNames, cfg.Quality.Len())
}
