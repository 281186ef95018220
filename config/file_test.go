package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/gfxtier/tier"
	"github.com/stretchr/testify/require"
)

func TestParseTiersOverridesQuality(t *testing.T) {
	doc := []byte(`
quality:
  - {level: 0, threshold: 1000}
  - {level: 1, threshold: 3000}
`)
	cfg, err := ParseTiers(doc, DefaultTiers())
	require.NoError(t, err)

	require.Equal(t, []tier.Tier{{Level: 0, Threshold: 1000}, {Level: 1, Threshold: 3000}}, cfg.Quality.Tiers())
	// resolution section omitted: built-in table kept
	require.Equal(t, DefaultTiers().Resolution.Tiers(), cfg.Resolution.Tiers())

	level, ok := cfg.Quality.Select(2000)
	require.True(t, ok)
	require.Equal(t, 1, level)
}

func TestParseTiersOverridesResolution(t *testing.T) {
	doc := []byte(`
resolution:
  - width: 800
    height: 600
    threshold: 10
  - width: 1024
    height: 768
    threshold: 20
`)
	cfg, err := ParseTiers(doc, DefaultTiers())
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Resolution.Len())

	mode, ok := cfg.Resolution.Select(15)
	require.True(t, ok)
	require.Equal(t, tier.Mode{Width: 1024, Height: 768}, mode)
}

func TestParseTiersRejectsUnorderedTable(t *testing.T) {
	doc := []byte(`
quality:
  - {level: 0, threshold: 5000}
  - {level: 1, threshold: 2000}
`)
	_, err := ParseTiers(doc, DefaultTiers())
	require.ErrorIs(t, err, tier.ErrThresholdOrder)
}

func TestParseTiersRejectsNaNThreshold(t *testing.T) {
	doc := []byte(`
quality:
  - {level: 0, threshold: 10}
  - {level: 1, threshold: .nan}
  - {level: 2, threshold: 5}
`)
	_, err := ParseTiers(doc, DefaultTiers())
	require.ErrorIs(t, err, tier.ErrNaNThreshold)

	doc = []byte("resolution:\n  - {width: 1280, height: 720, threshold: .NaN}\n")
	_, err = ParseTiers(doc, DefaultTiers())
	require.ErrorIs(t, err, tier.ErrNaNThreshold)
}

func TestParseTiersRejectsBadYAML(t *testing.T) {
	_, err := ParseTiers([]byte("quality: [oops"), DefaultTiers())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode tiers")
}

func TestLoadTiers(t *testing.T) {
	cfg, err := LoadTiers("")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Quality.Len())

	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quality:\n  - {level: 4, threshold: 1}\n"), 0o644))

	cfg, err = LoadTiers(path)
	require.NoError(t, err)
	require.Equal(t, []tier.Tier{{Level: 4, Threshold: 1}}, cfg.Quality.Tiers())

	_, err = LoadTiers(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTiersFromEnv(t *testing.T) {
	saved := Tiers
	t.Cleanup(func() { Tiers = saved })

	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quality:\n  - {level: 2, threshold: 7}\n"), 0o644))
	t.Setenv(Options.TierFileEnv, path)

	require.NoError(t, LoadTiersFromEnv())
	require.Equal(t, []tier.Tier{{Level: 2, Threshold: 7}}, Tiers.Quality.Tiers())

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	Tiers = DefaultTiers()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	t.Setenv(Options.TierFileEnv, missing)
	require.NoError(t, LoadTiersFromEnv())
	require.Contains(t, logs.String(), "Warning: Tier file "+missing+" not found")
	require.Equal(t, DefaultTiers().Quality.Tiers(), Tiers.Quality.Tiers())
}
