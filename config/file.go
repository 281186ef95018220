package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/automoto/gfxtier/tier"
	"gopkg.in/yaml.v3"
)

// TierFile is the YAML layout of a tier override file:
//
//	quality:
//	  - {level: 0, threshold: 4000}
//	resolution:
//	  - {width: 1280, height: 720, threshold: 2000}
//
// A section left out keeps the built-in table.
type TierFile struct {
	Quality []struct {
		Level     int     `yaml:"level"`
		Threshold float64 `yaml:"threshold"`
	} `yaml:"quality"`
	Resolution []struct {
		Width     int     `yaml:"width"`
		Height    int     `yaml:"height"`
		Threshold float64 `yaml:"threshold"`
	} `yaml:"resolution"`
}

// ParseTiers decodes a tier override document on top of base.
func ParseTiers(data []byte, base TierConfig) (TierConfig, error) {
	var f TierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return TierConfig{}, fmt.Errorf("decode tiers: %w", err)
	}

	out := base
	if len(f.Quality) > 0 {
		tiers := make([]tier.Tier, 0, len(f.Quality))
		for _, q := range f.Quality {
			tiers = append(tiers, tier.Tier{Level: q.Level, Threshold: tier.Score(q.Threshold)})
		}
		t, err := tier.NewQualityTable(tiers...)
		if err != nil {
			return TierConfig{}, err
		}
		out.Quality = t
	}
	if len(f.Resolution) > 0 {
		tiers := make([]tier.ResolutionTier, 0, len(f.Resolution))
		for _, r := range f.Resolution {
			tiers = append(tiers, tier.ResolutionTier{Width: r.Width, Height: r.Height, Threshold: tier.Score(r.Threshold)})
		}
		t, err := tier.NewResolutionTable(tiers...)
		if err != nil {
			return TierConfig{}, err
		}
		out.Resolution = t
	}
	return out, nil
}

// LoadTiers reads a tier override file on top of the built-in tables.
// An empty path returns the defaults.
func LoadTiers(path string) (TierConfig, error) {
	if path == "" {
		return DefaultTiers(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return TierConfig{}, fmt.Errorf("read tiers %s: %w", path, err)
	}
	cfg, err := ParseTiers(data, DefaultTiers())
	if err != nil {
		return TierConfig{}, fmt.Errorf("load tiers %s: %w", path, err)
	}
	return cfg, nil
}

// LoadTiersFromEnv replaces Tiers with the file named by
// Options.TierFileEnv, if set. A missing file is logged and the built-in
// tables stay in use.
func LoadTiersFromEnv() error {
	path := os.Getenv(Options.TierFileEnv)
	if path == "" {
		return nil
	}
	cfg, err := LoadTiers(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: Tier file %s not found, using built-in tables", path)
		return nil
	}
	if err != nil {
		return err
	}
	Tiers = cfg
	return nil
}
