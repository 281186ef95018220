package config

import "github.com/automoto/gfxtier/tier"

// TierConfig holds the capability tables used for automatic option
// selection. Both tables must stay in ascending threshold order.
type TierConfig struct {
	Quality    tier.QualityTable
	Resolution tier.ResolutionTable
}

// Tiers is the global tier configuration
var Tiers TierConfig

// QualityNames labels the quality levels selectable from Tiers.Quality.
var QualityNames = []string{"Low", "Medium", "High"}

// QualityName returns the label for a quality level.
func QualityName(level int) string {
	if level >= 0 && level < len(QualityNames) {
		return QualityNames[level]
	}
	return "Unknown"
}

func init() {
	Tiers = DefaultTiers()
}

// DefaultTiers returns the built-in tables.
func DefaultTiers() TierConfig {
	return TierConfig{
		Quality: tier.MustQualityTable(
			tier.Tier{Level: 0, Threshold: 4000},
			tier.Tier{Level: 1, Threshold: 10000},
			tier.Tier{Level: 2, Threshold: 14000},
		),
		Resolution: tier.MustResolutionTable(
			tier.ResolutionTier{Width: 1280, Height: 720, Threshold: 2000},
			tier.ResolutionTier{Width: 1600, Height: 900, Threshold: 8000},
			tier.ResolutionTier{Width: 1920, Height: 1080, Threshold: 14000},
			tier.ResolutionTier{Width: 2560, Height: 1440, Threshold: 18000},
			tier.ResolutionTier{Width: 3840, Height: 2160, Threshold: 24000},
		),
	}
}
