// Package tier maps a GPU capability score to default graphics tiers.
//
// Tables are validated once when they are built and are immutable
// afterwards, so every function here is safe for concurrent use.
package tier

import (
	"fmt"
	"math"
)

// Score is a benchmark-like capability number. Zero or negative means
// the score is unknown and no tier should be selected.
type Score float64

// Known reports whether the score can drive a selection.
func (s Score) Known() bool {
	return s > 0
}

// Tier is one entry of a quality table. A score above the previous
// entry's Threshold and up to this Threshold selects Level. The first
// entry also catches every lower score, the last every higher one.
type Tier struct {
	Level     int
	Threshold Score
}

// ResolutionTier is one entry of a resolution table, selected by the
// same score ranges as Tier.
type ResolutionTier struct {
	Width     int
	Height    int
	Threshold Score
}

// Mode returns the resolution of the tier.
func (r ResolutionTier) Mode() Mode {
	return Mode{Width: r.Width, Height: r.Height}
}

// Mode is a display resolution.
type Mode struct {
	Width  int
	Height int
}

// Pixels returns Width*Height.
func (m Mode) Pixels() int {
	return m.Width * m.Height
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// QualityTable is an ascending sequence of quality tiers. Index 0 is the
// fallback tier.
type QualityTable struct {
	tiers []Tier
}

// NewQualityTable validates tiers and returns an immutable table.
func NewQualityTable(tiers ...Tier) (QualityTable, error) {
	const name = "quality"
	if len(tiers) == 0 {
		return QualityTable{}, &InvalidTableError{Table: name, Index: -1, Err: ErrEmptyTable}
	}
	for i, t := range tiers {
		if t.Level < 0 {
			return QualityTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrNegativeLevel}
		}
		if math.IsNaN(float64(t.Threshold)) {
			return QualityTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrNaNThreshold}
		}
		if i > 0 && t.Threshold <= tiers[i-1].Threshold {
			return QualityTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrThresholdOrder}
		}
	}
	return QualityTable{tiers: append([]Tier(nil), tiers...)}, nil
}

// MustQualityTable is NewQualityTable that panics on an invalid table.
// Intended for package-level defaults.
func MustQualityTable(tiers ...Tier) QualityTable {
	t, err := NewQualityTable(tiers...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of tiers.
func (t QualityTable) Len() int {
	return len(t.tiers)
}

// Tiers returns a copy of the table entries.
func (t QualityTable) Tiers() []Tier {
	return append([]Tier(nil), t.tiers...)
}

// ResolutionTable is an ascending sequence of resolution tiers. Index 0
// is the fallback tier.
type ResolutionTable struct {
	tiers []ResolutionTier
}

// NewResolutionTable validates tiers and returns an immutable table.
func NewResolutionTable(tiers ...ResolutionTier) (ResolutionTable, error) {
	const name = "resolution"
	if len(tiers) == 0 {
		return ResolutionTable{}, &InvalidTableError{Table: name, Index: -1, Err: ErrEmptyTable}
	}
	for i, t := range tiers {
		if t.Width <= 0 || t.Height <= 0 {
			return ResolutionTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrBadDimensions}
		}
		if math.IsNaN(float64(t.Threshold)) {
			return ResolutionTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrNaNThreshold}
		}
		if i > 0 && t.Threshold <= tiers[i-1].Threshold {
			return ResolutionTable{}, &InvalidTableError{Table: name, Index: i, Err: ErrThresholdOrder}
		}
	}
	return ResolutionTable{tiers: append([]ResolutionTier(nil), tiers...)}, nil
}

// MustResolutionTable is NewResolutionTable that panics on an invalid
// table.
func MustResolutionTable(tiers ...ResolutionTier) ResolutionTable {
	t, err := NewResolutionTable(tiers...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of tiers.
func (t ResolutionTable) Len() int {
	return len(t.tiers)
}

// Tiers returns a copy of the table entries.
func (t ResolutionTable) Tiers() []ResolutionTier {
	return append([]ResolutionTier(nil), t.tiers...)
}
