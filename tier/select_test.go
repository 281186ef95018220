package tier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func qualityTable(t *testing.T) QualityTable {
	t.Helper()
	table, err := NewQualityTable(
		Tier{Level: 0, Threshold: 4000},
		Tier{Level: 1, Threshold: 10000},
		Tier{Level: 2, Threshold: 14000},
	)
	require.NoError(t, err)
	return table
}

func resolutionTable(t *testing.T) ResolutionTable {
	t.Helper()
	table, err := NewResolutionTable(
		ResolutionTier{Width: 1280, Height: 720, Threshold: 2000},
		ResolutionTier{Width: 1600, Height: 900, Threshold: 8000},
		ResolutionTier{Width: 1920, Height: 1080, Threshold: 14000},
		ResolutionTier{Width: 2560, Height: 1440, Threshold: 18000},
		ResolutionTier{Width: 3840, Height: 2160, Threshold: 24000},
	)
	require.NoError(t, err)
	return table
}

func TestSelectQualityTierBoundaries(t *testing.T) {
	table := qualityTable(t)

	tests := []struct {
		name  string
		score Score
		want  int
	}{
		{"below first threshold", 3999, 0},
		{"equal to first threshold does not advance", 4000, 0},
		{"just past first threshold", 4001, 1},
		{"equal to second threshold", 10000, 1},
		{"just past second threshold", 10001, 2},
		{"equal to last threshold", 14000, 2},
		{"above every threshold", 20000, 2},
		{"tiny positive score", 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectQualityTier(tt.score, table)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSelectQualityTierUnknownScore(t *testing.T) {
	table := qualityTable(t)

	for _, s := range []Score{0, -5, -0.01} {
		_, ok := SelectQualityTier(s, table)
		require.False(t, ok, "score %v should not select a tier", s)
	}
}

func TestSelectQualityTierZeroValueTable(t *testing.T) {
	_, ok := SelectQualityTier(5000, QualityTable{})
	require.False(t, ok)
}

func TestSelectQualityTierMonotonic(t *testing.T) {
	table := qualityTable(t)

	prev := -1
	for s := Score(1); s <= 30000; s += 250 {
		got, ok := table.Select(s)
		require.True(t, ok)
		if got < prev {
			t.Fatalf("score %v selected %d after %d", s, got, prev)
		}
		prev = got
	}
}

func TestSelectQualityTierUsesLevelValues(t *testing.T) {
	table, err := NewQualityTable(
		Tier{Level: 3, Threshold: 100},
		Tier{Level: 5, Threshold: 200},
	)
	require.NoError(t, err)

	got, ok := table.Select(150)
	require.True(t, ok)
	require.Equal(t, 5, got)
}

func TestSelectResolutionTier(t *testing.T) {
	table := resolutionTable(t)

	tests := []struct {
		score Score
		want  Mode
	}{
		{1000, Mode{1280, 720}},
		{2000, Mode{1280, 720}},
		{2001, Mode{1600, 900}},
		{8000, Mode{1600, 900}},
		{9000, Mode{1920, 1080}},
		{18500, Mode{3840, 2160}},
		{50000, Mode{3840, 2160}},
	}

	for _, tt := range tests {
		got, ok := SelectResolutionTier(tt.score, table)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "score %v", tt.score)
	}

	_, ok := SelectResolutionTier(0, table)
	require.False(t, ok)
	_, ok = SelectResolutionTier(-5, table)
	require.False(t, ok)
}

func TestSelectIsIdempotent(t *testing.T) {
	q := qualityTable(t)
	r := resolutionTable(t)

	for _, s := range []Score{-1, 0, 3999, 4000, 4001, 9000, 14000, 99999} {
		l1, ok1 := q.Select(s)
		l2, ok2 := q.Select(s)
		require.Equal(t, l1, l2)
		require.Equal(t, ok1, ok2)

		m1, ok1 := r.Select(s)
		m2, ok2 := r.Select(s)
		require.Equal(t, m1, m2)
		require.Equal(t, ok1, ok2)
	}
}

func TestNewQualityTableRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []Tier
		index   int
		wantErr error
	}{
		{"empty", nil, -1, ErrEmptyTable},
		{"descending", []Tier{{0, 10}, {1, 5}}, 1, ErrThresholdOrder},
		{"duplicate threshold", []Tier{{0, 10}, {1, 10}}, 1, ErrThresholdOrder},
		{"negative level", []Tier{{0, 10}, {-1, 20}}, 1, ErrNegativeLevel},
		{"NaN threshold", []Tier{{0, 10}, {1, Score(math.NaN())}, {2, 5}}, 1, ErrNaNThreshold},
		{"leading NaN threshold", []Tier{{0, Score(math.NaN())}, {1, 5}}, 0, ErrNaNThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQualityTable(tt.tiers...)
			require.ErrorIs(t, err, tt.wantErr)

			var tableErr *InvalidTableError
			require.True(t, errors.As(err, &tableErr))
			require.Equal(t, "quality", tableErr.Table)
			require.Equal(t, tt.index, tableErr.Index)
		})
	}
}

func TestNewResolutionTableRejectsInvalid(t *testing.T) {
	_, err := NewResolutionTable()
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewResolutionTable(ResolutionTier{Width: 0, Height: 720, Threshold: 1})
	require.ErrorIs(t, err, ErrBadDimensions)

	_, err = NewResolutionTable(
		ResolutionTier{Width: 1280, Height: 720, Threshold: 5},
		ResolutionTier{Width: 1920, Height: 1080, Threshold: 5},
	)
	require.ErrorIs(t, err, ErrThresholdOrder)
	require.EqualError(t, err, "invalid resolution table at index 1: thresholds must be strictly ascending")

	_, err = NewResolutionTable(
		ResolutionTier{Width: 1280, Height: 720, Threshold: 5},
		ResolutionTier{Width: 1920, Height: 1080, Threshold: Score(math.NaN())},
	)
	require.ErrorIs(t, err, ErrNaNThreshold)
}

func TestTableIsCopiedOnConstruction(t *testing.T) {
	tiers := []Tier{{0, 10}, {1, 20}}
	table, err := NewQualityTable(tiers...)
	require.NoError(t, err)

	tiers[1].Level = 9
	out := table.Tiers()
	out[0].Level = 7

	require.Equal(t, []Tier{{0, 10}, {1, 20}}, table.Tiers())
}

func TestMustQualityTablePanics(t *testing.T) {
	require.Panics(t, func() { MustQualityTable() })
	require.NotPanics(t, func() { MustResolutionTable(ResolutionTier{1, 1, 1}) })
}
