package tier

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmbeddedCapabilityScore(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Score
		wantFound bool
	}{
		{"marker after vendor", "NVIDIA-3DMARK-14532)", 14532, true},
		{"marker in parentheses", "Radeon RX 6800 (3DMARK-17000)", 17000, true},
		{"trailing text", "GPU (3DMARK-42) rev 2", 42, true},
		{"zero score", "Stub (3DMARK-0)", 0, true},
		{"first closing paren after marker", "Intel (UHD) 3DMARK-1200) (x)", 1200, true},
		{"no marker", "Generic GPU", 0, false},
		{"empty", "", 0, false},
		{"lowercase marker is not matched", "gpu 3dmark-100)", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := ParseEmbeddedCapabilityScore(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmbeddedCapabilityScoreMalformed(t *testing.T) {
	tests := []struct {
		input    string
		fragment string
	}{
		{"X-3DMARK-abc)", "abc"},
		{"X-3DMARK-)", ""},
		{"X-3DMARK--12)", "-12"},
		{"X-3DMARK-+12)", "+12"},
		{"X-3DMARK-12 )", "12 "},
		{"X-3DMARK-1234", "1234"},
		{"X-3DMARK-99999999999999999999)", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, found, err := ParseEmbeddedCapabilityScore(tt.input)
			require.True(t, found)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			require.Equal(t, tt.input, perr.Input)
			require.Equal(t, tt.fragment, perr.Fragment)
		})
	}
}

func TestParseErrorUnwrapsStrconv(t *testing.T) {
	_, _, err := ParseEmbeddedCapabilityScore("X-3DMARK-abc)")
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Contains(t, err.Error(), `"abc"`)
}
