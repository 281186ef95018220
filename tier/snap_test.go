package tier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapToNearestSupported(t *testing.T) {
	tests := []struct {
		name       string
		target     Mode
		candidates []Mode
		want       Mode
	}{
		{
			name:       "exact match",
			target:     Mode{1600, 900},
			candidates: []Mode{{1280, 720}, {1920, 1080}, {1600, 900}},
			want:       Mode{1600, 900},
		},
		{
			name:       "between modes rounds down",
			target:     Mode{1700, 950},
			candidates: []Mode{{1280, 720}, {1920, 1080}},
			want:       Mode{1280, 720},
		},
		{
			name:       "larger than every mode picks the widest",
			target:     Mode{7680, 4320},
			candidates: []Mode{{2560, 1440}, {1280, 720}, {3840, 2160}},
			want:       Mode{3840, 2160},
		},
		{
			name:       "smaller than every mode falls back to the narrowest",
			target:     Mode{640, 480},
			candidates: []Mode{{1920, 1080}, {1280, 720}, {1600, 900}},
			want:       Mode{1280, 720},
		},
		{
			name:       "equal widths keep input order",
			target:     Mode{1920, 1200},
			candidates: []Mode{{1920, 1200}, {1920, 1080}},
			want:       Mode{1920, 1080},
		},
		{
			name:       "single candidate",
			target:     Mode{1, 1},
			candidates: []Mode{{800, 600}},
			want:       Mode{800, 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SnapToNearestSupported(tt.target, tt.candidates)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSnapToNearestSupportedEmpty(t *testing.T) {
	_, err := SnapToNearestSupported(Mode{1920, 1080}, nil)
	require.ErrorIs(t, err, ErrEmptyCandidateSet)
}

func TestSnapDoesNotReorderCandidates(t *testing.T) {
	candidates := []Mode{{1920, 1080}, {1280, 720}}
	_, err := SnapToNearestSupported(Mode{1600, 900}, candidates)
	require.NoError(t, err)
	require.Equal(t, []Mode{{1920, 1080}, {1280, 720}}, candidates)
}

func TestSelectThenSnap(t *testing.T) {
	target, ok := resolutionTable(t).Select(9000)
	require.True(t, ok)

	got, err := SnapToNearestSupported(target, []Mode{{1280, 720}, {1600, 900}, {2560, 1440}})
	require.NoError(t, err)
	require.Equal(t, Mode{1600, 900}, got)
}
