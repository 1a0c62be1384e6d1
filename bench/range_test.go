package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRangeMultiplicativeStepping verifies the documented stepping rule:
// multiply from start by the ratio, then append the limit.
func TestRangeMultiplicativeStepping(t *testing.T) {
	sizes, err := Range(8, 8192, WithRatio(8))
	require.NoError(t, err)
	require.Equal(t, []int{8, 64, 512, 4096, 8192}, sizes)
}

func TestRangeDefaultRatio(t *testing.T) {
	sizes, err := Range(8, 8192)
	require.NoError(t, err)
	require.Equal(t, []int{8, 64, 512, 4096, 8192}, sizes)
}

func TestRangeShapes(t *testing.T) {
	tests := []struct {
		name  string
		start int
		limit int
		ratio int
		want  []int
	}{
		{name: "ratio two", start: 2, limit: 16, ratio: 2, want: []int{2, 4, 8, 16}},
		{name: "limit not a step multiple", start: 2, limit: 100, ratio: 4, want: []int{2, 8, 32, 100}},
		{name: "start equals limit", start: 8, limit: 8, ratio: 8, want: []int{8}},
		{name: "limit below first step", start: 8, limit: 9, ratio: 8, want: []int{8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes, err := Range(tt.start, tt.limit, WithRatio(tt.ratio))
			require.NoError(t, err)
			require.Equal(t, tt.want, sizes)
		})
	}
}

func TestRangeInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		limit   int
		ratio   int
		errPart string
	}{
		{name: "zero start", start: 0, limit: 100, ratio: 8, errPart: "start must be greater than 0"},
		{name: "negative start", start: -8, limit: 100, ratio: 8, errPart: "start must be greater than 0"},
		{name: "limit below start", start: 8, limit: 4, ratio: 8, errPart: "must not be less than start"},
		{name: "ratio of one", start: 8, limit: 100, ratio: 1, errPart: "ratio must be at least 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Range(tt.start, tt.limit, WithRatio(tt.ratio))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errPart)
		})
	}
}
