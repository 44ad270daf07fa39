package gradient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name               string
		start, stop, count int
		want               []int
	}{
		{"descending thirds", 230, 180, 3, []int{230, 213, 197, 180}},
		{"identity", 0, 4, 4, []int{0, 1, 2, 3, 4}},
		{"single step", 7, 9, 1, []int{7, 9}},
		{"flat", 5, 5, 3, []int{5, 5, 5, 5}},
		{"tie rounds down to even", 0, 1, 2, []int{0, 0, 1}},
		{"tie rounds up to even", 0, 3, 2, []int{0, 2, 3}},
		{"negative tie to even zero", 0, -1, 2, []int{0, 0, -1}},
		{"negative tie to even two", 0, -3, 2, []int{0, -2, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(tt.start, tt.stop, tt.count)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInterpolateRejectsZeroCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := Interpolate(0, 255, count)
		require.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestInterpolateRejectsOverflowingInputs(t *testing.T) {
	_, err := Interpolate(0, 255, MaxExtent+1)
	require.ErrorIs(t, err, ErrInvalidCount)

	for _, b := range [][2]int{{MaxSample + 1, 0}, {0, -MaxSample - 1}} {
		_, err := Interpolate(b[0], b[1], 10)
		require.ErrorIs(t, err, ErrSampleRange, "bounds %v", b)
	}
}

func TestInterpolateLargestInputs(t *testing.T) {
	got, err := Interpolate(-MaxSample, MaxSample, 4)
	require.NoError(t, err)
	require.Equal(t, []int{-MaxSample, -MaxSample / 2, 0, MaxSample / 2, MaxSample}, got)
}

func TestInterpolateEndpointsAndMonotonic(t *testing.T) {
	bounds := []int{0, 1, 17, 128, 180, 230, 254, 255}
	counts := []int{1, 2, 3, 7, 149, 150, 255, 599}

	for _, start := range bounds {
		for _, stop := range bounds {
			for _, count := range counts {
				got, err := Interpolate(start, stop, count)
				require.NoError(t, err)
				require.Len(t, got, count+1)
				require.Equal(t, start, got[0])
				require.Equal(t, stop, got[count])

				for i := 1; i < len(got); i++ {
					if start <= stop {
						require.LessOrEqual(t, got[i-1], got[i], "start=%d stop=%d count=%d i=%d", start, stop, count, i)
					} else {
						require.GreaterOrEqual(t, got[i-1], got[i], "start=%d stop=%d count=%d i=%d", start, stop, count, i)
					}
				}
			}
		}
	}
}

func TestRoundHalfEven(t *testing.T) {
	tests := []struct{ num, den, want int }{
		{5, 2, 2},
		{7, 2, 4},
		{-5, 2, -2},
		{-7, 2, -4},
		{10, 3, 3},
		{11, 3, 4},
		{-10, 3, -3},
		{-11, 3, -4},
		{0, 9, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, roundHalfEven(tt.num, tt.den), "%d/%d", tt.num, tt.den)
	}
}
