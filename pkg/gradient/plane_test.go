package gradient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPixelPlaneVertical(t *testing.T) {
	plane, err := BuildPixelPlane(Vertical, 150)
	require.NoError(t, err)
	require.Len(t, plane, 300)
	for row := 0; row < 150; row++ {
		require.Equal(t, byte(0), plane[2*row], "filter byte of row %d", row)
		require.Equal(t, byte(row), plane[2*row+1], "index of row %d", row)
	}
}

func TestBuildPixelPlaneHorizontal(t *testing.T) {
	plane, err := BuildPixelPlane(Horizontal, 600)
	require.NoError(t, err)
	require.Len(t, plane, 601)
	require.Equal(t, byte(0), plane[0], "filter byte")

	idx := plane[1:]
	require.Equal(t, byte(0), idx[0])
	require.Equal(t, byte(255), idx[599])

	seen := make(map[byte]bool)
	for i, v := range idx {
		if i > 0 {
			require.LessOrEqual(t, idx[i-1], v)
		}
		seen[v] = true
	}
	require.Len(t, seen, 256, "indices span the whole clamped palette")
}

func TestBuildPixelPlaneSinglePixel(t *testing.T) {
	v, err := BuildPixelPlane(Vertical, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, v)

	h, err := BuildPixelPlane(Horizontal, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, h)
}

func TestBuildPixelPlaneRejectsBadExtent(t *testing.T) {
	for _, extent := range []int{0, -1, -600} {
		for _, axis := range []Axis{Vertical, Horizontal} {
			_, err := BuildPixelPlane(axis, extent)
			require.ErrorIs(t, err, ErrInvalidDimension, "%s %d", axis, extent)
		}
	}
}

func TestBuildPixelPlaneUnknownAxis(t *testing.T) {
	_, err := BuildPixelPlane(Axis(7), 10)
	require.Error(t, err)
}

func TestPixelIndicesWithinPalette(t *testing.T) {
	extents := []int{1, 2, 3, 10, 149, 150, 255, 256, 257, 300, 600, 1024}
	for _, extent := range extents {
		palette, err := BuildPalette(lightGray, midGray, extent)
		require.NoError(t, err)

		for _, axis := range []Axis{Vertical, Horizontal} {
			plane, err := BuildPixelPlane(axis, extent)
			require.NoError(t, err)

			w, h := axis.Dimensions(extent)
			require.Len(t, plane, int(h)*(int(w)+1))
			for row := 0; row < int(h); row++ {
				line := plane[row*(int(w)+1) : (row+1)*(int(w)+1)]
				require.Equal(t, byte(0), line[0])
				for _, v := range line[1:] {
					require.Less(t, int(v), len(palette), "%s extent %d", axis, extent)
				}
			}
		}
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{
		"vertical":   Vertical,
		"V":          Vertical,
		"horizontal": Horizontal,
		" h ":        Horizontal,
	} {
		got, err := ParseAxis(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseAxis("diagonal")
	require.Error(t, err)
}

func TestAxisDimensions(t *testing.T) {
	w, h := Vertical.Dimensions(150)
	require.Equal(t, [2]uint32{1, 150}, [2]uint32{w, h})
	w, h = Horizontal.Dimensions(600)
	require.Equal(t, [2]uint32{600, 1}, [2]uint32{w, h})
	require.Equal(t, "vertical", Vertical.String())
	require.Equal(t, "horizontal", Horizontal.String())
	require.Equal(t, "Axis(9)", Axis(9).String())
}
