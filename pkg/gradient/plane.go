// plane.go - Raw scanlines of palette indices for either axis.
package gradient

import (
	"fmt"
	"strings"

	"github.com/xob0t/GoGradient/pkg/pngenc"
)

// MaxExtent is the largest width or height a PNG header may carry.
const MaxExtent = 1<<31 - 1

// Axis is the direction along which the colors change.
type Axis int

const (
	// Vertical images are 1 pixel wide; color changes from top to bottom.
	Vertical Axis = iota
	// Horizontal images are 1 pixel tall; color changes from left to right.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "vertical"/"v" and "horizontal"/"h".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("invalid axis %q: use vertical or horizontal", s)
	}
}

// Dimensions returns the image width and height for a gradient of extent
// pixels along a.
func (a Axis) Dimensions(extent int) (width, height uint32) {
	if a == Horizontal {
		return uint32(extent), 1
	}
	return 1, uint32(extent)
}

func checkExtent(extent int) error {
	if extent < 1 || extent > MaxExtent {
		return fmt.Errorf("%w: extent %d outside 1..%d", ErrInvalidDimension, extent, MaxExtent)
	}
	return nil
}

// pixelIndices returns extent palette indices spanning 0..min(extent-1, 255).
func pixelIndices(extent int) ([]int, error) {
	if extent == 1 {
		return []int{0}, nil
	}
	return Interpolate(0, min(extent-1, MaxPaletteCount), extent-1)
}

// BuildPixelPlane returns the unfiltered scanlines of a gradient of extent
// pixels along axis. Every scanline starts with filter type 0.
//
// A vertical plane has extent scanlines of one pixel; a horizontal plane has a
// single scanline of extent pixels.
func BuildPixelPlane(axis Axis, extent int) ([]byte, error) {
	if err := checkExtent(extent); err != nil {
		return nil, err
	}
	idx, err := pixelIndices(extent)
	if err != nil {
		return nil, err
	}

	switch axis {
	case Vertical:
		plane := make([]byte, 0, 2*extent)
		for _, v := range idx {
			plane = append(plane, pngenc.FilterNone, byte(v))
		}
		return plane, nil
	case Horizontal:
		plane := make([]byte, 0, 1+extent)
		plane = append(plane, pngenc.FilterNone)
		for _, v := range idx {
			plane = append(plane, byte(v))
		}
		return plane, nil
	default:
		return nil, fmt.Errorf("build pixel plane: unknown axis %v", axis)
	}
}
