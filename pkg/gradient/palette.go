package gradient

import "fmt"

// MaxPaletteCount is the largest interpolation count for a palette.
// count+1 entries must fit the 256 indices of an 8-bit paletted PNG.
const MaxPaletteCount = 255

// BuildPalette interpolates each channel from start to stop independently and
// returns min(count, MaxPaletteCount)+1 colors. The first entry is start and
// the last is stop.
func BuildPalette(start, stop Color, count int) (Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: palette count %d", ErrInvalidCount, count)
	}
	count = min(count, MaxPaletteCount)

	r, err := Interpolate(int(start.R), int(stop.R), count)
	if err != nil {
		return nil, err
	}
	g, err := Interpolate(int(start.G), int(stop.G), count)
	if err != nil {
		return nil, err
	}
	b, err := Interpolate(int(start.B), int(stop.B), count)
	if err != nil {
		return nil, err
	}

	p := make(Palette, count+1)
	for i := range p {
		p[i] = Color{uint8(r[i]), uint8(g[i]), uint8(b[i])}
	}
	return p, nil
}
