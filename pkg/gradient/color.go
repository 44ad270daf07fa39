// color.go - RGB colors, palettes and color parsing.
package gradient

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color with full alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats c as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is an ordered list of colors; pixel value i selects entry i.
type Palette []Color

// MarshalBinary returns the PLTE chunk content: R, G, B per entry.
func (p Palette) MarshalBinary() ([]byte, error) {
	data := make([]byte, 3*len(p))
	for i, c := range p {
		data[i*3] = c.R
		data[i*3+1] = c.G
		data[i*3+2] = c.B
	}
	return data, nil
}

// ParseColor parses a color string. Accepted forms:
//
//	#rrggbb, rrggbb, #rgb   hex
//	230,230,230            decimal channels
//	lightgray              SVG 1.1 color keyword
//	random, ""             a random color
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "random") {
		var buf [3]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return Color{}, fmt.Errorf("random color: %w", err)
		}
		return Color{buf[0], buf[1], buf[2]}, nil
	}

	if strings.Contains(s, ",") {
		return parseTriple(s)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B}, nil
	}

	return parseHex(s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseTriple(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: expected 3 channels, got %d", s, len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid channel %d in %q: %w", i, s, err)
		}
		ch[i] = uint8(v)
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}

func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb, r,g,b or a color name", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
