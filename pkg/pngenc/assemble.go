// assemble.go - Signature + IHDR + PLTE + IDAT + IEND.
package pngenc

import (
	"encoding/binary"
	"fmt"
)

// Header returns the 13-byte IHDR payload for an 8-bit paletted image.
func Header(width, height uint32) []byte {
	b := make([]byte, 0, 13)
	b = binary.BigEndian.AppendUint32(b, width)
	b = binary.BigEndian.AppendUint32(b, height)
	return append(b, BitDepth, ColorTypePaletted, CompressionMethod, FilterMethod, InterlaceMethod)
}

// Assemble builds a complete PNG file.
//
// plte is the PLTE content (3 bytes per entry) and plane the unfiltered
// scanlines, each prefixed with its filter type byte. plane is compressed
// into a single IDAT chunk.
func Assemble(width, height uint32, plte, plane []byte, level CompressionLevel) ([]byte, error) {
	if err := checkLayout(width, height, plte, plane); err != nil {
		return nil, err
	}

	idat, err := Compress(plane, level)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(Signature)+4*12+13+len(plte)+len(idat))
	out = append(out, Signature[:]...)
	out = append(out, EncodeChunk(TypeIHDR, Header(width, height))...)
	out = append(out, EncodeChunk(TypePLTE, plte)...)
	out = append(out, EncodeChunk(TypeIDAT, idat)...)
	out = append(out, EncodeChunk(TypeIEND, nil)...)
	return out, nil
}

func checkLayout(width, height uint32, plte, plane []byte) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: zero dimension %dx%d", ErrMalformedImage, width, height)
	}
	if len(plte) == 0 || len(plte)%3 != 0 || len(plte)/3 > MaxPaletteEntries {
		return fmt.Errorf("%w: palette of %d bytes", ErrMalformedImage, len(plte))
	}
	if want := uint64(height) * (uint64(width) + 1); uint64(len(plane)) != want {
		return fmt.Errorf("%w: pixel plane has %d bytes, %dx%d needs %d", ErrMalformedImage, len(plane), width, height, want)
	}

	entries := len(plte) / 3
	stride := int(width) + 1
	for row := 0; row < int(height); row++ {
		line := plane[row*stride : (row+1)*stride]
		if line[0] != FilterNone {
			return fmt.Errorf("%w: scanline %d has filter type %d", ErrMalformedImage, row, line[0])
		}
		for x, idx := range line[1:] {
			if int(idx) >= entries {
				return fmt.Errorf("%w: pixel (%d,%d) references index %d of a %d-entry palette", ErrMalformedImage, x, row, idx, entries)
			}
		}
	}
	return nil
}
