// Package pngenc assembles minimal indexed-color PNG files.
//
// Every file has the same fixed layout: signature, IHDR, PLTE, a single IDAT
// and IEND. No ancillary chunks are written and interlacing is never used.
package pngenc

import "errors"

// Signature is the 8-byte magic that opens every PNG file.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Fixed IHDR fields.
const (
	BitDepth          byte = 8
	ColorTypePaletted byte = 3
	CompressionMethod byte = 0 // deflate
	FilterMethod      byte = 0 // adaptive, five basic types
	InterlaceMethod   byte = 0 // none
)

// FilterNone is the per-scanline filter type byte for unfiltered rows.
const FilterNone byte = 0

// MaxPaletteEntries is the largest palette an 8-bit indexed image can address.
const MaxPaletteEntries = 256

// ErrMalformedImage reports dimensions, palette and pixel data that do not
// describe the same image.
var ErrMalformedImage = errors.New("pngenc: malformed image")
