// compress.go - zlib compression of the raw pixel plane for IDAT.
package pngenc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// CompressionLevel selects the zlib effort used for IDAT.
// The zero value is the library default.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

func (l CompressionLevel) zlibLevel() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

func (l CompressionLevel) String() string {
	switch l {
	case NoCompression:
		return "none"
	case BestSpeed:
		return "speed"
	case BestCompression:
		return "best"
	default:
		return "default"
	}
}

// ParseCompressionLevel accepts "default", "none", "speed" or "best".
// An empty string is the default level.
func ParseCompressionLevel(s string) (CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultCompression, nil
	case "none", "store":
		return NoCompression, nil
	case "speed", "fast":
		return BestSpeed, nil
	case "best", "max":
		return BestCompression, nil
	default:
		return DefaultCompression, fmt.Errorf("invalid compression level %q: use default, none, speed or best", s)
	}
}

// CompressionError wraps a failure of the zlib compressor.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return "pngenc: compress pixel data: " + e.Err.Error()
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// Compress returns raw as a zlib stream (RFC 1950).
func Compress(raw []byte, level CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level.zlibLevel())
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, &CompressionError{Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &CompressionError{Err: err}
	}
	return buf.Bytes(), nil
}
