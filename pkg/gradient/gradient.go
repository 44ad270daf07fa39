// Package gradient renders linear two-color gradients as indexed-color PNG
// files.
//
// A gradient is one pixel thick along its cross axis. The palette holds the
// interpolated colors and each pixel stores an index into it, so the encoded
// file stays tiny regardless of extent.
package gradient

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/xob0t/GoGradient/pkg/pngenc"
	"github.com/xob0t/GoGradient/pkg/sink"
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Call it before generating.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}

// Config describes one gradient image.
type Config struct {
	Axis        Axis
	Start       Color
	Stop        Color
	Extent      int                     // Pixels along Axis (height if vertical, width if horizontal)
	Compression pngenc.CompressionLevel // IDAT zlib level (default: library default)
}

// Image is a built but not yet encoded gradient.
type Image struct {
	Width, Height uint32
	Palette       Palette
	Pixels        []byte // Scanlines, each prefixed with its filter byte
}

// Build validates cfg and computes the palette and pixel plane.
func Build(cfg Config) (*Image, error) {
	if err := checkExtent(cfg.Extent); err != nil {
		return nil, err
	}

	palette, err := BuildPalette(cfg.Start, cfg.Stop, cfg.Extent)
	if err != nil {
		return nil, err
	}
	pixels, err := BuildPixelPlane(cfg.Axis, cfg.Extent)
	if err != nil {
		return nil, err
	}

	w, h := cfg.Axis.Dimensions(cfg.Extent)
	return &Image{Width: w, Height: h, Palette: palette, Pixels: pixels}, nil
}

// Encode assembles img into a complete PNG file.
func (img *Image) Encode(level pngenc.CompressionLevel) ([]byte, error) {
	plte, err := img.Palette.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return pngenc.Assemble(img.Width, img.Height, plte, img.Pixels, level)
}

// Render returns the PNG bytes for cfg.
func Render(cfg Config) ([]byte, error) {
	img, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	data, err := img.Encode(cfg.Compression)
	if err != nil {
		return nil, fmt.Errorf("encode %s gradient: %w", cfg.Axis, err)
	}
	return data, nil
}

// GenerateToWriter renders cfg and writes the PNG to w.
// Nothing is written if rendering fails.
func GenerateToWriter(w io.Writer, cfg Config) error {
	data, err := Render(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write PNG: %w", err)
	}
	return nil
}

// Generate renders cfg and writes the PNG to the file at output.
// The file is replaced only once the whole image has been encoded.
func Generate(output string, cfg Config) error {
	data, err := Render(cfg)
	if err != nil {
		return err
	}
	if err := sink.WriteFile(output, data); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output": output,
		"axis":   cfg.Axis.String(),
		"extent": cfg.Extent,
		"start":  cfg.Start.String(),
		"stop":   cfg.Stop.String(),
		"size":   humanize.Bytes(uint64(len(data))),
	}).Debug("gradient written")
	return nil
}

// VerticalGradient writes a 1×height PNG fading from start (top) to stop.
func VerticalGradient(output string, start, stop Color, height int) error {
	return Generate(output, Config{Axis: Vertical, Start: start, Stop: stop, Extent: height})
}

// HorizontalGradient writes a width×1 PNG fading from start (left) to stop.
func HorizontalGradient(output string, start, stop Color, width int) error {
	return Generate(output, Config{Axis: Horizontal, Start: start, Stop: stop, Extent: width})
}
