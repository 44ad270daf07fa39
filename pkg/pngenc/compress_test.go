package pngenc

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func inflate(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := zlib.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func TestCompressRoundTrip(t *testing.T) {
	raw := make([]byte, 0, 601)
	raw = append(raw, FilterNone)
	for i := 0; i < 600; i++ {
		raw = append(raw, byte(i*255/599))
	}

	for _, level := range []CompressionLevel{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
		t.Run(level.String(), func(t *testing.T) {
			z, err := Compress(raw, level)
			require.NoError(t, err)
			require.Equal(t, raw, inflate(t, z))
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	z, err := Compress(nil, DefaultCompression)
	require.NoError(t, err)
	require.Empty(t, inflate(t, z))
}

func TestParseCompressionLevel(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionLevel
	}{
		{"", DefaultCompression},
		{"default", DefaultCompression},
		{"none", NoCompression},
		{"Speed", BestSpeed},
		{" best ", BestCompression},
	}
	for _, tt := range tests {
		got, err := ParseCompressionLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompressionLevel("ultra")
	require.Error(t, err)
}

func TestCompressionErrorUnwrap(t *testing.T) {
	inner := io.ErrShortWrite
	err := error(&CompressionError{Err: inner})
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Contains(t, err.Error(), "compress pixel data")
}
