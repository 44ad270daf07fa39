package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoGradient/pkg/preset"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(NewHandler(Options{Log: log, Start: "#e6e6e6", Stop: "#b4b4b4"}))
	t.Cleanup(ts.Close)
	return ts
}

func decode(t *testing.T, resp *http.Response) *image.Paletted {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	pal, ok := img.(*image.Paletted)
	require.True(t, ok, "decoded %T", img)
	return pal
}

func TestGradientQuery(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/gradient?axis=vertical&extent=150")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	img := decode(t, resp)
	require.Equal(t, image.Rect(0, 0, 1, 150), img.Bounds())
	require.Len(t, img.Palette, 151)
	require.Equal(t, color.RGBA{230, 230, 230, 255}, img.At(0, 0))
}

func TestGradientJSON(t *testing.T) {
	ts := newTestServer(t)

	body, err := json.Marshal(gradientRequest{Axis: "horizontal", Start: "black", Stop: "white", Extent: 256, Compression: "best"})
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/api/gradient", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	img := decode(t, resp)
	require.Equal(t, image.Rect(0, 0, 256, 1), img.Bounds())
	require.Equal(t, color.RGBA{0, 0, 0, 255}, img.At(0, 0))
	require.Equal(t, color.RGBA{128, 128, 128, 255}, img.At(128, 0))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, img.At(255, 0))
}

func TestGradientBadRequests(t *testing.T) {
	ts := newTestServer(t)

	for _, q := range []string{
		"axis=vertical&extent=0",
		"axis=vertical",
		"axis=vertical&extent=abc",
		"axis=diagonal&extent=10",
		"axis=vertical&extent=10&start=nope",
		"axis=vertical&extent=10&compression=ultra",
		"axis=horizontal&extent=70000",
	} {
		resp, err := http.Get(ts.URL + "/api/gradient?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}

	resp, err := http.Post(ts.URL+"/api/gradient", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDPropagated(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestExampleManifest(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/example")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	m, err := preset.ParseManifest(body)
	require.NoError(t, err)
	require.Len(t, m.Gradients, 2)
}
