// Package server exposes gradient rendering over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xob0t/GoGradient/pkg/gradient"
	"github.com/xob0t/GoGradient/pkg/pngenc"
	"github.com/xob0t/GoGradient/pkg/preset"
)

// MaxExtent bounds the extent accepted over HTTP.
const MaxExtent = 1 << 16

const maxBodyBytes = 1 << 16

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

type srv struct {
	log      logrus.FieldLogger
	defaults gradientRequest
}

// Options configures the handler.
type Options struct {
	Log   logrus.FieldLogger
	Start string // default start color when a request omits it
	Stop  string // default stop color when a request omits it
}

// NewHandler returns the HTTP API:
//
//	GET  /api/gradient?axis=&start=&stop=&extent=&compression=
//	POST /api/gradient   JSON body with the same fields
//	GET  /api/example    sample batch manifest
//	GET  /healthz
func NewHandler(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &srv{
		log:      log,
		defaults: gradientRequest{Start: opts.Start, Stop: opts.Stop},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/gradient", s.handleGradientQuery)
	mux.HandleFunc("POST /api/gradient", s.handleGradientJSON)
	mux.HandleFunc("GET /api/example", s.handleExample)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return s.withRequestID(mux)
}

// RunServe starts the API server on the given port and blocks.
func RunServe(port string, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
		opts.Log = log
	}

	addr := ":" + port
	hs := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.WithField("addr", "http://localhost"+addr).Info("GoGradient API listening")
	return hs.ListenAndServe()
}

// ── Render ──

type gradientRequest struct {
	Axis        string `json:"axis"`
	Start       string `json:"start"`
	Stop        string `json:"stop"`
	Extent      int    `json:"extent"`
	Compression string `json:"compression"`
}

func (s *srv) toConfig(req gradientRequest) (gradient.Config, error) {
	if req.Start == "" {
		req.Start = s.defaults.Start
	}
	if req.Stop == "" {
		req.Stop = s.defaults.Stop
	}
	if req.Start == "" || req.Stop == "" {
		return gradient.Config{}, fmt.Errorf("start and stop colors are required")
	}

	axis, err := gradient.ParseAxis(req.Axis)
	if err != nil {
		return gradient.Config{}, err
	}
	start, err := gradient.ParseColor(req.Start)
	if err != nil {
		return gradient.Config{}, fmt.Errorf("start: %w", err)
	}
	stop, err := gradient.ParseColor(req.Stop)
	if err != nil {
		return gradient.Config{}, fmt.Errorf("stop: %w", err)
	}
	level, err := pngenc.ParseCompressionLevel(req.Compression)
	if err != nil {
		return gradient.Config{}, err
	}
	if req.Extent > MaxExtent {
		return gradient.Config{}, fmt.Errorf("%w: extent %d exceeds %d", gradient.ErrInvalidDimension, req.Extent, MaxExtent)
	}

	return gradient.Config{Axis: axis, Start: start, Stop: stop, Extent: req.Extent, Compression: level}, nil
}

func (s *srv) render(w http.ResponseWriter, r *http.Request, req gradientRequest) {
	log := s.log.WithField("request_id", w.Header().Get(RequestIDHeader))

	cfg, err := s.toConfig(req)
	if err != nil {
		log.WithError(err).Warn("bad gradient request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := gradient.Render(cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, gradient.ErrInvalidDimension) {
			status = http.StatusBadRequest
		}
		log.WithError(err).Warn("render failed")
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s-gradient.png"`, cfg.Axis))
	w.Write(data)

	log.WithFields(logrus.Fields{
		"axis":   cfg.Axis.String(),
		"extent": cfg.Extent,
		"size":   humanize.Bytes(uint64(len(data))),
	}).Info("gradient served")
}

func (s *srv) handleGradientQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := gradientRequest{
		Axis:        q.Get("axis"),
		Start:       q.Get("start"),
		Stop:        q.Get("stop"),
		Compression: q.Get("compression"),
	}
	if v := q.Get("extent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid extent %q", v), http.StatusBadRequest)
			return
		}
		req.Extent = n
	}
	s.render(w, r, req)
}

func (s *srv) handleGradientJSON(w http.ResponseWriter, r *http.Request) {
	var req gradientRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "decode request: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, r, req)
}

func (s *srv) handleExample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="gradients.json"`)
	io.WriteString(w, preset.GetExampleJSON())
}

// ── Middleware ──

func (s *srv) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		s.log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}
