// merge.go - Merge defaults into entries and parse them into jobs.
package preset

import (
	"fmt"

	"github.com/xob0t/GoGradient/pkg/gradient"
	"github.com/xob0t/GoGradient/pkg/pngenc"
)

// Built-in fallbacks when neither the entry nor the manifest defaults set a
// color. These are the light and mid grays of the example manifest.
const (
	FallbackStart = "230,230,230"
	FallbackStop  = "180,180,180"
)

// Resolve merges m.Defaults into each entry and parses the result.
// The first invalid entry aborts resolution.
func Resolve(m *Manifest) ([]Job, error) {
	jobs := make([]Job, 0, len(m.Gradients))
	for i, e := range m.Gradients {
		job, err := resolveEntry(m.Defaults, e)
		if err != nil {
			return nil, fmt.Errorf("gradient %d (%s): %w", i, e.Output, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func resolveEntry(d Defaults, e Entry) (Job, error) {
	if e.Output == "" {
		return Job{}, fmt.Errorf("output is required")
	}

	axis, err := gradient.ParseAxis(e.Axis)
	if err != nil {
		return Job{}, err
	}
	start, err := gradient.ParseColor(pick(e.Start, d.Start, FallbackStart))
	if err != nil {
		return Job{}, fmt.Errorf("start: %w", err)
	}
	stop, err := gradient.ParseColor(pick(e.Stop, d.Stop, FallbackStop))
	if err != nil {
		return Job{}, fmt.Errorf("stop: %w", err)
	}
	level, err := pngenc.ParseCompressionLevel(pick(e.Compression, d.Compression, ""))
	if err != nil {
		return Job{}, err
	}
	if e.Extent < 1 {
		return Job{}, fmt.Errorf("%w: extent %d", gradient.ErrInvalidDimension, e.Extent)
	}

	return Job{
		Output: e.Output,
		Config: gradient.Config{
			Axis:        axis,
			Start:       start,
			Stop:        stop,
			Extent:      e.Extent,
			Compression: level,
		},
	}, nil
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
