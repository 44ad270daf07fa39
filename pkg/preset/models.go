// Package preset renders batches of gradients described by a JSON manifest.
package preset

import "github.com/xob0t/GoGradient/pkg/gradient"

// Manifest is the top-level structure of a gradients.json file.
type Manifest struct {
	Meta      Meta     `json:"meta"`
	Defaults  Defaults `json:"defaults"`
	Gradients []Entry  `json:"gradients"`
}

// Meta holds manifest metadata.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Defaults apply to every entry that leaves the field empty.
type Defaults struct {
	Start       string `json:"start"`       // color, see gradient.ParseColor
	Stop        string `json:"stop"`        // color, see gradient.ParseColor
	Compression string `json:"compression"` // default, none, speed, best
}

// Entry describes one output image.
type Entry struct {
	Output      string `json:"output"` // relative paths resolve against the manifest directory
	Axis        string `json:"axis"`   // "vertical" or "horizontal"
	Start       string `json:"start,omitempty"`
	Stop        string `json:"stop,omitempty"`
	Extent      int    `json:"extent"` // height for vertical, width for horizontal
	Compression string `json:"compression,omitempty"`
}

// Job is an entry with defaults merged and every field parsed.
type Job struct {
	Output string
	Config gradient.Config
}

// Result reports the outcome of one job.
type Result struct {
	Output string
	Size   int
	Err    error
}
