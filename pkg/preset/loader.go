// loader.go - Read and decode gradients.json.
package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadManifest reads a manifest file and resolves relative outputs against
// its directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	resolveOutputs(m, filepath.Dir(path))
	return m, nil
}

// ParseManifest decodes manifest JSON. Unknown fields are rejected so typos
// do not silently fall back to defaults.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest JSON: %w", err)
	}
	if len(m.Gradients) == 0 {
		return nil, fmt.Errorf("parse manifest JSON: no gradients listed")
	}
	return &m, nil
}

// resolveOutputs makes all relative output paths absolute using baseDir.
func resolveOutputs(m *Manifest, baseDir string) {
	for i := range m.Gradients {
		p := m.Gradients[i].Output
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		m.Gradients[i].Output = filepath.Join(baseDir, p)
	}
}
