// validator.go - Non-fatal manifest checks and plan formatting.
package preset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateManifest returns warnings for entries that will render but are
// probably not what the author meant.
func ValidateManifest(m *Manifest) []string {
	var warnings []string

	seen := make(map[string]int, len(m.Gradients))
	for i, e := range m.Gradients {
		if prev, ok := seen[e.Output]; ok && e.Output != "" {
			warnings = append(warnings, fmt.Sprintf("gradient %d overwrites output %q of gradient %d", i, e.Output, prev))
		} else {
			seen[e.Output] = i
		}

		if ext := strings.ToLower(filepath.Ext(e.Output)); e.Output != "" && ext != ".png" {
			warnings = append(warnings, fmt.Sprintf("gradient %d output %q does not end in .png", i, e.Output))
		}
		if start, stop := e.Start, e.Stop; start != "" && start == stop {
			warnings = append(warnings, fmt.Sprintf("gradient %d has identical start and stop colors", i))
		}
	}
	return warnings
}

// FormatPlan returns a human-readable listing of the jobs a manifest produces.
func FormatPlan(m *Manifest, jobs []Job) string {
	var b strings.Builder
	if m.Meta.Name != "" {
		fmt.Fprintf(&b, "Manifest: %s", m.Meta.Name)
		if m.Meta.Version != "" {
			fmt.Fprintf(&b, " (v%s)", m.Meta.Version)
		}
		if m.Meta.Author != "" {
			fmt.Fprintf(&b, " by %s", m.Meta.Author)
		}
		b.WriteString("\n")
	}
	if m.Meta.Description != "" {
		b.WriteString(m.Meta.Description + "\n")
	}

	b.WriteString("\nGradients:\n")
	for _, j := range jobs {
		w, h := j.Config.Axis.Dimensions(j.Config.Extent)
		fmt.Fprintf(&b, "  %-10s %dx%-6d %s -> %s  %s\n",
			j.Config.Axis, w, h, j.Config.Start, j.Config.Stop, j.Output)
	}
	return b.String()
}
