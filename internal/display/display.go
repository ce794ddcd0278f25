// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, prompt text and logs.
// Keep raw ids for JSON fields, map keys, and equality comparisons.
package display

import (
	"fmt"
	"strings"
)

// --- Axes ---

var axes = map[string]string{
	"dissolution_rate":     "Dissolution",
	"edge_coherence":       "Edge Coherence",
	"substrate_visibility": "Substrate",
	"pigment_hydrology":    "Hydrology",
	"anchor_density":       "Anchors",
}

// Axis returns the short column name for an axis.
// "pigment_hydrology" -> "Hydrology". Unknown names are returned as-is.
func Axis(name string) string {
	if label, ok := axes[name]; ok {
		return label
	}
	return name
}

// AxisWithCode returns "Hydrology (pigment_hydrology)" format.
func AxisWithCode(name string) string {
	if label, ok := axes[name]; ok {
		return label + " (" + name + ")"
	}
	return name
}

// --- Identifiers ---

// Words turns a snake_case label into spaced words.
// "matte_photographic" -> "matte photographic".
func Words(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// Title turns a snake_case id into a title.
// "ghost_impression" -> "Ghost Impression".
func Title(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Path joins ids into an arrow path of titles.
// ["editorial_wash", "chromatic_flood"] -> "Editorial Wash → Chromatic Flood"
func Path(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = Title(id)
	}
	return strings.Join(names, " → ")
}

// Percent formats a unit-interval value as a whole percentage.
// 0.15 -> "15%".
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
