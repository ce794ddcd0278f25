// Package space holds the five-axis parameter point and the geometry used by
// every other package: distance, interpolation, nearest-center lookup and
// softmax weighting.
package space

import "math"

// Axis indexes one coordinate of a Point. Iteration always follows Axes.
type Axis int

const (
	DissolutionRate Axis = iota
	EdgeCoherence
	SubstrateVisibility
	PigmentHydrology
	AnchorDensity
	NumAxes = 5
)

var axisNames = [NumAxes]string{
	"dissolution_rate",
	"edge_coherence",
	"substrate_visibility",
	"pigment_hydrology",
	"anchor_density",
}

// Axes lists the coordinates in canonical order.
var Axes = [NumAxes]Axis{DissolutionRate, EdgeCoherence, SubstrateVisibility, PigmentHydrology, AnchorDensity}

// String returns the snake_case axis name used on the wire.
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return "unknown"
	}
	return axisNames[a]
}

// AxisNames returns the canonical axis names in order.
func AxisNames() []string {
	out := make([]string, NumAxes)
	copy(out, axisNames[:])
	return out
}

// ParseAxis maps a wire name back to its Axis.
func ParseAxis(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

// Point is a location in the parameter space. Every coordinate is nominally
// in [0, 1]; Interpolate may leave that range and callers clamp downstream.
type Point struct {
	DissolutionRate     float64 `json:"dissolution_rate" yaml:"dissolution_rate" jsonschema:"0 photographic fidelity to 1 painterly abstraction"`
	EdgeCoherence       float64 `json:"edge_coherence" yaml:"edge_coherence" jsonschema:"0 feathered and bled to 1 architecturally sharp"`
	SubstrateVisibility float64 `json:"substrate_visibility" yaml:"substrate_visibility" jsonschema:"0 paper hidden to 1 paper dominant"`
	PigmentHydrology    float64 `json:"pigment_hydrology" yaml:"pigment_hydrology" jsonschema:"0 dry brush to 1 flooding wet-on-wet"`
	AnchorDensity       float64 `json:"anchor_density" yaml:"anchor_density" jsonschema:"0 pure abstraction to 1 dense photographic anchors"`
}

// Vector returns the coordinates in canonical order.
func (p Point) Vector() [NumAxes]float64 {
	return [NumAxes]float64{p.DissolutionRate, p.EdgeCoherence, p.SubstrateVisibility, p.PigmentHydrology, p.AnchorDensity}
}

// FromVector builds a Point from coordinates in canonical order.
func FromVector(v [NumAxes]float64) Point {
	return Point{
		DissolutionRate:     v[DissolutionRate],
		EdgeCoherence:       v[EdgeCoherence],
		SubstrateVisibility: v[SubstrateVisibility],
		PigmentHydrology:    v[PigmentHydrology],
		AnchorDensity:       v[AnchorDensity],
	}
}

// At returns a single coordinate.
func (p Point) At(a Axis) float64 {
	return p.Vector()[a]
}

// With returns a copy of p with one coordinate replaced.
func (p Point) With(a Axis, v float64) Point {
	vec := p.Vector()
	vec[a] = v
	return FromVector(vec)
}

// Clamp limits every coordinate to [0, 1].
func (p Point) Clamp() Point {
	vec := p.Vector()
	for i := range vec {
		vec[i] = math.Max(0, math.Min(1, vec[i]))
	}
	return FromVector(vec)
}

// Round rounds every coordinate to the given number of decimal places.
func (p Point) Round(places int) Point {
	vec := p.Vector()
	for i := range vec {
		vec[i] = Round(vec[i], places)
	}
	return FromVector(vec)
}

// Map returns the coordinates keyed by axis name.
func (p Point) Map() map[string]float64 {
	out := make(map[string]float64, NumAxes)
	for _, a := range Axes {
		out[a.String()] = p.At(a)
	}
	return out
}

// InBounds reports whether every coordinate lies in [0, 1].
func (p Point) InBounds() bool {
	for _, v := range p.Vector() {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
