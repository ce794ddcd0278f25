// Package mapper turns a named style plus intensity and emphasis settings
// into a concrete point and the technique selections that follow from it.
package mapper

import (
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
	"dissolve/internal/vocab"
)

// Intensity levels. Unrecognized levels scale by 1.0.
const (
	IntensitySubtle   = "subtle"
	IntensityModerate = "moderate"
	IntensityDramatic = "dramatic"
)

// Emphasis values. Unrecognized emphasis applies no shift.
const (
	EmphasisBalanced    = "balanced"
	EmphasisDissolution = "dissolution"
	EmphasisEdge        = "edge"
	EmphasisSubstrate   = "substrate"
	EmphasisHydrology   = "hydrology"
)

var intensityScale = map[string]float64{
	IntensitySubtle:   0.6,
	IntensityModerate: 1.0,
	IntensityDramatic: 1.4,
}

type shift struct {
	axis  space.Axis
	delta float64
}

var emphasisShifts = map[string][]shift{
	EmphasisDissolution: {{space.DissolutionRate, 0.1}, {space.AnchorDensity, -0.1}},
	EmphasisEdge:        {{space.EdgeCoherence, 0.15}},
	EmphasisSubstrate:   {{space.SubstrateVisibility, 0.15}},
	EmphasisHydrology:   {{space.PigmentHydrology, 0.15}},
	EmphasisBalanced:    nil,
}

const midpoint = 0.5

// IntensityScale returns the deviation multiplier for a level.
func IntensityScale(level string) float64 {
	if s, ok := intensityScale[level]; ok {
		return s
	}
	return 1.0
}

// Request selects the style and modifiers to map.
type Request struct {
	StyleID   string
	Intensity string
	Emphasis  string
	Substrate string
}

// Mapping is the full parameter bundle for one style.
type Mapping struct {
	StyleID              string                       `json:"style_id"`
	StyleName            string                       `json:"style_name"`
	Intensity            string                       `json:"intensity"`
	Emphasis             string                       `json:"emphasis"`
	Weight               float64                      `json:"weight"`
	State                space.Point                  `json:"state"`
	NearestVisualType    string                       `json:"nearest_visual_type"`
	VisualDistance       float64                      `json:"visual_distance"`
	ActiveEdgeModes      []string                     `json:"active_edge_modes"`
	EdgeModeDetails      map[string]taxonomy.EdgeMode `json:"edge_mode_details"`
	HydrologyState       string                       `json:"hydrology_state"`
	HydrologyDetails     taxonomy.HydrologyState      `json:"hydrology_details"`
	ContrastCurve        string                       `json:"contrast_curve"`
	ContrastCurveDetails taxonomy.ContrastCurve       `json:"contrast_curve_details"`
	Substrate            *taxonomy.SubstrateType      `json:"substrate"`
	Characteristics      []string                     `json:"characteristics"`
	OpticalProperties    taxonomy.Optical             `json:"optical_properties"`
	Keywords             []string                     `json:"keywords"`
	ColorAssociations    []string                     `json:"color_associations"`
	FullVocabulary       vocab.ByCategory             `json:"full_vocabulary"`
}

// Point computes the mapped point for a style center: each coordinate's
// deviation from 0.5 is scaled by the intensity, the emphasis shift is
// added, and the result is clamped to [0, 1].
func Point(center space.Point, intensity, emphasis string) space.Point {
	scale := IntensityScale(intensity)
	v := center.Vector()
	for k := range v {
		v[k] = midpoint + (v[k]-midpoint)*scale
	}
	for _, s := range emphasisShifts[emphasis] {
		v[s.axis] += s.delta
	}
	return space.FromVector(v).Clamp()
}

// Map resolves req.StyleID and derives every selection from the mapped
// point. An unknown style is an *taxonomy.UnknownIDError; an unknown
// substrate is silently omitted.
func Map(store *taxonomy.Store, req Request) (Mapping, error) {
	vt, err := store.Style(req.StyleID)
	if err != nil {
		return Mapping{}, err
	}

	if req.Intensity == "" {
		req.Intensity = IntensityModerate
	}
	if req.Emphasis == "" {
		req.Emphasis = EmphasisBalanced
	}

	p := Point(vt.Center, req.Intensity, req.Emphasis)
	nearest, dist := store.NearestType(p)

	edges := EdgeModes(p)
	details := make(map[string]taxonomy.EdgeMode, len(edges))
	for _, id := range edges {
		if em, ok := store.EdgeMode(id); ok {
			details[id] = em
		}
	}

	hydrology := Hydrology(p)
	hd, _ := store.HydrologyState(hydrology)
	contrast := Contrast(p)
	cd, _ := store.ContrastCurve(contrast)

	var substrate *taxonomy.SubstrateType
	if req.Substrate != "" {
		if st, ok := store.SubstrateType(req.Substrate); ok {
			substrate = &st
		}
	}

	return Mapping{
		StyleID:              vt.ID,
		StyleName:            vt.Name,
		Intensity:            req.Intensity,
		Emphasis:             req.Emphasis,
		Weight:               1.0,
		State:                p.Round(4),
		NearestVisualType:    nearest,
		VisualDistance:       space.Round(dist, 4),
		ActiveEdgeModes:      edges,
		EdgeModeDetails:      details,
		HydrologyState:       hydrology,
		HydrologyDetails:     hd,
		ContrastCurve:        contrast,
		ContrastCurveDetails: cd,
		Substrate:            substrate,
		Characteristics:      Characteristics(p),
		OpticalProperties:    vt.Optical,
		Keywords:             vt.Keywords,
		ColorAssociations:    vt.ColorAssociations,
		FullVocabulary:       vocab.Synthesize(store, p, 1.0).VocabularyByCategory,
	}, nil
}
