// Package taxonomy is the read-only reference data for the watercolor
// dissolution space: visual types, canonical states, descriptive catalogs and
// rhythmic/attractor presets. The data ships as an embedded YAML asset and is
// decoded once when the package initializes.
package taxonomy

import "dissolve/internal/space"

// Optical describes the surface finish of a visual type.
type Optical struct {
	Finish       string `json:"finish" yaml:"finish"`
	Scatter      string `json:"scatter" yaml:"scatter"`
	Transparency string `json:"transparency" yaml:"transparency"`
}

// VisualType is one of the six aesthetic regimes anchoring the space.
type VisualType struct {
	ID                string      `json:"id" yaml:"id"`
	Name              string      `json:"name" yaml:"name"`
	Description       string      `json:"description" yaml:"description"`
	Center            space.Point `json:"center" yaml:"center"`
	Keywords          []string    `json:"keywords" yaml:"keywords"`
	Optical           Optical     `json:"optical" yaml:"optical"`
	ColorAssociations []string    `json:"color_associations" yaml:"color_associations"`
}

// State sources.
const (
	SourceVisualType   = "visual_type"
	SourceInterpolated = "interpolated"
)

// CanonicalState is a named reference point: either a visual type center or
// a fixed blend between two centers.
type CanonicalState struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Coordinates space.Point `json:"coordinates" yaml:"coordinates"`
	Source      string      `json:"source" yaml:"source"`
	From        string      `json:"from,omitempty" yaml:"from,omitempty"`
	To          string      `json:"to,omitempty" yaml:"to,omitempty"`
	Blend       float64     `json:"blend,omitempty" yaml:"blend,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// EdgeMode is a boundary behavior between wash regions.
type EdgeMode struct {
	ID                    string  `json:"id" yaml:"id"`
	Name                  string  `json:"name" yaml:"name"`
	Description           string  `json:"description" yaml:"description"`
	VisualEffect          string  `json:"visual_effect" yaml:"visual_effect"`
	DissolutionResistance float64 `json:"dissolution_resistance" yaml:"dissolution_resistance"`
	TypicalContext        string  `json:"typical_context" yaml:"typical_context"`
}

// HydrologyState is a water-to-pigment regime.
type HydrologyState struct {
	ID                   string  `json:"id" yaml:"id"`
	Name                 string  `json:"name" yaml:"name"`
	Description          string  `json:"description" yaml:"description"`
	WaterRatio           float64 `json:"water_ratio" yaml:"water_ratio"`
	PigmentConcentration float64 `json:"pigment_concentration" yaml:"pigment_concentration"`
	DryingBehavior       string  `json:"drying_behavior" yaml:"drying_behavior"`
	VisualCharacter      string  `json:"visual_character" yaml:"visual_character"`
}

// SubstrateType is a paper or ground.
type SubstrateType struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	Description       string  `json:"description" yaml:"description"`
	Tooth             float64 `json:"tooth" yaml:"tooth"`
	Absorbency        float64 `json:"absorbency" yaml:"absorbency"`
	TextureVisibility float64 `json:"texture_visibility" yaml:"texture_visibility"`
	BestFor           string  `json:"best_for" yaml:"best_for"`
}

// ColorHarmonyMode is a palette strategy.
type ColorHarmonyMode struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	VisualEffect string `json:"visual_effect" yaml:"visual_effect"`
}

// ContrastCurve is a tonal response treatment.
type ContrastCurve struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description" yaml:"description"`
	ToeCompression  float64 `json:"toe_compression" yaml:"toe_compression"`
	ShoulderRolloff float64 `json:"shoulder_rolloff" yaml:"shoulder_rolloff"`
	MidtoneContrast float64 `json:"midtone_contrast" yaml:"midtone_contrast"`
	VisualEffect    string  `json:"visual_effect" yaml:"visual_effect"`
}

// RhythmicPreset is a canonical oscillation between two resolvable ids.
type RhythmicPreset struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	StateA      string `json:"state_a" yaml:"state_a"`
	StateB      string `json:"state_b" yaml:"state_b"`
	Period      int    `json:"period" yaml:"period"`
	Character   string `json:"character" yaml:"character"`
}

// AttractorPreset is a named point with a basin radius.
type AttractorPreset struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Anchor      string      `json:"anchor" yaml:"anchor"`
	State       space.Point `json:"state" yaml:"state"`
	BasinRadius float64     `json:"basin_radius" yaml:"basin_radius"`
}
