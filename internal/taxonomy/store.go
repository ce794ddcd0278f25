package taxonomy

import (
	_ "embed"
	"fmt"

	"dissolve/internal/space"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

var defaultStore = mustLoad(taxonomyYAML)

// Default returns the store decoded from the embedded taxonomy. It is built
// during package initialization and never modified afterwards.
func Default() *Store { return defaultStore }

func mustLoad(data []byte) *Store {
	s, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded asset is invalid: %v", err))
	}
	return s
}

type document struct {
	VisualTypes       []VisualType       `yaml:"visual_types"`
	CanonicalStates   []CanonicalState   `yaml:"canonical_states"`
	EdgeModes         []EdgeMode         `yaml:"edge_modes"`
	HydrologyStates   []HydrologyState   `yaml:"hydrology_states"`
	SubstrateTypes    []SubstrateType    `yaml:"substrate_types"`
	ColorHarmonyModes []ColorHarmonyMode `yaml:"color_harmony_modes"`
	ContrastCurves    []ContrastCurve    `yaml:"contrast_curves"`
	RhythmicPresets   []RhythmicPreset   `yaml:"rhythmic_presets"`
	AttractorPresets  []AttractorPreset  `yaml:"attractor_presets"`
}

// Store holds every catalog in declaration order plus id indexes. All
// accessors return copies of the catalog slices; the records themselves are
// shared and must be treated as read-only.
type Store struct {
	doc document

	types      map[string]int
	states     map[string]int
	edges      map[string]int
	hydrology  map[string]int
	substrates map[string]int
	harmonies  map[string]int
	curves     map[string]int
	rhythms    map[string]int
	attractors map[string]int

	centers []space.Point
}

// Load decodes and validates a taxonomy document.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	s := &Store{doc: doc}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func indexBy[T any](catalog string, items []T, id func(T) string) (map[string]int, error) {
	idx := make(map[string]int, len(items))
	for i, it := range items {
		k := id(it)
		if k == "" {
			return nil, fmt.Errorf("%s[%d]: empty id", catalog, i)
		}
		if _, dup := idx[k]; dup {
			return nil, fmt.Errorf("%s: duplicate id %q", catalog, k)
		}
		idx[k] = i
	}
	return idx, nil
}

func (s *Store) build() error {
	var err error
	d := &s.doc
	if len(d.VisualTypes) == 0 {
		return fmt.Errorf("taxonomy: no visual types")
	}
	if s.types, err = indexBy("visual_types", d.VisualTypes, func(v VisualType) string { return v.ID }); err != nil {
		return err
	}
	if s.edges, err = indexBy("edge_modes", d.EdgeModes, func(v EdgeMode) string { return v.ID }); err != nil {
		return err
	}
	if s.hydrology, err = indexBy("hydrology_states", d.HydrologyStates, func(v HydrologyState) string { return v.ID }); err != nil {
		return err
	}
	if s.substrates, err = indexBy("substrate_types", d.SubstrateTypes, func(v SubstrateType) string { return v.ID }); err != nil {
		return err
	}
	if s.harmonies, err = indexBy("color_harmony_modes", d.ColorHarmonyModes, func(v ColorHarmonyMode) string { return v.ID }); err != nil {
		return err
	}
	if s.curves, err = indexBy("contrast_curves", d.ContrastCurves, func(v ContrastCurve) string { return v.ID }); err != nil {
		return err
	}

	s.centers = make([]space.Point, len(d.VisualTypes))
	for i, vt := range d.VisualTypes {
		if !vt.Center.InBounds() {
			return fmt.Errorf("visual type %q: center out of bounds", vt.ID)
		}
		s.centers[i] = vt.Center
	}

	for i := range d.CanonicalStates {
		cs := &d.CanonicalStates[i]
		switch cs.Source {
		case SourceVisualType:
			ti, ok := s.types[cs.ID]
			if !ok {
				return fmt.Errorf("canonical state %q: no visual type with that id", cs.ID)
			}
			cs.Coordinates = d.VisualTypes[ti].Center
		case SourceInterpolated:
			if _, clash := s.types[cs.ID]; clash {
				return fmt.Errorf("canonical state %q: interpolated id shadows a visual type", cs.ID)
			}
			for _, ref := range []string{cs.From, cs.To} {
				if _, ok := s.types[ref]; !ok {
					return fmt.Errorf("canonical state %q: unknown source type %q", cs.ID, ref)
				}
			}
		default:
			return fmt.Errorf("canonical state %q: unknown source %q", cs.ID, cs.Source)
		}
	}
	if s.states, err = indexBy("canonical_states", d.CanonicalStates, func(v CanonicalState) string { return v.ID }); err != nil {
		return err
	}

	for i := range d.AttractorPresets {
		ap := &d.AttractorPresets[i]
		si, ok := s.states[ap.Anchor]
		if !ok {
			return fmt.Errorf("attractor %q: unknown anchor %q", ap.ID, ap.Anchor)
		}
		if _, clash := s.types[ap.ID]; clash {
			return fmt.Errorf("attractor %q: id shadows a visual type", ap.ID)
		}
		if _, clash := s.states[ap.ID]; clash {
			return fmt.Errorf("attractor %q: id shadows a canonical state", ap.ID)
		}
		if ap.BasinRadius <= 0 {
			return fmt.Errorf("attractor %q: basin radius must be positive", ap.ID)
		}
		ap.State = d.CanonicalStates[si].Coordinates
	}
	if s.attractors, err = indexBy("attractor_presets", d.AttractorPresets, func(v AttractorPreset) string { return v.ID }); err != nil {
		return err
	}

	if s.rhythms, err = indexBy("rhythmic_presets", d.RhythmicPresets, func(v RhythmicPreset) string { return v.ID }); err != nil {
		return err
	}
	for _, rp := range d.RhythmicPresets {
		if rp.Period < 1 {
			return fmt.Errorf("rhythmic preset %q: period must be >= 1", rp.ID)
		}
		for _, ref := range []string{rp.StateA, rp.StateB} {
			if _, ok := s.Resolve(ref); !ok {
				return fmt.Errorf("rhythmic preset %q: unresolvable endpoint %q", rp.ID, ref)
			}
		}
	}
	return nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

// VisualTypes returns the visual types in declaration order.
func (s *Store) VisualTypes() []VisualType { return clone(s.doc.VisualTypes) }

// VisualType looks up a type by id.
func (s *Store) VisualType(id string) (VisualType, bool) {
	i, ok := s.types[id]
	if !ok {
		return VisualType{}, false
	}
	return s.doc.VisualTypes[i], true
}

// VisualTypeIDs lists type ids in declaration order.
func (s *Store) VisualTypeIDs() []string {
	return ids(s.doc.VisualTypes, func(v VisualType) string { return v.ID })
}

// Style returns the visual type or an UnknownIDError listing the valid ids.
func (s *Store) Style(id string) (VisualType, error) {
	vt, ok := s.VisualType(id)
	if !ok {
		return VisualType{}, &UnknownIDError{Kind: KindStyle, ID: id, Valid: s.VisualTypeIDs()}
	}
	return vt, nil
}

// Centers returns the type centers aligned with VisualTypes.
func (s *Store) Centers() []space.Point { return clone(s.centers) }

// NearestType returns the visual type whose center is closest to p. Ties keep
// the type declared first.
func (s *Store) NearestType(p space.Point) (string, float64) {
	i, d := space.Nearest(p, s.centers)
	return s.doc.VisualTypes[i].ID, d
}

// CanonicalStates returns the canonical states in declaration order.
func (s *Store) CanonicalStates() []CanonicalState { return clone(s.doc.CanonicalStates) }

// CanonicalState looks up a canonical state by id.
func (s *Store) CanonicalState(id string) (CanonicalState, bool) {
	i, ok := s.states[id]
	if !ok {
		return CanonicalState{}, false
	}
	return s.doc.CanonicalStates[i], true
}

// EdgeModes returns the edge mode catalog.
func (s *Store) EdgeModes() []EdgeMode { return clone(s.doc.EdgeModes) }

// EdgeMode looks up an edge mode by id.
func (s *Store) EdgeMode(id string) (EdgeMode, bool) {
	i, ok := s.edges[id]
	if !ok {
		return EdgeMode{}, false
	}
	return s.doc.EdgeModes[i], true
}

// HydrologyStates returns the hydrology catalog.
func (s *Store) HydrologyStates() []HydrologyState { return clone(s.doc.HydrologyStates) }

// HydrologyState looks up a hydrology state by id.
func (s *Store) HydrologyState(id string) (HydrologyState, bool) {
	i, ok := s.hydrology[id]
	if !ok {
		return HydrologyState{}, false
	}
	return s.doc.HydrologyStates[i], true
}

// SubstrateTypes returns the substrate catalog.
func (s *Store) SubstrateTypes() []SubstrateType { return clone(s.doc.SubstrateTypes) }

// SubstrateType looks up a substrate by id.
func (s *Store) SubstrateType(id string) (SubstrateType, bool) {
	i, ok := s.substrates[id]
	if !ok {
		return SubstrateType{}, false
	}
	return s.doc.SubstrateTypes[i], true
}

// ColorHarmonyModes returns the color harmony catalog.
func (s *Store) ColorHarmonyModes() []ColorHarmonyMode { return clone(s.doc.ColorHarmonyModes) }

// ContrastCurves returns the contrast curve catalog.
func (s *Store) ContrastCurves() []ContrastCurve { return clone(s.doc.ContrastCurves) }

// ContrastCurve looks up a contrast curve by id.
func (s *Store) ContrastCurve(id string) (ContrastCurve, bool) {
	i, ok := s.curves[id]
	if !ok {
		return ContrastCurve{}, false
	}
	return s.doc.ContrastCurves[i], true
}

// RhythmicPresets returns the rhythmic presets in declaration order.
func (s *Store) RhythmicPresets() []RhythmicPreset { return clone(s.doc.RhythmicPresets) }

// RhythmicPreset returns the preset or an UnknownIDError.
func (s *Store) RhythmicPreset(id string) (RhythmicPreset, error) {
	i, ok := s.rhythms[id]
	if !ok {
		return RhythmicPreset{}, &UnknownIDError{
			Kind:  KindPreset,
			ID:    id,
			Valid: ids(s.doc.RhythmicPresets, func(v RhythmicPreset) string { return v.ID }),
		}
	}
	return s.doc.RhythmicPresets[i], nil
}

// AttractorPresets returns the attractor presets in declaration order.
func (s *Store) AttractorPresets() []AttractorPreset { return clone(s.doc.AttractorPresets) }

// AttractorPreset looks up an attractor by id.
func (s *Store) AttractorPreset(id string) (AttractorPreset, bool) {
	i, ok := s.attractors[id]
	if !ok {
		return AttractorPreset{}, false
	}
	return s.doc.AttractorPresets[i], true
}
