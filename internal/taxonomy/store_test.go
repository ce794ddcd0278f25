package taxonomy_test

import (
	"errors"
	"strings"
	"testing"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_CatalogSizes(t *testing.T) {
	s := taxonomy.Default()
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"visual_types", len(s.VisualTypes()), 6},
		{"canonical_states", len(s.CanonicalStates()), 10},
		{"edge_modes", len(s.EdgeModes()), 6},
		{"hydrology_states", len(s.HydrologyStates()), 5},
		{"substrate_types", len(s.SubstrateTypes()), 5},
		{"color_harmony_modes", len(s.ColorHarmonyModes()), 5},
		{"contrast_curves", len(s.ContrastCurves()), 6},
		{"rhythmic_presets", len(s.RhythmicPresets()), 5},
		{"attractor_presets", len(s.AttractorPresets()), 7},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d entries, want %d", c.name, c.got, c.want)
		}
	}
}

func TestDefault_VisualTypeOrder(t *testing.T) {
	want := []string{"editorial_wash", "contested_boundary", "full_dissolution", "ghost_impression", "substrate_emergence", "chromatic_flood"}
	if diff := cmp.Diff(want, taxonomy.Default().VisualTypeIDs()); diff != "" {
		t.Errorf("VisualTypeIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_VisualTypeShape(t *testing.T) {
	for _, vt := range taxonomy.Default().VisualTypes() {
		if len(vt.Keywords) != 8 {
			t.Errorf("%s: %d keywords, want 8", vt.ID, len(vt.Keywords))
		}
		if len(vt.ColorAssociations) == 0 {
			t.Errorf("%s: no color associations", vt.ID)
		}
		if vt.Optical.Finish == "" || vt.Optical.Scatter == "" || vt.Optical.Transparency == "" {
			t.Errorf("%s: incomplete optical record %+v", vt.ID, vt.Optical)
		}
		if !vt.Center.InBounds() {
			t.Errorf("%s: center out of bounds", vt.ID)
		}
	}
}

func TestDefault_CanonicalStates(t *testing.T) {
	s := taxonomy.Default()
	var direct, interp int
	for _, cs := range s.CanonicalStates() {
		switch cs.Source {
		case taxonomy.SourceVisualType:
			direct++
			vt, ok := s.VisualType(cs.ID)
			if !ok {
				t.Fatalf("%s: no matching visual type", cs.ID)
			}
			if cs.Coordinates != vt.Center {
				t.Errorf("%s: coordinates differ from type center", cs.ID)
			}
		case taxonomy.SourceInterpolated:
			interp++
			if cs.From == "" || cs.To == "" || cs.Blend <= 0 {
				t.Errorf("%s: missing interpolation provenance", cs.ID)
			}
		}
	}
	if direct != 6 || interp != 4 {
		t.Errorf("got %d direct and %d interpolated states, want 6 and 4", direct, interp)
	}
	rs, _ := s.CanonicalState("restrained_study")
	want := space.Point{DissolutionRate: 0.68, EdgeCoherence: 0.53, SubstrateVisibility: 0.68, PigmentHydrology: 0.25, AnchorDensity: 0.25}
	if diff := cmp.Diff(want, rs.Coordinates); diff != "" {
		t.Errorf("restrained_study coordinates (-want +got):\n%s", diff)
	}
}

func TestDefault_AttractorsCopyAnchors(t *testing.T) {
	s := taxonomy.Default()
	ap, ok := s.AttractorPreset("balanced_study")
	if !ok {
		t.Fatal("balanced_study missing")
	}
	rs, _ := s.CanonicalState("restrained_study")
	if ap.State != rs.Coordinates {
		t.Errorf("balanced_study state %+v, want %+v", ap.State, rs.Coordinates)
	}
	if ap.BasinRadius != 0.18 {
		t.Errorf("basin radius = %v, want 0.18", ap.BasinRadius)
	}
}

func TestResolve_Order(t *testing.T) {
	s := taxonomy.Default()
	tests := []struct {
		id     string
		source taxonomy.Catalog
	}{
		{"editorial_wash", taxonomy.CatalogCanonicalState},
		{"light_wash", taxonomy.CatalogCanonicalState},
		{"spectral_trace", taxonomy.CatalogAttractor},
	}
	for _, tt := range tests {
		r, ok := s.Resolve(tt.id)
		if !ok {
			t.Errorf("Resolve(%q) not found", tt.id)
			continue
		}
		if r.Source != tt.source {
			t.Errorf("Resolve(%q) source = %s, want %s", tt.id, r.Source, tt.source)
		}
	}
	if _, ok := s.Resolve("nope"); ok {
		t.Error("Resolve should miss unknown ids")
	}
}

func TestResolvePoint_UnknownListsValid(t *testing.T) {
	s := taxonomy.Default()
	_, err := s.ResolvePoint(taxonomy.KindState, "nope")
	var unk *taxonomy.UnknownIDError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownIDError, got %v", err)
	}
	if unk.ID != "nope" || unk.Kind != taxonomy.KindState {
		t.Errorf("unexpected error fields %+v", unk)
	}
	if len(unk.Valid) != 10+7 {
		t.Errorf("expected 17 resolvable ids, got %d", len(unk.Valid))
	}
	if !strings.Contains(err.Error(), "chromatic_flood") {
		t.Errorf("error should list valid ids: %v", err)
	}
}

func TestStyle_Unknown(t *testing.T) {
	_, err := taxonomy.Default().Style("watercolour")
	var unk *taxonomy.UnknownIDError
	if !errors.As(err, &unk) || len(unk.Valid) != 6 {
		t.Fatalf("expected UnknownIDError with 6 valid ids, got %v", err)
	}
}

func TestRhythmicPreset_Unknown(t *testing.T) {
	_, err := taxonomy.Default().RhythmicPreset("waltz")
	var unk *taxonomy.UnknownIDError
	if !errors.As(err, &unk) || unk.Kind != taxonomy.KindPreset {
		t.Fatalf("expected preset UnknownIDError, got %v", err)
	}
}

func TestNearestType_Centers(t *testing.T) {
	s := taxonomy.Default()
	for _, vt := range s.VisualTypes() {
		id, d := s.NearestType(vt.Center)
		if id != vt.ID || d != 0 {
			t.Errorf("NearestType(%s center) = %s, %v", vt.ID, id, d)
		}
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing axis",
			doc: `visual_types:
  - id: a
    center: {dissolution_rate: 0.1, edge_coherence: 0.1, substrate_visibility: 0.1, pigment_hydrology: 0.1}
`,
			want: "missing axis anchor_density",
		},
		{
			name: "duplicate type",
			doc: `visual_types:
  - id: a
    center: {dissolution_rate: 0.1, edge_coherence: 0.1, substrate_visibility: 0.1, pigment_hydrology: 0.1, anchor_density: 0.1}
  - id: a
    center: {dissolution_rate: 0.2, edge_coherence: 0.1, substrate_visibility: 0.1, pigment_hydrology: 0.1, anchor_density: 0.1}
`,
			want: "duplicate id",
		},
		{
			name: "bad preset endpoint",
			doc: `visual_types:
  - id: a
    center: {dissolution_rate: 0.1, edge_coherence: 0.1, substrate_visibility: 0.1, pigment_hydrology: 0.1, anchor_density: 0.1}
rhythmic_presets:
  - id: r
    state_a: a
    state_b: b
    period: 4
`,
			want: "unresolvable endpoint",
		},
		{
			name: "empty",
			doc:  `edge_modes: []`,
			want: "no visual types",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := taxonomy.Load([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
