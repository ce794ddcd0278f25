package classify_test

import (
	"context"
	"math"
	"testing"

	"dissolve/internal/classify"
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyIntent_Editorial(t *testing.T) {
	got := classify.ClassifyIntent(taxonomy.Default(), "a controlled, selective wash on an editorial magazine photo")
	if got.PrimaryStyle != "editorial_wash" {
		t.Fatalf("PrimaryStyle = %s, want editorial_wash", got.PrimaryStyle)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", got.Confidence)
	}
	want := []string{"editorial", "magazine", "controlled", "selective"}
	if diff := cmp.Diff(want, got.MatchedKeywords["editorial_wash"]); diff != "" {
		t.Errorf("matched keywords (-want +got):\n%s", diff)
	}
	if got.SuggestedHydrology != "controlled_wash" {
		t.Errorf("SuggestedHydrology = %s", got.SuggestedHydrology)
	}
	if got.SuggestedSubstrate != "cold_press" {
		t.Errorf("SuggestedSubstrate = %s", got.SuggestedSubstrate)
	}
	if len([]rune(got.StyleDetails.Description)) != 150 {
		t.Errorf("description should be truncated to 150 runes, got %d", len([]rune(got.StyleDetails.Description)))
	}
}

func TestClassifyIntent_EmptyFallsBack(t *testing.T) {
	got := classify.ClassifyIntent(taxonomy.Default(), "")
	if got.PrimaryStyle != "contested_boundary" {
		t.Errorf("PrimaryStyle = %s, want contested_boundary", got.PrimaryStyle)
	}
	if got.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want exactly 0.3", got.Confidence)
	}
	if len(got.MatchedKeywords) != 0 {
		t.Errorf("expected no matches, got %v", got.MatchedKeywords)
	}
	for _, s := range got.TypeScores {
		if s.Score != 0 {
			t.Errorf("%s scored %d on empty text", s.ID, s.Score)
		}
	}
}

func TestClassifyIntent_TieGoesToFirstDeclared(t *testing.T) {
	// one hit each for editorial_wash ("magazine") and chromatic_flood ("vivid")
	got := classify.ClassifyIntent(taxonomy.Default(), "VIVID MAGAZINE")
	if got.PrimaryStyle != "editorial_wash" {
		t.Errorf("PrimaryStyle = %s, want editorial_wash", got.PrimaryStyle)
	}
	if got.Confidence != 0.25 {
		t.Errorf("Confidence = %v, want 0.25", got.Confidence)
	}
}

func TestClassifyIntent_Hints(t *testing.T) {
	tests := []struct {
		text      string
		hydrology string
		substrate string
	}{
		{"dry brush study", "dry_brush", "cold_press"},
		// the controlled cue reports the catalog id, not the bare word
		{"a controlled even wash", "controlled_wash", "cold_press"},
		{"layered glazing on smooth paper", "wet_on_dry", "hot_press"},
		{"soft edge bloom", "wet_on_wet", "cold_press"},
		// dry_brush matches first but flooding is checked later and wins
		{"dry pigment with gravity drips", "flooding", "cold_press"},
		{"rough expressive texture", "controlled_wash", "rough"},
		{"japanese sumi ink wash", "controlled_wash", "masa"},
		{"experimental synthetic ground", "controlled_wash", "yupo"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := classify.ClassifyIntent(taxonomy.Default(), tt.text)
			if got.SuggestedHydrology != tt.hydrology {
				t.Errorf("hydrology = %s, want %s", got.SuggestedHydrology, tt.hydrology)
			}
			if _, ok := taxonomy.Default().HydrologyState(got.SuggestedHydrology); !ok {
				t.Errorf("hydrology %s is not a catalog id", got.SuggestedHydrology)
			}
			if got.SuggestedSubstrate != tt.substrate {
				t.Errorf("substrate = %s, want %s", got.SuggestedSubstrate, tt.substrate)
			}
		})
	}
}

func TestDecompose_Ghost(t *testing.T) {
	d := classify.Decompose(taxonomy.Default(), "Ghostly faded blueprint on parchment with tea stains")
	if d.NearestType != "ghost_impression" {
		t.Errorf("NearestType = %s, want ghost_impression", d.NearestType)
	}
	if d.Confidence != 0.6875 {
		t.Errorf("Confidence = %v, want 0.6875", d.Confidence)
	}
	want := []string{"blueprint", "faded", "ghost", "parchment", "tea"}
	if diff := cmp.Diff(want, d.MatchedFragments); diff != "" {
		t.Errorf("fragments (-want +got):\n%s", diff)
	}
	if d.TypeScores[3].ID != "ghost_impression" || d.TypeScores[3].Score != 5.5 {
		t.Errorf("ghost score = %+v", d.TypeScores[3])
	}
	if !d.Detected {
		t.Error("Detected should be true")
	}
}

func TestDecompose_NoMatchIsCentroid(t *testing.T) {
	s := taxonomy.Default()
	d := classify.Decompose(s, "")
	if d.Detected || d.Confidence != 0 {
		t.Errorf("expected undetected zero-confidence result, got %+v", d)
	}
	var sum [space.NumAxes]float64
	centers := s.Centers()
	for _, c := range centers {
		v := c.Vector()
		for k := range sum {
			sum[k] += v[k] / float64(len(centers))
		}
	}
	got := d.Coordinates.Vector()
	for k := range sum {
		if math.Abs(got[k]-sum[k]) > 1e-4 {
			t.Errorf("axis %s: got %v, want centroid %v", space.Axes[k], got[k], sum[k])
		}
	}
}

func TestDecompose_StaysInsideCenterHull(t *testing.T) {
	s := taxonomy.Default()
	texts := []string{
		"saturated vivid flood with drips and capillary pours",
		"minimal paper breath with negative space",
		"tension between both regimes",
		"editorial sharp accent, muted neutral palette",
	}
	lo, hi := boundingBox(s.Centers())
	for _, text := range texts {
		d := classify.Decompose(s, text)
		v := d.Coordinates.Vector()
		for k := range v {
			if v[k] < lo[k]-1e-4 || v[k] > hi[k]+1e-4 {
				t.Errorf("%q: axis %s = %v outside [%v, %v]", text, space.Axes[k], v[k], lo[k], hi[k])
			}
		}
		var wsum float64
		for _, w := range d.TypeWeights {
			wsum += w.Weight
		}
		if math.Abs(wsum-1) > 1e-3 {
			t.Errorf("%q: weights sum to %v", text, wsum)
		}
	}
}

func boundingBox(points []space.Point) (lo, hi [space.NumAxes]float64) {
	for k := range lo {
		lo[k], hi[k] = 1, 0
	}
	for _, p := range points {
		v := p.Vector()
		for k := range v {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}

func TestRoundTrip(t *testing.T) {
	r, err := classify.RoundTrip(context.Background(), taxonomy.Default())
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if r.TypesTested != 6 || len(r.PerType) != 6 {
		t.Fatalf("expected 6 types, got %d", r.TypesTested)
	}
	if r.NearestTypeAccuracy < 5.0/6.0 {
		t.Errorf("nearest type accuracy %v below a strong majority", r.NearestTypeAccuracy)
	}
	if r.MeanReconstructionError > 0.05 {
		t.Errorf("mean reconstruction error %v too large", r.MeanReconstructionError)
	}
	ids := taxonomy.Default().VisualTypeIDs()
	for i, pt := range r.PerType {
		if pt.ID != ids[i] {
			t.Errorf("per-type results out of order at %d: %s", i, pt.ID)
		}
	}
}

func TestRoundTrip_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := classify.RoundTrip(ctx, taxonomy.Default()); err == nil {
		t.Error("expected error from canceled context")
	}
}
