package display

import "testing"

func TestAxis(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"dissolution_rate", "Dissolution"},
		{"edge_coherence", "Edge Coherence"},
		{"substrate_visibility", "Substrate"},
		{"pigment_hydrology", "Hydrology"},
		{"anchor_density", "Anchors"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Axis(tc.name); got != tc.want {
			t.Errorf("Axis(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAxisWithCode(t *testing.T) {
	if got := AxisWithCode("pigment_hydrology"); got != "Hydrology (pigment_hydrology)" {
		t.Errorf("got %q", got)
	}
	if got := AxisWithCode("unknown"); got != "unknown" {
		t.Errorf("got %q", got)
	}
}

func TestWordsAndTitle(t *testing.T) {
	if got := Words("matte_photographic"); got != "matte photographic" {
		t.Errorf("Words = %q", got)
	}
	if got := Title("ghost_impression"); got != "Ghost Impression" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("a__b"); got != "A  B" {
		t.Errorf("Title with empty part = %q", got)
	}
}

func TestPath(t *testing.T) {
	got := Path([]string{"editorial_wash", "chromatic_flood"})
	if got != "Editorial Wash → Chromatic Flood" {
		t.Errorf("Path = %q", got)
	}
	if Path(nil) != "" {
		t.Error("empty path should render empty")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0.15, "15%"},
		{0.5, "50%"},
		{1, "100%"},
		{0, "0%"},
	}
	for _, tc := range cases {
		if got := Percent(tc.v); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("ab", 3); got != "ab" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("a—b—c", 2); got != "a—" {
		t.Errorf("rune-aware truncation failed: %q", got)
	}
}
