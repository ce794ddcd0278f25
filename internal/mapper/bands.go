package mapper

import "dissolve/internal/space"

// EdgeModes returns the edge modes active at p. The bands overlap, so a
// transitional edge coherence can activate four modes at once.
func EdgeModes(p space.Point) []string {
	var modes []string
	e := p.EdgeCoherence
	if e > 0.6 {
		modes = append(modes, "architectural_hard", "silhouette_cut")
	}
	if e >= 0.3 && e <= 0.7 {
		modes = append(modes, "cauliflower_backrun", "granulation_boundary")
	}
	if e < 0.4 {
		modes = append(modes, "feathered_bleed", "wet_lift")
	}
	return modes
}

// Hydrology returns the hydrology state for p's pigment_hydrology.
func Hydrology(p space.Point) string {
	h := p.PigmentHydrology
	switch {
	case h < 0.15:
		return "dry_brush"
	case h < 0.35:
		return "controlled_wash"
	case h < 0.55:
		return "wet_on_dry"
	case h < 0.8:
		return "wet_on_wet"
	default:
		return "flooding"
	}
}

// Contrast returns the contrast curve for p. Rules are checked in priority
// order; their conditions overlap.
func Contrast(p space.Point) string {
	switch {
	case p.AnchorDensity > 0.7:
		return "anchor_contrast"
	case p.DissolutionRate > 0.8 && p.PigmentHydrology > 0.8:
		return "flood_flat"
	case p.DissolutionRate > 0.6:
		return "high_key_dissolution"
	case p.SubstrateVisibility > 0.6:
		return "lifted_wash"
	default:
		return "photographic_preserved"
	}
}

// Characteristics describes p in a few short phrases built from the same
// kind of bands as the selections above.
func Characteristics(p space.Point) []string {
	var out []string

	switch {
	case p.DissolutionRate < 0.3:
		out = append(out, "photographic fidelity dominant with watercolor accents")
	case p.DissolutionRate < 0.6:
		out = append(out, "contested territory between photographic and painterly regimes")
	default:
		out = append(out, "painterly dissolution overriding photographic source")
	}

	switch {
	case p.EdgeCoherence > 0.6:
		out = append(out, "sharp architectural edges persisting through dissolution")
	case p.EdgeCoherence < 0.3:
		out = append(out, "all edges softened into feathered bleeds and backruns")
	}

	if p.SubstrateVisibility > 0.6 {
		out = append(out, "paper surface breathing through as compositional element")
	}

	switch {
	case p.PigmentHydrology > 0.7:
		out = append(out, "wet-on-wet pigment behavior driving visual texture")
	case p.PigmentHydrology < 0.2:
		out = append(out, "dry technique preserving structural marks")
	}

	switch {
	case p.AnchorDensity > 0.6:
		out = append(out, "dense photographic anchors maintaining recognizability")
	case p.AnchorDensity < 0.2:
		out = append(out, "near-abstract with minimal fidelity anchors")
	}

	return out
}
