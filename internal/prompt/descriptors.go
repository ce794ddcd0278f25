package prompt

import "dissolve/internal/space"

func hydrologyDescriptor(p space.Point) string {
	switch h := p.PigmentHydrology; {
	case h < 0.15:
		return "dry brush technique with broken textured marks revealing paper grain"
	case h < 0.35:
		return "controlled wash with even pigment coverage and predictable edges"
	case h < 0.55:
		return "wet-on-dry layered washes with crisp overlap boundaries"
	case h < 0.8:
		return "wet-on-wet diffusion with soft bloom formations and pigment migration"
	default:
		return "flooding technique with gravity-driven drips, capillary branching, and pigment pooling"
	}
}

func edgeDescriptor(p space.Point) string {
	switch e := p.EdgeCoherence; {
	case e > 0.7:
		return "architectural hard edges and sharp silhouette cuts persisting through dissolution"
	case e > 0.4:
		return "mixed edge types: cauliflower backruns alongside architectural remnants and granulation boundaries"
	default:
		return "feathered bleed edges and soft wet-lift transitions throughout"
	}
}

func substrateDescriptor(p space.Point) string {
	switch s := p.SubstrateVisibility; {
	case s > 0.7:
		return "paper surface as dominant compositional element — white ground breathing through as active negative space"
	case s > 0.35:
		return "paper partially visible between wash areas, contributing to luminosity"
	default:
		return "substrate hidden beneath continuous pigment coverage"
	}
}

func anchorDescriptor(p space.Point) string {
	switch a := p.AnchorDensity; {
	case a > 0.7:
		return "dense photographic anchors — recognizable objects maintaining sharp fidelity throughout"
	case a > 0.3:
		return "scattered fidelity anchors — select objects retaining photographic clarity amid dissolution"
	default:
		return "minimal anchoring — near-abstract with content surviving only as color memory or vague shape"
	}
}
