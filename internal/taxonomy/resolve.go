package taxonomy

import "dissolve/internal/space"

// Catalog names the table an identifier was resolved from.
type Catalog string

const (
	CatalogCanonicalState Catalog = "canonical_state"
	CatalogVisualType     Catalog = "visual_type"
	CatalogAttractor      Catalog = "attractor_preset"
)

// Resolved is a point found by Resolve together with its source catalog.
type Resolved struct {
	ID     string
	Source Catalog
	Point  space.Point
}

// Resolve looks id up in the canonical states, then the visual types, then
// the attractor presets. The first match wins.
func (s *Store) Resolve(id string) (Resolved, bool) {
	if i, ok := s.states[id]; ok {
		return Resolved{ID: id, Source: CatalogCanonicalState, Point: s.doc.CanonicalStates[i].Coordinates}, true
	}
	if i, ok := s.types[id]; ok {
		return Resolved{ID: id, Source: CatalogVisualType, Point: s.doc.VisualTypes[i].Center}, true
	}
	if i, ok := s.attractors[id]; ok {
		return Resolved{ID: id, Source: CatalogAttractor, Point: s.doc.AttractorPresets[i].State}, true
	}
	return Resolved{}, false
}

// ResolvePoint is Resolve returning an UnknownIDError of the given kind when
// id is not found in any catalog.
func (s *Store) ResolvePoint(kind, id string) (space.Point, error) {
	r, ok := s.Resolve(id)
	if !ok {
		return space.Point{}, &UnknownIDError{Kind: kind, ID: id, Valid: s.ResolvableIDs()}
	}
	return r.Point, nil
}

// ResolvableIDs lists every id Resolve accepts, in resolution order without
// duplicates.
func (s *Store) ResolvableIDs() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, cs := range s.doc.CanonicalStates {
		add(cs.ID)
	}
	for _, vt := range s.doc.VisualTypes {
		add(vt.ID)
	}
	for _, ap := range s.doc.AttractorPresets {
		add(ap.ID)
	}
	return out
}
