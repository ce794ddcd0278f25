package vocab

import (
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

// Extract synthesizes vocabulary for a named state or explicit coordinates.
// A non-empty id takes precedence and goes through the shared resolver.
func Extract(store *taxonomy.Store, id string, state *space.Point, strength float64) (Vocabulary, error) {
	switch {
	case id != "":
		p, err := store.ResolvePoint(taxonomy.KindState, id)
		if err != nil {
			return Vocabulary{}, err
		}
		return Synthesize(store, p, strength), nil
	case state != nil:
		return Synthesize(store, *state, strength), nil
	default:
		return Vocabulary{}, &taxonomy.MissingInputError{
			Op:           "extract_vocabulary",
			Alternatives: []string{"state", "dissolution_id"},
		}
	}
}
