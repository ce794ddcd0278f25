package classify

import (
	"sort"
	"strings"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

// DomainID tags decomposition output for downstream registries.
const DomainID = "watercolor_dissolution"

const (
	decomposeTemperature = 1.0
	decomposeSaturation  = 8.0
)

// TypeScore is a continuous score for one type.
type TypeScore struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// TypeWeight is a softmax weight for one type.
type TypeWeight struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// Decomposition is a continuous point inferred from free text.
type Decomposition struct {
	DomainID            string           `json:"domain_id"`
	Coordinates         space.Point      `json:"coordinates"`
	Confidence          float64          `json:"confidence"`
	NearestType         string           `json:"nearest_type"`
	NearestTypeDistance float64          `json:"nearest_type_distance"`
	TypeScores          []TypeScore      `json:"type_scores"`
	TypeWeights         []TypeWeight     `json:"type_weights"`
	MatchedFragments    []string         `json:"matched_fragments"`
	OpticalMatch        taxonomy.Optical `json:"optical_match"`
	ColorMatches        []string         `json:"color_matches"`
	Detected            bool             `json:"detected"`
}

// Decompose scores every visual type from three phrase families, softmaxes
// the scores and returns the weighted mean of the type centers. The result
// is a convex combination of the centers, so it never leaves their bounding
// box. The reported nearest type is measured from the blended point and can
// differ from the highest-weighted type.
func Decompose(store *taxonomy.Store, text string) Decomposition {
	lower := strings.ToLower(text)

	types := store.VisualTypes()
	raw := make([]float64, len(types))
	seen := make(map[string]bool)
	var total float64
	for i, vt := range types {
		score := matchFamily(lower, lookup(fragmentTerms, vt.ID), fragmentWeight, seen) +
			matchFamily(lower, lookup(opticalTerms, vt.ID), opticalWeight, seen) +
			matchFamily(lower, lookup(colorTerms, vt.ID), colorWeight, seen)
		raw[i] = score
		total += score
	}

	weights := space.Softmax(raw, decomposeTemperature)
	coords := space.WeightedMean(store.Centers(), weights)
	nearestID, nearestDist := store.NearestType(coords)
	nearest, _ := store.VisualType(nearestID)

	scores := make([]TypeScore, len(types))
	tw := make([]TypeWeight, len(types))
	for i, vt := range types {
		scores[i] = TypeScore{ID: vt.ID, Score: space.Round(raw[i], 2)}
		tw[i] = TypeWeight{ID: vt.ID, Weight: space.Round(weights[i], 4)}
	}

	fragments := make([]string, 0, len(seen))
	for f := range seen {
		fragments = append(fragments, f)
	}
	sort.Strings(fragments)

	return Decomposition{
		DomainID:            DomainID,
		Coordinates:         coords.Round(4),
		Confidence:          space.Round(min(1.0, total/decomposeSaturation), 4),
		NearestType:         nearestID,
		NearestTypeDistance: space.Round(nearestDist, 4),
		TypeScores:          scores,
		TypeWeights:         tw,
		MatchedFragments:    fragments,
		OpticalMatch:        nearest.Optical,
		ColorMatches:        nearest.ColorAssociations,
		Detected:            total > 0,
	}
}

func matchFamily(lower string, terms []string, weight float64, seen map[string]bool) float64 {
	var score float64
	for _, term := range terms {
		if strings.Contains(lower, term) {
			score += weight
			seen[term] = true
		}
	}
	return score
}
