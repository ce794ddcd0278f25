// Package vocab synthesizes descriptive vocabulary for an arbitrary point by
// blending the visual types nearest to it.
package vocab

import (
	"fmt"
	"sort"

	"dissolve/internal/display"
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

const (
	// Temperature is sharper than the default 1.0 so weight concentrates on
	// the closest types.
	Temperature = 0.5

	similarityEpsilon = 0.01
	maxContributors   = 3
	minWeight         = 0.1
	maxDescriptors    = 3
)

// Categories lists the vocabulary categories in output order.
var Categories = []string{
	"dissolution_character",
	"edge_character",
	"substrate_character",
	"hydrology_character",
	"anchor_character",
}

// ByCategory is the categorized descriptor output.
type ByCategory struct {
	DissolutionCharacter []string `json:"dissolution_character"`
	EdgeCharacter        []string `json:"edge_character"`
	SubstrateCharacter   []string `json:"substrate_character"`
	HydrologyCharacter   []string `json:"hydrology_character"`
	AnchorCharacter      []string `json:"anchor_character"`
}

// Get returns the descriptors for a category name, or nil.
func (b ByCategory) Get(category string) []string {
	switch category {
	case "dissolution_character":
		return b.DissolutionCharacter
	case "edge_character":
		return b.EdgeCharacter
	case "substrate_character":
		return b.SubstrateCharacter
	case "hydrology_character":
		return b.HydrologyCharacter
	case "anchor_character":
		return b.AnchorCharacter
	}
	return nil
}

// Weight is one visual type's share of the blend.
type Weight struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// Vocabulary is the synthesized bundle for one point.
type Vocabulary struct {
	NearestVisualType     string           `json:"nearest_visual_type"`
	Distance              float64          `json:"distance"`
	Keywords              []string         `json:"keywords"`
	OpticalProperties     taxonomy.Optical `json:"optical_properties"`
	ColorAssociations     []string         `json:"color_associations"`
	NearestCanonicalState string           `json:"nearest_canonical_state"`
	CanonicalDistance     float64          `json:"canonical_distance"`
	Contributing          []Weight         `json:"contributing"`
	VocabularyByCategory  ByCategory       `json:"vocabulary_by_category"`
	Strength              float64          `json:"strength"`
	InputState            space.Point      `json:"input_state"`
}

// Synthesize blends the vocabulary of the visual types around p. strength is
// carried through to the result unchanged.
func Synthesize(store *taxonomy.Store, p space.Point, strength float64) Vocabulary {
	types := store.VisualTypes()
	scores := make([]float64, len(types))
	for i, vt := range types {
		scores[i] = 1.0 / (space.Distance(p, vt.Center) + similarityEpsilon)
	}
	weights := space.Softmax(scores, Temperature)

	nearestID, nearestDist := store.NearestType(p)
	nearest, _ := store.VisualType(nearestID)

	order := make([]int, len(types))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return weights[order[a]] > weights[order[b]] })
	if len(order) > maxContributors {
		order = order[:maxContributors]
	}

	var edge, substrate, hydrology []string
	contributing := make([]Weight, 0, len(order))
	for _, i := range order {
		vt := types[i]
		contributing = append(contributing, Weight{ID: vt.ID, Weight: weights[i]})
		if weights[i] <= minWeight {
			continue
		}
		edge = append(edge, edgePhrase(vt))
		substrate = append(substrate, substratePhrase(vt))
		hydrology = append(hydrology, hydrologyPhrase(vt))
	}

	return Vocabulary{
		NearestVisualType:     nearestID,
		Distance:              nearestDist,
		Keywords:              nearest.Keywords,
		OpticalProperties:     nearest.Optical,
		ColorAssociations:     nearest.ColorAssociations,
		NearestCanonicalState: nearestID,
		CanonicalDistance:     nearestDist,
		Contributing:          contributing,
		VocabularyByCategory: ByCategory{
			DissolutionCharacter: []string{DissolutionPhrase(p.DissolutionRate)},
			EdgeCharacter:        orFallback(edge, "balanced edge mix"),
			SubstrateCharacter:   orFallback(substrate, "moderate paper visibility"),
			HydrologyCharacter:   orFallback(hydrology, "controlled wash behavior"),
			AnchorCharacter:      []string{AnchorPhrase(p.AnchorDensity)},
		},
		Strength:   strength,
		InputState: p,
	}
}

func orFallback(list []string, fallback string) []string {
	if len(list) == 0 {
		return []string{fallback}
	}
	if len(list) > maxDescriptors {
		return list[:maxDescriptors]
	}
	return list
}

// The three ladders below read the contributing type's center, not the
// query point.

func edgePhrase(vt taxonomy.VisualType) string {
	switch c := vt.Center.EdgeCoherence; {
	case c > 0.7:
		return fmt.Sprintf("architectural hard edges from %s regime", vt.Name)
	case c > 0.4:
		return fmt.Sprintf("mixed edge negotiation from %s regime", vt.Name)
	default:
		return fmt.Sprintf("feathered bleed edges from %s regime", vt.Name)
	}
}

func substratePhrase(vt taxonomy.VisualType) string {
	switch c := vt.Center.SubstrateVisibility; {
	case c > 0.7:
		return fmt.Sprintf("paper dominant — %s aesthetic", vt.Name)
	case c > 0.3:
		return fmt.Sprintf("paper partially visible — %s zone", vt.Name)
	default:
		return fmt.Sprintf("substrate hidden — %s coverage", vt.Name)
	}
}

func hydrologyPhrase(vt taxonomy.VisualType) string {
	switch c := vt.Center.PigmentHydrology; {
	case c > 0.7:
		return fmt.Sprintf("wet flooding behavior from %s", vt.Name)
	case c > 0.3:
		return fmt.Sprintf("controlled wash from %s", vt.Name)
	default:
		return fmt.Sprintf("dry technique from %s", vt.Name)
	}
}

// DissolutionPhrase describes a dissolution rate in bands split at 0.3 and 0.6.
func DissolutionPhrase(rate float64) string {
	var band string
	switch {
	case rate < 0.3:
		band = "photographic dominant"
	case rate < 0.6:
		band = "mid-dissolution tension"
	default:
		band = "painterly dominant"
	}
	return fmt.Sprintf("dissolution rate at %s — %s", display.Percent(rate), band)
}

// AnchorPhrase describes an anchor density in bands split at 0.3 and 0.7.
func AnchorPhrase(density float64) string {
	var band string
	switch {
	case density > 0.7:
		band = "dense photographic anchors throughout"
	case density > 0.3:
		band = "scattered fidelity anchors"
	default:
		band = "minimal anchoring — near-abstract"
	}
	return fmt.Sprintf("anchor density at %s — %s", display.Percent(density), band)
}
