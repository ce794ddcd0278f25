// Package classify infers positions in the parameter space from free text.
//
// Two independent operations live here. Intent picks one discrete visual
// type for routing; Decompose produces a continuous point for interpolation.
// Both use case-insensitive substring matching against fixed phrase lists.
package classify

import (
	"strings"

	"dissolve/internal/display"
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

const (
	// FallbackStyle is chosen when no intent term matches: ambiguous intent
	// lands on the mid-tension state.
	FallbackStyle      = "contested_boundary"
	FallbackConfidence = 0.3

	intentSaturation = 4.0
	summaryLength    = 150
)

// StyleSummary is a short description of the selected style.
type StyleSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TypeCount is the number of intent terms matched for one type.
type TypeCount struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

// Intent is the result of classifying free text to a single visual type.
type Intent struct {
	PrimaryStyle       string              `json:"primary_style"`
	StyleDetails       StyleSummary        `json:"style_details"`
	Confidence         float64             `json:"confidence"`
	TypeScores         []TypeCount         `json:"type_scores"`
	MatchedKeywords    map[string][]string `json:"matched_keywords"`
	SuggestedHydrology string              `json:"suggested_hydrology"`
	SuggestedSubstrate string              `json:"suggested_substrate"`
	Center             space.Point         `json:"center"`
}

// ClassifyIntent counts intent terms per visual type and picks the type with
// the most matches; ties go to the type declared first.
func ClassifyIntent(store *taxonomy.Store, text string) Intent {
	lower := strings.ToLower(text)

	types := store.VisualTypes()
	scores := make([]TypeCount, len(types))
	matched := make(map[string][]string)
	best, bestScore := -1, 0
	for i, vt := range types {
		var hits []string
		for _, term := range lookup(intentTerms, vt.ID) {
			if strings.Contains(lower, term) {
				hits = append(hits, term)
			}
		}
		scores[i] = TypeCount{ID: vt.ID, Score: len(hits)}
		if len(hits) > 0 {
			matched[vt.ID] = hits
		}
		if len(hits) > bestScore {
			best, bestScore = i, len(hits)
		}
	}

	primary := FallbackStyle
	confidence := FallbackConfidence
	if best >= 0 {
		primary = types[best].ID
		confidence = min(1.0, float64(bestScore)/intentSaturation)
	}
	vt, _ := store.VisualType(primary)

	return Intent{
		PrimaryStyle: primary,
		StyleDetails: StyleSummary{
			Name:        vt.Name,
			Description: display.Truncate(vt.Description, summaryLength),
		},
		Confidence:         confidence,
		TypeScores:         scores,
		MatchedKeywords:    matched,
		SuggestedHydrology: suggestHydrology(lower),
		SuggestedSubstrate: suggestSubstrate(lower),
		Center:             vt.Center,
	}
}

// suggestHydrology scans every category in order; within a category the
// first matching term is enough, and a later category overrides an earlier
// one.
func suggestHydrology(lower string) string {
	hint := defaultHydrology
	for _, set := range hydrologyTerms {
		for _, term := range set.terms {
			if strings.Contains(lower, term) {
				hint = set.id
				break
			}
		}
	}
	return hint
}

func suggestSubstrate(lower string) string {
	for _, set := range substrateTerms {
		for _, term := range set.terms {
			if strings.Contains(lower, term) {
				return set.id
			}
		}
	}
	return defaultSubstrate
}
