package prompt

import (
	"dissolve/internal/classify"
	"dissolve/internal/mapper"
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
	"dissolve/internal/vocab"
)

// EnhanceRequest is free text plus optional overrides.
type EnhanceRequest struct {
	UserIntent    string
	StyleOverride string
	Substrate     string
	Intensity     string
}

// Provenance records both the style detected from the text and the style
// actually applied.
type Provenance struct {
	DetectedStyle   string              `json:"detected_style"`
	AppliedStyle    string              `json:"applied_style"`
	Confidence      float64             `json:"confidence"`
	MatchedKeywords map[string][]string `json:"matched_keywords"`
}

// Parameters is the mapped point for the applied style.
type Parameters struct {
	State     space.Point `json:"state"`
	Intensity string      `json:"intensity"`
	StyleName string      `json:"style_name"`
}

// HydrologySelection pairs the hydrology id with its catalog record.
type HydrologySelection struct {
	State   string                  `json:"state"`
	Details taxonomy.HydrologyState `json:"details"`
}

// ContrastSelection pairs the contrast curve id with its catalog record.
type ContrastSelection struct {
	Curve   string                 `json:"curve"`
	Details taxonomy.ContrastCurve `json:"details"`
}

// Enhancement is everything a downstream writer needs to produce a final
// image prompt for the user's intent.
type Enhancement struct {
	Classification    Provenance              `json:"classification"`
	Parameters        Parameters              `json:"parameters"`
	ActiveEdgeModes   []string                `json:"active_edge_modes"`
	Hydrology         HydrologySelection      `json:"hydrology"`
	Contrast          ContrastSelection       `json:"contrast"`
	Substrate         *taxonomy.SubstrateType `json:"substrate"`
	Prompt            string                  `json:"prompt"`
	Keywords          []string                `json:"keywords"`
	Optical           taxonomy.Optical        `json:"optical"`
	ColorAssociations []string                `json:"color_associations"`
	Characteristics   []string                `json:"characteristics"`
	Vocabulary        vocab.ByCategory        `json:"vocabulary"`
}

// Enhance classifies the intent, maps the chosen style, and attaches the
// composite prompt and vocabulary for the style's center. A style override
// that is not a visual type is ignored in favor of the detected style.
func Enhance(store *taxonomy.Store, req EnhanceRequest) (Enhancement, error) {
	intent := classify.ClassifyIntent(store, req.UserIntent)
	styleID := intent.PrimaryStyle
	if _, ok := store.VisualType(req.StyleOverride); ok {
		styleID = req.StyleOverride
	}

	m, err := mapper.Map(store, mapper.Request{
		StyleID:   styleID,
		Intensity: req.Intensity,
		Emphasis:  mapper.EmphasisBalanced,
		Substrate: req.Substrate,
	})
	if err != nil {
		return Enhancement{}, err
	}

	composite, err := Attractor(store, Request{AttractorID: styleID, Mode: ModeComposite})
	if err != nil {
		return Enhancement{}, err
	}
	words, err := vocab.Extract(store, styleID, nil, 1.0)
	if err != nil {
		return Enhancement{}, err
	}

	return Enhancement{
		Classification: Provenance{
			DetectedStyle:   intent.PrimaryStyle,
			AppliedStyle:    styleID,
			Confidence:      intent.Confidence,
			MatchedKeywords: intent.MatchedKeywords,
		},
		Parameters: Parameters{
			State:     m.State,
			Intensity: m.Intensity,
			StyleName: m.StyleName,
		},
		ActiveEdgeModes:   m.ActiveEdgeModes,
		Hydrology:         HydrologySelection{State: m.HydrologyState, Details: m.HydrologyDetails},
		Contrast:          ContrastSelection{Curve: m.ContrastCurve, Details: m.ContrastCurveDetails},
		Substrate:         m.Substrate,
		Prompt:            composite.Prompt,
		Keywords:          m.Keywords,
		Optical:           m.OpticalProperties,
		ColorAssociations: m.ColorAssociations,
		Characteristics:   m.Characteristics,
		Vocabulary:        words.VocabularyByCategory,
	}, nil
}
