package mcp

import (
	"context"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

const (
	domainID          = "watercolor_dissolution"
	styleBlurbLength  = 120
	visualTypeKeyword = 4
)

var axisRanges = map[string]string{
	"dissolution_rate":     "0.0 (photographic) to 1.0 (painterly abstraction)",
	"edge_coherence":       "0.0 (feathered/bled) to 1.0 (architecturally sharp)",
	"substrate_visibility": "0.0 (paper hidden) to 1.0 (paper dominant)",
	"pigment_hydrology":    "0.0 (dry brush) to 1.0 (flooding wet-on-wet)",
	"anchor_density":       "0.0 (pure abstraction) to 1.0 (dense photographic anchors)",
}

type noInput struct{}

type parameterSpace struct {
	Dimensions int               `json:"dimensions"`
	Axes       map[string]string `json:"axes"`
}

type serverInfoOutput struct {
	Name              string            `json:"name"`
	Version           string            `json:"version"`
	Domain            string            `json:"domain"`
	Description       string            `json:"description"`
	ParameterSpace    parameterSpace    `json:"parameter_space"`
	VisualTypes       int               `json:"visual_types"`
	CanonicalStates   int               `json:"canonical_states"`
	EdgeModes         int               `json:"edge_modes"`
	HydrologyStates   int               `json:"hydrology_states"`
	SubstrateTypes    int               `json:"substrate_types"`
	RhythmicPresets   int               `json:"rhythmic_presets"`
	AttractorPresets  int               `json:"attractor_presets"`
	ColorHarmonyModes int               `json:"color_harmony_modes"`
	ContrastCurves    int               `json:"contrast_curves"`
	Layers            map[string]string `json:"layer_architecture"`
}

type styleSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Center      space.Point `json:"center"`
}

type listStylesOutput struct {
	Styles []styleSummary `json:"styles"`
	Count  int            `json:"count"`
}

type styleDetailsInput struct {
	StyleID string `json:"style_id" jsonschema:"visual type id, e.g. editorial_wash or chromatic_flood"`
}

type visualTypeBrief struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Center            space.Point      `json:"center"`
	Keywords          []string         `json:"keywords"`
	Optical           taxonomy.Optical `json:"optical"`
	ColorAssociations []string         `json:"color_associations"`
}

type visualTypesOutput struct {
	VisualTypes    []visualTypeBrief `json:"visual_types"`
	ParameterNames []string          `json:"parameter_names"`
}

type canonicalStatesOutput struct {
	CanonicalStates []taxonomy.CanonicalState `json:"canonical_states"`
	Count           int                       `json:"count"`
}

type edgeModesOutput struct {
	EdgeModes []taxonomy.EdgeMode `json:"edge_modes"`
	Count     int                 `json:"count"`
}

type hydrologyStatesOutput struct {
	HydrologyStates []taxonomy.HydrologyState `json:"hydrology_states"`
	Count           int                       `json:"count"`
}

type substrateTypesOutput struct {
	SubstrateTypes []taxonomy.SubstrateType `json:"substrate_types"`
	Count          int                      `json:"count"`
}

type colorHarmonyModesOutput struct {
	ColorHarmonyModes []taxonomy.ColorHarmonyMode `json:"color_harmony_modes"`
	Count             int                         `json:"count"`
}

type contrastCurvesOutput struct {
	ContrastCurves []taxonomy.ContrastCurve `json:"contrast_curves"`
	Count          int                      `json:"count"`
}

type rhythmicPresetsOutput struct {
	RhythmicPresets []taxonomy.RhythmicPreset `json:"rhythmic_presets"`
	Count           int                       `json:"count"`
}

type attractorPresetsOutput struct {
	AttractorPresets []taxonomy.AttractorPreset `json:"attractor_presets"`
	Count            int                        `json:"count"`
}

type presetEndpoints struct {
	StateA string `json:"state_a"`
	StateB string `json:"state_b"`
	Period int    `json:"period"`
}

type attractorBasin struct {
	State       space.Point `json:"state"`
	BasinRadius float64     `json:"basin_radius"`
}

type registryConfigOutput struct {
	DomainID          string                     `json:"domain_id"`
	ParameterNames    []string                   `json:"parameter_names"`
	NVisualTypes      int                        `json:"n_visual_types"`
	VisualTypeCenters map[string]space.Point     `json:"visual_type_centers"`
	RhythmicPresets   map[string]presetEndpoints `json:"rhythmic_presets"`
	AttractorPresets  map[string]attractorBasin  `json:"attractor_presets"`
	Bounds            []float64                  `json:"bounds"`
}

func (s *Server) registerCatalogTools() {
	addTool(s, "get_server_info",
		"Describe the server: parameter axes, catalog sizes and tool layers.",
		s.serverInfo)
	addTool(s, "list_dissolution_styles",
		"List the 6 visual types with a short description and parameter center.",
		s.listStyles)
	addTool(s, "get_dissolution_style_details",
		"Full record for one visual type: keywords, optical properties, colors.",
		s.styleDetails)
	addTool(s, "get_dissolution_visual_types",
		"Every visual type with its first keywords, optical properties and colors, plus the parameter names.",
		s.visualTypes)
	addTool(s, "get_dissolution_canonical_states",
		"List the 10 canonical states with 5D coordinates.",
		func(context.Context, noInput) (canonicalStatesOutput, error) {
			cs := s.tax.CanonicalStates()
			return canonicalStatesOutput{CanonicalStates: cs, Count: len(cs)}, nil
		})
	addTool(s, "list_edge_modes",
		"List the watercolor edge negotiation modes.",
		func(context.Context, noInput) (edgeModesOutput, error) {
			em := s.tax.EdgeModes()
			return edgeModesOutput{EdgeModes: em, Count: len(em)}, nil
		})
	addTool(s, "list_hydrology_states",
		"List the pigment hydrology states from dry brush to flooding.",
		func(context.Context, noInput) (hydrologyStatesOutput, error) {
			hs := s.tax.HydrologyStates()
			return hydrologyStatesOutput{HydrologyStates: hs, Count: len(hs)}, nil
		})
	addTool(s, "list_substrate_types",
		"List the paper substrates with texture properties.",
		func(context.Context, noInput) (substrateTypesOutput, error) {
			st := s.tax.SubstrateTypes()
			return substrateTypesOutput{SubstrateTypes: st, Count: len(st)}, nil
		})
	addTool(s, "list_color_harmony_modes",
		"List the color harmony modes.",
		func(context.Context, noInput) (colorHarmonyModesOutput, error) {
			ch := s.tax.ColorHarmonyModes()
			return colorHarmonyModesOutput{ColorHarmonyModes: ch, Count: len(ch)}, nil
		})
	addTool(s, "list_contrast_curves",
		"List the contrast curve treatments.",
		func(context.Context, noInput) (contrastCurvesOutput, error) {
			cc := s.tax.ContrastCurves()
			return contrastCurvesOutput{ContrastCurves: cc, Count: len(cc)}, nil
		})
	addTool(s, "list_dissolution_rhythmic_presets",
		"List the rhythmic presets with their endpoints and periods.",
		func(context.Context, noInput) (rhythmicPresetsOutput, error) {
			rp := s.tax.RhythmicPresets()
			return rhythmicPresetsOutput{RhythmicPresets: rp, Count: len(rp)}, nil
		})
	addTool(s, "list_dissolution_attractor_presets",
		"List the attractor presets with states and basin radii.",
		func(context.Context, noInput) (attractorPresetsOutput, error) {
			ap := s.tax.AttractorPresets()
			return attractorPresetsOutput{AttractorPresets: ap, Count: len(ap)}, nil
		})
	addTool(s, "get_dissolution_domain_registry_config",
		"Domain configuration for external attractor discovery: centers, preset endpoints, basins and bounds.",
		s.registryConfig)
}

func (s *Server) serverInfo(context.Context, noInput) (serverInfoOutput, error) {
	return serverInfoOutput{
		Name:    s.cfg.Server.Name,
		Version: s.cfg.Server.Version,
		Domain:  domainID,
		Description: "Medium transformation domain mapping photographic fidelity to painterly " +
			"abstraction through watercolor-specific dissolution behaviors.",
		ParameterSpace:    parameterSpace{Dimensions: space.NumAxes, Axes: axisRanges},
		VisualTypes:       len(s.tax.VisualTypes()),
		CanonicalStates:   len(s.tax.CanonicalStates()),
		EdgeModes:         len(s.tax.EdgeModes()),
		HydrologyStates:   len(s.tax.HydrologyStates()),
		SubstrateTypes:    len(s.tax.SubstrateTypes()),
		RhythmicPresets:   len(s.tax.RhythmicPresets()),
		AttractorPresets:  len(s.tax.AttractorPresets()),
		ColorHarmonyModes: len(s.tax.ColorHarmonyModes()),
		ContrastCurves:    len(s.tax.ContrastCurves()),
		Layers: map[string]string{
			"layer_1": "taxonomy retrieval",
			"layer_2": "deterministic computation",
			"layer_3": "synthesis bundle for prompt writers",
		},
	}, nil
}

func (s *Server) listStyles(context.Context, noInput) (listStylesOutput, error) {
	vts := s.tax.VisualTypes()
	out := listStylesOutput{Styles: make([]styleSummary, 0, len(vts)), Count: len(vts)}
	for _, vt := range vts {
		out.Styles = append(out.Styles, styleSummary{
			ID:          vt.ID,
			Name:        vt.Name,
			Description: blurb(vt.Description),
			Center:      vt.Center,
		})
	}
	return out, nil
}

// blurb keeps the first styleBlurbLength runes and always marks the cut.
func blurb(s string) string {
	r := []rune(s)
	if len(r) > styleBlurbLength {
		r = r[:styleBlurbLength]
	}
	return string(r) + "..."
}

func (s *Server) styleDetails(_ context.Context, in styleDetailsInput) (taxonomy.VisualType, error) {
	return s.tax.Style(in.StyleID)
}

func (s *Server) visualTypes(context.Context, noInput) (visualTypesOutput, error) {
	vts := s.tax.VisualTypes()
	out := visualTypesOutput{
		VisualTypes:    make([]visualTypeBrief, 0, len(vts)),
		ParameterNames: space.AxisNames(),
	}
	for _, vt := range vts {
		kw := vt.Keywords
		if len(kw) > visualTypeKeyword {
			kw = kw[:visualTypeKeyword]
		}
		out.VisualTypes = append(out.VisualTypes, visualTypeBrief{
			ID:                vt.ID,
			Name:              vt.Name,
			Center:            vt.Center,
			Keywords:          kw,
			Optical:           vt.Optical,
			ColorAssociations: vt.ColorAssociations,
		})
	}
	return out, nil
}

func (s *Server) registryConfig(context.Context, noInput) (registryConfigOutput, error) {
	vts := s.tax.VisualTypes()
	out := registryConfigOutput{
		DomainID:          domainID,
		ParameterNames:    space.AxisNames(),
		NVisualTypes:      len(vts),
		VisualTypeCenters: make(map[string]space.Point, len(vts)),
		RhythmicPresets:   make(map[string]presetEndpoints),
		AttractorPresets:  make(map[string]attractorBasin),
		Bounds:            []float64{0, 1},
	}
	for _, vt := range vts {
		out.VisualTypeCenters[vt.ID] = vt.Center
	}
	for _, p := range s.tax.RhythmicPresets() {
		out.RhythmicPresets[p.ID] = presetEndpoints{StateA: p.StateA, StateB: p.StateB, Period: p.Period}
	}
	for _, a := range s.tax.AttractorPresets() {
		out.AttractorPresets[a.ID] = attractorBasin{State: a.State, BasinRadius: a.BasinRadius}
	}
	return out, nil
}
