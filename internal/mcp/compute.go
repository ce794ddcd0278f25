package mcp

import (
	"context"

	"dissolve/internal/classify"
	"dissolve/internal/mapper"
	"dissolve/internal/prompt"
	"dissolve/internal/space"
	"dissolve/internal/trajectory"
	"dissolve/internal/vocab"
)

type classifyInput struct {
	UserIntent string `json:"user_intent" jsonschema:"free text describing the desired dissolution aesthetic"`
}

type decomposeInput struct {
	Description string `json:"description" jsonschema:"free text to place in the 5D parameter space"`
}

type mapInput struct {
	StyleID   string `json:"style_id" jsonschema:"visual type id"`
	Intensity string `json:"intensity,omitempty" jsonschema:"subtle, moderate or dramatic (default moderate)"`
	Emphasis  string `json:"emphasis,omitempty" jsonschema:"balanced, dissolution, edge, substrate or hydrology (default balanced)"`
	Substrate string `json:"substrate,omitempty" jsonschema:"optional substrate type id"`
}

type vocabularyInput struct {
	State         *space.Point `json:"state,omitempty" jsonschema:"5D coordinates; ignored when dissolution_id is set"`
	DissolutionID string       `json:"dissolution_id,omitempty" jsonschema:"canonical state, visual type or attractor id"`
	Strength      *float64     `json:"strength,omitempty" jsonschema:"passed through to the result (default 1.0)"`
}

type distanceInput struct {
	ID1 string `json:"id_1" jsonschema:"first resolvable id"`
	ID2 string `json:"id_2" jsonschema:"second resolvable id"`
}

type trajectoryInput struct {
	StartID  string `json:"start_id" jsonschema:"resolvable id of the first endpoint"`
	EndID    string `json:"end_id" jsonschema:"resolvable id of the second endpoint"`
	NumSteps int    `json:"num_steps,omitempty" jsonschema:"number of intervals; steps+1 points are sampled"`
}

type attractorPromptInput struct {
	AttractorID   string       `json:"attractor_id,omitempty" jsonschema:"attractor preset, canonical state or visual type id"`
	CustomState   *space.Point `json:"custom_state,omitempty" jsonschema:"5D coordinates; wins over attractor_id"`
	Mode          string       `json:"mode,omitempty" jsonschema:"composite, split_view or sequence (default composite)"`
	StyleModifier string       `json:"style_modifier,omitempty" jsonschema:"free text appended to the prompt"`
	KeyframeCount int          `json:"keyframe_count,omitempty" jsonschema:"keyframes in sequence mode"`
}

type rhythmInput struct {
	StateAID           string  `json:"state_a_id" jsonschema:"resolvable id of the first endpoint"`
	StateBID           string  `json:"state_b_id" jsonschema:"resolvable id of the second endpoint"`
	StepsPerCycle      int     `json:"steps_per_cycle,omitempty" jsonschema:"steps in one cycle"`
	NumCycles          int     `json:"num_cycles,omitempty" jsonschema:"number of cycles"`
	OscillationPattern string  `json:"oscillation_pattern,omitempty" jsonschema:"sinusoidal, triangle, sawtooth or drift (default sinusoidal)"`
	PhaseOffset        float64 `json:"phase_offset,omitempty" jsonschema:"phase offset in whole cycles"`
	Seed               *int64  `json:"seed,omitempty" jsonschema:"noise seed for the drift pattern"`
}

type presetInput struct {
	PresetName string `json:"preset_name" jsonschema:"rhythmic preset id"`
}

type sequencePromptsInput struct {
	PresetName    string `json:"preset_name" jsonschema:"rhythmic preset id"`
	KeyframeCount int    `json:"keyframe_count,omitempty" jsonschema:"keyframes across one cycle"`
	StyleModifier string `json:"style_modifier,omitempty" jsonschema:"free text appended to every prompt"`
}

func (s *Server) registerComputeTools() {
	addTool(s, "classify_dissolution_intent",
		"Pick the visual type that best matches free text, with hydrology and substrate hints.",
		func(_ context.Context, in classifyInput) (classify.Intent, error) {
			return classify.ClassifyIntent(s.tax, in.UserIntent), nil
		})
	addTool(s, "decompose_dissolution_from_description",
		"Infer a continuous 5D point from free text by soft assignment over the visual types.",
		func(_ context.Context, in decomposeInput) (classify.Decomposition, error) {
			return classify.Decompose(s.tax, in.Description), nil
		})
	addTool(s, "map_dissolution_parameters",
		"Map a style plus intensity and emphasis to a point with derived edge, hydrology and contrast selections.",
		func(_ context.Context, in mapInput) (mapper.Mapping, error) {
			return mapper.Map(s.tax, mapper.Request{
				StyleID:   in.StyleID,
				Intensity: in.Intensity,
				Emphasis:  in.Emphasis,
				Substrate: in.Substrate,
			})
		})
	addTool(s, "extract_dissolution_visual_vocabulary",
		"Blend the vocabulary of the visual types around a point. Provide state or dissolution_id.",
		func(_ context.Context, in vocabularyInput) (vocab.Vocabulary, error) {
			strength := 1.0
			if in.Strength != nil {
				strength = *in.Strength
			}
			return vocab.Extract(s.tax, in.DissolutionID, in.State, strength)
		})
	addTool(s, "compute_dissolution_distance",
		"Euclidean distance, per-axis difference and dominant axis between two resolvable ids.",
		func(_ context.Context, in distanceInput) (trajectory.Comparison, error) {
			return trajectory.Compare(s.tax, in.ID1, in.ID2)
		})
	addTool(s, "compute_dissolution_trajectory",
		"Sample a straight line between two resolvable ids.",
		func(_ context.Context, in trajectoryInput) (trajectory.Trajectory, error) {
			steps := in.NumSteps
			if steps < 1 {
				steps = s.cfg.Defaults.TrajectorySteps
			}
			return trajectory.Linear(s.tax, in.StartID, in.EndID, steps)
		})
	addTool(s, "generate_dissolution_attractor_prompt",
		"Render an attractor or custom point as a composite prompt, per-category fragments, or a keyframe sequence.",
		func(_ context.Context, in attractorPromptInput) (prompt.Result, error) {
			k := in.KeyframeCount
			if k < 1 {
				k = s.cfg.Defaults.KeyframeCount
			}
			return prompt.Attractor(s.tax, prompt.Request{
				AttractorID:   in.AttractorID,
				CustomState:   in.CustomState,
				Mode:          in.Mode,
				StyleModifier: in.StyleModifier,
				KeyframeCount: k,
			})
		})
	addTool(s, "generate_dissolution_rhythmic_sequence",
		"Oscillate between two resolvable ids, sampling about four keyframes per cycle.",
		func(_ context.Context, in rhythmInput) (trajectory.Rhythm, error) {
			return trajectory.Rhythmic(s.tax, s.rhythmRequest(in))
		})
	addTool(s, "apply_dissolution_rhythmic_preset",
		"Run one sinusoidal cycle of a rhythmic preset, every step sampled.",
		func(_ context.Context, in presetInput) (trajectory.PresetRun, error) {
			return trajectory.ApplyPreset(s.tax, in.PresetName)
		})
	addTool(s, "generate_dissolution_sequence_prompts",
		"Evenly phased keyframe prompts across one cycle of a rhythmic preset.",
		func(_ context.Context, in sequencePromptsInput) (prompt.PresetSequence, error) {
			k := in.KeyframeCount
			if k < 1 {
				k = s.cfg.Defaults.KeyframeCount
			}
			return prompt.Sequence(s.tax, in.PresetName, k, in.StyleModifier)
		})
	addTool(s, "validate_dissolution_decomposition_round_trip",
		"Decompose each visual type's own keywords and report how well the centers are recovered.",
		func(ctx context.Context, _ noInput) (classify.RoundTripReport, error) {
			return classify.RoundTrip(ctx, s.tax)
		})
}

func (s *Server) rhythmRequest(in rhythmInput) trajectory.RhythmRequest {
	req := trajectory.RhythmRequest{
		StateA:        in.StateAID,
		StateB:        in.StateBID,
		StepsPerCycle: in.StepsPerCycle,
		Cycles:        in.NumCycles,
		Shape:         in.OscillationPattern,
		PhaseOffset:   in.PhaseOffset,
		Seed:          s.cfg.Defaults.DriftSeed,
	}
	if req.StepsPerCycle < 1 {
		req.StepsPerCycle = s.cfg.Defaults.StepsPerCycle
	}
	if req.Cycles < 1 {
		req.Cycles = s.cfg.Defaults.NumCycles
	}
	if in.Seed != nil {
		req.Seed = *in.Seed
	}
	return req
}
