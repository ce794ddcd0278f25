package trajectory

import (
	"math"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

// PresetRun is a full sinusoidal period of a rhythmic preset.
type PresetRun struct {
	PresetName    string                  `json:"preset_name"`
	PresetDetails taxonomy.RhythmicPreset `json:"preset_details"`
	Period        int                     `json:"period"`
	StateA        space.Point             `json:"state_a"`
	StateB        space.Point             `json:"state_b"`
	Sequence      []Sample                `json:"sequence"`
}

// Endpoints resolves both ends of a preset.
func Endpoints(store *taxonomy.Store, preset taxonomy.RhythmicPreset) (a, b space.Point, err error) {
	if a, err = store.ResolvePoint(taxonomy.KindState, preset.StateA); err != nil {
		return
	}
	b, err = store.ResolvePoint(taxonomy.KindState, preset.StateB)
	return
}

// ApplyPreset samples every step of one sinusoidal period of the named
// preset. Unlike Rhythmic there is no decimation and no phase offset.
func ApplyPreset(store *taxonomy.Store, name string) (PresetRun, error) {
	preset, err := store.RhythmicPreset(name)
	if err != nil {
		return PresetRun{}, err
	}
	a, b, err := Endpoints(store, preset)
	if err != nil {
		return PresetRun{}, err
	}

	osc := newOscillator(Sinusoidal, preset.Period, 0, 0)
	seq := make([]Sample, 0, preset.Period)
	for step := 0; step < preset.Period; step++ {
		t := osc(step)
		seq = append(seq, sample(store, step, t, space.Interpolate(a, b, t)))
	}

	return PresetRun{
		PresetName:    name,
		PresetDetails: preset,
		Period:        preset.Period,
		StateA:        a,
		StateB:        b,
		Sequence:      seq,
	}, nil
}

// Keyframe is one evenly spaced phase of a preset's cycle.
type Keyframe struct {
	Index        int `json:"keyframe"`
	PhaseDegrees int `json:"phase_degrees"`
	Sample
}

// Keyframes places k keyframes at phases i/k of one sinusoidal cycle of the
// preset. k below one is treated as one.
func Keyframes(store *taxonomy.Store, preset taxonomy.RhythmicPreset, k int) ([]Keyframe, error) {
	a, b, err := Endpoints(store, preset)
	if err != nil {
		return nil, err
	}
	k = max(1, k)
	out := make([]Keyframe, 0, k)
	for i := 0; i < k; i++ {
		frac := float64(i) / float64(k)
		t := sine(frac)
		out = append(out, Keyframe{
			Index:        i + 1,
			PhaseDegrees: int(math.Round(frac * 360)),
			Sample:       sample(store, i, t, space.Interpolate(a, b, t)),
		})
	}
	return out, nil
}
