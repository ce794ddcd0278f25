package trajectory

import (
	"math"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Shape is an oscillation waveform mapping a step to t in [0, 1].
type Shape string

const (
	Sinusoidal Shape = "sinusoidal"
	Triangle   Shape = "triangle"
	Sawtooth   Shape = "sawtooth"
	Drift      Shape = "drift"
)

// Defaults for rhythmic sequences when a caller passes a non-positive value.
const (
	DefaultStepsPerCycle = 20
	DefaultCycles        = 3
)

// Shapes lists the supported waveforms.
var Shapes = []Shape{Sinusoidal, Triangle, Sawtooth, Drift}

// ParseShape returns the named shape. Unknown names fall back to Sinusoidal.
func ParseShape(name string) Shape {
	for _, s := range Shapes {
		if string(s) == name {
			return s
		}
	}
	return Sinusoidal
}

const (
	driftOctaves     = 3
	driftPersistence = 0.5
)

// oscillator returns t for a step. period is at least 1.
type oscillator func(step int) float64

func newOscillator(shape Shape, period int, phaseOffset float64, seed int64) oscillator {
	p := float64(period)
	switch shape {
	case Triangle:
		return func(step int) float64 {
			pos := float64(step%period) / p
			if pos < 0.5 {
				return 2 * pos
			}
			return 2 * (1 - pos)
		}
	case Sawtooth:
		return func(step int) float64 {
			return float64(step%period) / p
		}
	case Drift:
		noise := opensimplex.NewNormalized(seed)
		return func(step int) float64 {
			return octaveNoise(noise, float64(step)/p+phaseOffset, 0)
		}
	default:
		return func(step int) float64 {
			return sine(float64(step)/p + phaseOffset)
		}
	}
}

// sine maps a position measured in whole cycles onto [0, 1].
func sine(cycles float64) float64 {
	return 0.5 * (1 + math.Sin(cycles*2*math.Pi))
}

// octaveNoise layers normalized noise at doubling frequencies. The weighted
// average of values in [0, 1] stays in [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64) float64 {
	total, amplitude, maxVal, frequency := 0.0, 1.0, 0.0, 1.0
	for i := 0; i < driftOctaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= driftPersistence
		frequency *= 2
	}
	return total / maxVal
}

// RhythmRequest describes an oscillation between two resolvable ids.
type RhythmRequest struct {
	StateA        string
	StateB        string
	StepsPerCycle int
	Cycles        int
	Shape         string
	// PhaseOffset is measured in whole cycles. Triangle and sawtooth ignore it.
	PhaseOffset float64
	// Seed drives the Drift shape only.
	Seed int64
}

// Rhythm is a decimated oscillation between two states.
type Rhythm struct {
	StateA             string   `json:"state_a"`
	StateB             string   `json:"state_b"`
	OscillationPattern Shape    `json:"oscillation_pattern"`
	StepsPerCycle      int      `json:"steps_per_cycle"`
	NumCycles          int      `json:"num_cycles"`
	TotalSteps         int      `json:"total_steps"`
	SampledKeyframes   int      `json:"sampled_keyframes"`
	Sequence           []Sample `json:"sequence"`
}

// Rhythmic oscillates between req.StateA and req.StateB for
// StepsPerCycle*Cycles steps and keeps every max(1, StepsPerCycle/4)-th
// step, so each cycle yields about four samples whatever the shape.
func Rhythmic(store *taxonomy.Store, req RhythmRequest) (Rhythm, error) {
	a, err := store.ResolvePoint(taxonomy.KindState, req.StateA)
	if err != nil {
		return Rhythm{}, err
	}
	b, err := store.ResolvePoint(taxonomy.KindState, req.StateB)
	if err != nil {
		return Rhythm{}, err
	}
	period := req.StepsPerCycle
	if period < 1 {
		period = DefaultStepsPerCycle
	}
	cycles := req.Cycles
	if cycles < 1 {
		cycles = DefaultCycles
	}

	shape := ParseShape(req.Shape)
	osc := newOscillator(shape, period, req.PhaseOffset, req.Seed)
	every := max(1, period/4)
	total := period * cycles

	var seq []Sample
	for step := 0; step < total; step += every {
		t := osc(step)
		seq = append(seq, sample(store, step, t, space.Interpolate(a, b, t)))
	}

	return Rhythm{
		StateA:             req.StateA,
		StateB:             req.StateB,
		OscillationPattern: shape,
		StepsPerCycle:      period,
		NumCycles:          cycles,
		TotalSteps:         total,
		SampledKeyframes:   len(seq),
		Sequence:           seq,
	}, nil
}
