// Package trajectory samples paths through the parameter space: straight
// lines between two named states and periodic oscillations between them.
package trajectory

import (
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

// DefaultSteps is used when a caller asks for fewer than one step.
const DefaultSteps = 20

// Sample is one point along a path, annotated with its nearest visual type.
type Sample struct {
	Step         int         `json:"step"`
	T            float64     `json:"t"`
	State        space.Point `json:"state"`
	NearestType  string      `json:"nearest_type"`
	TypeDistance float64     `json:"type_distance"`
}

// Trajectory is a linear path between two resolved ids.
type Trajectory struct {
	StartID       string   `json:"start_id"`
	EndID         string   `json:"end_id"`
	NumSteps      int      `json:"num_steps"`
	TotalDistance float64  `json:"total_distance"`
	Samples       []Sample `json:"trajectory"`
}

func sample(store *taxonomy.Store, step int, t float64, p space.Point) Sample {
	nearest, dist := store.NearestType(p)
	return Sample{
		Step:         step,
		T:            space.Round(t, 4),
		State:        p.Round(4),
		NearestType:  nearest,
		TypeDistance: space.Round(dist, 4),
	}
}

// Linear samples steps+1 evenly spaced points from startID to endID. Both
// ids go through the shared resolver; the first one that fails is reported
// as an *taxonomy.UnknownIDError.
func Linear(store *taxonomy.Store, startID, endID string, steps int) (Trajectory, error) {
	start, err := store.ResolvePoint(taxonomy.KindState, startID)
	if err != nil {
		return Trajectory{}, err
	}
	end, err := store.ResolvePoint(taxonomy.KindState, endID)
	if err != nil {
		return Trajectory{}, err
	}
	if steps < 1 {
		steps = DefaultSteps
	}

	samples := make([]Sample, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		samples = append(samples, sample(store, i, t, space.Interpolate(start, end, t)))
	}

	return Trajectory{
		StartID:       startID,
		EndID:         endID,
		NumSteps:      steps,
		TotalDistance: space.Round(space.Distance(start, end), 4),
		Samples:       samples,
	}, nil
}
