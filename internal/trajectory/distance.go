package trajectory

import (
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
)

// Comparison is the distance between two resolved ids.
type Comparison struct {
	ID1               string      `json:"id_1"`
	ID2               string      `json:"id_2"`
	Distance          float64     `json:"distance"`
	PerAxisDifference space.Point `json:"per_axis_difference"`
	DominantAxis      string      `json:"dominant_axis"`
}

// Compare measures how far id2 lies from id1. Differences are id2 - id1.
func Compare(store *taxonomy.Store, id1, id2 string) (Comparison, error) {
	a, err := store.ResolvePoint(taxonomy.KindState, id1)
	if err != nil {
		return Comparison{}, err
	}
	b, err := store.ResolvePoint(taxonomy.KindState, id2)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{
		ID1:               id1,
		ID2:               id2,
		Distance:          space.Round(space.Distance(a, b), 4),
		PerAxisDifference: space.Delta(a, b).Round(4),
		DominantAxis:      space.DominantAxis(a, b).String(),
	}, nil
}
