package classify

import (
	"context"
	"strings"

	"dissolve/internal/space"
	"dissolve/internal/taxonomy"

	"golang.org/x/sync/errgroup"
)

// TypeRoundTrip is the reconstruction result for one visual type.
type TypeRoundTrip struct {
	ID                   string      `json:"id"`
	OriginalCenter       space.Point `json:"original_center"`
	RecoveredCoordinates space.Point `json:"recovered_coordinates"`
	ReconstructionError  float64     `json:"reconstruction_error"`
	NearestTypeCorrect   bool        `json:"nearest_type_correct"`
	RecoveredNearest     string      `json:"recovered_nearest"`
	Confidence           float64     `json:"confidence"`
}

// RoundTripReport summarizes decomposition fidelity across all types.
type RoundTripReport struct {
	Test                    string          `json:"test"`
	TypesTested             int             `json:"n_types_tested"`
	NearestTypeAccuracy     float64         `json:"nearest_type_accuracy"`
	MeanReconstructionError float64         `json:"mean_reconstruction_error"`
	PerType                 []TypeRoundTrip `json:"per_type_results"`
}

// RoundTrip decomposes each visual type's own keywords joined into one
// description and measures how far the recovered point lands from the type
// center. It is a diagnostic; the caller decides what accuracy is acceptable.
func RoundTrip(ctx context.Context, store *taxonomy.Store) (RoundTripReport, error) {
	types := store.VisualTypes()
	results := make([]TypeRoundTrip, len(types))

	g, gCtx := errgroup.WithContext(ctx)
	for i, vt := range types {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			d := Decompose(store, strings.Join(vt.Keywords, " "))
			results[i] = TypeRoundTrip{
				ID:                   vt.ID,
				OriginalCenter:       vt.Center,
				RecoveredCoordinates: d.Coordinates,
				ReconstructionError:  space.Round(space.Distance(vt.Center, d.Coordinates), 4),
				NearestTypeCorrect:   d.NearestType == vt.ID,
				RecoveredNearest:     d.NearestType,
				Confidence:           d.Confidence,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RoundTripReport{}, err
	}

	var correct int
	var totalErr float64
	for _, r := range results {
		if r.NearestTypeCorrect {
			correct++
		}
		totalErr += space.Distance(r.OriginalCenter, r.RecoveredCoordinates)
	}
	n := float64(len(results))
	return RoundTripReport{
		Test:                    "round_trip_decomposition_fidelity",
		TypesTested:             len(results),
		NearestTypeAccuracy:     space.Round(float64(correct)/n, 4),
		MeanReconstructionError: space.Round(totalErr/n, 4),
		PerType:                 results,
	}, nil
}
