package space

import "math"

// Distance is the Euclidean distance between a and b over all five axes.
func Distance(a, b Point) float64 {
	va, vb := a.Vector(), b.Vector()
	var sum float64
	for i := range va {
		d := va[i] - vb[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Delta returns b - a per axis.
func Delta(a, b Point) Point {
	va, vb := a.Vector(), b.Vector()
	var out [NumAxes]float64
	for i := range va {
		out[i] = vb[i] - va[i]
	}
	return FromVector(out)
}

// DominantAxis returns the axis along which a and b differ most. Deltas are
// compared at four decimal places. Ties go to the axis whose endpoints reach
// furthest from the midpoint 0.5, then to the earlier axis. When the points
// coincide every delta is zero and the first axis is returned.
func DominantAxis(a, b Point) Axis {
	best := DissolutionRate
	bestAbs, bestReach := -1.0, -1.0
	for _, ax := range Axes {
		delta := Round(math.Abs(b.At(ax)-a.At(ax)), 4)
		reach := Round(math.Max(math.Abs(a.At(ax)-0.5), math.Abs(b.At(ax)-0.5)), 4)
		if delta > bestAbs || (delta == bestAbs && delta > 0 && reach > bestReach) {
			best, bestAbs, bestReach = ax, delta, reach
		}
	}
	return best
}

// Interpolate moves from a toward b by t on every axis. t is not clamped, so
// values outside [0, 1] extrapolate; the result is not clamped either.
// Endpoints are exact: t=0 yields a and t=1 yields b.
func Interpolate(a, b Point, t float64) Point {
	va, vb := a.Vector(), b.Vector()
	var out [NumAxes]float64
	for i := range va {
		out[i] = (1-t)*va[i] + t*vb[i]
	}
	return FromVector(out)
}

// Nearest scans centers in order and returns the index of the closest one and
// its distance. Ties keep the first center. Index is -1 when centers is empty.
func Nearest(p Point, centers []Point) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range centers {
		if d := Distance(p, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// WeightedMean is the convex combination sum(w[i] * points[i]). Weights are
// used as given; callers normalize first.
func WeightedMean(points []Point, weights []float64) Point {
	var out [NumAxes]float64
	for i, p := range points {
		if i >= len(weights) {
			break
		}
		v := p.Vector()
		for k := range out {
			out[k] += weights[i] * v[k]
		}
	}
	return FromVector(out)
}

// Softmax converts scores into weights summing to 1. The max score is
// subtracted before exponentiating. An empty input yields an empty result;
// when the exponentials total zero they are returned unnormalized.
func Softmax(scores []float64, temperature float64) []float64 {
	if len(scores) == 0 {
		return []float64{}
	}
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	out := make([]float64, len(scores))
	var total float64
	for i, s := range scores {
		out[i] = math.Exp((s - maxScore) / temperature)
		total += out[i]
	}
	if total <= 0 {
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
