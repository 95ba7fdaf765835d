package envelope

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SortPerimeter orders points into a closed loop around their centroid so
// they form a candidate polygon. Fewer than 3 points are returned as a copy,
// unchanged: that's not a polygon and there is nothing to order.
//
// The sort key is the angle of (point - centroid). This produces a
// consistent perimeter for convex and star-shaped point sets; for concave
// sets it can still yield a self-intersecting loop, which Validate catches.
// The input slice is never modified.
func SortPerimeter(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	if len(out) < 3 {
		return out
	}

	weights := make([]float64, len(pts))
	cgs := make([]float64, len(pts))
	for i, p := range pts {
		weights[i] = p.WeightLb
		cgs[i] = p.CGIn
	}
	centroidWeight := stat.Mean(weights, nil)
	centroidCG := stat.Mean(cgs, nil)

	sort.SliceStable(out, func(i, j int) bool {
		ai := math.Atan2(out[i].WeightLb-centroidWeight, out[i].CGIn-centroidCG)
		aj := math.Atan2(out[j].WeightLb-centroidWeight, out[j].CGIn-centroidCG)
		return ai < aj
	})
	return out
}
