// Package envelope implements the weight-and-balance envelope geometry
// engine: normalization of untrusted boundary points, perimeter ordering,
// polygon validation, and classification of computed loading points.
package envelope

import "math"

// Point is one vertex of a weight-and-balance envelope, or a computed
// loading point to be classified against one. CG is the x axis and weight
// the y axis on the familiar POH chart.
type Point struct {
	WeightLb float64 `json:"weight_lb"`
	CGIn     float64 `json:"cg_in"`
}

// RawPoint is a boundary point as it arrives from persistence or the UI.
// Fields are pointers because stored profiles may carry partial records;
// Normalize is the contract that tolerates them.
type RawPoint struct {
	WeightLb *float64 `json:"weight_lb"`
	CGIn     *float64 `json:"cg_in"`
}

// Category identifies which certification envelope a point set describes.
type Category string

const (
	CategoryNormal  Category = "normal"
	CategoryUtility Category = "utility"
)

// Categories lists the supported envelope categories in display order.
var Categories = []Category{CategoryNormal, CategoryUtility}

// Normalize coerces an arbitrary sequence of raw records into typed points
// with finite fields. Records missing a field or carrying NaN/Inf are
// dropped silently. Input order is preserved for the survivors.
func Normalize(raw []RawPoint) []Point {
	pts := make([]Point, 0, len(raw))
	for _, r := range raw {
		if r.WeightLb == nil || r.CGIn == nil {
			continue
		}
		w, cg := *r.WeightLb, *r.CGIn
		if !isFinite(w) || !isFinite(cg) {
			continue
		}
		pts = append(pts, Point{WeightLb: w, CGIn: cg})
	}
	return pts
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
