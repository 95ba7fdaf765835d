package envelope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// coincidentTol is the absolute tolerance used when deciding that two
// vertices, or a point and a segment endpoint, coincide.
const coincidentTol = 1e-9

// Report is the outcome of validating a sorted point sequence as a polygon.
// Messages are human-readable and reference 1-based point indices, matching
// how the points are numbered in the editing UI.
type Report struct {
	OK       bool     `json:"ok"`
	Messages []string `json:"messages"`
}

// Validate checks a sorted point sequence for duplicate vertices and
// self-intersecting edges, treating the sequence as a closed polygon
// (last vertex wraps to first). It never panics: inputs are finite by
// construction once they have passed Normalize.
//
// All duplicate pairs are reported, not just the first one found.
func Validate(pts []Point) Report {
	if len(pts) < 3 {
		return Report{OK: false, Messages: []string{"envelope needs at least 3 points"}}
	}

	var messages []string

	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if samePoint(pts[i], pts[j]) {
				messages = append(messages, fmt.Sprintf("points %d and %d are duplicates", i+1, j+1))
			}
		}
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacentEdges(i, j, n) {
				continue
			}
			a1, a2 := pts[i], pts[(i+1)%n]
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				messages = append(messages,
					fmt.Sprintf("edge %d-%d intersects edge %d-%d", i+1, (i+1)%n+1, j+1, (j+1)%n+1))
			}
		}
	}

	return Report{OK: len(messages) == 0, Messages: messages}
}

func samePoint(a, b Point) bool {
	return scalar.EqualWithinAbs(a.WeightLb, b.WeightLb, coincidentTol) &&
		scalar.EqualWithinAbs(a.CGIn, b.CGIn, coincidentTol)
}

// adjacentEdges reports whether edges i and j of an n-gon share a vertex.
func adjacentEdges(i, j, n int) bool {
	return (i+1)%n == j || (j+1)%n == i
}

// orientation returns the turn direction of the ordered triplet (p, q, r):
// 0 for collinear, 1 for clockwise, -1 for counterclockwise. The cross
// product is compared against a tolerance rather than zero so that nearly
// collinear pilot-entered points are treated as collinear.
func orientation(p, q, r Point) int {
	cross := (q.WeightLb-p.WeightLb)*(r.CGIn-q.CGIn) - (q.CGIn-p.CGIn)*(r.WeightLb-q.WeightLb)
	if math.Abs(cross) < coincidentTol {
		return 0
	}
	if cross > 0 {
		return 1
	}
	return -1
}

// onSegment reports whether q lies within the bounding box of segment pr,
// for use when the three points are already known to be collinear.
func onSegment(p, q, r Point) bool {
	return q.CGIn <= math.Max(p.CGIn, r.CGIn)+coincidentTol &&
		q.CGIn >= math.Min(p.CGIn, r.CGIn)-coincidentTol &&
		q.WeightLb <= math.Max(p.WeightLb, r.WeightLb)+coincidentTol &&
		q.WeightLb >= math.Min(p.WeightLb, r.WeightLb)-coincidentTol
}

// segmentsIntersect tests segments p1p2 and p3p4 using orientation
// predicates, including the collinear-overlap special cases.
func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}

	return false
}
