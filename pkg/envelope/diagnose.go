package envelope

// Diagnosis classifies a computed loading point against a validated
// envelope polygon.
type Diagnosis string

const (
	DiagnosisInside     Diagnosis = "inside"
	DiagnosisForward    Diagnosis = "forward"
	DiagnosisAft        Diagnosis = "aft"
	DiagnosisOverweight Diagnosis = "overweight"
	DiagnosisOutside    Diagnosis = "outside"

	// DiagnosisUndefined means the category has no usable polygon (fewer
	// than 3 valid points). It is deliberately distinct from "outside":
	// an absent envelope is not an exceeded one.
	DiagnosisUndefined Diagnosis = "undefined"
)

// Safe reports whether the diagnosis permits flight.
func (d Diagnosis) Safe() bool {
	return d == DiagnosisInside
}

// Diagnose classifies the query point against a validated, sorted polygon.
//
// Weight dominates: a point above the heaviest vertex is overweight no
// matter where the CG sits. Otherwise the polygon edges are scanned for
// crossings at the query weight; the CG interval between the extreme
// crossings decides forward/aft/inside. Horizontal edges contribute no
// crossing, and fewer than two crossings (a degenerate slice through the
// polygon, e.g. exactly at an apex vertex) classifies as outside.
func Diagnose(q Point, poly []Point) Diagnosis {
	if len(poly) < 3 {
		return DiagnosisUndefined
	}

	maxWeight := poly[0].WeightLb
	for _, p := range poly[1:] {
		if p.WeightLb > maxWeight {
			maxWeight = p.WeightLb
		}
	}
	if q.WeightLb > maxWeight {
		return DiagnosisOverweight
	}

	var crossings []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if a.WeightLb == b.WeightLb {
			// Horizontal edge: no single CG crossing at this weight.
			continue
		}
		straddles := (a.WeightLb <= q.WeightLb && q.WeightLb <= b.WeightLb) ||
			(b.WeightLb <= q.WeightLb && q.WeightLb <= a.WeightLb)
		if !straddles {
			continue
		}
		t := (q.WeightLb - a.WeightLb) / (b.WeightLb - a.WeightLb)
		crossings = append(crossings, a.CGIn+t*(b.CGIn-a.CGIn))
	}

	if len(crossings) < 2 {
		return DiagnosisOutside
	}

	minCG, maxCG := crossings[0], crossings[0]
	for _, x := range crossings[1:] {
		if x < minCG {
			minCG = x
		}
		if x > maxCG {
			maxCG = x
		}
	}

	switch {
	case q.CGIn < minCG:
		return DiagnosisForward
	case q.CGIn > maxCG:
		return DiagnosisAft
	default:
		return DiagnosisInside
	}
}
