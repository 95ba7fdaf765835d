// Package wb implements the weight-and-balance calculator: load item
// assembly, per-phase totals, the fuel-burn pipeline, station limit
// warnings, the VFR fuel reserve check, and envelope diagnosis for the
// Ramp, Takeoff and Landing phases of a flight.
package wb

// Station is a named loading point on the aircraft, at a fixed arm from
// the datum. MaxWeightLb, when present, is a placarded limit checked
// against the weight assigned to the station.
type Station struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ArmIn       float64  `json:"arm_in"`
	MaxWeightLb *float64 `json:"max_weight_lb,omitempty"`
}

// LoadItem is one contributor to a phase's weight and moment. Station is
// optional; items derived from a configured station carry it so limit
// warnings can reference the placard.
type LoadItem struct {
	Label    string   `json:"label"`
	WeightLb float64  `json:"weight_lb"`
	ArmIn    float64  `json:"arm_in"`
	Station  *Station `json:"-"`
}

// MomentLbIn returns the item's moment about the datum.
func (l LoadItem) MomentLbIn() float64 {
	return l.WeightLb * l.ArmIn
}

// PhaseResult is the computed outcome for one flight phase.
type PhaseResult struct {
	TotalWeightLb   float64 `json:"total_weight_lb"`
	TotalMomentLbIn float64 `json:"total_moment_lb_in"`
	CGIn            float64 `json:"cg_in"`
}

// Compute sums weights and moments over the load items and derives the CG.
// A zero total weight yields CG 0 rather than NaN; an empty aircraft has
// no meaningful CG and the caller treats 0 as "not loaded".
func Compute(items []LoadItem) PhaseResult {
	var r PhaseResult
	for _, item := range items {
		r.TotalWeightLb += item.WeightLb
		r.TotalMomentLbIn += item.MomentLbIn()
	}
	if r.TotalWeightLb != 0 {
		r.CGIn = r.TotalMomentLbIn / r.TotalWeightLb
	}
	return r
}
