package wb

import "math"

// DefaultFuelDensityLbGal is the weight of one gallon of 100LL avgas.
// Aircraft profiles may override it (e.g. for Jet-A conversions).
const DefaultFuelDensityLbGal = 6.0

// FuelState holds the gallons on board at each stage of the flight.
// The sequence start >= takeoff >= landing always holds: each stage is
// clamped at zero, so an over-entered burn empties the tanks rather than
// producing negative fuel.
type FuelState struct {
	StartGal   float64 `json:"start_gal"`
	TaxiGal    float64 `json:"taxi_gal"`
	TakeoffGal float64 `json:"takeoff_gal"`
	LandingGal float64 `json:"landing_gal"`
}

// PlanFuel runs the fuel-burn decrement pipeline over the user-entered
// quantities. All gallon values are rounded to 0.1 gal and clamped at
// zero; the starting quantity is additionally clamped to the aircraft's
// usable capacity when one is known.
func PlanFuel(startGal, taxiGal, burnGal float64, capacityGal *float64) FuelState {
	start := roundTenth(math.Max(0, startGal))
	if capacityGal != nil && *capacityGal > 0 && start > *capacityGal {
		start = roundTenth(*capacityGal)
	}
	taxi := roundTenth(math.Max(0, taxiGal))
	burn := roundTenth(math.Max(0, burnGal))

	takeoff := roundTenth(math.Max(0, start-taxi))
	landing := roundTenth(math.Max(0, takeoff-burn))

	return FuelState{
		StartGal:   start,
		TaxiGal:    taxi,
		TakeoffGal: takeoff,
		LandingGal: landing,
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
