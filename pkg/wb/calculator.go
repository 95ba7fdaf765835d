package wb

import (
	"fmt"

	"github.com/skyplan/skyplan/pkg/envelope"
)

// Phase is one of the three successive loading snapshots of a flight,
// differing only in onboard fuel.
type Phase string

const (
	PhaseRamp    Phase = "ramp"
	PhaseTakeoff Phase = "takeoff"
	PhaseLanding Phase = "landing"
)

// Phases lists the flight phases in chronological order.
var Phases = []Phase{PhaseRamp, PhaseTakeoff, PhaseLanding}

// StationLoad pairs a configured station with the weight the user has
// assigned to it.
type StationLoad struct {
	Station  Station `json:"station"`
	WeightLb float64 `json:"weight_lb"`
}

// Input carries everything one calculator run needs. It is a plain value:
// the calculator holds no state between runs and never mutates the input.
type Input struct {
	EmptyWeightLb   float64 `json:"empty_weight_lb"`
	EmptyMomentLbIn float64 `json:"empty_moment_lb_in"`

	FrontSeat StationLoad   `json:"front_seat"`
	RearSeat  StationLoad   `json:"rear_seat"`
	Baggage   []StationLoad `json:"baggage"`

	FuelStation      *Station `json:"fuel_station,omitempty"`
	FuelDensityLbGal float64  `json:"fuel_density_lb_gal"`
	FuelCapacityGal  *float64 `json:"fuel_capacity_gal,omitempty"`
	StartFuelGal     float64  `json:"start_fuel_gal"`
	TaxiBurnGal      float64  `json:"taxi_burn_gal"`
	EnrouteBurnGal   float64  `json:"enroute_burn_gal"`

	NightFlight bool `json:"night_flight"`

	// Envelopes holds the prepared polygon per category; the active
	// category is an explicit parameter, never implicit state.
	Envelopes      map[envelope.Category]envelope.CategoryResult `json:"-"`
	ActiveCategory envelope.Category                             `json:"active_category"`
}

// Warning flags a limit breach. Warnings are values, not errors: an
// overloaded baggage shelf is a valid, expected calculator outcome.
type Warning struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Output is the full result of one calculator run.
type Output struct {
	Fuel            FuelState                                          `json:"fuel"`
	Phases          map[Phase]PhaseResult                              `json:"phases"`
	Warnings        []Warning                                          `json:"warnings"`
	Reserve         ReserveCheck                                       `json:"reserve"`
	Diagnoses       map[envelope.Category]map[Phase]envelope.Diagnosis `json:"diagnoses"`
	ActiveDiagnoses map[Phase]envelope.Diagnosis                       `json:"active_diagnoses"`
}

// Run builds the load item list for each phase, computes totals, checks
// station limits and the VFR reserve, and classifies each phase's loading
// point against every envelope category. It never returns an error: all
// failure modes are representable in the Output.
func Run(in Input) Output {
	density := in.FuelDensityLbGal
	if density <= 0 {
		density = DefaultFuelDensityLbGal
	}

	fuel := PlanFuel(in.StartFuelGal, in.TaxiBurnGal, in.EnrouteBurnGal, in.FuelCapacityGal)

	base := baseItems(in)

	var fuelArm float64
	if in.FuelStation != nil {
		fuelArm = in.FuelStation.ArmIn
	}
	fuelItem := func(gal float64) LoadItem {
		return LoadItem{
			Label:    "Fuel",
			WeightLb: gal * density,
			ArmIn:    fuelArm,
			Station:  in.FuelStation,
		}
	}

	phaseFuel := map[Phase]float64{
		PhaseRamp:    fuel.StartGal,
		PhaseTakeoff: fuel.TakeoffGal,
		PhaseLanding: fuel.LandingGal,
	}

	phases := make(map[Phase]PhaseResult, len(Phases))
	for _, phase := range Phases {
		items := append(append([]LoadItem{}, base...), fuelItem(phaseFuel[phase]))
		phases[phase] = Compute(items)
	}

	warnings := stationWarnings(base)
	if ramp := fuelItem(fuel.StartGal); ramp.Station != nil && ramp.Station.MaxWeightLb != nil &&
		ramp.WeightLb > *ramp.Station.MaxWeightLb {
		warnings = append(warnings, Warning{
			Label: ramp.Label,
			Message: fmt.Sprintf("%s: %.1f lb exceeds %s limit of %.1f lb",
				ramp.Label, ramp.WeightLb, ramp.Station.Name, *ramp.Station.MaxWeightLb),
		})
	}

	diagnoses := make(map[envelope.Category]map[Phase]envelope.Diagnosis, len(envelope.Categories))
	for _, cat := range envelope.Categories {
		perPhase := make(map[Phase]envelope.Diagnosis, len(Phases))
		result, ok := in.Envelopes[cat]
		for _, phase := range Phases {
			if !ok || !result.Usable() {
				perPhase[phase] = envelope.DiagnosisUndefined
				continue
			}
			p := phases[phase]
			perPhase[phase] = envelope.Diagnose(
				envelope.Point{WeightLb: p.TotalWeightLb, CGIn: p.CGIn}, result.Points)
		}
		diagnoses[cat] = perPhase
	}

	return Output{
		Fuel:            fuel,
		Phases:          phases,
		Warnings:        warnings,
		Reserve:         CheckVFRReserve(fuel, in.EnrouteBurnGal, in.NightFlight),
		Diagnoses:       diagnoses,
		ActiveDiagnoses: diagnoses[in.ActiveCategory],
	}
}

// baseItems assembles the load items common to all phases: empty weight,
// seats, and the configured baggage stations.
func baseItems(in Input) []LoadItem {
	var emptyArm float64
	if in.EmptyWeightLb != 0 {
		emptyArm = in.EmptyMomentLbIn / in.EmptyWeightLb
	}

	items := []LoadItem{
		{Label: "Empty weight", WeightLb: in.EmptyWeightLb, ArmIn: emptyArm},
		stationItem("Front seats", in.FrontSeat),
		stationItem("Rear seats", in.RearSeat),
	}
	for _, bag := range in.Baggage {
		label := bag.Station.Name
		if label == "" {
			label = "Baggage"
		}
		items = append(items, stationItem(label, bag))
	}
	return items
}

func stationItem(label string, load StationLoad) LoadItem {
	st := load.Station
	return LoadItem{
		Label:    label,
		WeightLb: load.WeightLb,
		ArmIn:    st.ArmIn,
		Station:  &st,
	}
}

func stationWarnings(items []LoadItem) []Warning {
	var warnings []Warning
	for _, item := range items {
		if item.Station == nil || item.Station.MaxWeightLb == nil {
			continue
		}
		if item.WeightLb > *item.Station.MaxWeightLb {
			warnings = append(warnings, Warning{
				Label: item.Label,
				Message: fmt.Sprintf("%s: %.1f lb exceeds %s limit of %.1f lb",
					item.Label, item.WeightLb, item.Station.Name, *item.Station.MaxWeightLb),
			})
		}
	}
	return warnings
}
