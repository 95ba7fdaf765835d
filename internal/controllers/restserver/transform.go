package restserver

import (
	"time"

	"github.com/skyplan/skyplan/internal/storage"
	"github.com/skyplan/skyplan/pkg/daylight"
	"github.com/skyplan/skyplan/pkg/envelope"
	"github.com/skyplan/skyplan/pkg/profile"
	"github.com/skyplan/skyplan/pkg/wb"
)

// calculatorInput maps a stored aircraft profile and the user's request
// entries into a calculator input. Missing stations fall back to
// zero-valued ones so the calculator still produces totals; the UI is
// expected to configure profiles fully.
func calculatorInput(a *profile.Aircraft, req wbRequest) wb.Input {
	in := wb.Input{
		EmptyWeightLb:    a.EmptyWeightLb,
		EmptyMomentLbIn:  a.EmptyMomentLbIn,
		FuelDensityLbGal: a.FuelDensityLbGal,
		FuelCapacityGal:  a.FuelCapacityGal,
		StartFuelGal:     req.StartFuelGal,
		TaxiBurnGal:      req.TaxiBurnGal,
		EnrouteBurnGal:   req.EnrouteBurnGal,
		NightFlight:      nightFlight(req),
		Envelopes:        a.PrepareEnvelopes(),
		ActiveCategory:   req.ActiveCategory,
	}
	if in.ActiveCategory == "" {
		in.ActiveCategory = envelope.CategoryNormal
	}

	if st := a.StationByKind(profile.StationFrontSeat); st != nil {
		in.FrontSeat = wb.StationLoad{Station: st.Station, WeightLb: req.FrontSeatWeightLb}
	} else {
		in.FrontSeat.WeightLb = req.FrontSeatWeightLb
	}
	if st := a.StationByKind(profile.StationRearSeat); st != nil {
		in.RearSeat = wb.StationLoad{Station: st.Station, WeightLb: req.RearSeatWeightLb}
	} else {
		in.RearSeat.WeightLb = req.RearSeatWeightLb
	}

	for _, st := range a.BaggageStations() {
		in.Baggage = append(in.Baggage, wb.StationLoad{
			Station:  st.Station,
			WeightLb: req.BaggageWeightsLb[st.ID],
		})
	}

	if st := a.StationByKind(profile.StationFuel); st != nil {
		fuelStation := st.Station
		in.FuelStation = &fuelStation
	}

	return in
}

// nightFlight resolves the day/night question for the reserve check. An
// explicit flag always wins; otherwise civil twilight at the departure
// point decides, defaulting to day when no position was given.
func nightFlight(req wbRequest) bool {
	if req.NightFlight != nil {
		return *req.NightFlight
	}
	if req.DepartureTime != nil && req.LatitudeDeg != nil && req.LongitudeDeg != nil {
		return daylight.IsNight(*req.DepartureTime, *req.LatitudeDeg, *req.LongitudeDeg)
	}
	return false
}

// tripRecord summarizes one calculator run for the storage backends.
func tripRecord(a *profile.Aircraft, in wb.Input, out wb.Output) storage.TripRecord {
	return storage.TripRecord{
		Time:         time.Now(),
		AircraftID:   a.ID,
		Registration: a.Registration,

		ActiveCategory: string(in.ActiveCategory),
		NightFlight:    in.NightFlight,

		RampWeightLb:    out.Phases[wb.PhaseRamp].TotalWeightLb,
		RampCGIn:        out.Phases[wb.PhaseRamp].CGIn,
		TakeoffWeightLb: out.Phases[wb.PhaseTakeoff].TotalWeightLb,
		TakeoffCGIn:     out.Phases[wb.PhaseTakeoff].CGIn,
		LandingWeightLb: out.Phases[wb.PhaseLanding].TotalWeightLb,
		LandingCGIn:     out.Phases[wb.PhaseLanding].CGIn,

		RampDiagnosis:    string(out.ActiveDiagnoses[wb.PhaseRamp]),
		TakeoffDiagnosis: string(out.ActiveDiagnoses[wb.PhaseTakeoff]),
		LandingDiagnosis: string(out.ActiveDiagnoses[wb.PhaseLanding]),

		WarningCount: len(out.Warnings),
		ReserveOK:    out.Reserve.OK,
	}
}

// parseCategory validates a category path parameter.
func parseCategory(s string) (envelope.Category, bool) {
	for _, cat := range envelope.Categories {
		if string(cat) == s {
			return cat, true
		}
	}
	return "", false
}
