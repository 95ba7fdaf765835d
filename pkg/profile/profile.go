// Package profile manages persisted aircraft profiles: loading stations,
// empty weight and moment, fuel figures, and the per-category envelope
// boundary points. Profiles live in a local SQLite database.
package profile

import (
	"github.com/skyplan/skyplan/pkg/envelope"
	"github.com/skyplan/skyplan/pkg/wb"
)

// StationKind classifies what a station is used for when assembling the
// weight-and-balance load sheet.
type StationKind string

const (
	StationFrontSeat StationKind = "front_seat"
	StationRearSeat  StationKind = "rear_seat"
	StationBaggage   StationKind = "baggage"
	StationFuel      StationKind = "fuel"
)

// Station is a configured loading station on an aircraft profile.
type Station struct {
	wb.Station
	Kind StationKind `json:"kind"`
}

// Aircraft is one persisted aircraft profile. Envelope points are kept in
// raw form: the store tolerates partial rows, and the envelope engine's
// normalizer is the contract that filters them.
type Aircraft struct {
	ID               string                                    `json:"id"`
	Registration     string                                    `json:"registration"`
	Model            string                                    `json:"model,omitempty"`
	EmptyWeightLb    float64                                   `json:"empty_weight_lb"`
	EmptyMomentLbIn  float64                                   `json:"empty_moment_lb_in"`
	FuelDensityLbGal float64                                   `json:"fuel_density_lb_gal,omitempty"`
	FuelCapacityGal  *float64                                  `json:"fuel_capacity_gal,omitempty"`
	Stations         []Station                                 `json:"stations"`
	Envelopes        map[envelope.Category][]envelope.RawPoint `json:"envelopes"`
}

// StationByKind returns the first station of the given kind, or nil.
func (a *Aircraft) StationByKind(kind StationKind) *Station {
	for i := range a.Stations {
		if a.Stations[i].Kind == kind {
			return &a.Stations[i]
		}
	}
	return nil
}

// BaggageStations returns all baggage stations in their configured order.
func (a *Aircraft) BaggageStations() []Station {
	var out []Station
	for _, st := range a.Stations {
		if st.Kind == StationBaggage {
			out = append(out, st)
		}
	}
	return out
}

// PrepareEnvelopes runs the envelope pipeline over the profile's raw
// boundary points for every category.
func (a *Aircraft) PrepareEnvelopes() map[envelope.Category]envelope.CategoryResult {
	return envelope.PrepareSet(a.Envelopes)
}
