package restserver

import (
	"time"

	"github.com/skyplan/skyplan/pkg/envelope"
	"github.com/skyplan/skyplan/pkg/wb"
)

// statusResponse is returned by the /api/status endpoint
type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// envelopeUpdateRequest carries user-edited boundary points for one
// category. Points are raw on purpose: the UI may send partial rows and
// the envelope normalizer is the tolerant boundary.
type envelopeUpdateRequest struct {
	Points []envelope.RawPoint `json:"points"`
}

// envelopeResponse is the prepared polygon and validation report for one
// category, suitable for rendering and error display.
type envelopeResponse struct {
	Category envelope.Category `json:"category"`
	Points   []envelope.Point  `json:"points"`
	Report   envelope.Report   `json:"report"`
}

// wbRequest carries the user's load and fuel entries for one computation.
type wbRequest struct {
	FrontSeatWeightLb float64            `json:"front_seat_weight_lb"`
	RearSeatWeightLb  float64            `json:"rear_seat_weight_lb"`
	BaggageWeightsLb  map[string]float64 `json:"baggage_weights_lb,omitempty"` // station id -> weight

	StartFuelGal   float64 `json:"start_fuel_gal"`
	TaxiBurnGal    float64 `json:"taxi_burn_gal"`
	EnrouteBurnGal float64 `json:"enroute_burn_gal"`

	// When night_flight is omitted and a departure time and position are
	// given, day or night is determined from civil twilight.
	NightFlight   *bool      `json:"night_flight,omitempty"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
	LatitudeDeg   *float64   `json:"latitude_deg,omitempty"`
	LongitudeDeg  *float64   `json:"longitude_deg,omitempty"`

	ActiveCategory envelope.Category `json:"active_category,omitempty"`
}

// wbResponse is the full calculator output plus the prepared envelopes so
// the UI can draw both categories alongside the loading points.
type wbResponse struct {
	AircraftID   string `json:"aircraft_id"`
	Registration string `json:"registration"`
	wb.Output
	Envelopes map[envelope.Category]envelope.CategoryResult `json:"envelopes"`
}
