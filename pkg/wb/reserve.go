package wb

import "fmt"

const (
	// FAR 91.151 VFR fuel reserves, in minutes at normal cruise.
	DayReserveMin   = 30.0
	NightReserveMin = 45.0

	// fallbackBurnRateGPH stands in when no enroute burn was entered and
	// a rate cannot be estimated from it.
	fallbackBurnRateGPH = 8.0
)

// ReserveCheck is the outcome of the VFR fuel reserve check for the
// landing fuel state.
type ReserveCheck struct {
	OK           bool    `json:"ok"`
	RequiredMin  float64 `json:"required_min"`
	RemainingMin float64 `json:"remaining_min"`
	BurnRateGPH  float64 `json:"burn_rate_gph"`
	Message      string  `json:"message,omitempty"`
}

// CheckVFRReserve estimates the burn rate from the planned enroute burn
// (assumed to cover a 1.5 hour leg) and compares the minutes of fuel
// remaining at landing against the regulatory VFR reserve.
func CheckVFRReserve(fuel FuelState, enrouteBurnGal float64, night bool) ReserveCheck {
	rate := enrouteBurnGal / 1.5
	if rate <= 0 {
		rate = fallbackBurnRateGPH
	}

	required := DayReserveMin
	if night {
		required = NightReserveMin
	}

	remaining := fuel.LandingGal / rate * 60

	check := ReserveCheck{
		OK:           remaining >= required,
		RequiredMin:  required,
		RemainingMin: remaining,
		BurnRateGPH:  rate,
	}
	if !check.OK {
		check.Message = fmt.Sprintf(
			"landing fuel %.1f gal is %.0f min at %.1f gph; VFR reserve requires %.0f min",
			fuel.LandingGal, remaining, rate, required)
	}
	return check
}
