// Package daylight decides whether a departure time counts as night.
// Night runs from the end of evening civil twilight to the beginning of
// morning civil twilight, which is when the larger VFR fuel reserve
// applies.
package daylight

import (
	"math"
	"time"
)

// Civil twilight ends when the sun is 6 degrees below the horizon.
const civilTwilightZenithDeg = 96.0

type twilightStatus int

const (
	twilightNormal twilightStatus = iota
	// Sun never drops below civil twilight (polar summer)
	alwaysDay
	// Sun never climbs above civil twilight (polar winter)
	alwaysNight
)

// IsNight reports whether t falls outside civil twilight at the given
// position. Latitude and longitude are in degrees, east and north
// positive.
func IsNight(t time.Time, latitudeDeg, longitudeDeg float64) bool {
	utc := t.UTC()

	morning, evening, status := twilightUTC(utc.YearDay(), latitudeDeg, longitudeDeg)
	switch status {
	case alwaysDay:
		return false
	case alwaysNight:
		return true
	}

	minutes := float64(utc.Hour())*60 + float64(utc.Minute())

	// The twilight window may extend past midnight in either direction,
	// so test the time against the window shifted by a day both ways.
	for _, m := range []float64{minutes - 1440, minutes, minutes + 1440} {
		if m >= morning && m <= evening {
			return false
		}
	}
	return true
}

// twilightUTC returns morning and evening civil twilight as minutes from
// midnight UTC for the given day of year. The values are not normalized
// and may fall outside [0, 1440).
func twilightUTC(dayOfYear int, latitudeDeg, longitudeDeg float64) (morning, evening float64, status twilightStatus) {
	// Fractional year at solar noon, NOAA convention
	gamma := 2 * math.Pi / 365 * (float64(dayOfYear) - 1)

	declRad := solarDeclination(gamma)
	latRad := latitudeDeg * math.Pi / 180

	// Hour angle where the sun crosses the civil twilight zenith
	zenithRad := civilTwilightZenithDeg * math.Pi / 180
	cosH := (math.Cos(zenithRad) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))

	if cosH < -1 {
		return 0, 0, alwaysDay
	}
	if cosH > 1 {
		return 0, 0, alwaysNight
	}

	hourAngleMin := 4 * (math.Acos(cosH) * 180 / math.Pi) // 4 minutes per degree

	// Solar noon shifts 4 minutes per degree of longitude, plus the
	// equation of time correction
	solarNoon := 720 - 4*longitudeDeg - equationOfTime(gamma)

	return solarNoon - hourAngleMin, solarNoon + hourAngleMin, twilightNormal
}

// solarDeclination returns the sun's declination in radians for the
// fractional year gamma (NOAA low-accuracy series).
func solarDeclination(gamma float64) float64 {
	return 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)
}

// equationOfTime returns the difference between apparent and mean solar
// time in minutes for the fractional year gamma.
func equationOfTime(gamma float64) float64 {
	return 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))
}
