package daylight

import (
	"testing"
	"time"
)

func TestIsNightEquator(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
		lon  float64
		want bool
	}{
		{
			name: "noon UTC at prime meridian is day",
			when: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
			lon:  0,
			want: false,
		},
		{
			name: "midnight UTC at prime meridian is night",
			when: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			lon:  0,
			want: true,
		},
		{
			name: "midnight UTC at the antimeridian is local solar noon",
			when: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			lon:  180,
			want: false,
		},
		{
			name: "noon UTC at the antimeridian is local solar midnight",
			when: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
			lon:  180,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNight(tt.when, 0, tt.lon); got != tt.want {
				t.Errorf("IsNight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNightPolar(t *testing.T) {
	// Deep polar winter: the sun never reaches civil twilight, so it is
	// night even at local noon.
	winterNoon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if !IsNight(winterNoon, 80, 0) {
		t.Error("polar winter noon should be night")
	}

	// Midnight sun: never night, even at local midnight.
	summerMidnight := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	if IsNight(summerMidnight, 80, 0) {
		t.Error("polar summer midnight should not be night")
	}
}

func TestIsNightHonorsTimezone(t *testing.T) {
	// 7 AM US eastern in June is after sunrise; the same instant
	// expressed in UTC must give the same answer.
	loc := time.FixedZone("EDT", -4*60*60)
	local := time.Date(2024, 6, 15, 7, 0, 0, 0, loc)

	if IsNight(local, 40.7, -74.0) {
		t.Error("summer morning in New York should be day")
	}
	if IsNight(local, 40.7, -74.0) != IsNight(local.UTC(), 40.7, -74.0) {
		t.Error("answer must not depend on the time's zone representation")
	}
}
