package wb

import "testing"

func TestPlanFuel(t *testing.T) {
	tests := []struct {
		name             string
		start, taxi, burn float64
		capacity         *float64
		want             FuelState
	}{
		{
			name:  "normal flight",
			start: 40, taxi: 1.5, burn: 20,
			want: FuelState{StartGal: 40, TaxiGal: 1.5, TakeoffGal: 38.5, LandingGal: 18.5},
		},
		{
			name:  "burn exceeds takeoff fuel",
			start: 10, taxi: 2, burn: 20,
			want: FuelState{StartGal: 10, TaxiGal: 2, TakeoffGal: 8, LandingGal: 0},
		},
		{
			name:  "taxi exceeds start fuel",
			start: 1, taxi: 5, burn: 0,
			want: FuelState{StartGal: 1, TaxiGal: 5, TakeoffGal: 0, LandingGal: 0},
		},
		{
			name:  "start clamped to capacity",
			start: 60, taxi: 1, burn: 10,
			capacity: fp(48),
			want:     FuelState{StartGal: 48, TaxiGal: 1, TakeoffGal: 47, LandingGal: 37},
		},
		{
			name:  "negative entries clamp to zero",
			start: -5, taxi: -1, burn: -3,
			want: FuelState{StartGal: 0, TaxiGal: 0, TakeoffGal: 0, LandingGal: 0},
		},
		{
			name:  "quantities rounded to tenths",
			start: 39.97, taxi: 1.04, burn: 10.06,
			want: FuelState{StartGal: 40, TaxiGal: 1, TakeoffGal: 39, LandingGal: 28.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanFuel(tt.start, tt.taxi, tt.burn, tt.capacity)
			if got != tt.want {
				t.Errorf("PlanFuel(%v, %v, %v) = %+v, want %+v", tt.start, tt.taxi, tt.burn, got, tt.want)
			}
		})
	}
}

func TestPlanFuelMonotonic(t *testing.T) {
	// landing <= takeoff <= start must hold for any non-negative inputs.
	cases := []struct{ start, taxi, burn float64 }{
		{0, 0, 0}, {50, 0, 0}, {50, 50, 0}, {50, 0, 50},
		{12.3, 4.5, 6.7}, {0.1, 0.1, 0.1}, {100, 3, 97},
	}
	for _, c := range cases {
		fs := PlanFuel(c.start, c.taxi, c.burn, nil)
		if fs.LandingGal > fs.TakeoffGal || fs.TakeoffGal > fs.StartGal {
			t.Errorf("PlanFuel(%v, %v, %v) = %+v violates landing <= takeoff <= start", c.start, c.taxi, c.burn, fs)
		}
		if fs.StartGal < 0 || fs.TaxiGal < 0 || fs.TakeoffGal < 0 || fs.LandingGal < 0 {
			t.Errorf("PlanFuel(%v, %v, %v) = %+v produced negative fuel", c.start, c.taxi, c.burn, fs)
		}
	}
}

func TestCheckVFRReserve(t *testing.T) {
	tests := []struct {
		name    string
		landing float64
		burn    float64
		night   bool
		wantOK  bool
	}{
		// 18 gal over 1.5 h is 12 gph; 10 gal landing fuel is 50 min.
		{"day with ample reserve", 10, 18, false, true},
		{"night with ample reserve", 10, 18, true, true},
		// 5 gal at 12 gph is 25 min: under both reserves.
		{"day with thin reserve", 5, 18, false, false},
		// 8 gal at 12 gph is 40 min: fine by day, short by night.
		{"night cutoff", 8, 18, true, false},
		{"day cutoff", 8, 18, false, true},
		// No burn entered: fallback 8 gph, 4 gal is 30 min exactly.
		{"fallback rate boundary", 4, 0, false, true},
		{"fallback rate night", 4, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fuel := FuelState{LandingGal: tt.landing}
			check := CheckVFRReserve(fuel, tt.burn, tt.night)
			if check.OK != tt.wantOK {
				t.Errorf("CheckVFRReserve(landing=%v, burn=%v, night=%v).OK = %v, want %v",
					tt.landing, tt.burn, tt.night, check.OK, tt.wantOK)
			}
			if !check.OK && check.Message == "" {
				t.Error("failed check should carry a message")
			}
		})
	}
}
