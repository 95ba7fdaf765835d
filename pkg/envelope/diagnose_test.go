package envelope

import "testing"

// rectangleEnvelope is the classic rectangular chart: CG 100-140 in,
// weight 2000-2500 lb.
func rectangleEnvelope() []Point {
	return SortPerimeter([]Point{
		pt(2000, 100), pt(2000, 140), pt(2500, 140), pt(2500, 100),
	})
}

func TestDiagnoseRectangle(t *testing.T) {
	poly := rectangleEnvelope()

	tests := []struct {
		name  string
		query Point
		want  Diagnosis
	}{
		{"well inside", pt(2200, 120), DiagnosisInside},
		{"cg forward of limit", pt(2200, 90), DiagnosisForward},
		{"cg aft of limit", pt(2200, 150), DiagnosisAft},
		{"over max weight", pt(2600, 120), DiagnosisOverweight},
		{"overweight dominates cg", pt(2600, 90), DiagnosisOverweight},
		{"on forward boundary", pt(2200, 100), DiagnosisInside},
		{"at bottom edge weight", pt(2000, 120), DiagnosisInside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diagnose(tt.query, poly); got != tt.want {
				t.Errorf("Diagnose(%+v) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestDiagnoseTaperedEnvelope(t *testing.T) {
	// Forward limit slopes aft as weight increases, like most POH charts.
	poly := SortPerimeter([]Point{
		pt(1500, 85), pt(1500, 95.5), pt(2350, 94.5), pt(2350, 89.5),
	})

	tests := []struct {
		name  string
		query Point
		want  Diagnosis
	}{
		{"light and mid-cg", pt(1600, 90), DiagnosisInside},
		{"heavy at forward limit", pt(2300, 86), DiagnosisForward},
		{"light at same cg is fine", pt(1600, 86), DiagnosisInside},
		{"heavy and aft", pt(2300, 96), DiagnosisAft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diagnose(tt.query, poly); got != tt.want {
				t.Errorf("Diagnose(%+v) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestDiagnoseUndefined(t *testing.T) {
	for _, poly := range [][]Point{nil, {pt(2000, 100)}, {pt(2000, 100), pt(2500, 140)}} {
		if got := Diagnose(pt(2200, 120), poly); got != DiagnosisUndefined {
			t.Errorf("Diagnose with %d-point polygon = %s, want %s", len(poly), got, DiagnosisUndefined)
		}
	}
}

func TestDiagnoseDegeneratePolygon(t *testing.T) {
	// All vertices at the same weight: every edge is horizontal, no
	// crossings can be collected, and the point classifies as outside
	// rather than undefined.
	flat := []Point{pt(2000, 100), pt(2000, 120), pt(2000, 140)}
	if got := Diagnose(pt(2000, 120), flat); got != DiagnosisOutside {
		t.Errorf("Diagnose against degenerate polygon = %s, want %s", got, DiagnosisOutside)
	}
}

func TestDiagnosisSafe(t *testing.T) {
	if !DiagnosisInside.Safe() {
		t.Error("inside should be safe")
	}
	for _, d := range []Diagnosis{DiagnosisForward, DiagnosisAft, DiagnosisOverweight, DiagnosisOutside, DiagnosisUndefined} {
		if d.Safe() {
			t.Errorf("%s should not be safe", d)
		}
	}
}

func TestPrepare(t *testing.T) {
	raw := []RawPoint{
		{WeightLb: fp(2500), CGIn: fp(100)},
		{WeightLb: fp(2000), CGIn: fp(140)},
		{WeightLb: nil, CGIn: fp(1)}, // dropped by normalization
		{WeightLb: fp(2500), CGIn: fp(140)},
		{WeightLb: fp(2000), CGIn: fp(100)},
	}

	res := Prepare(raw)
	if !res.Usable() {
		t.Fatalf("expected usable envelope, report %v", res.Report)
	}
	if len(res.Points) != 4 {
		t.Errorf("expected 4 points after normalization, got %d", len(res.Points))
	}
	if got := Diagnose(pt(2200, 120), res.Points); got != DiagnosisInside {
		t.Errorf("Diagnose on prepared polygon = %s, want inside", got)
	}
}

func TestPrepareSet(t *testing.T) {
	raw := map[Category][]RawPoint{
		CategoryNormal: {
			{WeightLb: fp(2000), CGIn: fp(100)},
			{WeightLb: fp(2000), CGIn: fp(140)},
			{WeightLb: fp(2500), CGIn: fp(140)},
			{WeightLb: fp(2500), CGIn: fp(100)},
		},
		CategoryUtility: {
			{WeightLb: fp(2000), CGIn: fp(100)},
		},
	}

	set := PrepareSet(raw)
	if !set[CategoryNormal].Usable() {
		t.Error("normal category should be usable")
	}
	if set[CategoryUtility].Usable() {
		t.Error("utility category with one point should not be usable")
	}
	if got := Diagnose(pt(2200, 120), set[CategoryUtility].Points); got != DiagnosisUndefined {
		t.Errorf("diagnosis against unusable category = %s, want undefined", got)
	}
}
