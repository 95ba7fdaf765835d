package envelope

import (
	"strings"
	"testing"
)

func TestValidateTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {pt(2000, 100)}, {pt(2000, 100), pt(2500, 140)}} {
		report := Validate(pts)
		if report.OK {
			t.Errorf("Validate(%d points) = ok, want failure", len(pts))
		}
		if len(report.Messages) != 1 || !strings.Contains(report.Messages[0], "at least 3") {
			t.Errorf("unexpected messages: %v", report.Messages)
		}
	}
}

func TestValidateDuplicatePoints(t *testing.T) {
	report := Validate([]Point{pt(2000, 100), pt(2000, 100), pt(2500, 140)})
	if report.OK {
		t.Fatal("expected duplicate points to fail validation")
	}
	found := false
	for _, m := range report.Messages {
		if strings.Contains(m, "duplicates") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate-point message, got %v", report.Messages)
	}
}

func TestValidateReportsAllDuplicatePairs(t *testing.T) {
	report := Validate([]Point{
		pt(2000, 100), pt(2000, 100),
		pt(2500, 140), pt(2500, 140),
	})
	dupes := 0
	for _, m := range report.Messages {
		if strings.Contains(m, "duplicates") {
			dupes++
		}
	}
	if dupes != 2 {
		t.Errorf("expected 2 duplicate messages, got %d: %v", dupes, report.Messages)
	}
}

func TestValidateDuplicateTolerance(t *testing.T) {
	// Points 1e-10 apart are duplicates; points 1e-6 apart are not.
	report := Validate([]Point{pt(2000, 100), pt(2000+1e-10, 100+1e-10), pt(2500, 140)})
	if report.OK {
		t.Error("expected near-coincident points to be flagged as duplicates")
	}

	report = Validate(SortPerimeter([]Point{pt(2000, 100), pt(2000+1e-6, 140), pt(2500, 120)}))
	if !report.OK {
		t.Errorf("points well outside tolerance flagged: %v", report.Messages)
	}
}

func TestValidateBowtie(t *testing.T) {
	// A self-crossing quadrilateral, deliberately not run through
	// SortPerimeter: edges 1-2 and 3-4 cross at the middle.
	bowtie := []Point{pt(2000, 100), pt(2500, 140), pt(2000, 140), pt(2500, 100)}

	report := Validate(bowtie)
	if report.OK {
		t.Fatal("expected bowtie polygon to fail validation")
	}
	found := false
	for _, m := range report.Messages {
		if strings.Contains(m, "intersects") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a self-intersection message, got %v", report.Messages)
	}
}

func TestValidateSimplePolygons(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{
			name: "rectangle",
			pts:  []Point{pt(2000, 100), pt(2000, 140), pt(2500, 140), pt(2500, 100)},
		},
		{
			name: "triangle",
			pts:  []Point{pt(2000, 100), pt(2000, 140), pt(2500, 120)},
		},
		{
			name: "concave but simple",
			pts: []Point{
				pt(2000, 100), pt(2000, 140), pt(2500, 140),
				pt(2250, 120), pt(2500, 100),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(tt.pts)
			if !report.OK {
				t.Errorf("expected valid polygon, got messages %v", report.Messages)
			}
		})
	}
}
