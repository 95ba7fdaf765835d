package envelope

// CategoryResult bundles the prepared polygon and its validation report
// for one envelope category.
type CategoryResult struct {
	Points []Point `json:"points"`
	Report Report  `json:"report"`
}

// Usable reports whether the category's polygon can back a diagnosis.
func (r CategoryResult) Usable() bool {
	return r.Report.OK && len(r.Points) >= 3
}

// Prepare runs the full normalize, sort, validate pipeline on one
// category's raw points. It is idempotent and keeps no state between
// calls; callers re-run it on every edit.
func Prepare(raw []RawPoint) CategoryResult {
	pts := SortPerimeter(Normalize(raw))
	return CategoryResult{Points: pts, Report: Validate(pts)}
}

// PrepareSet runs Prepare for every category present in raw. Categories
// absent from the input are absent from the result; callers treat them as
// undefined envelopes.
func PrepareSet(raw map[Category][]RawPoint) map[Category]CategoryResult {
	out := make(map[Category]CategoryResult, len(raw))
	for cat, pts := range raw {
		out[cat] = Prepare(pts)
	}
	return out
}
