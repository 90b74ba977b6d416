// Package visibility derives the hide/show decision for an annotated
// item from the user-configured filter thresholds.
package visibility

// ShouldHide combines the ratio and supply filters. Each enabled filter
// is an independent veto: a value below its threshold, or an unknown
// (nil) value, forces a hide. Unknowns fail closed.
func ShouldHide(
	ratio *float64,
	supply *float64,
	ratioEnabled bool,
	ratioThreshold float64,
	supplyEnabled bool,
	supplyThreshold float64,
) bool {
	hide := false
	if ratioEnabled && (ratio == nil || *ratio < ratioThreshold) {
		hide = true
	}
	if supplyEnabled && (supply == nil || *supply < supplyThreshold) {
		hide = true
	}
	return hide
}
