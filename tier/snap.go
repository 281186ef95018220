package tier

import "sort"

// SnapToNearestSupported picks the display mode that best fits target.
//
// Candidates are ordered by width (stable, so equal widths keep their
// given order) and the last one whose pixel count does not exceed the
// target's wins. When every candidate is larger than the target the
// first mode in that order, the narrowest, is returned. candidates is
// not modified.
func SnapToNearestSupported(target Mode, candidates []Mode) (Mode, error) {
	if len(candidates) == 0 {
		return Mode{}, ErrEmptyCandidateSet
	}

	sorted := append([]Mode(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width < sorted[j].Width
	})

	targetPixels := target.Pixels()
	best := sorted[0]
	for _, m := range sorted {
		if m.Pixels() <= targetPixels {
			best = m
		}
	}
	return best, nil
}
