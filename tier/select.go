package tier

// scan walks thresholds in ascending order and returns the selected index.
// The cursor advances past every threshold strictly below score and is
// capped at the last entry, so a score equal to a threshold does not move
// past it and a score below every threshold lands on index 0.
func scan(score Score, n int, threshold func(i int) Score) int {
	idx := 0
	for i := 0; i < n; i++ {
		if threshold(i) >= score {
			break
		}
		idx = i + 1
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// SelectQualityTier returns the quality level for score. ok is false when
// the score is unknown (<= 0); callers must then keep their current
// settings.
func SelectQualityTier(score Score, table QualityTable) (level int, ok bool) {
	if !score.Known() || table.Len() == 0 {
		return 0, false
	}
	idx := scan(score, len(table.tiers), func(i int) Score { return table.tiers[i].Threshold })
	return table.tiers[idx].Level, true
}

// SelectResolutionTier returns the target resolution for score, with the
// same scan and sentinel rules as SelectQualityTier.
func SelectResolutionTier(score Score, table ResolutionTable) (Mode, bool) {
	if !score.Known() || table.Len() == 0 {
		return Mode{}, false
	}
	idx := scan(score, len(table.tiers), func(i int) Score { return table.tiers[i].Threshold })
	return table.tiers[idx].Mode(), true
}

// Select is SelectQualityTier as a method.
func (t QualityTable) Select(score Score) (int, bool) {
	return SelectQualityTier(score, t)
}

// Select is SelectResolutionTier as a method.
func (t ResolutionTable) Select(score Score) (Mode, bool) {
	return SelectResolutionTier(score, t)
}
