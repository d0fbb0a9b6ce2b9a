package workout

// strategy is the session-level training strategy derived from history.
type strategy int

const (
	// strategyProgressive is the default: push weights upward.
	strategyProgressive strategy = iota
	// strategyDeload reduces volume after too many consecutive training days.
	strategyDeload
	// strategyBalancing favours under-trained muscles when weekly volume is
	// badly skewed.
	strategyBalancing
)

func (s strategy) String() string {
	switch s {
	case strategyDeload:
		return "deload"
	case strategyBalancing:
		return "balancing"
	default:
		return "progressive"
	}
}

const (
	deloadConsecutiveDays = 5
	// volumeImbalanceRatio is the min/max weekly volume ratio below which the
	// balancing strategy kicks in.
	volumeImbalanceRatio = 0.5
)

// determineStrategy picks the strategy for the next session. Deload wins over
// balancing: overreaching is corrected before volume distribution.
func determineStrategy(profile trainingProfile) strategy {
	if profile.consecutiveDays >= deloadConsecutiveDays {
		return strategyDeload
	}

	maxVolume, minVolume := 0, 0
	first := true
	for _, v := range profile.weeklySetVolume {
		if first {
			maxVolume, minVolume = v, v
			first = false
			continue
		}
		if v > maxVolume {
			maxVolume = v
		}
		if v < minVolume {
			minVolume = v
		}
	}

	if maxVolume > 0 && float64(minVolume)/float64(maxVolume) < volumeImbalanceRatio {
		return strategyBalancing
	}

	return strategyProgressive
}
