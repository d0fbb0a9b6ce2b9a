package workout

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// scoredExercise pairs a catalog exercise with its score and the
// human-readable reasons that earned it.
type scoredExercise struct {
	exercise Exercise
	score    float64
	reasons  []string
}

const (
	primaryTargetScore   = 20.0
	secondaryTargetScore = 10.0

	fullRecoveryScore     = 30.0
	adequateRecoveryScore = 15.0
	underRecoveredPenalty = -10.0
	adequateRecoveryRatio = 0.7

	completionRateWeight = 15.0
	highCompletionRate   = 0.8

	compoundScore  = 15.0
	preferredScore = 10.0

	deloadCompoundScore = 10.0
	balancingScore      = 20.0
	lowVolumeThreshold  = 10
)

// scoreExercises scores every catalog exercise admitted by the equipment
// constraint and returns them sorted by descending score. The sort is stable
// so equal scores keep catalog order, which keeps generation deterministic.
func scoreExercises(
	catalog *Catalog,
	profile trainingProfile,
	req Request,
	strat strategy,
	now time.Time,
) []scoredExercise {
	var scored []scoredExercise
	for _, exercise := range catalog.All() {
		if req.Equipment == EquipmentChoiceBodyweight && exercise.Equipment != EquipmentBodyweight {
			continue
		}
		if req.Equipment == EquipmentChoiceGym && exercise.Equipment == EquipmentBodyweight {
			continue
		}
		scored = append(scored, scoreExercise(exercise, profile, req, strat, now))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

func scoreExercise(
	exercise Exercise,
	profile trainingProfile,
	req Request,
	strat strategy,
	now time.Time,
) scoredExercise {
	score := 0.0
	var reasons []string

	targetScore, targetReason := scoreTargetMuscles(exercise, req.TargetMuscles)
	score += targetScore
	if targetReason != "" {
		reasons = append(reasons, targetReason)
	}

	recoveryScore, recoveryReason := scoreRecovery(exercise, profile, now)
	score += recoveryScore
	if recoveryReason != "" {
		reasons = append(reasons, recoveryReason)
	}

	if rate, ok := profile.completionRates[exercise.Name]; ok {
		score += rate * completionRateWeight
		if rate > highCompletionRate {
			reasons = append(reasons, "High success rate")
		}
	}

	if len(exercise.PrimaryMuscles) > 1 {
		score += compoundScore
		reasons = append(reasons, "Compound movement")
	}

	for _, preferred := range req.PreferredExercises {
		if preferred == exercise.Name {
			score += preferredScore
			reasons = append(reasons, "You do this often")
			break
		}
	}

	focusScore, focusReason := scoreForFocus(exercise, req.Focus)
	score += focusScore
	if focusReason != "" {
		reasons = append(reasons, focusReason)
	}

	strategyScore, strategyReason := scoreStrategy(exercise, profile, strat)
	score += strategyScore
	if strategyReason != "" {
		reasons = append(reasons, strategyReason)
	}

	return scoredExercise{exercise: exercise, score: score, reasons: reasons}
}

// scoreTargetMuscles rewards overlap between the exercise's muscles and the
// session targets, primaries counting double.
func scoreTargetMuscles(exercise Exercise, targets []MuscleGroup) (float64, string) {
	targetSet := make(map[MuscleGroup]struct{}, len(targets))
	for _, m := range targets {
		targetSet[m] = struct{}{}
	}

	primaryOverlap, secondaryOverlap := 0, 0
	for _, m := range exercise.PrimaryMuscles {
		if _, ok := targetSet[m]; ok {
			primaryOverlap++
		}
	}
	for _, m := range exercise.SecondaryMuscles {
		if _, ok := targetSet[m]; ok {
			secondaryOverlap++
		}
	}
	if primaryOverlap+secondaryOverlap == 0 {
		return 0, ""
	}

	score := float64(primaryOverlap)*primaryTargetScore + float64(secondaryOverlap)*secondaryTargetScore

	seen := make(map[MuscleGroup]struct{})
	var names []string
	for _, m := range append(append([]MuscleGroup{}, exercise.PrimaryMuscles...), exercise.SecondaryMuscles...) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		names = append(names, m.DisplayName())
	}
	sort.Strings(names)
	return score, "Targets " + strings.Join(names, ", ")
}

// scoreRecovery compares the days since the exercise's most recently trained
// primary muscle against that muscle's recovery window.
func scoreRecovery(exercise Exercise, profile trainingProfile, now time.Time) (float64, string) {
	minDaysSinceWorked := 999.0
	var criticalMuscle MuscleGroup
	haveCritical := false

	for _, muscle := range exercise.PrimaryMuscles {
		lastDate, ok := profile.lastWorked[muscle]
		if !ok {
			continue
		}
		days := now.Sub(lastDate).Hours() / 24
		if days < minDaysSinceWorked {
			minDaysSinceWorked = days
			criticalMuscle = muscle
			haveCritical = true
		}
	}

	window := 3.0
	if haveCritical {
		window = recoveryWindowDays(criticalMuscle)
	}

	switch {
	case minDaysSinceWorked >= window:
		return fullRecoveryScore, fmt.Sprintf("Fully recovered (%dd rest)", int(minDaysSinceWorked))
	case minDaysSinceWorked >= window*adequateRecoveryRatio:
		return adequateRecoveryScore, "Adequate recovery"
	default:
		return underRecoveredPenalty, ""
	}
}

func scoreForFocus(exercise Exercise, focus Focus) (float64, string) {
	switch focus {
	case FocusStrength:
		if exercise.Focus == FocusStrength {
			return 12, "Strength priority"
		}
		return -8, ""
	case FocusBalanced:
		if exercise.Focus == FocusMobility {
			return 8, "Adds mobility work"
		}
		return 6, ""
	case FocusMobility:
		score := 0.0
		reason := ""
		if exercise.Focus == FocusMobility {
			score += 28
			reason = "Mobility priority"
		} else {
			score -= 12
		}
		if exercise.Equipment == EquipmentBodyweight || exercise.Equipment == EquipmentBand {
			score += 10
		}
		if exercise.Compound {
			score -= 4
		}
		return score, reason
	}
	return 0, ""
}

func scoreStrategy(exercise Exercise, profile trainingProfile, strat strategy) (float64, string) {
	switch strat {
	case strategyDeload:
		if len(exercise.PrimaryMuscles) > 1 {
			return deloadCompoundScore, "Efficient for deload"
		}
	case strategyBalancing:
		muscle := MuscleChestUpper
		if len(exercise.PrimaryMuscles) > 0 {
			muscle = exercise.PrimaryMuscles[0]
		}
		if profile.weeklySetVolume[muscle] < lowVolumeThreshold {
			return balancingScore, "Balancing weekly volume"
		}
	case strategyProgressive:
	}
	return 0, ""
}
