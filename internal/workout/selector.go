package workout

// minutesPerExercise budgets roughly three sets of three minutes each.
const minutesPerExercise = 3 * 3

// selectExercises picks the session's exercises from the scored list:
// first one exercise per uncovered target muscle, then the best remaining
// target-relevant candidates until the duration budget is spent. Mobility
// and equipment-mix adjustments run last so they can displace the weakest
// pick instead of a coverage-critical one.
func selectExercises(scored []scoredExercise, req Request) []scoredExercise {
	maxExercises := req.DurationMinutes / minutesPerExercise
	if maxExercises < 1 {
		maxExercises = 1
	}

	targetSet := make(map[MuscleGroup]struct{}, len(req.TargetMuscles))
	for _, m := range req.TargetMuscles {
		targetSet[m] = struct{}{}
	}

	var targetScored []scoredExercise
	for _, s := range scored {
		if musclesIntersect(allMuscles(s.exercise), targetSet) {
			targetScored = append(targetScored, s)
		}
	}

	var selected []scoredExercise
	covered := make(map[MuscleGroup]struct{})

	// Coverage pass: one exercise per not-yet-covered target muscle.
	for _, s := range targetScored {
		if len(selected) >= maxExercises {
			break
		}
		coveredByExercise := allMuscles(s.exercise)
		if !addsNewTarget(coveredByExercise, targetSet, covered) {
			continue
		}
		selected = append(selected, s)
		for _, m := range coveredByExercise {
			covered[m] = struct{}{}
		}
	}

	// Backfill pass: best remaining target-relevant exercises.
	for _, s := range targetScored {
		if len(selected) >= maxExercises {
			break
		}
		if containsExercise(selected, s.exercise.Name) {
			continue
		}
		selected = append(selected, s)
	}

	// Nothing touched the targets at all: fall back to top scores.
	if len(selected) == 0 {
		for _, s := range scored {
			if len(selected) >= maxExercises {
				break
			}
			selected = append(selected, s)
		}
	}

	candidates := targetScored
	if len(candidates) == 0 {
		candidates = scored
	}
	selected = ensureMobilityPresence(selected, candidates, req.Focus, maxExercises)
	selected = ensureEquipmentMix(selected, candidates, req, maxExercises)
	return selected
}

// ensureMobilityPresence guarantees one mobility exercise in non-strength
// sessions, appending when there is room and otherwise replacing the
// lowest-scored pick.
func ensureMobilityPresence(selected, candidates []scoredExercise, focus Focus, maxExercises int) []scoredExercise {
	if focus == FocusStrength {
		return selected
	}
	for _, s := range selected {
		if s.exercise.Focus == FocusMobility {
			return selected
		}
	}
	for _, s := range candidates {
		if s.exercise.Focus != FocusMobility || containsExercise(selected, s.exercise.Name) {
			continue
		}
		return appendOrReplaceLast(selected, s, maxExercises)
	}
	return selected
}

// ensureEquipmentMix keeps mixed-equipment and mobility-leaning sessions from
// collapsing into all-loaded or all-bodyweight picks.
func ensureEquipmentMix(selected, candidates []scoredExercise, req Request, maxExercises int) []scoredExercise {
	if req.Equipment != EquipmentChoiceBoth && req.Focus != FocusBalanced && req.Focus != FocusMobility {
		return selected
	}

	hasBodyweight := false
	hasLoaded := false
	for _, s := range selected {
		if unloaded(s.exercise) {
			hasBodyweight = true
		} else {
			hasLoaded = true
		}
	}

	if !hasBodyweight {
		for _, s := range candidates {
			if !unloaded(s.exercise) || containsExercise(selected, s.exercise.Name) {
				continue
			}
			selected = appendOrReplaceLast(selected, s, maxExercises)
			break
		}
	}

	hasLoaded = false
	for _, s := range selected {
		if !unloaded(s.exercise) {
			hasLoaded = true
			break
		}
	}
	if !hasLoaded {
		for _, s := range candidates {
			if unloaded(s.exercise) || containsExercise(selected, s.exercise.Name) {
				continue
			}
			selected = appendOrReplaceLast(selected, s, maxExercises)
			break
		}
	}

	return selected
}

func appendOrReplaceLast(selected []scoredExercise, s scoredExercise, maxExercises int) []scoredExercise {
	if len(selected) < maxExercises {
		return append(selected, s)
	}
	if len(selected) > 0 {
		selected[len(selected)-1] = s
	}
	return selected
}

func unloaded(e Exercise) bool {
	return e.Equipment == EquipmentBodyweight || e.Equipment == EquipmentBand
}

func allMuscles(e Exercise) []MuscleGroup {
	muscles := make([]MuscleGroup, 0, len(e.PrimaryMuscles)+len(e.SecondaryMuscles))
	muscles = append(muscles, e.PrimaryMuscles...)
	muscles = append(muscles, e.SecondaryMuscles...)
	return muscles
}

func musclesIntersect(muscles []MuscleGroup, set map[MuscleGroup]struct{}) bool {
	for _, m := range muscles {
		if _, ok := set[m]; ok {
			return true
		}
	}
	return false
}

// addsNewTarget reports whether the exercise hits a target muscle that no
// selected exercise covers yet.
func addsNewTarget(muscles []MuscleGroup, targetSet, covered map[MuscleGroup]struct{}) bool {
	for _, m := range muscles {
		if _, isTarget := targetSet[m]; !isTarget {
			continue
		}
		if _, alreadyCovered := covered[m]; !alreadyCovered {
			return true
		}
	}
	return false
}

func containsExercise(selected []scoredExercise, name string) bool {
	for _, s := range selected {
		if s.exercise.Name == name {
			return true
		}
	}
	return false
}
