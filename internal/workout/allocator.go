package workout

// The set allocator distributes a session's total set budget across its
// exercises so that per-muscle set targets are approached as closely as
// possible. Primary muscles receive full credit per set, secondaries half.

const (
	primarySetCredit   = 1.0
	secondarySetCredit = 0.5

	defaultSeedReps = 10
)

// allocateSets assigns a set count to every exercise log and returns the
// rebuilt logs together with the coverage of the per-muscle targets achieved.
// Every exercise keeps at least one set; extra sets go greedily to the
// exercise whose next set closes the largest remaining target deficit.
func allocateSets(
	logs []ExerciseLog,
	targets map[MuscleGroup]float64,
	maxTotalSets int,
	catalog *Catalog,
) ([]ExerciseLog, float64) {
	if len(logs) == 0 {
		return []ExerciseLog{}, 0
	}

	metadata := make([]*Exercise, len(logs))
	for i, log := range logs {
		if exercise, ok := catalog.lookup(log.ExerciseName); ok {
			metadata[i] = &exercise
		}
	}

	achieved := make(map[MuscleGroup]float64)
	setCounts := make([]int, len(logs))
	totalSets := 0

	// Seed pass: one set per resolvable exercise.
	for i := range logs {
		if totalSets >= maxTotalSets {
			break
		}
		if metadata[i] == nil {
			continue
		}
		setCounts[i] = 1
		totalSets++
		applySetContribution(achieved, *metadata[i])
	}

	// Greedy pass: spend the remaining budget on the biggest deficit.
	for totalSets < maxTotalSets {
		bestIndex := -1
		bestScore := 0.0
		for i := range logs {
			if metadata[i] == nil || setCounts[i] >= setCap(*metadata[i]) {
				continue
			}
			score := deficitScore(achieved, targets, *metadata[i])
			if score > bestScore {
				bestScore = score
				bestIndex = i
			}
		}
		if bestIndex < 0 {
			break
		}
		setCounts[bestIndex]++
		totalSets++
		applySetContribution(achieved, *metadata[bestIndex])
	}

	allocated := make([]ExerciseLog, len(logs))
	for i, log := range logs {
		desired := setCounts[i]
		if desired < 1 {
			desired = 1
		}
		allocated[i] = rebuildLog(log, metadata[i], desired)
	}

	return allocated, targetCoverage(achieved, targets)
}

// deficitScore is the target deficit a single extra set of the exercise would
// reduce, weighted by muscle contribution.
func deficitScore(achieved, targets map[MuscleGroup]float64, exercise Exercise) float64 {
	score := 0.0
	for muscle, target := range targets {
		deficit := target - achieved[muscle]
		if deficit <= 0 {
			continue
		}
		score += deficit * setContribution(exercise, muscle)
	}
	return score
}

func setContribution(exercise Exercise, muscle MuscleGroup) float64 {
	for _, m := range exercise.PrimaryMuscles {
		if m == muscle {
			return primarySetCredit
		}
	}
	for _, m := range exercise.SecondaryMuscles {
		if m == muscle {
			return secondarySetCredit
		}
	}
	return 0
}

func applySetContribution(achieved map[MuscleGroup]float64, exercise Exercise) {
	for _, m := range exercise.PrimaryMuscles {
		achieved[m] += primarySetCredit
	}
	for _, m := range exercise.SecondaryMuscles {
		achieved[m] += secondarySetCredit
	}
}

// setCap bounds per-exercise sets. Compounds take longer to recover between
// sets, mobility work stays light, and small high-frequency muscles tolerate
// more.
func setCap(exercise Exercise) int {
	if exercise.Focus == FocusMobility {
		if exercise.Compound {
			return 4
		}
		return 3
	}
	if exercise.Compound {
		return 5
	}
	for _, m := range exercise.PrimaryMuscles {
		if m == MuscleAbs || m == MuscleCalves {
			return 5
		}
	}
	return 4
}

// rebuildLog resizes the log's sets to the allocated count, seeding weight and
// reps from the first existing set when present.
func rebuildLog(log ExerciseLog, exercise *Exercise, desired int) ExerciseLog {
	seed := Set{WeightLb: 0, Reps: defaultSeedReps}
	if len(log.Sets) > 0 {
		seed = log.Sets[0]
	}

	reps := seed.Reps
	weight := seed.WeightLb
	if exercise != nil {
		repRange := prescribedRepRange(*exercise)
		if !repRange.Contains(reps) {
			reps = (repRange.Min + repRange.Max) / 2
		}
		if exercise.Equipment == EquipmentBodyweight || exercise.Equipment == EquipmentBand {
			weight = 0
		}
	}

	sets := make([]Set, desired)
	for i := range sets {
		sets[i] = Set{WeightLb: weight, Reps: reps, Completed: false}
	}
	log.Sets = sets
	return log
}

// prescribedRepRange is the rep range sets are seeded into when the allocator
// rebuilds a log.
func prescribedRepRange(exercise Exercise) RepRange {
	switch {
	case exercise.Focus == FocusMobility:
		return RepRange{Min: 8, Max: 15}
	case exercise.Compound && exercise.Equipment == EquipmentBodyweight:
		return RepRange{Min: 8, Max: 15}
	case exercise.Compound:
		return RepRange{Min: 5, Max: 10}
	case primaryIsAbs(exercise):
		return RepRange{Min: 12, Max: 20}
	default:
		return RepRange{Min: 10, Max: 18}
	}
}

func primaryIsAbs(exercise Exercise) bool {
	for _, m := range exercise.PrimaryMuscles {
		if m == MuscleAbs {
			return true
		}
	}
	return false
}

// targetCoverage is the mean fulfilment ratio over positive targets, each
// ratio capped at one so overshooting a muscle cannot mask a deficit.
func targetCoverage(achieved, targets map[MuscleGroup]float64) float64 {
	sum := 0.0
	n := 0
	for muscle, target := range targets {
		if target <= 0 {
			continue
		}
		ratio := achieved[muscle] / target
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}
