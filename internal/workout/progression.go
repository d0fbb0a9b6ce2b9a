package workout

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Double-progression rules: hit the top of the rep range on every set and the
// weight goes up; miss the bottom on at least half the sets often enough and
// the weight deloads.

const (
	weightIncrementLb = 5.0
	deloadFactor      = 0.9
	stallLimit        = 3
)

// progressionRepRange is the rep range progression decisions are judged
// against. Compounds progress in a lower range than isolation work.
func progressionRepRange(exercise Exercise) RepRange {
	if exercise.Compound {
		return RepRange{Min: 5, Max: 10}
	}
	return RepRange{Min: 10, Max: 20}
}

// suggestedReps is the starting rep prescription for an exercise.
func suggestedReps(exercise Exercise) int {
	return progressionRepRange(exercise).Min
}

// suggestedWeightLb resolves the next working weight for an exercise: the
// progression record when one exists, otherwise the most recently completed
// set's weight from history, otherwise zero.
func suggestedWeightLb(name string, progress map[string]ExerciseProgress, history []Session) float64 {
	if entry, ok := progress[progressKey(name)]; ok {
		return entry.NextWeightLb
	}

	sorted := make([]Session, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for _, session := range sorted {
		for _, log := range session.Exercises {
			if !strings.EqualFold(log.ExerciseName, name) {
				continue
			}
			for _, set := range log.Sets {
				if set.Completed {
					return set.WeightLb
				}
			}
		}
	}
	return 0
}

// applyProgression folds a completed session into the progression records and
// returns the updated entries, keyed by progressKey. Exercises without a
// catalog match or without any completed set are skipped.
func applyProgression(
	session Session,
	catalog *Catalog,
	progress map[string]ExerciseProgress,
	now time.Time,
) map[string]ExerciseProgress {
	updated := make(map[string]ExerciseProgress)
	for _, log := range session.Exercises {
		exercise, ok := catalog.lookup(log.ExerciseName)
		if !ok {
			continue
		}

		var reps []int
		currentWeight := 0.0
		first := true
		for _, set := range log.Sets {
			if !set.Completed {
				continue
			}
			reps = append(reps, set.Reps)
			if first {
				currentWeight = set.WeightLb
				first = false
			}
		}
		if len(reps) == 0 {
			continue
		}

		key := progressKey(exercise.Name)
		entry := progress[key]
		entry.ExerciseName = exercise.Name

		repRange := progressionRepRange(exercise)
		nextWeight := currentWeight
		switch {
		case allAtLeast(reps, repRange.Max):
			nextWeight = roundToIncrement(currentWeight + weightIncrementLb)
			entry.FailStreak = 0
		case countBelow(reps, repRange.Min) >= failThreshold(len(reps)):
			entry.FailStreak++
			if entry.FailStreak >= stallLimit {
				nextWeight = roundToIncrement(currentWeight * deloadFactor)
				entry.FailStreak = 0
			}
		default:
			entry.FailStreak = 0
		}
		if nextWeight < 0 {
			nextWeight = 0
		}

		entry.LastWeightLb = currentWeight
		entry.NextWeightLb = nextWeight
		entry.LastUpdated = now
		updated[key] = entry
	}
	return updated
}

// progressKey normalises an exercise name for progression storage.
func progressKey(name string) string {
	return strings.ToLower(name)
}

func allAtLeast(reps []int, min int) bool {
	for _, r := range reps {
		if r < min {
			return false
		}
	}
	return true
}

func countBelow(reps []int, min int) int {
	n := 0
	for _, r := range reps {
		if r < min {
			n++
		}
	}
	return n
}

// failThreshold is the number of below-range sets that counts as a failed
// session: at least half, but never zero.
func failThreshold(setCount int) int {
	threshold := setCount / 2
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

// roundToIncrement snaps a weight to the nearest loadable increment.
func roundToIncrement(weight float64) float64 {
	return math.Round(weight/weightIncrementLb) * weightIncrementLb
}
