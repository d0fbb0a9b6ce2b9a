// Package workout implements personalized workout generation, set volume
// allocation and weight progression on top of a fixed exercise catalog.
package workout

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	deloadSetsPerExercise  = 2
	defaultSetsPerExercise = 3
)

// Generate builds a workout for the request from the catalog, the training
// history and the progression records. It is a pure function of its inputs:
// the same arguments always yield the same workout.
func Generate(
	req Request,
	history []Session,
	progress map[string]ExerciseProgress,
	catalog *Catalog,
	now time.Time,
) GeneratedWorkout {
	profile := buildProfile(history, catalog, now)
	strat := determineStrategy(profile)

	scored := scoreExercises(catalog, profile, req, strat, now)
	if len(scored) == 0 {
		return GeneratedWorkout{
			Exercises: []ExerciseLog{},
			Reasoning: "No exercises available for selected equipment. Try 'Both' or add more exercises to database.",
		}
	}

	selected := selectExercises(scored, req)
	if len(selected) == 0 {
		return GeneratedWorkout{
			Exercises: []ExerciseLog{},
			Reasoning: "Unable to generate workout. Try selecting different muscle groups or reducing duration.",
		}
	}

	return GeneratedWorkout{
		Exercises:                buildLogs(selected, strat, progress, history),
		EstimatedDurationMinutes: len(selected) * minutesPerExercise,
		Reasoning:                buildReasoning(selected, profile, req, strat),
	}
}

// buildLogs prescribes sets for the selected exercises. Deload sessions carry
// one set less per exercise.
func buildLogs(
	selected []scoredExercise,
	strat strategy,
	progress map[string]ExerciseProgress,
	history []Session,
) []ExerciseLog {
	setsPerExercise := defaultSetsPerExercise
	if strat == strategyDeload {
		setsPerExercise = deloadSetsPerExercise
	}

	logs := make([]ExerciseLog, len(selected))
	for i, s := range selected {
		weight := suggestedWeightLb(s.exercise.Name, progress, history)
		reps := suggestedReps(s.exercise)
		sets := make([]Set, setsPerExercise)
		for j := range sets {
			sets[j] = Set{WeightLb: weight, Reps: reps, Completed: false}
		}
		logs[i] = ExerciseLog{ExerciseName: s.exercise.Name, Sets: sets}
	}
	return logs
}

// buildReasoning summarises why the workout looks the way it does.
func buildReasoning(selected []scoredExercise, profile trainingProfile, req Request, strat strategy) string {
	var parts []string

	switch strat {
	case strategyDeload:
		parts = append(parts, "Deload week - reduced volume for recovery")
	case strategyBalancing:
		parts = append(parts, "Balancing muscle groups")
	default:
		parts = append(parts, "Progressive overload focus")
	}

	switch req.Focus {
	case FocusStrength:
		parts = append(parts, "Strength session")
	case FocusBalanced:
		parts = append(parts, "Balanced strength + mobility")
	case FocusMobility:
		parts = append(parts, "Mobility and control session")
	}

	if names := primaryMuscleNames(selected); len(names) > 0 {
		parts = append(parts, "Targeting: "+strings.Join(names, ", "))
	}

	familiar := 0
	compounds := 0
	for _, s := range selected {
		if _, ok := profile.completionRates[s.exercise.Name]; ok {
			familiar++
		}
		if len(s.exercise.PrimaryMuscles) > 1 {
			compounds++
		}
	}
	if familiar > 0 {
		parts = append(parts, fmt.Sprintf("%d familiar exercises", familiar))
	}
	parts = append(parts, fmt.Sprintf("%d compound movements", compounds))

	if profile.consecutiveDays >= 3 {
		parts = append(parts, fmt.Sprintf("%d consecutive days", profile.consecutiveDays))
	}

	return strings.Join(parts, " • ")
}

// primaryMuscleNames is the sorted unique display names of the selected
// exercises' primary muscles.
func primaryMuscleNames(selected []scoredExercise) []string {
	seen := make(map[MuscleGroup]struct{})
	var names []string
	for _, s := range selected {
		for _, m := range s.exercise.PrimaryMuscles {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			names = append(names, m.DisplayName())
		}
	}
	sort.Strings(names)
	return names
}
