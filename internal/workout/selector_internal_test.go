package workout

import (
	"testing"
	"time"
)

func scoredForRequest(t *testing.T, req Request) []scoredExercise {
	t.Helper()
	catalog := mustCatalog(t)
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	return scoreExercises(catalog, trainingProfile{}, req, strategyProgressive, now)
}

func TestSelectExercises_durationBudget(t *testing.T) {
	tests := []struct {
		name            string
		durationMinutes int
		wantMax         int
	}{
		{name: "short session allows one exercise", durationMinutes: 10, wantMax: 1},
		{name: "45 minutes allows five exercises", durationMinutes: 45, wantMax: 5},
		{name: "hour allows six exercises", durationMinutes: 60, wantMax: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{
				DurationMinutes: tt.durationMinutes,
				TargetMuscles:   []MuscleGroup{MuscleChestUpper, MuscleChestLower, MuscleTriceps, MuscleShoulderFront, MuscleShoulderSide, MuscleBackWidth},
				Equipment:       EquipmentChoiceBoth,
				Focus:           FocusStrength,
			}
			selected := selectExercises(scoredForRequest(t, req), req)
			if len(selected) == 0 {
				t.Fatal("expected at least one exercise")
			}
			if len(selected) > tt.wantMax {
				t.Errorf("selected %d exercises, want at most %d", len(selected), tt.wantMax)
			}
		})
	}
}

func TestSelectExercises_coversEveryTarget(t *testing.T) {
	req := Request{
		DurationMinutes: 60,
		TargetMuscles:   []MuscleGroup{MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves},
		Equipment:       EquipmentChoiceBoth,
		Focus:           FocusStrength,
	}

	selected := selectExercises(scoredForRequest(t, req), req)

	covered := make(map[MuscleGroup]bool)
	for _, s := range selected {
		for _, m := range allMuscles(s.exercise) {
			covered[m] = true
		}
	}
	for _, target := range req.TargetMuscles {
		if !covered[target] {
			t.Errorf("target muscle %s not covered by selection", target)
		}
	}
}

func TestSelectExercises_noDuplicates(t *testing.T) {
	req := Request{
		DurationMinutes: 90,
		TargetMuscles:   []MuscleGroup{MuscleChestUpper, MuscleBackWidth},
		Equipment:       EquipmentChoiceBoth,
		Focus:           FocusBalanced,
	}

	selected := selectExercises(scoredForRequest(t, req), req)

	seen := make(map[string]bool)
	for _, s := range selected {
		if seen[s.exercise.Name] {
			t.Errorf("exercise %s selected twice", s.exercise.Name)
		}
		seen[s.exercise.Name] = true
	}
}

func TestSelectExercises_mobilityPresence(t *testing.T) {
	tests := []struct {
		name         string
		focus        Focus
		wantMobility bool
	}{
		{name: "balanced session includes mobility work", focus: FocusBalanced, wantMobility: true},
		{name: "mobility session includes mobility work", focus: FocusMobility, wantMobility: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{
				DurationMinutes: 45,
				TargetMuscles:   []MuscleGroup{MuscleAbs, MuscleGlutes},
				Equipment:       EquipmentChoiceBoth,
				Focus:           tt.focus,
			}
			selected := selectExercises(scoredForRequest(t, req), req)

			hasMobility := false
			for _, s := range selected {
				if s.exercise.Focus == FocusMobility {
					hasMobility = true
				}
			}
			if hasMobility != tt.wantMobility {
				t.Errorf("hasMobility = %v, want %v", hasMobility, tt.wantMobility)
			}
		})
	}
}

func TestSelectExercises_equipmentMix(t *testing.T) {
	req := Request{
		DurationMinutes: 60,
		TargetMuscles:   []MuscleGroup{MuscleChestUpper, MuscleChestLower, MuscleTriceps},
		Equipment:       EquipmentChoiceBoth,
		Focus:           FocusBalanced,
	}

	selected := selectExercises(scoredForRequest(t, req), req)

	hasUnloaded := false
	hasLoaded := false
	for _, s := range selected {
		if unloaded(s.exercise) {
			hasUnloaded = true
		} else {
			hasLoaded = true
		}
	}
	if !hasUnloaded {
		t.Error("mixed-equipment session has no bodyweight or band exercise")
	}
	if !hasLoaded {
		t.Error("mixed-equipment session has no loaded exercise")
	}
}
