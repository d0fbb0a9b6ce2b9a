package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllocateSets_emptyLogs(t *testing.T) {
	catalog := mustCatalog(t)

	logs, coverage := allocateSets(nil, map[MuscleGroup]float64{MuscleQuads: 5}, 10, catalog)

	if diff := cmp.Diff([]ExerciseLog{}, logs); diff != "" {
		t.Errorf("logs mismatch (-want +got):\n%s", diff)
	}
	if coverage != 0 {
		t.Errorf("coverage = %f, want 0", coverage)
	}
}

func TestAllocateSets_everyExerciseKeepsAtLeastOneSet(t *testing.T) {
	catalog := mustCatalog(t)
	logs := []ExerciseLog{
		{ExerciseName: "Squat"},
		{ExerciseName: "Romanian Deadlift"},
		{ExerciseName: "Calf Raise"},
		{ExerciseName: "Not In Catalog"},
	}
	targets := map[MuscleGroup]float64{MuscleQuads: 4, MuscleHamstrings: 4, MuscleCalves: 3}

	allocated, coverage := allocateSets(logs, targets, 12, catalog)

	if len(allocated) != len(logs) {
		t.Fatalf("allocated %d logs, want %d", len(allocated), len(logs))
	}
	for _, log := range allocated {
		if len(log.Sets) < 1 {
			t.Errorf("exercise %s allocated no sets", log.ExerciseName)
		}
	}
	if coverage < 0 || coverage > 1 {
		t.Errorf("coverage = %f, want within [0, 1]", coverage)
	}
}

func TestAllocateSets_respectsPerExerciseCaps(t *testing.T) {
	catalog := mustCatalog(t)
	logs := []ExerciseLog{{ExerciseName: "Squat"}, {ExerciseName: "Leg Extension"}}
	// A huge budget against huge targets drives every exercise to its cap.
	targets := map[MuscleGroup]float64{MuscleQuads: 100}

	allocated, _ := allocateSets(logs, targets, 100, catalog)

	squat, ok := catalog.lookup("Squat")
	if !ok {
		t.Fatal("Squat missing from catalog")
	}
	legExtension, ok := catalog.lookup("Leg Extension")
	if !ok {
		t.Fatal("Leg Extension missing from catalog")
	}

	if got, want := len(allocated[0].Sets), setCap(squat); got != want {
		t.Errorf("Squat sets = %d, want cap %d", got, want)
	}
	if got, want := len(allocated[1].Sets), setCap(legExtension); got != want {
		t.Errorf("Leg Extension sets = %d, want cap %d", got, want)
	}
}

func TestAllocateSets_budgetLimitsTotalSets(t *testing.T) {
	catalog := mustCatalog(t)
	logs := []ExerciseLog{{ExerciseName: "Squat"}, {ExerciseName: "Leg Press"}, {ExerciseName: "Lunges"}}
	targets := map[MuscleGroup]float64{MuscleQuads: 50, MuscleGlutes: 50}

	allocated, _ := allocateSets(logs, targets, 5, catalog)

	total := 0
	for _, log := range allocated {
		total += len(log.Sets)
	}
	if total > 5 {
		t.Errorf("total sets = %d, want at most 5", total)
	}
}

func TestRebuildLog_seedsFromPrescription(t *testing.T) {
	catalog := mustCatalog(t)

	tests := []struct {
		name         string
		exerciseName string
		sets         []Set
		wantWeight   float64
		wantReps     int
	}{
		{
			name:         "loaded compound keeps seed weight and clamps reps into range",
			exerciseName: "Squat",
			sets:         []Set{{WeightLb: 185, Reps: 20}},
			wantWeight:   185,
			// 20 is outside the 5-10 compound range, so reps snap to the middle.
			wantReps: 7,
		},
		{
			name:         "bodyweight exercise zeroes the weight",
			exerciseName: "Push-ups",
			sets:         []Set{{WeightLb: 25, Reps: 12}},
			wantWeight:   0,
			wantReps:     12,
		},
		{
			name:         "no existing sets fall back to defaults",
			exerciseName: "Leg Extension",
			sets:         nil,
			wantWeight:   0,
			wantReps:     10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercise, ok := catalog.lookup(tt.exerciseName)
			if !ok {
				t.Fatalf("%s missing from catalog", tt.exerciseName)
			}
			log := rebuildLog(ExerciseLog{ExerciseName: tt.exerciseName, Sets: tt.sets}, &exercise, 3)

			if len(log.Sets) != 3 {
				t.Fatalf("got %d sets, want 3", len(log.Sets))
			}
			for i, set := range log.Sets {
				if set.WeightLb != tt.wantWeight {
					t.Errorf("set %d weight = %f, want %f", i, set.WeightLb, tt.wantWeight)
				}
				if set.Reps != tt.wantReps {
					t.Errorf("set %d reps = %d, want %d", i, set.Reps, tt.wantReps)
				}
				if set.Completed {
					t.Errorf("set %d marked completed", i)
				}
			}
		})
	}
}
