package workout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mkarvon/liftwise/internal/sqlite"
	"github.com/mkarvon/liftwise/internal/testhelpers"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close database: %v", closeErr)
		}
	})

	service, err := NewService(db, logger)
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	service.now = func() time.Time { return now }
	return service
}

func TestService_sessionLifecycle(t *testing.T) {
	// A Monday, which is an upper day in the default plan.
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	now := date.Add(18 * time.Hour)
	service := newTestService(t, now)
	ctx := context.Background()

	// No session exists yet.
	if _, err := service.GetSession(ctx, date); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSession before start: got %v, want ErrNotFound", err)
	}

	// Starting generates and persists a workout.
	session, err := service.StartSession(ctx, date)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if len(session.Exercises) == 0 {
		t.Fatal("started session has no exercises")
	}
	if session.StartedAt.IsZero() {
		t.Error("started session has no start time")
	}
	if session.Completed() {
		t.Error("fresh session already completed")
	}

	// Starting again must not regenerate or reset the start time.
	again, err := service.StartSession(ctx, date)
	if err != nil {
		t.Fatalf("StartSession again: %v", err)
	}
	if diff := cmp.Diff(session, again); diff != "" {
		t.Errorf("restart changed the session (-first +again):\n%s", diff)
	}

	// Record a completed set.
	log := session.Exercises[0]
	performed := log.Sets[0]
	performed.WeightLb = 135
	performed.Reps = 8
	performed.Completed = true
	if err = service.UpdateSet(ctx, date, log.ID, 0, performed); err != nil {
		t.Fatalf("UpdateSet: %v", err)
	}

	stored, err := service.GetSession(ctx, date)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if diff := cmp.Diff(performed, stored.Exercises[0].Sets[0]); diff != "" {
		t.Errorf("stored set mismatch (-want +got):\n%s", diff)
	}

	// Complete the session and check progression was recorded.
	completed, err := service.CompleteSession(ctx, date)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if !completed.Completed() {
		t.Error("session not marked completed")
	}
	progress, err := service.ExerciseProgress(ctx, log.ExerciseName)
	if err != nil {
		t.Fatalf("ExerciseProgress: %v", err)
	}
	if progress.LastWeightLb != 135 {
		t.Errorf("LastWeightLb = %f, want 135", progress.LastWeightLb)
	}

	// Completed sessions are immutable.
	if _, err = service.CompleteSession(ctx, date); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("second completion: got %v, want ErrSessionCompleted", err)
	}
	if err = service.UpdateSet(ctx, date, log.ID, 0, performed); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("UpdateSet after completion: got %v, want ErrSessionCompleted", err)
	}

	// The completed work shows up in the weekly volume report.
	report, err := service.WeeklyVolumeReport(ctx)
	if err != nil {
		t.Fatalf("WeeklyVolumeReport: %v", err)
	}
	totalSets := 0.0
	for _, entry := range report {
		totalSets += entry.Sets
	}
	if totalSets == 0 {
		t.Error("weekly volume report is empty after a completed session")
	}
}

// absentExercise returns a catalog exercise that is not in the session.
func absentExercise(t *testing.T, service *Service, session Session, exclude ...string) Exercise {
	t.Helper()
	taken := make(map[string]bool, len(session.Exercises)+len(exclude))
	for _, log := range session.Exercises {
		taken[log.ExerciseName] = true
	}
	for _, name := range exclude {
		taken[name] = true
	}
	for _, exercise := range service.ListExercises() {
		if !taken[exercise.Name] {
			return exercise
		}
	}
	t.Fatal("no absent exercise in catalog")
	return Exercise{}
}

func TestService_addAndSwapExercise(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	now := date.Add(18 * time.Hour)
	service := newTestService(t, now)
	ctx := context.Background()

	session, err := service.StartSession(ctx, date)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	added := absentExercise(t, service, session)
	session, err = service.AddExercise(ctx, date, added.Name)
	if err != nil {
		t.Fatalf("AddExercise: %v", err)
	}
	last := session.Exercises[len(session.Exercises)-1]
	if last.ExerciseName != added.Name {
		t.Errorf("last exercise = %s, want %s", last.ExerciseName, added.Name)
	}
	if len(last.Sets) == 0 {
		t.Error("added exercise has no prescribed sets")
	}

	// Adding the same exercise twice is rejected.
	if _, err = service.AddExercise(ctx, date, added.Name); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("duplicate add: got %v, want ErrInvalidRequest", err)
	}

	replacement := absentExercise(t, service, session)
	swapped, err := service.SwapExercise(ctx, date, session.Exercises[0].ID, replacement.Name)
	if err != nil {
		t.Fatalf("SwapExercise: %v", err)
	}
	if swapped.Exercises[0].ExerciseName != replacement.Name {
		t.Errorf("first exercise = %s, want %s", swapped.Exercises[0].ExerciseName, replacement.Name)
	}
	if len(swapped.Exercises) != len(session.Exercises) {
		t.Errorf("swap changed exercise count: %d, want %d", len(swapped.Exercises), len(session.Exercises))
	}

	if _, err = service.SwapExercise(ctx, date, "no-such-log", replacement.Name); !errors.Is(err, ErrNotFound) {
		t.Errorf("swap unknown log: got %v, want ErrNotFound", err)
	}

	// Completed sessions reject both mutations.
	if _, err = service.CompleteSession(ctx, date); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	extra := absentExercise(t, service, swapped)
	if _, err = service.AddExercise(ctx, date, extra.Name); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("add after completion: got %v, want ErrSessionCompleted", err)
	}
	if _, err = service.SwapExercise(ctx, date, swapped.Exercises[0].ID, extra.Name); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("swap after completion: got %v, want ErrSessionCompleted", err)
	}
}

func TestService_generateWorkoutDeterministic(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, now)
	ctx := context.Background()

	first, err := service.GenerateWorkout(ctx, now)
	if err != nil {
		t.Fatalf("GenerateWorkout: %v", err)
	}
	second, err := service.GenerateWorkout(ctx, now)
	if err != nil {
		t.Fatalf("GenerateWorkout: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("generation not deterministic (-first +second):\n%s", diff)
	}
	if len(first.Exercises) == 0 {
		t.Fatal("generated workout is empty")
	}
	if first.Coverage < 0 || first.Coverage > 1 {
		t.Errorf("coverage = %f, want within [0, 1]", first.Coverage)
	}
	for _, log := range first.Exercises {
		if len(log.Sets) == 0 {
			t.Errorf("%s has no sets", log.ExerciseName)
		}
	}
}

func TestService_generateCustomWorkoutValidation(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, now)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{
			name: "valid request",
			req: Request{
				DurationMinutes: 45,
				TargetMuscles:   []MuscleGroup{MuscleAbs},
				Equipment:       EquipmentChoiceBoth,
				Focus:           FocusBalanced,
			},
		},
		{
			name: "zero duration rejected",
			req: Request{
				TargetMuscles: []MuscleGroup{MuscleAbs},
				Equipment:     EquipmentChoiceBoth,
				Focus:         FocusBalanced,
			},
			wantErr: true,
		},
		{
			name: "unknown muscle rejected",
			req: Request{
				DurationMinutes: 45,
				TargetMuscles:   []MuscleGroup{"spleen"},
				Equipment:       EquipmentChoiceBoth,
				Focus:           FocusBalanced,
			},
			wantErr: true,
		},
		{
			name: "unknown focus rejected",
			req: Request{
				DurationMinutes: 45,
				TargetMuscles:   []MuscleGroup{MuscleAbs},
				Equipment:       EquipmentChoiceBoth,
				Focus:           "cardio",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GenerateCustomWorkout(ctx, tt.req)
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_planRoundtrip(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, now)
	ctx := context.Background()

	// An unsaved plan falls back to the default.
	plan, err := service.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if diff := cmp.Diff(DefaultPlan(), plan); diff != "" {
		t.Errorf("default plan mismatch (-want +got):\n%s", diff)
	}

	custom := NewPlan(SplitPushPullLegs, 6)
	custom.WeightUnit = UnitKg
	custom.WeeklyTargets[MuscleBiceps] = 12
	custom.Days[6].CustomMuscles = []MuscleGroup{MuscleAbs}
	if err = service.SavePlan(ctx, custom); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	stored, err := service.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan after save: %v", err)
	}
	if diff := cmp.Diff(custom, stored); diff != "" {
		t.Errorf("stored plan mismatch (-want +got):\n%s", diff)
	}

	invalid := custom
	invalid.TrainingDays = 99
	if err = service.SavePlan(ctx, invalid); err == nil {
		t.Error("expected invalid plan to be rejected")
	}
}

func TestService_weeklySchedule(t *testing.T) {
	// A Wednesday.
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	service := newTestService(t, now)
	ctx := context.Background()

	schedule, err := service.WeeklySchedule(ctx)
	if err != nil {
		t.Fatalf("WeeklySchedule: %v", err)
	}
	if len(schedule) != 7 {
		t.Fatalf("schedule has %d days, want 7", len(schedule))
	}
	if schedule[0].Date.Weekday() != time.Monday {
		t.Errorf("schedule starts on %s, want Monday", schedule[0].Date.Weekday())
	}
	// Default plan: upper, lower, rest, upper, lower, rest, rest.
	if schedule[0].Type != DayUpper {
		t.Errorf("Monday type = %s, want upper", schedule[0].Type)
	}
	if schedule[2].Type != DayRest {
		t.Errorf("Wednesday type = %s, want rest", schedule[2].Type)
	}
	if schedule[2].RecommendedMinutes != 0 {
		t.Errorf("rest day recommends %d minutes, want 0", schedule[2].RecommendedMinutes)
	}
	if schedule[0].RecommendedMinutes < minSessionMinutes || schedule[0].RecommendedMinutes > maxRecommendedMinutes {
		t.Errorf("upper day recommends %d minutes, want within [%d, %d]",
			schedule[0].RecommendedMinutes, minSessionMinutes, maxRecommendedMinutes)
	}
}
