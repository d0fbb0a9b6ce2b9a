package main

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/mkarvon/liftwise/internal/workout"
)

func Test_application_workoutLifecycle(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	// A Monday, which is a training day in the default plan.
	const date = "2026-01-05"

	t.Run("missing session is 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/api/workouts/"+date)
		if err != nil {
			t.Fatalf("Failed to get workout: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("preview does not persist", func(t *testing.T) {
		var generated workout.GeneratedWorkout
		if err := client.GetJSON(ctx, "/api/workouts/"+date+"/preview", &generated); err != nil {
			t.Fatalf("Failed to preview workout: %v", err)
		}
		if len(generated.Exercises) == 0 {
			t.Fatal("preview has no exercises")
		}

		resp, err := client.Get(ctx, "/api/workouts/"+date)
		if err != nil {
			t.Fatalf("Failed to get workout: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("preview persisted a session: status = %d", resp.StatusCode)
		}
	})

	var session workout.Session
	t.Run("start persists a session", func(t *testing.T) {
		if err := client.PostJSON(ctx, "/api/workouts/"+date+"/start", nil, &session); err != nil {
			t.Fatalf("Failed to start workout: %v", err)
		}
		if len(session.Exercises) == 0 {
			t.Fatal("started session has no exercises")
		}
		if session.StartedAt.IsZero() {
			t.Error("started session has no start time")
		}
	})

	t.Run("record a set", func(t *testing.T) {
		log := session.Exercises[0]
		set := workout.Set{WeightLb: 95, Reps: 8, Completed: true}

		var updated workout.Session
		path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/0", date, log.ID)
		if err := client.PutJSON(ctx, path, set, &updated); err != nil {
			t.Fatalf("Failed to update set: %v", err)
		}
		if got := updated.Exercises[0].Sets[0]; got != set {
			t.Errorf("stored set = %+v, want %+v", got, set)
		}
	})

	t.Run("complete and stay immutable", func(t *testing.T) {
		var completed workout.Session
		if err := client.PostJSON(ctx, "/api/workouts/"+date+"/complete", nil, &completed); err != nil {
			t.Fatalf("Failed to complete workout: %v", err)
		}
		if !completed.Completed() {
			t.Error("session not marked completed")
		}

		err := client.PostJSON(ctx, "/api/workouts/"+date+"/complete", nil, nil)
		if err == nil || !strings.Contains(err.Error(), "409") {
			t.Errorf("second completion: got %v, want conflict", err)
		}
	})

	t.Run("invalid date is 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/api/workouts/not-a-date")
		if err != nil {
			t.Fatalf("Failed to get workout: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})
}

func Test_application_workoutGenerate(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	t.Run("valid request", func(t *testing.T) {
		req := workout.Request{
			DurationMinutes: 45,
			TargetMuscles:   []workout.MuscleGroup{workout.MuscleQuads, workout.MuscleGlutes},
			Equipment:       workout.EquipmentChoiceBoth,
			Focus:           workout.FocusBalanced,
		}
		var generated workout.GeneratedWorkout
		if err := client.PostJSON(ctx, "/api/workouts/generate", req, &generated); err != nil {
			t.Fatalf("Failed to generate workout: %v", err)
		}
		if len(generated.Exercises) == 0 {
			t.Error("generated workout has no exercises")
		}
		if generated.Reasoning == "" {
			t.Error("generated workout has no reasoning")
		}
	})

	t.Run("invalid request is 400", func(t *testing.T) {
		req := workout.Request{
			DurationMinutes: 45,
			TargetMuscles:   []workout.MuscleGroup{"spleen"},
			Equipment:       workout.EquipmentChoiceBoth,
			Focus:           workout.FocusBalanced,
		}
		err := client.PostJSON(ctx, "/api/workouts/generate", req, nil)
		if err == nil || !strings.Contains(err.Error(), "400") {
			t.Errorf("got %v, want bad request", err)
		}
	})
}
