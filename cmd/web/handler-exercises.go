package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/mkarvon/liftwise/internal/workout"
	"github.com/yuin/goldmark"
)

// exercisesGET lists the exercise catalog. A "q" query parameter switches to
// name search; "muscle", "equipment" and "difficulty" parameters filter.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if q := query.Get("q"); q != "" {
		app.writeJSON(w, r, http.StatusOK, app.workoutService.SearchExercises(q))
		return
	}

	var muscles []workout.MuscleGroup
	for _, raw := range query["muscle"] {
		muscle := workout.MuscleGroup(raw)
		if !muscle.Valid() {
			app.clientError(w, r, http.StatusBadRequest, fmt.Errorf("unknown muscle group %q", raw))
			return
		}
		muscles = append(muscles, muscle)
	}

	exercises := app.workoutService.FilterExercises(
		muscles,
		workout.Equipment(query.Get("equipment")),
		workout.Difficulty(query.Get("difficulty")),
	)
	app.writeJSON(w, r, http.StatusOK, exercises)
}

// exerciseGET returns a single catalog exercise by name.
func (app *application) exerciseGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := app.workoutService.GetExercise(r.PathValue("name"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, exercise)
}

// exerciseInfoResponse carries the exercise description rendered to HTML.
type exerciseInfoResponse struct {
	Name            string `json:"name"`
	DescriptionHTML string `json:"description_html"`
}

// exerciseInfoGET renders the exercise's markdown description to HTML.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := app.workoutService.GetExercise(r.PathValue("name"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = goldmark.Convert([]byte(exercise.DescriptionMarkdown), &buf); err != nil {
		app.serverError(w, r, fmt.Errorf("render description: %w", err))
		return
	}

	app.writeJSON(w, r, http.StatusOK, exerciseInfoResponse{
		Name:            exercise.Name,
		DescriptionHTML: buf.String(),
	})
}

// exerciseProgressGET returns the persisted progression record for an exercise.
func (app *application) exerciseProgressGET(w http.ResponseWriter, r *http.Request) {
	progress, err := app.workoutService.ExerciseProgress(r.Context(), r.PathValue("name"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, progress)
}
