package main

import (
	"net/http"

	"github.com/mkarvon/liftwise/internal/workout"
)

// workoutGET returns the persisted session for a date, 404 when none exists.
func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	session, err := app.workoutService.GetSession(r.Context(), date)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// workoutPreviewGET generates the plan-driven workout for a date without
// persisting anything.
func (app *application) workoutPreviewGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	generated, err := app.workoutService.GenerateWorkout(r.Context(), date)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, generated)
}

// workoutStartPOST generates and persists the workout for a date if needed and
// marks it started. Starting an already started session is a no-op.
func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	session, err := app.workoutService.StartSession(r.Context(), date)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// workoutCompletePOST marks the session done and records weight progression.
func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	session, err := app.workoutService.CompleteSession(r.Context(), date)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// exerciseSetPUT records one performed set of an exercise in a session.
func (app *application) exerciseSetPUT(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	setIndex, ok := app.parseSetIndexParam(w, r)
	if !ok {
		return
	}
	logID := r.PathValue("logID")

	var set workout.Set
	if err := readJSON(r, &set); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	if err := app.workoutService.UpdateSet(r.Context(), date, logID, setIndex, set); err != nil {
		app.domainError(w, r, err)
		return
	}

	session, err := app.workoutService.GetSession(r.Context(), date)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// exercisePickRequest selects a catalog exercise by name in add/swap requests.
type exercisePickRequest struct {
	ExerciseName string `json:"exercise_name"`
}

// workoutAddExercisePOST appends an exercise with freshly prescribed sets to
// the session.
func (app *application) workoutAddExercisePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var pick exercisePickRequest
	if err := readJSON(r, &pick); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	session, err := app.workoutService.AddExercise(r.Context(), date, pick.ExerciseName)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// workoutSwapExercisePUT replaces an exercise log with another exercise,
// keeping its position in the session.
func (app *application) workoutSwapExercisePUT(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var pick exercisePickRequest
	if err := readJSON(r, &pick); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	session, err := app.workoutService.SwapExercise(r.Context(), date, r.PathValue("logID"), pick.ExerciseName)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

// workoutGeneratePOST generates a workout from caller-supplied constraints
// without persisting anything.
func (app *application) workoutGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req workout.Request
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	generated, err := app.workoutService.GenerateCustomWorkout(r.Context(), req)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, generated)
}
