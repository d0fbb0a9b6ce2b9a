package main

import (
	"net/http"

	"github.com/mkarvon/liftwise/internal/workout"
)

// planGET returns the split plan, falling back to the default when none has
// been saved yet.
func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	plan, err := app.workoutService.Plan(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}

// planPUT validates and replaces the split plan.
func (app *application) planPUT(w http.ResponseWriter, r *http.Request) {
	var plan workout.SplitPlan
	if err := readJSON(r, &plan); err != nil {
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	}

	if err := app.workoutService.SavePlan(r.Context(), plan); err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}
