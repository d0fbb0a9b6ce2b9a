package main

import (
	"net/http"
)

// scheduleGET returns the current week's schedule, Monday first.
func (app *application) scheduleGET(w http.ResponseWriter, r *http.Request) {
	schedule, err := app.workoutService.WeeklySchedule(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, schedule)
}
