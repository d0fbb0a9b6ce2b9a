package main

import (
	"net/http"
)

// weeklyVolumeGET reports the trailing week's per-muscle training volume
// against the plan's weekly set targets.
func (app *application) weeklyVolumeGET(w http.ResponseWriter, r *http.Request) {
	report, err := app.workoutService.WeeklyVolumeReport(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, report)
}
