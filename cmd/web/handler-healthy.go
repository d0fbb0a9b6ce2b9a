package main

import (
	"net/http"
)

// healthy is used for health checks and readiness probes.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
