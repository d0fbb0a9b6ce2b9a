package main

import (
	"net/http"
	"time"
)

func (app *application) routes(requestTimeoutMillis int) http.Handler {
	mux := http.NewServeMux()

	var (
		timeout = time.Duration(requestTimeoutMillis) * time.Millisecond
		api     = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(app.recoverPanic(noCache(
				app.crossOriginProtection(app.timeout(timeout, next)))))
		}
	)

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /api/schedule", api(http.HandlerFunc(app.scheduleGET)))

	mux.Handle("GET /api/workouts/{date}", api(http.HandlerFunc(app.workoutGET)))
	mux.Handle("GET /api/workouts/{date}/preview", api(http.HandlerFunc(app.workoutPreviewGET)))
	mux.Handle("POST /api/workouts/{date}/start", api(http.HandlerFunc(app.workoutStartPOST)))
	mux.Handle("POST /api/workouts/{date}/complete", api(http.HandlerFunc(app.workoutCompletePOST)))
	mux.Handle("POST /api/workouts/{date}/exercises", api(http.HandlerFunc(app.workoutAddExercisePOST)))
	mux.Handle("PUT /api/workouts/{date}/exercises/{logID}", api(http.HandlerFunc(app.workoutSwapExercisePUT)))
	mux.Handle("PUT /api/workouts/{date}/exercises/{logID}/sets/{setIndex}",
		api(http.HandlerFunc(app.exerciseSetPUT)))
	mux.Handle("POST /api/workouts/generate", api(http.HandlerFunc(app.workoutGeneratePOST)))

	mux.Handle("GET /api/plan", api(http.HandlerFunc(app.planGET)))
	mux.Handle("PUT /api/plan", api(http.HandlerFunc(app.planPUT)))

	mux.Handle("GET /api/exercises", api(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /api/exercises/{name}", api(http.HandlerFunc(app.exerciseGET)))
	mux.Handle("GET /api/exercises/{name}/info", api(http.HandlerFunc(app.exerciseInfoGET)))
	mux.Handle("GET /api/exercises/{name}/progress", api(http.HandlerFunc(app.exerciseProgressGET)))

	mux.Handle("GET /api/reports/weekly-volume", api(http.HandlerFunc(app.weeklyVolumeGET)))

	return mux
}
