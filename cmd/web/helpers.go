package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mkarvon/liftwise/internal/workout"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", slog.Any("error", err))
	}
}

// readJSON decodes the request body into dst, rejecting unknown fields.
func readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "client error", slog.Any("error", err))
	app.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// domainError maps service errors to the right response: not found and
// completed-session violations are client errors, everything else is a 500.
func (app *application) domainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workout.ErrNotFound):
		app.clientError(w, r, http.StatusNotFound, err)
	case errors.Is(err, workout.ErrSessionCompleted):
		app.clientError(w, r, http.StatusConflict, err)
	case errors.Is(err, workout.ErrInvalidRequest):
		app.clientError(w, r, http.StatusBadRequest, err)
	default:
		app.serverError(w, r, err)
	}
}

// parseDateParam parses the "date" path parameter from the request URL.
// Returns the parsed date and true if successful, or zero time and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.PathValue("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		app.clientError(w, r, http.StatusNotFound, fmt.Errorf("invalid date %q: %w", dateStr, err))
		return time.Time{}, false
	}
	return date, true
}

// parseSetIndexParam parses the "setIndex" path parameter from the request URL.
// Returns the parsed index and true if successful, or zero and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseSetIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	setIndexStr := r.PathValue("setIndex")
	setIndex, err := strconv.Atoi(setIndexStr)
	if err != nil || setIndex < 0 {
		app.clientError(w, r, http.StatusNotFound, fmt.Errorf("invalid set index %q", setIndexStr))
		return 0, false
	}
	return setIndex, true
}
