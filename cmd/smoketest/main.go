package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mkarvon/liftwise/internal/e2etest"
	"github.com/mkarvon/liftwise/internal/logging"
	"github.com/mkarvon/liftwise/internal/testhelpers"
	"github.com/mkarvon/liftwise/internal/workout"
)

// testAPI exercises the read paths of a running deployment without mutating
// any data.
func testAPI(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var schedule []workout.ScheduleDay
	if err := client.GetJSON(ctx, "/api/schedule", &schedule); err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}
	if len(schedule) != 7 { //nolint:mnd // 7 days in a week
		return fmt.Errorf("schedule has %d days, want 7", len(schedule))
	}

	var exercises []workout.Exercise
	if err := client.GetJSON(ctx, "/api/exercises", &exercises); err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return errors.New("exercise catalog is empty")
	}

	var report []workout.MuscleVolume
	if err := client.GetJSON(ctx, "/api/reports/weekly-volume", &report); err != nil {
		return fmt.Errorf("get weekly volume report: %w", err)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testAPI(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing API", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
