package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mkarvon/liftwise/internal/e2etest"
	"github.com/mkarvon/liftwise/internal/logging"
	"github.com/mkarvon/liftwise/internal/testhelpers"
	"github.com/mkarvon/liftwise/internal/workout"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	numScenarios            = 100
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
	workoutHistoryWeeks     = 26 // 6 months of weekly workouts
	daysPerWeek             = 7
	historyTimeout          = 5 * time.Minute
	baseWeightLb            = 95.0
	weightRangeLb           = 20
	baseReps                = 8
	repsRange               = 4
)

// SeedWorkoutHistory builds 6 months of weekly completed workouts so that the
// generator has realistic recovery and volume data to chew on during the load
// test.
func SeedWorkoutHistory(ctx context.Context, client *e2etest.Client, logger *slog.Logger) error {
	now := time.Now()
	// Last Monday, then walk backwards one week at a time.
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % daysPerWeek))

	for week := range workoutHistoryWeeks {
		date := monday.AddDate(0, 0, -week*daysPerWeek)
		dateStr := date.Format("2006-01-02")
		if err := completeSingleWorkout(ctx, client, dateStr, week); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "Failed to seed workout",
				slog.String("date", dateStr),
				slog.Any("error", err))
			continue // Continue with next workout instead of failing completely
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "Seeded workout", slog.String("date", dateStr))
	}
	return nil
}

// completeSingleWorkout starts the workout for a date, records every
// prescribed set and marks the session done.
func completeSingleWorkout(ctx context.Context, client *e2etest.Client, dateStr string, week int) error {
	var session workout.Session
	if err := client.PostJSON(ctx, "/api/workouts/"+dateStr+"/start", nil, &session); err != nil {
		return fmt.Errorf("start workout: %w", err)
	}
	if len(session.Exercises) == 0 {
		return errors.New("started workout has no exercises")
	}

	// Rest days generate mobility work; those sets stay unweighted.
	for _, log := range session.Exercises {
		for setIndex, prescribed := range log.Sets {
			performed := workout.Set{
				WeightLb:  prescribed.WeightLb,
				Reps:      baseReps + (week+setIndex)%repsRange,
				Completed: true,
			}
			if prescribed.WeightLb > 0 {
				performed.WeightLb = baseWeightLb + float64((week*setIndex)%weightRangeLb)
			}
			path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/%d", dateStr, log.ID, setIndex)
			if err := client.PutJSON(ctx, path, performed, nil); err != nil {
				return fmt.Errorf("record set %d of %s: %w", setIndex, log.ExerciseName, err)
			}
		}
	}

	if err := client.PostJSON(ctx, "/api/workouts/"+dateStr+"/complete", nil, nil); err != nil {
		return fmt.Errorf("complete workout: %w", err)
	}
	return nil
}

// GenerateScenario exercises the hot path of the service: custom generation
// followed by the common read requests a client fires after it.
func GenerateScenario(ctx context.Context, client *e2etest.Client, index int, logger *slog.Logger) error {
	muscles := [][]workout.MuscleGroup{
		{workout.MuscleQuads, workout.MuscleHamstrings, workout.MuscleGlutes},
		{workout.MuscleChestUpper, workout.MuscleChestLower, workout.MuscleTriceps},
		{workout.MuscleBackWidth, workout.MuscleBackThickness, workout.MuscleBiceps},
		{workout.MuscleAbs, workout.MuscleCalves},
	}
	focuses := []workout.Focus{workout.FocusStrength, workout.FocusBalanced, workout.FocusMobility}

	req := workout.Request{
		DurationMinutes: 30 + (index%4)*10, //nolint:mnd // 30-60 minutes
		TargetMuscles:   muscles[index%len(muscles)],
		Equipment:       workout.EquipmentChoiceBoth,
		Focus:           focuses[index%len(focuses)],
	}

	var generated workout.GeneratedWorkout
	if err := client.PostJSON(ctx, "/api/workouts/generate", req, &generated); err != nil {
		return fmt.Errorf("generate workout: %w", err)
	}
	if len(generated.Exercises) == 0 {
		return errors.New("generated workout has no exercises")
	}

	var schedule []workout.ScheduleDay
	if err := client.GetJSON(ctx, "/api/schedule", &schedule); err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}

	var report []workout.MuscleVolume
	if err := client.GetJSON(ctx, "/api/reports/weekly-volume", &report); err != nil {
		return fmt.Errorf("get weekly volume report: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Generate scenario completed",
		slog.Int("scenario", index),
		slog.Int("exercises", len(generated.Exercises)))
	return nil
}

// RunLoadTest fires generation scenarios concurrently and reports the success rate.
func RunLoadTest(ctx context.Context, client *e2etest.Client, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_scenarios", numScenarios))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := GenerateScenario(scenarioCtx, client, i, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("scenario", i),
					slog.Any("error", err))
				return nil // Don't propagate error to avoid stopping other scenarios
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numScenarios) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}

	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	// Seed history so the load test runs against a realistic database.
	historyStart := time.Now()
	historyCtx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()
	if err = SeedWorkoutHistory(historyCtx, client, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "some workout history seeding failed, continuing with load test",
			slog.Any("error", err))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Workout history seeding completed",
		slog.Duration("history_duration", time.Since(historyStart)))

	loadTestStart := time.Now()
	if err = RunLoadTest(ctx, client, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)),
		slog.Duration("load_test_duration", time.Since(loadTestStart)))
}
