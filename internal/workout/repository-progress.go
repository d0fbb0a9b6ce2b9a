package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetProgress retrieves the progression record for an exercise name. Returns
// ErrNotFound when the exercise has no record yet.
func (r *sqliteRepository) GetProgress(ctx context.Context, exerciseName string) (ExerciseProgress, error) {
	var (
		progress       ExerciseProgress
		lastUpdatedStr string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT exercise_name, last_weight_lb, next_weight_lb, fail_streak, last_updated
		FROM exercise_progress
		WHERE exercise_name = ?`,
		progressKey(exerciseName)).Scan(
		&progress.ExerciseName,
		&progress.LastWeightLb,
		&progress.NextWeightLb,
		&progress.FailStreak,
		&lastUpdatedStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ExerciseProgress{}, ErrNotFound
	}
	if err != nil {
		return ExerciseProgress{}, fmt.Errorf("query exercise progress: %w", err)
	}

	if progress.LastUpdated, err = time.Parse(timestampFormat, lastUpdatedStr); err != nil {
		return ExerciseProgress{}, fmt.Errorf("parse last_updated: %w", err)
	}
	return progress, nil
}

// ListProgress retrieves all progression records keyed by normalised exercise
// name.
func (r *sqliteRepository) ListProgress(ctx context.Context) (_ map[string]ExerciseProgress, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_name, last_weight_lb, next_weight_lb, fail_streak, last_updated
		FROM exercise_progress`)
	if err != nil {
		return nil, fmt.Errorf("query exercise progress: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	progress := make(map[string]ExerciseProgress)
	for rows.Next() {
		var (
			entry          ExerciseProgress
			lastUpdatedStr string
		)
		if err = rows.Scan(
			&entry.ExerciseName,
			&entry.LastWeightLb,
			&entry.NextWeightLb,
			&entry.FailStreak,
			&lastUpdatedStr,
		); err != nil {
			return nil, fmt.Errorf("scan exercise progress row: %w", err)
		}
		if entry.LastUpdated, err = time.Parse(timestampFormat, lastUpdatedStr); err != nil {
			return nil, fmt.Errorf("parse last_updated: %w", err)
		}
		progress[progressKey(entry.ExerciseName)] = entry
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise progress rows: %w", err)
	}

	return progress, nil
}

// SetProgress upserts progression records. The stored key is the normalised
// exercise name so lookups are case-insensitive.
func (r *sqliteRepository) SetProgress(ctx context.Context, entries map[string]ExerciseProgress) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO exercise_progress (
					exercise_name, last_weight_lb, next_weight_lb, fail_streak, last_updated
				) VALUES (?, ?, ?, ?, ?)
				ON CONFLICT (exercise_name) DO UPDATE SET
					last_weight_lb = excluded.last_weight_lb,
					next_weight_lb = excluded.next_weight_lb,
					fail_streak = excluded.fail_streak,
					last_updated = excluded.last_updated`,
				progressKey(entry.ExerciseName),
				entry.LastWeightLb,
				entry.NextWeightLb,
				entry.FailStreak,
				entry.LastUpdated.UTC().Format(timestampFormat),
			)
			if err != nil {
				return fmt.Errorf("upsert exercise progress: %w", err)
			}
		}
		return nil
	})
}
