package workout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// splitPlanRowID pins the split plan to a single row.
const splitPlanRowID = 1

// GetPlan retrieves the split plan, falling back to the default plan when
// none has been saved yet.
func (r *sqliteRepository) GetPlan(ctx context.Context) (SplitPlan, error) {
	var (
		plan       SplitPlan
		targetsRaw []byte
		daysRaw    []byte
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT training_days, split_type, weight_unit, weekly_targets, days
		FROM split_plans
		WHERE id = ?`,
		splitPlanRowID).Scan(
		&plan.TrainingDays,
		&plan.Split,
		&plan.WeightUnit,
		&targetsRaw,
		&daysRaw,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPlan(), nil
	}
	if err != nil {
		return SplitPlan{}, fmt.Errorf("query split plan: %w", err)
	}

	if err = json.Unmarshal(targetsRaw, &plan.WeeklyTargets); err != nil {
		return SplitPlan{}, fmt.Errorf("unmarshal weekly targets: %w", err)
	}
	if err = json.Unmarshal(daysRaw, &plan.Days); err != nil {
		return SplitPlan{}, fmt.Errorf("unmarshal split days: %w", err)
	}
	return plan, nil
}

// SavePlan validates and upserts the split plan.
func (r *sqliteRepository) SavePlan(ctx context.Context, plan SplitPlan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validate split plan: %w", err)
	}

	targetsRaw, err := json.Marshal(plan.WeeklyTargets)
	if err != nil {
		return fmt.Errorf("marshal weekly targets: %w", err)
	}
	daysRaw, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("marshal split days: %w", err)
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO split_plans (id, training_days, split_type, weight_unit, weekly_targets, days)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			training_days = excluded.training_days,
			split_type = excluded.split_type,
			weight_unit = excluded.weight_unit,
			weekly_targets = excluded.weekly_targets,
			days = excluded.days`,
		splitPlanRowID,
		plan.TrainingDays,
		plan.Split,
		plan.WeightUnit,
		string(targetsRaw),
		string(daysRaw),
	)
	if err != nil {
		return fmt.Errorf("upsert split plan: %w", err)
	}
	return nil
}
