package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTargetsForDay_restDayHasNoTargets(t *testing.T) {
	plan := DefaultPlan()

	targets := TargetsForDay(plan, SplitDay{Type: DayRest})

	if diff := cmp.Diff(map[MuscleGroup]float64{}, targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetsForDay_upperLowerDistribution(t *testing.T) {
	// Four-day upper/lower: chest trains on the two upper days, so each
	// session gets half the weekly 20-set chest budget, split evenly over the
	// two chest regions.
	plan := DefaultPlan()
	upper := SplitDay{Type: DayUpper}

	targets := TargetsForDay(plan, upper)

	if got := targets[MuscleChestUpper]; got != 5 {
		t.Errorf("chest_upper target = %f, want 5", got)
	}
	if got := targets[MuscleChestLower]; got != 5 {
		t.Errorf("chest_lower target = %f, want 5", got)
	}
	// Shoulders: 20 per week over 2 sessions over 3 regions.
	want := 20.0 / 2 / 3
	if got := targets[MuscleShoulderFront]; got != want {
		t.Errorf("shoulder_front target = %f, want %f", got, want)
	}
	if _, ok := targets[MuscleQuads]; ok {
		t.Error("upper day must not target quads")
	}
}

func TestTargetsForDay_idempotent(t *testing.T) {
	plan := NewPlan(SplitPushPullLegs, 6)
	day := plan.Day(0)

	first := TargetsForDay(plan, day)
	second := TargetsForDay(plan, day)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("targets not stable (-first +second):\n%s", diff)
	}
}

func TestWeeklySessionsPerGroup(t *testing.T) {
	plan := NewPlan(SplitPushPullLegs, 6)

	counts := WeeklySessionsPerGroup(plan)

	if got := counts[GroupChest]; got != 2 {
		t.Errorf("chest sessions = %d, want 2", got)
	}
	if got := counts[GroupQuads]; got != 2 {
		t.Errorf("quads sessions = %d, want 2", got)
	}
	if got := counts[GroupAbs]; got != 2 {
		t.Errorf("abs sessions = %d, want 2", got)
	}
}

func TestPerSessionTargets_coversAllMuscles(t *testing.T) {
	plan := DefaultPlan()

	perSession := PerSessionTargets(plan)

	for _, m := range AllMuscleGroups() {
		if _, ok := perSession[m]; !ok {
			t.Errorf("per-session targets missing %s", m)
		}
	}
}
