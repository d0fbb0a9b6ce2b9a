package workout

import "fmt"

// SplitType names the weekly split structure.
type SplitType string

const (
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitUpperLower   SplitType = "upper_lower"
	SplitFullBody     SplitType = "full_body"
	SplitHybrid       SplitType = "hybrid"
)

// DayType classifies a slot in the weekly split.
type DayType string

const (
	DayPush  DayType = "push"
	DayPull  DayType = "pull"
	DayLegs  DayType = "legs"
	DayUpper DayType = "upper"
	DayLower DayType = "lower"
	DayFull  DayType = "full"
	DayRest  DayType = "rest"
)

// SplitDay is one of the seven Monday-indexed slots of a split plan.
type SplitDay struct {
	Type DayType `json:"type"`
	// CustomMuscles overrides the day type's default muscle list when set.
	CustomMuscles []MuscleGroup `json:"custom_muscles,omitempty"`
}

// Rest reports whether the day is a rest day.
func (d SplitDay) Rest() bool {
	return d.Type == DayRest
}

// Muscles resolves the muscle list for the day.
func (d SplitDay) Muscles() []MuscleGroup {
	if len(d.CustomMuscles) > 0 {
		return d.CustomMuscles
	}
	return defaultMuscles(d.Type)
}

func defaultMuscles(t DayType) []MuscleGroup {
	switch t {
	case DayPush:
		return []MuscleGroup{MuscleChestUpper, MuscleChestLower, MuscleShoulderFront, MuscleShoulderSide, MuscleTriceps}
	case DayPull:
		return []MuscleGroup{MuscleBackWidth, MuscleBackThickness, MuscleShoulderRear, MuscleBiceps}
	case DayLegs, DayLower:
		return []MuscleGroup{MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleAbs}
	case DayUpper:
		return []MuscleGroup{
			MuscleChestUpper, MuscleChestLower,
			MuscleBackWidth, MuscleBackThickness,
			MuscleShoulderFront, MuscleShoulderSide, MuscleShoulderRear,
		}
	case DayFull:
		return AllMuscleGroups()
	case DayRest:
		return nil
	}
	return nil
}

// SplitPlan is the weekly training plan: seven day slots starting Monday,
// plus per-muscle weekly set targets and display preferences.
type SplitPlan struct {
	TrainingDays  int                     `json:"training_days"`
	Split         SplitType               `json:"split_type"`
	WeightUnit    WeightUnit              `json:"weight_unit"`
	WeeklyTargets map[MuscleGroup]float64 `json:"weekly_targets"`
	Days          []SplitDay              `json:"days"`
}

// defaultWeeklySets is the weekly per-muscle set target used when the plan
// does not specify one.
const defaultWeeklySets = 20.0

// DefaultWeeklyTargets returns the default target for every muscle group.
func DefaultWeeklyTargets() map[MuscleGroup]float64 {
	targets := make(map[MuscleGroup]float64, len(AllMuscleGroups()))
	for _, m := range AllMuscleGroups() {
		targets[m] = defaultWeeklySets
	}
	return targets
}

// DefaultPlan is a four-day upper/lower split with default targets.
func DefaultPlan() SplitPlan {
	return NewPlan(SplitUpperLower, 4)
}

// NewPlan builds a plan from the template for the split type and training-day
// count, with default weekly targets.
func NewPlan(split SplitType, trainingDays int) SplitPlan {
	template := splitTemplate(split, trainingDays)
	days := make([]SplitDay, len(template))
	for i, t := range template {
		days[i] = SplitDay{Type: t}
	}
	return SplitPlan{
		TrainingDays:  trainingDays,
		Split:         split,
		WeightUnit:    UnitLb,
		WeeklyTargets: DefaultWeeklyTargets(),
		Days:          days,
	}
}

// splitTemplate maps a split type and training-day count to seven day slots.
// Unknown combinations fall back to the four-day upper/lower layout.
func splitTemplate(split SplitType, trainingDays int) [7]DayType {
	switch {
	case split == SplitUpperLower && trainingDays == 4:
		return [7]DayType{DayUpper, DayLower, DayRest, DayUpper, DayLower, DayRest, DayRest}
	case split == SplitUpperLower && trainingDays == 5:
		return [7]DayType{DayUpper, DayLower, DayRest, DayUpper, DayLower, DayUpper, DayRest}
	case split == SplitUpperLower && trainingDays == 6:
		return [7]DayType{DayUpper, DayLower, DayUpper, DayLower, DayUpper, DayLower, DayRest}
	case split == SplitPushPullLegs && trainingDays == 4:
		return [7]DayType{DayPush, DayPull, DayLegs, DayRest, DayPush, DayRest, DayRest}
	case split == SplitPushPullLegs && trainingDays == 5:
		return [7]DayType{DayPush, DayPull, DayLegs, DayRest, DayPush, DayPull, DayRest}
	case split == SplitPushPullLegs && trainingDays == 6:
		return [7]DayType{DayPush, DayPull, DayLegs, DayPush, DayPull, DayLegs, DayRest}
	case split == SplitFullBody && trainingDays == 4:
		return [7]DayType{DayFull, DayRest, DayFull, DayRest, DayFull, DayRest, DayRest}
	case split == SplitFullBody && (trainingDays == 5 || trainingDays == 6):
		return [7]DayType{DayFull, DayRest, DayFull, DayRest, DayFull, DayRest, DayFull}
	case split == SplitHybrid && trainingDays == 4:
		return [7]DayType{DayUpper, DayLower, DayRest, DayPush, DayPull, DayRest, DayRest}
	case split == SplitHybrid && trainingDays == 5:
		return [7]DayType{DayPush, DayPull, DayLegs, DayRest, DayUpper, DayLower, DayRest}
	case split == SplitHybrid && trainingDays == 6:
		return [7]DayType{DayPush, DayPull, DayLegs, DayUpper, DayLower, DayPush, DayRest}
	}
	return [7]DayType{DayUpper, DayLower, DayRest, DayUpper, DayLower, DayRest, DayRest}
}

// Validate checks plan shape before persisting.
func (p SplitPlan) Validate() error {
	if len(p.Days) != 7 {
		return fmt.Errorf("plan must have 7 days, got %d", len(p.Days))
	}
	if p.TrainingDays < 1 || p.TrainingDays > 7 {
		return fmt.Errorf("training days must be between 1 and 7, got %d", p.TrainingDays)
	}
	switch p.Split {
	case SplitPushPullLegs, SplitUpperLower, SplitFullBody, SplitHybrid:
	default:
		return fmt.Errorf("unknown split type %q", p.Split)
	}
	switch p.WeightUnit {
	case UnitLb, UnitKg:
	default:
		return fmt.Errorf("unknown weight unit %q", p.WeightUnit)
	}
	for i, day := range p.Days {
		switch day.Type {
		case DayPush, DayPull, DayLegs, DayUpper, DayLower, DayFull, DayRest:
		default:
			return fmt.Errorf("day %d: unknown day type %q", i, day.Type)
		}
		for _, m := range day.CustomMuscles {
			if !m.Valid() {
				return fmt.Errorf("day %d: unknown muscle group %q", i, m)
			}
		}
	}
	for m, target := range p.WeeklyTargets {
		if !m.Valid() {
			return fmt.Errorf("weekly targets: unknown muscle group %q", m)
		}
		if target < 0 {
			return fmt.Errorf("weekly targets: negative target for %s", m)
		}
	}
	return nil
}

// Day returns the split day for a Monday-based index, clamped into range.
func (p SplitPlan) Day(index int) SplitDay {
	if len(p.Days) == 0 {
		return SplitDay{Type: DayRest}
	}
	if index < 0 {
		index = 0
	}
	if index >= len(p.Days) {
		index = len(p.Days) - 1
	}
	return p.Days[index]
}
