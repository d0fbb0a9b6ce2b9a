package workout

import "time"

// MuscleVolume is one muscle's share of the trailing week's training volume.
type MuscleVolume struct {
	Muscle     MuscleGroup `json:"muscle"`
	Sets       float64     `json:"sets"`
	TonnageLb  float64     `json:"tonnage_lb"`
	TargetSets float64     `json:"target_sets"`
	// Progress is the percentage of the weekly target achieved, capped at 100.
	Progress float64 `json:"progress"`
}

// WeeklyVolume aggregates completed sets and tonnage per muscle over the
// seven days ending at now. Primary muscles get full credit for a set,
// secondaries half. Exercise names resolve through the catalog's fuzzy
// matcher so renamed or free-text entries still count.
func WeeklyVolume(history []Session, plan SplitPlan, catalog *Catalog, now time.Time) []MuscleVolume {
	weekAgo := now.AddDate(0, 0, -7)

	sets := make(map[MuscleGroup]float64)
	tonnage := make(map[MuscleGroup]float64)
	for _, session := range history {
		if session.Date.Before(weekAgo) || session.Date.After(now) {
			continue
		}
		for _, log := range session.Exercises {
			exercise, ok := catalog.ByName(log.ExerciseName)
			if !ok {
				continue
			}

			completedSets := 0
			logTonnage := 0.0
			for _, set := range log.Sets {
				if !set.Completed {
					continue
				}
				completedSets++
				logTonnage += set.WeightLb * float64(set.Reps)
			}
			if completedSets == 0 {
				continue
			}

			for _, m := range exercise.PrimaryMuscles {
				sets[m] += float64(completedSets)
				tonnage[m] += logTonnage
			}
			for _, m := range exercise.SecondaryMuscles {
				sets[m] += float64(completedSets) * secondarySetCredit
				tonnage[m] += logTonnage * secondarySetCredit
			}
		}
	}

	report := make([]MuscleVolume, 0, len(AllMuscleGroups()))
	for _, muscle := range AllMuscleGroups() {
		target := defaultWeeklySets
		if t, ok := plan.WeeklyTargets[muscle]; ok {
			target = t
		}
		progress := 0.0
		if target > 0 {
			progress = sets[muscle] / target * 100
			if progress > 100 {
				progress = 100
			}
		}
		report = append(report, MuscleVolume{
			Muscle:     muscle,
			Sets:       sets[muscle],
			TonnageLb:  tonnage[muscle],
			TargetSets: target,
			Progress:   progress,
		})
	}
	return report
}
