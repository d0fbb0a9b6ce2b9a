package workout

// The volume engine turns weekly per-muscle set targets into per-session
// targets. Targets are distributed in two levels: the weekly budget of each
// training group is split evenly over the sessions that train it, and a
// session's group budget is split evenly over the group's muscles scheduled
// that day. This keeps a split day that hits both chest regions from getting
// twice the chest volume of one that hits only one.

// TargetsForDay resolves the per-muscle set targets for one split day.
// Rest days have no targets.
func TargetsForDay(plan SplitPlan, day SplitDay) map[MuscleGroup]float64 {
	if day.Rest() {
		return map[MuscleGroup]float64{}
	}

	perSessionByGroup := perSessionTargetsByGroup(plan)
	grouped := make(map[TrainingGroup][]MuscleGroup)
	for _, m := range day.Muscles() {
		grouped[m.TrainingGroup()] = append(grouped[m.TrainingGroup()], m)
	}

	targets := make(map[MuscleGroup]float64, len(day.Muscles()))
	for group, muscles := range grouped {
		perMuscle := perSessionByGroup[group] / float64(len(muscles))
		for _, m := range muscles {
			targets[m] = perMuscle
		}
	}
	return targets
}

// PerSessionTargets averages each muscle's daily targets over the training
// days that include it.
func PerSessionTargets(plan SplitPlan) map[MuscleGroup]float64 {
	totals := make(map[MuscleGroup]float64)
	counts := make(map[MuscleGroup]int)

	for _, day := range plan.Days {
		if day.Rest() {
			continue
		}
		for muscle, target := range TargetsForDay(plan, day) {
			totals[muscle] += target
			counts[muscle]++
		}
	}

	perSession := make(map[MuscleGroup]float64, len(AllMuscleGroups()))
	for _, muscle := range AllMuscleGroups() {
		if counts[muscle] > 0 {
			perSession[muscle] = totals[muscle] / float64(counts[muscle])
		} else {
			perSession[muscle] = 0
		}
	}
	return perSession
}

func perSessionTargetsByGroup(plan SplitPlan) map[TrainingGroup]float64 {
	weeklyTargets := weeklyTargetsByGroup(plan)
	weeklySessions := WeeklySessionsPerGroup(plan)

	perSession := make(map[TrainingGroup]float64, len(AllTrainingGroups()))
	for _, group := range AllTrainingGroups() {
		if sessions := weeklySessions[group]; sessions > 0 {
			perSession[group] = weeklyTargets[group] / float64(sessions)
		} else {
			perSession[group] = 0
		}
	}
	return perSession
}

// weeklyTargetsByGroup averages the weekly targets of a group's muscles.
// Muscles absent from the plan's targets fall back to the default.
func weeklyTargetsByGroup(plan SplitPlan) map[TrainingGroup]float64 {
	targets := make(map[TrainingGroup]float64, len(AllTrainingGroups()))
	for _, group := range AllTrainingGroups() {
		var sum float64
		var n int
		for _, muscle := range group.Muscles() {
			if target, ok := plan.WeeklyTargets[muscle]; ok {
				sum += target
				n++
			}
		}
		if n == 0 {
			targets[group] = defaultWeeklySets
		} else {
			targets[group] = sum / float64(n)
		}
	}
	return targets
}

// WeeklySessionsPerGroup counts the training days touching each group.
func WeeklySessionsPerGroup(plan SplitPlan) map[TrainingGroup]int {
	counts := make(map[TrainingGroup]int)
	for _, day := range plan.Days {
		if day.Rest() {
			continue
		}
		seen := make(map[TrainingGroup]struct{})
		for _, muscle := range day.Muscles() {
			seen[muscle.TrainingGroup()] = struct{}{}
		}
		for group := range seen {
			counts[group]++
		}
	}
	return counts
}

// WeeklySessionsPerMuscle counts the training days touching each muscle.
func WeeklySessionsPerMuscle(plan SplitPlan) map[MuscleGroup]int {
	counts := make(map[MuscleGroup]int)
	for _, day := range plan.Days {
		if day.Rest() {
			continue
		}
		seen := make(map[MuscleGroup]struct{})
		for _, muscle := range day.Muscles() {
			seen[muscle] = struct{}{}
		}
		for muscle := range seen {
			counts[muscle]++
		}
	}
	return counts
}
