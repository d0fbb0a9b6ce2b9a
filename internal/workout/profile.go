package workout

import (
	"sort"
	"time"
)

// trainingProfile is a read model of recent training history that the scorer
// and strategy selector consume. It is derived purely from the sessions and
// catalog passed in, never from the clock or global state.
type trainingProfile struct {
	recentSessions  []Session
	completionRates map[string]float64
	lastWorked      map[MuscleGroup]time.Time
	consecutiveDays int
	weeklySetVolume map[MuscleGroup]int
}

const (
	recentSessionLimit     = 10
	completionRateSessions = 20
)

// buildProfile derives a training profile from history as of now.
func buildProfile(history []Session, catalog *Catalog, now time.Time) trainingProfile {
	sorted := make([]Session, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	recent := sorted
	if len(recent) > recentSessionLimit {
		recent = recent[:recentSessionLimit]
	}

	return trainingProfile{
		recentSessions:  recent,
		completionRates: completionRates(sorted),
		lastWorked:      lastWorkedMuscles(sorted, catalog),
		consecutiveDays: consecutiveWorkoutDays(sorted, now),
		weeklySetVolume: weeklySetVolume(sorted, catalog, now),
	}
}

// completionRates is completed sets over prescribed sets per exercise name
// across the most recent sessions.
func completionRates(sorted []Session) map[string]float64 {
	type tally struct {
		completed int
		total     int
	}
	tallies := make(map[string]tally)

	sessions := sorted
	if len(sessions) > completionRateSessions {
		sessions = sessions[:completionRateSessions]
	}
	for _, session := range sessions {
		for _, log := range session.Exercises {
			if len(log.Sets) == 0 {
				continue
			}
			t := tallies[log.ExerciseName]
			for _, set := range log.Sets {
				if set.Completed {
					t.completed++
				}
			}
			t.total += len(log.Sets)
			tallies[log.ExerciseName] = t
		}
	}

	rates := make(map[string]float64, len(tallies))
	for name, t := range tallies {
		if t.total > 0 {
			rates[name] = float64(t.completed) / float64(t.total)
		}
	}
	return rates
}

// lastWorkedMuscles maps each primary muscle to the date it was last trained.
// Only exercises that resolve in the catalog count.
func lastWorkedMuscles(sorted []Session, catalog *Catalog) map[MuscleGroup]time.Time {
	lastWorked := make(map[MuscleGroup]time.Time)
	for _, session := range sorted {
		for _, log := range session.Exercises {
			exercise, ok := catalog.lookup(log.ExerciseName)
			if !ok {
				continue
			}
			for _, muscle := range exercise.PrimaryMuscles {
				if _, seen := lastWorked[muscle]; !seen {
					lastWorked[muscle] = session.Date
				}
			}
		}
	}
	return lastWorked
}

// consecutiveWorkoutDays walks history backwards from now counting sessions
// no more than one calendar day apart.
func consecutiveWorkoutDays(sorted []Session, now time.Time) int {
	count := 0
	last := now
	for _, session := range sorted {
		if calendarDaysBetween(session.Date, last) <= 1 {
			count++
			last = session.Date
		} else {
			break
		}
	}
	return count
}

// calendarDaysBetween counts whole calendar days from a to b.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// weeklySetVolume counts completed sets per primary muscle over the trailing
// seven days.
func weeklySetVolume(sorted []Session, catalog *Catalog, now time.Time) map[MuscleGroup]int {
	weekAgo := now.AddDate(0, 0, -7)
	volume := make(map[MuscleGroup]int)
	for _, session := range sorted {
		if session.Date.Before(weekAgo) {
			continue
		}
		for _, log := range session.Exercises {
			exercise, ok := catalog.lookup(log.ExerciseName)
			if !ok {
				continue
			}
			completed := 0
			for _, set := range log.Sets {
				if set.Completed {
					completed++
				}
			}
			for _, muscle := range exercise.PrimaryMuscles {
				volume[muscle] += completed
			}
		}
	}
	return volume
}
