package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/mkarvon/liftwise/internal/sqlite"
)

// Service handles the business logic for workout management.
type Service struct {
	repo    *sqliteRepository
	catalog *Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new workout service.
func NewService(db *sqlite.Database, logger *slog.Logger) (*Service, error) {
	catalog, err := NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}
	return &Service{
		repo:    newSQLiteRepository(db, logger),
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Generation retry parameters: when a duration budget cannot cover the day's
// set targets, the session is regenerated with a longer duration until
// coverage is good enough or the hard time cap is reached.
const (
	maxGenerationAttempts      = 8
	minutesPerSet              = 2.5
	maxSessionMinutes          = 120
	durationStepMinutes        = 10
	coverageGoal               = 0.98
	coverageImprovementEpsilon = 0.01

	historyWindowMonths = 3
)

// restDayMuscles keeps an ad-hoc session on a rest day light: core, posterior
// chain and rear delts.
var restDayMuscles = []MuscleGroup{
	MuscleAbs, MuscleGlutes, MuscleHamstrings, MuscleShoulderRear, MuscleBackThickness,
}

// GenerateWorkout builds the workout for a date from the split plan, training
// history and progression records. The result is not persisted.
func (s *Service) GenerateWorkout(ctx context.Context, date time.Time) (GeneratedWorkout, error) {
	plan, err := s.repo.GetPlan(ctx)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("get split plan: %w", err)
	}

	day := plan.Day(mondayIndex(date))
	req := Request{
		DurationMinutes: RecommendedDurationMinutes(plan, day),
		TargetMuscles:   day.Muscles(),
		Equipment:       EquipmentChoiceBoth,
		Focus:           FocusBalanced,
	}
	if day.Rest() {
		req.TargetMuscles = restDayMuscles
		req.Focus = FocusMobility
		req.DurationMinutes = minSessionMinutes
	}

	return s.generateWithRetries(ctx, req, TargetsForDay(plan, day))
}

// GenerateCustomWorkout builds a workout for an explicit request instead of
// the split plan's schedule. Set targets come from the plan's per-session
// targets for the requested muscles.
func (s *Service) GenerateCustomWorkout(ctx context.Context, req Request) (GeneratedWorkout, error) {
	if err := validateRequest(req); err != nil {
		return GeneratedWorkout{}, err
	}

	plan, err := s.repo.GetPlan(ctx)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("get split plan: %w", err)
	}

	perSession := PerSessionTargets(plan)
	targets := make(map[MuscleGroup]float64, len(req.TargetMuscles))
	for _, m := range req.TargetMuscles {
		targets[m] = perSession[m]
	}

	return s.generateWithRetries(ctx, req, targets)
}

func validateRequest(req Request) error {
	if req.DurationMinutes < 1 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidRequest, req.DurationMinutes)
	}
	for _, m := range req.TargetMuscles {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown muscle group %q", ErrInvalidRequest, m)
		}
	}
	switch req.Equipment {
	case EquipmentChoiceBodyweight, EquipmentChoiceGym, EquipmentChoiceBoth:
	default:
		return fmt.Errorf("%w: unknown equipment choice %q", ErrInvalidRequest, req.Equipment)
	}
	switch req.Focus {
	case FocusStrength, FocusBalanced, FocusMobility:
	default:
		return fmt.Errorf("%w: unknown focus %q", ErrInvalidRequest, req.Focus)
	}
	return nil
}

// generateWithRetries regenerates with growing durations until the set
// targets are covered, keeping the best attempt. Shorter wins ties so the
// user never gets a longer session for no coverage gain.
func (s *Service) generateWithRetries(
	ctx context.Context,
	req Request,
	targets map[MuscleGroup]float64,
) (GeneratedWorkout, error) {
	now := s.now()

	history, err := s.repo.ListSessions(ctx, now.AddDate(0, -historyWindowMonths, 0))
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("get workout history: %w", err)
	}
	progress, err := s.repo.ListProgress(ctx)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("get progression records: %w", err)
	}

	duration := req.DurationMinutes
	var best GeneratedWorkout
	bestCoverage := -1.0
	bestDuration := 0

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		attemptReq := req
		attemptReq.DurationMinutes = duration
		workout := Generate(attemptReq, history, progress, s.catalog, now)
		if len(workout.Exercises) == 0 {
			if bestCoverage < 0 {
				return workout, nil
			}
			break
		}

		maxTotalSets := int(math.Round(float64(duration) / minutesPerSet))
		if maxTotalSets < len(workout.Exercises) {
			maxTotalSets = len(workout.Exercises)
		}
		workout.Exercises, workout.Coverage = allocateSets(workout.Exercises, targets, maxTotalSets, s.catalog)

		improved := workout.Coverage > bestCoverage+coverageImprovementEpsilon
		tiedButShorter := math.Abs(workout.Coverage-bestCoverage) <= coverageImprovementEpsilon &&
			duration < bestDuration
		if improved || tiedButShorter || bestCoverage < 0 {
			best = workout
			bestCoverage = workout.Coverage
			bestDuration = duration
		}

		if bestCoverage >= coverageGoal || duration >= maxSessionMinutes {
			break
		}
		duration += durationStepMinutes
		if duration > maxSessionMinutes {
			duration = maxSessionMinutes
		}
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "generated workout",
		slog.Int("exercises", len(best.Exercises)),
		slog.Float64("coverage", best.Coverage),
		slog.Int("duration_minutes", bestDuration))
	return best, nil
}

const (
	minSessionMinutes      = 30
	maxRecommendedMinutes  = 75
	durationRoundtoMinutes = 5
)

// RecommendedDurationMinutes suggests a session length for a split day based
// on the day type, training frequency and muscle count.
func RecommendedDurationMinutes(plan SplitPlan, day SplitDay) int {
	if day.Rest() {
		return 0
	}

	base := 45
	switch day.Type {
	case DayLegs, DayLower, DayUpper:
		base = 50
	case DayFull:
		base = 55
	case DayPush, DayPull, DayRest:
	}

	switch plan.TrainingDays {
	case 4: //nolint:mnd // fewer sessions carry more volume each
		base += 10
	case 5: //nolint:mnd
		base += 5
	}

	if extra := len(day.Muscles()) - 4; extra > 0 {
		base += extra * 2
	}

	if base < minSessionMinutes {
		base = minSessionMinutes
	}
	if base > maxRecommendedMinutes {
		base = maxRecommendedMinutes
	}
	base = int(math.Round(float64(base)/durationRoundtoMinutes)) * durationRoundtoMinutes
	if base < minSessionMinutes {
		base = minSessionMinutes
	}
	if base > maxRecommendedMinutes {
		base = maxRecommendedMinutes
	}
	return base
}

// mondayIndex converts a date's weekday to a Monday-based day index.
func mondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// GetSession retrieves the workout session for a date.
func (s *Service) GetSession(ctx context.Context, date time.Time) (Session, error) {
	session, err := s.repo.GetSession(ctx, date)
	if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", date.Format(dateFormat), err)
	}
	return session, nil
}

// ListSessions retrieves all sessions since a date, most recent first.
func (s *Service) ListSessions(ctx context.Context, since time.Time) ([]Session, error) {
	sessions, err := s.repo.ListSessions(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// StartSession starts the session for a date, generating and persisting one
// first if none exists. Starting an already started session is a no-op.
func (s *Service) StartSession(ctx context.Context, date time.Time) (Session, error) {
	_, err := s.repo.GetSession(ctx, date)
	if errors.Is(err, ErrNotFound) {
		var workout GeneratedWorkout
		if workout, err = s.GenerateWorkout(ctx, date); err != nil {
			return Session{}, fmt.Errorf("generate workout %s: %w", date.Format(dateFormat), err)
		}
		session := Session{
			Date:      date,
			Notes:     workout.Reasoning,
			Exercises: workout.Exercises,
		}
		if _, err = s.repo.CreateSession(ctx, session); err != nil {
			return Session{}, fmt.Errorf("create session %s: %w", date.Format(dateFormat), err)
		}
	} else if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", date.Format(dateFormat), err)
	}

	session, err := s.repo.UpdateSession(ctx, date, func(sess *Session) error {
		if sess.StartedAt.IsZero() {
			sess.StartedAt = s.now()
		}
		return nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("update session %s: %w", date.Format(dateFormat), err)
	}
	return session, nil
}

// CompleteSession marks the session for a date as completed and folds its
// results into the progression records. Completing twice returns
// ErrSessionCompleted so progression is only applied once.
func (s *Service) CompleteSession(ctx context.Context, date time.Time) (Session, error) {
	session, err := s.repo.UpdateSession(ctx, date, func(sess *Session) error {
		if sess.Completed() {
			return ErrSessionCompleted
		}
		sess.CompletedAt = s.now()
		return nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("update session %s: %w", date.Format(dateFormat), err)
	}

	progress, err := s.repo.ListProgress(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("get progression records: %w", err)
	}
	updated := applyProgression(session, s.catalog, progress, s.now())
	if len(updated) > 0 {
		if err = s.repo.SetProgress(ctx, updated); err != nil {
			return Session{}, fmt.Errorf("save progression records: %w", err)
		}
	}

	return session, nil
}

// UpdateSet replaces one set of an exercise log in the session for a date.
// Completed sessions are immutable.
func (s *Service) UpdateSet(ctx context.Context, date time.Time, logID string, setIndex int, set Set) error {
	_, err := s.repo.UpdateSession(ctx, date, func(sess *Session) error {
		if sess.Completed() {
			return ErrSessionCompleted
		}
		for i := range sess.Exercises {
			if sess.Exercises[i].ID != logID {
				continue
			}
			if setIndex < 0 || setIndex >= len(sess.Exercises[i].Sets) {
				return fmt.Errorf("set index %d out of bounds", setIndex)
			}
			sess.Exercises[i].Sets[setIndex] = set
			return nil
		}
		return fmt.Errorf("exercise log %s: %w", logID, ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("update session %s: %w", date.Format(dateFormat), err)
	}
	return nil
}

// AddExercise appends an exercise with freshly prescribed sets to the session
// for a date. Completed sessions are immutable.
func (s *Service) AddExercise(ctx context.Context, date time.Time, exerciseName string) (Session, error) {
	exercise, err := s.GetExercise(exerciseName)
	if err != nil {
		return Session{}, err
	}
	log, err := s.prescribeLog(ctx, exercise)
	if err != nil {
		return Session{}, err
	}

	session, err := s.repo.UpdateSession(ctx, date, func(sess *Session) error {
		if sess.Completed() {
			return ErrSessionCompleted
		}
		for _, l := range sess.Exercises {
			if strings.EqualFold(l.ExerciseName, exercise.Name) {
				return fmt.Errorf("%w: %s is already in the session", ErrInvalidRequest, exercise.Name)
			}
		}
		sess.Exercises = append(sess.Exercises, log)
		return nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("update session %s: %w", date.Format(dateFormat), err)
	}
	return session, nil
}

// SwapExercise replaces an exercise log with another exercise, keeping its
// position in the session. Any recorded sets of the old exercise are
// discarded. Completed sessions are immutable.
func (s *Service) SwapExercise(ctx context.Context, date time.Time, logID, exerciseName string) (Session, error) {
	exercise, err := s.GetExercise(exerciseName)
	if err != nil {
		return Session{}, err
	}
	log, err := s.prescribeLog(ctx, exercise)
	if err != nil {
		return Session{}, err
	}

	session, err := s.repo.UpdateSession(ctx, date, func(sess *Session) error {
		if sess.Completed() {
			return ErrSessionCompleted
		}
		for i := range sess.Exercises {
			if sess.Exercises[i].ID != logID {
				continue
			}
			sess.Exercises[i] = log
			return nil
		}
		return fmt.Errorf("exercise log %s: %w", logID, ErrNotFound)
	})
	if err != nil {
		return Session{}, fmt.Errorf("update session %s: %w", date.Format(dateFormat), err)
	}
	return session, nil
}

// prescribeLog builds a fresh exercise log with the same prescription the
// generator would give the exercise.
func (s *Service) prescribeLog(ctx context.Context, exercise Exercise) (ExerciseLog, error) {
	now := s.now()
	history, err := s.repo.ListSessions(ctx, now.AddDate(0, -historyWindowMonths, 0))
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("get workout history: %w", err)
	}
	progress, err := s.repo.ListProgress(ctx)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("get progression records: %w", err)
	}

	weight := suggestedWeightLb(exercise.Name, progress, history)
	reps := suggestedReps(exercise)
	sets := make([]Set, defaultSetsPerExercise)
	for i := range sets {
		sets[i] = Set{WeightLb: weight, Reps: reps, Completed: false}
	}
	return ExerciseLog{ExerciseName: exercise.Name, Sets: sets}, nil
}

// Plan retrieves the split plan.
func (s *Service) Plan(ctx context.Context) (SplitPlan, error) {
	plan, err := s.repo.GetPlan(ctx)
	if err != nil {
		return SplitPlan{}, fmt.Errorf("get split plan: %w", err)
	}
	return plan, nil
}

// SavePlan validates and saves the split plan.
func (s *Service) SavePlan(ctx context.Context, plan SplitPlan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := s.repo.SavePlan(ctx, plan); err != nil {
		return fmt.Errorf("save split plan: %w", err)
	}
	return nil
}

// ListExercises returns the full exercise catalog.
func (s *Service) ListExercises() []Exercise {
	return s.catalog.All()
}

// GetExercise retrieves an exercise by name, tolerating minor name
// variations. Returns ErrNotFound when nothing matches.
func (s *Service) GetExercise(name string) (Exercise, error) {
	exercise, ok := s.catalog.ByName(name)
	if !ok {
		return Exercise{}, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	return exercise, nil
}

// SearchExercises returns catalog exercises matching the query.
func (s *Service) SearchExercises(query string) []Exercise {
	return s.catalog.Search(query)
}

// FilterExercises returns catalog exercises matching the given constraints.
// Zero values mean no constraint.
func (s *Service) FilterExercises(muscles []MuscleGroup, equipment Equipment, difficulty Difficulty) []Exercise {
	return s.catalog.Filter(muscles, equipment, difficulty)
}

// ExerciseProgress retrieves the progression record for an exercise.
func (s *Service) ExerciseProgress(ctx context.Context, exerciseName string) (ExerciseProgress, error) {
	progress, err := s.repo.GetProgress(ctx, exerciseName)
	if err != nil {
		return ExerciseProgress{}, fmt.Errorf("get progression record: %w", err)
	}
	return progress, nil
}

// WeeklyVolumeReport aggregates the trailing week's completed training volume
// per muscle against the plan's weekly targets.
func (s *Service) WeeklyVolumeReport(ctx context.Context) ([]MuscleVolume, error) {
	now := s.now()
	history, err := s.repo.ListSessions(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	plan, err := s.repo.GetPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("get split plan: %w", err)
	}
	return WeeklyVolume(history, plan, s.catalog, now), nil
}

// ScheduleDay is one day of the weekly schedule overview.
type ScheduleDay struct {
	Date               time.Time     `json:"date"`
	Type               DayType       `json:"type"`
	Muscles            []MuscleGroup `json:"muscles"`
	RecommendedMinutes int           `json:"recommended_minutes"`
	Completed          bool          `json:"completed"`
}

// WeeklySchedule resolves the current week's schedule from the split plan,
// Monday first, marking days whose sessions are already completed.
func (s *Service) WeeklySchedule(ctx context.Context) ([]ScheduleDay, error) {
	plan, err := s.repo.GetPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("get split plan: %w", err)
	}

	now := s.now()
	monday := now.AddDate(0, 0, -mondayIndex(now))

	schedule := make([]ScheduleDay, 7) //nolint:mnd // 7 days in a week
	for i := range schedule {
		date := monday.AddDate(0, 0, i)
		day := plan.Day(i)
		schedule[i] = ScheduleDay{
			Date:               date,
			Type:               day.Type,
			Muscles:            day.Muscles(),
			RecommendedMinutes: RecommendedDurationMinutes(plan, day),
		}
		session, sessionErr := s.repo.GetSession(ctx, date)
		if sessionErr != nil {
			if errors.Is(sessionErr, ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get session %s: %w", date.Format(dateFormat), sessionErr)
		}
		schedule[i].Completed = session.Completed()
	}
	return schedule, nil
}
