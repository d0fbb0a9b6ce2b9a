package workout

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrSessionCompleted is returned when mutating a session that has already
// been completed. Completed sessions are immutable history.
var ErrSessionCompleted = errors.New("session already completed")

// ErrInvalidRequest is returned when caller-supplied input fails validation.
var ErrInvalidRequest = errors.New("invalid request")

// Equipment identifies the implement an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentCable      Equipment = "cable"
	EquipmentMachine    Equipment = "machine"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentBand       Equipment = "band"
)

// Difficulty grades how demanding an exercise is to perform correctly.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Focus describes a training emphasis. Exercises are tagged strength or
// mobility; generation requests additionally allow balanced.
type Focus string

const (
	FocusStrength Focus = "strength"
	FocusBalanced Focus = "balanced"
	FocusMobility Focus = "mobility"
)

// EquipmentChoice is the equipment constraint of a generation request.
type EquipmentChoice string

const (
	EquipmentChoiceBodyweight EquipmentChoice = "bodyweight"
	EquipmentChoiceGym        EquipmentChoice = "gym"
	EquipmentChoiceBoth       EquipmentChoice = "both"
)

// Exercise describes a catalog entry, e.g. Squat or Bench Press.
type Exercise struct {
	Name                string        `json:"name"`
	PrimaryMuscles      []MuscleGroup `json:"primary_muscles"`
	SecondaryMuscles    []MuscleGroup `json:"secondary_muscles,omitempty"`
	Equipment           Equipment     `json:"equipment"`
	Compound            bool          `json:"compound"`
	Difficulty          Difficulty    `json:"difficulty"`
	Focus               Focus         `json:"focus"`
	DescriptionMarkdown string        `json:"description_markdown,omitempty"`
}

// Set is a single prescribed or performed set. Weight is stored in pounds;
// unit conversion happens at the presentation layer only.
type Set struct {
	WeightLb  float64 `json:"weight_lb"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// ExerciseLog groups all sets of one exercise within a session.
type ExerciseLog struct {
	ID           string `json:"id,omitempty"`
	ExerciseName string `json:"exercise_name"`
	Sets         []Set  `json:"sets"`
	Notes        string `json:"notes,omitempty"`
}

// Session is a workout on a given date including all its exercise logs.
type Session struct {
	ID          string        `json:"id,omitempty"`
	Date        time.Time     `json:"date"`
	Notes       string        `json:"notes,omitempty"`
	StartedAt   time.Time     `json:"started_at,omitzero"`
	CompletedAt time.Time     `json:"completed_at,omitzero"`
	Exercises   []ExerciseLog `json:"exercises"`
}

// Completed reports whether the session has been marked done.
func (s Session) Completed() bool {
	return !s.CompletedAt.IsZero()
}

// Request captures the inputs to a single generation attempt.
type Request struct {
	// DurationMinutes is the time budget for the session.
	DurationMinutes int `json:"duration_minutes"`
	// TargetMuscles are the muscles this session should cover.
	TargetMuscles []MuscleGroup `json:"target_muscles"`
	// Equipment constrains the exercise pool.
	Equipment EquipmentChoice `json:"equipment"`
	// Focus is the requested training emphasis.
	Focus Focus `json:"focus"`
	// PreferredExercises are names the lifter does often.
	PreferredExercises []string `json:"preferred_exercises,omitempty"`
}

// GeneratedWorkout is the output of the generation pipeline.
type GeneratedWorkout struct {
	Exercises []ExerciseLog `json:"exercises"`
	// EstimatedDurationMinutes assumes three minutes per set.
	EstimatedDurationMinutes int `json:"estimated_duration_minutes"`
	// Coverage is the mean fraction of per-muscle set targets met, in [0, 1].
	Coverage float64 `json:"coverage"`
	// Reasoning explains the choices in human terms.
	Reasoning string `json:"reasoning"`
}

// ExerciseProgress is the persisted double-progression state for one
// exercise, keyed by lowercased exercise name.
type ExerciseProgress struct {
	ExerciseName string    `json:"exercise_name"`
	LastWeightLb float64   `json:"last_weight_lb"`
	NextWeightLb float64   `json:"next_weight_lb"`
	FailStreak   int       `json:"fail_streak"`
	LastUpdated  time.Time `json:"last_updated"`
}

// RepRange is an inclusive target rep band.
type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether reps falls inside the range.
func (r RepRange) Contains(reps int) bool {
	return reps >= r.Min && reps <= r.Max
}
