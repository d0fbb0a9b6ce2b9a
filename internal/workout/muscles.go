package workout

// MuscleGroup is the fine-grained muscle taxonomy the engine plans around.
// Chest, back, and shoulders are split by region because exercises bias them
// differently, e.g. incline presses hit the upper chest.
type MuscleGroup string

const (
	MuscleChestUpper    MuscleGroup = "chest_upper"
	MuscleChestLower    MuscleGroup = "chest_lower"
	MuscleBackWidth     MuscleGroup = "back_width"
	MuscleBackThickness MuscleGroup = "back_thickness"
	MuscleShoulderFront MuscleGroup = "shoulder_front"
	MuscleShoulderSide  MuscleGroup = "shoulder_side"
	MuscleShoulderRear  MuscleGroup = "shoulder_rear"
	MuscleQuads         MuscleGroup = "quads"
	MuscleHamstrings    MuscleGroup = "hamstrings"
	MuscleGlutes        MuscleGroup = "glutes"
	MuscleCalves        MuscleGroup = "calves"
	MuscleBiceps        MuscleGroup = "biceps"
	MuscleTriceps       MuscleGroup = "triceps"
	MuscleAbs           MuscleGroup = "abs"
)

// AllMuscleGroups returns every muscle group in canonical order.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleChestUpper, MuscleChestLower,
		MuscleBackWidth, MuscleBackThickness,
		MuscleShoulderFront, MuscleShoulderSide, MuscleShoulderRear,
		MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves,
		MuscleBiceps, MuscleTriceps, MuscleAbs,
	}
}

// DisplayName returns the human-readable name used in reasoning strings.
func (m MuscleGroup) DisplayName() string {
	switch m {
	case MuscleChestUpper:
		return "Chest (Upper)"
	case MuscleChestLower:
		return "Chest (Lower)"
	case MuscleBackWidth:
		return "Back (Width)"
	case MuscleBackThickness:
		return "Back (Thickness)"
	case MuscleShoulderFront:
		return "Shoulders (Front)"
	case MuscleShoulderSide:
		return "Shoulders (Side)"
	case MuscleShoulderRear:
		return "Shoulders (Rear)"
	case MuscleQuads:
		return "Quads"
	case MuscleHamstrings:
		return "Hamstrings"
	case MuscleGlutes:
		return "Glutes"
	case MuscleCalves:
		return "Calves"
	case MuscleBiceps:
		return "Biceps"
	case MuscleTriceps:
		return "Triceps"
	case MuscleAbs:
		return "Abs"
	}
	return string(m)
}

// Valid reports whether m is a known muscle group.
func (m MuscleGroup) Valid() bool {
	switch m {
	case MuscleChestUpper, MuscleChestLower, MuscleBackWidth, MuscleBackThickness,
		MuscleShoulderFront, MuscleShoulderSide, MuscleShoulderRear,
		MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves,
		MuscleBiceps, MuscleTriceps, MuscleAbs:
		return true
	}
	return false
}

// TrainingGroup is the coarse grouping used when distributing weekly set
// targets. Chest, back, and shoulder regions collapse into a single group so
// that a split day hitting both chest regions doesn't double its budget.
type TrainingGroup string

const (
	GroupChest      TrainingGroup = "chest"
	GroupBack       TrainingGroup = "back"
	GroupShoulders  TrainingGroup = "shoulders"
	GroupQuads      TrainingGroup = "quads"
	GroupHamstrings TrainingGroup = "hamstrings"
	GroupGlutes     TrainingGroup = "glutes"
	GroupCalves     TrainingGroup = "calves"
	GroupBiceps     TrainingGroup = "biceps"
	GroupTriceps    TrainingGroup = "triceps"
	GroupAbs        TrainingGroup = "abs"
)

// AllTrainingGroups returns every training group in canonical order.
func AllTrainingGroups() []TrainingGroup {
	return []TrainingGroup{
		GroupChest, GroupBack, GroupShoulders,
		GroupQuads, GroupHamstrings, GroupGlutes, GroupCalves,
		GroupBiceps, GroupTriceps, GroupAbs,
	}
}

// TrainingGroup maps a muscle group to its coarse training group.
func (m MuscleGroup) TrainingGroup() TrainingGroup {
	switch m {
	case MuscleChestUpper, MuscleChestLower:
		return GroupChest
	case MuscleBackWidth, MuscleBackThickness:
		return GroupBack
	case MuscleShoulderFront, MuscleShoulderSide, MuscleShoulderRear:
		return GroupShoulders
	case MuscleQuads:
		return GroupQuads
	case MuscleHamstrings:
		return GroupHamstrings
	case MuscleGlutes:
		return GroupGlutes
	case MuscleCalves:
		return GroupCalves
	case MuscleBiceps:
		return GroupBiceps
	case MuscleTriceps:
		return GroupTriceps
	case MuscleAbs:
		return GroupAbs
	}
	return GroupAbs
}

// Muscles returns the muscle groups belonging to the training group.
func (g TrainingGroup) Muscles() []MuscleGroup {
	var muscles []MuscleGroup
	for _, m := range AllMuscleGroups() {
		if m.TrainingGroup() == g {
			muscles = append(muscles, m)
		}
	}
	return muscles
}

// recoveryWindowDays is how many days a muscle needs before it is considered
// fully recovered. Large muscles need the longest window.
func recoveryWindowDays(m MuscleGroup) float64 {
	switch m {
	case MuscleChestUpper, MuscleChestLower, MuscleBackWidth, MuscleBackThickness,
		MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves:
		return 3.0
	case MuscleShoulderFront, MuscleShoulderSide, MuscleShoulderRear:
		return 2.5
	case MuscleBiceps, MuscleTriceps:
		return 2.0
	case MuscleAbs:
		return 1.5
	}
	return 3.0
}
