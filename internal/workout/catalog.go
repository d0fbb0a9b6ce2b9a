package workout

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed catalog.yaml
var catalogDefinition []byte

// Catalog is the static exercise database loaded from the embedded YAML.
type Catalog struct {
	exercises []Exercise
	byName    map[string]int
}

type catalogFile struct {
	Exercises []catalogEntry `yaml:"exercises"`
}

type catalogEntry struct {
	Name        string        `yaml:"name"`
	Primary     []MuscleGroup `yaml:"primary"`
	Secondary   []MuscleGroup `yaml:"secondary"`
	Equipment   Equipment     `yaml:"equipment"`
	Compound    bool          `yaml:"compound"`
	Difficulty  Difficulty    `yaml:"difficulty"`
	Focus       Focus         `yaml:"focus"`
	Description string        `yaml:"description"`
}

// NewCatalog parses the embedded exercise catalog.
func NewCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogDefinition, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	catalog := &Catalog{
		exercises: make([]Exercise, 0, len(file.Exercises)),
		byName:    make(map[string]int, len(file.Exercises)),
	}
	for i, entry := range file.Exercises {
		exercise, err := entry.toExercise()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, entry.Name, err)
		}
		key := strings.ToLower(exercise.Name)
		if _, exists := catalog.byName[key]; exists {
			return nil, fmt.Errorf("catalog entry %d: duplicate exercise name %q", i, entry.Name)
		}
		catalog.byName[key] = len(catalog.exercises)
		catalog.exercises = append(catalog.exercises, exercise)
	}
	return catalog, nil
}

func (e catalogEntry) toExercise() (Exercise, error) {
	if e.Name == "" {
		return Exercise{}, fmt.Errorf("missing name")
	}
	if len(e.Primary) == 0 {
		return Exercise{}, fmt.Errorf("missing primary muscles")
	}
	for _, m := range append(append([]MuscleGroup{}, e.Primary...), e.Secondary...) {
		if !m.Valid() {
			return Exercise{}, fmt.Errorf("unknown muscle group %q", m)
		}
	}
	switch e.Equipment {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentCable, EquipmentMachine, EquipmentBodyweight, EquipmentBand:
	default:
		return Exercise{}, fmt.Errorf("unknown equipment %q", e.Equipment)
	}

	difficulty := e.Difficulty
	if difficulty == "" {
		difficulty = DifficultyIntermediate
	}
	focus := e.Focus
	if focus == "" {
		focus = FocusStrength
	}
	switch difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return Exercise{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	switch focus {
	case FocusStrength, FocusMobility:
	default:
		return Exercise{}, fmt.Errorf("unknown focus %q", focus)
	}

	return Exercise{
		Name:                e.Name,
		PrimaryMuscles:      e.Primary,
		SecondaryMuscles:    e.Secondary,
		Equipment:           e.Equipment,
		Compound:            e.Compound,
		Difficulty:          difficulty,
		Focus:               focus,
		DescriptionMarkdown: e.Description,
	}, nil
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []Exercise {
	exercises := make([]Exercise, len(c.exercises))
	copy(exercises, c.exercises)
	return exercises
}

// lookup finds an exercise by exact case-insensitive name.
func (c *Catalog) lookup(name string) (Exercise, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// ByName finds an exercise by case-insensitive name, falling back to a
// substring match in either direction so that logged names like "Incline
// Bench" still resolve.
func (c *Catalog) ByName(name string) (Exercise, bool) {
	if exercise, ok := c.lookup(name); ok {
		return exercise, true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return Exercise{}, false
	}
	for _, exercise := range c.exercises {
		candidate := strings.ToLower(exercise.Name)
		if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
			return exercise, true
		}
	}
	return Exercise{}, false
}

// Search returns exercises whose name contains the query, case-insensitively.
// An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []Exercise {
	if query == "" {
		return c.All()
	}
	normalized := strings.ToLower(query)
	var matches []Exercise
	for _, exercise := range c.exercises {
		if strings.Contains(strings.ToLower(exercise.Name), normalized) {
			matches = append(matches, exercise)
		}
	}
	return matches
}

// Filter narrows the catalog by muscles, equipment, and difficulty. A zero
// value for any criterion means no constraint. The muscle filter matches
// primary or secondary involvement.
func (c *Catalog) Filter(muscles []MuscleGroup, equipment Equipment, difficulty Difficulty) []Exercise {
	muscleSet := make(map[MuscleGroup]struct{}, len(muscles))
	for _, m := range muscles {
		muscleSet[m] = struct{}{}
	}

	var filtered []Exercise
	for _, exercise := range c.exercises {
		if len(muscleSet) > 0 && !targetsAny(exercise, muscleSet) {
			continue
		}
		if equipment != "" && exercise.Equipment != equipment {
			continue
		}
		if difficulty != "" && exercise.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, exercise)
	}
	return filtered
}

func targetsAny(exercise Exercise, muscles map[MuscleGroup]struct{}) bool {
	for _, m := range exercise.PrimaryMuscles {
		if _, ok := muscles[m]; ok {
			return true
		}
	}
	for _, m := range exercise.SecondaryMuscles {
		if _, ok := muscles[m]; ok {
			return true
		}
	}
	return false
}
