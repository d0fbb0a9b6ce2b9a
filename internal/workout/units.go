package workout

import "fmt"

// WeightUnit is the display unit preference. Storage is always pounds.
type WeightUnit string

const (
	UnitLb WeightUnit = "lb"
	UnitKg WeightUnit = "kg"
)

const lbToKg = 0.45359237

// ToDisplay converts a stored weight in pounds to the display unit.
func ToDisplay(weightLb float64, unit WeightUnit) float64 {
	if unit == UnitKg {
		return weightLb * lbToKg
	}
	return weightLb
}

// ToStorage converts a weight entered in the display unit back to pounds.
func ToStorage(weightInput float64, unit WeightUnit) float64 {
	if unit == UnitKg {
		return weightInput / lbToKg
	}
	return weightInput
}

// FormatWeight renders a stored weight in the display unit with one decimal.
func FormatWeight(weightLb float64, unit WeightUnit) string {
	return fmt.Sprintf("%.1f %s", ToDisplay(weightLb, unit), unit)
}
