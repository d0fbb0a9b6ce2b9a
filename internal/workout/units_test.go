package workout_test

import (
	"math"
	"testing"

	"github.com/mkarvon/liftwise/internal/workout"
)

func TestWeightConversion(t *testing.T) {
	tests := []struct {
		name     string
		weightLb float64
		unit     workout.WeightUnit
		want     float64
	}{
		{name: "pounds pass through", weightLb: 225, unit: workout.UnitLb, want: 225},
		{name: "kilograms convert", weightLb: 100, unit: workout.UnitKg, want: 45.359237},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workout.ToDisplay(tt.weightLb, tt.unit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToDisplay = %f, want %f", got, tt.want)
			}

			// Converting back must recover the stored weight.
			back := workout.ToStorage(got, tt.unit)
			if math.Abs(back-tt.weightLb) > 1e-9 {
				t.Errorf("ToStorage(ToDisplay) = %f, want %f", back, tt.weightLb)
			}
		})
	}
}

func TestFormatWeight(t *testing.T) {
	if got := workout.FormatWeight(225, workout.UnitLb); got != "225.0 lb" {
		t.Errorf("FormatWeight = %q, want %q", got, "225.0 lb")
	}
	if got := workout.FormatWeight(100, workout.UnitKg); got != "45.4 kg" {
		t.Errorf("FormatWeight = %q, want %q", got, "45.4 kg")
	}
}
