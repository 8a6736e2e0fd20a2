package utils

import (
	"math"
	"testing"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		sex      string
		age      int
		want     float64
	}{
		{"male athlete", 70, 175, "male", 25, 1673.75},
		{"female", 60, 165, "female", 30, 1320.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMR(tc.weightKg, tc.heightCm, tc.sex, tc.age)
			if err != nil {
				t.Fatalf("CalculateBMR: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("CalculateBMR = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateBMRRejectsBadInput(t *testing.T) {
	if _, err := CalculateBMR(0, 175, "male", 25); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if _, err := CalculateBMR(70, 175, "other", 25); err == nil {
		t.Fatal("expected error for unknown sex")
	}
}

func TestCalculateTDEEUnknownLevelFallsBackToModerate(t *testing.T) {
	bmr := 1673.75
	if got, want := CalculateTDEE(bmr, "weekend warrior"), bmr*1.55; got != want {
		t.Fatalf("CalculateTDEE fallback = %v, want %v", got, want)
	}
}

// The worked example: 70kg / 175cm / male / 25 / athlete.
func TestComputeTargetsAthleteExample(t *testing.T) {
	bmr, err := CalculateBMR(70, 175, "male", 25)
	if err != nil {
		t.Fatalf("CalculateBMR: %v", err)
	}
	tdee := CalculateTDEE(bmr, "athlete")
	if math.Abs(tdee-3180.125) > 1e-9 {
		t.Fatalf("tdee = %v, want 3180.125", tdee)
	}

	targets := ComputeTargets(tdee, 70)
	if targets.Calories != 3498 {
		t.Fatalf("calories = %d, want 3498", targets.Calories)
	}
	if targets.Protein != 140 {
		t.Fatalf("protein = %d, want 140", targets.Protein)
	}
	if targets.Fat != 107 {
		t.Fatalf("fat = %d, want 107", targets.Fat)
	}
	if targets.Carbs != 494 {
		t.Fatalf("carbs = %d, want 494", targets.Carbs)
	}
	if targets.WaterML != 2800 {
		t.Fatalf("water = %d, want 2800", targets.WaterML)
	}
}

// Macro calories must re-add to the calorie target within rounding error.
func TestComputeTargetsSumLaw(t *testing.T) {
	weights := []float64{48, 60, 70, 85.5, 102}
	levels := []string{"low", "moderate", "high", "athlete"}
	for _, w := range weights {
		for _, level := range levels {
			bmr, err := CalculateBMR(w, 170, "female", 28)
			if err != nil {
				t.Fatalf("CalculateBMR: %v", err)
			}
			tg := ComputeTargets(CalculateTDEE(bmr, level), w)
			sum := tg.Protein*4 + tg.Fat*9 + tg.Carbs*4
			if diff := math.Abs(float64(sum - tg.Calories)); diff > 4 {
				t.Fatalf("weight %v level %s: macro sum %d vs calories %d (diff %v)",
					w, level, sum, tg.Calories, diff)
			}
		}
	}
}
