package utils

import (
	"errors"
	"math"
)

// Daily nutrition targets derived from anthropometrics.
type Targets struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	WaterML  int
}

var activityMultipliers = map[string]float64{
	"low":      1.2,   // sedentary
	"moderate": 1.55,  // moderate exercise
	"high":     1.725, // heavy exercise
	"athlete":  1.9,   // very heavy exercise / athlete
}

// CalculateBMR uses the Mifflin-St Jeor equation. Height in cm, weight in kg.
func CalculateBMR(weightKg, heightCm float64, sex string, age int) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, errors.New("weight and height must be positive")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, errors.New("sex must be \"male\" or \"female\"")
	}
	return bmr, nil
}

// CalculateTDEE applies the activity multiplier. Unknown levels fall back to
// moderate rather than erroring.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers["moderate"]
	}
	return bmr * m
}

// ComputeTargets derives daily calorie/macro/water targets from TDEE and body
// weight. 10% surplus over TDEE for an athletic population, 2g protein per kg,
// 27.5% of calories from fat at 9 kcal/g, carbs fill the remainder at 4 kcal/g,
// 40ml water per kg.
func ComputeTargets(tdee, weightKg float64) Targets {
	calories := int(math.Round(tdee * 1.1))
	protein := int(math.Round(weightKg * 2.0))
	fat := int(math.Round(float64(calories) * 0.275 / 9))
	remaining := float64(calories - protein*4 - fat*9)
	carbs := int(math.Round(remaining / 4))
	return Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		WaterML:  int(math.Round(weightKg * 40)),
	}
}
