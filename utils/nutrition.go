package utils

import "errors"

// ToAbsolute scales a per-100g nutrient density to the absolute amount in a
// serving of the given gram weight.
func ToAbsolute(per100g, grams float64) float64 {
	return per100g * grams / 100
}

// ToPer100g is the inverse of ToAbsolute. Callers must guard grams > 0;
// a zero or negative weight has no meaningful density.
func ToPer100g(absolute, grams float64) (float64, error) {
	if grams <= 0 {
		return 0, errors.New("grams must be positive")
	}
	return absolute * 100 / grams, nil
}
