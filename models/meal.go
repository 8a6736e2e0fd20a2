package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal totals are frozen at log time from the caller-supplied nutrients.
// They deliberately do not track later edits to catalog Food rows.
type Meal struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	MealType      string     `gorm:"size:20;not null" json:"meal_type"`
	Name          string     `json:"name"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
	MealDate      time.Time  `gorm:"type:date;index" json:"meal_date"`
	LoggedAt      time.Time  `gorm:"autoCreateTime" json:"logged_at"`
	Foods         []MealFood `json:"foods"`
}

// MealFood is one consumed serving of a catalog food within a meal.
type MealFood struct {
	gorm.Model
	MealID            uint    `gorm:"index;not null" json:"meal_id"`
	FoodID            uint    `gorm:"index;not null" json:"food_id"`
	Food              Food    `json:"food"`
	QuantityGrams     float64 `json:"quantity_grams"`
	PreparationMethod string  `json:"preparation_method,omitempty"`
}
