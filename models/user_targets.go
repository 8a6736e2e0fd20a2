package models

import "gorm.io/gorm"

// UserTargets holds one generation of a user's daily targets. Exactly one row
// per user is active at a time; recalculation retires the old row and inserts
// a new one, so the history is never lost.
type UserTargets struct {
	gorm.Model
	UserID         uint `gorm:"index;not null" json:"user_id"`
	TargetCalories int  `json:"target_calories"`
	TargetProtein  int  `json:"target_protein"`
	TargetCarbs    int  `json:"target_carbs"`
	TargetFat      int  `json:"target_fat"`
	TargetWaterML  int  `gorm:"column:target_water_ml" json:"target_water_ml"`
	IsActive       bool `gorm:"index" json:"is_active"`
}
