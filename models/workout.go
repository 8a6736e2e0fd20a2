package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	WorkoutType     string    `gorm:"not null" json:"workout_type"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned"`
	IntensityLevel  string    `json:"intensity_level"`
	Notes           string    `gorm:"type:text" json:"notes"`
	WorkoutDate     time.Time `gorm:"type:date;index" json:"workout_date"`
	Completed       bool      `json:"completed"`
}
