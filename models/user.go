package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Name        string    `json:"name"`
	Sex         string    `gorm:"size:10" json:"sex"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	HeightCm    float64   `json:"height_cm"`
	WeightKg    float64   `json:"weight_kg"`
	Sport       string    `json:"sport"`
	Position    string    `json:"position"`
	Goals       string    `gorm:"type:text" json:"goals"`
}
