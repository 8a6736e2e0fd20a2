package models

import "gorm.io/gorm"

// Food is a catalog entry with density-normalized nutrients (per 100g).
// Rows are created on first encounter during meal logging; the unique index
// on name makes concurrent first encounters converge on a single row.
type Food struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Brand           string  `json:"brand,omitempty"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g" json:"protein_per_100g"`
	CarbsPer100g    float64 `gorm:"column:carbs_per_100g" json:"carbs_per_100g"`
	FatPer100g      float64 `gorm:"column:fat_per_100g" json:"fat_per_100g"`
	Category        string  `json:"category"`
}
