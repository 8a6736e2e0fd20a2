package models

import "time"

// DietScore rows are produced by a separate scoring process; this service
// only reads them for the daily summary.
type DietScore struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"user_id"`
	ScoreDate          time.Time `gorm:"type:date;index" json:"score_date"`
	OverallScore       float64   `json:"overall_score"`
	MacroBalanceScore  float64   `json:"macro_balance_score"`
	MicronutrientScore float64   `json:"micronutrient_score"`
	MealTimingScore    float64   `json:"meal_timing_score"`
	FoodQualityScore   float64   `json:"food_quality_score"`
	FoodDiversityScore float64   `json:"food_diversity_score"`
}
