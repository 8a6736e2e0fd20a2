package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

func (s *WorkoutService) ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date = ?", userID, date).
		Order("created_at ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return workouts, nil
}

type CreateWorkoutInput struct {
	Name            string `json:"name"`
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	IntensityLevel  string `json:"intensity_level"`
	Notes           string `json:"notes"`
	WorkoutDate     string `json:"workout_date"`
}

func (s *WorkoutService) Create(ctx context.Context, userID uint, in CreateWorkoutInput, date time.Time) (*models.Workout, error) {
	if in.Name == "" || in.WorkoutType == "" {
		return nil, apperr.Validation("name and workout type are required")
	}
	w := models.Workout{
		UserID:          userID,
		Name:            in.Name,
		WorkoutType:     in.WorkoutType,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		IntensityLevel:  in.IntensityLevel,
		Notes:           in.Notes,
		WorkoutDate:     date,
	}
	if err := s.db.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &w, nil
}

type UpdateWorkoutInput struct {
	ID              uint    `json:"id"`
	Name            *string `json:"name"`
	WorkoutType     *string `json:"workout_type"`
	DurationMinutes *int    `json:"duration_minutes"`
	CaloriesBurned  *int    `json:"calories_burned"`
	IntensityLevel  *string `json:"intensity_level"`
	Notes           *string `json:"notes"`
	Completed       *bool   `json:"completed"`
}

// Update merges only the provided fields, keyed by id + user so one user
// cannot touch another's workouts.
func (s *WorkoutService) Update(ctx context.Context, userID uint, in UpdateWorkoutInput) (*models.Workout, error) {
	if in.ID == 0 {
		return nil, apperr.Validation("workout ID is required")
	}

	var w models.Workout
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.ID, userID).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("workout not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.WorkoutType != nil {
		w.WorkoutType = *in.WorkoutType
	}
	if in.DurationMinutes != nil {
		w.DurationMinutes = *in.DurationMinutes
	}
	if in.CaloriesBurned != nil {
		w.CaloriesBurned = *in.CaloriesBurned
	}
	if in.IntensityLevel != nil {
		w.IntensityLevel = *in.IntensityLevel
	}
	if in.Notes != nil {
		w.Notes = *in.Notes
	}
	if in.Completed != nil {
		w.Completed = *in.Completed
	}

	if err := s.db.WithContext(ctx).Save(&w).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &w, nil
}
