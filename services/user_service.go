package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the user joined with their active targets, the flat
// shape the profile screens consume.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Persistence(err)
	}

	profile := map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"sex":       user.Sex,
		"height_cm": user.HeightCm,
		"weight_kg": user.WeightKg,
		"sport":     user.Sport,
		"position":  user.Position,
		"goals":     user.Goals,
	}
	if !user.DateOfBirth.IsZero() {
		profile["date_of_birth"] = user.DateOfBirth.Format("2006-01-02")
		profile["age"] = utils.CalculateAge(user.DateOfBirth)
	}

	var targets models.UserTargets
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&targets).Error
	if err == nil {
		profile["target_calories"] = targets.TargetCalories
		profile["target_protein"] = targets.TargetProtein
		profile["target_carbs"] = targets.TargetCarbs
		profile["target_fat"] = targets.TargetFat
		profile["target_water_ml"] = targets.TargetWaterML
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Persistence(err)
	}
	return profile, nil
}

type ProfileInput struct {
	Name        string  `json:"name"`
	Sex         string  `json:"sex"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCm    float64 `json:"height_cm"`
	WeightKg    float64 `json:"weight_kg"`
	Sport       string  `json:"sport"`
	Position    string  `json:"position"`
	Goals       string  `json:"goals"`
}

// UpsertProfile updates the authenticated user's anthropometrics and sport
// context. The row itself always exists by the time a token was issued.
func (s *UserService) UpsertProfile(ctx context.Context, userID uint, in ProfileInput) error {
	if in.Name == "" || in.Sex == "" {
		return apperr.Validation("name and sex are required")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Persistence(err)
	}

	user.Name = in.Name
	user.Sex = in.Sex
	user.HeightCm = in.HeightCm
	user.WeightKg = in.WeightKg
	user.Sport = in.Sport
	user.Position = in.Position
	user.Goals = in.Goals
	if in.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return apperr.Validation("invalid date_of_birth, use YYYY-MM-DD")
		}
		user.DateOfBirth = dob
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
