package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/utils"
)

type TargetService struct {
	db *gorm.DB
}

func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

type CalculateTargetsInput struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Age           int     `json:"age"`
}

type TargetCalculations struct {
	BMR           int    `json:"bmr"`
	TDEE          int    `json:"tdee"`
	ActivityLevel string `json:"activity_level"`
}

// CalculateAndActivate derives a new target set and swaps it in atomically:
// all prior active rows are retired and the new row inserted in one
// transaction, so the one-active-row invariant holds even on failure.
func (s *TargetService) CalculateAndActivate(ctx context.Context, userID uint, in CalculateTargetsInput) (*models.UserTargets, *TargetCalculations, error) {
	if in.WeightKg == 0 || in.HeightCm == 0 || in.Sex == "" {
		return nil, nil, apperr.Validation("weight, height, and sex are required")
	}
	if in.Age == 0 {
		in.Age = 25
	}
	if in.ActivityLevel == "" {
		in.ActivityLevel = "moderate"
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("user not found")
		}
		return nil, nil, apperr.Persistence(err)
	}

	bmr, err := utils.CalculateBMR(in.WeightKg, in.HeightCm, in.Sex, in.Age)
	if err != nil {
		return nil, nil, apperr.Validation("%s", err.Error())
	}
	tdee := utils.CalculateTDEE(bmr, in.ActivityLevel)
	t := utils.ComputeTargets(tdee, in.WeightKg)

	targets := models.UserTargets{
		UserID:         userID,
		TargetCalories: t.Calories,
		TargetProtein:  t.Protein,
		TargetCarbs:    t.Carbs,
		TargetFat:      t.Fat,
		TargetWaterML:  t.WaterML,
		IsActive:       true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserTargets{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&targets).Error
	})
	if err != nil {
		return nil, nil, apperr.Persistence(fmt.Errorf("failed to activate targets: %w", err))
	}

	calc := &TargetCalculations{
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		ActivityLevel: in.ActivityLevel,
	}
	return &targets, calc, nil
}

// GetActive returns the user's active target set, or nil when the user has
// never configured targets.
func (s *TargetService) GetActive(ctx context.Context, userID uint) (*models.UserTargets, error) {
	var targets models.UserTargets
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&targets).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return &targets, nil
}

type UpdateTargetsInput struct {
	TargetCalories *int `json:"target_calories"`
	TargetProtein  *int `json:"target_protein"`
	TargetCarbs    *int `json:"target_carbs"`
	TargetFat      *int `json:"target_fat"`
	TargetWaterML  *int `json:"target_water_ml"`
}

// UpdateActive partially updates the active row, leaving omitted fields alone.
func (s *TargetService) UpdateActive(ctx context.Context, userID uint, in UpdateTargetsInput) (*models.UserTargets, error) {
	var targets models.UserTargets
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&targets).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("no active targets to update")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	if in.TargetCalories != nil {
		targets.TargetCalories = *in.TargetCalories
	}
	if in.TargetProtein != nil {
		targets.TargetProtein = *in.TargetProtein
	}
	if in.TargetCarbs != nil {
		targets.TargetCarbs = *in.TargetCarbs
	}
	if in.TargetFat != nil {
		targets.TargetFat = *in.TargetFat
	}
	if in.TargetWaterML != nil {
		targets.TargetWaterML = *in.TargetWaterML
	}

	if err := s.db.WithContext(ctx).Save(&targets).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &targets, nil
}
