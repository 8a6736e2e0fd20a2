package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
)

const defaultWaterTargetML = 2500

type HydrationService struct {
	db *gorm.DB
}

func NewHydrationService(db *gorm.DB) *HydrationService {
	return &HydrationService{db: db}
}

type HydrationDay struct {
	Logs   []models.HydrationLog `json:"logs"`
	Total  int                   `json:"total"`
	Target int                   `json:"target"`
	Date   string                `json:"date"`
}

// GetDay returns the day's logs most-recent-first (a recent-activity feed,
// unlike the chronological meal diary), the live total, and the active water
// target with a sensible fallback.
func (s *HydrationService) GetDay(ctx context.Context, userID uint, date time.Time) (*HydrationDay, error) {
	day := &HydrationDay{
		Logs:   []models.HydrationLog{},
		Target: defaultWaterTargetML,
		Date:   date.Format("2006-01-02"),
	}

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, date).
		Order("logged_at DESC").
		Find(&day.Logs).Error
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	for _, l := range day.Logs {
		day.Total += l.AmountML
	}

	var targets models.UserTargets
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&targets).Error
	if err == nil && targets.TargetWaterML > 0 {
		day.Target = targets.TargetWaterML
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Persistence(err)
	}
	return day, nil
}

// LogWater appends one intake entry. Amounts are whole positive milliliters.
func (s *HydrationService) LogWater(ctx context.Context, userID uint, amountML int, date time.Time) (*models.HydrationLog, error) {
	if amountML <= 0 {
		return nil, apperr.Validation("valid amount_ml is required")
	}
	log := models.HydrationLog{
		UserID:   userID,
		AmountML: amountML,
		LogDate:  date,
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &log, nil
}
