package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
)

// SummaryService assembles the daily nutrition dashboard: targets, meal
// totals, hydration, diet score and the meal diary for one calendar day.
type SummaryService struct {
	db    *gorm.DB
	meals *MealService
}

func NewSummaryService(db *gorm.DB, meals *MealService) *SummaryService {
	return &SummaryService{db: db, meals: meals}
}

type DailyTotals struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

type HydrationTotal struct {
	TotalWaterML int `json:"total_water_ml"`
}

type DailySummary struct {
	Date      string            `json:"date"`
	Targets   any               `json:"targets"`
	Totals    DailyTotals       `json:"totals"`
	Hydration HydrationTotal    `json:"hydration"`
	DietScore *models.DietScore `json:"dietScore"`
	Meals     []models.Meal     `json:"meals"`
}

// GetDailySummary tolerates a never-configured user (empty targets, zeroed
// totals) but an unknown user is a hard 404. The five reads are independent,
// so they run concurrently and join before responding.
func (s *SummaryService) GetDailySummary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Persistence(err)
	}

	summary := &DailySummary{Date: date.Format("2006-01-02")}

	var targets *models.UserTargets
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var t models.UserTargets
		err := s.db.WithContext(gctx).
			Where("user_id = ? AND is_active = ?", userID, true).
			First(&t).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("targets read: %w", err)
		}
		targets = &t
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&models.Meal{}).
			Select("COALESCE(SUM(total_calories), 0) AS total_calories, " +
				"COALESCE(SUM(total_protein), 0) AS total_protein, " +
				"COALESCE(SUM(total_carbs), 0) AS total_carbs, " +
				"COALESCE(SUM(total_fat), 0) AS total_fat").
			Where("user_id = ? AND meal_date = ?", userID, date).
			Scan(&summary.Totals).Error
		if err != nil {
			return fmt.Errorf("totals read: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).Model(&models.HydrationLog{}).
			Select("COALESCE(SUM(amount_ml), 0)").
			Where("user_id = ? AND log_date = ?", userID, date).
			Scan(&summary.Hydration.TotalWaterML).Error
		if err != nil {
			return fmt.Errorf("hydration read: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var score models.DietScore
		err := s.db.WithContext(gctx).
			Where("user_id = ? AND score_date = ?", userID, date).
			First(&score).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("diet score read: %w", err)
		}
		summary.DietScore = &score
		return nil
	})

	g.Go(func() error {
		meals, err := s.meals.ListMealsByDate(gctx, userID, date)
		if err != nil {
			return fmt.Errorf("meals read: %w", err)
		}
		summary.Meals = meals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Persistence(err)
	}

	if targets != nil {
		summary.Targets = targets
	} else {
		summary.Targets = struct{}{} // never-configured user, keep the shape
	}
	if summary.Meals == nil {
		summary.Meals = []models.Meal{}
	}
	return summary, nil
}
