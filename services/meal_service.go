package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/utils"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// LoggedFoodInput accepts either absolute nutrients (as they come from the
// analysis gateway) or per-100g densities plus a quantity. When neither
// estimated_portion_grams nor quantity_grams is given the portion is taken
// as 100g, so bare per-100g densities read as one standard serving.
// Nutrient values and quantities must be non-negative.
type LoggedFoodInput struct {
	Name                  string  `json:"name"`
	Brand                 string  `json:"brand"`
	Category              string  `json:"category"`
	Calories              float64 `json:"calories"`
	Protein               float64 `json:"protein"`
	Carbs                 float64 `json:"carbs"`
	Fat                   float64 `json:"fat"`
	CaloriesPer100g       float64 `json:"calories_per_100g"`
	ProteinPer100g        float64 `json:"protein_per_100g"`
	CarbsPer100g          float64 `json:"carbs_per_100g"`
	FatPer100g            float64 `json:"fat_per_100g"`
	EstimatedPortionGrams float64 `json:"estimated_portion_grams"`
	QuantityGrams         float64 `json:"quantity_grams"`
	PreparationMethod     string  `json:"preparation_method"`
}

func (f *LoggedFoodInput) quantity() float64 {
	if f.EstimatedPortionGrams > 0 {
		return f.EstimatedPortionGrams
	}
	if f.QuantityGrams > 0 {
		return f.QuantityGrams
	}
	return 100
}

// absolute returns the consumed amount for one nutrient, preferring the
// caller-supplied absolute value over a per-100g derivation.
func (f *LoggedFoodInput) absolute(abs, per100g float64) float64 {
	if abs != 0 {
		return abs
	}
	return utils.ToAbsolute(per100g, f.quantity())
}

// per100g normalizes one nutrient to catalog density, deriving it from the
// absolute value when the caller did not supply it directly.
func (f *LoggedFoodInput) per100g(per100g, abs float64) float64 {
	if per100g != 0 {
		return per100g
	}
	v, err := utils.ToPer100g(abs, f.quantity())
	if err != nil {
		return 0
	}
	return v
}

// LogMeal persists an analyzed or optimized food list as one meal. The meal
// row, catalog entries and links are written in a single transaction: a meal
// never exists without its food links.
func (s *MealService) LogMeal(ctx context.Context, userID uint, mealType string, foods []LoggedFoodInput, date time.Time) (uint, error) {
	if mealType == "" {
		return 0, apperr.Validation("meal_type is required")
	}
	if len(foods) == 0 {
		return 0, apperr.Validation("foods array is required")
	}

	meal := models.Meal{
		UserID:   userID,
		MealType: mealType,
		Name:     mealType + " meal",
		MealDate: date,
	}
	for _, f := range foods {
		if f.Name == "" {
			return 0, apperr.Validation("every food needs a name")
		}
		if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 ||
			f.CaloriesPer100g < 0 || f.ProteinPer100g < 0 || f.CarbsPer100g < 0 || f.FatPer100g < 0 {
			return 0, apperr.Validation("food %q has a negative nutrient value", f.Name)
		}
		if f.EstimatedPortionGrams < 0 || f.QuantityGrams < 0 {
			return 0, apperr.Validation("food %q has a negative quantity", f.Name)
		}
		meal.TotalCalories += f.absolute(f.Calories, f.CaloriesPer100g)
		meal.TotalProtein += f.absolute(f.Protein, f.ProteinPer100g)
		meal.TotalCarbs += f.absolute(f.Carbs, f.CarbsPer100g)
		meal.TotalFat += f.absolute(f.Fat, f.FatPer100g)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meal).Error; err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}

		for _, f := range foods {
			category := f.Category
			if category == "" {
				category = "general"
			}
			// Exact-name lookup, insert on first encounter. The unique index
			// on name makes concurrent loggers converge on one row.
			food := models.Food{
				Name:            f.Name,
				Brand:           f.Brand,
				CaloriesPer100g: f.per100g(f.CaloriesPer100g, f.Calories),
				ProteinPer100g:  f.per100g(f.ProteinPer100g, f.Protein),
				CarbsPer100g:    f.per100g(f.CarbsPer100g, f.Carbs),
				FatPer100g:      f.per100g(f.FatPer100g, f.Fat),
				Category:        category,
			}
			if err := tx.Where("name = ?", f.Name).FirstOrCreate(&food).Error; err != nil {
				return fmt.Errorf("failed to upsert food %q: %w", f.Name, err)
			}

			link := models.MealFood{
				MealID:            meal.ID,
				FoodID:            food.ID,
				QuantityGrams:     f.quantity(),
				PreparationMethod: f.PreparationMethod,
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link food %q: %w", f.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Persistence(err)
	}
	return meal.ID, nil
}

// ListMealsByDate returns the day's meals in diary order (logged_at ascending)
// with their food lines joined in.
func (s *MealService) ListMealsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Foods").
		Preload("Foods.Food").
		Where("user_id = ? AND meal_date = ?", userID, date).
		Order("logged_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return meals, nil
}
