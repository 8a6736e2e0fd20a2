package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/logger"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/utils"
)

// OptimizeService asks the model for a complete replacement meal plan given
// the current meal and the user's sport, goals, targets and training state.
type OptimizeService struct {
	db  *gorm.DB
	llm LLMCaller
	log *logger.Logger
}

func NewOptimizeService(db *gorm.DB, llm LLMCaller, log *logger.Logger) *OptimizeService {
	return &OptimizeService{db: db, llm: llm, log: log}
}

type OptimizeMealInput struct {
	MealFoods     []MealFoodInput `json:"meal_foods"`
	TrainingState string          `json:"training_state"`
}

type MealFoodInput struct {
	Name              string  `json:"name"`
	QuantityGrams     float64 `json:"quantity_grams"`
	PreparationMethod string  `json:"preparation_method"`
	CaloriesPer100g   float64 `json:"calories_per_100g"`
	ProteinPer100g    float64 `json:"protein_per_100g"`
	CarbsPer100g      float64 `json:"carbs_per_100g"`
	FatPer100g        float64 `json:"fat_per_100g"`
}

type MealAnalysis struct {
	OverallScore          float64  `json:"overall_score"`
	Strengths             []string `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	SuitabilityForGoals   string   `json:"suitability_for_goals"`
	TimingAppropriateness string   `json:"timing_appropriateness"`
}

// OptimizedFood entries with is_replacement=true name the food they replace;
// original_food is null for pure additions.
type OptimizedFood struct {
	Name              string  `json:"name"`
	QuantityGrams     float64 `json:"quantity_grams"`
	PreparationMethod string  `json:"preparation_method"`
	ReplacementReason string  `json:"replacement_reason"`
	IsReplacement     bool    `json:"is_replacement"`
	OriginalFood      *string `json:"original_food"`
}

type EstimatedNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type OptimizedMeal struct {
	Foods              []OptimizedFood    `json:"foods"`
	EstimatedNutrition EstimatedNutrition `json:"estimated_nutrition"`
	ImprovementScore   float64            `json:"improvement_score"`
}

type MealOptimization struct {
	CurrentMealAnalysis       MealAnalysis  `json:"current_meal_analysis"`
	OptimizedMeal             OptimizedMeal `json:"optimized_meal"`
	KeyImprovements           []string      `json:"key_improvements"`
	Rationale                 string        `json:"rationale"`
	PerformanceBenefits       []string      `json:"performance_benefits"`
	AdditionalRecommendations []string      `json:"additional_recommendations"`
}

func mealOptimizationSchema() JSONSchema {
	stringArray := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	return JSONSchema{
		Name: "meal_optimization",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"current_meal_analysis": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"overall_score":          map[string]any{"type": "number"},
						"strengths":              stringArray,
						"weaknesses":             stringArray,
						"suitability_for_goals":  map[string]any{"type": "string"},
						"timing_appropriateness": map[string]any{"type": "string"},
					},
					"required": []string{
						"overall_score", "strengths", "weaknesses",
						"suitability_for_goals", "timing_appropriateness",
					},
					"additionalProperties": false,
				},
				"optimized_meal": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"foods": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"name":               map[string]any{"type": "string"},
									"quantity_grams":     map[string]any{"type": "number"},
									"preparation_method": map[string]any{"type": "string"},
									"replacement_reason": map[string]any{"type": "string"},
									"is_replacement":     map[string]any{"type": "boolean"},
									"original_food":      map[string]any{"type": []string{"string", "null"}},
								},
								"required": []string{
									"name", "quantity_grams", "preparation_method",
									"replacement_reason", "is_replacement", "original_food",
								},
								"additionalProperties": false,
							},
						},
						"estimated_nutrition": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"calories": map[string]any{"type": "number"},
								"protein":  map[string]any{"type": "number"},
								"carbs":    map[string]any{"type": "number"},
								"fat":      map[string]any{"type": "number"},
								"fiber":    map[string]any{"type": "number"},
								"sugar":    map[string]any{"type": "number"},
								"sodium":   map[string]any{"type": "number"},
							},
							"required":             []string{"calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium"},
							"additionalProperties": false,
						},
						"improvement_score": map[string]any{"type": "number"},
					},
					"required":             []string{"foods", "estimated_nutrition", "improvement_score"},
					"additionalProperties": false,
				},
				"key_improvements":           stringArray,
				"rationale":                  map[string]any{"type": "string"},
				"performance_benefits":       stringArray,
				"additional_recommendations": stringArray,
			},
			"required": []string{
				"current_meal_analysis", "optimized_meal", "key_improvements",
				"rationale", "performance_benefits", "additional_recommendations",
			},
			"additionalProperties": false,
		},
	}
}

func (s *OptimizeService) OptimizeMeal(ctx context.Context, userID uint, in OptimizeMealInput) (*MealOptimization, error) {
	if len(in.MealFoods) == 0 {
		return nil, apperr.Validation("meal_foods array is required")
	}
	if in.TrainingState == "" {
		in.TrainingState = "rest"
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Persistence(fmt.Errorf("failed to load user: %w", err))
	}

	// Active targets are optional context; sensible defaults when the user
	// never ran the target calculator.
	targets := models.UserTargets{TargetCalories: 2500, TargetProtein: 150, TargetCarbs: 300, TargetFat: 83}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&targets).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Persistence(fmt.Errorf("failed to load targets: %w", err))
	}

	var current struct{ calories, protein, carbs, fat float64 }
	var desc bytes.Buffer
	for i, f := range in.MealFoods {
		if i > 0 {
			desc.WriteString(", ")
		}
		prep := f.PreparationMethod
		if prep == "" {
			prep = "as prepared"
		}
		fmt.Fprintf(&desc, "%s (%.0fg, %s)", f.Name, f.QuantityGrams, prep)

		current.calories += utils.ToAbsolute(f.CaloriesPer100g, f.QuantityGrams)
		current.protein += utils.ToAbsolute(f.ProteinPer100g, f.QuantityGrams)
		current.carbs += utils.ToAbsolute(f.CarbsPer100g, f.QuantityGrams)
		current.fat += utils.ToAbsolute(f.FatPer100g, f.QuantityGrams)
	}

	sport := user.Sport
	if sport == "" {
		sport = "General fitness"
	}
	goals := user.Goals
	if goals == "" {
		goals = "General health"
	}

	var prompt bytes.Buffer
	fmt.Fprintf(&prompt, "Current meal: %s\n\n", desc.String())
	prompt.WriteString("User profile:\n")
	fmt.Fprintf(&prompt, "- Sport: %s\n", sport)
	fmt.Fprintf(&prompt, "- Goals: %s\n", goals)
	fmt.Fprintf(&prompt, "- Training state: %s\n", in.TrainingState)
	fmt.Fprintf(&prompt, "- Daily targets: %d calories, %dg protein, %dg carbs, %dg fat\n\n",
		targets.TargetCalories, targets.TargetProtein, targets.TargetCarbs, targets.TargetFat)
	prompt.WriteString("Current meal nutrition:\n")
	fmt.Fprintf(&prompt, "- Calories: %.0f\n", math.Round(current.calories))
	fmt.Fprintf(&prompt, "- Protein: %.0fg\n", math.Round(current.protein))
	fmt.Fprintf(&prompt, "- Carbs: %.0fg\n", math.Round(current.carbs))
	fmt.Fprintf(&prompt, "- Fat: %.0fg\n\n", math.Round(current.fat))
	prompt.WriteString("Please analyze this meal and provide optimization recommendations.")

	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are an expert sports nutritionist and meal optimization specialist. Analyze meals and suggest healthier alternatives based on the user's sport, goals, and current training state. Consider macro/micronutrient balance, food quality, timing, and specific athletic performance needs.",
		},
		{Role: "user", Content: prompt.String()},
	}

	raw, err := s.llm.GenerateJSON(ctx, messages, mealOptimizationSchema())
	if err != nil {
		return nil, err
	}

	var opt MealOptimization
	if err := json.Unmarshal(raw, &opt); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("optimization failed: model output is not meal_optimization JSON: %w", err))
	}
	if err := opt.validate(); err != nil {
		s.log.Warn("model produced schema-invalid optimization", "err", err)
		return nil, apperr.Upstream(fmt.Errorf("optimization failed: %w", err))
	}
	return &opt, nil
}

func (o *MealOptimization) validate() error {
	if len(o.OptimizedMeal.Foods) == 0 {
		return fmt.Errorf("optimized_meal has no foods")
	}
	for i, f := range o.OptimizedMeal.Foods {
		if f.Name == "" {
			return fmt.Errorf("optimized_meal.foods[%d]: missing name", i)
		}
		if f.QuantityGrams <= 0 {
			return fmt.Errorf("optimized_meal.foods[%d] %q: quantity_grams must be positive", i, f.Name)
		}
		if f.IsReplacement && f.OriginalFood == nil {
			return fmt.Errorf("optimized_meal.foods[%d] %q: replacement without original_food", i, f.Name)
		}
	}
	n := o.OptimizedMeal.EstimatedNutrition
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 ||
		n.Fiber < 0 || n.Sugar < 0 || n.Sodium < 0 {
		return fmt.Errorf("estimated_nutrition has a negative value")
	}
	if o.Rationale == "" {
		return fmt.Errorf("missing rationale")
	}
	return nil
}
