package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/logger"
)

// AnalysisService turns a food photo or free-text description into structured
// nutrition data via the model gateway.
type AnalysisService struct {
	llm LLMCaller
	log *logger.Logger
}

func NewAnalysisService(llm LLMCaller, log *logger.Logger) *AnalysisService {
	return &AnalysisService{llm: llm, log: log}
}

type AnalyzeFoodInput struct {
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

type AnalyzedFood struct {
	Name                  string  `json:"name"`
	EstimatedPortionGrams float64 `json:"estimated_portion_grams"`
	Confidence            float64 `json:"confidence"`
	Calories              float64 `json:"calories"`
	Protein               float64 `json:"protein"`
	Carbs                 float64 `json:"carbs"`
	Fat                   float64 `json:"fat"`
	Fiber                 float64 `json:"fiber"`
	Sugar                 float64 `json:"sugar"`
	Sodium                float64 `json:"sodium"`
	PreparationMethod     string  `json:"preparation_method"`
	HealthScore           float64 `json:"health_score"`
	Notes                 string  `json:"notes"`
}

type FoodAnalysis struct {
	Foods           []AnalyzedFood `json:"foods"`
	TotalCalories   float64        `json:"total_calories"`
	MealSuggestions []string       `json:"meal_suggestions"`
}

var foodItemProperties = map[string]any{
	"name":                    map[string]any{"type": "string"},
	"estimated_portion_grams": map[string]any{"type": "number"},
	"confidence":              map[string]any{"type": "number"},
	"calories":                map[string]any{"type": "number"},
	"protein":                 map[string]any{"type": "number"},
	"carbs":                   map[string]any{"type": "number"},
	"fat":                     map[string]any{"type": "number"},
	"fiber":                   map[string]any{"type": "number"},
	"sugar":                   map[string]any{"type": "number"},
	"sodium":                  map[string]any{"type": "number"},
	"preparation_method":      map[string]any{"type": "string"},
	"health_score":            map[string]any{"type": "number"},
	"notes":                   map[string]any{"type": "string"},
}

func foodAnalysisSchema() JSONSchema {
	return JSONSchema{
		Name: "food_analysis",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"foods": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":       "object",
						"properties": foodItemProperties,
						"required": []string{
							"name", "estimated_portion_grams", "confidence", "calories",
							"protein", "carbs", "fat", "fiber", "sugar", "sodium",
							"preparation_method", "health_score", "notes",
						},
						"additionalProperties": false,
					},
				},
				"total_calories":   map[string]any{"type": "number"},
				"meal_suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []string{"foods", "total_calories", "meal_suggestions"},
			"additionalProperties": false,
		},
	}
}

// AnalyzeFood requires exactly one of image_url and description. No internal
// retry: an upstream failure is surfaced as-is so the caller can decide.
func (s *AnalysisService) AnalyzeFood(ctx context.Context, in AnalyzeFoodInput) (*FoodAnalysis, error) {
	if in.ImageURL == "" && in.Description == "" {
		return nil, apperr.Validation("either image_url or description is required")
	}
	if in.ImageURL != "" && in.Description != "" {
		return nil, apperr.Validation("provide image_url or description, not both")
	}

	var userContent any
	if in.ImageURL != "" {
		prompt := "Analyze this food image and identify the foods shown. For each food item, estimate the portion size and provide nutritional information."
		userContent = []any{
			TextPart{Type: "text", Text: prompt},
			ImagePart{Type: "image_url", ImageURL: ImageURL{URL: in.ImageURL}},
		}
	} else {
		userContent = fmt.Sprintf("Analyze this food description: %q. Identify the foods mentioned and provide nutritional information.", in.Description)
	}

	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are a nutrition expert that analyzes food images and descriptions. Return structured data about the foods identified, including nutritional information and portion estimates.",
		},
		{Role: "user", Content: userContent},
	}

	raw, err := s.llm.GenerateJSON(ctx, messages, foodAnalysisSchema())
	if err != nil {
		return nil, err
	}

	var analysis FoodAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("analysis failed: model output is not food_analysis JSON: %w", err))
	}
	if err := analysis.validate(); err != nil {
		s.log.Warn("model produced schema-invalid analysis", "err", err)
		return nil, apperr.Upstream(fmt.Errorf("analysis failed: %w", err))
	}
	return &analysis, nil
}

// The service is best-effort on shape even when strict output is requested,
// so the decoded payload gets checked before anyone consumes it.
func (a *FoodAnalysis) validate() error {
	if a.Foods == nil {
		return fmt.Errorf("missing foods array")
	}
	for i, f := range a.Foods {
		if f.Name == "" {
			return fmt.Errorf("foods[%d]: missing name", i)
		}
		if f.EstimatedPortionGrams <= 0 {
			return fmt.Errorf("foods[%d] %q: estimated_portion_grams must be positive", i, f.Name)
		}
		if f.Confidence < 0 || f.Confidence > 1 {
			return fmt.Errorf("foods[%d] %q: confidence %v out of range", i, f.Name, f.Confidence)
		}
		if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 ||
			f.Fiber < 0 || f.Sugar < 0 || f.Sodium < 0 {
			return fmt.Errorf("foods[%d] %q: negative nutrient value", i, f.Name)
		}
	}
	if a.TotalCalories < 0 {
		return fmt.Errorf("negative total_calories")
	}
	return nil
}
