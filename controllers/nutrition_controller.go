package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/middlewares"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/services"
)

type NutritionController struct {
	analysis *services.AnalysisService
	optimize *services.OptimizeService
	meals    *services.MealService
	summary  *services.SummaryService
}

func NewNutritionController(
	analysis *services.AnalysisService,
	optimize *services.OptimizeService,
	meals *services.MealService,
	summary *services.SummaryService,
) *NutritionController {
	return &NutritionController{analysis: analysis, optimize: optimize, meals: meals, summary: summary}
}

func (ctl *NutritionController) GetDailySummary(c *gin.Context) {
	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	summary, err := ctl.summary.GetDailySummary(c.Request.Context(), middlewares.UserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *NutritionController) AnalyzeFood(c *gin.Context) {
	var input services.AnalyzeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := ctl.analysis.AnalyzeFood(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (ctl *NutritionController) OptimizeMeal(c *gin.Context) {
	var input services.OptimizeMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	optimization, err := ctl.optimize.OptimizeMeal(c.Request.Context(), middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, optimization)
}

type LogMealInput struct {
	MealType string                     `json:"meal_type"`
	Foods    []services.LoggedFoodInput `json:"foods"`
	Date     string                     `json:"date"`
}

func (ctl *NutritionController) LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDateParam(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	mealID, err := ctl.meals.LogMeal(c.Request.Context(), middlewares.UserID(c), input.MealType, input.Foods, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mealId": mealID, "message": "Meal logged successfully"})
}
