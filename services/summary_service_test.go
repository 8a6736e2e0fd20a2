package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
)

func TestGetDailySummaryUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, NewMealService(db))

	_, err := svc.GetDailySummary(context.Background(), 999, testDate)
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Code != apperr.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

// A user with no data for the day still gets a fully shaped summary:
// empty targets object, zero totals, empty meal list.
func TestGetDailySummaryEmptyDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, NewMealService(db))
	user := createTestUser(t, db)

	summary, err := svc.GetDailySummary(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}
	if summary.Date != "2024-01-01" {
		t.Fatalf("date = %q", summary.Date)
	}
	if summary.Totals != (DailyTotals{}) {
		t.Fatalf("totals = %+v, want zeroes", summary.Totals)
	}
	if summary.Hydration.TotalWaterML != 0 {
		t.Fatalf("hydration = %d, want 0", summary.Hydration.TotalWaterML)
	}
	if summary.DietScore != nil {
		t.Fatalf("diet score = %+v, want nil", summary.DietScore)
	}
	if summary.Meals == nil || len(summary.Meals) != 0 {
		t.Fatalf("meals = %#v, want empty slice", summary.Meals)
	}
	if _, ok := summary.Targets.(*models.UserTargets); ok {
		t.Fatal("targets should be an empty placeholder when none are configured")
	}
}

func TestGetDailySummaryAggregates(t *testing.T) {
	db := newTestDB(t)
	mealSvc := NewMealService(db)
	svc := NewSummaryService(db, mealSvc)
	user := createTestUser(t, db)

	targetSvc := NewTargetService(db)
	if _, _, err := targetSvc.CalculateAndActivate(context.Background(), user.ID, CalculateTargetsInput{
		WeightKg: 70, HeightCm: 175, Sex: "male", ActivityLevel: "athlete",
	}); err != nil {
		t.Fatalf("seed targets: %v", err)
	}

	breakfast := []LoggedFoodInput{{Name: "Oats", Calories: 389, Protein: 17, Carbs: 66, Fat: 7, EstimatedPortionGrams: 100}}
	lunch := []LoggedFoodInput{{Name: "Chicken Breast", Calories: 330, Protein: 62, Fat: 7.2, EstimatedPortionGrams: 200}}
	if _, err := mealSvc.LogMeal(context.Background(), user.ID, "breakfast", breakfast, testDate); err != nil {
		t.Fatalf("log breakfast: %v", err)
	}
	if _, err := mealSvc.LogMeal(context.Background(), user.ID, "lunch", lunch, testDate); err != nil {
		t.Fatalf("log lunch: %v", err)
	}

	hydrationSvc := NewHydrationService(db)
	for _, ml := range []int{250, 500} {
		if _, err := hydrationSvc.LogWater(context.Background(), user.ID, ml, testDate); err != nil {
			t.Fatalf("log water: %v", err)
		}
	}

	summary, err := svc.GetDailySummary(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	if math.Abs(summary.Totals.TotalCalories-719) > 1e-9 {
		t.Fatalf("total calories = %v, want 719", summary.Totals.TotalCalories)
	}
	if math.Abs(summary.Totals.TotalProtein-79) > 1e-9 {
		t.Fatalf("total protein = %v, want 79", summary.Totals.TotalProtein)
	}
	if summary.Hydration.TotalWaterML != 750 {
		t.Fatalf("hydration = %d, want 750", summary.Hydration.TotalWaterML)
	}

	targets, ok := summary.Targets.(*models.UserTargets)
	if !ok {
		t.Fatalf("targets = %T, want *models.UserTargets", summary.Targets)
	}
	if targets.TargetCalories != 3498 {
		t.Fatalf("target calories = %d, want 3498", targets.TargetCalories)
	}

	if len(summary.Meals) != 2 {
		t.Fatalf("meals = %d, want 2", len(summary.Meals))
	}
	if summary.Meals[0].MealType != "breakfast" || summary.Meals[1].MealType != "lunch" {
		t.Fatalf("meal order = %s, %s", summary.Meals[0].MealType, summary.Meals[1].MealType)
	}

	// Summaries are derived reads; asking again must not change anything.
	again, err := svc.GetDailySummary(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("second GetDailySummary: %v", err)
	}
	if again.Totals != summary.Totals || again.Hydration != summary.Hydration {
		t.Fatalf("re-aggregation drifted: %+v vs %+v", again, summary)
	}
}

func TestGetDailySummaryScopedToDate(t *testing.T) {
	db := newTestDB(t)
	mealSvc := NewMealService(db)
	svc := NewSummaryService(db, mealSvc)
	user := createTestUser(t, db)

	otherDate := testDate.AddDate(0, 0, 1)
	if _, err := mealSvc.LogMeal(context.Background(), user.ID, "dinner",
		[]LoggedFoodInput{{Name: "Pasta", Calories: 600, EstimatedPortionGrams: 300}}, otherDate); err != nil {
		t.Fatalf("log meal: %v", err)
	}

	summary, err := svc.GetDailySummary(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}
	if summary.Totals.TotalCalories != 0 || len(summary.Meals) != 0 {
		t.Fatalf("neighbouring day leaked into summary: %+v", summary)
	}
}
