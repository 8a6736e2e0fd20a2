package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
)

func TestCreateWorkoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	user := createTestUser(t, db)

	tests := []struct {
		name string
		in   CreateWorkoutInput
	}{
		{"missing name", CreateWorkoutInput{WorkoutType: "strength"}},
		{"missing type", CreateWorkoutInput{Name: "Morning run"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), user.ID, tc.in, testDate)
			var ae *apperr.Error
			if !errors.As(err, &ae) || ae.Code != apperr.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateAndListWorkouts(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	user := createTestUser(t, db)

	names := []string{"Morning run", "Evening lift"}
	for _, name := range names {
		if _, err := svc.Create(context.Background(), user.ID, CreateWorkoutInput{
			Name:            name,
			WorkoutType:     "cardio",
			DurationMinutes: 45,
			CaloriesBurned:  400,
			IntensityLevel:  "moderate",
		}, testDate); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}
	// A workout on another day must not show up.
	if _, err := svc.Create(context.Background(), user.ID, CreateWorkoutInput{
		Name: "Rest-day walk", WorkoutType: "cardio",
	}, testDate.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("create off-day workout: %v", err)
	}

	workouts, err := svc.ListByDate(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("workouts = %d, want 2", len(workouts))
	}
	for i, name := range names {
		if workouts[i].Name != name {
			t.Fatalf("workouts[%d] = %q, want %q", i, workouts[i].Name, name)
		}
	}
	if workouts[0].Completed {
		t.Fatal("new workouts start incomplete")
	}
}

func TestUpdateWorkoutMergesProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	user := createTestUser(t, db)

	w, err := svc.Create(context.Background(), user.ID, CreateWorkoutInput{
		Name:            "Intervals",
		WorkoutType:     "cardio",
		DurationMinutes: 30,
		CaloriesBurned:  350,
	}, testDate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := true
	duration := 42
	updated, err := svc.Update(context.Background(), user.ID, UpdateWorkoutInput{
		ID:              w.ID,
		DurationMinutes: &duration,
		Completed:       &completed,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DurationMinutes != 42 || !updated.Completed {
		t.Fatalf("updated = %+v", updated)
	}
	// Untouched fields survive the merge.
	if updated.Name != "Intervals" || updated.CaloriesBurned != 350 {
		t.Fatalf("merge clobbered fields: %+v", updated)
	}
}

func TestUpdateWorkoutNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	user := createTestUser(t, db)
	other := createTestUser(t, db)

	w, err := svc.Create(context.Background(), other.ID, CreateWorkoutInput{
		Name: "Someone else's session", WorkoutType: "strength",
	}, testDate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "hijacked"
	_, err = svc.Update(context.Background(), user.ID, UpdateWorkoutInput{ID: w.ID, Name: &name})
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Code != apperr.CodeNotFound {
		t.Fatalf("expected not found for foreign workout, got %v", err)
	}

	_, err = svc.Update(context.Background(), user.ID, UpdateWorkoutInput{Name: &name})
	if !errors.As(err, &ae) || ae.Code != apperr.CodeValidation {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
}
