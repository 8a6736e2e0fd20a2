package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
)

func TestLogWaterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewHydrationService(db)
	user := createTestUser(t, db)

	for _, ml := range []int{0, -250} {
		_, err := svc.LogWater(context.Background(), user.ID, ml, testDate)
		var ae *apperr.Error
		if !errors.As(err, &ae) || ae.Code != apperr.CodeValidation {
			t.Fatalf("amount %d: expected validation error, got %v", ml, err)
		}
	}
}

func TestGetDayEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewHydrationService(db)
	user := createTestUser(t, db)

	day, err := svc.GetDay(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDay: %v", err)
	}
	if len(day.Logs) != 0 || day.Total != 0 {
		t.Fatalf("day = %+v, want empty", day)
	}
	if day.Target != 2500 {
		t.Fatalf("target = %d, want default 2500", day.Target)
	}
	if day.Date != "2024-01-01" {
		t.Fatalf("date = %q", day.Date)
	}
}

func TestGetDayTotalsAndOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewHydrationService(db)
	user := createTestUser(t, db)

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, ml := range []int{250, 500, 330} {
		log := models.HydrationLog{
			UserID:   user.ID,
			AmountML: ml,
			LogDate:  testDate,
			LoggedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&log).Error; err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	day, err := svc.GetDay(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDay: %v", err)
	}
	if day.Total != 1080 {
		t.Fatalf("total = %d, want 1080", day.Total)
	}
	// Most recent entry first, activity-feed style.
	if len(day.Logs) != 3 || day.Logs[0].AmountML != 330 || day.Logs[2].AmountML != 250 {
		t.Fatalf("log order = %+v", day.Logs)
	}
}

func TestGetDayUsesActiveWaterTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewHydrationService(db)
	user := createTestUser(t, db)

	targets := models.UserTargets{UserID: user.ID, TargetWaterML: 2800, IsActive: true}
	if err := db.Create(&targets).Error; err != nil {
		t.Fatalf("seed targets: %v", err)
	}

	day, err := svc.GetDay(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDay: %v", err)
	}
	if day.Target != 2800 {
		t.Fatalf("target = %d, want active 2800", day.Target)
	}
}

func TestGetDayScopedToDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewHydrationService(db)
	user := createTestUser(t, db)

	if _, err := svc.LogWater(context.Background(), user.ID, 400, testDate.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("log water: %v", err)
	}

	day, err := svc.GetDay(context.Background(), user.ID, testDate)
	if err != nil {
		t.Fatalf("GetDay: %v", err)
	}
	if day.Total != 0 {
		t.Fatalf("total = %d, yesterday's intake leaked in", day.Total)
	}
}
