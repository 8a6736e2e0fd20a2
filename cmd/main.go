package main

import (
	"log"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/config"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/controllers"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/logger"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/routes"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/services"
)

func main() {
	config.LoadEnv()

	logr, err := logger.New(config.GetEnv("APP_ENV", "dev"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logr.Sync()

	db, err := config.InitDB()
	if err != nil {
		logr.Fatal("database init failed", "err", err)
	}

	llm := services.NewLLMService(logr)

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	targetSvc := services.NewTargetService(db)
	mealSvc := services.NewMealService(db)
	summarySvc := services.NewSummaryService(db, mealSvc)
	hydrationSvc := services.NewHydrationService(db)
	workoutSvc := services.NewWorkoutService(db)
	analysisSvc := services.NewAnalysisService(llm, logr)
	optimizeSvc := services.NewOptimizeService(db, llm, logr)

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Users:     controllers.NewUserController(userSvc, targetSvc),
		Nutrition: controllers.NewNutritionController(analysisSvc, optimizeSvc, mealSvc, summarySvc),
		Hydration: controllers.NewHydrationController(hydrationSvc),
		Workouts:  controllers.NewWorkoutController(workoutSvc),
	})

	addr := ":" + config.GetEnv("PORT", "8080")
	logr.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logr.Fatal("server exited", "err", err)
	}
}
