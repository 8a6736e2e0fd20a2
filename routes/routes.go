package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/controllers"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/middlewares"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Nutrition *controllers.NutritionController
	Hydration *controllers.HydrationController
	Workouts  *controllers.WorkoutController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Browser and Expo clients live on other origins.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		users := api.Group("/users")
		{
			users.GET("/profile", ctl.Users.GetProfile)
			users.POST("/profile", ctl.Users.SaveProfile)
			users.GET("/targets", ctl.Users.GetTargets)
			users.POST("/targets", ctl.Users.CreateTargets)
			users.PUT("/targets", ctl.Users.UpdateTargets)
		}

		nutrition := api.Group("/nutrition")
		{
			nutrition.GET("/daily-summary", ctl.Nutrition.GetDailySummary)
			nutrition.POST("/analyze-food", ctl.Nutrition.AnalyzeFood)
			nutrition.POST("/optimize-meal", ctl.Nutrition.OptimizeMeal)
			nutrition.POST("/log-meal", ctl.Nutrition.LogMeal)
		}

		api.GET("/hydration", ctl.Hydration.GetDay)
		api.POST("/hydration", ctl.Hydration.LogWater)

		api.GET("/workouts", ctl.Workouts.List)
		api.POST("/workouts", ctl.Workouts.Create)
		api.PUT("/workouts", ctl.Workouts.Update)
	}

	return r
}
