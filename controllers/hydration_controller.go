package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/middlewares"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/services"
)

type HydrationController struct {
	hydration *services.HydrationService
}

func NewHydrationController(hydration *services.HydrationService) *HydrationController {
	return &HydrationController{hydration: hydration}
}

func (ctl *HydrationController) GetDay(c *gin.Context) {
	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	day, err := ctl.hydration.GetDay(c.Request.Context(), middlewares.UserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

type LogHydrationInput struct {
	AmountML int    `json:"amount_ml"`
	Date     string `json:"date"`
}

func (ctl *HydrationController) LogWater(c *gin.Context) {
	var input LogHydrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDateParam(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	log, err := ctl.hydration.LogWater(c.Request.Context(), middlewares.UserID(c), input.AmountML, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}
