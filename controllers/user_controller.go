package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/middlewares"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/services"
)

type UserController struct {
	users   *services.UserService
	targets *services.TargetService
}

func NewUserController(users *services.UserService, targets *services.TargetService) *UserController {
	return &UserController{users: users, targets: targets}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	profile, err := ctl.users.GetProfile(c.Request.Context(), middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) SaveProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middlewares.UserID(c)
	if err := ctl.users.UpsertProfile(c.Request.Context(), userID, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
}

func (ctl *UserController) GetTargets(c *gin.Context) {
	userID := middlewares.UserID(c)
	targets, err := ctl.targets.GetActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if targets == nil {
		// Same shape the daily summary uses for a never-configured user.
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (ctl *UserController) CreateTargets(c *gin.Context) {
	var input services.CalculateTargetsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, calc, err := ctl.targets.CalculateAndActivate(c.Request.Context(), middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"targets":      targets,
		"calculations": calc,
	})
}

func (ctl *UserController) UpdateTargets(c *gin.Context) {
	var input services.UpdateTargetsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := ctl.targets.UpdateActive(c.Request.Context(), middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "targets": targets})
}
