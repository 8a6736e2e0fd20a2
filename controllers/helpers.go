package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
)

// respondError keeps the error envelope uniform: {"error": "..."} with the
// taxonomy's status code.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}

// parseDateParam resolves an optional YYYY-MM-DD value to UTC midnight,
// defaulting to today. Dates are stored and compared at day granularity.
func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}
