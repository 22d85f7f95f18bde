package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nutritrack/services"
)

type AddNutritionInput struct {
	Date     string  `json:"date" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

// parseDate accepts a plain calendar date or a full timestamp; the
// time-of-day part is discarded either way.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (ctl *NutritionController) AddNutrition(c *gin.Context) {
	username := c.MustGet("username").(string)

	var input AddNutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, "Invalid input")
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid date")
		return
	}

	entry := services.NutritionEntry{
		Date:     date,
		Category: input.Category,
		Calories: input.Calories,
		Proteins: input.Proteins,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	}
	if err := ctl.nutrition.Record(username, entry); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.String(http.StatusOK, "Nutrition data added")
}

func (ctl *NutritionController) GetNutrition(c *gin.Context) {
	username := c.MustGet("username").(string)

	history, err := ctl.nutrition.History(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, history)
}
