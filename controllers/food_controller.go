package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutritrack/models"
	"nutritrack/services"
)

type AddFoodInput struct {
	Category string  `json:"category" binding:"required,foodcategory"`
	Name     string  `json:"name" binding:"required"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Quantity string  `json:"quantity" binding:"required"`
}

type FoodController struct {
	foods *services.FoodService
	users *services.UserService
}

func NewFoodController(foods *services.FoodService, users *services.UserService) *FoodController {
	return &FoodController{foods: foods, users: users}
}

func (ctl *FoodController) AddFood(c *gin.Context) {
	username := c.MustGet("username").(string)

	var input AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": err.Error()})
		return
	}

	user, err := ctl.users.Profile(username)
	if err != nil {
		c.String(http.StatusNotFound, "User not found")
		return
	}

	item := &models.FoodItem{
		Category: input.Category,
		Name:     input.Name,
		Protein:  input.Protein,
		Fat:      input.Fat,
		Carbs:    input.Carbs,
		Calories: input.Calories,
		Quantity: input.Quantity,
	}
	if err := ctl.foods.Add(user.ID, item); err != nil {
		if errors.Is(err, services.ErrFoodExists) {
			c.String(http.StatusConflict, fmt.Sprintf("%s already exists.", input.Name))
			return
		}
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s added successfully", item.Name),
		"id":      item.ID,
	})
}

func (ctl *FoodController) ListFoods(c *gin.Context) {
	username := c.MustGet("username").(string)

	user, err := ctl.users.Profile(username)
	if err != nil {
		c.String(http.StatusNotFound, "User not found")
		return
	}

	items, err := ctl.foods.ListFor(user.ID)
	if err != nil {
		log.Println(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, items)
}
