package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"nutritrack/models"
)

// The foodcategory tag backs the closed category enum on AddFoodInput.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("foodcategory", func(fl validator.FieldLevel) bool {
			return models.ValidFoodCategory(fl.Field().String())
		})
	}
}
