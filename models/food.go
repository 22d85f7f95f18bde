package models

import "gorm.io/gorm"

// FoodCategories is the closed set of accepted catalog categories.
var FoodCategories = []string{
	"Fruit",
	"Vegetables",
	"Grains",
	"Proteins",
	"Dairy",
	"Beverages",
	"Prepared Foods",
	"others",
}

func ValidFoodCategory(name string) bool {
	for _, c := range FoodCategories {
		if c == name {
			return true
		}
	}
	return false
}

// FoodItem is a catalog entry. It belongs to the user who added it,
// or to everyone when Global is set; names are unique across the
// whole catalog, not per user.
type FoodItem struct {
	gorm.Model
	Category string  `gorm:"not null" json:"category"`
	Name     string  `gorm:"uniqueIndex;not null" json:"name"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
	Quantity string  `json:"quantity"`

	UserID *uint `gorm:"index" json:"user"`
	Global bool  `gorm:"default:false" json:"global"`
}
