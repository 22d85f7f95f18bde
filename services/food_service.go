package services

import (
	"errors"

	"nutritrack/models"
	"nutritrack/stores"
)

var ErrFoodExists = errors.New("food already exists")

type FoodService struct {
	foods stores.FoodStore
}

func NewFoodService(foods stores.FoodStore) *FoodService {
	return &FoodService{foods: foods}
}

// Add persists a new catalog item owned by the user. Names are unique
// across the whole catalog, so a collision with another user's item
// (or a global one) is still a conflict.
func (s *FoodService) Add(userID uint, item *models.FoodItem) error {
	exists, err := s.foods.NameExists(item.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrFoodExists
	}

	owner := userID
	item.UserID = &owner
	item.Global = false
	return s.foods.Create(item)
}

// ListFor returns the items the user can see: their own plus globals.
func (s *FoodService) ListFor(userID uint) ([]models.FoodItem, error) {
	return s.foods.VisibleTo(userID)
}
