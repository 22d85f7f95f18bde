package stores

import (
	"gorm.io/gorm"

	"nutritrack/models"
)

// FoodStore is the food catalog persistence collaborator.
type FoodStore interface {
	NameExists(name string) (bool, error)
	Create(item *models.FoodItem) error
	VisibleTo(userID uint) ([]models.FoodItem, error)
}

type GormFoodStore struct {
	db *gorm.DB
}

func NewFoodStore(db *gorm.DB) *GormFoodStore {
	return &GormFoodStore{db: db}
}

func (s *GormFoodStore) NameExists(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.FoodItem{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (s *GormFoodStore) Create(item *models.FoodItem) error {
	return s.db.Create(item).Error
}

// VisibleTo returns the union of the user's own items and global ones.
func (s *GormFoodStore) VisibleTo(userID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.
		Where("user_id = ? OR global = ?", userID, true).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
