package stores

import (
	"gorm.io/gorm"

	"nutritrack/models"
)

// UserStore is the credential/nutrition persistence collaborator. A
// user record is loaded whole, nutrition history included, the way a
// document store would hand it back.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type GormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// FindByUsername loads the user with the full nutrition history in
// insertion order. Returns gorm.ErrRecordNotFound when absent.
func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("DailyNutrition", func(db *gorm.DB) *gorm.DB {
			return db.Order("daily_nutritions.id ASC")
		}).
		Preload("DailyNutrition.Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_totals.id ASC")
		}).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) UsernameExists(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// Save writes the user and any changed nutrition records back in one
// pass, mirroring a whole-document save.
func (s *GormUserStore) Save(user *models.User) error {
	return s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error
}
