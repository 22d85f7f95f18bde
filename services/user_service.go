package services

import (
	"errors"

	"gorm.io/gorm"

	"nutritrack/models"
	"nutritrack/stores"
)

type UserService struct {
	users stores.UserStore
}

func NewUserService(users stores.UserStore) *UserService {
	return &UserService{users: users}
}

// Profile re-resolves the user record for the authenticated username.
func (s *UserService) Profile(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
