package services

import (
	"errors"

	"gorm.io/gorm"

	"nutritrack/models"
	"nutritrack/stores"
	"nutritrack/utils"
)

var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUserNotFound     = errors.New("user not found")
)

type AuthService struct {
	users  stores.UserStore
	tokens *utils.TokenService
}

func NewAuthService(users stores.UserStore, tokens *utils.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password and issues a
// token for it. Usernames are unique; the shape of the individual
// fields is checked at the binding layer.
func (s *AuthService) Register(name, username, email, password string) (string, *models.User, error) {
	taken, err := s.users.UsernameExists(username)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.users.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate verifies the password and issues a fresh token. A
// missing user fails the same way as a bad password; the hash is
// never compared against an absent record.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrWrongCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrWrongCredentials
	}
	return s.tokens.Generate(username)
}

// ChangePassword re-hashes and persists the new password. The old
// password is intentionally not re-verified here.
func (s *AuthService) ChangePassword(username, newPassword string) error {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.users.Save(user)
}
