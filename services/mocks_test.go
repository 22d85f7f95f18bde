package services

import (
	"github.com/stretchr/testify/mock"

	"nutritrack/models"
)

// MockUserStore is a mock implementation of stores.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) Save(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockFoodStore is a mock implementation of stores.FoodStore.
type MockFoodStore struct {
	mock.Mock
}

func (m *MockFoodStore) NameExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodStore) Create(item *models.FoodItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockFoodStore) VisibleTo(userID uint) ([]models.FoodItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}
