package services

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"nutritrack/models"
	"nutritrack/stores"
)

// NutritionEntry is one "log a meal" submission. The macro values are
// deltas to add, not absolute totals.
type NutritionEntry struct {
	Date     time.Time
	Category string
	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
}

type NutritionService struct {
	users stores.UserStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewNutritionService(users stores.UserStore) *NutritionService {
	return &NutritionService{
		users: users,
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing nutrition writes for one
// user. The store gives no atomicity across the read-then-save pair,
// so concurrent submissions for the same user are serialized here.
func (s *NutritionService) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}

// Record merges the entry into the user's history and persists it.
// Calls accumulate: submitting the same entry twice doubles it.
func (s *NutritionService) Record(username string, entry NutritionEntry) error {
	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	applyEntry(user, entry)
	return s.users.Save(user)
}

// applyEntry is the in-memory merge. Day records match on calendar
// date only, category entries on exact name; whatever does not exist
// yet is appended, preserving insertion order.
func applyEntry(user *models.User, entry NutritionEntry) {
	day := models.DateOnly(entry.Date)

	for i := range user.DailyNutrition {
		rec := &user.DailyNutrition[i]
		if !models.DateOnly(rec.Date).Equal(day) {
			continue
		}

		rec.TotalCalories += entry.Calories
		rec.TotalProteins += entry.Proteins
		rec.TotalCarbs += entry.Carbs
		rec.TotalFats += entry.Fats

		for j := range rec.Categories {
			cat := &rec.Categories[j]
			if cat.Name == entry.Category {
				cat.Calories += entry.Calories
				cat.Proteins += entry.Proteins
				cat.Carbs += entry.Carbs
				cat.Fats += entry.Fats
				return
			}
		}
		rec.Categories = append(rec.Categories, models.CategoryTotals{
			Name:     entry.Category,
			Calories: entry.Calories,
			Proteins: entry.Proteins,
			Carbs:    entry.Carbs,
			Fats:     entry.Fats,
		})
		return
	}

	user.DailyNutrition = append(user.DailyNutrition, models.DailyNutrition{
		Date:          day,
		TotalCalories: entry.Calories,
		TotalProteins: entry.Proteins,
		TotalCarbs:    entry.Carbs,
		TotalFats:     entry.Fats,
		Categories: []models.CategoryTotals{{
			Name:     entry.Category,
			Calories: entry.Calories,
			Proteins: entry.Proteins,
			Carbs:    entry.Carbs,
			Fats:     entry.Fats,
		}},
	})
}

// History returns the user's daily records in insertion order.
func (s *NutritionService) History(username string) ([]models.DailyNutrition, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.DailyNutrition, nil
}
