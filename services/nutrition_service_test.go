package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"nutritrack/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(date time.Time, category string, calories, proteins, carbs, fats float64) NutritionEntry {
	return NutritionEntry{
		Date:     date,
		Category: category,
		Calories: calories,
		Proteins: proteins,
		Carbs:    carbs,
		Fats:     fats,
	}
}

func TestApplyEntry_AccumulatesSameDayAndCategory(t *testing.T) {
	user := &models.User{}

	applyEntry(user, entry(day("2024-01-01"), "Fruit", 100, 5, 20, 1))
	applyEntry(user, entry(day("2024-01-01"), "Fruit", 50, 2, 10, 1))

	assert.Len(t, user.DailyNutrition, 1)
	rec := user.DailyNutrition[0]
	assert.Equal(t, 150.0, rec.TotalCalories)
	assert.Equal(t, 7.0, rec.TotalProteins)
	assert.Equal(t, 30.0, rec.TotalCarbs)
	assert.Equal(t, 2.0, rec.TotalFats)

	assert.Len(t, rec.Categories, 1)
	assert.Equal(t, "Fruit", rec.Categories[0].Name)
	assert.Equal(t, 150.0, rec.Categories[0].Calories)
}

func TestApplyEntry_SecondCategorySameDay(t *testing.T) {
	user := &models.User{}

	applyEntry(user, entry(day("2024-01-01"), "Fruit", 100, 5, 20, 1))
	applyEntry(user, entry(day("2024-01-01"), "Fruit", 50, 2, 10, 1))
	applyEntry(user, entry(day("2024-01-01"), "Grains", 200, 6, 40, 2))

	assert.Len(t, user.DailyNutrition, 1)
	rec := user.DailyNutrition[0]
	assert.Equal(t, 350.0, rec.TotalCalories)
	assert.Len(t, rec.Categories, 2)

	// category totals sum to the date's running total
	var catCalories float64
	for _, cat := range rec.Categories {
		catCalories += cat.Calories
	}
	assert.Equal(t, rec.TotalCalories, catCalories)
}

func TestApplyEntry_CoalescesAcrossTimesOfDay(t *testing.T) {
	user := &models.User{}

	morning := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 21, 15, 42, 0, time.UTC)

	applyEntry(user, entry(morning, "Dairy", 120, 8, 9, 5))
	applyEntry(user, entry(evening, "Dairy", 120, 8, 9, 5))

	assert.Len(t, user.DailyNutrition, 1)
	assert.Equal(t, 240.0, user.DailyNutrition[0].TotalCalories)
	assert.Len(t, user.DailyNutrition[0].Categories, 1)
}

func TestApplyEntry_NewDateAppends(t *testing.T) {
	user := &models.User{}

	applyEntry(user, entry(day("2024-01-01"), "Fruit", 100, 5, 20, 1))
	applyEntry(user, entry(day("2024-01-02"), "Fruit", 80, 4, 16, 1))

	assert.Len(t, user.DailyNutrition, 2)
	assert.Equal(t, 100.0, user.DailyNutrition[0].TotalCalories)
	assert.Equal(t, 80.0, user.DailyNutrition[1].TotalCalories)
}

func TestApplyEntry_AdditiveOverManyCalls(t *testing.T) {
	user := &models.User{}
	deltas := []float64{10, 20, 30, 40}

	var want float64
	for _, d := range deltas {
		applyEntry(user, entry(day("2024-03-05"), "Beverages", d, d/10, d/2, d/5))
		want += d
	}

	rec := user.DailyNutrition[0]
	assert.Equal(t, want, rec.TotalCalories)
	assert.Equal(t, want, rec.Categories[0].Calories)
}

func TestNutritionService_Record(t *testing.T) {
	user := &models.User{Username: "ann1"}

	users := new(MockUserStore)
	users.On("FindByUsername", "ann1").Return(user, nil)
	users.On("Save", user).Return(nil)

	svc := NewNutritionService(users)
	err := svc.Record("ann1", entry(day("2024-01-01"), "Fruit", 100, 5, 20, 1))

	assert.NoError(t, err)
	assert.Len(t, user.DailyNutrition, 1)
	users.AssertExpectations(t)
}

func TestNutritionService_RecordMissingUser(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	err := NewNutritionService(users).Record("ghost", entry(day("2024-01-01"), "Fruit", 100, 0, 0, 0))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNutritionService_History(t *testing.T) {
	user := &models.User{
		Username: "ann1",
		DailyNutrition: []models.DailyNutrition{
			{Date: day("2024-01-01"), TotalCalories: 150},
			{Date: day("2024-01-02"), TotalCalories: 80},
		},
	}

	users := new(MockUserStore)
	users.On("FindByUsername", "ann1").Return(user, nil)

	history, err := NewNutritionService(users).History("ann1")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 150.0, history[0].TotalCalories)
}
