package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyNutrition aggregates everything a user logged on one calendar
// day. Date is stored at midnight UTC; there is at most one record per
// user per day.
type DailyNutrition struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"-"`
	Date   time.Time `gorm:"index;not null" json:"date"`

	TotalCalories float64 `json:"totalCalories"`
	TotalProteins float64 `json:"totalProteins"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`

	Categories []CategoryTotals `json:"categories"`
}

// CategoryTotals is the per-category breakdown inside a DailyNutrition
// record, at most one per category name per day.
type CategoryTotals struct {
	gorm.Model
	DailyNutritionID uint   `gorm:"index;not null" json:"-"`
	Name             string `gorm:"not null" json:"name"`

	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DateOnly truncates t to its calendar day in UTC. Two submissions
// with differing times of day map to the same DailyNutrition record.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
