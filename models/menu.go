package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeLunch  = "lunch"
	MealTypeDinner = "dinner"
)

// One cafeteria serving, identified by calendar date and slot.
// AvgRating and RatingCount are refreshed on every rating write.
type Meal struct {
	gorm.Model
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_meal_date_type"`
	MealType      string    `gorm:"not null;uniqueIndex:idx_meal_date_type"`
	AvgRating     float64   `gorm:"not null;default:0"`
	RatingCount   int       `gorm:"not null;default:0"`
	TotalCalories int       `gorm:"not null;default:0"`
}

// Reference food item, reusable across meals.
type Dish struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null"`
	Category string
}

// Ordered meal↔dish association; Position defines display order.
type MealDish struct {
	ID       uint `gorm:"primaryKey"`
	MealID   uint `gorm:"not null;index"`
	DishID   uint `gorm:"not null"`
	Position int  `gorm:"not null"`
}
