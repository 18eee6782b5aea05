package models

import (
	"gorm.io/gorm"
)

type Complaint struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index"`
	MealID      *uint  // optional reference to the meal being complained about
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
}
