package models

import (
	"time"
)

type Favorite struct {
	ID      uint      `gorm:"primaryKey"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_dish"`
	DishID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_dish"`
	AddedAt time.Time `gorm:"autoCreateTime"`
}
