package models

import (
	"gorm.io/gorm"
)

// At most one rating per (user, meal); enforced by the composite index,
// writes go through an upsert on it.
type Rating struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_rating_user_meal"`
	MealID uint `gorm:"not null;uniqueIndex:idx_rating_user_meal"`
	Score  int  `gorm:"not null;check:score >= 1 AND score <= 5"`
}

// At most one comment per (user, meal).
type Comment struct {
	gorm.Model
	UserID      uint   `gorm:"not null;uniqueIndex:idx_comment_user_meal"`
	MealID      uint   `gorm:"not null;uniqueIndex:idx_comment_user_meal"`
	CommentText string `gorm:"not null"`
}
