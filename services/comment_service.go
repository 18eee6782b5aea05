package services

import (
	"errors"
	"time"

	"gorm.io/gorm/clause"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

var ErrDuplicateComment = errors.New("already commented on this meal")

type CommentView struct {
	CommentID          uint      `json:"comment_id"`
	CommentText        string    `json:"comment_text"`
	CreatedAt          time.Time `json:"created_at"`
	UserID             uint      `json:"user_id"`
	Name               string    `json:"name"`
	ProfilePicturePath *string   `json:"profile_picture_path"`
	UserRating         *int      `json:"user_rating"`
}

// AddComment inserts at most one comment per (user, meal). The conflict
// target is the unique index, so a concurrent duplicate simply inserts
// nothing instead of racing a pre-check.
func AddComment(userID, mealID uint, text string) error {
	comment := models.Comment{UserID: userID, MealID: mealID, CommentText: text}
	result := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "meal_id"}},
		DoNothing: true,
	}).Create(&comment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateComment
	}
	return nil
}

// ListComments returns a meal's comments newest first, each joined with the
// commenter's profile basics and their own rating for the meal (null when
// they never rated it).
func ListComments(mealID uint) ([]CommentView, error) {
	views := make([]CommentView, 0)
	err := config.DB.
		Table("comments").
		Select(`comments.id AS comment_id, comments.comment_text, comments.created_at,
			users.id AS user_id, users.name, users.profile_picture_path,
			ratings.score AS user_rating`).
		Joins("JOIN users ON users.id = comments.user_id").
		Joins("LEFT JOIN ratings ON ratings.user_id = comments.user_id AND ratings.meal_id = comments.meal_id").
		Where("comments.meal_id = ?", mealID).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&views).Error
	return views, err
}
