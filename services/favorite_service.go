package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

var (
	ErrDishNotFound     = errors.New("dish not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteView struct {
	DishID   uint      `json:"dish_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	AddedAt  time.Time `json:"added_at"`
}

// AddFavorite is idempotent: favoriting an already-favorited dish succeeds
// without inserting a second row.
func AddFavorite(userID, dishID uint) error {
	var dish models.Dish
	if err := config.DB.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		return err
	}

	favorite := models.Favorite{UserID: userID, DishID: dishID}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "dish_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
}

func RemoveFavorite(userID, dishID uint) error {
	result := config.DB.
		Where("user_id = ? AND dish_id = ?", userID, dishID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListFavorites returns the user's favorites joined with dish attributes,
// newest-favorited first.
func ListFavorites(userID uint) ([]FavoriteView, error) {
	views := make([]FavoriteView, 0)
	err := config.DB.
		Table("favorites").
		Select("dishes.id AS dish_id, dishes.name, dishes.category, favorites.added_at").
		Joins("JOIN dishes ON dishes.id = favorites.dish_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.added_at DESC, favorites.id DESC").
		Scan(&views).Error
	return views, err
}
