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
	ErrInvalidScore = errors.New("score must be between 1 and 5")
	ErrMealNotFound = errors.New("meal not found")
)

type RatingSummary struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

// RateMeal upserts the user's rating for a meal and refreshes the meal's
// aggregate in the same transaction. The upsert rides on the unique
// (user_id, meal_id) index, so concurrent submissions can't produce
// duplicate rows. Returns the freshly computed aggregate.
func RateMeal(userID, mealID uint, score int) (*RatingSummary, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	var summary RatingSummary
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.First(&meal, mealID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotFound
			}
			return err
		}

		rating := models.Rating{UserID: userID, MealID: mealID, Score: score}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "meal_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":      score,
				"created_at": time.Now(),
			}),
		}).Create(&rating).Error
		if err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Count int
		}
		err = tx.Model(&models.Rating{}).
			Where("meal_id = ?", mealID).
			Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
			Scan(&agg).Error
		if err != nil {
			return err
		}

		summary = RatingSummary{AvgRating: agg.Avg, RatingCount: agg.Count}
		return tx.Model(&models.Meal{}).
			Where("id = ?", mealID).
			Updates(map[string]interface{}{
				"avg_rating":   agg.Avg,
				"rating_count": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
