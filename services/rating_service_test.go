package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/isil-ada/yemekhane-backend/models"
)

func TestRateMealAggregates(t *testing.T) {
	db := setupTestDB(t)
	meal := seedMeal(t, db, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), models.MealTypeLunch)

	scores := []int{5, 3, 1}
	for i, score := range scores {
		user := seedUser(t, db, "User", usernameFor(i), emailFor(i))
		summary, err := RateMeal(user.ID, meal.ID, score)
		if err != nil {
			t.Fatalf("rate: %v", err)
		}
		if summary.RatingCount != i+1 {
			t.Fatalf("expected count %d got %d", i+1, summary.RatingCount)
		}
	}

	var updated models.Meal
	if err := db.First(&updated, meal.ID).Error; err != nil {
		t.Fatalf("reload meal: %v", err)
	}
	if updated.RatingCount != 3 {
		t.Fatalf("expected rating_count 3 got %d", updated.RatingCount)
	}
	if math.Abs(updated.AvgRating-3.0) > 1e-9 {
		t.Fatalf("expected avg 3.0 got %f", updated.AvgRating)
	}
}

func TestRateMealUpsertsInsteadOfDuplicating(t *testing.T) {
	db := setupTestDB(t)
	meal := seedMeal(t, db, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), models.MealTypeLunch)
	user := seedUser(t, db, "Ayşe", "ayse", "ayse@example.com")

	summary, err := RateMeal(user.ID, meal.ID, 4)
	if err != nil {
		t.Fatalf("first rate: %v", err)
	}
	if summary.AvgRating != 4 || summary.RatingCount != 1 {
		t.Fatalf("expected avg 4 count 1 got %+v", summary)
	}

	// same user rates again: score is replaced, not appended
	summary, err = RateMeal(user.ID, meal.ID, 2)
	if err != nil {
		t.Fatalf("second rate: %v", err)
	}
	if summary.AvgRating != 2 || summary.RatingCount != 1 {
		t.Fatalf("expected avg 2 count 1 got %+v", summary)
	}

	var count int64
	if err := db.Model(&models.Rating{}).Where("meal_id = ?", meal.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single rating row, got %d", count)
	}
}

func TestRateMealValidation(t *testing.T) {
	db := setupTestDB(t)
	meal := seedMeal(t, db, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), models.MealTypeLunch)
	user := seedUser(t, db, "Ayşe", "ayse", "ayse@example.com")

	for _, score := range []int{0, 6, -1} {
		if _, err := RateMeal(user.ID, meal.ID, score); !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore got %v", score, err)
		}
	}

	if _, err := RateMeal(user.ID, meal.ID+999, 3); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound got %v", err)
	}
}

func usernameFor(i int) string {
	return string(rune('a'+i)) + "user"
}

func emailFor(i int) string {
	return string(rune('a'+i)) + "@example.com"
}
