package services

import (
	"errors"
	"testing"
	"time"

	"github.com/isil-ada/yemekhane-backend/models"
)

func TestAddCommentRejectsSecondComment(t *testing.T) {
	db := setupTestDB(t)
	meal := seedMeal(t, db, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), models.MealTypeLunch)
	user := seedUser(t, db, "Ayşe", "ayse", "ayse@example.com")

	if err := AddComment(user.ID, meal.ID, "Çok lezzetliydi."); err != nil {
		t.Fatalf("first comment: %v", err)
	}
	if err := AddComment(user.ID, meal.ID, "Bir yorum daha"); !errors.Is(err, ErrDuplicateComment) {
		t.Fatalf("expected ErrDuplicateComment got %v", err)
	}

	// a different user can still comment
	other := seedUser(t, db, "Mehmet", "mehmet", "mehmet@example.com")
	if err := AddComment(other.ID, meal.ID, "Fena değildi."); err != nil {
		t.Fatalf("other user's comment: %v", err)
	}
}

func TestListCommentsJoinsProfileAndRating(t *testing.T) {
	db := setupTestDB(t)
	meal := seedMeal(t, db, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), models.MealTypeLunch)
	rater := seedUser(t, db, "Ayşe", "ayse", "ayse@example.com")
	silent := seedUser(t, db, "Mehmet", "mehmet", "mehmet@example.com")

	if err := AddComment(rater.ID, meal.ID, "Harika"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if err := AddComment(silent.ID, meal.ID, "İdare eder"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := RateMeal(rater.ID, meal.ID, 5); err != nil {
		t.Fatalf("rate: %v", err)
	}

	comments, err := ListComments(meal.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments got %d", len(comments))
	}

	// newest first: Mehmet commented last
	if comments[0].Name != "Mehmet" {
		t.Fatalf("expected newest comment first, got %q", comments[0].Name)
	}
	if comments[0].UserRating != nil {
		t.Fatalf("unrated commenter should have nil rating")
	}
	if comments[1].UserRating == nil || *comments[1].UserRating != 5 {
		t.Fatalf("expected rating 5 joined onto comment, got %v", comments[1].UserRating)
	}
	if comments[1].UserID != rater.ID {
		t.Fatalf("commenter id mismatch")
	}
}
