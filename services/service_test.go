package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	config.DB = db
	config.App = &config.AppConfig{
		JWTSecret: "test-secret",
		PublicDir: t.TempDir(),
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, username, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         "user",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedMeal(t *testing.T, db *gorm.DB, date time.Time, mealType string) *models.Meal {
	t.Helper()
	meal := models.Meal{Date: date, MealType: mealType}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}
	return &meal
}

func seedDish(t *testing.T, db *gorm.DB, name, category string) *models.Dish {
	t.Helper()
	dish := models.Dish{Name: name, Category: category}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return &dish
}

func linkDish(t *testing.T, db *gorm.DB, mealID, dishID uint, position int) {
	t.Helper()
	md := models.MealDish{MealID: mealID, DishID: dishID, Position: position}
	if err := db.Create(&md).Error; err != nil {
		t.Fatalf("link dish: %v", err)
	}
}
