package main

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

type seedDish struct {
	Name     string
	Category string
	Calories int
}

var catalogue = []seedDish{
	{"Mercimek Çorbası", "corba", 150},
	{"Domates Çorbası", "corba", 120},
	{"Ezogelin Çorbası", "corba", 140},
	{"Yayla Çorbası", "corba", 130},
	{"Kuru Fasulye", "ana yemek", 300},
	{"Pirinç Pilavı", "ana yemek", 250},
	{"Tavuk Sote", "ana yemek", 350},
	{"Izgara Köfte", "ana yemek", 400},
	{"Karnıyarık", "ana yemek", 320},
	{"Bulgur Pilavı", "ana yemek", 220},
	{"Makarna", "ana yemek", 300},
	{"Cacık", "yardimci yemek", 80},
	{"Mevsim Salata", "yardimci yemek", 50},
	{"Yoğurt", "yardimci yemek", 100},
	{"Sütlaç", "tatli/icecek", 250},
	{"Revani", "tatli/icecek", 300},
	{"Kemalpaşa", "tatli/icecek", 350},
	{"Elma", "tatli/icecek", 60},
	{"Portakal", "tatli/icecek", 50},
}

// Seeds the dish catalogue and weekday lunch/dinner menus for one month
// (SEED_YEAR / SEED_MONTH, default January 2026). Safe to re-run: dishes are
// matched by name and the month's meals are replaced.
func main() {
	if err := config.Load(); err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}
	config.InitDB()

	viper.SetDefault("SEED_YEAR", 2026)
	viper.SetDefault("SEED_MONTH", 1)
	year := viper.GetInt("SEED_YEAR")
	month := time.Month(viper.GetInt("SEED_MONTH"))

	if err := seed(config.DB, year, month); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.Info("Seeding completed successfully!")
}

func seed(db *gorm.DB, year int, month time.Month) error {
	calories := make(map[uint]int, len(catalogue))
	dishIDs := make([]uint, 0, len(catalogue))
	for _, sd := range catalogue {
		dish := models.Dish{Name: sd.Name, Category: sd.Category}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&dish).Error
		if err != nil {
			return err
		}
		if dish.ID == 0 {
			if err := db.Where("name = ?", sd.Name).First(&dish).Error; err != nil {
				return err
			}
		}
		dishIDs = append(dishIDs, dish.ID)
		calories[dish.ID] = sd.Calories
	}
	logrus.Infof("Resolved %d dish IDs.", len(dishIDs))

	// clear the month so re-running doesn't duplicate menus
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	var stale []models.Meal
	if err := db.Where("date >= ? AND date < ?", from, to).Find(&stale).Error; err != nil {
		return err
	}
	for _, m := range stale {
		if err := db.Where("meal_id = ?", m.ID).Delete(&models.MealDish{}).Error; err != nil {
			return err
		}
	}
	if err := db.Where("date >= ? AND date < ?", from, to).Unscoped().Delete(&models.Meal{}).Error; err != nil {
		return err
	}

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		for _, mealType := range []string{models.MealTypeLunch, models.MealTypeDinner} {
			if err := createMeal(db, day, mealType, dishIDs, calories); err != nil {
				return err
			}
		}
		logrus.Infof("Created menus for %s", day.Format("2006-01-02"))
	}
	return nil
}

func createMeal(db *gorm.DB, date time.Time, mealType string, allDishIDs []uint, calories map[uint]int) error {
	// 4 random distinct dishes per meal
	shuffled := make([]uint, len(allDishIDs))
	copy(shuffled, allDishIDs)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	selected := shuffled[:4]

	total := 0
	for _, id := range selected {
		total += calories[id]
	}

	meal := models.Meal{Date: date, MealType: mealType, TotalCalories: total}
	if err := db.Create(&meal).Error; err != nil {
		return err
	}

	for i, dishID := range selected {
		md := models.MealDish{MealID: meal.ID, DishID: dishID, Position: i + 1}
		if err := db.Create(&md).Error; err != nil {
			return err
		}
	}
	return nil
}
