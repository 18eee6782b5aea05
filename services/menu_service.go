package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

var ErrMenuNotFound = errors.New("no menu for that date")

type MenuDish struct {
	DishID     uint   `json:"dish_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	IsFavorite bool   `json:"is_favorite"`
}

type MenuView struct {
	Date          string     `json:"date"`
	MealID        uint       `json:"meal_id"`
	MealType      string     `json:"meal_type"`
	AvgRating     float64    `json:"avg_rating"`
	RatingCount   int        `json:"rating_count"`
	UserRating    *int       `json:"user_rating"`
	TotalCalories int        `json:"total_calories"`
	Dishes        []MenuDish `json:"dishes"`
}

// dishRow is one row of the meal_dishes↔dishes join, position-ordered.
type dishRow struct {
	MealID   uint
	DishID   uint
	Name     string
	Category string
}

// GetMenu assembles the menu for one date and slot. userID 0 means
// anonymous: the favorite and own-rating overlays stay empty.
func GetMenu(date time.Time, mealType string, userID uint) (*MenuView, error) {
	day := date.Truncate(24 * time.Hour)

	var meal models.Meal
	err := config.DB.
		Where("date >= ? AND date < ? AND meal_type = ?", day, day.AddDate(0, 0, 1), mealType).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	rows, err := loadDishRows([]uint{meal.ID})
	if err != nil {
		return nil, err
	}

	favorites := map[uint]bool{}
	ratings := map[uint]int{}
	if userID != 0 {
		dishIDs := make([]uint, 0, len(rows))
		for _, r := range rows {
			dishIDs = append(dishIDs, r.DishID)
		}
		if favorites, err = loadFavoriteSet(userID, dishIDs); err != nil {
			return nil, err
		}
		if ratings, err = loadUserRatings(userID, []uint{meal.ID}); err != nil {
			return nil, err
		}
	}

	view := buildMenuView(&meal, rows, favorites, ratings)
	return &view, nil
}

// GetMonthlyMenu returns every menu of the given month and slot, ascending
// by date. Associations, favorites and ratings are loaded in one pass each
// and grouped in memory rather than queried per meal.
func GetMonthlyMenu(year int, month time.Month, mealType string, userID uint) ([]MenuView, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var meals []models.Meal
	err := config.DB.
		Where("date >= ? AND date < ? AND meal_type = ?", from, to, mealType).
		Order("date ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	views := make([]MenuView, 0, len(meals))
	if len(meals) == 0 {
		return views, nil
	}

	mealIDs := make([]uint, 0, len(meals))
	for _, m := range meals {
		mealIDs = append(mealIDs, m.ID)
	}

	rows, err := loadDishRows(mealIDs)
	if err != nil {
		return nil, err
	}

	favorites := map[uint]bool{}
	ratings := map[uint]int{}
	if userID != 0 {
		dishIDs := make([]uint, 0, len(rows))
		for _, r := range rows {
			dishIDs = append(dishIDs, r.DishID)
		}
		if favorites, err = loadFavoriteSet(userID, dishIDs); err != nil {
			return nil, err
		}
		if ratings, err = loadUserRatings(userID, mealIDs); err != nil {
			return nil, err
		}
	}

	byMeal := make(map[uint][]dishRow, len(meals))
	for _, r := range rows {
		byMeal[r.MealID] = append(byMeal[r.MealID], r)
	}

	for i := range meals {
		views = append(views, buildMenuView(&meals[i], byMeal[meals[i].ID], favorites, ratings))
	}
	return views, nil
}

func loadDishRows(mealIDs []uint) ([]dishRow, error) {
	var rows []dishRow
	err := config.DB.
		Table("meal_dishes").
		Select("meal_dishes.meal_id, dishes.id AS dish_id, dishes.name, dishes.category").
		Joins("JOIN dishes ON dishes.id = meal_dishes.dish_id").
		Where("meal_dishes.meal_id IN ?", mealIDs).
		Order("meal_dishes.meal_id ASC, meal_dishes.position ASC, meal_dishes.id ASC").
		Scan(&rows).Error
	return rows, err
}

func loadFavoriteSet(userID uint, dishIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool)
	if len(dishIDs) == 0 {
		return set, nil
	}
	var favorites []models.Favorite
	err := config.DB.
		Where("user_id = ? AND dish_id IN ?", userID, dishIDs).
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	for _, f := range favorites {
		set[f.DishID] = true
	}
	return set, nil
}

func loadUserRatings(userID uint, mealIDs []uint) (map[uint]int, error) {
	var ratings []models.Rating
	err := config.DB.
		Where("user_id = ? AND meal_id IN ?", userID, mealIDs).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	byMeal := make(map[uint]int, len(ratings))
	for _, r := range ratings {
		byMeal[r.MealID] = r.Score
	}
	return byMeal, nil
}

func buildMenuView(meal *models.Meal, rows []dishRow, favorites map[uint]bool, ratings map[uint]int) MenuView {
	dishes := make([]MenuDish, 0, len(rows))
	for _, r := range rows {
		dishes = append(dishes, MenuDish{
			DishID:     r.DishID,
			Name:       r.Name,
			Category:   r.Category,
			IsFavorite: favorites[r.DishID],
		})
	}

	var userRating *int
	if score, ok := ratings[meal.ID]; ok {
		userRating = &score
	}

	return MenuView{
		Date:          meal.Date.Format("2006-01-02"),
		MealID:        meal.ID,
		MealType:      meal.MealType,
		AvgRating:     meal.AvgRating,
		RatingCount:   meal.RatingCount,
		UserRating:    userRating,
		TotalCalories: meal.TotalCalories,
		Dishes:        dishes,
	}
}
