package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/models"
	"github.com/isil-ada/yemekhane-backend/services"
)

func GetLunchMenu(c *gin.Context) {
	getMenu(c, models.MealTypeLunch)
}

func GetDinnerMenu(c *gin.Context) {
	getMenu(c, models.MealTypeDinner)
}

func GetMonthlyLunchMenu(c *gin.Context) {
	getMonthlyMenu(c, models.MealTypeLunch)
}

func GetMonthlyDinnerMenu(c *gin.Context) {
	getMonthlyMenu(c, models.MealTypeDinner)
}

func getMenu(c *gin.Context, mealType string) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD."})
			return
		}
		date = parsed
	}

	view, err := services.GetMenu(date, mealType, c.GetUint("userID"))
	if err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":   "No menu found for this date.",
				"date":      date.Format("2006-01-02"),
				"meal_type": mealType,
			})
			return
		}
		logrus.WithError(err).Error("menu lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, view)
}

func getMonthlyMenu(c *gin.Context, mealType string) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year."})
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month."})
			return
		}
		month = time.Month(parsed)
	}

	views, err := services.GetMonthlyMenu(year, month, mealType, c.GetUint("userID"))
	if err != nil {
		logrus.WithError(err).Error("monthly menu lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, views)
}
