package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/services"
)

type FavoriteInput struct {
	DishID uint `json:"dish_id" binding:"required"`
}

func AddFavorite(c *gin.Context) {
	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dish ID is required."})
		return
	}

	err := services.AddFavorite(c.GetUint("userID"), input.DishID)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dish not found."})
			return
		}
		logrus.WithError(err).Error("add favorite failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites."})
}

func RemoveFavorite(c *gin.Context) {
	dishID, err := strconv.ParseUint(c.Param("dishId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid dish ID."})
		return
	}

	err = services.RemoveFavorite(c.GetUint("userID"), uint(dishID))
	if err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Favorite not found."})
			return
		}
		logrus.WithError(err).Error("remove favorite failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites."})
}

func ListFavorites(c *gin.Context) {
	favorites, err := services.ListFavorites(c.GetUint("userID"))
	if err != nil {
		logrus.WithError(err).Error("list favorites failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, favorites)
}
