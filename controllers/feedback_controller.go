package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/services"
)

type CommentInput struct {
	MealID      uint   `json:"meal_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

func PostComment(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal ID and comment text are required."})
		return
	}

	err := services.AddComment(c.GetUint("userID"), input.MealID, input.CommentText)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateComment) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already commented on this meal."})
			return
		}
		logrus.WithError(err).Error("post comment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added."})
}

func GetComments(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID."})
		return
	}

	comments, err := services.ListComments(uint(mealID))
	if err != nil {
		logrus.WithError(err).Error("list comments failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, comments)
}

type RateInput struct {
	MealID uint `json:"meal_id" binding:"required"`
	Score  int  `json:"score" binding:"required"`
}

func RateMeal(c *gin.Context) {
	var input RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal ID and score are required."})
		return
	}

	summary, err := services.RateMeal(c.GetUint("userID"), input.MealID, input.Score)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Score must be between 1 and 5."})
		case errors.Is(err, services.ErrMealNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Meal not found."})
		default:
			logrus.WithError(err).Error("rate meal failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Rating saved.",
		"avg_rating":   summary.AvgRating,
		"rating_count": summary.RatingCount,
	})
}
