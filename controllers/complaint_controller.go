package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/services"
)

type ComplaintInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	MealID      *uint  `json:"meal_id"`
}

func SubmitComplaint(c *gin.Context) {
	var input ComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required."})
		return
	}

	_, err := services.SubmitComplaint(c.GetUint("userID"), input.MealID, input.Title, input.Description)
	if err != nil {
		logrus.WithError(err).Error("submit complaint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Complaint submitted."})
}

func ListComplaints(c *gin.Context) {
	complaints, err := services.ListComplaints(c.GetUint("userID"))
	if err != nil {
		logrus.WithError(err).Error("list complaints failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, complaints)
}
