package services

import (
	"time"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
)

type ComplaintView struct {
	ComplaintID uint      `json:"complaint_id"`
	MealID      *uint     `json:"meal_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitComplaint files a free-form complaint; mealID is optional.
func SubmitComplaint(userID uint, mealID *uint, title, description string) (*models.Complaint, error) {
	complaint := models.Complaint{
		UserID:      userID,
		MealID:      mealID,
		Title:       title,
		Description: description,
	}
	if err := config.DB.Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns the user's own complaints, newest first.
func ListComplaints(userID uint) ([]ComplaintView, error) {
	var complaints []models.Complaint
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}

	views := make([]ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, ComplaintView{
			ComplaintID: c.ID,
			MealID:      c.MealID,
			Title:       c.Title,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
	}
	return views, nil
}
