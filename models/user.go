package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name               string `gorm:"not null"`
	Username           string `gorm:"uniqueIndex;not null"`
	Email              string `gorm:"uniqueIndex;not null"`
	PasswordHash       string `gorm:"not null"`
	Role               string `gorm:"not null;default:user"`
	ProfilePicturePath *string
}
