package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/models"
	"github.com/isil-ada/yemekhane-backend/utils"
)

var (
	ErrUserExists = errors.New("email or username already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures don't reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func RegisterUser(name, username, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// the unique indexes back up the pre-check against concurrent registrations
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
