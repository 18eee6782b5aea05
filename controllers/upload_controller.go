package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/services"
)

const maxPictureSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

func UploadProfilePicture(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPictureSize+4096)

	file, err := c.FormFile("profile_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image uploaded."})
		return
	}

	if file.Size > maxPictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image must be smaller than 5MB."})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files can be uploaded (jpeg, jpg, png, gif)."})
		return
	}
	if declared := file.Header.Get("Content-Type"); declared != "" && !strings.HasPrefix(declared, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files can be uploaded (jpeg, jpg, png, gif)."})
		return
	}

	src, err := file.Open()
	if err != nil {
		logrus.WithError(err).Error("open uploaded file failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	defer src.Close()

	path, err := services.SaveProfilePicture(c.GetUint("userID"), src, ext, contentType)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		logrus.WithError(err).Error("profile picture upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated.", "profile_picture_path": path})
}

func RemoveProfilePicture(c *gin.Context) {
	err := services.RemoveProfilePicture(c.GetUint("userID"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		logrus.WithError(err).Error("profile picture removal failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture removed."})
}
