package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/config"
)

const profileUploadDir = "uploads/profiles"

var s3Client *s3.Client

// InitS3 sets up the S3 backend when a bucket is configured. Without one,
// pictures go to the local public directory and are served statically.
func InitS3() {
	if config.App.S3Bucket == "" {
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(config.App.S3Region))
	if err != nil {
		logrus.Fatalf("Unable to load AWS config for S3: %v", err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// SaveProfilePicture stores the uploaded image and records its path on the
// user row. The previous picture is deleted best-effort: a failed delete is
// logged, not surfaced.
func SaveProfilePicture(userID uint, src io.Reader, ext, contentType string) (string, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("user_%d_%d%s", userID, time.Now().UnixNano(), ext)

	var storedPath string
	if s3Client != nil {
		storedPath, err = uploadToS3(filename, contentType, src)
	} else {
		storedPath, err = writeToDisk(filename, src)
	}
	if err != nil {
		return "", err
	}

	oldPath := user.ProfilePicturePath
	user.ProfilePicturePath = &storedPath
	if err := config.DB.Save(user).Error; err != nil {
		return "", err
	}

	deleteStoredPicture(oldPath)
	return storedPath, nil
}

// RemoveProfilePicture clears the user's picture column and deletes the
// stored file best-effort.
func RemoveProfilePicture(userID uint) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	oldPath := user.ProfilePicturePath
	user.ProfilePicturePath = nil
	if err := config.DB.Model(user).Update("profile_picture_path", nil).Error; err != nil {
		return err
	}

	deleteStoredPicture(oldPath)
	return nil
}

func writeToDisk(filename string, src io.Reader) (string, error) {
	dir := filepath.Join(config.App.PublicDir, profileUploadDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/" + profileUploadDir + "/" + filename, nil
}

func uploadToS3(filename, contentType string, src io.Reader) (string, error) {
	key := profileUploadDir + "/" + filename
	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(config.App.S3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", config.App.S3Bucket, config.App.S3Region, key), nil
}

func deleteStoredPicture(path *string) {
	if path == nil || *path == "" {
		return
	}

	if strings.HasPrefix(*path, "/"+profileUploadDir+"/") {
		full := filepath.Join(config.App.PublicDir, filepath.FromSlash(strings.TrimPrefix(*path, "/")))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			logrus.WithField("path", full).Warnf("old picture delete failed: %v", err)
		}
		return
	}

	if s3Client != nil {
		if idx := strings.Index(*path, profileUploadDir+"/"); idx >= 0 {
			key := (*path)[idx:]
			_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
				Bucket: aws.String(config.App.S3Bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				logrus.WithField("key", key).Warnf("old picture delete failed: %v", err)
			}
		}
	}
}
