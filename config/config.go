package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/isil-ada/yemekhane-backend/models"
)

type AppConfig struct {
	Port        string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	JWTSecret   string
	PublicDir   string
	CORSOrigins []string
	S3Bucket    string
	S3Region    string
}

var App *AppConfig

var DB *gorm.DB

// Load reads configuration from .env (when present) and the environment.
// The token secret has no default: startup fails without it.
func Load() error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "yemekhane")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("CORS_ORIGINS", "*")

	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	App = &AppConfig{
		Port:        viper.GetString("PORT"),
		DBHost:      viper.GetString("DB_HOST"),
		DBUser:      viper.GetString("DB_USER"),
		DBPassword:  viper.GetString("DB_PASSWORD"),
		DBName:      viper.GetString("DB_NAME"),
		DBPort:      viper.GetString("DB_PORT"),
		JWTSecret:   secret,
		PublicDir:   viper.GetString("PUBLIC_DIR"),
		CORSOrigins: strings.Split(viper.GetString("CORS_ORIGINS"), ","),
		S3Bucket:    viper.GetString("S3_BUCKET"),
		S3Region:    viper.GetString("S3_REGION"),
	}
	return nil
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		App.DBHost,
		App.DBUser,
		App.DBPassword,
		App.DBName,
		App.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate is separate from InitDB so tests can run it against their own DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Dish{},
		&models.MealDish{},
		&models.Favorite{},
		&models.Rating{},
		&models.Comment{},
		&models.Complaint{},
	)
}
