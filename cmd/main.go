package main

import (
	"github.com/sirupsen/logrus"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/routes"
	"github.com/isil-ada/yemekhane-backend/services"
)

func main() {
	if err := config.Load(); err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}
	config.InitDB()
	services.InitS3()

	r := routes.SetupRouter()
	logrus.Infof("Server running on port %s", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
