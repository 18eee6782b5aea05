package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/isil-ada/yemekhane-backend/config"
	"github.com/isil-ada/yemekhane-backend/controllers"
	"github.com/isil-ada/yemekhane-backend/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORS(config.App.CORSOrigins))

	// uploaded profile pictures are served statically
	r.Static("/uploads", filepath.Join(config.App.PublicDir, "uploads"))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Yemekhane App API is running"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/change-password", middlewares.RequireAuth(), controllers.ChangePassword)
		auth.PUT("/update-profile", middlewares.RequireAuth(), controllers.UpdateProfile)
	}

	api := r.Group("/api")
	{
		// public but personalized when a valid token is present
		api.GET("/lunch", middlewares.OptionalAuth(), controllers.GetLunchMenu)
		api.GET("/lunch/month", middlewares.OptionalAuth(), controllers.GetMonthlyLunchMenu)
		api.GET("/dinner", middlewares.OptionalAuth(), controllers.GetDinnerMenu)
		api.GET("/dinner/month", middlewares.OptionalAuth(), controllers.GetMonthlyDinnerMenu)

		api.GET("/comments/:mealId", controllers.GetComments)

		authed := api.Group("")
		authed.Use(middlewares.RequireAuth())
		{
			authed.GET("/favorites", controllers.ListFavorites)
			authed.POST("/favorites", controllers.AddFavorite)
			authed.DELETE("/favorites/:dishId", controllers.RemoveFavorite)

			authed.POST("/comments", controllers.PostComment)
			authed.POST("/rate", controllers.RateMeal)

			authed.POST("/complaints", controllers.SubmitComplaint)
			authed.GET("/complaints", controllers.ListComplaints)

			authed.POST("/upload-profile-picture", controllers.UploadProfilePicture)
			authed.DELETE("/remove-profile-picture", controllers.RemoveProfilePicture)
		}
	}

	return r
}
