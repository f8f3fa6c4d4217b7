package routes

import (
	"github.com/Fares2411/FaresGames/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", controllers.Root)

	// API routes group
	api := router.Group("/api")

	api.GET("/health", controllers.HealthCheck(db))

	users := api.Group("/users")
	{
		users.POST("/register", controllers.RegisterUser(db))

		users.POST("/verify-password", controllers.VerifyPassword(db))

		users.GET("/:email", controllers.GetUser(db))
	}

	games := api.Group("/games")
	{
		games.GET("", controllers.GetAllGames(db))

		games.GET("/search", controllers.SearchGames(db))

		games.GET("/filter/by-criteria", controllers.GetGamesByFilter(db))

		games.GET("/:game_id", controllers.GetGameDetails(db))

		games.GET("/:game_id/platforms", controllers.GetGamePlatforms(db))
	}

	ratings := api.Group("/ratings")
	{
		ratings.POST("", controllers.AddRating(db))

		ratings.DELETE("", controllers.DeleteRating(db))

		ratings.GET("/user/:email", controllers.GetUserRatings(db))
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/top-games", controllers.GetTopGames(db))

		analytics.GET("/top-games-by-moby", controllers.GetTopGamesByMoby(db))

		analytics.GET("/top-developers", controllers.GetTopDevelopers(db))

		analytics.GET("/dream-game", controllers.GetDreamGame(db))

		analytics.GET("/top-directors", controllers.GetTopDirectors(db))

		analytics.GET("/top-collaborations", controllers.GetTopCollaborations(db))

		analytics.GET("/platform-stats", controllers.GetPlatformStats(db))
	}

	metadata := api.Group("/metadata")
	{
		metadata.GET("/platforms", controllers.GetAllPlatforms(db))

		metadata.GET("/genres", controllers.GetAllGenres(db))

		metadata.GET("/settings", controllers.GetAllSettings(db))

		metadata.GET("/developers", controllers.GetAllDevelopers(db))

		metadata.GET("/publishers", controllers.GetAllPublishers(db))

		metadata.GET("/games", controllers.GetAllGamesList(db))

		metadata.GET("/years", controllers.GetReleaseYears(db))
	}
}
