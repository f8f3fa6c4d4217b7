package controllers

import (
	"net/http"
	"os"

	models "github.com/Fares2411/FaresGames/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Service info
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string,database=string,status=string}
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "FaresGames API",
		"database": os.Getenv("POSTGRES_DATABASE"),
		"host":     os.Getenv("POSTGRES_HOST"),
		"status":   "running",
	})
}

// @Summary Health check
// @Description Probes the database by counting catalog games.
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,database=string,games_count=integer}
// @Router /api/health [get]
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"database":    "connected",
			"games_count": count,
		})
	}
}
