package controllers

import (
	"net/http"

	models "github.com/Fares2411/FaresGames/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Metadata endpoints back the frontend dropdowns: distinct value lists,
// nothing more.

// @Summary List all platforms
// @Tags metadata
// @Produce json
// @Success 200 {object} object{platforms=[]string,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/platforms [get]
func GetAllPlatforms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var platforms []string
		err := db.Model(&models.Platform{}).
			Distinct().
			Order("platform_name").
			Pluck("platform_name", &platforms).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"platforms": platforms, "count": len(platforms)})
	}
}

// attributeNames lists the distinct names of one attribute type.
func attributeNames(db *gorm.DB, attributeType string) ([]string, error) {
	var names []string
	err := db.Model(&models.Attribute{}).
		Distinct().
		Where("type = ?", attributeType).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

// @Summary List all genres
// @Tags metadata
// @Produce json
// @Success 200 {object} object{genres=[]string,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/genres [get]
func GetAllGenres(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		genres, err := attributeNames(db, "Genre")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genres"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
	}
}

// @Summary List all settings
// @Tags metadata
// @Produce json
// @Success 200 {object} object{settings=[]string,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/settings [get]
func GetAllSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := attributeNames(db, "Setting")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"settings": settings, "count": len(settings)})
	}
}

// @Summary List all development companies
// @Tags metadata
// @Produce json
// @Success 200 {object} object{developers=[]string,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/developers [get]
func GetAllDevelopers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var developers []string
		err := db.Raw(`SELECT DISTINCT c.company_name
            FROM companies c
            JOIN releases r ON c.company_id = r.developer_company_id
            ORDER BY c.company_name`).Scan(&developers).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch developers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"developers": developers, "count": len(developers)})
	}
}

// @Summary List all publishing companies
// @Tags metadata
// @Produce json
// @Success 200 {object} object{publishers=[]string,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/publishers [get]
func GetAllPublishers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var publishers []string
		err := db.Raw(`SELECT DISTINCT c.company_name
            FROM companies c
            JOIN releases r ON c.company_id = r.publisher_company_id
            ORDER BY c.company_name`).Scan(&publishers).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publishers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"publishers": publishers, "count": len(publishers)})
	}
}

// GameListItem is the minimal id/title pair for dropdowns.
type GameListItem struct {
	GameID int    `json:"game_id"`
	Title  string `json:"title"`
}

// @Summary List all games (minimal)
// @Tags metadata
// @Produce json
// @Success 200 {object} object{games=[]controllers.GameListItem,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/games [get]
func GetAllGamesList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []GameListItem
		err := db.Raw(`SELECT game_id, title
            FROM games
            ORDER BY title
            LIMIT ?`, 1000).Scan(&games).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
	}
}

// @Summary List all release years
// @Tags metadata
// @Produce json
// @Success 200 {object} object{years=[]integer,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/metadata/years [get]
func GetReleaseYears(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var years []int
		err := db.Raw(`SELECT DISTINCT EXTRACT(YEAR FROM release_date) AS year
            FROM releases
            WHERE release_date IS NOT NULL
            ORDER BY year DESC`).Scan(&years).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch years"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"years": years, "count": len(years)})
	}
}
