package controllers

import (
	"net/http"

	"github.com/Fares2411/FaresGames/services/catalog"
	"github.com/Fares2411/FaresGames/services/dreamgame"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TopGameRow is one entry of the top rated games listing.
type TopGameRow struct {
	GameID      int      `json:"game_id"`
	Title       string   `json:"title"`
	CoverPhoto  string   `json:"cover_photo"`
	Score       *float64 `json:"score"`
	RatingCount *int     `json:"rating_count"`
}

// @Summary Top rated games
// @Description The top rated games by critics or players, optionally per genre and release year.
// @Tags analytics
// @Produce json
// @Param genre query string false "Genre name"
// @Param year query int false "Release year"
// @Param rating_type query string false "Rating source" Enums(critics, players) default(critics)
// @Param limit query int false "Maximum rows (1-50)" default(10)
// @Success 200 {object} object{games=[]controllers.TopGameRow,rating_type=string,genre=string,year=integer,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/top-games [get]
func GetTopGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Genre      string `form:"genre"`
			Year       int    `form:"year"`
			RatingType string `form:"rating_type,default=critics" binding:"omitempty,oneof=critics players"`
			Limit      int    `form:"limit,default=10" binding:"min=1,max=50"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query, args := catalog.BuildTopGamesQuery(q.Genre, q.Year, catalog.RatingType(q.RatingType), q.Limit)

		var games []TopGameRow
		if err := db.Raw(query, args...).Scan(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"games":       games,
			"rating_type": q.RatingType,
			"genre":       q.Genre,
			"year":        q.Year,
			"count":       len(games),
		})
	}
}

// @Summary Top games by Moby score
// @Tags analytics
// @Produce json
// @Param genre query string false "Genre name"
// @Param setting query string false "Setting name"
// @Param limit query int false "Maximum rows (1-20)" default(5)
// @Success 200 {object} object{games=[]controllers.GameSummary,genre=string,setting=string,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/top-games-by-moby [get]
func GetTopGamesByMoby(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Genre   string `form:"genre"`
			Setting string `form:"setting"`
			Limit   int    `form:"limit,default=5" binding:"min=1,max=20"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query, args := catalog.BuildTopGamesByMobyQuery(q.Genre, q.Setting, q.Limit)

		var games []GameSummary
		if err := db.Raw(query, args...).Scan(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"games":   games,
			"genre":   q.Genre,
			"setting": q.Setting,
			"count":   len(games),
		})
	}
}

// DeveloperRow is one entry of the top developers listing.
type DeveloperRow struct {
	CompanyName     string   `json:"company_name"`
	Country         string   `json:"country"`
	AvgCriticsScore *float64 `json:"avg_critics_score"`
	GameCount       int      `json:"game_count"`
}

// @Summary Top development companies
// @Description Development companies ranked by the critics weighted average over their games.
// @Tags analytics
// @Produce json
// @Param genre query string false "Genre name"
// @Param limit query int false "Maximum rows (1-20)" default(5)
// @Success 200 {object} object{developers=[]controllers.DeveloperRow,genre=string,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/top-developers [get]
func GetTopDevelopers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Genre string `form:"genre"`
			Limit int    `form:"limit,default=5" binding:"min=1,max=20"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query, args := catalog.BuildTopDevelopersQuery(q.Genre, q.Limit)

		var developers []DeveloperRow
		if err := db.Raw(query, args...).Scan(&developers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top developers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"developers": developers,
			"genre":      q.Genre,
			"count":      len(developers),
		})
	}
}

// @Summary Dream game
// @Description The perfect game specs synthesized from player ratings across every attribute axis.
// @Tags analytics
// @Produce json
// @Success 200 {object} dreamgame.Result
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/dream-game [get]
func GetDreamGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := dreamgame.Resolve(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dream game"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DirectorRow is one entry of the top directors listing.
type DirectorRow struct {
	PersonID     int    `json:"person_id"`
	DirectorName string `json:"director_name"`
	GameCount    int    `json:"game_count"`
	Games        string `json:"games"`
}

// @Summary Top directors by volume
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows (1-20)" default(5)
// @Success 200 {object} object{directors=[]controllers.DirectorRow,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/top-directors [get]
func GetTopDirectors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Limit int `form:"limit,default=5" binding:"min=1,max=20"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var directors []DirectorRow
		err := db.Raw(`SELECT
                p.person_id,
                p.name AS director_name,
                COUNT(DISTINCT gpc.game_id) AS game_count,
                string_agg(DISTINCT g.title, ', ') AS games
            FROM people p
            JOIN game_person_credits gpc ON p.person_id = gpc.person_id
            JOIN games g ON gpc.game_id = g.game_id
            GROUP BY p.person_id, p.name
            ORDER BY game_count DESC
            LIMIT ?`, q.Limit).Scan(&directors).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top directors"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"directors": directors,
			"count":     len(directors),
		})
	}
}

// CollaborationRow is one director/developer pair with their shared games.
type CollaborationRow struct {
	DirectorName       string `json:"director_name"`
	DeveloperName      string `json:"developer_name"`
	CollaborationCount int    `json:"collaboration_count"`
	Games              string `json:"games"`
}

// @Summary Top director/developer collaborations
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows (1-20)" default(5)
// @Success 200 {object} object{collaborations=[]controllers.CollaborationRow,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/top-collaborations [get]
func GetTopCollaborations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Limit int `form:"limit,default=5" binding:"min=1,max=20"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The DISTINCT subquery keeps multi-release games from inflating
		// the collaboration counts.
		var collaborations []CollaborationRow
		err := db.Raw(`SELECT
                p.name AS director_name,
                dc.company_name AS developer_name,
                COUNT(DISTINCT g.game_id) AS collaboration_count,
                string_agg(DISTINCT g.title, ', ') AS games
            FROM people p
            JOIN game_person_credits gpc ON p.person_id = gpc.person_id
            JOIN games g ON gpc.game_id = g.game_id
            JOIN (
                SELECT DISTINCT game_id, developer_company_id
                FROM releases
            ) r ON g.game_id = r.game_id
            JOIN companies dc ON r.developer_company_id = dc.company_id
            GROUP BY p.name, dc.company_name
            ORDER BY collaboration_count DESC
            LIMIT ?`, q.Limit).Scan(&collaborations).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collaborations"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"collaborations": collaborations,
			"count":          len(collaborations),
		})
	}
}

// PlatformStatsRow is one platform with its game count and score averages.
type PlatformStatsRow struct {
	PlatformName    string   `json:"platform_name"`
	GameCount       int      `json:"game_count"`
	AvgCriticsScore *float64 `json:"avg_critics_score"`
	AvgPlayersScore *float64 `json:"avg_players_score"`
	AvgMobyScore    *float64 `json:"avg_moby_score"`
}

// @Summary Platform statistics
// @Description Number of distinct games per platform with weighted critics/players averages.
// @Tags analytics
// @Produce json
// @Success 200 {object} object{platforms=[]controllers.PlatformStatsRow,count=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/analytics/platform-stats [get]
func GetPlatformStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var platforms []PlatformStatsRow
		err := db.Raw(`SELECT
                gp.platform_name,
                COUNT(DISTINCT gp.game_id) AS game_count,
                SUM(g.overall_critics_score * g.overall_critics_count) / NULLIF(SUM(g.overall_critics_count), 0) AS avg_critics_score,
                SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_players_score,
                AVG(g.overall_moby_score) AS avg_moby_score
            FROM game_platforms gp
            JOIN games g ON gp.game_id = g.game_id
            GROUP BY gp.platform_name
            ORDER BY game_count DESC, gp.platform_name`).Scan(&platforms).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platform stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"platforms": platforms,
			"count":     len(platforms),
		})
	}
}
