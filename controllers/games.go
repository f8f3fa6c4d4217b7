package controllers

import (
	"errors"
	"net/http"
	"strconv"

	models "github.com/Fares2411/FaresGames/models/postgres"
	"github.com/Fares2411/FaresGames/services/catalog"
	"github.com/Fares2411/FaresGames/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GameRow is the full projection of a game row in list responses.
type GameRow struct {
	GameID              int      `json:"game_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	CoverPhoto          string   `json:"cover_photo"`
	OverallCriticsCount *int     `json:"overall_critics_count"`
	OverallCriticsScore *float64 `json:"overall_critics_score"`
	OverallPlayersCount *int     `json:"overall_players_count"`
	OverallPlayersScore *float64 `json:"overall_players_score"`
	OverallMobyScore    *float64 `json:"overall_moby_score"`
}

// GameSummary is the reduced projection used by search and filter results.
type GameSummary struct {
	GameID              int      `json:"game_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	CoverPhoto          string   `json:"cover_photo"`
	OverallMobyScore    *float64 `json:"overall_moby_score"`
	OverallCriticsScore *float64 `json:"overall_critics_score"`
	OverallPlayersScore *float64 `json:"overall_players_score"`
}

// @Summary List all games
// @Tags games
// @Produce json
// @Param limit query int false "Maximum rows (1-500)" default(252)
// @Success 200 {object} object{games=[]controllers.GameRow,total=integer,limit=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games [get]
func GetAllGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Limit int `form:"limit,default=252" binding:"min=1,max=500"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var games []GameRow
		err := db.Raw(`SELECT
                game_id,
                title,
                description,
                cover_photo,
                overall_critics_count,
                overall_critics_score,
                overall_players_count,
                overall_players_score,
                overall_moby_score
            FROM games
            ORDER BY title
            LIMIT ?`, q.Limit).Scan(&games).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}

		var total int64
		if err := db.Model(&models.Game{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"games": games,
			"total": total,
			"limit": q.Limit,
		})
	}
}

// @Summary Search games by title
// @Tags games
// @Produce json
// @Param q query string true "Title fragment"
// @Success 200 {object} object{games=[]controllers.GameSummary,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/search [get]
func SearchGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Query string `form:"q" binding:"required,min=1"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var games []GameSummary
		err := db.Raw(`SELECT
                game_id,
                title,
                description,
                cover_photo,
                overall_moby_score
            FROM games
            WHERE title ILIKE ?
            ORDER BY title
            LIMIT 50`, "%"+q.Query+"%").Scan(&games).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"games": games,
			"count": len(games),
		})
	}
}

// ReleaseRow is one resolved release in the game detail response.
type ReleaseRow struct {
	Developer    string  `json:"developer"`
	Publisher    string  `json:"publisher"`
	ReleaseDate  *string `json:"release_date"`
	PlatformName string  `json:"platform_name"`
}

// GamePlatformRow is one per-platform score breakdown in the game detail
// response.
type GamePlatformRow struct {
	PlatformName string   `json:"platform_name"`
	CriticsScore *float64 `json:"critics_score"`
	PlayersScore *float64 `json:"players_score"`
	MobyScore    *float64 `json:"moby_score"`
}

// GameAttributeRow is one classification tag in the game detail response.
type GameAttributeRow struct {
	AttributeType string `json:"attribute_type"`
	AttributeName string `json:"attribute_name"`
}

// @Summary Get game details
// @Description Returns the game row plus its platforms, attributes and resolved releases.
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} object{game=controllers.GameRow,platforms=[]controllers.GamePlatformRow,attributes=[]controllers.GameAttributeRow,releases=[]controllers.ReleaseRow}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id} [get]
func GetGameDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, err := strconv.Atoi(c.Param("game_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		game, err := utils.CheckGameExists(db, gameID)
		if err != nil {
			if errors.Is(err, utils.ErrGameNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
			}
			return
		}

		var gamePlatforms []models.GamePlatform
		if err := db.Where("game_id = ?", gameID).Find(&gamePlatforms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
			return
		}
		platforms := make([]GamePlatformRow, 0, len(gamePlatforms))
		for _, gp := range gamePlatforms {
			platforms = append(platforms, GamePlatformRow{
				PlatformName: gp.PlatformName,
				CriticsScore: gp.CriticsScore,
				PlayersScore: gp.PlayersScore,
				MobyScore:    gp.MobyScore,
			})
		}

		var gameAttributes []models.GameAttribute
		if err := db.Where("game_id = ?", gameID).Find(&gameAttributes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attributes"})
			return
		}
		attributes := make([]GameAttributeRow, 0, len(gameAttributes))
		for _, ga := range gameAttributes {
			attributes = append(attributes, GameAttributeRow{
				AttributeType: ga.AttributeType,
				AttributeName: ga.AttributeName,
			})
		}

		var releases []ReleaseRow
		err = db.Raw(`SELECT DISTINCT
                dc.company_name AS developer,
                pc.company_name AS publisher,
                r.release_date,
                r.platform_name
            FROM releases r
            JOIN companies dc ON r.developer_company_id = dc.company_id
            JOIN companies pc ON r.publisher_company_id = pc.company_id
            WHERE r.game_id = ?`, gameID).Scan(&releases).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch releases"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"game": GameRow{
				GameID:              game.GameID,
				Title:               game.Title,
				Description:         game.Description,
				CoverPhoto:          game.CoverPhoto,
				OverallCriticsCount: game.OverallCriticsCount,
				OverallCriticsScore: game.OverallCriticsScore,
				OverallPlayersCount: game.OverallPlayersCount,
				OverallPlayersScore: game.OverallPlayersScore,
				OverallMobyScore:    game.OverallMobyScore,
			},
			"platforms":  platforms,
			"attributes": attributes,
			"releases":   releases,
		})
	}
}

// GameFilterQuery binds the optional search filters. Enum membership of
// sort_by is enforced here, before the composer runs.
type GameFilterQuery struct {
	Genre     string `form:"genre" json:"genre"`
	Platform  string `form:"platform" json:"platform"`
	Publisher string `form:"publisher" json:"publisher"`
	Developer string `form:"developer" json:"developer"`
	Year      int    `form:"year" json:"year"`
	SortBy    string `form:"sort_by,default=moby_score" json:"sort_by" binding:"omitempty,oneof=moby_score title critics_score players_score"`
	Limit     int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=1000"`
}

// @Summary Filter games by criteria
// @Description Filters games by any combination of genre, platform, publisher, developer and release year.
// @Tags games
// @Produce json
// @Param genre query string false "Genre name"
// @Param platform query string false "Platform name"
// @Param publisher query string false "Publisher company name"
// @Param developer query string false "Developer company name"
// @Param year query int false "Release year"
// @Param sort_by query string false "Sort key" Enums(moby_score, title, critics_score, players_score)
// @Param limit query int false "Maximum rows (1-1000)"
// @Success 200 {object} object{games=[]controllers.GameSummary,count=integer,filters=controllers.GameFilterQuery}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/filter/by-criteria [get]
func GetGamesByFilter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q GameFilterQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query, args := catalog.BuildFilteredGamesQuery(catalog.GameFilter{
			Genre:     q.Genre,
			Platform:  q.Platform,
			Publisher: q.Publisher,
			Developer: q.Developer,
			Year:      q.Year,
			SortBy:    catalog.SortKey(q.SortBy),
			Limit:     q.Limit,
		})

		var games []GameSummary
		if err := db.Raw(query, args...).Scan(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter games"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"games":   games,
			"count":   len(games),
			"filters": q,
		})
	}
}

// @Summary List the platforms of a game
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} object{game_id=integer,platforms=[]string,count=integer}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id}/platforms [get]
func GetGamePlatforms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, err := strconv.Atoi(c.Param("game_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		var platforms []string
		err = db.Model(&models.GamePlatform{}).
			Distinct().
			Where("game_id = ?", gameID).
			Order("platform_name").
			Pluck("platform_name", &platforms).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
			return
		}

		if len(platforms) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No platforms found for this game"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"game_id":   gameID,
			"platforms": platforms,
			"count":     len(platforms),
		})
	}
}
