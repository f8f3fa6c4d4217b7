package controllers

import (
	"errors"
	"net/http"

	models "github.com/Fares2411/FaresGames/models/postgres"
	"github.com/Fares2411/FaresGames/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RatingRequest is the payload for submitting a rating. Rating is a pointer
// so that an explicit 0.0 passes the required check.
type RatingRequest struct {
	UserEmail    string   `json:"user_email" binding:"required,email"`
	GameID       int      `json:"game_id" binding:"required"`
	PlatformName string   `json:"platform_name" binding:"required"`
	Rating       *float64 `json:"rating" binding:"required,gte=0,lte=5"`
}

// RatingResponse is the enriched view of a stored rating.
type RatingResponse struct {
	UserEmail    string  `json:"user_email"`
	GameID       int     `json:"game_id"`
	GameTitle    string  `json:"game_title"`
	PlatformName string  `json:"platform_name"`
	Rating       float64 `json:"rating"`
}

// @Summary Submit a rating
// @Description Upserts the rating for (user, game, platform): a second submission for the same key overwrites the first.
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body controllers.RatingRequest true "Rating to store"
// @Success 201 {object} controllers.RatingResponse
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/ratings [post]
func AddRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RatingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := utils.CheckUserExists(db, req.UserEmail); err != nil {
			if errors.Is(err, utils.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found. Please register first."})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store rating"})
			}
			return
		}

		if _, err := utils.CheckGamePlatformExists(db, req.GameID, req.PlatformName); err != nil {
			if errors.Is(err, utils.ErrGamePlatformNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game-Platform combination not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store rating"})
			}
			return
		}

		if err := upsertRating(db, &req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store rating"})
			return
		}

		game, err := utils.CheckGameExists(db, req.GameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game title"})
			return
		}

		c.JSON(http.StatusCreated, RatingResponse{
			UserEmail:    req.UserEmail,
			GameID:       req.GameID,
			GameTitle:    game.Title,
			PlatformName: req.PlatformName,
			Rating:       *req.Rating,
		})
	}
}

// upsertRating updates the existing rating row for the composite key, or
// inserts a new one. A concurrent duplicate insert loses against the
// composite primary key and is retried as an update.
func upsertRating(db *gorm.DB, req *RatingRequest) error {
	var existing models.UserGamePlatform
	err := db.Where("user_email_address = ? AND game_id = ? AND platform_name = ?",
		req.UserEmail, req.GameID, req.PlatformName).First(&existing).Error

	if err == nil {
		return updateRating(db, req)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rating := models.UserGamePlatform{
		UserEmailAddress: req.UserEmail,
		GameID:           req.GameID,
		PlatformName:     req.PlatformName,
		Rating:           *req.Rating,
	}
	if err := db.Create(&rating).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return updateRating(db, req)
		}
		return err
	}
	return nil
}

func updateRating(db *gorm.DB, req *RatingRequest) error {
	return db.Model(&models.UserGamePlatform{}).
		Where("user_email_address = ? AND game_id = ? AND platform_name = ?",
			req.UserEmail, req.GameID, req.PlatformName).
		Update("rating", *req.Rating).Error
}

// @Summary List a user's ratings
// @Tags ratings
// @Produce json
// @Param email path string true "User email address"
// @Success 200 {array} controllers.RatingResponse
// @Failure 500 {object} object{error=string}
// @Router /api/ratings/user/{email} [get]
func GetUserRatings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var rows []struct {
			UserEmailAddress string
			GameID           int
			Title            string
			PlatformName     string
			Rating           float64
		}
		err := db.Raw(`SELECT
                ugp.user_email_address,
                ugp.game_id,
                g.title,
                ugp.platform_name,
                ugp.rating
            FROM user_game_platforms ugp
            JOIN games g ON ugp.game_id = g.game_id
            WHERE ugp.user_email_address = ?
            ORDER BY g.title`, email).Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
			return
		}

		ratings := make([]RatingResponse, 0, len(rows))
		for _, row := range rows {
			ratings = append(ratings, RatingResponse{
				UserEmail:    row.UserEmailAddress,
				GameID:       row.GameID,
				GameTitle:    row.Title,
				PlatformName: row.PlatformName,
				Rating:       row.Rating,
			})
		}

		c.JSON(http.StatusOK, ratings)
	}
}

// @Summary Delete a rating
// @Tags ratings
// @Produce json
// @Param user_email query string true "User email address"
// @Param game_id query int true "Game ID"
// @Param platform_name query string true "Platform name"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/ratings [delete]
func DeleteRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail    string `form:"user_email" binding:"required,email"`
			GameID       int    `form:"game_id" binding:"required"`
			PlatformName string `form:"platform_name" binding:"required"`
		}
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Where("user_email_address = ? AND game_id = ? AND platform_name = ?",
			req.UserEmail, req.GameID, req.PlatformName).
			Delete(&models.UserGamePlatform{}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
	}
}
