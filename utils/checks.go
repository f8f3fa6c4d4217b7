package utils

import (
	"errors"

	models "github.com/Fares2411/FaresGames/models/postgres"

	"gorm.io/gorm"
)

// Function to check if a user exists
func CheckUserExists(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	result := db.Where("email_address = ?", email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// Function to check if a game exists
func CheckGameExists(db *gorm.DB, gameID int) (*models.Game, error) {
	var game models.Game
	result := db.Where("game_id = ?", gameID).First(&game)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, result.Error
	}

	return &game, nil
}

// Check if a game is released on the given platform
func CheckGamePlatformExists(db *gorm.DB, gameID int, platformName string) (*models.GamePlatform, error) {
	var gamePlatform models.GamePlatform
	result := db.Where("game_id = ? AND platform_name = ?", gameID, platformName).First(&gamePlatform)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGamePlatformNotFound
		}
		return nil, result.Error
	}

	return &gamePlatform, nil
}
