package postgres

import (
	"errors"

	"gorm.io/gorm"
)

/*
 * 'UserGamePlatform' is one user rating for a game on a platform, keyed by
 * the composite (user_email_address, game_id, platform_name). A second
 * submission for the same key overwrites the first; the primary key is the
 * backstop that turns a racing duplicate insert into a failure retried as
 * an update.
 */
type UserGamePlatform struct {
	UserEmailAddress string  `gorm:"primaryKey;size:100"`
	GameID           int     `gorm:"primaryKey"`
	PlatformName     string  `gorm:"primaryKey;size:100"`
	Rating           float64 `gorm:"type:numeric(2,1);not null"`

	User User `gorm:"foreignKey:UserEmailAddress"`
	Game Game `gorm:"foreignKey:GameID"`
}

// GORM hook to ensure the rating stays inside the 0.0-5.0 scale
func (r *UserGamePlatform) BeforeSave(tx *gorm.DB) error {
	if r.Rating < 0.0 || r.Rating > 5.0 {
		return errors.New("rating must be between 0.0 and 5.0")
	}
	return nil
}
