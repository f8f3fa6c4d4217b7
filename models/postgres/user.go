package postgres

import (
	"time"
)

/*
 * 'User' contains the blueprint definition of a registered user.
 *
 * Password is stored and compared as plaintext. This mirrors the stored
 * data format the service inherited; switching to hashes requires a column
 * migration.
 */
type User struct {
	EmailAddress string     `gorm:"primaryKey;size:100;not null"`
	UserName     string     `gorm:"size:50;not null;uniqueIndex"`
	Birthdate    *time.Time `gorm:"type:date"`
	Country      string     `gorm:"size:100"`
	Password     string     `gorm:"size:255;not null"`

	// Relationship with the user's ratings
	Ratings []UserGamePlatform `gorm:"foreignKey:UserEmailAddress;constraint:OnDelete:CASCADE"`
}
