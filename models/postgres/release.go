package postgres

import "time"

// Company is referenced by role (developer or publisher) only through
// Release foreign keys, never typed directly.
type Company struct {
	CompanyID   int    `gorm:"primaryKey;autoIncrement"`
	CompanyName string `gorm:"size:255;not null;index"`
	Country     string `gorm:"size:100"`
}

/*
 * 'Release' is one publication of a game: same game, different platform,
 * date or companies. Because a game can have many releases, every aggregate
 * that joins releases to companies must reduce to DISTINCT
 * (game_id, company_id) pairs first or multi-release games double-count.
 */
type Release struct {
	ReleaseID          int        `gorm:"primaryKey;autoIncrement"`
	GameID             int        `gorm:"not null;index"`
	PlatformName       string     `gorm:"size:100;not null"`
	ReleaseDate        *time.Time `gorm:"type:date"`
	DeveloperCompanyID int        `gorm:"not null;index"`
	PublisherCompanyID int        `gorm:"not null;index"`

	DeveloperCompany Company `gorm:"foreignKey:DeveloperCompanyID"`
	PublisherCompany Company `gorm:"foreignKey:PublisherCompanyID"`
}
