package postgres

// Platform is the list of known platform names, used for dropdowns.
type Platform struct {
	PlatformName string `gorm:"primaryKey;size:100"`
}

/*
 * 'GamePlatform' holds one row per platform a game is released on, with the
 * per-platform score breakdown. Its composite key is also the referential
 * target of user ratings.
 */
type GamePlatform struct {
	GameID       int    `gorm:"primaryKey"`
	PlatformName string `gorm:"primaryKey;size:100"`

	CriticsScore *float64 `gorm:"type:numeric(4,2)"`
	PlayersScore *float64 `gorm:"type:numeric(4,2)"`
	MobyScore    *float64 `gorm:"type:numeric(4,1)"`
}

// GamePlatformAttribute stores per-platform spec-sheet attributes
// (Business Model, Media Type, Input Devices, ...).
type GamePlatformAttribute struct {
	GameID        int    `gorm:"primaryKey"`
	PlatformName  string `gorm:"primaryKey;size:100"`
	AttributeType string `gorm:"primaryKey;size:100"`
	AttributeName string `gorm:"primaryKey;size:100"`
}

/*
 * 'MaturityRatingGamePlatform' records the maturity label a rating
 * organization assigned to a game on a platform. The same game can carry
 * one label per (platform, organization), so aggregates over this table
 * deduplicate per game first.
 */
type MaturityRatingGamePlatform struct {
	GameID                     int    `gorm:"primaryKey"`
	PlatformName               string `gorm:"primaryKey;size:100"`
	MaturityRatingOrganization string `gorm:"primaryKey;size:50"`
	Label                      string `gorm:"size:50;not null"`
}
