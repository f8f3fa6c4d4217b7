package postgres

/*
 * 'Game' is the central catalog entity. It carries three independent
 * score/count pairs (critics, players, Moby); every score and count is
 * nullable, and a score may exist while its count is still null when
 * ingestion is incomplete.
 */
type Game struct {
	GameID      int    `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"size:255;not null;index"`
	Description string `gorm:"type:text"`
	CoverPhoto  string `gorm:"size:512"`

	OverallCriticsScore *float64 `gorm:"type:numeric(4,2)"`
	OverallCriticsCount *int
	OverallPlayersScore *float64 `gorm:"type:numeric(4,2)"`
	OverallPlayersCount *int
	OverallMobyScore    *float64 `gorm:"type:numeric(4,1)"`

	// Relationships
	Attributes []GameAttribute `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Platforms  []GamePlatform  `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Releases   []Release       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
