package postgres

/*
 * 'Attribute' is the dictionary of classification values: one row per
 * (type, name) pair, e.g. (Genre, RPG) or (Setting, Sci-Fi).
 */
type Attribute struct {
	Type string `gorm:"primaryKey;size:50"`
	Name string `gorm:"primaryKey;size:100"`
}

/*
 * 'GameAttribute' tags a game with an attribute. A game may carry zero or
 * more names per attribute type (multiple genres, for example).
 */
type GameAttribute struct {
	GameID        int    `gorm:"primaryKey"`
	AttributeType string `gorm:"primaryKey;size:50"`
	AttributeName string `gorm:"primaryKey;size:100"`
}
