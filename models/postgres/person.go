package postgres

// Person is anyone credited on a game (directors, in this dataset).
type Person struct {
	PersonID int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:255;not null;index"`
}

// GamePersonCredit links a person to a game they are credited on.
type GamePersonCredit struct {
	GameID   int `gorm:"primaryKey"`
	PersonID int `gorm:"primaryKey"`

	Person Person `gorm:"foreignKey:PersonID"`
}
