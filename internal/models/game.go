package models

// Game belongs to exactly one console. Console is only populated when the
// relation is preloaded.
type Game struct {
	ID        uint     `gorm:"primaryKey" json:"id" example:"1"`
	Title     string   `gorm:"not null;uniqueIndex:idx_games_title_console" json:"title" example:"Zelda"`
	ConsoleID uint     `gorm:"not null;index;uniqueIndex:idx_games_title_console" json:"consoleId" example:"1"`
	Console   *Console `gorm:"foreignKey:ConsoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Console,omitempty"`
}

func (Game) TableName() string {
	return "games"
}
