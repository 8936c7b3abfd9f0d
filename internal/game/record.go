package game

import "gorm.io/gorm"

// PlayerRecord is the persisted win/loss aggregate for one player
// name. Key is the normalized form of Name and is what lookups use.
type PlayerRecord struct {
	gorm.Model
	Key           string `gorm:"uniqueIndex;size:255"`
	Name          string
	Wins          int
	Losses        int
	Draws         int
	BattlesPlayed int
}

func (PlayerRecord) TableName() string { return "player_records" }
