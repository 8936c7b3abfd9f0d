package storage

import (
	"github.com/FernandosLando/pokemonSim/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database at dataSourceName and keeps
// the schema current via AutoMigrate. A missing file is created.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.PlayerRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
