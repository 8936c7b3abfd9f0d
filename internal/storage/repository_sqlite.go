package storage

import (
	"github.com/FernandosLando/pokemonSim/internal/game"
	"github.com/FernandosLando/pokemonSim/internal/keys"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

// bump loads (or initializes) the record for name inside tx, applies
// the deltas and saves it. Records are keyed by the canonical name key
// so "Ash Ketchum" and "ash ketchum" share one row; the display name
// is refreshed to the most recent spelling on every battle.
func bump(tx *gorm.DB, name string, wins, losses, draws int) error {
	key := keys.PlayerKeyFromName(name)
	var rec game.PlayerRecord
	if err := tx.Where("key = ?", key).First(&rec).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		rec = game.PlayerRecord{Key: key, Name: name}
	}
	rec.Name = name
	rec.Wins += wins
	rec.Losses += losses
	rec.Draws += draws
	rec.BattlesPlayed++
	return tx.Save(&rec).Error
}

func (r *sqliteRepository) RecordResult(winnerName, loserName string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := bump(tx, winnerName, 1, 0, 0); err != nil {
		tx.Rollback()
		return err
	}
	if err := bump(tx, loserName, 0, 1, 0); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *sqliteRepository) RecordDraw(nameA, nameB string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := bump(tx, nameA, 0, 0, 1); err != nil {
		tx.Rollback()
		return err
	}
	if err := bump(tx, nameB, 0, 0, 1); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// GetTopPlayers returns top N players ordered by Wins desc, then
// BattlesPlayed desc.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []game.PlayerRecord
	if err := r.db.Model(&game.PlayerRecord{}).
		Order("wins DESC").
		Order("battles_played DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) GetPlayerByName(name string) (*game.PlayerRecord, error) {
	key := keys.PlayerKeyFromName(name)
	var rec game.PlayerRecord
	if err := r.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &game.PlayerRecord{Key: key, Name: name}, nil
		}
		return nil, err
	}
	return &rec, nil
}
