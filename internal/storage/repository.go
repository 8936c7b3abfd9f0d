package storage

import "github.com/FernandosLando/pokemonSim/internal/game"

type Repository interface {
	// RecordResult adds a finished battle to both players' aggregates:
	// a win for the winner, a loss for the loser.
	RecordResult(winnerName, loserName string) error
	// RecordDraw adds a drawn battle to both players' aggregates.
	RecordDraw(nameA, nameB string) error
	// GetTopPlayers returns up to limit players ordered by wins.
	GetTopPlayers(limit int) ([]game.PlayerRecord, error)
	// GetPlayerByName looks a player up by display name. Unknown names
	// return a zero record carrying the requested name.
	GetPlayerByName(name string) (*game.PlayerRecord, error)
}
