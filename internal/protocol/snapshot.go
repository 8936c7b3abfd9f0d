package protocol

import (
	"github.com/FernandosLando/pokemonSim/internal/game"
)

// CombatantDetail is the full view a side gets of its own combatants.
type CombatantDetail struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Nickname   string            `json:"nickname"`
	Level      int               `json:"level"`
	Types      []game.Type       `json:"types"`
	Moves      []string          `json:"moves"`
	CurrentHP  int               `json:"current_hp"`
	MaxHP      int               `json:"max_hp"`
	Status     game.Status       `json:"status"`
	StatStages map[game.Stat]int `json:"stat_stages"`
	IsFainted  bool              `json:"is_fainted"`
}

// CombatantPublic is the redacted view of an opponent's combatant: no
// moves, no exact HP, only the remaining fraction.
type CombatantPublic struct {
	Name             string      `json:"name"`
	Nickname         string      `json:"nickname"`
	Level            int         `json:"level"`
	Types            []game.Type `json:"types"`
	CurrentHPPercent float64     `json:"current_hp_percent"`
	Status           game.Status `json:"status"`
	IsFainted        bool        `json:"is_fainted"`
}

// BattleState is the per-side snapshot sent with every action and
// switch request.
type BattleState struct {
	ActivePokemon   *CombatantDetail  `json:"active_pokemon"`
	OpponentPokemon *CombatantPublic  `json:"opponent_pokemon"`
	Team            []CombatantDetail `json:"team"`
	Potions         int               `json:"potions"`
	Turn            int               `json:"turn"`
}

// DetailOf builds the full view of a combatant. Nil in, nil out.
func DetailOf(c *game.Combatant) *CombatantDetail {
	if c == nil {
		return nil
	}
	stages := make(map[game.Stat]int, len(c.StatStages))
	for stat, v := range c.StatStages {
		stages[stat] = v
	}
	return &CombatantDetail{
		ID:         c.SpeciesID,
		Name:       c.Name,
		Nickname:   c.Nickname,
		Level:      c.Level,
		Types:      c.Types,
		Moves:      c.Moves,
		CurrentHP:  c.CurrentHP,
		MaxHP:      c.MaxHP,
		Status:     c.Status,
		StatStages: stages,
		IsFainted:  c.IsFainted(),
	}
}

// PublicOf builds the redacted view of a combatant. Nil in, nil out.
func PublicOf(c *game.Combatant) *CombatantPublic {
	if c == nil {
		return nil
	}
	return &CombatantPublic{
		Name:             c.Name,
		Nickname:         c.Nickname,
		Level:            c.Level,
		Types:            c.Types,
		CurrentHPPercent: c.HPFraction(),
		Status:           c.Status,
		IsFainted:        c.IsFainted(),
	}
}

// StateFor builds the snapshot one side should see: its own roster in
// full, the opponent's active combatant redacted.
func StateFor(b *game.Battle, self *game.Side) BattleState {
	opp := b.Opponent(self)

	team := make([]CombatantDetail, 0, len(self.Roster))
	for _, c := range self.Roster {
		team = append(team, *DetailOf(c))
	}

	state := BattleState{
		ActivePokemon: DetailOf(self.Active()),
		Team:          team,
		Potions:       self.Potions,
		Turn:          b.Turn,
	}
	if opp != nil {
		state.OpponentPokemon = PublicOf(opp.Active())
	}
	return state
}
