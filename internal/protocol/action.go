package protocol

import (
	"fmt"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// WireAction is the wire shape of a battle action. The index fields
// are pointers so a missing field is distinguishable from slot zero.
type WireAction struct {
	Type         string `json:"type"`
	Move         string `json:"move,omitempty"`
	PokemonIndex *int   `json:"pokemon_index,omitempty"`
	Item         string `json:"item,omitempty"`
	TargetIndex  *int   `json:"target_index,omitempty"`
}

// EncodeAction converts an engine action to its wire shape. Each
// variant carries only its own fields.
func EncodeAction(a game.Action) WireAction {
	switch a.Kind {
	case game.ActionMove:
		return WireAction{Type: string(game.ActionMove), Move: a.Move}
	case game.ActionSwitch:
		i := a.SwitchIndex
		return WireAction{Type: string(game.ActionSwitch), PokemonIndex: &i}
	case game.ActionItem:
		i := a.TargetIndex
		return WireAction{Type: string(game.ActionItem), Item: a.Item, TargetIndex: &i}
	default:
		return WireAction{Type: string(game.ActionPass)}
	}
}

// Decode converts a wire action back to an engine action. Unknown
// kinds and missing fields are errors; the coordinator substitutes a
// pass rather than propagating them into the battle.
func (w WireAction) Decode() (game.Action, error) {
	switch game.ActionKind(w.Type) {
	case game.ActionPass:
		return game.PassAction(), nil
	case game.ActionMove:
		if w.Move == "" {
			return game.Action{}, fmt.Errorf("move action without a move name")
		}
		return game.MoveAction(w.Move), nil
	case game.ActionSwitch:
		if w.PokemonIndex == nil {
			return game.Action{}, fmt.Errorf("switch action without a pokemon_index")
		}
		return game.SwitchAction(*w.PokemonIndex), nil
	case game.ActionItem:
		if w.Item == "" {
			return game.Action{}, fmt.Errorf("item action without an item")
		}
		if w.TargetIndex == nil {
			return game.Action{}, fmt.Errorf("item action without a target_index")
		}
		return game.ItemAction(w.Item, *w.TargetIndex), nil
	default:
		return game.Action{}, fmt.Errorf("unknown action type %q", w.Type)
	}
}
