package engine

import "github.com/FernandosLando/pokemonSim/internal/game"

// --- Turn context ------------------------------------------------------

// turnContext carries the battle being resolved so the exec helpers can
// append to its log without threading parameters everywhere.
type turnContext struct {
	e *Engine
	b *game.Battle
}

func (tc *turnContext) add(msg string) { tc.b.Log = append(tc.b.Log, msg) }
