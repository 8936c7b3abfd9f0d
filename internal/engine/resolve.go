package engine

import "github.com/FernandosLando/pokemonSim/internal/game"

// Engine resolves battle turns against a loaded catalog. It holds no
// per-battle state beyond the randomness source, so callers create one
// engine per battle and feed it the same Battle every turn.
type Engine struct {
	dex *game.Dex
	rng game.Rand
}

func New(dex *game.Dex, rng game.Rand) *Engine {
	return &Engine{dex: dex, rng: rng}
}

// ExecuteTurn is the main entry point for resolving a turn. It orders
// the two declared actions, executes them with a battle-end check after
// each, applies residual status damage and returns the turn's log.
// Finished battles are left untouched and yield no log.
func (e *Engine) ExecuteTurn(b *game.Battle, a1, a2 game.Action) []string {
	if b.Status != game.BattleInProgress {
		return nil
	}
	b.Turn++
	b.Log = b.Log[:0]
	tc := &turnContext{e: e, b: b}

	for _, plan := range tc.buildPlans(a1, a2) {
		if b.Status != game.BattleInProgress {
			break
		}
		tc.execute(plan)
		tc.checkBattleEnd()
	}

	if b.Status == game.BattleInProgress {
		tc.applyEndOfTurn()
		tc.checkBattleEnd()
	}
	return b.Log
}
