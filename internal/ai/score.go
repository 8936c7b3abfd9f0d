package ai

import (
	"github.com/FernandosLando/pokemonSim/internal/game"
)

// bestMove returns the highest-scoring known move against the target.
// Damaging moves score on expected damage terms; status moves carry a
// flat base plus a bonus for what their effect is worth right now. The
// easy tier jitters every score, so its "best" move wobbles. A scan
// where everything scores zero falls back to the first move.
func (p *aiPolicy) bestMove(active, target *game.Combatant) string {
	best := active.Moves[0]
	bestScore := 0.0

	for _, name := range active.Moves {
		move, ok := p.dex.MoveByName(name)
		if !ok {
			continue
		}
		// Status moves are skipped outright below hard tier; hard
		// considers each one three turns out of ten.
		if move.Power == 0 && (p.tier != TierHard || p.rng.Float64() < 0.7) {
			continue
		}

		eff := p.dex.Chart().EffectivenessAgainst(move.Type, target.Types)
		stab := 1.0
		if active.HasType(move.Type) {
			stab = 1.5
		}
		acc := float64(move.Accuracy) / 100

		var score float64
		if move.Power > 0 {
			score = float64(move.Power) * eff * stab * acc
		} else {
			score = 30 * eff * acc
			effect := move.Effect
			switch {
			case len(effect.StatBoost) > 0 || len(effect.StatBoostChance) > 0:
				score += 20
			case effect.Heal > 0:
				score += 15 * (1 - active.HPFraction())
			case effect.Status != game.StatusNone:
				if target.Status == game.StatusNone {
					score += 25
				} else {
					score += 5
				}
			}
		}

		if p.tier == TierEasy {
			score *= 0.5 + p.rng.Float64()
		}
		if score > bestScore {
			bestScore = score
			best = name
		}
	}
	return best
}

// bestSwitch returns the bench index with the best matchup against the
// target, weighted by remaining HP, or -1 when nothing scores above
// zero.
func (p *aiPolicy) bestSwitch(self *game.Side, target *game.Combatant) int {
	bestIndex := -1
	bestScore := 0.0

	for i, c := range self.Roster {
		if i == self.ActiveIndex || c.IsFainted() {
			continue
		}
		score := p.matchupScore(c, target) * c.HPFraction()
		if p.tier == TierEasy {
			score *= 0.5 + p.rng.Float64()
		}
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}
	return bestIndex
}

// matchupScore rates own against target: 70% the best damaging move it
// carries, 30% how well its typing absorbs the target's types. A zero
// chart entry reads as infinite resistance, which makes immune
// candidates maximally attractive.
func (p *aiPolicy) matchupScore(own, target *game.Combatant) float64 {
	chart := p.dex.Chart()

	offense := 0.0
	for _, name := range own.Moves {
		move, ok := p.dex.MoveByName(name)
		if !ok || move.Power == 0 {
			continue
		}
		eff := chart.EffectivenessAgainst(move.Type, target.Types)
		stab := 1.0
		if own.HasType(move.Type) {
			stab = 1.5
		}
		if s := float64(move.Power) * eff * stab; s > offense {
			offense = s
		}
	}

	defense := 0.0
	for _, tt := range target.Types {
		resistance := 1.0
		for _, ot := range own.Types {
			resistance *= 1 / chart.Effectiveness(tt, ot)
		}
		defense += resistance
	}
	if len(target.Types) > 0 {
		defense /= float64(len(target.Types))
	}

	return (offense*0.7 + defense*100*0.3) / 100
}
