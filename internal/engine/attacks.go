package engine

import (
	"strconv"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// execMove runs the full move pipeline: lookup, status interruption,
// accuracy roll, damage, then secondary effects. Either active having
// already fainted cancels the move silently.
func (tc *turnContext) execMove(s *game.Side, moveName string) {
	attacker := s.Active()
	opp := tc.b.Opponent(s)
	defender := opp.Active()
	if attacker == nil || attacker.IsFainted() || defender == nil || defender.IsFainted() {
		return
	}

	move, ok := tc.e.dex.MoveByName(moveName)
	if !ok || !attacker.Knows(moveName) {
		tc.add(attacker.Nickname + " tried to use " + moveName + ", but it doesn't know that move!")
		return
	}
	tc.add(s.Name + "'s " + attacker.Nickname + " used " + move.Name + "!")

	switch attacker.Status {
	case game.StatusParalyzed:
		if tc.e.rng.Float64() < 0.25 {
			tc.add(attacker.Nickname + " is paralyzed and couldn't move!")
			return
		}
	case game.StatusFrozen:
		if tc.e.rng.Float64() < 0.8 {
			tc.add(attacker.Nickname + " is frozen solid!")
			return
		}
	case game.StatusAsleep:
		tc.add(attacker.Nickname + " is fast asleep!")
		return
	}

	if move.Accuracy < 100 && tc.e.rng.Intn(100)+1 > move.Accuracy {
		tc.add(attacker.Nickname + "'s attack missed!")
		return
	}

	if move.Category == game.CategoryPhysical || move.Category == game.CategorySpecial {
		dmg, eff := tc.rollDamage(attacker, defender, move)
		// A fully immune defender takes no damage and cannot faint
		// from the hit, but secondary effects still run below.
		if eff > 0 {
			dealt := defender.ApplyDamage(dmg)
			tc.add(defender.Nickname + " took " + strconv.Itoa(dealt) + " damage!")
			if defender.IsFainted() {
				tc.add(opp.Name + "'s " + defender.Nickname + " fainted!")
			}
		}
	}
	tc.applyMoveEffects(move, s, attacker, defender)
}

// rollDamage computes damage for a damaging move and logs the
// effectiveness commentary and crits along the way. Returns the final
// damage and the type effectiveness so the caller can skip immune hits.
func (tc *turnContext) rollDamage(attacker, defender *game.Combatant, move *game.Move) (int, float64) {
	var atk, def int
	if move.Category == game.CategoryPhysical {
		atk = attacker.ModifiedStat(game.StatAttack)
		def = defender.ModifiedStat(game.StatDefense)
	} else {
		atk = attacker.ModifiedStat(game.StatSpAttack)
		def = defender.ModifiedStat(game.StatSpDefense)
	}
	if def < 1 {
		def = 1
	}

	level := float64(attacker.Level)
	dmg := ((2*level/5+2)*float64(move.Power)*float64(atk)/float64(def))/50 + 2

	if attacker.HasType(move.Type) {
		dmg *= 1.5
	}

	eff := tc.e.dex.Chart().EffectivenessAgainst(move.Type, defender.Types)
	dmg *= eff
	if eff > 1 {
		tc.add("It's super effective!")
	} else if eff == 0 {
		tc.add("It doesn't affect " + defender.Nickname + "...")
	} else if eff < 1 {
		tc.add("It's not very effective...")
	}

	dmg *= 0.85 + 0.15*tc.e.rng.Float64()

	if tc.e.rng.Float64() < 0.0625 {
		dmg *= 1.5
		tc.add("A critical hit!")
	}

	out := int(dmg)
	if out < 1 {
		out = 1
	}
	return out, eff
}
