package engine

import (
	"strconv"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// applyMoveEffects runs a move's secondary payload after the damage
// step. Boosts land on the attacker, drops on the defender. The two
// chance-gated stage maps share a single roll each. Drain reads the
// defender's missing HP capped by move power; recoil uses the same
// basis and can faint the attacker.
func (tc *turnContext) applyMoveEffects(move *game.Move, s *game.Side, attacker, defender *game.Combatant) {
	eff := move.Effect

	if eff.Status != game.StatusNone {
		chance := eff.Chance
		if chance == 0 {
			chance = 1.0
		}
		if tc.e.rng.Float64() < chance && defender.InflictStatus(eff.Status) {
			tc.add(defender.Nickname + " was " + string(eff.Status) + "!")
		}
	}

	for _, stat := range game.StatOrder {
		stages, ok := eff.StatBoost[stat]
		if !ok {
			continue
		}
		if attacker.AdjustStatStage(stat, stages) != 0 {
			if stages > 0 {
				tc.add(attacker.Nickname + "'s " + string(stat) + " rose!")
			} else {
				tc.add(attacker.Nickname + "'s " + string(stat) + " fell!")
			}
		}
	}

	for _, stat := range game.StatOrder {
		stages, ok := eff.StatDrop[stat]
		if !ok {
			continue
		}
		if defender.AdjustStatStage(stat, -stages) != 0 {
			tc.add(defender.Nickname + "'s " + string(stat) + " fell!")
		}
	}

	if len(eff.StatBoostChance) > 0 {
		chance := eff.Chance
		if chance == 0 {
			chance = 0.1
		}
		if tc.e.rng.Float64() < chance {
			for _, stat := range game.StatOrder {
				stages, ok := eff.StatBoostChance[stat]
				if !ok {
					continue
				}
				if attacker.AdjustStatStage(stat, stages) != 0 {
					tc.add(attacker.Nickname + "'s " + string(stat) + " rose!")
				}
			}
		}
	}

	if len(eff.StatDropChance) > 0 {
		chance := eff.Chance
		if chance == 0 {
			chance = 0.1
		}
		if tc.e.rng.Float64() < chance {
			for _, stat := range game.StatOrder {
				stages, ok := eff.StatDropChance[stat]
				if !ok {
					continue
				}
				if defender.AdjustStatStage(stat, -stages) != 0 {
					tc.add(defender.Nickname + "'s " + string(stat) + " fell!")
				}
			}
		}
	}

	if eff.Heal > 0 {
		healed := attacker.Heal(int(float64(attacker.MaxHP) * eff.Heal))
		if healed > 0 {
			tc.add(attacker.Nickname + " restored " + strconv.Itoa(healed) + " HP!")
		}
	}

	if eff.Drain > 0 && !defender.IsFainted() {
		basis := defender.MaxHP - defender.CurrentHP
		if move.Power < basis {
			basis = move.Power
		}
		healed := attacker.Heal(int(float64(basis) * eff.Drain))
		if healed > 0 {
			tc.add(attacker.Nickname + " restored " + strconv.Itoa(healed) + " HP!")
		}
	}

	if eff.Recoil > 0 {
		basis := defender.MaxHP - defender.CurrentHP
		if move.Power < basis {
			basis = move.Power
		}
		recoil := int(float64(basis) * eff.Recoil)
		if recoil > 0 {
			dealt := attacker.ApplyDamage(recoil)
			tc.add(attacker.Nickname + " was hurt by recoil! (" + strconv.Itoa(dealt) + " damage)")
			if attacker.IsFainted() {
				tc.add(s.Name + "'s " + attacker.Nickname + " fainted due to recoil!")
			}
		}
	}
}
