package ai

import (
	"github.com/FernandosLando/pokemonSim/internal/game"
)

// Tier is an AI difficulty level.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Policy picks a side's next action from public battle state. Policies
// never mutate the battle; the engine executes what they return.
type Policy interface {
	ChooseAction(b *game.Battle, self, opp *game.Side) game.Action
	ChooseSwitch(self, opp *game.Side) game.Action
}

// ForTier returns the scripted policy for a difficulty tier. Anything
// that isn't easy or hard plays as medium.
func ForTier(tier Tier, dex *game.Dex, rng game.Rand) Policy {
	return &aiPolicy{tier: tier, dex: dex, rng: rng}
}

type aiPolicy struct {
	tier Tier
	dex  *game.Dex
	rng  game.Rand
}

func (p *aiPolicy) ChooseAction(b *game.Battle, self, opp *game.Side) game.Action {
	active := self.Active()
	target := opp.Active()
	if active == nil || target == nil || len(active.Moves) == 0 {
		return game.PassAction()
	}

	switch p.tier {
	case TierEasy:
		return p.easyAction(self, active)
	case TierHard:
		return p.hardAction(self, active, target)
	default:
		return p.mediumAction(self, active, target)
	}
}

// easyAction mostly swings at random: 80% a random move, then a random
// switch or potion if the roll and the bench allow, else a move anyway.
func (p *aiPolicy) easyAction(self *game.Side, active *game.Combatant) game.Action {
	roll := p.rng.Float64()
	if roll >= 0.8 {
		switch {
		case roll < 0.95 && self.CanSwitch():
			benched := eligibleSwitches(self)
			return game.SwitchAction(benched[p.rng.Intn(len(benched))])
		case self.CanUsePotion():
			hurt := healTargets(self)
			return game.ItemAction(game.ItemPotion, hurt[p.rng.Intn(len(hurt))])
		}
	}
	return game.MoveAction(active.Moves[p.rng.Intn(len(active.Moves))])
}

// mediumAction plays the best-scoring move, but at low HP goes
// defensive half the time: a potion on the active combatant if one can
// help, otherwise the best switch.
func (p *aiPolicy) mediumAction(self *game.Side, active, target *game.Combatant) game.Action {
	if active.HPFraction() < 0.25 && p.rng.Float64() < 0.5 {
		if self.CanUsePotion() {
			return game.ItemAction(game.ItemPotion, self.ActiveIndex)
		}
		if self.CanSwitch() {
			if idx := p.bestSwitch(self, target); idx >= 0 {
				return game.SwitchAction(idx)
			}
		}
	}
	return game.MoveAction(p.bestMove(active, target))
}

// hardAction weighs the current matchup. A bad matchup or a hurt
// combatant with a bench gets switched out; a salvageable one in a
// good spot gets a potion; everything else is the best move.
func (p *aiPolicy) hardAction(self *game.Side, active, target *game.Combatant) game.Action {
	score := p.matchupScore(active, target)
	hpFrac := active.HPFraction()

	if score < 0.7 || (hpFrac < 0.3 && self.CanSwitch()) {
		if idx := p.bestSwitch(self, target); idx >= 0 {
			return game.SwitchAction(idx)
		}
	}

	if hpFrac >= 0.15 && hpFrac <= 0.4 && self.Potions > 0 {
		if score > 0.8 || !self.CanSwitch() {
			return game.ItemAction(game.ItemPotion, self.ActiveIndex)
		}
	}

	return game.MoveAction(p.bestMove(active, target))
}

// ChooseSwitch picks a replacement after a faint. Easy takes the first
// conscious bench slot; medium and hard take the healthiest one.
func (p *aiPolicy) ChooseSwitch(self, opp *game.Side) game.Action {
	eligible := eligibleSwitches(self)
	if len(eligible) == 0 {
		return game.PassAction()
	}
	if p.tier == TierEasy {
		return game.SwitchAction(eligible[0])
	}

	best := eligible[0]
	for _, i := range eligible[1:] {
		if self.Roster[i].HPFraction() > self.Roster[best].HPFraction() {
			best = i
		}
	}
	return game.SwitchAction(best)
}

func eligibleSwitches(s *game.Side) []int {
	var out []int
	for i, c := range s.Roster {
		if i != s.ActiveIndex && !c.IsFainted() {
			out = append(out, i)
		}
	}
	return out
}

func healTargets(s *game.Side) []int {
	var out []int
	for i, c := range s.Roster {
		if !c.IsFainted() && c.CurrentHP < c.MaxHP {
			out = append(out, i)
		}
	}
	return out
}
