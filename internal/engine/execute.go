package engine

import (
	"strconv"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// execute dispatches one planned action. Unrecognized kinds behave
// like a pass.
func (tc *turnContext) execute(plan plannedAction) {
	switch plan.action.Kind {
	case game.ActionMove:
		tc.execMove(plan.side, plan.action.Move)
	case game.ActionSwitch:
		tc.execSwitch(plan.side, plan.action.SwitchIndex)
	case game.ActionItem:
		tc.execItem(plan.side, plan.action.Item, plan.action.TargetIndex)
	}
}

func (tc *turnContext) execSwitch(s *game.Side, index int) {
	if !s.SwitchTo(index) {
		tc.add(s.Name + " tried to switch, but couldn't!")
		return
	}
	tc.add(s.Name + " withdrew their Pokémon!")
	tc.add(s.Name + " sent out " + s.Active().Nickname + "!")
}

func (tc *turnContext) execItem(s *game.Side, item string, targetIndex int) {
	if item != game.ItemPotion || !s.UsePotion(targetIndex) {
		tc.add(s.Name + " tried to use a Potion, but couldn't!")
		return
	}
	target := s.Roster[targetIndex]
	tc.add(s.Name + " used a Potion on " + target.Nickname + "!")
	tc.add(target.Nickname + " restored some HP!")
}

// applyEndOfTurn ticks residual status damage on both actives, first
// side first.
func (tc *turnContext) applyEndOfTurn() {
	for _, s := range tc.b.Sides {
		c := s.Active()
		if c == nil || c.IsFainted() {
			continue
		}
		switch c.Status {
		case game.StatusBurned:
			dmg := c.MaxHP / 16
			if dmg < 1 {
				dmg = 1
			}
			dealt := c.ApplyDamage(dmg)
			tc.add(c.Nickname + " was hurt by its burn! (" + strconv.Itoa(dealt) + " damage)")
			if c.IsFainted() {
				tc.add(s.Name + "'s " + c.Nickname + " fainted!")
			}
		case game.StatusPoisoned:
			dmg := c.MaxHP / 8
			if dmg < 1 {
				dmg = 1
			}
			dealt := c.ApplyDamage(dmg)
			tc.add(c.Nickname + " was hurt by poison! (" + strconv.Itoa(dealt) + " damage)")
			if c.IsFainted() {
				tc.add(s.Name + "'s " + c.Nickname + " fainted!")
			}
		}
	}
}

// checkBattleEnd latches the outcome once a roster is wiped. A finished
// battle is never reopened or overwritten.
func (tc *turnContext) checkBattleEnd() {
	if tc.b.Status != game.BattleInProgress {
		return
	}
	alive1 := tc.b.Sides[0].HasUsable()
	alive2 := tc.b.Sides[1].HasUsable()
	switch {
	case !alive1 && !alive2:
		tc.b.Status = game.BattleFinished
		tc.b.Winner = game.NoWinner
		tc.add("The battle ended in a draw!")
	case !alive1:
		tc.b.Status = game.BattleFinished
		tc.b.Winner = 1
		tc.add(tc.b.Sides[1].Name + " won the battle!")
	case !alive2:
		tc.b.Status = game.BattleFinished
		tc.b.Winner = 0
		tc.add(tc.b.Sides[0].Name + " won the battle!")
	}
}
