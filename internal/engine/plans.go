package engine

import "github.com/FernandosLando/pokemonSim/internal/game"

// --- Planned action model ---------------------------------------------

type plannedAction struct {
	side   *game.Side
	action game.Action
}

// buildPlans fixes the execution order for the turn's two declarations.
// A pass removes that side from the turn entirely. Switches and items
// resolve before moves. Two moves compare priority first, then the
// actives' modified speed; remaining same-kind ties flip a coin. A
// switch facing an item keeps declaration order.
func (tc *turnContext) buildPlans(a1, a2 game.Action) []plannedAction {
	s1, s2 := tc.b.Sides[0], tc.b.Sides[1]

	if a1.Kind == game.ActionPass {
		return []plannedAction{{side: s2, action: a2}}
	}
	if a2.Kind == game.ActionPass {
		return []plannedAction{{side: s1, action: a1}}
	}

	firstSecond := []plannedAction{{side: s1, action: a1}, {side: s2, action: a2}}
	secondFirst := []plannedAction{{side: s2, action: a2}, {side: s1, action: a1}}

	if (a1.Kind == game.ActionSwitch || a1.Kind == game.ActionItem) && a2.Kind == game.ActionMove {
		return firstSecond
	}
	if (a2.Kind == game.ActionSwitch || a2.Kind == game.ActionItem) && a1.Kind == game.ActionMove {
		return secondFirst
	}

	if a1.Kind == a2.Kind {
		if a1.Kind == game.ActionMove {
			p1 := tc.movePriority(a1.Move)
			p2 := tc.movePriority(a2.Move)
			if p1 != p2 {
				if p1 > p2 {
					return firstSecond
				}
				return secondFirst
			}
		}
		v1 := activeSpeed(s1)
		v2 := activeSpeed(s2)
		if v1 != v2 {
			if v1 > v2 {
				return firstSecond
			}
			return secondFirst
		}
		if tc.e.rng.Float64() < 0.5 {
			return firstSecond
		}
		return secondFirst
	}

	return firstSecond
}

func (tc *turnContext) movePriority(name string) int {
	if m, ok := tc.e.dex.MoveByName(name); ok {
		return m.Priority
	}
	return 0
}

func activeSpeed(s *game.Side) int {
	if c := s.Active(); c != nil {
		return c.ModifiedStat(game.StatSpeed)
	}
	return 0
}
