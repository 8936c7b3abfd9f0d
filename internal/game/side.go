package game

import "errors"

// ControlKind says where a side's actions come from.
type ControlKind string

const (
	ControlManual ControlKind = "manual"
	ControlAI     ControlKind = "ai"
	ControlRemote ControlKind = "remote"
)

// Control is the decision source for a side. Tier is only meaningful
// for ControlAI.
type Control struct {
	Kind ControlKind `json:"kind"`
	Tier string      `json:"tier,omitempty"`
}

const (
	MaxTeamSize     = 6
	StartingPotions = 3
	PotionHeal      = 20
)

// ItemPotion is the only usable item.
const ItemPotion = "potion"

var ErrRosterFull = errors.New("roster is full")

// Side is one participant: a named roster with an active slot and an
// item pouch.
type Side struct {
	Name        string
	Control     Control
	Roster      []*Combatant
	ActiveIndex int
	Potions     int
}

func NewSide(name string, control Control) *Side {
	return &Side{
		Name:    name,
		Control: control,
		Potions: StartingPotions,
	}
}

// AddCombatant appends to the roster, refusing a seventh member.
func (s *Side) AddCombatant(c *Combatant) error {
	if len(s.Roster) >= MaxTeamSize {
		return ErrRosterFull
	}
	s.Roster = append(s.Roster, c)
	return nil
}

// Active returns the combatant in the active slot, or nil for an empty
// roster.
func (s *Side) Active() *Combatant {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Roster) {
		return nil
	}
	return s.Roster[s.ActiveIndex]
}

// SwitchTo moves the active slot to index i. The target must exist and
// be conscious; switching to the current index is allowed.
func (s *Side) SwitchTo(i int) bool {
	if i < 0 || i >= len(s.Roster) || s.Roster[i].IsFainted() {
		return false
	}
	s.ActiveIndex = i
	return true
}

// UsePotion heals roster member i for up to PotionHeal HP and spends a
// potion. Fails without side effects when no potions remain, the index
// is out of range, the target has fainted or it is already at full HP.
func (s *Side) UsePotion(i int) bool {
	if s.Potions <= 0 || i < 0 || i >= len(s.Roster) {
		return false
	}
	target := s.Roster[i]
	if target.IsFainted() || target.CurrentHP >= target.MaxHP {
		return false
	}
	missing := target.MaxHP - target.CurrentHP
	if missing > PotionHeal {
		missing = PotionHeal
	}
	target.Heal(missing)
	s.Potions--
	return true
}

// HasUsable reports whether any roster member is still conscious.
func (s *Side) HasUsable() bool {
	for _, c := range s.Roster {
		if !c.IsFainted() {
			return true
		}
	}
	return false
}

// CanSwitch reports whether a conscious bench member exists.
func (s *Side) CanSwitch() bool {
	for i, c := range s.Roster {
		if i != s.ActiveIndex && !c.IsFainted() {
			return true
		}
	}
	return false
}

// CanUsePotion reports whether a potion remains and someone conscious
// is missing HP.
func (s *Side) CanUsePotion() bool {
	if s.Potions <= 0 {
		return false
	}
	for _, c := range s.Roster {
		if !c.IsFainted() && c.CurrentHP < c.MaxHP {
			return true
		}
	}
	return false
}
