package game

import (
	"errors"
	"fmt"
)

// Status is a persistent condition. A combatant holds at most one; the
// empty string means healthy.
type Status string

const (
	StatusNone      Status = ""
	StatusParalyzed Status = "paralyzed"
	StatusPoisoned  Status = "poisoned"
	StatusBurned    Status = "burned"
	StatusAsleep    Status = "asleep"
	StatusFrozen    Status = "frozen"
)

// Stat names the boostable stats. Accuracy and evasion stages are
// tracked and reported but do not feed the accuracy roll.
type Stat string

const (
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatSpAttack  Stat = "sp_attack"
	StatSpDefense Stat = "sp_defense"
	StatSpeed     Stat = "speed"
	StatAccuracy  Stat = "accuracy"
	StatEvasion   Stat = "evasion"
)

// StatOrder is the canonical iteration order for stage maps, so that
// multi-stat effects produce the same log lines on every run.
var StatOrder = []Stat{
	StatAttack, StatDefense, StatSpAttack, StatSpDefense,
	StatSpeed, StatAccuracy, StatEvasion,
}

const (
	DefaultLevel = 50
	MaxLevel     = 100
	MaxMoves     = 4
	MaxStatStage = 6
	MinStatStage = -6
)

var ErrUnknownSpecies = errors.New("unknown species")

// Types that shrug off a condition outright.
var statusImmunities = map[Status][]Type{
	StatusParalyzed: {TypeElectric},
	StatusPoisoned:  {TypePoison, TypeSteel},
	StatusBurned:    {TypeFire},
}

// Combatant is one creature instance in a battle, with its stats
// already scaled to its level. All mutation happens through methods so
// the clamping rules live in one place.
type Combatant struct {
	SpeciesID int
	Name      string
	Nickname  string
	Level     int
	Types     []Type
	Moves     []string

	MaxHP     int
	CurrentHP int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int

	StatStages map[Stat]int
	Status     Status
}

// NewCombatant builds a combatant from a species entry. Level zero or
// below falls back to the default, a blank nickname falls back to the
// species name, and the learnset is capped at MaxMoves.
func NewCombatant(dex *Dex, speciesID, level int, nickname string) (*Combatant, error) {
	sp, ok := dex.SpeciesByID(speciesID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownSpecies, speciesID)
	}
	if level <= 0 {
		level = DefaultLevel
	}
	if nickname == "" {
		nickname = sp.Name
	}
	moves := make([]string, 0, MaxMoves)
	for _, m := range sp.Moves {
		if len(moves) == MaxMoves {
			break
		}
		moves = append(moves, m)
	}
	c := &Combatant{
		SpeciesID: sp.ID,
		Name:      sp.Name,
		Nickname:  nickname,
		Level:     level,
		Types:     append([]Type(nil), sp.Types...),
		Moves:     moves,
		MaxHP:     scaledHP(sp.BaseStats.HP, level),
		Attack:    scaledStat(sp.BaseStats.Attack, level),
		Defense:   scaledStat(sp.BaseStats.Defense, level),
		SpAttack:  scaledStat(sp.BaseStats.SpAttack, level),
		SpDefense: scaledStat(sp.BaseStats.SpDefense, level),
		Speed:     scaledStat(sp.BaseStats.Speed, level),
		StatStages: map[Stat]int{
			StatAttack: 0, StatDefense: 0, StatSpAttack: 0,
			StatSpDefense: 0, StatSpeed: 0, StatAccuracy: 0, StatEvasion: 0,
		},
	}
	c.CurrentHP = c.MaxHP
	return c, nil
}

func scaledHP(base, level int) int {
	return (2*base*level)/100 + level + 10
}

func scaledStat(base, level int) int {
	return (2*base*level)/100 + 5
}

func (c *Combatant) IsFainted() bool { return c.CurrentHP <= 0 }

// HPFraction is current HP over max HP, 0 when fainted.
func (c *Combatant) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.MaxHP)
}

// HasType reports whether the combatant carries the given type, which
// grants the same-type attack bonus.
func (c *Combatant) HasType(t Type) bool {
	for _, own := range c.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Knows reports whether the move is in the combatant's learned set.
func (c *Combatant) Knows(move string) bool {
	for _, m := range c.Moves {
		if m == move {
			return true
		}
	}
	return false
}

// StageMultiplier converts a stat stage into its multiplier. Core
// stats use halves (+1 is x1.5), accuracy and evasion use thirds.
func (c *Combatant) StageMultiplier(stat Stat) float64 {
	s := c.StatStages[stat]
	switch stat {
	case StatAccuracy, StatEvasion:
		if s >= 0 {
			return float64(3+s) / 3.0
		}
		return 3.0 / float64(3-s)
	default:
		if s >= 0 {
			return float64(2+s) / 2.0
		}
		return 2.0 / float64(2-s)
	}
}

// ModifiedStat applies the stage multiplier and then any status
// penalty (paralysis halves speed, burn halves attack), truncating
// once at the end. Non-core stats return 0.
func (c *Combatant) ModifiedStat(stat Stat) int {
	var base int
	switch stat {
	case StatAttack:
		base = c.Attack
	case StatDefense:
		base = c.Defense
	case StatSpAttack:
		base = c.SpAttack
	case StatSpDefense:
		base = c.SpDefense
	case StatSpeed:
		base = c.Speed
	default:
		return 0
	}
	value := float64(base) * c.StageMultiplier(stat)
	if c.Status == StatusParalyzed && stat == StatSpeed {
		value *= 0.5
	}
	if c.Status == StatusBurned && stat == StatAttack {
		value *= 0.5
	}
	return int(value)
}

// ApplyDamage clamps the amount to at least 1, floors HP at zero and
// returns the clamped amount, which may exceed the HP actually lost.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 1 {
		amount = 1
	}
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return amount
}

// Heal restores up to amount HP, capped at max. Fainted combatants
// cannot be healed. Returns the HP actually restored.
func (c *Combatant) Heal(amount int) int {
	if c.IsFainted() || amount <= 0 {
		return 0
	}
	before := c.CurrentHP
	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	return c.CurrentHP - before
}

// InflictStatus applies the condition unless the combatant already has
// one or its typing makes it immune.
func (c *Combatant) InflictStatus(s Status) bool {
	if s == StatusNone || c.Status != StatusNone {
		return false
	}
	for _, t := range statusImmunities[s] {
		if c.HasType(t) {
			return false
		}
	}
	c.Status = s
	return true
}

// AdjustStatStage moves the stage by delta, clamped to the allowed
// range, and returns the change that actually happened. Unknown stats
// report no change.
func (c *Combatant) AdjustStatStage(stat Stat, delta int) int {
	cur, ok := c.StatStages[stat]
	if !ok {
		return 0
	}
	next := cur + delta
	if next > MaxStatStage {
		next = MaxStatStage
	}
	if next < MinStatStage {
		next = MinStatStage
	}
	c.StatStages[stat] = next
	return next - cur
}
