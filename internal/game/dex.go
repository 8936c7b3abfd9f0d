package game

// Type is an elemental type name as it appears in the type chart
// ("Fire", "Water", ...).
type Type string

// The types referenced by game rules (status immunities, tests). The
// authoritative set is whatever the loaded type chart defines.
const (
	TypeNormal   Type = "Normal"
	TypeFire     Type = "Fire"
	TypeWater    Type = "Water"
	TypeElectric Type = "Electric"
	TypeGrass    Type = "Grass"
	TypeIce      Type = "Ice"
	TypeFighting Type = "Fighting"
	TypePoison   Type = "Poison"
	TypeGround   Type = "Ground"
	TypeFlying   Type = "Flying"
	TypePsychic  Type = "Psychic"
	TypeBug      Type = "Bug"
	TypeRock     Type = "Rock"
	TypeGhost    Type = "Ghost"
	TypeDragon   Type = "Dragon"
	TypeDark     Type = "Dark"
	TypeSteel    Type = "Steel"
	TypeFairy    Type = "Fairy"
)

// TypeChart maps attacking type to defending type to a damage
// multiplier. Pairs absent from the chart are neutral (1.0).
type TypeChart map[Type]map[Type]float64

// Effectiveness returns the multiplier for a single attacking and
// defending type pair.
func (tc TypeChart) Effectiveness(attacking, defending Type) float64 {
	if row, ok := tc[attacking]; ok {
		if mult, ok := row[defending]; ok {
			return mult
		}
	}
	return 1.0
}

// EffectivenessAgainst multiplies the chart entries for every type the
// defender carries. A dual-typed defender can stack to 4x or cancel to 0.
func (tc TypeChart) EffectivenessAgainst(attacking Type, defending []Type) float64 {
	eff := 1.0
	for _, dt := range defending {
		eff *= tc.Effectiveness(attacking, dt)
	}
	return eff
}

// Category tells the engine which attack and defense stats a move uses,
// or that it deals no direct damage at all.
type Category string

const (
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
	CategoryStatus   Category = "Status"
)

// MoveEffect is the optional secondary payload of a move. Chance is
// shared by the status and the chance-based stage maps; each consumer
// applies its own default when it is zero.
type MoveEffect struct {
	Status          Status          `json:"status,omitempty"`
	Chance          float64         `json:"chance,omitempty"`
	StatBoost       map[Stat]int    `json:"stat_boost,omitempty"`
	StatDrop        map[Stat]int    `json:"stat_drop,omitempty"`
	StatBoostChance map[Stat]int    `json:"stat_boost_chance,omitempty"`
	StatDropChance  map[Stat]int    `json:"stat_drop_chance,omitempty"`
	Heal            float64         `json:"heal,omitempty"`
	Drain           float64         `json:"drain,omitempty"`
	Recoil          float64         `json:"recoil,omitempty"`
}

// Move is a catalog entry. Accuracy is a percentage; 100 means the
// accuracy roll is skipped entirely. Priority orders same-turn moves
// before speed is consulted.
type Move struct {
	Name     string     `json:"name"`
	Type     Type       `json:"type"`
	Category Category   `json:"category"`
	Power    int        `json:"power"`
	Accuracy int        `json:"accuracy"`
	Priority int        `json:"priority,omitempty"`
	Effect   MoveEffect `json:"effect"`
}

// BaseStats are the per-species bases that level scaling is applied to.
type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Total is the base stat total, used to rank species strength.
func (b BaseStats) Total() int {
	return b.HP + b.Attack + b.Defense + b.SpAttack + b.SpDefense + b.Speed
}

// Species is a catalog entry. Moves is the learnset by move name; a
// combatant built from the species keeps at most the first four.
type Species struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Types     []Type    `json:"types"`
	BaseStats BaseStats `json:"base_stats"`
	Moves     []string  `json:"moves"`
}

// Dex is the loaded, read-only game data: species, moves and the type
// chart. It is shared by the engine, the policies and the API without
// locking because nothing mutates it after load.
type Dex struct {
	species     []Species
	moves       []Move
	chart       TypeChart
	speciesByID map[int]*Species
	movesByName map[string]*Move
}

// NewDex indexes the given catalog. Input slices are kept, not copied;
// callers hand over ownership.
func NewDex(species []Species, moves []Move, chart TypeChart) *Dex {
	d := &Dex{
		species:     species,
		moves:       moves,
		chart:       chart,
		speciesByID: make(map[int]*Species, len(species)),
		movesByName: make(map[string]*Move, len(moves)),
	}
	for i := range species {
		d.speciesByID[species[i].ID] = &species[i]
	}
	for i := range moves {
		d.movesByName[moves[i].Name] = &moves[i]
	}
	return d
}

func (d *Dex) SpeciesByID(id int) (*Species, bool) {
	sp, ok := d.speciesByID[id]
	return sp, ok
}

func (d *Dex) MoveByName(name string) (*Move, bool) {
	m, ok := d.movesByName[name]
	return m, ok
}

// Species returns the catalog in load order.
func (d *Dex) Species() []Species { return d.species }

// Moves returns the catalog in load order.
func (d *Dex) Moves() []Move { return d.moves }

func (d *Dex) Chart() TypeChart { return d.chart }
