package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

type rawConfig struct {
	Species   []game.Species `json:"species"`
	Moves     []game.Move    `json:"moves"`
	TypeChart game.TypeChart `json:"type_chart"`
	Server    *struct {
		BattleAddress string `json:"battle_address"`
		OpsAddress    string `json:"ops_address"`
	} `json:"server"`
}

// LoadedConfig is the validated game data plus the addresses to bind.
type LoadedConfig struct {
	Dex           *game.Dex
	BattleAddress string
	OpsAddress    string
}

// LoadConfig reads and validates the configuration file at path. It
// requires non-empty `species` and `moves` arrays plus a `type_chart`,
// and rejects catalogs that reference unknown moves or types, so bad
// data fails at startup instead of mid-battle.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.Species) == 0 {
		return nil, fmt.Errorf("config file %s: species is empty (provide 'species' array)", path)
	}
	if len(rc.Moves) == 0 {
		return nil, fmt.Errorf("config file %s: moves is empty (provide 'moves' array)", path)
	}
	if len(rc.TypeChart) == 0 {
		return nil, fmt.Errorf("config file %s: type_chart is empty", path)
	}

	knownTypes := make(map[game.Type]struct{}, len(rc.TypeChart))
	for attacking, row := range rc.TypeChart {
		knownTypes[attacking] = struct{}{}
		for defending := range row {
			knownTypes[defending] = struct{}{}
		}
	}

	moveNames := make(map[string]struct{}, len(rc.Moves))
	for _, m := range rc.Moves {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("config file %s: move entry missing 'name'", path)
		}
		if _, exists := moveNames[m.Name]; exists {
			return nil, fmt.Errorf("config file %s: duplicate move name '%s'", path, m.Name)
		}
		moveNames[m.Name] = struct{}{}
		if _, ok := knownTypes[m.Type]; !ok {
			return nil, fmt.Errorf("config file %s: move '%s' has unknown type '%s'", path, m.Name, m.Type)
		}
		switch m.Category {
		case game.CategoryPhysical, game.CategorySpecial, game.CategoryStatus:
		default:
			return nil, fmt.Errorf("config file %s: move '%s' has unknown category '%s'", path, m.Name, m.Category)
		}
		if m.Power < 0 {
			return nil, fmt.Errorf("config file %s: move '%s' has negative power", path, m.Name)
		}
		if m.Accuracy < 1 || m.Accuracy > 100 {
			return nil, fmt.Errorf("config file %s: move '%s' accuracy must be 1-100, got %d", path, m.Name, m.Accuracy)
		}
		if m.Effect.Chance < 0 || m.Effect.Chance > 1 {
			return nil, fmt.Errorf("config file %s: move '%s' effect chance must be 0-1", path, m.Name)
		}
		if m.Effect.Heal < 0 || m.Effect.Heal > 1 {
			return nil, fmt.Errorf("config file %s: move '%s' heal fraction must be 0-1", path, m.Name)
		}
		if m.Effect.Drain < 0 || m.Effect.Drain > 1 {
			return nil, fmt.Errorf("config file %s: move '%s' drain fraction must be 0-1", path, m.Name)
		}
		if m.Effect.Recoil < 0 || m.Effect.Recoil > 1 {
			return nil, fmt.Errorf("config file %s: move '%s' recoil fraction must be 0-1", path, m.Name)
		}
	}

	speciesIDs := make(map[int]struct{}, len(rc.Species))
	speciesNames := make(map[string]struct{}, len(rc.Species))
	for _, sp := range rc.Species {
		if strings.TrimSpace(sp.Name) == "" {
			return nil, fmt.Errorf("config file %s: species entry missing 'name'", path)
		}
		if sp.ID <= 0 {
			return nil, fmt.Errorf("config file %s: species '%s' needs a positive id", path, sp.Name)
		}
		if _, exists := speciesIDs[sp.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species id %d", path, sp.ID)
		}
		speciesIDs[sp.ID] = struct{}{}
		ln := strings.ToLower(strings.TrimSpace(sp.Name))
		if _, exists := speciesNames[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species name '%s'", path, sp.Name)
		}
		speciesNames[ln] = struct{}{}
		if len(sp.Types) == 0 {
			return nil, fmt.Errorf("config file %s: species '%s' has no types", path, sp.Name)
		}
		for _, t := range sp.Types {
			if _, ok := knownTypes[t]; !ok {
				return nil, fmt.Errorf("config file %s: species '%s' has unknown type '%s'", path, sp.Name, t)
			}
		}
		bs := sp.BaseStats
		if bs.HP <= 0 || bs.Attack <= 0 || bs.Defense <= 0 || bs.SpAttack <= 0 || bs.SpDefense <= 0 || bs.Speed <= 0 {
			return nil, fmt.Errorf("config file %s: species '%s' base stats must all be positive", path, sp.Name)
		}
		if len(sp.Moves) == 0 {
			return nil, fmt.Errorf("config file %s: species '%s' has no moves", path, sp.Name)
		}
		for _, mn := range sp.Moves {
			if _, ok := moveNames[mn]; !ok {
				return nil, fmt.Errorf("config file %s: species '%s' references unknown move '%s'", path, sp.Name, mn)
			}
		}
	}

	battleAddr := ":5555"
	opsAddr := ":8080"
	if rc.Server != nil {
		if rc.Server.BattleAddress != "" {
			battleAddr = rc.Server.BattleAddress
		}
		if rc.Server.OpsAddress != "" {
			opsAddr = rc.Server.OpsAddress
		}
	}

	return &LoadedConfig{
		Dex:           game.NewDex(rc.Species, rc.Moves, rc.TypeChart),
		BattleAddress: battleAddr,
		OpsAddress:    opsAddr,
	}, nil
}
