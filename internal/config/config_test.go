package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `{
  "species": [
    {
      "id": 1,
      "name": "Embero",
      "types": ["Fire"],
      "base_stats": {"hp": 78, "attack": 84, "defense": 78, "sp_attack": 109, "sp_defense": 85, "speed": 100},
      "moves": ["Flame Burst", "Tackle"]
    },
    {
      "id": 2,
      "name": "Aquarion",
      "types": ["Water"],
      "base_stats": {"hp": 79, "attack": 83, "defense": 100, "sp_attack": 85, "sp_defense": 105, "speed": 78},
      "moves": ["Tackle"]
    }
  ],
  "moves": [
    {"name": "Flame Burst", "type": "Fire", "category": "Special", "power": 70, "accuracy": 100,
     "effect": {"status": "burned", "chance": 0.1}},
    {"name": "Tackle", "type": "Normal", "category": "Physical", "power": 40, "accuracy": 100}
  ],
  "type_chart": {
    "Fire": {"Water": 0.5, "Grass": 2.0, "Normal": 1.0},
    "Water": {"Fire": 2.0},
    "Normal": {}
  },
  "server": {"battle_address": ":7777"}
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BattleAddress != ":7777" {
		t.Errorf("battle address = %q, want :7777", cfg.BattleAddress)
	}
	if cfg.OpsAddress != ":8080" {
		t.Errorf("ops address should default to :8080, got %q", cfg.OpsAddress)
	}
	sp, ok := cfg.Dex.SpeciesByID(1)
	if !ok || sp.Name != "Embero" {
		t.Fatalf("species 1 = %v, %v", sp, ok)
	}
	m, ok := cfg.Dex.MoveByName("Flame Burst")
	if !ok {
		t.Fatal("Flame Burst should be loaded")
	}
	if m.Effect.Status != "burned" || m.Effect.Chance != 0.1 {
		t.Errorf("effect = %+v, want burned at 0.1", m.Effect)
	}
	if got := cfg.Dex.Chart().Effectiveness("Water", "Fire"); got != 2.0 {
		t.Errorf("Water vs Fire = %v, want 2.0", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadConfigRejectsBadData(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "invalid json",
			mutate:  func(s string) string { return s[:len(s)-2] },
			wantErr: "failed to parse",
		},
		{
			name:    "unknown learnset move",
			mutate:  func(s string) string { return strings.Replace(s, `"Tackle"]`, `"Hyper Beam"]`, 1) },
			wantErr: "unknown move",
		},
		{
			name:    "duplicate species id",
			mutate:  func(s string) string { return strings.Replace(s, `"id": 2`, `"id": 1`, 1) },
			wantErr: "duplicate species id",
		},
		{
			name:    "duplicate species name",
			mutate:  func(s string) string { return strings.Replace(s, `"Aquarion"`, `"embero"`, 1) },
			wantErr: "duplicate species name",
		},
		{
			name:    "unknown species type",
			mutate:  func(s string) string { return strings.Replace(s, `["Water"]`, `["Lava"]`, 1) },
			wantErr: "unknown type",
		},
		{
			name:    "unknown move category",
			mutate:  func(s string) string { return strings.Replace(s, `"Physical"`, `"Melee"`, 1) },
			wantErr: "unknown category",
		},
		{
			name:    "accuracy out of range",
			mutate:  func(s string) string { return strings.Replace(s, `"accuracy": 100}`, `"accuracy": 140}`, 1) },
			wantErr: "accuracy",
		},
		{
			name:    "effect chance out of range",
			mutate:  func(s string) string { return strings.Replace(s, `"chance": 0.1`, `"chance": 1.5`, 1) },
			wantErr: "chance",
		},
		{
			name:    "no species",
			mutate:  func(s string) string { return `{"species": [], "moves": [], "type_chart": {}}` },
			wantErr: "species is empty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.mutate(validConfig)))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
