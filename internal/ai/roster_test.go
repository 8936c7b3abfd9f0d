package ai

import (
	"math/rand"
	"testing"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

func TestBuildRoster_DistinctSpeciesAtDefaultLevel(t *testing.T) {
	dex := aiDex()
	team, err := BuildRoster(dex, rand.New(rand.NewSource(3)), TierEasy, 4)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}

	if len(team) != 4 {
		t.Fatalf("team size = %d, want 4", len(team))
	}
	seen := map[string]bool{}
	for _, c := range team {
		if seen[c.Name] {
			t.Fatalf("duplicate species %s", c.Name)
		}
		seen[c.Name] = true
		if c.Level != game.DefaultLevel {
			t.Fatalf("level = %d, want %d", c.Level, game.DefaultLevel)
		}
	}
}

func TestBuildRoster_HardAnchorsOnBaseStatTotals(t *testing.T) {
	dex := aiDex()
	team, err := BuildRoster(dex, rand.New(rand.NewSource(9)), TierHard, 4)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}

	// Zippy carries the highest total in the catalog; the flat-stat
	// species tie behind it in catalog order.
	if team[0].Name != "Zippy" || team[1].Name != "Embero" {
		t.Fatalf("anchors = %s, %s", team[0].Name, team[1].Name)
	}
}

func TestBuildRoster_MediumAnchorsFromTheUpperHalf(t *testing.T) {
	dex := aiDex()
	team, err := BuildRoster(dex, &seqRng{ints: []int{2}}, TierMedium, 3)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}

	// Upper half by total: Zippy, then the flat-stat species in
	// catalog order. Index 2 lands on Aquari.
	if team[0].Name != "Aquari" {
		t.Fatalf("anchor = %s, want Aquari", team[0].Name)
	}
	if len(team) != 3 {
		t.Fatalf("team size = %d, want 3", len(team))
	}
}

func TestBuildRoster_CapsAtCatalogSize(t *testing.T) {
	dex := aiDex()
	team, err := BuildRoster(dex, rand.New(rand.NewSource(1)), TierEasy, 50)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}

	if len(team) != len(dex.Species()) {
		t.Fatalf("team size = %d, want the whole catalog", len(team))
	}
}
