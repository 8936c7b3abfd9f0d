package game

import "testing"

func TestTypeChartEffectiveness(t *testing.T) {
	chart := TypeChart{
		TypeElectric: {TypeWater: 2.0, TypeFlying: 2.0, TypeGround: 0.0, TypeGrass: 0.5},
	}

	if got := chart.Effectiveness(TypeElectric, TypeWater); got != 2.0 {
		t.Errorf("Electric vs Water = %v, want 2.0", got)
	}
	if got := chart.Effectiveness(TypeElectric, TypeNormal); got != 1.0 {
		t.Errorf("missing pair should be neutral, got %v", got)
	}
	if got := chart.Effectiveness(TypeFire, TypeWater); got != 1.0 {
		t.Errorf("missing attacking row should be neutral, got %v", got)
	}

	if got := chart.EffectivenessAgainst(TypeElectric, []Type{TypeWater, TypeFlying}); got != 4.0 {
		t.Errorf("dual weakness should stack to 4.0, got %v", got)
	}
	if got := chart.EffectivenessAgainst(TypeElectric, []Type{TypeWater, TypeGround}); got != 0.0 {
		t.Errorf("an immune type zeroes the product, got %v", got)
	}
	if got := chart.EffectivenessAgainst(TypeElectric, nil); got != 1.0 {
		t.Errorf("no defender types means neutral, got %v", got)
	}
}

func TestDexLookups(t *testing.T) {
	dex := testDex(t)

	sp, ok := dex.SpeciesByID(2)
	if !ok || sp.Name != "Voltik" {
		t.Fatalf("SpeciesByID(2) = %v, %v", sp, ok)
	}
	if _, ok := dex.SpeciesByID(42); ok {
		t.Error("unknown id should miss")
	}

	m, ok := dex.MoveByName("Tackle")
	if !ok || m.Power != 40 {
		t.Fatalf("MoveByName(Tackle) = %v, %v", m, ok)
	}
	if _, ok := dex.MoveByName("Splash"); ok {
		t.Error("unknown move should miss")
	}

	if len(dex.Species()) != 3 || len(dex.Moves()) != 1 {
		t.Errorf("catalog sizes = %d species, %d moves", len(dex.Species()), len(dex.Moves()))
	}
}
