package engine

import (
	"testing"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// oneMove runs a single turn where only Red acts, with scripted rolls.
func oneMove(t *testing.T, red, blue *game.Side, move string, rng game.Rand) (*game.Battle, []string) {
	t.Helper()
	b := game.NewBattle(red, blue)
	dex := engineDex()
	eng := New(dex, rng)
	log := eng.ExecuteTurn(b, game.MoveAction(move), game.PassAction())
	return b, log
}

func TestDamage_NeutralHit(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Slam"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))

	// Variance pinned to 1.0, no crit. Level 50, power 80, equal
	// attack and defense: ((22*80*100/100)/50)+2 = 37.2.
	_, log := oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{1.0, 0.5}})

	if !hasLine(log, "Aquari took 37 damage!") {
		t.Fatalf("want 37 neutral damage, log: %v", log)
	}
	if blue.Active().CurrentHP != 155-37 {
		t.Fatalf("HP = %d, want %d", blue.Active().CurrentHP, 155-37)
	}
	if hasLine(log, "It's super effective!") || hasLine(log, "It's not very effective...") {
		t.Fatalf("neutral hits carry no commentary, log: %v", log)
	}
}

func TestDamage_STAB(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Scorch"))
	blue := sideWith("Blue", mk(t, dex, 1, "Slam"))

	// 37.2 * 1.5 = 55.8 for a same-type move into a neutral defender.
	_, log := oneMove(t, red, blue, "Scorch", &seqRng{floats: []float64{1.0, 0.5}})

	if !hasLine(log, "Embero took 55 damage!") {
		t.Fatalf("want 55 STAB damage, log: %v", log)
	}
}

func TestDamage_SuperEffective(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 2, "Bubblebeam"))
	blue := sideWith("Blue", mk(t, dex, 1, "Slam"))

	// 37.2 * 1.5 STAB * 2.0 effectiveness = 111.6.
	_, log := oneMove(t, red, blue, "Bubblebeam", &seqRng{floats: []float64{1.0, 0.5}})

	if !hasLine(log, "It's super effective!") {
		t.Fatalf("missing effectiveness line, log: %v", log)
	}
	if !hasLine(log, "Embero took 111 damage!") {
		t.Fatalf("want 111 damage, log: %v", log)
	}
}

func TestDamage_Resisted(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Scorch"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))

	// 55.8 STAB halved by the water defender = 27.9.
	_, log := oneMove(t, red, blue, "Scorch", &seqRng{floats: []float64{1.0, 0.5}})

	if !hasLine(log, "It's not very effective...") {
		t.Fatalf("missing resist line, log: %v", log)
	}
	if !hasLine(log, "Aquari took 27 damage!") {
		t.Fatalf("want 27 damage, log: %v", log)
	}
}

func TestDamage_ImmuneTakesNothing(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 3, "Spark"))
	blue := sideWith("Blue", mk(t, dex, 5, "Slam"))

	_, log := oneMove(t, red, blue, "Spark", &seqRng{})

	if !hasLine(log, "It doesn't affect Terrox...") {
		t.Fatalf("missing immunity line, log: %v", log)
	}
	if hasLineContaining(log, "took") {
		t.Fatalf("immune defenders take no damage, log: %v", log)
	}
	if blue.Active().CurrentHP != blue.Active().MaxHP {
		t.Fatalf("HP changed on an immune hit: %d", blue.Active().CurrentHP)
	}
}

func TestDamage_ImmuneHitStillRunsEffects(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 3, "Shockwave"))
	blue := sideWith("Blue", mk(t, dex, 5, "Slam"))

	_, log := oneMove(t, red, blue, "Shockwave", &seqRng{})

	if blue.Active().CurrentHP != blue.Active().MaxHP {
		t.Fatal("immune hit must not deal damage")
	}
	if !hasLine(log, "Terrox's defense fell!") {
		t.Fatalf("secondary effects should still apply, log: %v", log)
	}
	if blue.Active().StatStages[game.StatDefense] != -1 {
		t.Fatalf("defense stage = %d, want -1", blue.Active().StatStages[game.StatDefense])
	}
}

func TestDamage_CriticalHit(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Slam"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))

	// Variance 0.985, then a crit: 37.2 * 0.985 * 1.5 = 54.96.
	_, log := oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{0.9, 0.01}})

	if !hasLine(log, "A critical hit!") {
		t.Fatalf("missing crit line, log: %v", log)
	}
	if !hasLine(log, "Aquari took 54 damage!") {
		t.Fatalf("want 54 crit damage, log: %v", log)
	}
}

func TestMove_AccuracyRoll(t *testing.T) {
	dex := engineDex()

	red := sideWith("Red", mk(t, dex, 1, "Firefang"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))
	// Roll of 98 against 95 accuracy misses; no damage, no burn.
	_, log := oneMove(t, red, blue, "Firefang", &seqRng{ints: []int{97}, floats: []float64{0.05}})
	if !hasLine(log, "Embero's attack missed!") {
		t.Fatalf("expected a miss, log: %v", log)
	}
	if blue.Active().CurrentHP != blue.Active().MaxHP || blue.Active().Status != game.StatusNone {
		t.Fatal("a missed move must not deal damage or apply effects")
	}

	red = sideWith("Red", mk(t, dex, 1, "Firefang"))
	blue = sideWith("Blue", mk(t, dex, 2, "Slam"))
	// Roll of 95 against 95 accuracy connects.
	_, log = oneMove(t, red, blue, "Firefang", &seqRng{ints: []int{94}})
	if hasLine(log, "Embero's attack missed!") {
		t.Fatalf("a roll equal to accuracy should hit, log: %v", log)
	}
	if !hasLineContaining(log, "took") {
		t.Fatalf("expected damage, log: %v", log)
	}
}

func TestMove_UnknownMoveIsWasted(t *testing.T) {
	dex := engineDex()

	red := sideWith("Red", mk(t, dex, 1, "Slam"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))
	_, log := oneMove(t, red, blue, "Hyper Beam", &seqRng{})
	if !hasLine(log, "Embero tried to use Hyper Beam, but it doesn't know that move!") {
		t.Fatalf("missing unknown-move line, log: %v", log)
	}

	// Known to the catalog but not to this attacker.
	red = sideWith("Red", mk(t, dex, 1, "Slam"))
	blue = sideWith("Blue", mk(t, dex, 2, "Slam"))
	_, log = oneMove(t, red, blue, "Scorch", &seqRng{})
	if !hasLine(log, "Embero tried to use Scorch, but it doesn't know that move!") {
		t.Fatalf("missing unlearned-move line, log: %v", log)
	}
	if blue.Active().CurrentHP != blue.Active().MaxHP {
		t.Fatal("a wasted move must not deal damage")
	}
}

func TestMove_StatusInterruptions(t *testing.T) {
	dex := engineDex()

	red := sideWith("Red", mk(t, dex, 1, "Slam"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))
	red.Active().Status = game.StatusParalyzed
	_, log := oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{0.1}})
	if !hasLine(log, "Embero is paralyzed and couldn't move!") {
		t.Fatalf("expected paralysis skip, log: %v", log)
	}
	if blue.Active().CurrentHP != blue.Active().MaxHP {
		t.Fatal("a paralyzed skip must not deal damage")
	}

	red = sideWith("Red", mk(t, dex, 1, "Slam"))
	blue = sideWith("Blue", mk(t, dex, 2, "Slam"))
	red.Active().Status = game.StatusFrozen
	_, log = oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{0.5}})
	if !hasLine(log, "Embero is frozen solid!") {
		t.Fatalf("expected frozen skip, log: %v", log)
	}

	red = sideWith("Red", mk(t, dex, 1, "Slam"))
	blue = sideWith("Blue", mk(t, dex, 2, "Slam"))
	red.Active().Status = game.StatusFrozen
	_, log = oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{0.9}})
	if hasLine(log, "Embero is frozen solid!") {
		t.Fatalf("a lucky frozen attacker should act, log: %v", log)
	}
	if !hasLineContaining(log, "took") {
		t.Fatalf("expected damage, log: %v", log)
	}

	red = sideWith("Red", mk(t, dex, 1, "Slam"))
	blue = sideWith("Blue", mk(t, dex, 2, "Slam"))
	red.Active().Status = game.StatusAsleep
	_, log = oneMove(t, red, blue, "Slam", &seqRng{})
	if !hasLine(log, "Embero is fast asleep!") {
		t.Fatalf("sleep always skips, log: %v", log)
	}
}

func TestMove_StatusCategorySkipsDamage(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Toxin"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))

	_, log := oneMove(t, red, blue, "Toxin", &seqRng{floats: []float64{0.5}})

	if hasLineContaining(log, "took") {
		t.Fatalf("status moves deal no damage, log: %v", log)
	}
	if !hasLine(log, "Aquari was poisoned!") {
		t.Fatalf("missing status line, log: %v", log)
	}
	if blue.Active().Status != game.StatusPoisoned {
		t.Fatalf("status = %q, want poisoned", blue.Active().Status)
	}
}

func TestMove_BoostedStatsFeedDamage(t *testing.T) {
	dex := engineDex()
	red := sideWith("Red", mk(t, dex, 1, "Slam"))
	blue := sideWith("Blue", mk(t, dex, 2, "Slam"))
	red.Active().StatStages[game.StatAttack] = 2

	// Attack at +2 doubles: ((22*80*200/100)/50)+2 = 72.4.
	_, log := oneMove(t, red, blue, "Slam", &seqRng{floats: []float64{1.0, 0.5}})

	if !hasLine(log, "Aquari took 72 damage!") {
		t.Fatalf("want 72 damage from a boosted attacker, log: %v", log)
	}
}
