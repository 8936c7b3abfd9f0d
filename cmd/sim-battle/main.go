// Package main provides a CLI that pits two scripted trainers against
// each other without any networking. Useful for balancing movesets and
// for replaying battles from a seed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/FernandosLando/pokemonSim/internal/ai"
	"github.com/FernandosLando/pokemonSim/internal/config"
	"github.com/FernandosLando/pokemonSim/internal/engine"
	"github.com/FernandosLando/pokemonSim/internal/game"
	"github.com/FernandosLando/pokemonSim/internal/random"
)

func main() {
	var (
		configPath string
		p1         string
		p2         string
		seed       int64
		teamSize   int
		maxTurns   int
	)
	flag.StringVar(&configPath, "config", "./pokemon_config.json", "path to the battle configuration file")
	flag.StringVar(&p1, "p1", string(ai.TierMedium), "difficulty of the first trainer (easy, medium, hard)")
	flag.StringVar(&p2, "p2", string(ai.TierMedium), "difficulty of the second trainer (easy, medium, hard)")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random)")
	flag.IntVar(&teamSize, "team-size", 3, "pokemon per trainer (1-6)")
	flag.IntVar(&maxTurns, "max-turns", 200, "stop and call a draw after this many turns")
	flag.Parse()

	if err := run(configPath, p1, p2, seed, teamSize, maxTurns); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, p1, p2 string, seed int64, teamSize, maxTurns int) error {
	tier1, err := parseTier(p1)
	if err != nil {
		return err
	}
	tier2, err := parseTier(p2)
	if err != nil {
		return err
	}
	if teamSize < 1 || teamSize > game.MaxTeamSize {
		return fmt.Errorf("team size %d is out of range (1-%d)", teamSize, game.MaxTeamSize)
	}
	if maxTurns < 1 {
		return fmt.Errorf("max turns must be positive")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(seed))

	red, err := buildTrainer(cfg.Dex, rng, "Red", tier1, teamSize)
	if err != nil {
		return err
	}
	blue, err := buildTrainer(cfg.Dex, rng, "Blue", tier2, teamSize)
	if err != nil {
		return err
	}

	fmt.Printf("Seed: %d\n", seed)
	printTeam(red, tier1)
	printTeam(blue, tier2)

	redPolicy := ai.ForTier(tier1, cfg.Dex, rng)
	bluePolicy := ai.ForTier(tier2, cfg.Dex, rng)

	battle := game.NewBattle(red, blue)
	eng := engine.New(cfg.Dex, rng)

	for battle.Status == game.BattleInProgress && battle.Turn < maxTurns {
		redAction := redPolicy.ChooseAction(battle, red, blue)
		blueAction := bluePolicy.ChooseAction(battle, blue, red)
		turnLog := eng.ExecuteTurn(battle, redAction, blueAction)

		fmt.Printf("--- Turn %d ---\n", battle.Turn)
		for _, line := range turnLog {
			fmt.Println(line)
		}

		replaceFainted(battle, red, redPolicy)
		replaceFainted(battle, blue, bluePolicy)
	}

	fmt.Println("--- Result ---")
	switch {
	case battle.Status == game.BattleInProgress:
		fmt.Printf("Still going after %d turns. Calling it a draw.\n", battle.Turn)
	case battle.WinnerSide() != nil:
		fmt.Println(battle.WinnerSide().Name + " won the battle!")
	default:
		fmt.Println("No one won the battle!")
	}
	fmt.Printf("Replay with -seed %d\n", seed)
	return nil
}

func parseTier(s string) (ai.Tier, error) {
	switch tier := ai.Tier(strings.ToLower(strings.TrimSpace(s))); tier {
	case ai.TierEasy, ai.TierMedium, ai.TierHard:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

func buildTrainer(dex *game.Dex, rng game.Rand, name string, tier ai.Tier, teamSize int) (*game.Side, error) {
	side := game.NewSide(name, game.Control{Kind: game.ControlAI})
	roster, err := ai.BuildRoster(dex, rng, tier, teamSize)
	if err != nil {
		return nil, err
	}
	for _, c := range roster {
		if err := side.AddCombatant(c); err != nil {
			return nil, err
		}
	}
	return side, nil
}

func printTeam(side *game.Side, tier ai.Tier) {
	names := make([]string, 0, len(side.Roster))
	for _, c := range side.Roster {
		names = append(names, c.Nickname)
	}
	fmt.Printf("%s (%s): %s\n", side.Name, tier, strings.Join(names, ", "))
}

// replaceFainted sends out the policy's replacement when the active
// pokemon went down but the trainer still has someone left.
func replaceFainted(b *game.Battle, side *game.Side, pol ai.Policy) {
	if b.Status != game.BattleInProgress {
		return
	}
	active := side.Active()
	if active == nil || !active.IsFainted() || !side.HasUsable() {
		return
	}
	action := pol.ChooseSwitch(side, b.Opponent(side))
	if action.Kind != game.ActionSwitch || !side.SwitchTo(action.SwitchIndex) {
		for i, c := range side.Roster {
			if !c.IsFainted() {
				side.SwitchTo(i)
				break
			}
		}
	}
	fmt.Println(side.Name + " sent out " + side.Active().Nickname + "!")
}
