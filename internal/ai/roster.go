package ai

import (
	"sort"

	"github.com/FernandosLando/pokemonSim/internal/game"
)

// BuildRoster drafts a team of n distinct species for an AI side at
// the default level. Easy drafts blind; medium anchors the team with
// one species from the stronger half of the catalog; hard anchors it
// with the two highest base stat totals. The rest fills in at random.
func BuildRoster(dex *game.Dex, rng game.Rand, tier Tier, n int) ([]*game.Combatant, error) {
	species := dex.Species()
	if n > len(species) {
		n = len(species)
	}

	ranked := make([]int, len(species))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return species[ranked[a]].BaseStats.Total() > species[ranked[b]].BaseStats.Total()
	})

	taken := make(map[int]bool, n)
	var picks []int
	claim := func(i int) {
		picks = append(picks, i)
		taken[i] = true
	}

	switch tier {
	case TierMedium:
		upper := ranked[:(len(ranked)+1)/2]
		claim(upper[rng.Intn(len(upper))])
	case TierHard:
		for _, i := range ranked {
			if len(picks) == 2 || len(picks) == n {
				break
			}
			claim(i)
		}
	}

	pool := make([]int, 0, len(species))
	for i := range species {
		if !taken[i] {
			pool = append(pool, i)
		}
	}
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	for _, i := range pool {
		if len(picks) == n {
			break
		}
		claim(i)
	}

	team := make([]*game.Combatant, 0, n)
	for _, i := range picks {
		c, err := game.NewCombatant(dex, species[i].ID, game.DefaultLevel, "")
		if err != nil {
			return nil, err
		}
		team = append(team, c)
	}
	return team, nil
}
