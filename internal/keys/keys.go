package keys

import "strings"

// PlayerKeyFromName produces a canonical key for a player name.
// Behavior: trims, lower-cases and replaces spaces with underscores.
// Suitable for stable DB keys so "Ash Ketchum" and "ash ketchum"
// share one record.
func PlayerKeyFromName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
