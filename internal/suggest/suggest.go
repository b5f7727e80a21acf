// Package suggest picks habit ideas to show next to the add form.
package suggest

import "math/rand/v2"

// DefaultPool is used when the config does not override the pool.
var DefaultPool = []string{
	"Read for 10 minutes every day",
	"Meditate for 5 minutes",
	"Take a 30-minute walk",
	"Write a journal entry",
	"Drink 8 glasses of water",
	"Practice a musical instrument for 15 minutes",
	"Do 10 minutes of stretching",
	"Spend 15 minutes learning a new language",
}

// First picks the initial suggestion. It returns "" for an empty pool.
func First(pool []string, rng *rand.Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[intN(rng, len(pool))]
}

// Next returns a suggestion drawn uniformly from pool without current.
// If every entry equals current, current is returned.
func Next(current string, pool []string, rng *rand.Rand) string {
	candidates := make([]string, 0, len(pool))
	for _, p := range pool {
		if p != current {
			candidates = append(candidates, p)
		}
	}
	switch len(candidates) {
	case 0:
		if len(pool) == 0 {
			return ""
		}
		return current
	case 1:
		return candidates[0]
	}
	return candidates[intN(rng, len(candidates))]
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
