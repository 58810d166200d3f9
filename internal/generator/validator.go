package generator

import "github.com/comodds/protoslip/internal/pkg/models"

// Policy thresholds carried over from the proto house rules
const (
	// maxConcentration caps how much of the total odds one leg may contribute
	maxConcentration = 0.7
	// extremePrice marks a leg as an extreme longshot
	extremePrice = 5.0
	// maxExtremeLegs is the allowed number of extreme longshots per slip
	maxExtremeLegs = 1
	// maxPerLeague is the allowed number of legs from one league when the
	// same-league guard is on
	maxPerLeague = 2
)

// validateCombination applies the policy rejection rules to a structurally
// complete candidate. Kept separate from construction so the rules can be
// exercised against hand-built combinations.
func validateCombination(c *models.Combination, req *Request) bool {
	// One pick per underlying event, re-checked independently of the builder
	seen := make(map[string]bool, len(c.Legs))
	for _, key := range c.GroupKeys() {
		if seen[key] {
			return false
		}
		seen[key] = true
	}

	// No single leg may dominate the slip
	if len(c.Legs) >= 2 {
		for _, leg := range c.Legs {
			if leg.Price/c.TotalOdds > maxConcentration {
				return false
			}
		}
	}

	// At most one extreme longshot
	extreme := 0
	for _, leg := range c.Legs {
		if leg.Price >= extremePrice {
			extreme++
		}
	}
	if extreme > maxExtremeLegs {
		return false
	}

	if req.AvoidSameLeague {
		perLeague := make(map[string]int, len(c.Legs))
		for _, leg := range c.Legs {
			perLeague[leg.Match.League]++
			if perLeague[leg.Match.League] > maxPerLeague {
				return false
			}
		}
	}

	return categoryCounts(c, req)
}

// categoryCounts re-derives the draw/favorite/underdog classification of every
// leg and checks the configured minimums. Favorite is the lower of home/away,
// underdog the higher, ties favor home for both.
func categoryCounts(c *models.Combination, req *Request) bool {
	draws, favorites, underdogs := 0, 0, 0
	for _, leg := range c.Legs {
		if leg.Selected == models.OutcomeDraw {
			draws++
			continue
		}
		if fav, _ := leg.Match.Odds.Favorite(); leg.Selected == fav {
			favorites++
		}
		if dog, _ := leg.Match.Odds.Underdog(); leg.Selected == dog {
			underdogs++
		}
	}

	if draws < req.requiredDraws() {
		return false
	}
	if favorites < req.requiredFavorites() {
		return false
	}
	if underdogs < req.requiredUnderdogs() {
		return false
	}
	return true
}
