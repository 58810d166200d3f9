package generator

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/comodds/protoslip/internal/pkg/models"
)

// buildCandidate assembles one structurally valid combination, or returns nil
// when this attempt cannot satisfy the structural constraints or lands outside
// the odds band. A nil here is not an error; the orchestrator retries.
func buildCandidate(rng *rand.Rand, groups []eventGroup, req *Request, legCount int, band oddsBand) *models.Combination {
	drawCount := req.requiredDraws()

	drawable := make([]eventGroup, 0, len(groups))
	plain := make([]eventGroup, 0, len(groups))
	for _, g := range groups {
		if g.hasDraw() {
			drawable = append(drawable, g)
		} else {
			plain = append(plain, g)
		}
	}
	shuffleGroups(rng, drawable)
	shuffleGroups(rng, plain)

	if len(drawable) < drawCount {
		return nil
	}
	reserved := drawable[:drawCount]

	rest := append(append([]eventGroup{}, drawable[drawCount:]...), plain...)
	shuffleGroups(rng, rest)

	need := legCount - drawCount
	if need < 0 || len(rest) < need {
		return nil
	}

	legs := make([]models.Leg, 0, legCount)

	// Forced draw picks land on a draw-capable variant of the event
	for _, g := range reserved {
		variants := make([]models.Match, 0, len(g.matches))
		for _, m := range g.matches {
			if m.Odds.HasDraw() {
				variants = append(variants, m)
			}
		}
		match := variants[rng.Intn(len(variants))]
		legs = append(legs, models.Leg{
			Match:    match,
			Selected: models.OutcomeDraw,
			Price:    match.Odds.Draw,
		})
	}

	// Remaining slots: one random bet-type variant per event, outcomes
	// assigned in priority order to hit the category requirements exactly
	favorites := req.requiredFavorites()
	underdogs := req.requiredUnderdogs()
	for i := 0; i < need; i++ {
		g := rest[i]
		match := g.matches[rng.Intn(len(g.matches))]

		var selected models.Outcome
		var price float64
		switch {
		case favorites > 0:
			selected, price = match.Odds.Favorite()
			favorites--
		case underdogs > 0:
			selected, price = match.Odds.Underdog()
			underdogs--
		default:
			outs := match.Odds.Outcomes()
			selected = outs[rng.Intn(len(outs))]
			price, _ = match.Odds.Price(selected)
		}

		legs = append(legs, models.Leg{Match: match, Selected: selected, Price: price})
	}
	if favorites > 0 || underdogs > 0 {
		return nil
	}

	combination := &models.Combination{
		ID:    uuid.NewString(),
		Legs:  legs,
		Stake: req.Stake,
	}
	combination.TotalOdds = models.TotalOdds(combination.Prices())
	if !band.contains(combination.TotalOdds) {
		return nil
	}
	combination.EstimatedPayout = models.EstimatedPayout(req.Stake, combination.TotalOdds)

	// Stable display order
	sort.Slice(combination.Legs, func(i, j int) bool {
		return combination.Legs[i].Match.GameNumber < combination.Legs[j].Match.GameNumber
	})

	return combination
}

func shuffleGroups(rng *rand.Rand, groups []eventGroup) {
	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
}
