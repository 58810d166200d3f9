package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/comodds/protoslip/internal/catalog"
	"github.com/comodds/protoslip/internal/generator"
	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

func main() {
	var (
		catalogPath = flag.String("catalog", "", "Path to catalog JSON file (required)")
		legs        = flag.Int("legs", 0, "Number of legs (0 = random 2-10)")
		target      = flag.Float64("target", 0, "Target total odds (0 = unconstrained)")
		stake       = flag.Int64("stake", 10000, "Stake amount")
		sports      = flag.String("sports", "", "Comma-separated sport allow-list")
		betTypes    = flag.String("bet-types", "", "Comma-separated bet-type allow-list")
		dates       = flag.String("dates", "", "Comma-separated deadline dates (YYYY-MM-DD)")
		draws       = flag.Int("draws", -1, "Minimum draw picks (-1 = off)")
		favorites   = flag.Int("favorites", -1, "Minimum favorite picks (-1 = off)")
		underdogs   = flag.Int("underdogs", -1, "Minimum underdog picks (-1 = off)")
		sameLeague  = flag.Bool("avoid-same-league", false, "Reject slips with 3+ legs from one league")
		seed        = flag.Int64("seed", 0, "Random seed (0 = time-seeded)")
		jsonOut     = flag.Bool("json", false, "Print the combination as JSON")
	)
	flag.Parse()

	if *catalogPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	matches, err := catalog.LoadFile(*catalogPath)
	if err != nil {
		log.Fatalf("slip-gen: %v", err)
	}

	req := generator.Request{
		TargetOdds:      *target,
		LegCount:        *legs,
		Stake:           *stake,
		AvoidSameLeague: *sameLeague,
	}
	if req.Sports, err = parseSports(*sports); err != nil {
		log.Fatalf("slip-gen: %v", err)
	}
	if req.BetTypes, err = parseBetTypes(*betTypes); err != nil {
		log.Fatalf("slip-gen: %v", err)
	}
	req.Dates = splitList(*dates)
	if *draws >= 0 {
		req.RequireDraws = true
		req.DrawCount = *draws
	}
	if *favorites >= 0 {
		req.RequireFavorites = true
		req.FavoriteCount = *favorites
	}
	if *underdogs >= 0 {
		req.RequireUnderdogs = true
		req.UnderdogCount = *underdogs
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	combination, err := generator.New(rng).Generate(matches, req)
	if err != nil {
		log.Fatalf("slip-gen: %v", err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(combination); err != nil {
			log.Fatalf("slip-gen: failed to encode combination: %v", err)
		}
		return
	}

	printCombination(combination)
}

func printCombination(c *models.Combination) {
	for i, leg := range c.Legs {
		fmt.Printf("%d. [%s] %s vs %s (%s, %s) — %s @ %.2f\n",
			i+1,
			leg.Match.League,
			leg.Match.HomeTeam,
			leg.Match.AwayTeam,
			leg.Match.Sport.GetSportInfo().Name,
			leg.Match.BetType.GetBetTypeName(),
			selectedLabel(leg.Selected),
			leg.Price)
	}
	fmt.Printf("Total odds: %.2f\n", c.TotalOdds)
	fmt.Printf("Stake: %d\n", c.Stake)
	fmt.Printf("Estimated payout: %d\n", c.EstimatedPayout)
}

func selectedLabel(out models.Outcome) string {
	switch out {
	case models.OutcomeHome:
		return "home win"
	case models.OutcomeDraw:
		return "draw"
	case models.OutcomeAway:
		return "away win"
	default:
		return string(out)
	}
}

func parseSports(list string) ([]enums.Sport, error) {
	parts := splitList(list)
	out := make([]enums.Sport, 0, len(parts))
	for _, p := range parts {
		sport, err := enums.ParseSport(p)
		if err != nil {
			return nil, err
		}
		out = append(out, sport)
	}
	return out, nil
}

func parseBetTypes(list string) ([]enums.BetType, error) {
	parts := splitList(list)
	out := make([]enums.BetType, 0, len(parts))
	for _, p := range parts {
		betType, err := enums.ParseBetType(p)
		if err != nil {
			return nil, err
		}
		out = append(out, betType)
	}
	return out, nil
}

func splitList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
