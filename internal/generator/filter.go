package generator

import (
	"time"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

// eventGroup holds all bet-type variants priced on one underlying event
type eventGroup struct {
	key     string
	matches []models.Match
}

// hasDraw reports whether any variant of the event offers a draw price
func (g *eventGroup) hasDraw() bool {
	for i := range g.matches {
		if g.matches[i].Odds.HasDraw() {
			return true
		}
	}
	return false
}

// filterCatalog narrows the catalog to the candidate pool: open propositions
// with a future deadline, restricted by the request's allow-lists, grouped by
// underlying event. Group order follows first appearance in the input so a
// seeded generator is reproducible. The input slice is never mutated.
func filterCatalog(matches []models.Match, req *Request, legCount int, now time.Time) ([]eventGroup, error) {
	available := make([]models.Match, 0, len(matches))
	for i := range matches {
		if matches[i].Open(now) {
			available = append(available, matches[i])
		}
	}
	if len(available) == 0 {
		return nil, &NoMatchesError{}
	}

	available = filterAllowed(available, req)
	if len(available) == 0 {
		return nil, &NoMatchesError{Filtered: true}
	}

	groups := groupByEvent(available)
	if len(groups) < legCount {
		return nil, &NotEnoughMatchesError{Available: len(groups), Requested: legCount}
	}

	if required := req.requiredDraws(); required > 0 {
		drawable := 0
		for i := range groups {
			if groups[i].hasDraw() {
				drawable++
			}
		}
		if drawable < required {
			return nil, &NotEnoughDrawMatchesError{Available: drawable, Required: required}
		}
	}

	return groups, nil
}

func filterAllowed(matches []models.Match, req *Request) []models.Match {
	sports := make(map[enums.Sport]bool, len(req.Sports))
	for _, s := range req.Sports {
		sports[s] = true
	}
	betTypes := make(map[enums.BetType]bool, len(req.BetTypes))
	for _, b := range req.BetTypes {
		betTypes[b] = true
	}
	dates := make(map[string]bool, len(req.Dates))
	for _, d := range req.Dates {
		dates[d] = true
	}

	out := make([]models.Match, 0, len(matches))
	for i := range matches {
		m := matches[i]
		if len(sports) > 0 && !sports[m.Sport] {
			continue
		}
		if len(betTypes) > 0 && !betTypes[m.BetType] {
			continue
		}
		if len(dates) > 0 && !dates[m.DeadlineDate()] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// groupByEvent partitions propositions by group key, preserving first-seen order
func groupByEvent(matches []models.Match) []eventGroup {
	index := make(map[string]int, len(matches))
	groups := make([]eventGroup, 0, len(matches))
	for i := range matches {
		key := matches[i].GroupKey
		if at, ok := index[key]; ok {
			groups[at].matches = append(groups[at].matches, matches[i])
			continue
		}
		index[key] = len(groups)
		groups = append(groups, eventGroup{key: key, matches: []models.Match{matches[i]}})
	}
	return groups
}
