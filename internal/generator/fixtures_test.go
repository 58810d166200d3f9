package generator

import (
	"time"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

func openMatch(id, groupKey string, gameNumber int, odds models.Odds) models.Match {
	return models.Match{
		ID:         id,
		GroupKey:   groupKey,
		Round:      "260003",
		GameNumber: gameNumber,
		Sport:      enums.Soccer,
		League:     "K League",
		HomeTeam:   "Home " + groupKey,
		AwayTeam:   "Away " + groupKey,
		BetType:    enums.Moneyline,
		Odds:       odds,
		Deadline:   time.Now().Add(6 * time.Hour),
		Status:     models.MatchOpen,
	}
}

// fourEventCatalog is the end-to-end fixture: two three-way moneylines and
// two two-way moneylines, four independent events.
func fourEventCatalog() []models.Match {
	return []models.Match{
		openMatch("M054", "BM054", 54, models.Odds{Home: 1.72, Draw: 3.10, Away: 3.85}),
		openMatch("M056", "BM056", 56, models.Odds{Home: 2.80, Draw: 3.10, Away: 2.07}),
		openMatch("M058", "BM058", 58, models.Odds{Home: 2.00, Away: 1.54}),
		openMatch("M059", "BM059", 59, models.Odds{Home: 1.23, Away: 2.97}),
	}
}
