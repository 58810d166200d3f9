package validation

import (
	"testing"
	"time"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

func validMatch() models.Match {
	return models.Match{
		ID:         "M054",
		GroupKey:   "BM054",
		GameNumber: 54,
		Sport:      enums.Soccer,
		League:     "A-League",
		HomeTeam:   "Melbourne City",
		AwayTeam:   "Brisbane Roar",
		BetType:    enums.Moneyline,
		Odds:       models.Odds{Home: 1.72, Draw: 3.10, Away: 3.85},
		Deadline:   time.Date(2026, 1, 6, 17, 0, 0, 0, time.UTC),
		Status:     models.MatchOpen,
	}
}

func TestValidateMatchAccepts(t *testing.T) {
	v := NewValidator()
	m := validMatch()
	if err := v.ValidateMatch(&m); err != nil {
		t.Errorf("valid match rejected: %v", err)
	}
}

func TestValidateMatchRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Match)
	}{
		{"empty id", func(m *models.Match) { m.ID = "" }},
		{"empty group key", func(m *models.Match) { m.GroupKey = "" }},
		{"empty home team", func(m *models.Match) { m.HomeTeam = "" }},
		{"empty away team", func(m *models.Match) { m.AwayTeam = "" }},
		{"unknown sport", func(m *models.Match) { m.Sport = "cricket" }},
		{"unknown bet type", func(m *models.Match) { m.BetType = "spread" }},
		{"bad status", func(m *models.Match) { m.Status = "pending" }},
		{"zero deadline", func(m *models.Match) { m.Deadline = time.Time{} }},
		{"home price below 1", func(m *models.Match) { m.Odds.Home = 0.9 }},
		{"away price below 1", func(m *models.Match) { m.Odds.Away = 0 }},
		{"draw price below 1", func(m *models.Match) { m.Odds.Draw = 0.5 }},
	}

	v := NewValidator()
	for _, tc := range cases {
		m := validMatch()
		tc.mutate(&m)
		if err := v.ValidateMatch(&m); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateMatchNil(t *testing.T) {
	if err := NewValidator().ValidateMatch(nil); err == nil {
		t.Error("nil match should be rejected")
	}
}
