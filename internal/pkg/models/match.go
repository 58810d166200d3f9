package models

import (
	"time"

	"github.com/comodds/protoslip/internal/pkg/enums"
)

// MatchStatus represents whether a proposition is still open for picking
type MatchStatus string

const (
	MatchOpen   MatchStatus = "open"
	MatchClosed MatchStatus = "closed"
)

// Outcome identifies the picked side of a proposition
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// Odds holds the prices for one proposition.
// Draw == 0 means the proposition has no draw price (two-way market).
type Odds struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw,omitempty"`
	Away float64 `json:"away"`
}

// HasDraw reports whether a draw price is offered
func (o Odds) HasDraw() bool {
	return o.Draw > 0
}

// Price returns the price for the given outcome and whether the
// proposition offers that outcome at all
func (o Odds) Price(out Outcome) (float64, bool) {
	switch out {
	case OutcomeHome:
		return o.Home, true
	case OutcomeAway:
		return o.Away, true
	case OutcomeDraw:
		if o.HasDraw() {
			return o.Draw, true
		}
	}
	return 0, false
}

// Outcomes lists every outcome the proposition supports
func (o Odds) Outcomes() []Outcome {
	outs := []Outcome{OutcomeHome, OutcomeAway}
	if o.HasDraw() {
		outs = append(outs, OutcomeDraw)
	}
	return outs
}

// Favorite returns the lower-priced of home/away. Ties favor home.
func (o Odds) Favorite() (Outcome, float64) {
	if o.Home <= o.Away {
		return OutcomeHome, o.Home
	}
	return OutcomeAway, o.Away
}

// Underdog returns the higher-priced of home/away. Ties favor home.
func (o Odds) Underdog() (Outcome, float64) {
	if o.Home >= o.Away {
		return OutcomeHome, o.Home
	}
	return OutcomeAway, o.Away
}

// Match represents one priceable proposition: a single underlying event
// combined with one bet type. Propositions on the same underlying event
// (e.g. moneyline and handicap for the same two teams) share GroupKey and
// must never appear together in one combination.
type Match struct {
	ID         string        `json:"id"`
	GroupKey   string        `json:"group_key"`
	Round      string        `json:"round,omitempty"`
	GameNumber int           `json:"game_number"`
	Sport      enums.Sport   `json:"sport"`
	League     string        `json:"league"`
	HomeTeam   string        `json:"home_team"`
	AwayTeam   string        `json:"away_team"`
	BetType    enums.BetType `json:"bet_type"`
	Odds       Odds          `json:"odds"`
	Handicap   string        `json:"handicap,omitempty"`
	UnderOver  string        `json:"under_over,omitempty"`
	Deadline   time.Time     `json:"deadline"`
	Status     MatchStatus   `json:"status"`
}

// Open reports whether the proposition can still be picked at the given time
func (m *Match) Open(now time.Time) bool {
	return m.Status == MatchOpen && m.Deadline.After(now)
}

// DeadlineDate returns the local calendar day of the deadline
func (m *Match) DeadlineDate() string {
	return m.Deadline.In(time.Local).Format("2006-01-02")
}
