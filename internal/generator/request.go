package generator

import (
	"math"

	"github.com/comodds/protoslip/internal/pkg/enums"
)

// OddsRange is an explicit total-odds band overriding the band derived
// from TargetOdds
type OddsRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Request describes one generation call.
//
// TargetOdds == 0 means no odds band; LegCount == 0 means a random leg count
// in [2,10]. Empty allow-lists keep everything. The category requirements are
// independent toggles; when enabled the combination must contain at least the
// configured number of such picks.
type Request struct {
	TargetOdds float64 `json:"target_odds"`
	LegCount   int     `json:"leg_count"`
	Stake      int64   `json:"stake"`

	Sports   []enums.Sport   `json:"sports,omitempty"`
	BetTypes []enums.BetType `json:"bet_types,omitempty"`
	Dates    []string        `json:"dates,omitempty"` // local calendar days, YYYY-MM-DD

	OddsRange       *OddsRange `json:"odds_range,omitempty"`
	AvoidSameLeague bool       `json:"avoid_same_league"`

	RequireDraws bool `json:"require_draws"`
	DrawCount    int  `json:"draw_count"`

	RequireFavorites bool `json:"require_favorites"`
	FavoriteCount    int  `json:"favorite_count"`

	RequireUnderdogs bool `json:"require_underdogs"`
	UnderdogCount    int  `json:"underdog_count"`
}

func (r *Request) requiredDraws() int {
	if !r.RequireDraws || r.DrawCount < 0 {
		return 0
	}
	return r.DrawCount
}

func (r *Request) requiredFavorites() int {
	if !r.RequireFavorites || r.FavoriteCount < 0 {
		return 0
	}
	return r.FavoriteCount
}

func (r *Request) requiredUnderdogs() int {
	if !r.RequireUnderdogs || r.UnderdogCount < 0 {
		return 0
	}
	return r.UnderdogCount
}

// oddsBand is the accepted total-odds interval for one generation call
type oddsBand struct {
	min float64
	max float64
}

func (b oddsBand) constrained() bool {
	return b.min > 0 || b.max < math.MaxFloat64
}

func (b oddsBand) contains(total float64) bool {
	return total >= b.min && total <= b.max
}

// band resolves the effective odds band: explicit range first, then the
// [0.5x, 2x] band around the target, unconstrained otherwise
func (r *Request) band() oddsBand {
	if r.OddsRange != nil {
		return oddsBand{min: r.OddsRange.Min, max: r.OddsRange.Max}
	}
	if r.TargetOdds > 0 {
		return oddsBand{min: r.TargetOdds * 0.5, max: r.TargetOdds * 2}
	}
	return oddsBand{min: 0, max: math.MaxFloat64}
}
