package enums

import "fmt"

// BetType represents the proposition kind offered on a match
type BetType string

const (
	Moneyline BetType = "moneyline" // full-time result
	Handicap  BetType = "handicap"  // result with a point/goal handicap applied
	Total     BetType = "total"     // under/over a combined score line
	OddEven   BetType = "oddeven"   // combined score parity
)

// GetBetTypeName returns a display name for the bet type
func (b BetType) GetBetTypeName() string {
	switch b {
	case Moneyline:
		return "Moneyline"
	case Handicap:
		return "Handicap"
	case Total:
		return "Under/Over"
	case OddEven:
		return "Odd/Even"
	default:
		return string(b)
	}
}

// ParseBetType validates a bet type alias
func ParseBetType(s string) (BetType, error) {
	switch BetType(s) {
	case Moneyline, Handicap, Total, OddEven:
		return BetType(s), nil
	default:
		return "", fmt.Errorf("unknown bet type: %s", s)
	}
}
