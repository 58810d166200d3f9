package validation

import (
	"fmt"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

// Validator implements catalog data validation
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateMatch validates one catalog proposition. A failure here means the
// ingestion collaborator handed over malformed data; it must surface at load
// time instead of being absorbed by the generator.
func (v *Validator) ValidateMatch(match *models.Match) error {
	if match == nil {
		return fmt.Errorf("match cannot be nil")
	}

	// Validate required fields
	if match.ID == "" {
		return fmt.Errorf("match ID cannot be empty")
	}

	if match.GroupKey == "" {
		return fmt.Errorf("match group key cannot be empty: %s", match.ID)
	}

	if match.HomeTeam == "" {
		return fmt.Errorf("home team cannot be empty: %s", match.ID)
	}

	if match.AwayTeam == "" {
		return fmt.Errorf("away team cannot be empty: %s", match.ID)
	}

	if _, err := enums.ParseSport(string(match.Sport)); err != nil {
		return fmt.Errorf("match %s: %w", match.ID, err)
	}

	if _, err := enums.ParseBetType(string(match.BetType)); err != nil {
		return fmt.Errorf("match %s: %w", match.ID, err)
	}

	if match.Status != models.MatchOpen && match.Status != models.MatchClosed {
		return fmt.Errorf("invalid match status: %s (%s)", match.Status, match.ID)
	}

	if match.Deadline.IsZero() {
		return fmt.Errorf("match deadline cannot be zero: %s", match.ID)
	}

	return v.ValidateOdds(match.ID, match.Odds)
}

// ValidateOdds validates the prices of one proposition
func (v *Validator) ValidateOdds(matchID string, odds models.Odds) error {
	if odds.Home < 1.0 {
		return fmt.Errorf("home price must be at least 1.0, got %.2f (%s)", odds.Home, matchID)
	}

	if odds.Away < 1.0 {
		return fmt.Errorf("away price must be at least 1.0, got %.2f (%s)", odds.Away, matchID)
	}

	// Draw is optional; when present it must be a real price
	if odds.Draw != 0 && odds.Draw < 1.0 {
		return fmt.Errorf("draw price must be at least 1.0, got %.2f (%s)", odds.Draw, matchID)
	}

	return nil
}
