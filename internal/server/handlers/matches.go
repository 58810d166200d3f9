package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/comodds/protoslip/internal/pkg/models"
)

// GetMatchesFunc is a function type for getting the catalog snapshot
type GetMatchesFunc func() []models.Match

var getMatchesFunc GetMatchesFunc

// SetGetMatchesFunc sets the function to get matches
func SetGetMatchesFunc(fn GetMatchesFunc) {
	getMatchesFunc = fn
}

// HandleMatches handles /matches: returns the currently loaded catalog,
// open propositions only
func HandleMatches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var matches []models.Match
	if getMatchesFunc != nil {
		matches = getMatchesFunc()
	}

	now := time.Now()
	open := make([]models.Match, 0, len(matches))
	for i := range matches {
		if matches[i].Open(now) {
			open = append(open, matches[i])
		}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":   len(open),
		"matches": open,
	})
}
