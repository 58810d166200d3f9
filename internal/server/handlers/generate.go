package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/comodds/protoslip/internal/generator"
	"github.com/comodds/protoslip/internal/pkg/models"
)

// GenerateFunc is a function type for running one generation call
type GenerateFunc func(req generator.Request) (*models.Combination, error)

var generateFunc GenerateFunc

// SetGenerateFunc sets the function that generates combinations
func SetGenerateFunc(fn GenerateFunc) {
	generateFunc = fn
}

// HandleGenerate handles POST /generate. The body is a generator.Request;
// a generation failure is reported as 422 with the typed error kind and its
// parameters so the client can tell the user what to relax.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	if generateFunc == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "generator not configured"})
		return
	}

	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	combination, err := generateFunc(req)
	if err != nil {
		slog.Info("Generation failed", "error", err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(generationErrorPayload(err))
		return
	}

	slog.Info("Combination generated",
		"id", combination.ID,
		"legs", len(combination.Legs),
		"total_odds", combination.TotalOdds)
	_ = json.NewEncoder(w).Encode(combination)
}

// generationErrorPayload maps the typed generation errors onto a JSON body
// carrying the kind and its parameters
func generationErrorPayload(err error) map[string]any {
	payload := map[string]any{"message": err.Error()}

	var noMatches *generator.NoMatchesError
	var notEnough *generator.NotEnoughMatchesError
	var notEnoughDraws *generator.NotEnoughDrawMatchesError
	var oddsRange *generator.OddsRangeError
	var unsatisfiable *generator.UnsatisfiableError

	switch {
	case errors.As(err, &noMatches):
		payload["error_kind"] = noMatches.Kind()
		payload["filtered"] = noMatches.Filtered
	case errors.As(err, &notEnough):
		payload["error_kind"] = notEnough.Kind()
		payload["available"] = notEnough.Available
		payload["requested"] = notEnough.Requested
	case errors.As(err, &notEnoughDraws):
		payload["error_kind"] = notEnoughDraws.Kind()
		payload["available"] = notEnoughDraws.Available
		payload["required"] = notEnoughDraws.Required
	case errors.As(err, &oddsRange):
		payload["error_kind"] = oddsRange.Kind()
		payload["min"] = oddsRange.Min
		payload["max"] = oddsRange.Max
		payload["attempts"] = oddsRange.Attempts
	case errors.As(err, &unsatisfiable):
		payload["error_kind"] = unsatisfiable.Kind()
	default:
		payload["error_kind"] = "internal"
	}

	return payload
}
