package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/comodds/protoslip/internal/pkg/models"
	"github.com/comodds/protoslip/internal/pkg/validation"
)

// LoadFile reads a catalog handed over by the ingestion collaborator:
// a JSON array of propositions. Every entry is validated; a malformed
// entry fails the whole load.
func LoadFile(path string) ([]models.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var matches []models.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	validator := validation.NewValidator()
	for i := range matches {
		if err := validator.ValidateMatch(&matches[i]); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}

	return matches, nil
}
