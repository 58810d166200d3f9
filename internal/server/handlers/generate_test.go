package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/comodds/protoslip/internal/generator"
	"github.com/comodds/protoslip/internal/pkg/models"
)

func TestHandleGenerateSuccess(t *testing.T) {
	SetGenerateFunc(func(req generator.Request) (*models.Combination, error) {
		if req.LegCount != 3 {
			t.Errorf("decoded leg_count = %d, want 3", req.LegCount)
		}
		return &models.Combination{
			ID:        "c-1",
			TotalOdds: 5.33,
			Legs: []models.Leg{
				{Selected: models.OutcomeHome, Price: 1.72},
				{Selected: models.OutcomeDraw, Price: 3.10},
			},
		}, nil
	})
	defer SetGenerateFunc(nil)

	req := httptest.NewRequest(http.MethodPost, "/generate",
		strings.NewReader(`{"leg_count": 3, "stake": 10000}`))
	w := httptest.NewRecorder()
	HandleGenerate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var c models.Combination
	if err := json.NewDecoder(w.Body).Decode(&c); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if c.ID != "c-1" || c.TotalOdds != 5.33 {
		t.Errorf("got %s / %v", c.ID, c.TotalOdds)
	}
}

func TestHandleGenerateTypedError(t *testing.T) {
	SetGenerateFunc(func(req generator.Request) (*models.Combination, error) {
		return nil, &generator.NotEnoughMatchesError{Available: 2, Requested: 5}
	})
	defer SetGenerateFunc(nil)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	HandleGenerate(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["error_kind"] != "not_enough_matches" {
		t.Errorf("error_kind = %v", payload["error_kind"])
	}
	if payload["available"] != float64(2) || payload["requested"] != float64(5) {
		t.Errorf("counts = %v / %v", payload["available"], payload["requested"])
	}
}

func TestHandleGenerateOddsRangeError(t *testing.T) {
	SetGenerateFunc(func(req generator.Request) (*models.Combination, error) {
		return nil, &generator.OddsRangeError{Min: 5, Max: 20, Attempts: 100}
	})
	defer SetGenerateFunc(nil)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	HandleGenerate(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["error_kind"] != "odds_range_unsatisfiable" {
		t.Errorf("error_kind = %v", payload["error_kind"])
	}
	if payload["min"] != float64(5) || payload["max"] != float64(20) {
		t.Errorf("band = %v / %v", payload["min"], payload["max"])
	}
}

func TestHandleGenerateBadJSON(t *testing.T) {
	SetGenerateFunc(func(req generator.Request) (*models.Combination, error) {
		t.Error("generate should not be called on a bad body")
		return nil, nil
	})
	defer SetGenerateFunc(nil)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{broken`))
	w := httptest.NewRecorder()
	HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	w := httptest.NewRecorder()
	HandleGenerate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
