package catalog

import (
	"testing"
	"time"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
)

func storeFixture() []models.Match {
	return []models.Match{
		{
			ID:       "M1",
			GroupKey: "BM1",
			Sport:    enums.Soccer,
			BetType:  enums.Moneyline,
			Odds:     models.Odds{Home: 1.90, Away: 1.90},
			Deadline: time.Now().Add(time.Hour),
			Status:   models.MatchOpen,
		},
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore()
	store.Replace(storeFixture())

	first := store.Snapshot()
	first[0].Status = models.MatchClosed

	second := store.Snapshot()
	if second[0].Status != models.MatchOpen {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestStoreReplaceCopiesInput(t *testing.T) {
	store := NewStore()
	input := storeFixture()
	store.Replace(input)

	input[0].Status = models.MatchClosed
	if store.Snapshot()[0].Status != models.MatchOpen {
		t.Error("mutating the input slice must not affect the store")
	}
}

func TestStoreLenAndLoadedAt(t *testing.T) {
	store := NewStore()
	if store.Len() != 0 {
		t.Errorf("empty store Len() = %d", store.Len())
	}
	if !store.LoadedAt().IsZero() {
		t.Error("empty store should have zero LoadedAt")
	}

	store.Replace(storeFixture())
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
	if store.LoadedAt().IsZero() {
		t.Error("LoadedAt should be set after Replace")
	}
}
