package catalog

import (
	"sync"
	"time"

	"github.com/comodds/protoslip/internal/pkg/models"
)

// Store holds the current catalog snapshot for the service. Readers always
// get their own copy so concurrent generation calls never alias the same
// slice.
type Store struct {
	mu       sync.RWMutex
	matches  []models.Match
	loadedAt time.Time
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded catalog
func (s *Store) Replace(matches []models.Match) {
	copied := make([]models.Match, len(matches))
	copy(copied, matches)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = copied
	s.loadedAt = time.Now()
}

// Snapshot returns a copy of the current catalog
func (s *Store) Snapshot() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Len returns the number of propositions currently loaded
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}

// LoadedAt returns when the current catalog was loaded
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
