package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/comodds/protoslip/internal/pkg/models"
)

const (
	// maxAttempts bounds the rejection-sampling loop. The search is
	// intentionally non-exhaustive: a satisfiable request can still fail
	// when unlucky within the bound.
	maxAttempts = 100

	minRandomLegs = 2
	maxRandomLegs = 10
)

// Generator builds randomized parlay combinations from a match catalog.
// It holds no state besides its random source; concurrent callers should
// each use their own Generator.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	now         func() time.Time
}

// New creates a generator. Passing a nil source uses a time-seeded one;
// tests pass a seeded source for deterministic runs.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		rng:         rng,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Generate selects a legal subset of the catalog, assigns an outcome to each
// leg and validates the result against the policy rules, retrying on
// rejection up to the attempt bound. The catalog slice is treated as an
// immutable snapshot.
func (g *Generator) Generate(matches []models.Match, req Request) (*models.Combination, error) {
	legCount := req.LegCount
	if legCount == 0 {
		legCount = minRandomLegs + g.rng.Intn(maxRandomLegs-minRandomLegs+1)
	}

	required := req.requiredDraws() + req.requiredFavorites() + req.requiredUnderdogs()
	if required > legCount {
		return nil, &UnsatisfiableError{
			Reason: fmt.Sprintf("%d required category picks do not fit into %d legs", required, legCount),
		}
	}

	groups, err := filterCatalog(matches, &req, legCount, g.now())
	if err != nil {
		return nil, err
	}

	band := req.band()
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := buildCandidate(g.rng, groups, &req, legCount, band)
		if candidate == nil {
			continue
		}
		if validateCombination(candidate, &req) {
			return candidate, nil
		}
	}

	if band.constrained() {
		return nil, &OddsRangeError{Min: band.min, Max: band.max, Attempts: g.maxAttempts}
	}
	return nil, &UnsatisfiableError{
		Reason: fmt.Sprintf("no valid combination found after %d attempts", g.maxAttempts),
	}
}
