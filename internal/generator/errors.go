package generator

import "fmt"

// Generation failures are expected and recoverable; callers surface the kind
// and its parameters to the user ("reduce leg count", "relax filters").
// Kind strings are stable and used by the HTTP layer.

// NoMatchesError means nothing was left to pick from. Filtered distinguishes
// "catalog has no open matches" from "allow-list filters removed everything".
type NoMatchesError struct {
	Filtered bool
}

func (e *NoMatchesError) Error() string {
	if e.Filtered {
		return "no matches left after applying filters, relax sport/bet-type/date filters"
	}
	return "no open matches available"
}

// Kind returns the stable error kind tag
func (e *NoMatchesError) Kind() string { return "no_matches" }

// NotEnoughMatchesError means fewer unique events remained than requested legs
type NotEnoughMatchesError struct {
	Available int
	Requested int
}

func (e *NotEnoughMatchesError) Error() string {
	return fmt.Sprintf("not enough matches: %d unique events available, %d legs requested",
		e.Available, e.Requested)
}

// Kind returns the stable error kind tag
func (e *NotEnoughMatchesError) Kind() string { return "not_enough_matches" }

// NotEnoughDrawMatchesError means fewer draw-capable events exist than the
// configured minimum draw picks
type NotEnoughDrawMatchesError struct {
	Available int
	Required  int
}

func (e *NotEnoughDrawMatchesError) Error() string {
	return fmt.Sprintf("not enough draw-capable matches: %d available, %d required",
		e.Available, e.Required)
}

// Kind returns the stable error kind tag
func (e *NotEnoughDrawMatchesError) Kind() string { return "not_enough_draw_matches" }

// OddsRangeError means every attempt fell outside the target odds band
type OddsRangeError struct {
	Min      float64
	Max      float64
	Attempts int
}

func (e *OddsRangeError) Error() string {
	return fmt.Sprintf("could not build a combination with total odds in [%.2f, %.2f] after %d attempts",
		e.Min, e.Max, e.Attempts)
}

// Kind returns the stable error kind tag
func (e *OddsRangeError) Kind() string { return "odds_range_unsatisfiable" }

// UnsatisfiableError means the attempt budget ran out with no odds target set,
// or the category requirements can never fit into the requested leg count
type UnsatisfiableError struct {
	Reason string
}

func (e *UnsatisfiableError) Error() string {
	return "could not build a combination: " + e.Reason
}

// Kind returns the stable error kind tag
func (e *UnsatisfiableError) Kind() string { return "unsatisfiable" }
