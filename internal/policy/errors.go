package policy

import "fmt"

// InsufficientCandidatesError reports that fewer usable quests remained
// than the minimum viable day. It is a planning failure, distinct from an
// empty-but-valid day, and callers must treat it as such.
type InsufficientCandidatesError struct {
	// Remaining is how many candidates survived filtering.
	Remaining int
	// Dropped lists titles of candidates removed along the way.
	Dropped []string
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("insufficient candidates: %d usable quests remain (%d dropped)",
		e.Remaining, len(e.Dropped))
}
