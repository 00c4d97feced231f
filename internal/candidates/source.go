package candidates

import (
	"context"

	"github.com/abhisek/questforge/internal/quest"
	"github.com/abhisek/questforge/internal/skillatom"
)

// Input carries everything a source needs to propose quests for one day.
type Input struct {
	Profile    quest.Profile
	Checkin    quest.Checkin
	Frontier   []skillatom.Atom
	Difficulty float64

	// Count is how many candidates to request. The policy engine caps
	// the final plan separately; asking for a few extra gives the
	// diversity pass and substitution steps room to work.
	Count int

	// PriorTitles are quest titles from recent plans, for deduplication.
	PriorTitles []string
}

// Source produces quest candidates for the planner. The list is
// unranked beyond its order (earlier = more foundational) and unbounded;
// the policy engine does all capping and reconciliation.
type Source interface {
	GenerateCandidates(ctx context.Context, input Input) ([]quest.Quest, error)
}
