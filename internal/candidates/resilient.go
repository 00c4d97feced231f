package candidates

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/questforge/internal/quest"
)

// ResilientSource tries a primary source and falls back to a secondary
// on any failure. Upstream errors (provider down, malformed output,
// cancelled call) are recovered here and never reach the caller; the
// planner always gets a candidate list.
type ResilientSource struct {
	primary  Source
	fallback Source
}

// NewResilient wraps primary with fallback.
func NewResilient(primary, fallback Source) *ResilientSource {
	return &ResilientSource{primary: primary, fallback: fallback}
}

// GenerateCandidates returns the primary source's candidates, or the
// fallback's when the primary fails. The second return value from the
// fallback path can still error only if the fallback itself is
// misconfigured; FallbackSource never errors.
func (r *ResilientSource) GenerateCandidates(ctx context.Context, input Input) ([]quest.Quest, error) {
	quests, err := r.primary.GenerateCandidates(ctx, input)
	if err == nil {
		return quests, nil
	}

	fmt.Fprintf(os.Stderr, "warning: candidate source failed, using fallback: %v\n", err)

	// Primary may have failed on ctx cancellation; the fallback is
	// local and must still run.
	return r.fallback.GenerateCandidates(context.WithoutCancel(ctx), input)
}
