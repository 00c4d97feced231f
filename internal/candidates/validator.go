package candidates

import (
	"fmt"

	"github.com/abhisek/questforge/internal/quest"
)

// Validator checks a generated quest candidate for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "pattern", "bounds".
	Name() string

	// Validate checks the quest and returns nil if it passes.
	// The validator receives the full Input for context (e.g. to check
	// environment feasibility).
	Validate(q *quest.Quest, input Input) *ValidationError
}

// ValidationError describes why a candidate failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
