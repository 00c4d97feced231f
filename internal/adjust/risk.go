package adjust

import (
	"context"

	"github.com/abhisek/questforge/internal/quest"
)

// RiskSignals are collaborator-supplied inputs to the factor table.
// The zero value means "no signal".
type RiskSignals struct {
	// HighSeverity indicates serious risk factors (burnout, repeated
	// abandonment) that warrant backing off.
	HighSeverity bool

	// PlateauRisk estimates how stuck the learner is, 0.0-1.0.
	PlateauRisk float64
}

// RiskAnalyzer supplies risk signals for an adjustment cycle. The
// collaborator is optional: a nil analyzer, or one that errors, means
// no signal, never a failed adjustment.
type RiskAnalyzer interface {
	Signals(ctx context.Context, profile quest.Profile, history []Completion) (RiskSignals, error)
}
