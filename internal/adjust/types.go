package adjust

import (
	"time"

	"github.com/abhisek/questforge/internal/quest"
)

// Type classifies the direction of a difficulty adjustment.
type Type string

const (
	TypeIncrease Type = "increase"
	TypeDecrease Type = "decrease"
	TypeMaintain Type = "maintain"
)

// Magnitude buckets the absolute factor sum.
type Magnitude string

const (
	MagnitudeMinor       Magnitude = "minor"
	MagnitudeModerate    Magnitude = "moderate"
	MagnitudeSignificant Magnitude = "significant"
)

// Completion is one finished quest in the learner's history, the raw
// feed for adjustment factors and rollback monitoring.
type Completion struct {
	QuestTitle   string
	Pattern      quest.Pattern
	Success      bool
	Rating       int // 1-5 difficulty fit, 0 if not rated
	MinutesSpent int
	Date         string // YYYY-MM-DD
}

// Context carries today's signals into an adjustment cycle.
type Context struct {
	// AvailableTime is the minutes the learner has today. 0 means
	// unknown; the time-pressure factor and clamp only apply when set.
	AvailableTime int

	// Moods are free-form indicators from the check-in, e.g.
	// "frustrated", "confident".
	Moods []string

	// StreakDays is the count of consecutive active days.
	StreakDays int

	// Risk holds collaborator-supplied signals. Zero value means no
	// signal, never an error.
	Risk RiskSignals
}

// Result records one adjustment decision.
type Result struct {
	QuestTitle         string
	Type               Type
	Magnitude          Magnitude
	OriginalDifficulty float64
	AdjustedDifficulty float64
	FactorSum          float64
	Confidence         float64
	Reasons            []string
	Rollback           bool
	AppliedAt          time.Time

	// CompletionMark is the length of the completion history at the
	// time this adjustment was made. The monitor uses it to count
	// subsequent completions for rollback gating.
	CompletionMark int
}

// Report is the monitor's output for one user.
type Report struct {
	Rollbacks       []Result
	Recommendations []string
}

const (
	// DifficultyFloor and DifficultyCeil bound every adjusted difficulty.
	DifficultyFloor = 0.1
	DifficultyCeil  = 0.9

	// MaintainBand is the |delta| below which an adjustment is
	// classified as maintain.
	MaintainBand = 0.05

	// MaxAdjustedMinutes caps the minutes growth from an increase.
	MaxAdjustedMinutes = 60

	// RollbackMinCompletions gates the monitor: an adjustment needs
	// this many subsequent completions before it can be reversed.
	RollbackMinCompletions = 3
)

func classifyType(delta float64) Type {
	if delta >= MaintainBand {
		return TypeIncrease
	}
	if delta <= -MaintainBand {
		return TypeDecrease
	}
	return TypeMaintain
}

func classifyMagnitude(factorSum float64) Magnitude {
	abs := factorSum
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 0.10:
		return MagnitudeMinor
	case abs < 0.20:
		return MagnitudeModerate
	default:
		return MagnitudeSignificant
	}
}

func clampDifficulty(d float64) float64 {
	if d < DifficultyFloor {
		return DifficultyFloor
	}
	if d > DifficultyCeil {
		return DifficultyCeil
	}
	return d
}
