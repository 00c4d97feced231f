package adjust

import (
	"fmt"
	"time"
)

// Rollback trigger thresholds. An increase that the learner can't
// handle, or a decrease they've outgrown, gets reversed.
const (
	rollbackFailRate    = 0.40
	rollbackLowRating   = 3.0
	rollbackMasteryRate = 0.90
	rollbackHighRating  = 4.0
)

// Monitor inspects the user's latest adjustment against completions
// made after it and emits a rollback when the outcome proves
// counter-productive. A rollback is a new adjustment with inverted
// type and the same magnitude, tagged in its reasoning, and is
// recorded in the history like any other adjustment.
func (a *Adjuster) Monitor(user string, completions []Completion) Report {
	var report Report

	history := a.history.Recent(user)
	latest, ok := latestReversible(history)
	if !ok {
		return report
	}

	var since []Completion
	if latest.CompletionMark <= len(completions) {
		since = completions[latest.CompletionMark:]
	}

	if len(since) < RollbackMinCompletions {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("waiting on %d more completions before reviewing the last %s",
				RollbackMinCompletions-len(since), latest.Type))
		return report
	}

	rate := successRate(since)
	rating, rated := averageRating(since)

	trigger := ""
	switch latest.Type {
	case TypeIncrease:
		if rate < rollbackFailRate {
			trigger = fmt.Sprintf("success rate %.2f below %.2f after increase", rate, rollbackFailRate)
		} else if rated && rating < rollbackLowRating {
			trigger = fmt.Sprintf("average rating %.1f below %.1f after increase", rating, rollbackLowRating)
		}
	case TypeDecrease:
		if rate > rollbackMasteryRate {
			trigger = fmt.Sprintf("success rate %.2f above %.2f after decrease", rate, rollbackMasteryRate)
		} else if rated && rating > rollbackHighRating {
			trigger = fmt.Sprintf("average rating %.1f above %.1f after decrease", rating, rollbackHighRating)
		}
	}

	if trigger == "" {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("last %s is holding up, keep difficulty at %.2f",
				latest.Type, latest.AdjustedDifficulty))
		return report
	}

	rollback := Result{
		QuestTitle:         latest.QuestTitle,
		Type:               invert(latest.Type),
		Magnitude:          latest.Magnitude,
		OriginalDifficulty: latest.AdjustedDifficulty,
		AdjustedDifficulty: clampDifficulty(latest.OriginalDifficulty),
		FactorSum:          latest.OriginalDifficulty - latest.AdjustedDifficulty,
		Confidence:         latest.Confidence,
		Reasons:            []string{"rollback: " + trigger},
		Rollback:           true,
		AppliedAt:          time.Now().UTC(),
		CompletionMark:     len(completions),
	}
	a.history.Append(user, rollback)
	report.Rollbacks = append(report.Rollbacks, rollback)

	return report
}

// latestReversible finds the newest adjustment that can still be
// rolled back: not a maintain, not itself a rollback, and not already
// reversed by a later rollback.
func latestReversible(history []Result) (Result, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		if r.Rollback {
			// The newest entry being a rollback means the last real
			// adjustment was already reversed.
			return Result{}, false
		}
		if r.Type == TypeMaintain {
			continue
		}
		return r, true
	}
	return Result{}, false
}

func invert(t Type) Type {
	switch t {
	case TypeIncrease:
		return TypeDecrease
	case TypeDecrease:
		return TypeIncrease
	default:
		return TypeMaintain
	}
}
