package questions

import (
	"sort"
	"strings"

	"github.com/abhisek/questforge/internal/quest"
)

// Form is how an admitted question is presented.
type Form string

const (
	// FormFresh asks the question from scratch.
	FormFresh Form = "fresh"
	// FormConfirmation asks a yes/no confirmation of an already-known
	// value. Used when the field is known with confidence >= 0.7.
	FormConfirmation Form = "confirmation"
)

// Scored is a bank item augmented with the per-cycle computed values.
type Scored struct {
	Item      BankItem
	Relevance float64
	InfoGain  float64
	Score     float64
	Form      Form
	// ConfirmValue is the known value being confirmed when Form is
	// FormConfirmation.
	ConfirmValue string
}

// Skip records why a catalogue item was not asked.
type Skip struct {
	Item   BankItem
	Reason string
	Score  float64
}

// Skip reasons recorded in PlanResult.
const (
	SkipNotApplicable  = "not applicable"
	SkipBelowThreshold = "score below threshold"
	SkipBudgetExceeded = "question budget exhausted"
	SkipFreeTextCap    = "free-text cap reached"
)

// PlanResult is the output of Plan: the ordered questions to ask and a
// trace of everything skipped.
type PlanResult struct {
	Selected []Scored
	Skipped  []Skip
}

// PriorityHints are optional score boosts from the skill-map collaborator.
// Boosts are clamped to MaxHintBoost per item; a non-empty CategoryPriority
// replaces the default stage ordering with a category-priority ordering.
type PriorityHints struct {
	ScoreBoosts      map[string]float64 // by bank item ID
	CategoryPriority []Category
}

const (
	// DefaultBudget is the default maximum number of questions per session.
	DefaultBudget = 5
	// ScoreThreshold is the minimum score for admission.
	ScoreThreshold = 0.25
	// MaxFreeText caps free-text questions per session regardless of score.
	MaxFreeText = 2
	// MaxHintBoost caps the external priority boost per item.
	MaxHintBoost = 0.3
	// ConfirmationConfidence converts a question into a confirmation.
	ConfirmationConfidence = 0.7

	keywordBoost   = 0.15
	fatiguePenalty = 0.5
)

// Plan selects which catalogue questions to ask, maximizing information
// gain under the fatigue penalty and the hard question budget. It is a
// pure function of its inputs: identical inputs produce identical output
// (ties break on catalogue ID).
func Plan(bank []BankItem, goalText string, profile quest.Profile, budget int, hints *PriorityHints) PlanResult {
	if budget <= 0 {
		budget = DefaultBudget
	}

	var result PlanResult
	var scored []Scored

	for _, item := range bank {
		if item.AppliesTo != nil && !item.AppliesTo(goalText, profile) {
			result.Skipped = append(result.Skipped, Skip{Item: item, Reason: SkipNotApplicable})
			continue
		}

		s := scoreItem(item, goalText, profile)
		if hints != nil {
			if boost, ok := hints.ScoreBoosts[item.ID]; ok {
				if boost > MaxHintBoost {
					boost = MaxHintBoost
				}
				if boost > 0 {
					s.Score += boost
				}
			}
		}
		scored = append(scored, s)
	}

	// Stable sort: score descending, catalogue ID ascending on ties.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})

	// Admission: threshold, hard budget, and the free-text cap.
	var admitted []Scored
	freeText := 0
	for _, s := range scored {
		switch {
		case s.Score < ScoreThreshold:
			result.Skipped = append(result.Skipped, Skip{Item: s.Item, Reason: SkipBelowThreshold, Score: s.Score})
		case len(admitted) >= budget:
			result.Skipped = append(result.Skipped, Skip{Item: s.Item, Reason: SkipBudgetExceeded, Score: s.Score})
		case s.Item.Kind == KindFreeText && s.Form == FormFresh && freeText >= MaxFreeText:
			result.Skipped = append(result.Skipped, Skip{Item: s.Item, Reason: SkipFreeTextCap, Score: s.Score})
		default:
			if s.Item.Kind == KindFreeText && s.Form == FormFresh {
				freeText++
			}
			admitted = append(admitted, s)
		}
	}

	result.Selected = reorder(admitted, hints)
	return result
}

// scoreItem computes relevance, info gain, score, and presentation form
// for one applicable item.
func scoreItem(item BankItem, goalText string, profile quest.Profile) Scored {
	relevance := categoryWeights[item.Category]
	lower := strings.ToLower(goalText)
	for _, kw := range item.Keywords {
		if strings.Contains(lower, kw) {
			relevance += keywordBoost
		}
	}
	if relevance > 1.0 {
		relevance = 1.0
	}

	s := Scored{Item: item, Relevance: relevance, Form: FormFresh}

	known, ok := profile.Known(item.Field)
	switch {
	case !ok:
		gain := item.InfoGainHint
		if gain <= 0 {
			gain = 0.8
		}
		s.InfoGain = gain
	case known.Confidence >= 0.8:
		s.InfoGain = 0.1
	case known.Confidence >= 0.5:
		s.InfoGain = 0.4
	default:
		s.InfoGain = 0.8
	}

	if ok && known.Confidence >= ConfirmationConfidence {
		s.Form = FormConfirmation
		s.ConfirmValue = known.Value
	}

	s.Score = s.Relevance*s.InfoGain - fatiguePenalty*item.FatigueWeight
	return s
}

// reorder arranges admitted questions to bound in-session fatigue:
// fixed-choice and confirmation questions first, free-text last. When the
// hints carry a category priority list, that ordering wins instead.
func reorder(admitted []Scored, hints *PriorityHints) []Scored {
	if len(admitted) < 2 {
		return admitted
	}

	if hints != nil && len(hints.CategoryPriority) > 0 {
		rank := make(map[Category]int, len(hints.CategoryPriority))
		for i, c := range hints.CategoryPriority {
			rank[c] = i
		}
		unranked := len(hints.CategoryPriority)
		sort.SliceStable(admitted, func(i, j int) bool {
			ri, ok := rank[admitted[i].Item.Category]
			if !ok {
				ri = unranked
			}
			rj, ok := rank[admitted[j].Item.Category]
			if !ok {
				rj = unranked
			}
			return ri < rj
		})
		return admitted
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		return stage(admitted[i]) < stage(admitted[j])
	})
	return admitted
}

// stage buckets a question for default ordering: taps before typing.
func stage(s Scored) int {
	if s.Form == FormConfirmation {
		return 0
	}
	if s.Item.Kind == KindFixedChoice {
		return 1
	}
	return 2
}
