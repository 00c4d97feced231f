package adjust

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/abhisek/questforge/internal/quest"
)

// Adjuster computes difficulty adjustments for upcoming quests and
// owns the bounded per-user adjustment history.
type Adjuster struct {
	history *History
	risk    RiskAnalyzer // optional
}

// New creates an Adjuster. risk may be nil.
func New(risk RiskAnalyzer) *Adjuster {
	return &Adjuster{history: NewHistory(), risk: risk}
}

// History exposes the adjuster's owned history for stats and seeding.
func (a *Adjuster) History() *History {
	return a.history
}

// Adjust evaluates the factor table for each upcoming quest, applies
// the resulting difficulty and structural mutations, and records one
// Result per quest in the user's history. The inputs are not mutated;
// modified copies are returned.
func (a *Adjuster) Adjust(ctx context.Context, user string, upcoming []quest.Quest, completions []Completion, actx Context) ([]quest.Quest, []Result) {
	actx.Risk = a.resolveRisk(ctx, actx, completions)

	modified := make([]quest.Quest, 0, len(upcoming))
	results := make([]Result, 0, len(upcoming))

	for _, q := range upcoming {
		fired := computeFactors(q, completions, actx)

		sum := 0.0
		reasons := make([]string, 0, len(fired))
		for _, f := range fired {
			sum += f.factor
			reasons = append(reasons, f.reason)
		}

		adjusted := clampDifficulty(q.Difficulty + sum)
		delta := adjusted - q.Difficulty

		r := Result{
			QuestTitle:         q.Title,
			Type:               classifyType(delta),
			Magnitude:          classifyMagnitude(sum),
			OriginalDifficulty: q.Difficulty,
			AdjustedDifficulty: adjusted,
			FactorSum:          sum,
			Confidence:         confidence(fired),
			Reasons:            reasons,
			AppliedAt:          time.Now().UTC(),
			CompletionMark:     len(completions),
		}

		mq := applyResult(q, r, actx)
		modified = append(modified, mq)
		results = append(results, r)
		a.history.Append(user, r)
	}

	return modified, results
}

// resolveRisk returns caller-supplied signals when present, otherwise
// queries the collaborator. Absence or failure degrades to no signal.
func (a *Adjuster) resolveRisk(ctx context.Context, actx Context, completions []Completion) RiskSignals {
	if actx.Risk != (RiskSignals{}) {
		return actx.Risk
	}
	if a.risk == nil {
		return RiskSignals{}
	}
	signals, err := a.risk.Signals(ctx, quest.Profile{}, completions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: risk analysis unavailable: %v\n", err)
		return RiskSignals{}
	}
	return signals
}

// applyResult mutates a copy of the quest per the adjustment type,
// then clamps minutes to the available time.
func applyResult(q quest.Quest, r Result, actx Context) quest.Quest {
	mq := q.Clone()
	mq.Difficulty = r.AdjustedDifficulty

	switch r.Type {
	case TypeDecrease:
		mq.Minutes = int(math.Round(float64(mq.Minutes) * 0.9))
		if len(mq.Criteria) > 2 {
			mq.Criteria = mq.Criteria[:2]
		}
		mq.Criteria = append(mq.Criteria, "Demonstrate a basic understanding of the core idea")
		mq.Steps = append([]string{"Confirm the basic concept before starting"}, mq.Steps...)

	case TypeIncrease:
		mq.Minutes = int(math.Round(float64(mq.Minutes) * 1.1))
		if mq.Minutes > MaxAdjustedMinutes {
			mq.Minutes = MaxAdjustedMinutes
		}
		mq.Criteria = append(mq.Criteria,
			"Complete one variation beyond the base task",
			"Explain your approach without referring to notes")
		mq = addTags(mq, "challenge", "advanced")
	}

	if actx.AvailableTime > 0 && mq.Minutes > actx.AvailableTime {
		mq.Minutes = int(math.Round(float64(actx.AvailableTime) * 0.8))
		if mq.Minutes < quest.MinMinutes {
			mq.Minutes = quest.MinMinutes
		}
		if !strings.HasSuffix(mq.Deliverable, "(scope shortened for today)") {
			mq.Deliverable += " (scope shortened for today)"
		}
	}

	return mq
}

func addTags(q quest.Quest, tags ...string) quest.Quest {
	for _, tag := range tags {
		if !q.HasTag(tag) {
			q.Tags = append(q.Tags, tag)
		}
	}
	return q
}
