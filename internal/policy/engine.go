package policy

import (
	"github.com/abhisek/questforge/internal/quest"
)

// QuestList is the validated output of the policy engine: the final
// quests, the envelope they satisfy, the rationale trace, and the rubric
// verdict.
type QuestList struct {
	Quests      []quest.Quest
	Constraints Constraints
	Rationale   Trace
	Rubric      RubricReport
}

// TotalMinutes returns the summed time boxes of the final quests.
func (l *QuestList) TotalMinutes() int {
	total := 0
	for _, q := range l.Quests {
		total += q.Minutes
	}
	return total
}

// Apply runs candidate quests through the fixed validation pipeline:
//
//  1. budget derivation from day type and check-in delta
//  2. environment-constraint pattern substitution
//  3. count cap
//  4. per-session minute cap
//  5. total-time reconciliation (exact-sum scaling)
//  6. adjacent-pattern diversity pass
//  7. completion-contract backfill
//  8. self-critique rubric gate with one corrective pass
//
// Candidates are treated as priority-ordered (earlier = more
// foundational) and are never mutated; every transformation produces new
// quest values. Apply never panics on arithmetic edge cases: zero
// candidates or a zero budget produce explicit results.
func Apply(candidates []quest.Quest, profile quest.Profile, dayType quest.DayType, checkinDelta int) (*QuestList, error) {
	var trace Trace

	// Step 1: budget derivation.
	cons := DeriveConstraints(profile, dayType, checkinDelta)
	trace.add(StepBudget, "", "day type %q + delta %d => total budget %d min, session cap %d, quest cap %d",
		dayType, checkinDelta, cons.TotalMinutesMax, cons.MaxSessionMinutes, cons.MaxQuestCount)

	var dropped []string

	// Step 2: environment-constraint substitution.
	quests := make([]quest.Quest, 0, len(candidates))
	for _, c := range candidates {
		q, ok := substituteForEnv(c, profile.EnvConstraints, &trace)
		if !ok {
			dropped = append(dropped, c.Title)
			continue
		}
		quests = append(quests, q)
	}

	// Step 3: count cap, preserving priority order.
	if len(quests) > cons.MaxQuestCount {
		for _, q := range quests[cons.MaxQuestCount:] {
			dropped = append(dropped, q.Title)
			trace.add(StepCountCap, q.Title, "dropped: over quest cap %d", cons.MaxQuestCount)
		}
		quests = quests[:cons.MaxQuestCount]
	}
	if len(quests) < 1 {
		return nil, &InsufficientCandidatesError{Remaining: len(quests), Dropped: dropped}
	}

	// Step 4: per-session cap.
	for i, q := range quests {
		if q.Minutes > cons.MaxSessionMinutes {
			trace.add(StepSessionCap, q.Title, "clamped %d min to session cap %d", q.Minutes, cons.MaxSessionMinutes)
			quests[i] = q.WithMinutes(cons.MaxSessionMinutes)
		}
	}

	// Step 5: total-time reconciliation.
	quests = reconcileTotal(quests, cons.TotalMinutesMax, &trace)

	// Step 6: adjacent-pattern diversity.
	quests = diversify(quests, profile.EnvConstraints, &trace)

	// Step 7: completion-contract backfill.
	for i, q := range quests {
		filled, changed := backfillContract(q)
		if changed {
			trace.add(StepContract, q.Title, "synthesized missing completion-contract fields from %q template", q.Pattern)
		}
		quests[i] = filled
	}

	// Step 8: rubric gate, at most one corrective pass.
	quests, report := applyRubric(quests, cons, &trace)

	return &QuestList{
		Quests:      quests,
		Constraints: cons,
		Rationale:   trace,
		Rubric:      report,
	}, nil
}

// substituteForEnv replaces an environment-infeasible pattern with the
// first feasible alternative from the pattern's fixed alternative list.
// Returns false when the quest has no feasible pattern at all.
func substituteForEnv(q quest.Quest, envTags []string, trace *Trace) (quest.Quest, bool) {
	if quest.FeasibleUnder(q.Pattern, envTags) {
		return q, true
	}
	for _, alt := range quest.Alternatives(q.Pattern) {
		if quest.FeasibleUnder(alt, envTags) {
			trace.add(StepSubstitution, q.Title, "pattern %q infeasible under env constraints, substituted %q", q.Pattern, alt)
			return q.WithPattern(alt), true
		}
	}
	trace.add(StepSubstitution, q.Title, "dropped: pattern %q infeasible and no feasible alternative", q.Pattern)
	return q, false
}
