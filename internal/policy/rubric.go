package policy

import (
	"fmt"

	"github.com/abhisek/questforge/internal/quest"
)

// RubricScores are the four normalized quality metrics gating output.
type RubricScores struct {
	Relevance   float64 // fraction of quests with tags and a deliverable
	Feasibility float64 // fraction with sane minutes and difficulty
	Specificity float64 // fraction with a full contract and >= 3 steps
	LoadFit     float64 // min(1, budget / total minutes)
}

// Rubric thresholds. A list passing all four needs no correction.
const (
	relevanceThreshold   = 0.85
	feasibilityThreshold = 0.80
	specificityThreshold = 0.85

	feasibleMinMinutes    = 15
	feasibleMaxMinutes    = 45
	feasibleMaxDifficulty = 0.7
	minSteps              = 3
)

// RubricReport is the rubric verdict attached to every QuestList.
type RubricReport struct {
	Before    RubricScores
	After     RubricScores
	Corrected []string // dimensions a corrective pass targeted

	// SubThreshold is set when the list still fails after the single
	// corrective pass. The list is returned anyway; the caller decides
	// whether to retry upstream.
	SubThreshold bool
}

// applyRubric computes the four rubric scores and, if any dimension is
// below threshold, applies exactly one corrective pass per failing
// dimension and recomputes once. There is no retry loop.
func applyRubric(quests []quest.Quest, cons Constraints, trace *Trace) ([]quest.Quest, RubricReport) {
	report := RubricReport{Before: scoreRubric(quests, cons)}
	report.After = report.Before

	failing := failingDimensions(report.Before)
	if len(failing) == 0 {
		return quests, report
	}

	for _, dim := range failing {
		quests = correct(quests, dim, cons, trace)
	}
	// Corrections may raise minutes (feasibility floor); keep the hard
	// budget invariant intact before rescoring.
	quests = reconcileTotal(quests, cons.TotalMinutesMax, trace)
	report.Corrected = failing
	report.After = scoreRubric(quests, cons)

	if len(failingDimensions(report.After)) > 0 {
		report.SubThreshold = true
		trace.add(StepRubric, "", "still below threshold after corrective pass: %v", failingDimensions(report.After))
	}
	return quests, report
}

func scoreRubric(quests []quest.Quest, cons Constraints) RubricScores {
	if len(quests) == 0 {
		return RubricScores{LoadFit: 1}
	}

	var relevant, feasible, specific int
	total := 0
	for _, q := range quests {
		if len(q.Tags) > 0 && q.Deliverable != "" {
			relevant++
		}
		if q.Minutes >= feasibleMinMinutes && q.Minutes <= feasibleMaxMinutes && q.Difficulty <= feasibleMaxDifficulty {
			feasible++
		}
		if q.HasFullContract() && len(q.Steps) >= minSteps {
			specific++
		}
		total += q.Minutes
	}

	n := float64(len(quests))
	loadFit := 1.0
	if total > 0 && float64(cons.TotalMinutesMax)/float64(total) < 1.0 {
		loadFit = float64(cons.TotalMinutesMax) / float64(total)
	}
	return RubricScores{
		Relevance:   float64(relevant) / n,
		Feasibility: float64(feasible) / n,
		Specificity: float64(specific) / n,
		LoadFit:     loadFit,
	}
}

func failingDimensions(s RubricScores) []string {
	var out []string
	if s.Relevance < relevanceThreshold {
		out = append(out, "relevance")
	}
	if s.Feasibility < feasibilityThreshold {
		out = append(out, "feasibility")
	}
	if s.Specificity < specificityThreshold {
		out = append(out, "specificity")
	}
	if s.LoadFit < 1.0 {
		out = append(out, "load_fit")
	}
	return out
}

// correct applies one targeted corrective pass for a failing dimension.
func correct(quests []quest.Quest, dim string, cons Constraints, trace *Trace) []quest.Quest {
	switch dim {
	case "relevance":
		for i, q := range quests {
			c := q.Clone()
			if c.Deliverable == "" {
				c.Deliverable = templateDeliverable(c.Pattern)
			}
			if len(c.Tags) == 0 {
				c.Tags = []string{string(c.Pattern)}
			}
			quests[i] = c
		}
		trace.add(StepRubric, "", "relevance below %.2f: backfilled tags and deliverables", relevanceThreshold)

	case "feasibility":
		for i, q := range quests {
			c := q.Clone()
			if c.Minutes < feasibleMinMinutes {
				c.Minutes = feasibleMinMinutes
			}
			if c.Minutes > feasibleMaxMinutes {
				c.Minutes = feasibleMaxMinutes
			}
			if c.Difficulty > feasibleMaxDifficulty {
				c.Difficulty = feasibleMaxDifficulty
			}
			quests[i] = c
		}
		trace.add(StepRubric, "", "feasibility below %.2f: clamped minutes and scaled down difficulty", feasibilityThreshold)

	case "specificity":
		for i, q := range quests {
			c, _ := backfillContract(q)
			if len(c.Steps) < minSteps {
				c.Steps = templateSteps(c.Pattern)
			}
			quests[i] = c
		}
		trace.add(StepRubric, "", "specificity below %.2f: synthesized contracts and steps", specificityThreshold)

	case "load_fit":
		quests = reconcileTotal(quests, cons.TotalMinutesMax, trace)
		trace.add(StepRubric, "", "load fit below 1.0: re-reconciled totals to %d min", cons.TotalMinutesMax)

	default:
		trace.add(StepRubric, "", "no corrective pass for dimension %q", dim)
	}
	return quests
}

// String renders the scores for trace and log output.
func (s RubricScores) String() string {
	return fmt.Sprintf("relevance=%.2f feasibility=%.2f specificity=%.2f load_fit=%.2f",
		s.Relevance, s.Feasibility, s.Specificity, s.LoadFit)
}
