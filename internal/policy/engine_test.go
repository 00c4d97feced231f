package policy

import (
	"errors"
	"testing"

	"github.com/abhisek/questforge/internal/quest"
)

func candidate(title string, p quest.Pattern, minutes int, difficulty float64) quest.Quest {
	return quest.Quest{
		Title:       title,
		Pattern:     p,
		Minutes:     minutes,
		Difficulty:  difficulty,
		Deliverable: "something concrete",
		Tags:        []string{"test"},
		Steps:       []string{"step 1", "step 2", "step 3"},
	}
}

func TestApply_BudgetAndCountCaps(t *testing.T) {
	// Five candidates totalling 140 minutes on a normal day (capacity 90):
	// the engine must cap to 3 quests and land on exactly 90 minutes with
	// every quest at 15 or more.
	candidates := []quest.Quest{
		candidate("a", quest.PatternReadNoteQ, 40, 0.5),
		candidate("b", quest.PatternFlashcards, 35, 0.5),
		candidate("c", quest.PatternBuildMicro, 30, 0.5),
		candidate("d", quest.PatternQuizDrill, 20, 0.5),
		candidate("e", quest.PatternTeachBack, 15, 0.5),
	}

	list, err := Apply(candidates, quest.Profile{TimeBudgetPerDay: 60}, quest.DayNormal, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Quests) > 3 {
		t.Errorf("quest count = %d, want <= 3", len(list.Quests))
	}
	if got := list.TotalMinutes(); got != 90 {
		t.Errorf("total minutes = %d, want exactly 90", got)
	}
	for _, q := range list.Quests {
		if q.Minutes < 15 {
			t.Errorf("quest %q has %d minutes, want >= 15", q.Title, q.Minutes)
		}
		if q.Minutes > list.Constraints.MaxSessionMinutes {
			t.Errorf("quest %q has %d minutes, above session cap %d", q.Title, q.Minutes, list.Constraints.MaxSessionMinutes)
		}
	}
}

func TestApply_EnvSubstitution(t *testing.T) {
	candidates := []quest.Quest{
		candidate("listen and repeat", quest.PatternShadowing, 30, 0.4),
	}
	profile := quest.Profile{EnvConstraints: []string{"no_audio"}}

	list, err := Apply(candidates, profile, quest.DayNormal, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := list.Quests[0].Pattern; got == quest.PatternShadowing {
		t.Error("shadowing pattern survived a no_audio environment")
	}
	// The substitution is deterministic: first feasible alternative.
	if got, want := list.Quests[0].Pattern, quest.PatternTeachBack; got != want {
		t.Errorf("substituted pattern = %q, want %q", got, want)
	}
	if len(list.Rationale.ForStep(StepSubstitution)) == 0 {
		t.Error("no substitution entry in rationale trace")
	}
}

func TestApply_InsufficientCandidates(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		_, err := Apply(nil, quest.Profile{}, quest.DayNormal, 0)
		var insufficient *InsufficientCandidatesError
		if !errors.As(err, &insufficient) {
			t.Fatalf("error = %v, want InsufficientCandidatesError", err)
		}
	})

	t.Run("all candidates infeasible", func(t *testing.T) {
		// no_speaking bans shadowing and teach_back; a shadowing quest
		// whose whole alternative chain is also banned gets dropped.
		candidates := []quest.Quest{
			candidate("speak", quest.PatternShadowing, 20, 0.4),
		}
		profile := quest.Profile{EnvConstraints: []string{"no_speaking", "no_audio"}}

		list, err := Apply(candidates, profile, quest.DayNormal, 0)
		if err == nil {
			// Substitution found a feasible alternative; that is valid
			// only if the result is not shadowing or teach_back.
			for _, q := range list.Quests {
				if q.Pattern == quest.PatternShadowing || q.Pattern == quest.PatternTeachBack {
					t.Errorf("banned pattern %q in output", q.Pattern)
				}
			}
			return
		}
		var insufficient *InsufficientCandidatesError
		if !errors.As(err, &insufficient) {
			t.Fatalf("error = %v, want InsufficientCandidatesError", err)
		}
	})
}

func TestApply_ZeroBudgetDoesNotPanic(t *testing.T) {
	candidates := []quest.Quest{
		candidate("a", quest.PatternFlashcards, 30, 0.5),
		candidate("b", quest.PatternQuizDrill, 30, 0.5),
	}

	// Check-in delta drives the budget below zero; it floors at 15.
	list, err := Apply(candidates, quest.Profile{}, quest.DayBusy, -200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Constraints.TotalMinutesMax != MinTotalMinutes {
		t.Errorf("budget = %d, want floor %d", list.Constraints.TotalMinutesMax, MinTotalMinutes)
	}
	if got := list.TotalMinutes(); got > MinTotalMinutes {
		t.Errorf("total minutes = %d, exceeds floored budget %d", got, MinTotalMinutes)
	}
}

func TestApply_AdjacentPatternsDiffer(t *testing.T) {
	candidates := []quest.Quest{
		candidate("a", quest.PatternFlashcards, 20, 0.5),
		candidate("b", quest.PatternFlashcards, 20, 0.5),
		candidate("c", quest.PatternFlashcards, 20, 0.5),
	}

	list, err := Apply(candidates, quest.Profile{}, quest.DayNormal, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(list.Quests); i++ {
		if list.Quests[i].Pattern == list.Quests[i-1].Pattern {
			t.Errorf("quests %d and %d share pattern %q", i-1, i, list.Quests[i].Pattern)
		}
	}
}

func TestDiversify_Idempotent(t *testing.T) {
	quests := []quest.Quest{
		candidate("a", quest.PatternFlashcards, 20, 0.5),
		candidate("b", quest.PatternQuizDrill, 20, 0.5),
		candidate("c", quest.PatternBuildMicro, 20, 0.5),
	}

	var trace Trace
	out := diversify(quests, nil, &trace)

	for i := range out {
		if out[i].Pattern != quests[i].Pattern {
			t.Errorf("quest %d pattern changed on an already-diverse list", i)
		}
	}
	if len(trace) != 0 {
		t.Errorf("diversity pass recorded %d entries on a diverse list", len(trace))
	}
}

func TestReconcileTotal_ExactSum(t *testing.T) {
	tests := []struct {
		name    string
		minutes []int
		target  int
	}{
		{"simple overshoot", []int{40, 35, 30}, 90},
		{"rounding drift", []int{33, 33, 33}, 80},
		{"heavy scale", []int{45, 45, 45}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var quests []quest.Quest
			for i, m := range tt.minutes {
				quests = append(quests, candidate(string(rune('a'+i)), quest.PatternFlashcards, m, 0.5))
			}
			var trace Trace
			out := reconcileTotal(quests, tt.target, &trace)

			sum := 0
			for _, q := range out {
				sum += q.Minutes
			}
			if sum > tt.target {
				t.Errorf("sum = %d, exceeds target %d", sum, tt.target)
			}
		})
	}
}

func TestReconcileTotal_NoopUnderBudget(t *testing.T) {
	quests := []quest.Quest{
		candidate("a", quest.PatternFlashcards, 20, 0.5),
		candidate("b", quest.PatternQuizDrill, 25, 0.5),
	}
	var trace Trace
	out := reconcileTotal(quests, 90, &trace)

	if out[0].Minutes != 20 || out[1].Minutes != 25 {
		t.Error("reconciliation changed quests already under budget")
	}
	if len(trace) != 0 {
		t.Errorf("trace has %d entries, want none", len(trace))
	}
}

func TestApply_ContractBackfill(t *testing.T) {
	bare := quest.Quest{
		Title:      "bare quest",
		Pattern:    quest.PatternFlashcards,
		Minutes:    20,
		Difficulty: 0.5,
	}

	list, err := Apply([]quest.Quest{bare}, quest.Profile{}, quest.DayNormal, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := list.Quests[0]
	if !q.HasFullContract() {
		t.Errorf("contract incomplete after backfill: done=%q evidence=%d alt=%q stop=%q",
			q.DoneDefinition, len(q.Evidence), q.AltPlan, q.StopRule)
	}
	if len(list.Rationale.ForStep(StepContract)) == 0 {
		t.Error("no contract backfill entry in rationale")
	}
}

func TestApply_RubricCorrectsDifficulty(t *testing.T) {
	// All quests too hard: feasibility fails and one corrective pass
	// scales difficulty down to the feasible ceiling.
	candidates := []quest.Quest{
		candidate("a", quest.PatternFlashcards, 30, 0.95),
		candidate("b", quest.PatternQuizDrill, 30, 0.9),
	}

	list, err := Apply(candidates, quest.Profile{}, quest.DayNormal, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	corrected := false
	for _, dim := range list.Rubric.Corrected {
		if dim == "feasibility" {
			corrected = true
		}
	}
	if !corrected {
		t.Fatalf("feasibility not in corrected dimensions: %v", list.Rubric.Corrected)
	}
	for _, q := range list.Quests {
		if q.Difficulty > feasibleMaxDifficulty {
			t.Errorf("quest %q difficulty %.2f above ceiling after correction", q.Title, q.Difficulty)
		}
	}
	if list.Rubric.SubThreshold {
		t.Error("list flagged sub-threshold although the correction fixed it")
	}
}

func TestApply_InvariantsHoldAcrossInputs(t *testing.T) {
	patterns := quest.AllPatterns()
	profiles := []quest.Profile{
		{},
		{EnvConstraints: []string{"no_audio"}},
		{EnvConstraints: []string{"commute", "public_space"}},
	}
	dayTypes := []quest.DayType{quest.DayBusy, quest.DayNormal, quest.DayDeep}

	for _, p := range profiles {
		for _, d := range dayTypes {
			for _, delta := range []int{-30, 0, 25} {
				var candidates []quest.Quest
				for i := 0; i < 6; i++ {
					candidates = append(candidates, candidate(
						string(rune('a'+i)), patterns[i%len(patterns)], 10+i*12, 0.3+float64(i)*0.1))
				}

				list, err := Apply(candidates, p, d, delta)
				if err != nil {
					var insufficient *InsufficientCandidatesError
					if !errors.As(err, &insufficient) {
						t.Fatalf("day=%s delta=%d: unexpected error: %v", d, delta, err)
					}
					continue
				}

				if got := list.TotalMinutes(); got > list.Constraints.TotalMinutesMax {
					t.Errorf("day=%s delta=%d: total %d exceeds budget %d", d, delta, got, list.Constraints.TotalMinutesMax)
				}
				for _, q := range list.Quests {
					if q.Minutes > list.Constraints.MaxSessionMinutes {
						t.Errorf("day=%s delta=%d: quest %q exceeds session cap", d, delta, q.Title)
					}
					if !quest.FeasibleUnder(q.Pattern, p.EnvConstraints) {
						t.Errorf("day=%s delta=%d: quest %q pattern %q infeasible in env %v", d, delta, q.Title, q.Pattern, p.EnvConstraints)
					}
				}
			}
		}
	}
}
