package questions

import (
	"testing"

	"github.com/abhisek/questforge/internal/quest"
)

func testBank() []BankItem {
	return []BankItem{
		{ID: "a_time", Category: CategoryTime, Field: "time_budget", Kind: KindFixedChoice, InfoGainHint: 0.9, FatigueWeight: 0.1},
		{ID: "b_goal", Category: CategoryGoal, Field: "goal_depth", Kind: KindFreeText, InfoGainHint: 0.8, FatigueWeight: 0.4},
		{ID: "c_env", Category: CategoryConstraint, Field: "env_audio", Kind: KindFixedChoice, InfoGainHint: 0.7, FatigueWeight: 0.15, Keywords: []string{"speaking"}},
		{ID: "d_pref", Category: CategoryPreference, Field: "novelty_preference", Kind: KindFixedChoice, InfoGainHint: 0.5, FatigueWeight: 0.2},
		{ID: "e_deadline", Category: CategoryGoal, Field: "deadline", Kind: KindFreeText, InfoGainHint: 0.6, FatigueWeight: 0.4},
		{ID: "f_modality", Category: CategoryModality, Field: "modality", Kind: KindFreeText, InfoGainHint: 0.6, FatigueWeight: 0.3},
	}
}

func TestPlan_Deterministic(t *testing.T) {
	bank := testBank()
	p := quest.Profile{}

	r1 := Plan(bank, "learn spanish speaking", p, 0, nil)
	r2 := Plan(bank, "learn spanish speaking", p, 0, nil)

	if len(r1.Selected) != len(r2.Selected) {
		t.Fatalf("selection count differs between runs: %d vs %d", len(r1.Selected), len(r2.Selected))
	}
	for i := range r1.Selected {
		if r1.Selected[i].Item.ID != r2.Selected[i].Item.ID {
			t.Errorf("position %d: %q vs %q", i, r1.Selected[i].Item.ID, r2.Selected[i].Item.ID)
		}
	}
}

func TestPlan_BudgetCap(t *testing.T) {
	bank := testBank()
	r := Plan(bank, "learn anything", quest.Profile{}, 3, nil)

	if len(r.Selected) > 3 {
		t.Errorf("selected %d questions, budget is 3", len(r.Selected))
	}
	budgetSkips := 0
	for _, s := range r.Skipped {
		if s.Reason == SkipBudgetExceeded {
			budgetSkips++
		}
	}
	if len(r.Selected) == 3 && budgetSkips == 0 {
		t.Error("expected at least one budget-exhausted skip entry")
	}
}

func TestPlan_FreeTextCap(t *testing.T) {
	// Three high-scoring free-text questions; only two may survive.
	bank := []BankItem{
		{ID: "a", Category: CategoryGoal, Field: "f1", Kind: KindFreeText, InfoGainHint: 0.9, FatigueWeight: 0.1},
		{ID: "b", Category: CategoryGoal, Field: "f2", Kind: KindFreeText, InfoGainHint: 0.9, FatigueWeight: 0.1},
		{ID: "c", Category: CategoryGoal, Field: "f3", Kind: KindFreeText, InfoGainHint: 0.9, FatigueWeight: 0.1},
	}
	r := Plan(bank, "goal", quest.Profile{}, 5, nil)

	free := 0
	for _, s := range r.Selected {
		if s.Item.Kind == KindFreeText {
			free++
		}
	}
	if free > MaxFreeText {
		t.Errorf("admitted %d free-text questions, cap is %d", free, MaxFreeText)
	}
	found := false
	for _, s := range r.Skipped {
		if s.Reason == SkipFreeTextCap {
			found = true
		}
	}
	if !found {
		t.Error("expected a free-text cap skip entry")
	}
}

func TestPlan_ConfirmationForm(t *testing.T) {
	bank := testBank()
	p := quest.Profile{KnownFields: map[string]quest.KnownField{
		"time_budget": {Value: "30", Confidence: 0.75},
	}}

	r := Plan(bank, "goal", p, 5, nil)
	for _, s := range r.Selected {
		if s.Item.ID == "a_time" {
			if s.Form != FormConfirmation {
				t.Errorf("Form = %q, want confirmation", s.Form)
			}
			if s.ConfirmValue != "30" {
				t.Errorf("ConfirmValue = %q, want \"30\"", s.ConfirmValue)
			}
			return
		}
	}
	// Known with 0.75 confidence drops info gain to 0.4 but the time
	// category still clears the threshold.
	t.Fatal("a_time not selected")
}

func TestPlan_KnownFieldLowersGain(t *testing.T) {
	bank := testBank()

	unknown := scoreItem(bank[0], "", quest.Profile{})
	confident := scoreItem(bank[0], "", quest.Profile{KnownFields: map[string]quest.KnownField{
		"time_budget": {Value: "30", Confidence: 0.9},
	}})
	halfKnown := scoreItem(bank[0], "", quest.Profile{KnownFields: map[string]quest.KnownField{
		"time_budget": {Value: "30", Confidence: 0.6},
	}})

	if unknown.InfoGain != 0.9 {
		t.Errorf("unknown InfoGain = %v, want hint 0.9", unknown.InfoGain)
	}
	if confident.InfoGain != 0.1 {
		t.Errorf("confident InfoGain = %v, want 0.1", confident.InfoGain)
	}
	if halfKnown.InfoGain != 0.4 {
		t.Errorf("half-known InfoGain = %v, want 0.4", halfKnown.InfoGain)
	}
}

// Raising the info-gain hint while holding everything else fixed must
// never lower the score.
func TestScore_MonotoneInHint(t *testing.T) {
	base := BankItem{ID: "m", Category: CategoryGoal, Field: "x", Kind: KindFixedChoice, FatigueWeight: 0.2}

	prev := -1.0
	for _, hint := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		item := base
		item.InfoGainHint = hint
		s := scoreItem(item, "", quest.Profile{})
		if s.Score < prev {
			t.Fatalf("score decreased from %v to %v when hint rose to %v", prev, s.Score, hint)
		}
		prev = s.Score
	}
}

func TestPlan_KeywordBoost(t *testing.T) {
	bank := testBank()

	plain := scoreItem(bank[2], "learn chess", quest.Profile{})
	boosted := scoreItem(bank[2], "improve my speaking", quest.Profile{})

	if boosted.Relevance <= plain.Relevance {
		t.Errorf("keyword hit did not raise relevance: %v <= %v", boosted.Relevance, plain.Relevance)
	}
}

func TestPlan_StageOrdering(t *testing.T) {
	bank := testBank()
	r := Plan(bank, "goal", quest.Profile{}, 5, nil)

	seenFree := false
	for _, s := range r.Selected {
		if s.Item.Kind == KindFreeText {
			seenFree = true
		} else if seenFree {
			t.Fatalf("fixed-choice question %q ordered after a free-text question", s.Item.ID)
		}
	}
}

func TestPlan_CategoryPriorityOverride(t *testing.T) {
	bank := testBank()
	hints := &PriorityHints{
		CategoryPriority: []Category{CategoryConstraint, CategoryTime},
	}

	r := Plan(bank, "goal", quest.Profile{}, 5, hints)
	if len(r.Selected) < 2 {
		t.Fatalf("expected at least 2 selected, got %d", len(r.Selected))
	}
	// Constraint-category questions now lead despite the default
	// stage ordering putting the time tap first.
	if r.Selected[0].Item.Category != CategoryConstraint {
		t.Errorf("first question category = %q, want constraint", r.Selected[0].Item.Category)
	}
}

func TestPlan_HintBoostClamped(t *testing.T) {
	bank := []BankItem{
		{ID: "x", Category: CategoryPreference, Field: "f", Kind: KindFixedChoice, InfoGainHint: 0.5, FatigueWeight: 0.2},
	}
	hints := &PriorityHints{ScoreBoosts: map[string]float64{"x": 5.0}}

	r := Plan(bank, "", quest.Profile{}, 5, hints)
	if len(r.Selected) != 1 {
		t.Fatalf("expected 1 selected, got %d", len(r.Selected))
	}
	raw := scoreItem(bank[0], "", quest.Profile{})
	if got, want := r.Selected[0].Score, raw.Score+MaxHintBoost; got != want {
		t.Errorf("boosted score = %v, want %v (clamped)", got, want)
	}
}

func TestPlan_NotApplicableSkipped(t *testing.T) {
	bank := []BankItem{
		{
			ID: "gated", Category: CategoryGoal, Field: "f", Kind: KindFixedChoice,
			AppliesTo:    func(goal string, _ quest.Profile) bool { return goal != "" },
			InfoGainHint: 0.9,
		},
	}

	r := Plan(bank, "", quest.Profile{}, 5, nil)
	if len(r.Selected) != 0 {
		t.Fatalf("expected no selection, got %d", len(r.Selected))
	}
	if len(r.Skipped) != 1 || r.Skipped[0].Reason != SkipNotApplicable {
		t.Fatalf("expected one not-applicable skip, got %+v", r.Skipped)
	}
}
