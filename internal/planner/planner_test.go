package planner

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/questforge/internal/adjust"
	"github.com/abhisek/questforge/internal/candidates"
	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/policy"
	"github.com/abhisek/questforge/internal/quest"
)

const plannerQuestsJSON = `{
	"quests": [
		{
			"title": "Shadow a 3-minute podcast segment",
			"pattern": "shadowing",
			"minutes": 20,
			"difficulty": 0.5,
			"deliverable": "A recording of your final pass",
			"tags": ["listening"]
		},
		{
			"title": "Drill 20 food vocabulary flashcards",
			"pattern": "flashcards",
			"minutes": 15,
			"difficulty": 0.4,
			"deliverable": "A reviewed 20-card deck",
			"tags": ["vocabulary"]
		},
		{
			"title": "Write a short dialogue ordering dinner",
			"pattern": "build_micro",
			"minutes": 30,
			"difficulty": 0.6,
			"deliverable": "A written 10-line dialogue",
			"tags": ["writing"]
		}
	]
}`

func testProfile() quest.Profile {
	return quest.Profile{
		GoalText:         "conversational Spanish",
		TimeBudgetPerDay: 60,
	}
}

func newTestPlanner(mock *llm.MockProvider) *Planner {
	src := candidates.NewResilient(
		candidates.New(mock, candidates.DefaultConfig()),
		candidates.NewFallback(),
	)
	return New(Deps{
		Source:   src,
		Adjuster: adjust.New(nil),
	})
}

func TestPlanDay_ProducesValidList(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(plannerQuestsJSON)})
	p := newTestPlanner(mock)

	list, err := p.PlanDay(context.Background(), testProfile(), nil,
		quest.Checkin{DayType: quest.DayNormal})
	if err != nil {
		t.Fatalf("plan day: %v", err)
	}

	if len(list.Quests) == 0 || len(list.Quests) > list.Constraints.MaxQuestCount {
		t.Fatalf("quest count = %d, constraints %+v", len(list.Quests), list.Constraints)
	}
	if list.TotalMinutes() > list.Constraints.TotalMinutesMax {
		t.Errorf("total minutes %d exceeds budget %d", list.TotalMinutes(), list.Constraints.TotalMinutesMax)
	}
	for i, q := range list.Quests {
		if q.Minutes > list.Constraints.MaxSessionMinutes {
			t.Errorf("quest %d minutes %d exceeds session cap %d", i, q.Minutes, list.Constraints.MaxSessionMinutes)
		}
		if !q.HasFullContract() {
			t.Errorf("quest %d missing completion contract", i)
		}
	}
}

func TestPlanDay_FallsBackWhenProviderDown(t *testing.T) {
	// Empty mock: every LLM call fails.
	p := newTestPlanner(llm.NewMockProvider())

	list, err := p.PlanDay(context.Background(), testProfile(), nil,
		quest.Checkin{DayType: quest.DayBusy})
	if err != nil {
		t.Fatalf("plan day must survive a dead provider: %v", err)
	}
	if len(list.Quests) == 0 {
		t.Fatal("expected fallback quests")
	}
	if list.TotalMinutes() > list.Constraints.TotalMinutesMax {
		t.Errorf("total minutes %d exceeds budget %d", list.TotalMinutes(), list.Constraints.TotalMinutesMax)
	}
}

type emptySource struct{}

func (emptySource) GenerateCandidates(context.Context, candidates.Input) ([]quest.Quest, error) {
	return nil, nil
}

func TestPlanDay_SurfacesInsufficientCandidates(t *testing.T) {
	p := New(Deps{
		Source:   emptySource{},
		Adjuster: adjust.New(nil),
	})

	_, err := p.PlanDay(context.Background(), testProfile(), nil,
		quest.Checkin{DayType: quest.DayNormal})
	var insufficient *policy.InsufficientCandidatesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientCandidatesError", err)
	}
}

func TestPlanDay_AppliesAdjustmentBeforePolicy(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(plannerQuestsJSON)})
	p := newTestPlanner(mock)

	// A strong success history should raise difficulty on the plan.
	history := make([]adjust.Completion, 7)
	for i := range history {
		history[i] = adjust.Completion{
			QuestTitle: "prior",
			Pattern:    quest.PatternFlashcards,
			Success:    true,
			Date:       "2026-03-01",
		}
	}

	list, err := p.PlanDay(context.Background(), testProfile(), history,
		quest.Checkin{DayType: quest.DayNormal})
	if err != nil {
		t.Fatalf("plan day: %v", err)
	}
	for i, q := range list.Quests {
		if q.Pattern == quest.PatternFlashcards && q.Difficulty <= 0.4 {
			t.Errorf("quest %d difficulty %v not raised despite perfect history", i, q.Difficulty)
		}
	}
}

func TestAdjustForNextCycle_ReportsRollback(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(plannerQuestsJSON)})
	p := newTestPlanner(mock)

	history := make([]adjust.Completion, 7)
	for i := range history {
		history[i] = adjust.Completion{Pattern: quest.PatternFlashcards, Success: true, Date: "2026-03-01"}
	}
	if _, err := p.PlanDay(context.Background(), testProfile(), history,
		quest.Checkin{DayType: quest.DayNormal}); err != nil {
		t.Fatalf("plan day: %v", err)
	}

	// Three failures after the increase trigger a rollback.
	after := append(history,
		adjust.Completion{Pattern: quest.PatternFlashcards, Date: "2026-03-02"},
		adjust.Completion{Pattern: quest.PatternFlashcards, Date: "2026-03-02"},
		adjust.Completion{Pattern: quest.PatternFlashcards, Date: "2026-03-03"},
	)
	report, err := p.AdjustForNextCycle(context.Background(), after)
	if err != nil {
		t.Fatalf("adjust for next cycle: %v", err)
	}
	if len(report.Rollbacks) == 0 {
		t.Fatal("expected a rollback after three failures")
	}
	if report.RollbackRate <= 0 {
		t.Errorf("rollback rate = %v, want > 0", report.RollbackRate)
	}
}

func TestAdjustForNextCycle_EmptyHistoryIsTotal(t *testing.T) {
	p := newTestPlanner(llm.NewMockProvider())

	report, err := p.AdjustForNextCycle(context.Background(), nil)
	if err != nil {
		t.Fatalf("adjust for next cycle: %v", err)
	}
	if len(report.Rollbacks) != 0 {
		t.Error("nothing to roll back with no history")
	}
}

func TestStreakDays(t *testing.T) {
	mk := func(dates ...string) []adjust.Completion {
		out := make([]adjust.Completion, len(dates))
		for i, d := range dates {
			out[i] = adjust.Completion{Date: d}
		}
		return out
	}

	tests := []struct {
		name    string
		history []adjust.Completion
		today   string
		want    int
	}{
		{"empty", nil, "2026-03-10", 0},
		{"active today", mk("2026-03-08", "2026-03-09", "2026-03-10"), "2026-03-10", 3},
		{"streak ended yesterday", mk("2026-03-08", "2026-03-09"), "2026-03-10", 2},
		{"broken streak", mk("2026-03-05", "2026-03-09"), "2026-03-10", 1},
		{"stale history", mk("2026-02-01"), "2026-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streakDays(tt.history, tt.today); got != tt.want {
				t.Errorf("streakDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToday_Format(t *testing.T) {
	if _, err := time.Parse("2006-01-02", today()); err != nil {
		t.Fatalf("today() = %q, not a date: %v", today(), err)
	}
}
