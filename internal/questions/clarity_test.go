package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

func TestClarityCheck_ClearGoal(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{
			Content: json.RawMessage(`{"score": 0.85, "issues": []}`),
		})

	checker := NewClarityChecker(provider, DefaultBank())
	report, err := checker.Check(context.Background(), quest.Profile{GoalText: "pass the JLPT N4 in December"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Score != 0.85 {
		t.Errorf("Score = %v, want 0.85", report.Score)
	}
	if report.Score < ClarityThreshold {
		t.Errorf("clear goal scored below threshold")
	}
	if report.Hints != nil {
		t.Errorf("Hints = %+v, want nil for a clear goal", report.Hints)
	}
}

func TestClarityCheck_VagueGoalYieldsHints(t *testing.T) {
	body := `{
		"score": 0.3,
		"issues": ["no target level", "no deadline"],
		"boost_question_ids": ["q03_goal_deadline", "q04_goal_depth", "q99_nonexistent"],
		"category_priority": ["goal", "time", "mystery"]
	}`
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{Content: json.RawMessage(body)})

	checker := NewClarityChecker(provider, DefaultBank())
	report, err := checker.Check(context.Background(), quest.Profile{GoalText: "get better at Spanish"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Score >= ClarityThreshold {
		t.Errorf("Score = %v, want below threshold", report.Score)
	}
	if len(report.Issues) != 2 {
		t.Errorf("Issues = %v, want 2", report.Issues)
	}
	if report.Hints == nil {
		t.Fatal("Hints = nil, want boosts for a vague goal")
	}
	if _, ok := report.Hints.ScoreBoosts["q04_goal_depth"]; !ok {
		t.Errorf("ScoreBoosts = %v, missing q04_goal_depth", report.Hints.ScoreBoosts)
	}
	if _, ok := report.Hints.ScoreBoosts["q99_nonexistent"]; ok {
		t.Errorf("ScoreBoosts kept an ID not in the catalogue")
	}
	want := []Category{CategoryGoal, CategoryTime}
	if len(report.Hints.CategoryPriority) != len(want) {
		t.Fatalf("CategoryPriority = %v, want %v", report.Hints.CategoryPriority, want)
	}
	for i, cat := range want {
		if report.Hints.CategoryPriority[i] != cat {
			t.Errorf("CategoryPriority[%d] = %q, want %q", i, report.Hints.CategoryPriority[i], cat)
		}
	}
}

func TestClarityCheck_HintsFeedPlan(t *testing.T) {
	body := `{
		"score": 0.3,
		"issues": ["goal too broad"],
		"boost_question_ids": ["q04_goal_depth"],
		"category_priority": ["goal"]
	}`
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{Content: json.RawMessage(body)})

	checker := NewClarityChecker(provider, DefaultBank())
	report, err := checker.Check(context.Background(), quest.Profile{GoalText: "learn things"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	result := Plan(DefaultBank(), "learn things", quest.Profile{}, DefaultBudget, report.Hints)
	if len(result.Selected) == 0 {
		t.Fatal("Plan selected nothing")
	}
	for _, s := range result.Selected {
		if s.Item.ID == "q04_goal_depth" {
			return
		}
	}
	t.Errorf("boosted question not selected: %v", result.Selected)
}

func TestClarityCheck_SendsClarityKind(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{
			Content: json.RawMessage(`{"score": 0.9, "issues": []}`),
		})

	checker := NewClarityChecker(provider, DefaultBank())
	if _, err := checker.Check(context.Background(), quest.Profile{GoalText: "learn Go"}); err != nil {
		t.Fatalf("Check: %v", err)
	}

	req := provider.Calls[0]
	if req.Kind != llm.KindClarityCheck {
		t.Errorf("Kind = %q, want %q", req.Kind, llm.KindClarityCheck)
	}
	if req.Schema == nil || req.Schema.Name != "clarity-check" {
		t.Errorf("Schema = %+v, want clarity-check", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "q01_time_budget") {
		t.Errorf("message missing catalogue listing")
	}
}

func TestClarityCheck_MalformedResponse(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{Content: json.RawMessage(`not json`)})

	checker := NewClarityChecker(provider, DefaultBank())
	_, err := checker.Check(context.Background(), quest.Profile{GoalText: "learn Go"})
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestClarityCheck_ScoreClamped(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindClarityCheck, llm.MockResponse{
			Content: json.RawMessage(`{"score": 1.7, "issues": []}`),
		})

	checker := NewClarityChecker(provider, DefaultBank())
	report, err := checker.Check(context.Background(), quest.Profile{GoalText: "learn Go"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Score != 1 {
		t.Errorf("Score = %v, want clamped to 1", report.Score)
	}
}
