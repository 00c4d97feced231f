package adjust

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/questforge/internal/quest"
)

func baseQuest() quest.Quest {
	return quest.Quest{
		Title:       "Drill 20 irregular verbs",
		Pattern:     quest.PatternFlashcards,
		Minutes:     20,
		Difficulty:  0.5,
		Deliverable: "A reviewed 20-card deck",
		Steps:       []string{"Make the cards", "Run a review pass"},
		Criteria:    []string{"All cards reviewed", "Misses re-drilled", "Deck saved"},
	}
}

func successes(n int, p quest.Pattern) []Completion {
	out := make([]Completion, n)
	for i := range out {
		out[i] = Completion{
			QuestTitle: fmt.Sprintf("quest %d", i),
			Pattern:    p,
			Success:    true,
			Date:       "2026-03-01",
		}
	}
	return out
}

func failures(n int, p quest.Pattern) []Completion {
	out := successes(n, p)
	for i := range out {
		out[i].Success = false
	}
	return out
}

func TestAdjust_StrongRecordIncreases(t *testing.T) {
	a := New(nil)
	history := successes(7, quest.PatternFlashcards)

	modified, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, history, Context{})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.FactorSum < 0.25 {
		t.Errorf("factor sum = %v, want >= 0.25", r.FactorSum)
	}
	if r.Type != TypeIncrease {
		t.Errorf("type = %q, want increase", r.Type)
	}
	if r.Magnitude != MagnitudeSignificant {
		t.Errorf("magnitude = %q, want significant", r.Magnitude)
	}

	mq := modified[0]
	if mq.Minutes != 22 {
		t.Errorf("minutes = %d, want 22 (20 + 10%%)", mq.Minutes)
	}
	if len(mq.Criteria) != len(baseQuest().Criteria)+2 {
		t.Errorf("criteria count = %d, want two stretch criteria appended", len(mq.Criteria))
	}
	if !mq.HasTag("challenge") || !mq.HasTag("advanced") {
		t.Error("expected challenge and advanced tags")
	}
}

func TestAdjust_WeakRecordDecreases(t *testing.T) {
	a := New(nil)
	history := failures(7, quest.PatternFlashcards)

	modified, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, history, Context{})

	r := results[0]
	if r.Type != TypeDecrease {
		t.Fatalf("type = %q, want decrease", r.Type)
	}

	mq := modified[0]
	if mq.Minutes != 18 {
		t.Errorf("minutes = %d, want 18 (20 - 10%%)", mq.Minutes)
	}
	// Trimmed to 2 plus one baseline criterion.
	if len(mq.Criteria) != 3 {
		t.Errorf("criteria count = %d, want 3", len(mq.Criteria))
	}
	if mq.Steps[0] != "Confirm the basic concept before starting" {
		t.Errorf("expected scaffolding step first, got %q", mq.Steps[0])
	}
}

func TestAdjust_NoSignalsMaintains(t *testing.T) {
	a := New(nil)

	modified, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, nil, Context{})

	r := results[0]
	if r.Type != TypeMaintain {
		t.Fatalf("type = %q, want maintain", r.Type)
	}
	if r.Confidence != 0.7 {
		t.Errorf("confidence = %v, want base 0.7", r.Confidence)
	}

	mq := modified[0]
	orig := baseQuest()
	if mq.Minutes != orig.Minutes || len(mq.Criteria) != len(orig.Criteria) || len(mq.Steps) != len(orig.Steps) {
		t.Error("maintain must not mutate quest structure")
	}
}

func TestAdjust_DifficultyAlwaysBounded(t *testing.T) {
	a := New(nil)

	// Pile on every negative signal against an already-easy quest.
	q := baseQuest()
	q.Difficulty = 0.15
	ctx := Context{
		AvailableTime: 15,
		Moods:         []string{"frustrated"},
		StreakDays:    8,
		Risk:          RiskSignals{HighSeverity: true},
	}
	_, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{q}, failures(7, quest.PatternFlashcards), ctx)
	if d := results[0].AdjustedDifficulty; d != DifficultyFloor {
		t.Errorf("adjusted difficulty = %v, want floor %v", d, DifficultyFloor)
	}

	// And every positive signal against a hard one.
	q2 := baseQuest()
	q2.Difficulty = 0.85
	ctx2 := Context{
		Moods: []string{"confident"},
		Risk:  RiskSignals{PlateauRisk: 0.9},
	}
	_, results2 := a.Adjust(context.Background(), "local",
		[]quest.Quest{q2}, successes(7, quest.PatternFlashcards), ctx2)
	if d := results2[0].AdjustedDifficulty; d != DifficultyCeil {
		t.Errorf("adjusted difficulty = %v, want ceiling %v", d, DifficultyCeil)
	}
}

func TestAdjust_IncreaseCapsMinutes(t *testing.T) {
	a := New(nil)
	q := baseQuest()
	q.Minutes = 58

	modified, _ := a.Adjust(context.Background(), "local",
		[]quest.Quest{q}, successes(7, quest.PatternFlashcards), Context{})
	if modified[0].Minutes != MaxAdjustedMinutes {
		t.Errorf("minutes = %d, want cap %d", modified[0].Minutes, MaxAdjustedMinutes)
	}
}

func TestAdjust_AvailableTimeClampsMinutes(t *testing.T) {
	a := New(nil)
	q := baseQuest()
	q.Minutes = 40

	// 25 available: no time-pressure factor (>= 20) but the quest
	// doesn't fit, so minutes clamp to 80% of available.
	modified, _ := a.Adjust(context.Background(), "local",
		[]quest.Quest{q}, nil, Context{AvailableTime: 25})

	mq := modified[0]
	if mq.Minutes != 20 {
		t.Errorf("minutes = %d, want 20 (80%% of 25)", mq.Minutes)
	}
	if mq.Deliverable == q.Deliverable {
		t.Error("expected deliverable suffixed to note shortened scope")
	}
}

func TestAdjust_ConfidenceCapped(t *testing.T) {
	a := New(nil)
	ctx := Context{
		Moods:      []string{"confident"},
		StreakDays: 8,
		Risk:       RiskSignals{PlateauRisk: 0.9},
	}
	_, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, successes(7, quest.PatternFlashcards), ctx)
	if c := results[0].Confidence; c != 0.95 {
		t.Errorf("confidence = %v, want cap 0.95", c)
	}
}

func TestAdjust_InputsNotMutated(t *testing.T) {
	a := New(nil)
	q := baseQuest()
	upcoming := []quest.Quest{q}

	a.Adjust(context.Background(), "local", upcoming, failures(7, quest.PatternFlashcards), Context{})

	if upcoming[0].Minutes != q.Minutes || len(upcoming[0].Criteria) != len(q.Criteria) {
		t.Error("Adjust must not mutate the input quests")
	}
}

type erroringRisk struct{}

func (erroringRisk) Signals(context.Context, quest.Profile, []Completion) (RiskSignals, error) {
	return RiskSignals{}, errors.New("collaborator down")
}

func TestAdjust_RiskFailureDegradesToNoSignal(t *testing.T) {
	a := New(erroringRisk{})

	_, results := a.Adjust(context.Background(), "local",
		[]quest.Quest{baseQuest()}, nil, Context{})
	if results[0].Type != TypeMaintain {
		t.Errorf("type = %q, want maintain when risk collaborator fails", results[0].Type)
	}
}

func TestHistory_RingEvictsOldest(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 25; i++ {
		h.Append("local", Result{QuestTitle: fmt.Sprintf("q%d", i)})
	}

	recent := h.Recent("local")
	if len(recent) != maxHistory {
		t.Fatalf("history length = %d, want %d", len(recent), maxHistory)
	}
	if recent[0].QuestTitle != "q5" {
		t.Errorf("oldest entry = %q, want q5", recent[0].QuestTitle)
	}
	if recent[len(recent)-1].QuestTitle != "q24" {
		t.Errorf("newest entry = %q, want q24", recent[len(recent)-1].QuestTitle)
	}
}

func TestHistory_PerUserIsolation(t *testing.T) {
	h := NewHistory()
	h.Append("alice", Result{QuestTitle: "a"})
	h.Append("bob", Result{QuestTitle: "b"})

	if got := h.Recent("alice"); len(got) != 1 || got[0].QuestTitle != "a" {
		t.Errorf("alice history = %+v", got)
	}
	if got := h.Recent("bob"); len(got) != 1 || got[0].QuestTitle != "b" {
		t.Errorf("bob history = %+v", got)
	}
}
