package candidates

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/questforge/internal/quest"
	"github.com/abhisek/questforge/internal/skillatom"
)

func fallbackInput() Input {
	return Input{
		Profile: quest.Profile{
			GoalText: "conversational Spanish",
		},
		Checkin:    quest.Checkin{DayType: quest.DayNormal},
		Difficulty: 0.5,
		Count:      3,
	}
}

func TestFallback_Deterministic(t *testing.T) {
	f := NewFallback()
	ctx := context.Background()

	a, err := f.GenerateCandidates(ctx, fallbackInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := f.GenerateCandidates(ctx, fallbackInput())
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same input should produce identical candidates")
	}
}

func TestFallback_CountAndContract(t *testing.T) {
	f := NewFallback()
	quests, err := f.GenerateCandidates(context.Background(), fallbackInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(quests) != 3 {
		t.Fatalf("got %d quests, want 3", len(quests))
	}
	for i, q := range quests {
		if q.Title == "" || q.Deliverable == "" {
			t.Errorf("quest %d missing title or deliverable: %+v", i, q)
		}
		if q.Minutes < quest.MinMinutes || q.Minutes > quest.MaxMinutes {
			t.Errorf("quest %d minutes %d out of range", i, q.Minutes)
		}
		if !quest.ValidPattern(q.Pattern) {
			t.Errorf("quest %d has invalid pattern %q", i, q.Pattern)
		}
		if q.Difficulty != 0.5 {
			t.Errorf("quest %d difficulty = %v, want input difficulty 0.5", i, q.Difficulty)
		}
	}
}

func TestFallback_RespectsEnvConstraints(t *testing.T) {
	f := NewFallback()
	input := fallbackInput()
	input.Profile.EnvConstraints = []string{"no_audio", "no_speaking"}
	input.Frontier = []skillatom.Atom{
		{
			ID:                "greetings",
			Label:             "basic greetings",
			Type:              skillatom.TypeProcedure,
			SuggestedPatterns: []quest.Pattern{quest.PatternShadowing, quest.PatternFlashcards},
		},
	}

	quests, err := f.GenerateCandidates(context.Background(), input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, q := range quests {
		if q.Pattern == quest.PatternShadowing || q.Pattern == quest.PatternTeachBack {
			t.Errorf("quest %d uses infeasible pattern %q", i, q.Pattern)
		}
	}
}

func TestFallback_UsesFrontierTopics(t *testing.T) {
	f := NewFallback()
	input := fallbackInput()
	input.Frontier = []skillatom.Atom{
		{
			ID:                "past-tense",
			Label:             "past tense conjugation",
			Type:              skillatom.TypeConcept,
			SuggestedPatterns: []quest.Pattern{quest.PatternFlashcards},
		},
	}

	quests, err := f.GenerateCandidates(context.Background(), input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	found := false
	for _, q := range quests {
		if strings.Contains(q.Title, "past tense conjugation") {
			found = true
		}
	}
	if !found {
		t.Error("expected a quest title referencing the frontier atom label")
	}
}

func TestFallback_ValidatesCleanly(t *testing.T) {
	// Fallback output must pass the same chain applied to LLM output.
	f := NewFallback()
	input := fallbackInput()
	quests, err := f.GenerateCandidates(context.Background(), input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	chain := DefaultConfig().Validators
	for i := range quests {
		for _, v := range chain {
			if verr := v.Validate(&quests[i], input); verr != nil {
				t.Errorf("quest %d failed %s: %v", i, v.Name(), verr)
			}
		}
	}
}
