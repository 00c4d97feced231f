package candidates

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

const goodQuestsJSON = `{
	"quests": [
		{
			"title": "Shadow a 3-minute podcast segment on ordering food",
			"pattern": "shadowing",
			"minutes": 20,
			"difficulty": 0.5,
			"deliverable": "A recording of your final shadowing pass",
			"tags": ["listening"]
		},
		{
			"title": "Drill 20 food vocabulary flashcards",
			"pattern": "flashcards",
			"minutes": 15,
			"difficulty": 0.4,
			"deliverable": "A reviewed 20-card deck",
			"tags": ["vocabulary"]
		}
	]
}`

func sourceInput() Input {
	return Input{
		Profile:    quest.Profile{GoalText: "conversational Spanish"},
		Checkin:    quest.Checkin{DayType: quest.DayNormal},
		Difficulty: 0.5,
		Count:      3,
	}
}

func TestLLMSource_ParsesQuests(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(goodQuestsJSON)})
	src := New(mock, DefaultConfig())

	quests, err := src.GenerateCandidates(context.Background(), sourceInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(quests) != 2 {
		t.Fatalf("got %d quests, want 2", len(quests))
	}
	if quests[0].Pattern != quest.PatternShadowing {
		t.Errorf("first pattern = %q, want shadowing", quests[0].Pattern)
	}
	if quests[1].Minutes != 15 {
		t.Errorf("second minutes = %d, want 15", quests[1].Minutes)
	}
}

func TestLLMSource_SendsDailyQuestsKind(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(goodQuestsJSON)})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateCandidates(context.Background(), sourceInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	calls := mock.CallsOfKind(llm.KindDailyQuests)
	if len(calls) != 1 {
		t.Fatalf("got %d daily_quests calls, want 1", len(calls))
	}
	req := calls[0]
	if req.Schema == nil || req.Schema.Name != "daily-quests" {
		t.Error("expected the daily-quests schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "conversational Spanish") {
		t.Error("expected the goal text in the user message")
	}
}

func TestLLMSource_DropsInvalidCandidates(t *testing.T) {
	mixed := `{
		"quests": [
			{"title": "", "pattern": "flashcards", "minutes": 20, "difficulty": 0.5, "deliverable": "deck", "tags": []},
			{"title": "Valid drill", "pattern": "quiz_drill", "minutes": 20, "difficulty": 0.5, "deliverable": "answer sheet", "tags": []},
			{"title": "Bad pattern", "pattern": "osmosis", "minutes": 20, "difficulty": 0.5, "deliverable": "nothing", "tags": []}
		]
	}`
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(mixed)})
	src := New(mock, DefaultConfig())

	quests, err := src.GenerateCandidates(context.Background(), sourceInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(quests) != 1 {
		t.Fatalf("got %d quests, want 1 survivor", len(quests))
	}
	if quests[0].Title != "Valid drill" {
		t.Errorf("survivor = %q", quests[0].Title)
	}
}

func TestLLMSource_ErrorsWhenNothingSurvives(t *testing.T) {
	allBad := `{"quests": [{"title": "x", "pattern": "osmosis", "minutes": 5, "difficulty": 2, "deliverable": "", "tags": []}]}`
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(allBad)})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateCandidates(context.Background(), sourceInput()); err == nil {
		t.Fatal("expected error when every candidate fails validation")
	}
}

func TestLLMSource_ErrorsOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateCandidates(context.Background(), sourceInput()); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestResilient_FallsBackOnProviderFailure(t *testing.T) {
	// Empty mock: every call returns provider unavailable.
	mock := llm.NewMockProvider()
	src := NewResilient(New(mock, DefaultConfig()), NewFallback())

	quests, err := src.GenerateCandidates(context.Background(), sourceInput())
	if err != nil {
		t.Fatalf("resilient source must not propagate upstream failures: %v", err)
	}
	if len(quests) == 0 {
		t.Fatal("expected fallback candidates")
	}
	for i, q := range quests {
		if !q.HasTag("fallback") {
			t.Errorf("quest %d missing fallback tag", i)
		}
	}
}

func TestResilient_FallsBackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(`{{{`)})
	src := NewResilient(New(mock, DefaultConfig()), NewFallback())

	quests, err := src.GenerateCandidates(context.Background(), sourceInput())
	if err != nil {
		t.Fatalf("parse errors must not escape: %v", err)
	}
	if len(quests) == 0 {
		t.Fatal("expected fallback candidates")
	}
}

func TestResilient_PrefersPrimary(t *testing.T) {
	mock := llm.NewMockProvider().
		Respond(llm.KindDailyQuests, llm.MockResponse{Content: json.RawMessage(goodQuestsJSON)})
	src := NewResilient(New(mock, DefaultConfig()), NewFallback())

	quests, err := src.GenerateCandidates(context.Background(), sourceInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, q := range quests {
		if q.HasTag("fallback") {
			t.Errorf("quest %d came from fallback despite healthy primary", i)
		}
	}
}
