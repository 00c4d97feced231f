package skillatom

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

const mapJSON = `{
	"atoms": [
		{"id": "greetings", "label": "Basic greetings", "type": "concept", "level": 0,
		 "suggested_patterns": ["flashcards", "shadowing"]},
		{"id": "numbers", "label": "Numbers 1-100", "type": "concept", "level": 0,
		 "suggested_patterns": ["flashcards"]},
		{"id": "intro_dialogue", "label": "Introduce yourself", "type": "procedure", "level": 1,
		 "prereqs": ["greetings"], "suggested_patterns": ["shadowing", "teach_back"]}
	]
}`

func mapProfile() quest.Profile {
	return quest.Profile{
		GoalText:         "conversational Spanish",
		TimeBudgetPerDay: 30,
	}
}

func TestMapper_BuildGraph(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindSkillMap, llm.MockResponse{Content: json.RawMessage(mapJSON)})

	g, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}

	atom, err := g.Get("intro_dialogue")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if atom.Type != TypeProcedure {
		t.Errorf("Type = %q, want procedure", atom.Type)
	}
	if len(atom.SuggestedPatterns) != 2 || atom.SuggestedPatterns[0] != quest.PatternShadowing {
		t.Errorf("SuggestedPatterns = %v", atom.SuggestedPatterns)
	}

	frontier := g.Frontier(nil)
	if len(frontier) != 2 {
		t.Errorf("frontier = %d atoms, want the two level-0 atoms", len(frontier))
	}
}

func TestMapper_SendsSkillMapKind(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindSkillMap, llm.MockResponse{Content: json.RawMessage(mapJSON)})

	if _, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile()); err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Kind != llm.KindSkillMap {
		t.Errorf("Kind = %q, want %q", req.Kind, llm.KindSkillMap)
	}
	if req.Schema == nil || req.Schema.Name != "skill-map" {
		t.Errorf("Schema = %+v, want skill-map", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "conversational Spanish") {
		t.Errorf("message missing goal text: %q", req.Messages[0].Content)
	}
}

func TestMapper_DropsUnknownPatterns(t *testing.T) {
	body := `{"atoms": [{"id": "a", "label": "A", "type": "concept", "level": 0,
		"suggested_patterns": ["flashcards", "osmosis"]}]}`
	provider := llm.NewMockProvider().
		Respond(llm.KindSkillMap, llm.MockResponse{Content: json.RawMessage(body)})

	g, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	atom, _ := g.Get("a")
	if len(atom.SuggestedPatterns) != 1 || atom.SuggestedPatterns[0] != quest.PatternFlashcards {
		t.Errorf("SuggestedPatterns = %v, want [flashcards]", atom.SuggestedPatterns)
	}
}

func TestMapper_RejectsCyclicMap(t *testing.T) {
	body := `{"atoms": [
		{"id": "a", "label": "A", "type": "concept", "level": 0, "prereqs": ["b"]},
		{"id": "b", "label": "B", "type": "concept", "level": 0, "prereqs": ["a"]}
	]}`
	provider := llm.NewMockProvider().
		Respond(llm.KindSkillMap, llm.MockResponse{Content: json.RawMessage(body)})

	_, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestMapper_RejectsEmptyMap(t *testing.T) {
	provider := llm.NewMockProvider().
		Respond(llm.KindSkillMap, llm.MockResponse{Content: json.RawMessage(`{"atoms": []}`)})

	_, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestMapper_PropagatesProviderError(t *testing.T) {
	provider := llm.NewMockProvider()

	_, err := NewMapper(provider).BuildGraph(context.Background(), mapProfile())
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
