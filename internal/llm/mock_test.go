package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMock_DispatchesByKind(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindSkillMap, MockResponse{Content: json.RawMessage(`{"atoms":[]}`)}).
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{"quests":[]}`)})

	// The prompt text is deliberately misleading: dispatch must follow
	// the Kind tag, never the content.
	resp, err := mock.Generate(context.Background(), Request{
		Kind:     KindDailyQuests,
		Messages: []Message{{Role: RoleUser, Content: "build me a skill map"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"quests":[]}` {
		t.Fatalf("content = %s, want daily-quests canned response", resp.Content)
	}

	resp, err = mock.Generate(context.Background(), Request{Kind: KindSkillMap})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"atoms":[]}` {
		t.Fatalf("content = %s, want skill-map canned response", resp.Content)
	}
}

func TestMock_EmptyQueueIsUnavailable(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindSkillMap, MockResponse{Content: json.RawMessage(`{}`)})

	_, err := mock.Generate(context.Background(), Request{Kind: KindPolicyCheck})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want ErrProviderUnavailable for unseeded kind", err)
	}
}

func TestMock_RecordsCallsPerKind(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{}`)}).
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{}`)})

	mock.Generate(context.Background(), Request{Kind: KindDailyQuests})
	mock.Generate(context.Background(), Request{Kind: KindDailyQuests})
	mock.Generate(context.Background(), Request{Kind: KindClarityCheck})

	if got := len(mock.CallsOfKind(KindDailyQuests)); got != 2 {
		t.Errorf("daily-quests calls = %d, want 2", got)
	}
	if got := len(mock.CallsOfKind(KindClarityCheck)); got != 1 {
		t.Errorf("clarity-check calls = %d, want 1", got)
	}
	if mock.CallCount() != 3 {
		t.Errorf("total calls = %d, want 3", mock.CallCount())
	}
}
