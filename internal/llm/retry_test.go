package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func questsReq() Request {
	return Request{Kind: KindDailyQuests}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), questsReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}).
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), questsReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}).
		Respond(KindDailyQuests, MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}).
		Respond(KindDailyQuests, MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), questsReq())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}}).
		Respond(KindDailyQuests, MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}}).
		Respond(KindDailyQuests, MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), questsReq())
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidResponse after single retry", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls (one retry for invalid response), got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Err: context.Canceled})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), questsReq())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider().
		Respond(KindDailyQuests, MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), questsReq())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
