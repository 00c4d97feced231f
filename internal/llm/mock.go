package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing and offline use.
// Canned responses are registered per RequestKind and served in FIFO
// order; dispatch happens on the request's Kind tag only, never by
// inspecting prompt text. All requests are recorded.
type MockProvider struct {
	mu     sync.Mutex
	byKind map[RequestKind][]MockResponse
	Calls  []Request
}

// NewMockProvider creates an empty MockProvider.
func NewMockProvider() *MockProvider {
	return &MockProvider{byKind: make(map[RequestKind][]MockResponse)}
}

// Respond registers a canned response for the given request kind.
func (m *MockProvider) Respond(kind RequestKind, resp MockResponse) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byKind[kind] = append(m.byKind[kind], resp)
	return m
}

// Generate serves the next canned response for req.Kind, or
// ErrProviderUnavailable when none is queued for that kind.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	queue := m.byKind[req.Kind]
	if len(queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}
	resp := queue[0]
	m.byKind[req.Kind] = queue[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// CallsOfKind returns the recorded requests with the given kind.
func (m *MockProvider) CallsOfKind(kind RequestKind) []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Request
	for _, c := range m.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
