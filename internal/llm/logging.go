package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/questforge/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an
// event. The request's Kind tag doubles as the event purpose label.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     string(req.Kind),
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders a compact JSON view of the request for the
// event log: kind, system prompt, and messages, without the schema body.
func serializeRequest(req Request) string {
	var b strings.Builder
	b.WriteString(`{"kind":`)
	writeJSONString(&b, string(req.Kind))
	b.WriteString(`,"system":`)
	writeJSONString(&b, req.System)
	b.WriteString(`,"messages":[`)
	for i, m := range req.Messages {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"role":`)
		writeJSONString(&b, string(m.Role))
		b.WriteString(`,"content":`)
		writeJSONString(&b, m.Content)
		b.WriteString("}")
	}
	b.WriteString("]}")
	return b.String()
}

func writeJSONString(b *strings.Builder, s string) {
	enc, err := json.Marshal(s)
	if err != nil {
		b.WriteString(`""`)
		return
	}
	b.Write(enc)
}
