package candidates

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

// LLMSource implements Source using the LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMSource with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// questOutput is one raw LLM quest before validation.
type questOutput struct {
	Title       string   `json:"title"`
	Pattern     string   `json:"pattern"`
	Minutes     int      `json:"minutes"`
	Difficulty  float64  `json:"difficulty"`
	Deliverable string   `json:"deliverable"`
	Steps       []string `json:"steps"`
	Criteria    []string `json:"criteria"`
	Tags        []string `json:"tags"`
}

// questListOutput is the raw LLM response before validation.
type questListOutput struct {
	Quests []questOutput `json:"quests"`
}

// GenerateCandidates produces quest candidates for the given input.
// Candidates that fail validation are dropped; an error is returned
// only when the provider fails or nothing usable survives, so the
// caller can decide to fall back.
func (s *LLMSource) GenerateCandidates(ctx context.Context, input Input) ([]quest.Quest, error) {
	userMsg := buildUserMessage(input, s.config)

	req := llm.Request{
		Kind:   llm.KindDailyQuests,
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestListSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Quests) == 0 {
		return nil, fmt.Errorf("LLM returned no quests")
	}

	quests := make([]quest.Quest, 0, len(raw.Quests))
	for _, rq := range raw.Quests {
		q := quest.Quest{
			Title:       rq.Title,
			Pattern:     quest.Pattern(rq.Pattern),
			Minutes:     rq.Minutes,
			Difficulty:  rq.Difficulty,
			Deliverable: rq.Deliverable,
			Steps:       rq.Steps,
			Criteria:    rq.Criteria,
			Tags:        rq.Tags,
		}
		if s.reject(&q, input) {
			continue
		}
		quests = append(quests, q)
	}

	if len(quests) == 0 {
		return nil, fmt.Errorf("all %d generated quests failed validation", len(raw.Quests))
	}
	return quests, nil
}

// reject runs the validator chain and reports whether the quest
// should be dropped.
func (s *LLMSource) reject(q *quest.Quest, input Input) bool {
	for _, v := range s.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return true
		}
	}
	return false
}
