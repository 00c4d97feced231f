package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

// ClarityReport is the collaborator's read on how plannable a goal is.
type ClarityReport struct {
	// Score is goal clarity in [0,1]. Below ClarityThreshold the goal
	// needs sharpening before a skill map is worth building.
	Score float64
	// Issues name what is vague or missing from the goal.
	Issues []string
	// Hints are optional question-engine boosts derived from the
	// issues. Nil when the goal is clear enough.
	Hints *PriorityHints
}

// ClarityThreshold separates plannable goals from ones that need
// sharpening first.
const ClarityThreshold = 0.5

const claritySystemPrompt = `You assess whether a learning goal is specific enough to plan daily practice for.

A clear goal names what to learn, roughly to what level, and ideally why. Score clarity in [0,1]. List concrete issues for anything vague. From the question catalogue provided, pick the question IDs most worth asking to resolve each issue, and order the catalogue categories by how urgently they need answers.`

// ClaritySchema describes the clarity-check response structure.
var ClaritySchema = &llm.Schema{
	Name:        "clarity-check",
	Description: "An assessment of how plannable a learning goal is",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"issues": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"boost_question_ids": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"category_priority": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []string{"time", "goal", "preference", "constraint", "modality"},
				},
			},
		},
		"required": []string{"score", "issues"},
	},
}

// ClarityChecker asks the LLM provider to assess goal clarity.
type ClarityChecker struct {
	provider llm.Provider
	bank     []BankItem
}

// NewClarityChecker creates a checker over the given question catalogue.
func NewClarityChecker(provider llm.Provider, bank []BankItem) *ClarityChecker {
	return &ClarityChecker{provider: provider, bank: bank}
}

type clarityOutput struct {
	Score            float64  `json:"score"`
	Issues           []string `json:"issues"`
	BoostQuestionIDs []string `json:"boost_question_ids"`
	CategoryPriority []string `json:"category_priority"`
}

// Check assesses the profile's goal. Returned hints reference only
// catalogue items that actually exist; unknown IDs and categories from
// the model are dropped.
func (c *ClarityChecker) Check(ctx context.Context, profile quest.Profile) (*ClarityReport, error) {
	req := llm.Request{
		Kind:   llm.KindClarityCheck,
		System: claritySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: c.buildMessage(profile)},
		},
		Schema:    ClaritySchema,
		MaxTokens: 768,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("clarity check failed: %w", err)
	}

	var out clarityOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse clarity check: %w", err)}
	}
	if out.Score < 0 {
		out.Score = 0
	}
	if out.Score > 1 {
		out.Score = 1
	}

	report := &ClarityReport{Score: out.Score, Issues: out.Issues}
	if hints := c.buildHints(out); hints != nil {
		report.Hints = hints
	}
	return report, nil
}

func (c *ClarityChecker) buildMessage(profile quest.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", profile.GoalText)
	if len(profile.KnownFields) > 0 {
		b.WriteString("Already known:\n")
		for _, item := range c.bank {
			if f, ok := profile.Known(item.Field); ok {
				fmt.Fprintf(&b, "- %s: %s\n", item.Field, f.Value)
			}
		}
	}
	b.WriteString("Question catalogue:\n")
	for _, item := range c.bank {
		fmt.Fprintf(&b, "- %s (%s): %s\n", item.ID, item.Category, item.Prompt)
	}
	return b.String()
}

// buildHints converts the model's picks into PriorityHints, keeping
// only IDs and categories that exist in the catalogue.
func (c *ClarityChecker) buildHints(out clarityOutput) *PriorityHints {
	known := make(map[string]bool, len(c.bank))
	for _, item := range c.bank {
		known[item.ID] = true
	}

	boosts := make(map[string]float64)
	for _, id := range out.BoostQuestionIDs {
		if known[id] {
			boosts[id] = MaxHintBoost
		}
	}

	var categories []Category
	for _, raw := range out.CategoryPriority {
		cat := Category(raw)
		if _, ok := categoryWeights[cat]; ok {
			categories = append(categories, cat)
		}
	}

	if len(boosts) == 0 && len(categories) == 0 {
		return nil
	}
	hints := &PriorityHints{}
	if len(boosts) > 0 {
		hints.ScoreBoosts = boosts
	}
	hints.CategoryPriority = categories
	return hints
}
