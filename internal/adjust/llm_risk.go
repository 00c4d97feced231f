package adjust

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

// riskSchema defines the JSON schema for risk-analysis responses.
var riskSchema = &llm.Schema{
	Name:        "risk-analysis",
	Description: "Risk assessment of a learner's recent completion history",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"high_severity": map[string]any{
				"type":        "boolean",
				"description": "True when the history shows burnout or repeated abandonment",
			},
			"plateau_risk": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How stuck the learner looks: 0 progressing, 1 fully plateaued",
			},
		},
		"required":             []any{"high_severity", "plateau_risk"},
		"additionalProperties": false,
	},
}

const riskSystemPrompt = `You assess a learner's recent history for burnout and plateau risk.

Rules:
- high_severity is true only for clear distress: several abandoned quests in a row, or repeated failures combined with frustration.
- plateau_risk is high when the learner succeeds at everything but the work never gets harder or more varied.
- A short history is weak evidence; stay near zero when fewer than five completions exist.`

// LLMRiskAnalyzer implements RiskAnalyzer using the LLM provider.
type LLMRiskAnalyzer struct {
	provider llm.Provider
}

// NewLLMRisk creates an analyzer backed by the given provider.
func NewLLMRisk(provider llm.Provider) *LLMRiskAnalyzer {
	return &LLMRiskAnalyzer{provider: provider}
}

// Signals asks the provider for a risk assessment of the history.
// Errors propagate; the adjuster treats them as "no signal".
func (a *LLMRiskAnalyzer) Signals(ctx context.Context, profile quest.Profile, history []Completion) (RiskSignals, error) {
	req := llm.Request{
		Kind:   llm.KindPolicyCheck,
		System: riskSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRiskMessage(profile, history)},
		},
		Schema:    riskSchema,
		MaxTokens: 256,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return RiskSignals{}, fmt.Errorf("risk analysis failed: %w", err)
	}

	var raw struct {
		HighSeverity bool    `json:"high_severity"`
		PlateauRisk  float64 `json:"plateau_risk"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return RiskSignals{}, fmt.Errorf("failed to parse risk response: %w", err)
	}

	return RiskSignals{HighSeverity: raw.HighSeverity, PlateauRisk: raw.PlateauRisk}, nil
}

func buildRiskMessage(profile quest.Profile, history []Completion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s\n", profile.GoalText)
	fmt.Fprintf(&b, "Completions: %d\n\n", len(history))

	for i, c := range history {
		outcome := "failed"
		if c.Success {
			outcome = "completed"
		}
		fmt.Fprintf(&b, "%d. [%s] %s (%s, %d min", i+1, c.Date, c.QuestTitle, c.Pattern, c.MinutesSpent)
		if c.Rating > 0 {
			fmt.Fprintf(&b, ", rated %d/5", c.Rating)
		}
		fmt.Fprintf(&b, ") %s\n", outcome)
	}

	return b.String()
}
