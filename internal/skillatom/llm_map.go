package skillatom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/questforge/internal/llm"
	"github.com/abhisek/questforge/internal/quest"
)

// MaxAtoms caps the atom count requested from the collaborator. Larger
// maps slow frontier scans without improving early quests.
const MaxAtoms = 24

const mapperSystemPrompt = `You are a curriculum designer. Decompose a learning goal into small skill atoms forming a prerequisite DAG.

Rules:
- Each atom is one learnable unit: a concept, a procedure, or a habit.
- Levels start at 0 for atoms with no prerequisites and increase along prerequisite edges.
- Prerequisite IDs must reference atoms in the same map. No cycles.
- Suggest practice patterns per atom from the given list only.
- Prefer breadth at low levels so a learner always has something unlocked.`

// MapSchema describes the skill-map response structure.
var MapSchema = &llm.Schema{
	Name:        "skill-map",
	Description: "A prerequisite DAG of skill atoms for a learning goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"atoms": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string"},
						"label": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []string{"concept", "procedure", "habit"},
						},
						"level": map[string]any{"type": "integer", "minimum": 0},
						"prereqs": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"suggested_patterns": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []string{"id", "label", "type", "level"},
				},
			},
		},
		"required": []string{"atoms"},
	},
}

// Mapper builds a skill graph for a goal via the LLM provider.
type Mapper struct {
	provider llm.Provider
}

// NewMapper creates a Mapper backed by the given provider.
func NewMapper(provider llm.Provider) *Mapper {
	return &Mapper{provider: provider}
}

type atomOutput struct {
	ID                string   `json:"id"`
	Label             string   `json:"label"`
	Type              string   `json:"type"`
	Level             int      `json:"level"`
	Prereqs           []string `json:"prereqs"`
	SuggestedPatterns []string `json:"suggested_patterns"`
}

type mapOutput struct {
	Atoms []atomOutput `json:"atoms"`
}

// BuildGraph asks the provider to decompose the profile's goal into a
// skill-atom DAG and validates the result. Validation failures return
// an error rather than a partial graph; a malformed map would poison
// every later frontier scan.
func (m *Mapper) BuildGraph(ctx context.Context, profile quest.Profile) (*Graph, error) {
	req := llm.Request{
		Kind:   llm.KindSkillMap,
		System: mapperSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMapMessage(profile)},
		},
		Schema:    MapSchema,
		MaxTokens: 2048,
	}

	resp, err := m.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("skill map generation failed: %w", err)
	}

	var out mapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse skill map: %w", err)}
	}
	if len(out.Atoms) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("skill map contains no atoms")}
	}
	if len(out.Atoms) > MaxAtoms {
		out.Atoms = out.Atoms[:MaxAtoms]
	}

	atoms := make([]Atom, 0, len(out.Atoms))
	for _, a := range out.Atoms {
		atoms = append(atoms, Atom{
			ID:                a.ID,
			Label:             a.Label,
			Type:              AtomType(a.Type),
			Level:             a.Level,
			Prereqs:           a.Prereqs,
			SuggestedPatterns: keepValidPatterns(a.SuggestedPatterns),
		})
	}

	g, err := New(atoms)
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("invalid skill map: %w", err)}
	}
	return g, nil
}

func buildMapMessage(profile quest.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", profile.GoalText)
	if profile.TimeBudgetPerDay > 0 {
		fmt.Fprintf(&b, "Daily time budget: %d minutes\n", profile.TimeBudgetPerDay)
	}
	if prior, ok := profile.Known("prior_experience"); ok {
		fmt.Fprintf(&b, "Prior experience: %s\n", prior.Value)
	}
	fmt.Fprintf(&b, "Maximum atoms: %d\n", MaxAtoms)

	names := make([]string, 0, len(quest.AllPatterns()))
	for _, p := range quest.AllPatterns() {
		names = append(names, string(p))
	}
	fmt.Fprintf(&b, "Allowed practice patterns: %s\n", strings.Join(names, ", "))
	return b.String()
}

func keepValidPatterns(raw []string) []quest.Pattern {
	var out []quest.Pattern
	for _, r := range raw {
		p := quest.Pattern(r)
		if quest.ValidPattern(p) {
			out = append(out, p)
		}
	}
	return out
}
