package candidates

import "github.com/abhisek/questforge/internal/llm"

// QuestListSchema defines the JSON schema for LLM quest generation responses.
var QuestListSchema = &llm.Schema{
	Name:        "daily-quests",
	Description: "A list of candidate learning quests for a single day",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quests": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short imperative quest title, e.g. 'Drill 20 irregular verbs'",
						},
						"pattern": map[string]any{
							"type":        "string",
							"enum":        []any{"read_note_q", "flashcards", "build_micro", "shadowing", "teach_back", "quiz_drill", "timed_sprint", "reflect_compare", "debug_fix", "retrospective"},
							"description": "Learning activity pattern",
						},
						"minutes": map[string]any{
							"type":        "integer",
							"minimum":     10,
							"maximum":     90,
							"description": "Estimated time to complete",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "Difficulty relative to the learner's current level",
						},
						"deliverable": map[string]any{
							"type":        "string",
							"description": "Concrete artifact the learner produces",
						},
						"steps": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Ordered steps to complete the quest",
						},
						"criteria": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Success criteria checked at completion",
						},
						"tags": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Free-form topic tags",
						},
					},
					"required":             []any{"title", "pattern", "minutes", "difficulty", "deliverable", "tags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quests"},
		"additionalProperties": false,
	},
}
