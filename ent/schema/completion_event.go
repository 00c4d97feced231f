package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records the outcome of a single attempted quest.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_date").
			NotEmpty().
			Comment("Date of the plan this quest belonged to, YYYY-MM-DD"),
		field.String("quest_title").
			NotEmpty(),
		field.String("pattern").
			NotEmpty().
			Comment("Quest pattern, e.g. flashcards, build_micro"),
		field.Float("difficulty").
			Comment("Difficulty the quest was served at, 0.0-1.0"),
		field.Int("planned_minutes"),
		field.Int("actual_minutes").
			Default(0).
			Comment("Self-reported time spent, 0 if not reported"),
		field.Bool("completed").
			Comment("Whether the done definition was met"),
		field.Int("rating").
			Default(0).
			Comment("Self-rated difficulty fit on a 1-5 scale, 0 if skipped"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_date"),
		index.Fields("pattern"),
		index.Fields("completed"),
	}
}
